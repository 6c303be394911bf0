// Package insight implements the metrics derivation and recommendation
// pipeline over normalized performance rows. Every function is a pure
// transform: inputs are never mutated and each stage allocates its output.
package insight

import (
	"github.com/adsight/adsight/internal/models"
)

// Ratio divides num by den, returning nil when the denominator is zero. The
// pipeline never produces NaN or Inf.
func Ratio(num, den float64) *float64 {
	if den == 0 {
		return nil
	}
	v := num / den
	return &v
}

// Derive recomputes all five ratios from the counters on every row. It always
// recomputes; any ratio already on a row is replaced, so stale values cannot
// survive a counter change.
func Derive(rows []models.MetricRow) []models.MetricRow {
	out := make([]models.MetricRow, len(rows))
	for i, r := range rows {
		out[i] = deriveRow(r)
	}
	return out
}

func deriveRow(r models.MetricRow) models.MetricRow {
	r.CTR = Ratio(r.Clicks, r.Impressions)
	r.CPC = Ratio(r.Cost, r.Clicks)
	r.CVR = Ratio(r.Orders, r.Clicks)
	r.ACOS = Ratio(r.Cost, r.Sales)
	r.ROAS = Ratio(r.Sales, r.Cost)
	return r
}

// FlagZeroSales marks rows whose cost meets the threshold with no sales. The
// result depends only on the given threshold, so a caller can re-run this with
// a new threshold at any time; no other field is read or written.
func FlagZeroSales(rows []models.MetricRow, threshold float64) []models.MetricRow {
	out := make([]models.MetricRow, len(rows))
	for i, r := range rows {
		r.ZeroSalesSpend = r.Cost >= threshold && r.Sales <= 0
		out[i] = r
	}
	return out
}

// SummaryOf computes the headline KPI block from the scope's summed counters.
// Ratios come from the totals, never from averaging per-row ratios.
func SummaryOf(rows []models.MetricRow, threshold float64) models.Summary {
	var imp, clk, cost, ords, sales, waste float64
	for _, r := range rows {
		imp += r.Impressions
		clk += r.Clicks
		cost += r.Cost
		ords += r.Orders
		sales += r.Sales
		if r.Cost >= threshold && r.Sales <= 0 {
			waste += r.Cost
		}
	}
	return models.Summary{
		Spend:          cost,
		Sales:          sales,
		ROAS:           Ratio(sales, cost),
		ACOS:           Ratio(cost, sales),
		CTR:            Ratio(clk, imp),
		CPC:            Ratio(cost, clk),
		CVR:            Ratio(ords, clk),
		ZeroSalesSpend: waste,
	}
}
