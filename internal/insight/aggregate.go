package insight

import (
	"strings"

	"github.com/adsight/adsight/internal/models"
)

// Dimension is a grouping key field. Keeping the set closed means an invalid
// grouping key is a compile-time concern, not a runtime one.
type Dimension string

const (
	DimDate       Dimension = "date"
	DimEntityID   Dimension = "entity_id"
	DimEntityName Dimension = "entity_name"
)

func dimValue(r models.MetricRow, d Dimension) string {
	switch d {
	case DimDate:
		return r.Date.Format("2006-01-02")
	case DimEntityID:
		return r.EntityID
	case DimEntityName:
		return r.EntityName
	}
	return ""
}

// GroupSum groups rows by the tuple of dimension values and sums the five
// counters per group. Key fields are echoed from the first row seen for the
// group; output order is group-creation order.
func GroupSum(rows []models.MetricRow, dims []Dimension) []models.MetricRow {
	idx := map[string]int{}
	out := make([]models.MetricRow, 0)
	for _, r := range rows {
		parts := make([]string, len(dims))
		for i, d := range dims {
			parts[i] = dimValue(r, d)
		}
		key := strings.Join(parts, "\x00")
		i, ok := idx[key]
		if !ok {
			g := models.MetricRow{Date: r.Date, EntityID: r.EntityID, EntityName: r.EntityName}
			out = append(out, g)
			i = len(out) - 1
			idx[key] = i
		}
		out[i].Impressions += r.Impressions
		out[i].Clicks += r.Clicks
		out[i].Cost += r.Cost
		out[i].Orders += r.Orders
		out[i].Sales += r.Sales
	}
	return out
}

// ComputeShares aggregates rows per entity and computes each entity's share of
// the scope's total spend and sales plus the gap between the two. Ratios on
// the output reflect the summed counters. Totals are scope totals: they are
// recomputed for every call, from exactly the rows given.
func ComputeShares(rows []models.MetricRow) []models.ShareRow {
	aggs := Derive(GroupSum(rows, []Dimension{DimEntityID, DimEntityName}))

	var totalCost, totalSales float64
	for _, a := range aggs {
		totalCost += a.Cost
		totalSales += a.Sales
	}

	out := make([]models.ShareRow, len(aggs))
	for i, a := range aggs {
		spendShare := safeDiv(a.Cost, totalCost)
		salesShare := safeDiv(a.Sales, totalSales)
		out[i] = models.ShareRow{
			EntityID:    a.EntityID,
			EntityName:  a.EntityName,
			Impressions: a.Impressions,
			Clicks:      a.Clicks,
			Cost:        a.Cost,
			Orders:      a.Orders,
			Sales:       a.Sales,
			CTR:         a.CTR,
			CPC:         a.CPC,
			CVR:         a.CVR,
			ACOS:        a.ACOS,
			ROAS:        a.ROAS,
			SpendShare:  spendShare,
			SalesShare:  salesShare,
			ShareGap:    spendShare - salesShare,
		}
	}
	return out
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
