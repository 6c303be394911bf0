// Package normalize turns raw string-keyed records, as decoded from CSV, into
// typed MetricRows. It never returns an error: bad numeric tokens become 0 and
// rows with an unparseable date are dropped.
package normalize

import (
	"strings"

	"github.com/adsight/adsight/internal/models"
)

// Column names accepted for each field. The first present, non-empty value
// wins.
var (
	idCols   = []string{"entity_id", "campaign_id", "id", "asin", "keyword_id", "target_id"}
	nameCols = []string{"entity_name", "campaign_name", "name", "search_term", "targeting", "placement", "product_name"}
)

// Rows normalizes a batch of records. Output order follows input order.
func Rows(records []map[string]string) []models.MetricRow {
	out := make([]models.MetricRow, 0, len(records))
	for _, rec := range records {
		row, ok := Row(rec)
		if !ok {
			continue
		}
		out = append(out, row)
	}
	return out
}

// Row normalizes a single record. The second return is false when the record
// has no parseable date.
func Row(rec map[string]string) (models.MetricRow, bool) {
	d, ok := ParseDate(rec["date"])
	if !ok {
		return models.MetricRow{}, false
	}
	row := models.MetricRow{
		Date:        d,
		EntityID:    strings.TrimSpace(firstOf(rec, idCols)),
		EntityName:  strings.TrimSpace(firstOf(rec, nameCols)),
		Impressions: Number(rec["impressions"]),
		Clicks:      Number(rec["clicks"]),
		Cost:        Number(rec["cost"]),
		Orders:      Number(rec["orders"]),
		Sales:       Number(rec["sales"]),
	}
	for k, v := range rec {
		if !strings.HasSuffix(k, "_spike") && !strings.HasSuffix(k, "_flag") {
			continue
		}
		switch k {
		case "cost_spike":
			row.CostSpike = Truthy(v)
		case "sales_spike":
			row.SalesSpike = Truthy(v)
		case "zero_sales_spend_flag":
			row.ZeroSalesSpend = Truthy(v)
		}
	}
	return row, true
}

func firstOf(rec map[string]string, cols []string) string {
	for _, c := range cols {
		if v, ok := rec[c]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
