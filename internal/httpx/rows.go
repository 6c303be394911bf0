package httpx

import (
	"github.com/adsight/adsight/internal/models"
)

// rowJSON is the wire shape for row endpoints: dates echo as YYYY-MM-DD.
type rowJSON struct {
	Date        string   `json:"date"`
	EntityID    string   `json:"entity_id"`
	EntityName  string   `json:"entity_name"`
	Impressions float64  `json:"impressions"`
	Clicks      float64  `json:"clicks"`
	Cost        float64  `json:"cost"`
	Orders      float64  `json:"orders"`
	Sales       float64  `json:"sales"`
	CTR         *float64 `json:"ctr"`
	CPC         *float64 `json:"cpc"`
	CVR         *float64 `json:"cvr"`
	ACOS        *float64 `json:"acos"`
	ROAS        *float64 `json:"roas"`
	ZeroSales   bool     `json:"zero_sales_spend_flag"`
	CostSpike   bool     `json:"cost_spike"`
	SalesSpike  bool     `json:"sales_spike"`
}

func toRowJSON(rows []models.MetricRow) []rowJSON {
	out := make([]rowJSON, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowJSON{
			Date:        r.Date.Format("2006-01-02"),
			EntityID:    r.EntityID,
			EntityName:  r.EntityName,
			Impressions: r.Impressions,
			Clicks:      r.Clicks,
			Cost:        r.Cost,
			Orders:      r.Orders,
			Sales:       r.Sales,
			CTR:         r.CTR,
			CPC:         r.CPC,
			CVR:         r.CVR,
			ACOS:        r.ACOS,
			ROAS:        r.ROAS,
			ZeroSales:   r.ZeroSalesSpend,
			CostSpike:   r.CostSpike,
			SalesSpike:  r.SalesSpike,
		})
	}
	return out
}
