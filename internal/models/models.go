package models

import "time"

// EntityType identifies which performance table a row belongs to.
type EntityType string

const (
	EntityCampaign   EntityType = "campaign"
	EntityTargeting  EntityType = "targeting"
	EntitySearchTerm EntityType = "search_term"
	EntityPlacement  EntityType = "placement"
	EntityProduct    EntityType = "product"
)

// EntityTypes lists every table in a fixed order. Builders iterate this order
// so output stays deterministic.
var EntityTypes = []EntityType{
	EntityCampaign,
	EntityTargeting,
	EntitySearchTerm,
	EntityPlacement,
	EntityProduct,
}

// MetricRow is one day of performance for one entity. Counters are
// non-negative; derived ratios are nil when their denominator is zero.
type MetricRow struct {
	Date        time.Time `json:"date"`
	EntityID    string    `json:"entity_id"`
	EntityName  string    `json:"entity_name"`
	Impressions float64   `json:"impressions"`
	Clicks      float64   `json:"clicks"`
	Cost        float64   `json:"cost"`
	Orders      float64   `json:"orders"`
	Sales       float64   `json:"sales"`

	CTR  *float64 `json:"ctr"`
	CPC  *float64 `json:"cpc"`
	CVR  *float64 `json:"cvr"`
	ACOS *float64 `json:"acos"`
	ROAS *float64 `json:"roas"`

	ZeroSalesSpend bool `json:"zero_sales_spend_flag"`
	CostSpike      bool `json:"cost_spike"`
	SalesSpike     bool `json:"sales_spike"`
}

// Identity resolves the membership identifier for entity filtering:
// id if present, else name, else empty.
func (r MetricRow) Identity() string {
	if r.EntityID != "" {
		return r.EntityID
	}
	return r.EntityName
}

// ShareRow is one aggregated entity within a filtered scope, with its share of
// the scope's spend and sales. Shares are zero when the scope total is zero.
type ShareRow struct {
	EntityID    string  `json:"entity_id"`
	EntityName  string  `json:"entity_name"`
	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	Cost        float64 `json:"cost"`
	Orders      float64 `json:"orders"`
	Sales       float64 `json:"sales"`

	CTR  *float64 `json:"ctr"`
	CPC  *float64 `json:"cpc"`
	CVR  *float64 `json:"cvr"`
	ACOS *float64 `json:"acos"`
	ROAS *float64 `json:"roas"`

	SpendShare float64 `json:"spend_share"`
	SalesShare float64 `json:"sales_share"`
	ShareGap   float64 `json:"share_gap"`
}

// Summary is the headline KPI block for a filtered scope. Ratios are computed
// from the scope's summed counters, never averaged across rows.
type Summary struct {
	Spend          float64  `json:"spend"`
	Sales          float64  `json:"sales"`
	ROAS           *float64 `json:"roas"`
	ACOS           *float64 `json:"acos"`
	CTR            *float64 `json:"ctr"`
	CPC            *float64 `json:"cpc"`
	CVR            *float64 `json:"cvr"`
	ZeroSalesSpend float64  `json:"zero_sales_spend"`
}

// Issue is a flagged waste condition, produced transiently per filter
// application.
type Issue struct {
	Kind          string `json:"kind"`
	EntityLabel   string `json:"entity_label"`
	ImpactSummary string `json:"impact_summary"`
	Rationale     string `json:"rationale"`
	SuggestedNext string `json:"suggested_next"`
}

// ActionCategory classifies a recommended operator action.
type ActionCategory string

const (
	ActionRebalance   ActionCategory = "Rebalance"
	ActionScale       ActionCategory = "Scale"
	ActionInvestigate ActionCategory = "Investigate"
	ActionStopWaste   ActionCategory = "StopWaste"
)

// Severity orders actions for display: bad > warn > good.
type Severity string

const (
	SeverityGood Severity = "good"
	SeverityWarn Severity = "warn"
	SeverityBad  Severity = "bad"
)

type Action struct {
	Category      ActionCategory `json:"category"`
	Title         string         `json:"title"`
	EntityLabel   string         `json:"entity_label"`
	Rationale     string         `json:"rationale"`
	SuggestedNext string         `json:"suggested_next"`
	Severity      Severity       `json:"severity"`
}

// Dataset holds the loaded rows for every entity table.
type Dataset map[EntityType][]MetricRow

// FilterRequest is an immutable description of one view computation. The
// caller owns it; the pipeline holds no state between calls.
type FilterRequest struct {
	Start     *time.Time
	End       *time.Time
	EntityIDs []string
	// Threshold overrides the configured zero-sales threshold when set.
	Threshold *float64
}

// ViewModel is the full output of one pipeline run over a filtered dataset.
type ViewModel struct {
	Summary   Summary            `json:"summary"`
	Shares    []ShareRow         `json:"shares"`
	Issues    []Issue            `json:"issues"`
	Actions   []Action           `json:"actions"`
	RowCounts map[EntityType]int `json:"row_counts"`
}
