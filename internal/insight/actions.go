package insight

import (
	"fmt"
	"sort"

	"github.com/adsight/adsight/internal/models"
)

// Policy carries every tunable threshold of the recommendation builder. The
// winner-scaling and share-gap cutoffs are configuration, not constants baked
// into the algorithm.
type Policy struct {
	ZeroSalesThreshold float64
	ShareGapThreshold  float64
	WinnerMinCost      float64
	WinnerMinROAS      float64
	MaxIssues          int
	MaxActions         int
}

// DefaultPolicy returns the stock thresholds.
func DefaultPolicy() Policy {
	return Policy{
		ZeroSalesThreshold: 1.0,
		ShareGapThreshold:  0.03,
		WinnerMinCost:      50,
		WinnerMinROAS:      3,
		MaxIssues:          12,
		MaxActions:         18,
	}
}

// per-type caps for waste selection
const (
	wasteIssuesPerType = 4
	wasteActionsCap    = 6
	rebalanceCap       = 4
	scaleCap           = 6
	spikeCap           = 6
)

var nextSteps = map[models.EntityType]string{
	models.EntitySearchTerm: "Add a negative keyword for this term",
	models.EntityTargeting:  "Lower the bid or pause the target",
	models.EntityPlacement:  "Reduce the placement multiplier",
	models.EntityProduct:    "Improve the listing or pause the ad",
}

func nextStep(t models.EntityType) string {
	if s, ok := nextSteps[t]; ok {
		return s
	}
	return "Reduce the bid or budget"
}

func label(t models.EntityType, id, name string) string {
	n := name
	if n == "" {
		n = id
	}
	return fmt.Sprintf("%s %s", t, n)
}

// wasteRows filters rows matching the zero-sales spend predicate and returns
// them sorted by cost descending, stable by original order, capped at max.
func wasteRows(rows []models.MetricRow, threshold float64, max int) []models.MetricRow {
	out := make([]models.MetricRow, 0)
	for _, r := range rows {
		if r.Cost >= threshold && r.Sales <= 0 {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cost > out[j].Cost })
	return capRows(out, max)
}

func capRows(rows []models.MetricRow, max int) []models.MetricRow {
	if len(rows) > max {
		return rows[:max]
	}
	return rows
}

// issueTypes are the tables summarized in the issues list.
var issueTypes = []models.EntityType{
	models.EntityCampaign,
	models.EntitySearchTerm,
	models.EntityTargeting,
}

// BuildIssues surfaces the top waste conditions across entity types as a
// single cross-type summary capped at MaxIssues.
func BuildIssues(sets models.Dataset, p Policy) []models.Issue {
	issues := make([]models.Issue, 0)
	for _, t := range issueTypes {
		for _, r := range wasteRows(sets[t], p.ZeroSalesThreshold, wasteIssuesPerType) {
			issues = append(issues, models.Issue{
				Kind:          "Waste",
				EntityLabel:   label(t, r.EntityID, r.EntityName),
				ImpactSummary: fmt.Sprintf("Spend %.2f with 0 sales", r.Cost),
				Rationale:     fmt.Sprintf("Cost %.2f at or above %.2f produced no sales", r.Cost, p.ZeroSalesThreshold),
				SuggestedNext: nextStep(t),
			})
		}
	}
	if len(issues) > p.MaxIssues {
		issues = issues[:p.MaxIssues]
	}
	return issues
}

// BuildActions assembles the recommended action list. Concatenation order is
// fixed: stop-waste first, then rebalance, scale, spike investigation; the
// whole list is truncated to MaxActions.
func BuildActions(sets models.Dataset, p Policy) []models.Action {
	actions := make([]models.Action, 0)
	actions = append(actions, stopWasteActions(sets[models.EntityCampaign], p)...)
	actions = append(actions, rebalanceActions(sets[models.EntityCampaign], p)...)
	actions = append(actions, scaleActions(sets[models.EntityCampaign], p)...)
	actions = append(actions, spikeActions(sets[models.EntityCampaign])...)
	if len(actions) > p.MaxActions {
		actions = actions[:p.MaxActions]
	}
	return actions
}

func stopWasteActions(campaigns []models.MetricRow, p Policy) []models.Action {
	out := make([]models.Action, 0)
	for _, r := range wasteRows(campaigns, p.ZeroSalesThreshold, wasteActionsCap) {
		out = append(out, models.Action{
			Category:      models.ActionStopWaste,
			Title:         "Stop waste",
			EntityLabel:   label(models.EntityCampaign, r.EntityID, r.EntityName),
			Rationale:     fmt.Sprintf("Spend %.2f with 0 sales", r.Cost),
			SuggestedNext: nextStep(models.EntityCampaign),
			Severity:      models.SeverityBad,
		})
	}
	return out
}

func rebalanceActions(campaigns []models.MetricRow, p Policy) []models.Action {
	shares := ComputeShares(campaigns)

	over := make([]models.ShareRow, 0)
	under := make([]models.ShareRow, 0)
	for _, s := range shares {
		switch {
		case s.ShareGap > p.ShareGapThreshold:
			over = append(over, s)
		case s.ShareGap < -p.ShareGapThreshold:
			under = append(under, s)
		}
	}
	sort.SliceStable(over, func(i, j int) bool { return over[i].ShareGap > over[j].ShareGap })
	sort.SliceStable(under, func(i, j int) bool { return under[i].ShareGap < under[j].ShareGap })
	if len(over) > rebalanceCap {
		over = over[:rebalanceCap]
	}
	if len(under) > rebalanceCap {
		under = under[:rebalanceCap]
	}

	out := make([]models.Action, 0, len(over)+len(under))
	for _, s := range over {
		out = append(out, models.Action{
			Category:      models.ActionRebalance,
			Title:         "Shift budget away",
			EntityLabel:   label(models.EntityCampaign, s.EntityID, s.EntityName),
			Rationale:     fmt.Sprintf("Takes %.1f%% of spend but only %.1f%% of sales", s.SpendShare*100, s.SalesShare*100),
			SuggestedNext: "Move budget toward campaigns earning their share of sales",
			Severity:      models.SeverityWarn,
		})
	}
	for _, s := range under {
		out = append(out, models.Action{
			Category:      models.ActionRebalance,
			Title:         "Shift budget toward",
			EntityLabel:   label(models.EntityCampaign, s.EntityID, s.EntityName),
			Rationale:     fmt.Sprintf("Earns %.1f%% of sales on only %.1f%% of spend", s.SalesShare*100, s.SpendShare*100),
			SuggestedNext: "Raise the budget gradually and watch ACOS",
			Severity:      models.SeverityGood,
		})
	}
	return out
}

func scaleActions(campaigns []models.MetricRow, p Policy) []models.Action {
	shares := ComputeShares(campaigns)

	winners := make([]models.ShareRow, 0)
	for _, s := range shares {
		if s.Cost >= p.WinnerMinCost && s.ROAS != nil && *s.ROAS >= p.WinnerMinROAS {
			winners = append(winners, s)
		}
	}
	sort.SliceStable(winners, func(i, j int) bool { return *winners[i].ROAS > *winners[j].ROAS })
	if len(winners) > scaleCap {
		winners = winners[:scaleCap]
	}

	out := make([]models.Action, 0, len(winners))
	for _, s := range winners {
		out = append(out, models.Action{
			Category:      models.ActionScale,
			Title:         "Scale winner",
			EntityLabel:   label(models.EntityCampaign, s.EntityID, s.EntityName),
			Rationale:     fmt.Sprintf("ROAS %.2f on spend %.2f", *s.ROAS, s.Cost),
			SuggestedNext: "Increase the budget gradually and watch ACOS",
			Severity:      models.SeverityGood,
		})
	}
	return out
}

func spikeActions(campaigns []models.MetricRow) []models.Action {
	spikes := make([]models.MetricRow, 0)
	for _, r := range campaigns {
		if r.CostSpike && !r.SalesSpike {
			spikes = append(spikes, r)
		}
	}
	sort.SliceStable(spikes, func(i, j int) bool { return spikes[i].Cost > spikes[j].Cost })
	spikes = capRows(spikes, spikeCap)

	out := make([]models.Action, 0, len(spikes))
	for _, r := range spikes {
		out = append(out, models.Action{
			Category:      models.ActionInvestigate,
			Title:         "Investigate cost spike",
			EntityLabel:   label(models.EntityCampaign, r.EntityID, r.EntityName),
			Rationale:     fmt.Sprintf("Cost spiked to %.2f on %s without a matching sales spike", r.Cost, r.Date.Format("2006-01-02")),
			SuggestedNext: "Check bid changes, budget caps and new targets",
			Severity:      models.SeverityWarn,
		})
	}
	return out
}
