package insight

import (
	"strings"
	"time"

	"github.com/adsight/adsight/internal/models"
)

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// IDSet builds a normalized membership set from a list of identifiers. Empty
// tokens are skipped.
func IDSet(ids []string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, id := range ids {
		id = norm(id)
		if id != "" {
			out[id] = struct{}{}
		}
	}
	return out
}

// FilterByRange keeps rows whose date falls inside the inclusive bounds. A nil
// bound is unbounded on that side. Dates are already day-level UTC, so the
// comparison has no timezone ambiguity.
func FilterByRange(rows []models.MetricRow, start, end *time.Time) []models.MetricRow {
	out := make([]models.MetricRow, 0, len(rows))
	for _, r := range rows {
		if start != nil && r.Date.Before(dayOf(*start)) {
			continue
		}
		if end != nil && r.Date.After(dayOf(*end)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterByEntity keeps rows whose identity is in the set. An empty set keeps
// everything. Identity resolution is id if present, else name, else empty.
func FilterByEntity(rows []models.MetricRow, ids map[string]struct{}) []models.MetricRow {
	if len(ids) == 0 {
		return append([]models.MetricRow(nil), rows...)
	}
	out := make([]models.MetricRow, 0, len(rows))
	for _, r := range rows {
		if _, ok := ids[norm(r.Identity())]; ok {
			out = append(out, r)
		}
	}
	return out
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
