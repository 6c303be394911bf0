package normalize

import (
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{"2006-01-02", "2006/01/02", "01/02/2006"}

// ParseDate parses a calendar date at day granularity, normalized to UTC
// midnight. Timestamps keep only their date part; anything else fails.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		// ISO timestamps: keep the date prefix.
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return dayUTC(t), true
		}
		s = s[:10]
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dayUTC(t), true
		}
	}
	return time.Time{}, false
}

// Number coerces a raw token to a non-negative float: strip everything except
// digits, dot and minus, then parse. Unparseable or negative values become 0.
func Number(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// Truthy maps the fixed token set to true; everything else is false.
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "1.0", "yes":
		return true
	}
	return false
}

func dayUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
