package normalize

import (
	"testing"
	"time"
)

func TestNumberCoercion(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"12.5", 12.5},
		{"$1,234.56", 1234.56},
		{"₹99", 99},
		{" 42 ", 42},
		{"", 0},
		{"n/a", 0},
		{"abc", 0},
		{"-5", 0}, // counters are non-negative
		{"1.2.3", 0},
	}
	for _, c := range cases {
		if got := Number(c.in); got != c.want {
			t.Errorf("Number(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTruthyTokens(t *testing.T) {
	truthy := []string{"true", "True", "TRUE", "1", "1.0", "yes", " true "}
	for _, s := range truthy {
		if !Truthy(s) {
			t.Errorf("Truthy(%q) = false, want true", s)
		}
	}
	falsy := []string{"false", "False", "0", "", "no", "2", "truth"}
	for _, s := range falsy {
		if Truthy(s) {
			t.Errorf("Truthy(%q) = true, want false", s)
		}
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-01-15", "2024-01-15", true},
		{"2024/01/15", "2024-01-15", true},
		{"2024-01-15T10:30:00Z", "2024-01-15", true},
		{"2024-01-15 10:30:00", "2024-01-15", true},
		{"not a date", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseDate(c.in)
		if ok != c.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", c.in, ok, c.ok)
			continue
		}
		if !ok {
			continue
		}
		if got.Format("2006-01-02") != c.want {
			t.Errorf("ParseDate(%q) = %s, want %s", c.in, got.Format("2006-01-02"), c.want)
		}
		if got.Location() != time.UTC || got.Hour() != 0 {
			t.Errorf("ParseDate(%q) not canonical UTC midnight: %v", c.in, got)
		}
	}
}

func TestRowsDropsInvalidDates(t *testing.T) {
	records := []map[string]string{
		{"date": "2024-01-01", "campaign_id": "A", "cost": "10"},
		{"date": "garbage", "campaign_id": "B", "cost": "5"},
		{"date": "2024-01-02", "campaign_id": "C", "cost": "bad"},
	}
	rows := Rows(records)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].EntityID != "A" || rows[1].EntityID != "C" {
		t.Fatalf("unexpected row order: %+v", rows)
	}
	if rows[1].Cost != 0 {
		t.Fatalf("bad numeric should coerce to 0, got %v", rows[1].Cost)
	}
}

func TestRowBooleanSuffixes(t *testing.T) {
	row, ok := Row(map[string]string{
		"date":                  "2024-03-01",
		"campaign_id":           "C1",
		"campaign_name":         "Brand",
		"cost_spike":            "True",
		"sales_spike":           "0",
		"zero_sales_spend_flag": "1",
	})
	if !ok {
		t.Fatal("expected row to parse")
	}
	if !row.CostSpike || row.SalesSpike || !row.ZeroSalesSpend {
		t.Fatalf("boolean coercion wrong: %+v", row)
	}
	if row.EntityName != "Brand" {
		t.Fatalf("expected name Brand, got %q", row.EntityName)
	}
}

func TestRowIdentifierFallbackColumns(t *testing.T) {
	row, ok := Row(map[string]string{"date": "2024-03-01", "search_term": "blue shoes"})
	if !ok {
		t.Fatal("expected row to parse")
	}
	if row.EntityID != "" || row.EntityName != "blue shoes" {
		t.Fatalf("expected name from search_term column, got %+v", row)
	}
}
