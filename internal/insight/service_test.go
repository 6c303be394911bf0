package insight

import (
	"testing"

	"github.com/adsight/adsight/internal/models"
	"github.com/adsight/adsight/internal/store"
)

func TestServiceViewSnapshotsStore(t *testing.T) {
	st := store.NewMemoryStore()
	st.Replace(models.EntityCampaign, []models.MetricRow{
		row("2024-01-01", "A", 100, 5, 10, 0, 0),
	})
	svc := NewService(st, DefaultPolicy())

	view := svc.View(models.FilterRequest{})
	if view.Summary.Spend != 10 {
		t.Fatalf("spend = %v, want 10", view.Summary.Spend)
	}

	// swapping the store contents changes the next view, not the previous one
	st.Replace(models.EntityCampaign, []models.MetricRow{
		row("2024-01-01", "B", 0, 0, 3, 0, 0),
	})
	if svc.View(models.FilterRequest{}).Summary.Spend != 3 {
		t.Fatal("view should reflect the latest store contents")
	}
	if view.Summary.Spend != 10 {
		t.Fatal("earlier view model must be unaffected by reloads")
	}
}

func TestServiceRowsFilterAndLimit(t *testing.T) {
	st := store.NewMemoryStore()
	st.Replace(models.EntityCampaign, []models.MetricRow{
		row("2024-01-01", "A", 100, 5, 10, 0, 0),
		row("2024-01-02", "A", 100, 5, 10, 0, 0),
		row("2024-01-03", "B", 100, 5, 10, 0, 0),
	})
	svc := NewService(st, DefaultPolicy())

	rows := svc.Rows(models.EntityCampaign, models.FilterRequest{EntityIDs: []string{"A"}}, 0)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows for A, got %d", len(rows))
	}
	if rows[0].CTR == nil || !rows[0].ZeroSalesSpend {
		t.Fatalf("rows should come back derived and flagged: %+v", rows[0])
	}

	if got := svc.Rows(models.EntityCampaign, models.FilterRequest{}, 1); len(got) != 1 {
		t.Fatalf("limit 1 should truncate, got %d", len(got))
	}
}
