package insight

import (
	"reflect"
	"testing"

	"github.com/adsight/adsight/internal/models"
)

func sampleDataset() models.Dataset {
	return models.Dataset{
		models.EntityCampaign: {
			row("2024-01-01", "A", 100, 5, 10, 0, 0),
			row("2024-01-01", "B", 200, 10, 5, 2, 50),
			row("2024-02-01", "A", 100, 5, 20, 1, 10),
		},
		models.EntitySearchTerm: {
			row("2024-01-01", "blue shoes", 50, 2, 3, 0, 0),
		},
	}
}

func TestComputeViewFiltersAndSummarizes(t *testing.T) {
	ds := sampleDataset()
	start := day("2024-01-01")
	end := day("2024-01-31")
	view := ComputeView(ds, models.FilterRequest{Start: &start, End: &end}, DefaultPolicy())

	if view.RowCounts[models.EntityCampaign] != 2 {
		t.Fatalf("expected 2 campaign rows in January, got %d", view.RowCounts[models.EntityCampaign])
	}
	if view.Summary.Spend != 15 || view.Summary.Sales != 50 {
		t.Fatalf("summary totals wrong: %+v", view.Summary)
	}
	if view.Summary.ZeroSalesSpend != 10 {
		t.Fatalf("zero-sales spend = %v, want 10", view.Summary.ZeroSalesSpend)
	}
	if len(view.Shares) != 2 {
		t.Fatalf("expected 2 share rows, got %d", len(view.Shares))
	}
	// issue list spans campaign and search-term waste
	if len(view.Issues) != 2 {
		t.Fatalf("expected 2 issues (A and blue shoes), got %d: %+v", len(view.Issues), view.Issues)
	}
}

func TestComputeViewThresholdOverride(t *testing.T) {
	ds := sampleDataset()
	th := 100.0
	view := ComputeView(ds, models.FilterRequest{Threshold: &th}, DefaultPolicy())
	if view.Summary.ZeroSalesSpend != 0 {
		t.Fatalf("threshold 100 should flag nothing, got %v", view.Summary.ZeroSalesSpend)
	}
	if len(view.Issues) != 0 {
		t.Fatalf("threshold 100 should yield no issues, got %d", len(view.Issues))
	}
}

func TestComputeViewEntitySelection(t *testing.T) {
	ds := sampleDataset()
	view := ComputeView(ds, models.FilterRequest{EntityIDs: []string{"A"}}, DefaultPolicy())
	if view.RowCounts[models.EntityCampaign] != 2 {
		t.Fatalf("expected only A's 2 rows, got %d", view.RowCounts[models.EntityCampaign])
	}
	if len(view.Shares) != 1 || view.Shares[0].EntityID != "A" {
		t.Fatalf("shares should cover only A: %+v", view.Shares)
	}
	if view.Shares[0].SpendShare != 1 {
		t.Fatalf("single-entity scope spend share = %v, want 1", view.Shares[0].SpendShare)
	}
}

func TestComputeViewDoesNotMutateDataset(t *testing.T) {
	ds := sampleDataset()
	before := append([]models.MetricRow(nil), ds[models.EntityCampaign]...)
	ComputeView(ds, models.FilterRequest{}, DefaultPolicy())
	if !reflect.DeepEqual(before, ds[models.EntityCampaign]) {
		t.Fatal("dataset rows were mutated by the pipeline")
	}
}

func TestComputeViewEmptyDataset(t *testing.T) {
	view := ComputeView(models.Dataset{}, models.FilterRequest{}, DefaultPolicy())
	if len(view.Issues) != 0 || len(view.Actions) != 0 || len(view.Shares) != 0 {
		t.Fatalf("empty dataset must yield empty lists: %+v", view)
	}
	if view.Summary.Spend != 0 {
		t.Fatalf("empty dataset summary must be zero-valued: %+v", view.Summary)
	}
}
