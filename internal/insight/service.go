package insight

import (
	"github.com/adsight/adsight/internal/models"
	"github.com/adsight/adsight/internal/obs"
	"github.com/adsight/adsight/internal/store"
)

// Service answers view and row queries against the current store snapshot.
// It holds no per-request state: every call snapshots the store and runs the
// pure pipeline over the copy.
type Service struct {
	st     *store.MemoryStore
	policy Policy
}

func NewService(st *store.MemoryStore, policy Policy) *Service {
	return &Service{st: st, policy: policy}
}

func (s *Service) Policy() Policy { return s.policy }

// View computes the full view model for one filter request.
func (s *Service) View(req models.FilterRequest) models.ViewModel {
	obs.PipelineRuns.Inc()
	return ComputeView(s.st.Snapshot(), req, s.policy)
}

// Rows returns one table's rows, filtered, derived and flagged. A positive
// limit truncates the result.
func (s *Service) Rows(t models.EntityType, req models.FilterRequest, limit int) []models.MetricRow {
	threshold := s.policy.ZeroSalesThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	rows := FilterByRange(s.st.Table(t), req.Start, req.End)
	rows = FilterByEntity(rows, IDSet(req.EntityIDs))
	rows = FlagZeroSales(Derive(rows), threshold)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
