package store

import (
	"sync"
	"time"

	"github.com/adsight/adsight/internal/models"
)

// MemoryStore holds the loaded datasets. Readers always get copied slices so
// each request's pipeline works on its own snapshot; rows themselves are value
// records and are never mutated after load.
type MemoryStore struct {
	mu       sync.RWMutex
	tables   map[models.EntityType][]models.MetricRow
	loadedAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[models.EntityType][]models.MetricRow)}
}

// Replace swaps the rows for one table.
func (s *MemoryStore) Replace(t models.EntityType, rows []models.MetricRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[t] = append([]models.MetricRow(nil), rows...)
	s.loadedAt = time.Now()
}

// Table returns a copy of one table's rows.
func (s *MemoryStore) Table(t models.EntityType) []models.MetricRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MetricRow(nil), s.tables[t]...)
}

// Snapshot returns a copy of every table, suitable for one pipeline run.
func (s *MemoryStore) Snapshot() models.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds := models.Dataset{}
	for t, rows := range s.tables {
		ds[t] = append([]models.MetricRow(nil), rows...)
	}
	return ds
}

// Len reports the number of rows loaded for one table.
func (s *MemoryStore) Len(t models.EntityType) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables[t])
}

// LoadedAt reports when any table was last replaced.
func (s *MemoryStore) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
