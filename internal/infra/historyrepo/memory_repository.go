package historyrepo

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/career-radar/internal/domain/history"
)

// MemoryRepository keeps the prediction log in process memory.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []history.Record
	seq     int64
	now     func() time.Time
}

// NewMemoryRepository constructs an empty log.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: func() time.Time { return time.Now().UTC() }}
}

// Save appends the record with a fresh ID.
func (r *MemoryRepository) Save(_ context.Context, record history.Record) (history.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	record.ID = r.seq
	record.CreatedAt = r.now()
	r.records = append(r.records, record)
	return record, nil
}

// Recent returns up to limit records, newest first.
func (r *MemoryRepository) Recent(_ context.Context, limit int) ([]history.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.recentLocked(limit), nil
}

// Summary counts every record by demand label.
func (r *MemoryRepository) Summary(_ context.Context, recentLimit int) (history.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dist := history.NewDistribution()
	for _, rec := range r.records {
		dist[rec.Demand]++
	}
	return history.Summary{
		Total:        len(r.records),
		Distribution: dist,
		Recent:       r.recentLocked(recentLimit),
	}, nil
}

// DemandLabels returns the labels of the newest limit records.
func (r *MemoryRepository) DemandLabels(_ context.Context, limit int) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recent := r.recentLocked(limit)
	labels := make([]string, 0, len(recent))
	for _, rec := range recent {
		labels = append(labels, rec.Demand)
	}
	return labels, nil
}

// records are appended in ID order, so newest first is a reverse walk.
func (r *MemoryRepository) recentLocked(limit int) []history.Record {
	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]history.Record, 0, limit)
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.records[i])
	}
	return out
}

var _ history.Repository = (*MemoryRepository)(nil)
