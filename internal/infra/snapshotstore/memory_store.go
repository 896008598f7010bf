package snapshotstore

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/career-radar/internal/domain/insight"
)

type entry struct {
	snapshot  insight.Snapshot
	expiresAt time.Time
}

// MemoryStore keeps prediction snapshots in process memory for tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[int64]entry
	now     func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[int64]entry), now: time.Now}
}

// Get implements insight.SnapshotStore. Expired entries are evicted lazily.
func (s *MemoryStore) Get(_ context.Context, userID int64) (insight.Snapshot, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[userID]
	s.mu.RUnlock()
	if !ok {
		return insight.Snapshot{}, false, nil
	}
	if !s.expired(e.expiresAt) {
		return e.snapshot, true, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A Save may have replaced the entry since the read lock was released.
	cur, ok := s.entries[userID]
	if !ok {
		return insight.Snapshot{}, false, nil
	}
	if s.expired(cur.expiresAt) {
		delete(s.entries, userID)
		return insight.Snapshot{}, false, nil
	}
	return cur.snapshot, true, nil
}

// Save stores the snapshot; a non-positive ttl never expires.
func (s *MemoryStore) Save(_ context.Context, snapshot insight.Snapshot, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.entries[snapshot.UserID] = entry{snapshot: snapshot, expiresAt: exp}
	return nil
}

// Delete drops the snapshot of a user.
func (s *MemoryStore) Delete(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
	return nil
}

func (s *MemoryStore) expired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(s.now())
}

var _ insight.SnapshotStore = (*MemoryStore)(nil)
