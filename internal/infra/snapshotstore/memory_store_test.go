package snapshotstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/career-radar/internal/domain/demand"
	"github.com/yanqian/career-radar/internal/domain/insight"
)

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, 1)
	require.NoError(t, err)
	require.False(t, ok)

	snap := insight.Snapshot{UserID: 1, Result: demand.Result{Demand: demand.LevelHigh}, CareerDecision: "Good time to switch"}
	require.NoError(t, store.Save(ctx, snap, time.Hour))

	got, ok, err := store.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, snap, got)

	require.NoError(t, store.Delete(ctx, 1))
	_, ok, err = store.Get(ctx, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, insight.Snapshot{UserID: 2}, time.Minute))
	require.NoError(t, store.Save(ctx, insight.Snapshot{UserID: 3}, 0))

	now = now.Add(2 * time.Minute)
	_, ok, err := store.Get(ctx, 2)
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = store.Get(ctx, 3)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMemoryStore_ExpiredGetKeepsConcurrentSave(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	require.NoError(t, store.Save(ctx, insight.Snapshot{UserID: 4, CareerDecision: "stale"}, time.Minute))

	now = now.Add(2 * time.Minute)
	calls := 0
	store.now = func() time.Time {
		calls++
		if calls == 1 {
			// Lands between the expiry check and the eviction.
			require.NoError(t, store.Save(ctx, insight.Snapshot{UserID: 4, CareerDecision: "fresh"}, time.Hour))
		}
		return now
	}

	got, ok, err := store.Get(ctx, 4)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "fresh", got.CareerDecision)

	got, ok, err = store.Get(ctx, 4)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "fresh", got.CareerDecision)
}

func TestValkeyStore_KeyLayout(t *testing.T) {
	store := NewValkeyStore(nil, "")
	require.Equal(t, "career-radar:snapshot:42", store.key(42))

	store = NewValkeyStore(nil, "staging")
	require.Equal(t, "staging:snapshot:7", store.key(7))
}
