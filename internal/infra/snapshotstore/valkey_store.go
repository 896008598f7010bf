package snapshotstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/career-radar/internal/domain/insight"
)

// ValkeyStore persists snapshots as JSON strings in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "career-radar"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Get(ctx context.Context, userID int64) (insight.Snapshot, bool, error) {
	cmd := s.client.B().Get().Key(s.key(userID)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return insight.Snapshot{}, false, nil
		}
		return insight.Snapshot{}, false, err
	}
	var snapshot insight.Snapshot
	if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
		return insight.Snapshot{}, false, err
	}
	return snapshot, true, nil
}

func (s *ValkeyStore) Save(ctx context.Context, snapshot insight.Snapshot, ttl time.Duration) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.key(snapshot.UserID)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) Delete(ctx context.Context, userID int64) error {
	return s.client.Do(ctx, s.client.B().Del().Key(s.key(userID)).Build()).Error()
}

func (s *ValkeyStore) key(userID int64) string {
	return fmt.Sprintf("%s:snapshot:%d", s.prefix, userID)
}

var _ insight.SnapshotStore = (*ValkeyStore)(nil)
