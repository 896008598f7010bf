package insight

import (
	"context"
	"time"
)

// SnapshotStore keeps the latest prediction per user.
type SnapshotStore interface {
	Get(ctx context.Context, userID int64) (Snapshot, bool, error)
	Save(ctx context.Context, snapshot Snapshot, ttl time.Duration) error
	Delete(ctx context.Context, userID int64) error
}

// StoredObject describes an uploaded archive.
type StoredObject struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
	ETag string `json:"etag"`
}

// Archive uploads history exports.
type Archive interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (StoredObject, error)
}
