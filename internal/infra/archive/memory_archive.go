package archive

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"sync"

	"github.com/yanqian/career-radar/internal/domain/insight"
)

// MemoryArchive keeps uploaded exports in memory. Useful for tests and local dev.
type MemoryArchive struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryArchive constructs an empty archive.
func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{objects: make(map[string][]byte)}
}

// Put stores the export and returns its metadata.
func (a *MemoryArchive) Put(_ context.Context, key string, data []byte, _ string) (insight.StoredObject, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	hash := md5.Sum(data)
	a.objects[key] = append([]byte(nil), data...)
	return insight.StoredObject{Key: key, Size: int64(len(data)), ETag: hex.EncodeToString(hash[:])}, nil
}

// Object returns a stored export.
func (a *MemoryArchive) Object(key string) ([]byte, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	data, ok := a.objects[key]
	return data, ok
}

var _ insight.Archive = (*MemoryArchive)(nil)
