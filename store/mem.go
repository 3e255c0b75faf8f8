package store

import (
	"context"
	"sync"
)

// MemBackend keeps state blobs in memory. It exists for tests and for
// wiring persistent-flavored code without real storage.
type MemBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemBackend builds an empty in-memory backend.
func NewMemBackend() *MemBackend {
	return &MemBackend{data: make(map[string][]byte)}
}

// Load returns the blob for key.
func (b *MemBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.data[key]
	if !ok {
		return nil, false, nil
	}
	dup := make([]byte, len(data))
	copy(dup, data)
	return dup, true, nil
}

// Save stores a copy of the blob for key.
func (b *MemBackend) Save(ctx context.Context, key string, data []byte) error {
	dup := make([]byte, len(data))
	copy(dup, data)

	b.mu.Lock()
	b.data[key] = dup
	b.mu.Unlock()
	return nil
}
