package blob

import (
	"context"
	"sync"

	"hotel-booking-api/internal/infra"
)

// MemoryBackend is the in-memory substitute used by tests. LoadErr and
// StoreErr, when set, are returned as-is to exercise failure paths.
type MemoryBackend struct {
	mu       sync.RWMutex
	blobs    map[string][]byte
	LoadErr  error
	StoreErr error
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{blobs: make(map[string][]byte)}
}

func (b *MemoryBackend) Load(_ context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.LoadErr != nil {
		return nil, b.LoadErr
	}
	data, ok := b.blobs[key]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "blob "+key+" does not exist")
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (b *MemoryBackend) Store(_ context.Context, key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.StoreErr != nil {
		return b.StoreErr
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	b.blobs[key] = stored
	return nil
}

// Seed writes raw bytes under key, bypassing error injection. Tests use it
// to plant corrupt data.
func (b *MemoryBackend) Seed(key string, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blobs[key] = data
}
