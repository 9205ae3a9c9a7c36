package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
)

// FilterCache keeps the serialized filters of a resource, keyed by
// GenerateCacheKey over its filter declarations.
type FilterCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte) error
}

type InMemoryFilterCache struct {
	mu    sync.RWMutex
	cache map[string][]byte
}

func NewInMemoryFilterCache() *InMemoryFilterCache {
	return &InMemoryFilterCache{
		cache: make(map[string][]byte),
	}
}

func (c *InMemoryFilterCache) Get(ctx context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	payload, ok := c.cache[key]
	if !ok {
		return nil, false
	}

	result := make([]byte, len(payload))
	copy(result, payload)
	return result, true
}

func (c *InMemoryFilterCache) Set(ctx context.Context, key string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make([]byte, len(payload))
	copy(stored, payload)
	c.cache[key] = stored
	return nil
}

// GenerateCacheKey hashes the resource key together with the serialized
// filter-facing configuration of its fields. It is computed once per
// resource, when the registry is built.
func GenerateCacheKey(resource string, fields []json.Marshaler) (string, error) {
	h := sha256.New()
	h.Write([]byte(resource))
	for _, f := range fields {
		data, err := f.MarshalJSON()
		if err != nil {
			return "", err
		}
		h.Write(data)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
