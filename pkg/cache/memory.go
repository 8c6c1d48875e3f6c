package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/shashiranjanraj/tasker/pkg/metrics"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time // zero means no expiry
}

// Memory is an in-process Store. Values are JSON-encoded like Redis so
// callers never share mutable state with the cache.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	counter map[string]int64
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry), counter: make(map[string]int64), now: time.Now}
}

func (m *Memory) Get(_ context.Context, key string, dest interface{}) bool {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || (!e.expiresAt.IsZero() && m.now().After(e.expiresAt)) || json.Unmarshal(e.data, dest) != nil {
		metrics.CacheMiss("memory")
		return false
	}
	metrics.CacheHit("memory")
	return true
}

func (m *Memory) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	e := memoryEntry{data: data}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}

func (m *Memory) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.entries, k)
		delete(m.counter, k)
	}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Incr(_ context.Context, key string, delta int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter[key] += delta
	return m.counter[key], nil
}

func (m *Memory) Close() error { return nil }
