// Package memory implements the statistics cache in process memory.
package memory

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is an in-process TTL cache. Expired entries are dropped lazily
// on read.
type Memory struct {
	log *zap.SugaredLogger

	mu      sync.Mutex
	entries map[string]entry

	// now is swappable in tests.
	now func() time.Time
}

// New creates an in-memory cache.
func New(log *zap.SugaredLogger) *Memory {
	return &Memory{
		log:     log.Named("cache.memory"),
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// OnStart is a no-op for the in-memory backend.
func (m *Memory) OnStart(_ context.Context) error { return nil }

// OnStop drops all entries.
func (m *Memory) OnStop(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]entry)
	return nil
}

// Get returns the cached value, or nil on a miss or expired entry.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	if m.now().After(e.expiresAt) {
		delete(m.entries, key)
		return nil, nil
	}
	return e.value, nil
}

// Set stores value under key for ttl.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry{value: value, expiresAt: m.now().Add(ttl)}
	return nil
}
