// Package cache provides the statistics cache abstraction and a factory
// for its backends. The cache is a plain key-value store with per-entry
// TTL; the usecase layer treats misses and errors the same way.
package cache

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nahidn4p/git-stat-generator/config"
	"github.com/nahidn4p/git-stat-generator/internal/cache/memory"
	"github.com/nahidn4p/git-stat-generator/internal/cache/postgres"
)

// Store is a key-value cache with independent get/set operations.
// Get returns (nil, nil) on a miss or an expired entry.
type Store interface {
	OnStart(ctx context.Context) error
	OnStop(ctx context.Context) error
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// New constructs a cache backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Store, error) {
	switch name {
	case "memory":
		return memory.New(log), nil
	case "postgres":
		return postgres.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", name)
	}
}
