package domain

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nahidn4p/git-stat-generator/config"
	"github.com/nahidn4p/git-stat-generator/internal/cache"
	"github.com/nahidn4p/git-stat-generator/internal/github"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	gh      github.API
	cache   cache.Store
	timeout time.Duration

	ttl         time.Duration
	keyPrefix   string
	detailLimit int

	// now is swappable in tests.
	now func() time.Time
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	gh github.API,
	store cache.Store,
	cfg *config.Config,
) *Usecase {
	return &Usecase{
		ctx:         ctx,
		log:         log.Named("usecase"),
		gh:          gh,
		cache:       store,
		timeout:     cfg.HTTP.RequestTimeout,
		ttl:         cfg.Cache.TTL,
		keyPrefix:   cfg.Cache.KeyPrefix,
		detailLimit: cfg.GitHub.LanguageDetailLimit,
		now:         time.Now,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
