// Package usecase defines the application service interfaces and their
// constructor.
package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/nahidn4p/git-stat-generator/config"
	"github.com/nahidn4p/git-stat-generator/internal/cache"
	"github.com/nahidn4p/git-stat-generator/internal/github"
	"github.com/nahidn4p/git-stat-generator/internal/usecase/domain"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	StatsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, gh github.API, store cache.Store, cfg *config.Config) InterfaceUsecase {
	return domain.New(log, ctx, gh, store, cfg)
}
