package usecase

import (
	"context"

	"github.com/nahidn4p/git-stat-generator/internal/entities"
)

// StatsUsecaseInterface abstracts statistics operations for the delivery layer.
type StatsUsecaseInterface interface {
	GetUserStatistics(ctx context.Context, username string) (*entities.UserStatistics, error)
}
