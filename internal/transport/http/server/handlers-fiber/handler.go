// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"go.uber.org/zap"

	"github.com/nahidn4p/git-stat-generator/internal/usecase"
)

// Handler serves the dashboard, badge and theme routes.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}
