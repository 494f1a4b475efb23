package handlers_fiber

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nahidn4p/git-stat-generator/internal/render"
	"github.com/nahidn4p/git-stat-generator/internal/themes"
)

const badgeCacheControl = "public, max-age=3600"

// GetBadge renders the SVG stats badge for a username. Failures return
// an error badge instead of an error page so embedded images stay valid.
func (h *Handler) GetBadge(c *fiber.Ctx) error {
	username := strings.TrimSuffix(c.Params("username"), ".svg")
	theme := themes.Get(c.Query("theme"))

	c.Set(fiber.HeaderContentType, "image/svg+xml")

	record, err := h.uc.GetUserStatistics(c.Context(), username)
	if err != nil {
		h.log.Errorw("failed to get statistics for badge", "user", username, "error", err.Error())
		status, msg, _, _ := classifyError(err)
		return c.Status(status).Send(render.ErrorBadgeSVG(msg))
	}

	svg, err := render.BadgeSVG(record, theme)
	if err != nil {
		h.log.Errorw("failed to render badge", "user", username, "error", err.Error())
		return c.Status(http.StatusInternalServerError).Send(render.ErrorBadgeSVG("Error loading stats"))
	}

	c.Set(fiber.HeaderCacheControl, badgeCacheControl)
	return c.Status(http.StatusOK).Send(svg)
}
