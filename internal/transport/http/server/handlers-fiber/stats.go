package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/nahidn4p/git-stat-generator/internal/render"
	"github.com/nahidn4p/git-stat-generator/internal/themes"
)

// GetHome renders the landing page with the username search form.
func (h *Handler) GetHome(c *fiber.Ctx) error {
	id, _ := themeID(c)
	page, err := render.HomePage(themes.Get(id))
	if err != nil {
		h.log.Errorw("failed to render home", "error", err.Error())
		return c.SendStatus(http.StatusInternalServerError)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(http.StatusOK).Send(page)
}

// GetStats renders the statistics dashboard for a username. A theme
// passed as query parameter is persisted in the cookie.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	username := c.Params("username")
	id, fromQuery := themeID(c)
	theme := themes.Get(id)

	record, err := h.uc.GetUserStatistics(c.Context(), username)
	if err != nil {
		h.log.Errorw("failed to get statistics", "user", username, "error", err.Error())
		status, msg, isRateLimit, hasToken := classifyError(err)
		page, renderErr := render.ErrorPage(username, msg, isRateLimit, hasToken, theme)
		if renderErr != nil {
			return c.SendStatus(http.StatusInternalServerError)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Status(status).Send(page)
	}

	page, err := render.StatsPage(record, theme)
	if err != nil {
		h.log.Errorw("failed to render stats", "user", username, "error", err.Error())
		return c.SendStatus(http.StatusInternalServerError)
	}

	if fromQuery {
		setThemeCookie(c, theme.ID)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(http.StatusOK).Send(page)
}

// PostSetTheme stores the theme cookie and redirects back.
func (h *Handler) PostSetTheme(c *fiber.Ctx) error {
	id := c.FormValue("theme", themes.DefaultTheme)
	redirect := c.FormValue("redirect", "/")

	setThemeCookie(c, themes.Get(id).ID)
	return c.Redirect(redirect, http.StatusFound)
}
