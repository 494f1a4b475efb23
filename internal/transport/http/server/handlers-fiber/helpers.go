package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/nahidn4p/git-stat-generator/internal/entities"
)

const themeCookieMaxAge = 365 * 24 * 60 * 60

// classifyError maps a usecase error to an HTTP status and user-facing
// message, plus rate-limit context for the error page.
func classifyError(err error) (status int, msg string, isRateLimit, hasToken bool) {
	var rl *entities.RateLimitError
	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		return http.StatusBadRequest, err.Error(), false, false
	case errors.Is(err, entities.ErrUserNotFound):
		return http.StatusNotFound, "User not found on GitHub", false, false
	case errors.As(err, &rl):
		return http.StatusTooManyRequests, rl.Error(), true, rl.HasToken
	case errors.Is(err, entities.ErrUpstream):
		return http.StatusBadGateway, "GitHub API is unavailable", false, false
	default:
		return http.StatusInternalServerError, "An unexpected error occurred", false, false
	}
}

// themeID resolves the requested theme: query parameter first, then the
// cookie. Empty means the default.
func themeID(c *fiber.Ctx) (id string, fromQuery bool) {
	if q := c.Query("theme"); q != "" {
		return q, true
	}
	return c.Cookies("theme"), false
}

func setThemeCookie(c *fiber.Ctx, id string) {
	c.Cookie(&fiber.Cookie{
		Name:   "theme",
		Value:  id,
		MaxAge: themeCookieMaxAge,
		Path:   "/",
	})
}
