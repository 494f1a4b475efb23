package handlers_fiber

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nahidn4p/git-stat-generator/internal/entities"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		status      int
		msg         string
		isRateLimit bool
		hasToken    bool
	}{
		{
			name:   "invalid argument",
			err:    fmt.Errorf("%w: username is empty", entities.ErrInvalidArgument),
			status: http.StatusBadRequest,
		},
		{
			name:   "user not found",
			err:    entities.ErrUserNotFound,
			status: http.StatusNotFound,
			msg:    "User not found on GitHub",
		},
		{
			name:        "rate limited without token",
			err:         &entities.RateLimitError{},
			status:      http.StatusTooManyRequests,
			isRateLimit: true,
		},
		{
			name:        "rate limited with token",
			err:         &entities.RateLimitError{HasToken: true, Reset: time.Now().Add(time.Hour)},
			status:      http.StatusTooManyRequests,
			isRateLimit: true,
			hasToken:    true,
		},
		{
			name:   "upstream failure",
			err:    fmt.Errorf("%w: status 500", entities.ErrUpstream),
			status: http.StatusBadGateway,
			msg:    "GitHub API is unavailable",
		},
		{
			name:   "unknown error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			msg:    "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg, isRateLimit, hasToken := classifyError(tt.err)
			require.Equal(t, tt.status, status)
			if tt.msg != "" {
				require.Equal(t, tt.msg, msg)
			} else {
				require.NotEmpty(t, msg)
			}
			require.Equal(t, tt.isRateLimit, isRateLimit)
			require.Equal(t, tt.hasToken, hasToken)
		})
	}
}

func TestClassifyError_RateLimitMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("fetch user: %w", &entities.RateLimitError{HasToken: true})
	require.ErrorIs(t, err, entities.ErrRateLimited)

	status, _, isRateLimit, hasToken := classifyError(err)
	require.Equal(t, http.StatusTooManyRequests, status)
	require.True(t, isRateLimit)
	require.True(t, hasToken)
}
