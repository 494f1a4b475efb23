// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUserNotFound is returned when the GitHub user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrRateLimited signals the GitHub API rate limit was exhausted.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrUpstream signals any other GitHub API or network failure.
	ErrUpstream = errors.New("upstream error")
)

// RateLimitError carries rate-limit context from a 403 response.
// It matches ErrRateLimited under errors.Is.
type RateLimitError struct {
	// HasToken reports whether an access token was configured when
	// the limit was hit. Unauthenticated clients get 60 requests/hour.
	HasToken bool
	// Reset is the upstream-reported reset time; zero when the
	// X-RateLimit-Reset header was absent or unparseable.
	Reset time.Time
}

func (e *RateLimitError) Error() string {
	msg := "github api rate limit exceeded"
	if !e.HasToken {
		msg += " (no token configured)"
	}
	if !e.Reset.IsZero() {
		msg += fmt.Sprintf(", resets at %s", e.Reset.UTC().Format("15:04:05 UTC"))
	}
	return msg
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}
