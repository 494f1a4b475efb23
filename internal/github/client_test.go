package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nahidn4p/git-stat-generator/config"
	"github.com/nahidn4p/git-stat-generator/internal/entities"
)

func testClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(zap.NewNop().Sugar(), config.GitHubConfig{
		APIURL:         srv.URL,
		Token:          token,
		PageSize:       100,
		RequestTimeout: 5 * time.Second,
		AssetTimeout:   5 * time.Second,
	})
}

func writeRepos(t *testing.T, w http.ResponseWriter, n int) {
	t.Helper()
	repos := make([]Repo, n)
	for i := range repos {
		repos[i] = Repo{Name: fmt.Sprintf("repo-%d", i)}
	}
	require.NoError(t, json.NewEncoder(w).Encode(repos))
}

func TestRepos_PaginationStopsOnShortPage(t *testing.T) {
	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, "100", r.URL.Query().Get("per_page"))
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		require.NoError(t, err)
		switch page {
		case 1, 2:
			writeRepos(t, w, 100)
		default:
			writeRepos(t, w, 37)
		}
	})

	c := testClient(t, handler, "")
	repos, err := c.Repos(context.Background(), "tester")
	require.NoError(t, err)
	require.Len(t, repos, 237)
	require.Equal(t, 3, calls)
}

func TestRepos_PaginationStopsOnEmptyPage(t *testing.T) {
	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		writeRepos(t, w, 0)
	})

	c := testClient(t, handler, "")
	repos, err := c.Repos(context.Background(), "tester")
	require.NoError(t, err)
	require.Empty(t, repos)
	require.Equal(t, 1, calls)
}

func TestUser_NotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	c := testClient(t, handler, "")
	_, err := c.User(context.Background(), "ghost")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	require.NotErrorIs(t, err, entities.ErrUpstream)
}

func TestRepos_NotFoundIsUpstream(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	c := testClient(t, handler, "")
	_, err := c.Repos(context.Background(), "ghost")
	require.ErrorIs(t, err, entities.ErrUpstream)
	require.NotErrorIs(t, err, entities.ErrUserNotFound)
}

func TestRateLimit_NoToken(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
	})

	c := testClient(t, handler, "")
	_, err := c.User(context.Background(), "tester")

	require.ErrorIs(t, err, entities.ErrRateLimited)
	var rl *entities.RateLimitError
	require.ErrorAs(t, err, &rl)
	require.False(t, rl.HasToken)
	require.True(t, rl.Reset.IsZero())
}

func TestRateLimit_WithTokenAndReset(t *testing.T) {
	reset := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "token secret", r.Header.Get("Authorization"))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))
		w.WriteHeader(http.StatusForbidden)
	})

	c := testClient(t, handler, "secret")
	_, err := c.User(context.Background(), "tester")

	var rl *entities.RateLimitError
	require.ErrorAs(t, err, &rl)
	require.True(t, rl.HasToken)
	require.True(t, rl.Reset.Equal(reset))
}

func TestGet_ServerErrorIsUpstream(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	c := testClient(t, handler, "")
	_, err := c.User(context.Background(), "tester")
	require.ErrorIs(t, err, entities.ErrUpstream)
}

func TestGet_TransportErrorIsUpstream(t *testing.T) {
	c := New(zap.NewNop().Sugar(), config.GitHubConfig{
		APIURL:         "http://127.0.0.1:1",
		PageSize:       100,
		RequestTimeout: time.Second,
		AssetTimeout:   time.Second,
	})
	_, err := c.User(context.Background(), "tester")
	require.ErrorIs(t, err, entities.ErrUpstream)
	require.False(t, errors.Is(err, entities.ErrUserNotFound))
}

func TestUser_SendsAcceptHeader(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		require.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewEncoder(w).Encode(User{Login: "tester"}))
	})

	c := testClient(t, handler, "")
	u, err := c.User(context.Background(), "tester")
	require.NoError(t, err)
	require.Equal(t, "tester", u.Login)
}

func TestLanguages(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/tester/demo/languages", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(map[string]int64{"Go": 12345}))
	})

	c := testClient(t, handler, "")
	langs, err := c.Languages(context.Background(), "tester", "demo")
	require.NoError(t, err)
	require.Equal(t, int64(12345), langs["Go"])
}
