// Package github implements the GitHub REST API client used to collect
// raw user activity: profile, repositories, public events and per-repo
// language breakdowns. Pagination follows page/per_page query parameters
// and stops on the first short or empty page.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/nahidn4p/git-stat-generator/config"
	"github.com/nahidn4p/git-stat-generator/internal/entities"
)

// errNotFound marks a 404 inside the client; only the profile lookup
// promotes it to entities.ErrUserNotFound.
var errNotFound = errors.New("not found")

// Client calls the GitHub REST API.
type Client struct {
	log     *zap.SugaredLogger
	cfg     config.GitHubConfig
	primary *http.Client
	sec     *http.Client
}

// New constructs a Client from configuration. The secondary HTTP client
// has a shorter timeout and serves only per-repo language calls.
func New(log *zap.SugaredLogger, cfg config.GitHubConfig) *Client {
	return &Client{
		log:     log.Named("github"),
		cfg:     cfg,
		primary: &http.Client{Timeout: cfg.RequestTimeout},
		sec:     &http.Client{Timeout: cfg.AssetTimeout},
	}
}

// User fetches the profile for username. A 404 maps to entities.ErrUserNotFound.
func (c *Client) User(ctx context.Context, username string) (*User, error) {
	var u User
	err := c.get(ctx, c.primary, "/users/"+url.PathEscape(username), nil, &u)
	if errors.Is(err, errNotFound) {
		return nil, fmt.Errorf("%w: %s", entities.ErrUserNotFound, username)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Repos fetches every repository owned by username, following pagination.
func (c *Client) Repos(ctx context.Context, username string) ([]Repo, error) {
	q := url.Values{"type": {"owner"}}
	repos, err := fetchAllPages[Repo](ctx, c, "/users/"+url.PathEscape(username)+"/repos", q)
	if err != nil {
		return nil, c.demoteNotFound(err)
	}
	return repos, nil
}

// Events fetches the user's public event stream, following pagination.
func (c *Client) Events(ctx context.Context, username string) ([]Event, error) {
	events, err := fetchAllPages[Event](ctx, c, "/users/"+url.PathEscape(username)+"/events/public", nil)
	if err != nil {
		return nil, c.demoteNotFound(err)
	}
	return events, nil
}

// Languages fetches the authoritative per-language byte counts for one
// repository. Uses the secondary client with the shorter timeout.
func (c *Client) Languages(ctx context.Context, owner, repo string) (map[string]int64, error) {
	var langs map[string]int64
	path := "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(repo) + "/languages"
	if err := c.get(ctx, c.sec, path, nil, &langs); err != nil {
		return nil, c.demoteNotFound(err)
	}
	return langs, nil
}

// fetchAllPages requests consecutive pages until a short or empty page
// signals the end, and returns the concatenated items.
func fetchAllPages[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	perPage := c.cfg.PageSize
	var all []T
	for page := 1; ; page++ {
		q := url.Values{}
		for k, vs := range query {
			q[k] = vs
		}
		q.Set("per_page", strconv.Itoa(perPage))
		q.Set("page", strconv.Itoa(page))

		var items []T
		if err := c.get(ctx, c.primary, path, q, &items); err != nil {
			return nil, err
		}
		if len(items) == 0 {
			break
		}
		all = append(all, items...)
		if len(items) < perPage {
			break
		}
	}
	return all, nil
}

// get performs a single authenticated GET and decodes the JSON body into out.
// Status classification: 403 becomes a RateLimitError, 404 becomes errNotFound,
// any other non-2xx or transport failure wraps entities.ErrUpstream.
func (c *Client) get(ctx context.Context, hc *http.Client, path string, query url.Values, out any) error {
	u := c.cfg.APIURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", entities.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "token "+c.cfg.Token)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", entities.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return c.rateLimitError(resp)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", errNotFound, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: unexpected status %d for %s", entities.ErrUpstream, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", entities.ErrUpstream, path, err)
	}
	return nil
}

func (c *Client) rateLimitError(resp *http.Response) error {
	rlErr := &entities.RateLimitError{HasToken: c.cfg.Token != ""}
	if raw := resp.Header.Get("X-RateLimit-Reset"); raw != "" {
		if unix, err := strconv.ParseInt(raw, 10, 64); err == nil {
			rlErr.Reset = time.Unix(unix, 0)
		}
	}
	c.log.Warnw("rate limit hit",
		"has_token", rlErr.HasToken,
		"remaining", resp.Header.Get("X-RateLimit-Remaining"),
		"limit", resp.Header.Get("X-RateLimit-Limit"),
	)
	return rlErr
}

// demoteNotFound turns a non-profile 404 into a generic upstream error.
func (c *Client) demoteNotFound(err error) error {
	if errors.Is(err, errNotFound) {
		return fmt.Errorf("%w: %v", entities.ErrUpstream, err)
	}
	return err
}
