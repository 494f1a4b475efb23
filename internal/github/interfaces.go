package github

import "context"

// API is the gateway contract the aggregation layer consumes.
type API interface {
	User(ctx context.Context, username string) (*User, error)
	Repos(ctx context.Context, username string) ([]Repo, error)
	Events(ctx context.Context, username string) ([]Event, error)
	Languages(ctx context.Context, owner, repo string) (map[string]int64, error)
}
