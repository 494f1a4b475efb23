package github

import "time"

// User is the GitHub profile response for GET /users/{username}.
type User struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	CreatedAt   string `json:"created_at"`
}

// Repo is a repository summary from GET /users/{username}/repos.
type Repo struct {
	Name            string    `json:"name"`
	Owner           RepoOwner `json:"owner"`
	StargazersCount int       `json:"stargazers_count"`
	Language        string    `json:"language"`
	// Size is reported in kilobytes.
	Size int64 `json:"size"`
}

// RepoOwner identifies the repository owner.
type RepoOwner struct {
	Login string `json:"login"`
}

// Event is a public event from GET /users/{username}/events/public.
type Event struct {
	Type      string       `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	Payload   EventPayload `json:"payload"`
	Repo      EventRepo    `json:"repo"`
}

// EventPayload carries the push-event commit count.
type EventPayload struct {
	Size int `json:"size"`
}

// EventRepo names the repository an event touched, as "owner/repo".
type EventRepo struct {
	Name string `json:"name"`
}
