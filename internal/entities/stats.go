// Package entities contains core business entities.
package entities

// UserStatistics is the aggregated statistics record for a GitHub user.
// It is assembled once per cache miss and never mutated afterwards; the
// flat JSON form is also the cache payload.
type UserStatistics struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio,omitempty"`

	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	CreatedAt   string `json:"created_at"`

	TotalStars            int `json:"total_stars"`
	TotalContributions    int `json:"total_contributions"`
	ContributionsLastYear int `json:"contributions_last_year"`
	CommitsLastYear       int `json:"commits_last_year"`
	PullRequestsLastYear  int `json:"pull_requests_last_year"`
	IssuesLastYear        int `json:"issues_last_year"`
	ContributedTo         int `json:"contributed_to"`

	CurrentStreak      int     `json:"current_streak"`
	LongestStreak      int     `json:"longest_streak"`
	CurrentStreakStart *string `json:"current_streak_start"`
	CurrentStreakEnd   *string `json:"current_streak_end"`
	LongestStreakStart *string `json:"longest_streak_start"`
	LongestStreakEnd   *string `json:"longest_streak_end"`

	MonthlyContributions []MonthlyCount `json:"monthly_contributions"`
	DailyContributions   []DailyCount   `json:"daily_contributions"`
	Languages            []LanguageStat `json:"languages"`
}

// DailyCount is one day of the trailing daily contribution series.
type DailyCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// MonthlyCount is one month of the trailing monthly contribution series.
type MonthlyCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// LanguageStat is a single entry of the ranked language distribution.
type LanguageStat struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}
