// Package domain contains the application service orchestrating the
// statistics aggregation pipeline.
package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nahidn4p/git-stat-generator/internal/entities"
	"github.com/nahidn4p/git-stat-generator/internal/stats"
)

// GetUserStatistics returns the aggregated statistics record for a user.
// A cache hit short-circuits the whole pipeline; a miss fetches profile,
// repositories, events and language details, derives the record, and
// caches it for the configured TTL. Nothing is cached on failure.
func (u *Usecase) GetUserStatistics(ctx context.Context, username string) (*entities.UserStatistics, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if username == "" {
		return nil, fmt.Errorf("%w: username is required", entities.ErrInvalidArgument)
	}

	key := u.keyPrefix + username
	if cached := u.fromCache(ctx, key); cached != nil {
		return cached, nil
	}

	user, err := u.gh.User(ctx, username)
	if err != nil {
		return nil, err
	}

	repos, err := u.gh.Repos(ctx, username)
	if err != nil {
		return nil, err
	}

	totalStars := 0
	for _, r := range repos {
		totalStars += r.StargazersCount
	}

	languages := stats.AggregateLanguages(ctx, u.log, u.gh, repos, u.detailLimit)
	contrib := stats.EstimateContributions(ctx, u.log, u.gh, username, len(repos), u.now())
	streaks := stats.CalculateStreaks(contrib.Daily, u.now())

	name := user.Name
	if name == "" {
		name = username
	}

	record := &entities.UserStatistics{
		Username:  username,
		Name:      name,
		AvatarURL: user.AvatarURL,
		Bio:       user.Bio,

		PublicRepos: user.PublicRepos,
		Followers:   user.Followers,
		Following:   user.Following,
		CreatedAt:   user.CreatedAt,

		TotalStars:            totalStars,
		TotalContributions:    contrib.Total,
		ContributionsLastYear: contrib.LastYear,
		CommitsLastYear:       contrib.Commits,
		PullRequestsLastYear:  contrib.PRs,
		IssuesLastYear:        contrib.Issues,
		ContributedTo:         contrib.ContributedTo,

		CurrentStreak:      streaks.Current,
		LongestStreak:      streaks.Longest,
		CurrentStreakStart: streaks.CurrentStart,
		CurrentStreakEnd:   streaks.CurrentEnd,
		LongestStreakStart: streaks.LongestStart,
		LongestStreakEnd:   streaks.LongestEnd,

		MonthlyContributions: contrib.Monthly,
		DailyContributions:   contrib.Daily,
		Languages:            languages,
	}

	u.toCache(ctx, key, record)
	return record, nil
}

// fromCache returns the deserialized record, or nil on miss. Cache
// failures only degrade to a recompute.
func (u *Usecase) fromCache(ctx context.Context, key string) *entities.UserStatistics {
	payload, err := u.cache.Get(ctx, key)
	if err != nil {
		u.log.Warnw("cache get failed", "key", key, "error", err)
		return nil
	}
	if payload == nil {
		return nil
	}

	var record entities.UserStatistics
	if err := json.Unmarshal(payload, &record); err != nil {
		u.log.Warnw("cache payload corrupt", "key", key, "error", err)
		return nil
	}
	return &record
}

func (u *Usecase) toCache(ctx context.Context, key string, record *entities.UserStatistics) {
	payload, err := json.Marshal(record)
	if err != nil {
		u.log.Errorw("marshal statistics", "key", key, "error", err)
		return
	}
	if err := u.cache.Set(ctx, key, payload, u.ttl); err != nil {
		u.log.Warnw("cache set failed", "key", key, "error", err)
	}
}
