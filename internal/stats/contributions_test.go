package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nahidn4p/git-stat-generator/internal/github"
)

type eventSourceMock struct {
	events []github.Event
	err    error
}

func (m *eventSourceMock) Events(_ context.Context, _ string) ([]github.Event, error) {
	return m.events, m.err
}

func event(t *testing.T, typ, ts, repoName string, size int) github.Event {
	t.Helper()
	created, err := time.Parse(time.RFC3339, ts)
	require.NoError(t, err)
	return github.Event{
		Type:      typ,
		CreatedAt: created,
		Payload:   github.EventPayload{Size: size},
		Repo:      github.EventRepo{Name: repoName},
	}
}

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func estimate(t *testing.T, src EventSource, repoCount int) Contributions {
	t.Helper()
	return EstimateContributions(context.Background(), zap.NewNop().Sugar(), src, "tester", repoCount, testNow)
}

func TestEstimateContributions_SeriesWindows(t *testing.T) {
	c := estimate(t, &eventSourceMock{}, 0)

	require.Len(t, c.Daily, 60)
	require.Len(t, c.Monthly, 12)

	require.Equal(t, "2024-06-15", c.Daily[len(c.Daily)-1].Date)
	require.Equal(t, "2024-04-17", c.Daily[0].Date)
	require.Equal(t, "2024-06", c.Monthly[len(c.Monthly)-1].Month)

	seen := map[string]bool{}
	for _, d := range c.Daily {
		require.False(t, seen[d.Date], "duplicate date %s", d.Date)
		seen[d.Date] = true
	}
}

func TestEstimateContributions_EventClassification(t *testing.T) {
	src := &eventSourceMock{events: []github.Event{
		event(t, "PushEvent", "2024-06-14T10:00:00Z", "tester/own", 5),
		event(t, "PushEvent", "2024-06-14T11:00:00Z", "tester/own", 3),
		event(t, "PullRequestEvent", "2024-06-13T10:00:00Z", "other/lib", 0),
		event(t, "IssuesEvent", "2024-06-12T10:00:00Z", "other/lib", 0),
		event(t, "WatchEvent", "2024-06-12T10:00:00Z", "third/tool", 0),
	}}
	c := estimate(t, src, 4)

	require.Equal(t, 8, c.Commits)
	require.Equal(t, 1, c.PRs)
	require.Equal(t, 1, c.Issues)
	// other/lib and third/tool are external; tester/own is not.
	require.Equal(t, 2, c.ContributedTo)
}

func TestEstimateContributions_OldEventsDiscarded(t *testing.T) {
	src := &eventSourceMock{events: []github.Event{
		event(t, "PushEvent", "2022-01-01T10:00:00Z", "tester/own", 50),
	}}
	c := estimate(t, src, 0)
	require.Zero(t, c.Commits)
}

func TestEstimateContributions_FallbackEstimate(t *testing.T) {
	src := &eventSourceMock{err: errors.New("events unavailable")}
	c := estimate(t, src, 7)

	require.Equal(t, 70, c.Commits)
	require.Equal(t, 14, c.PRs)
	require.Equal(t, 7, c.Issues)
	require.Zero(t, c.ContributedTo)
	require.Len(t, c.Daily, 60)
	require.Len(t, c.Monthly, 12)
}

func TestEstimateContributions_SyntheticWeeklyFill(t *testing.T) {
	// With no events at all every 7th day of the year-long walk gets a
	// placeholder count of 1; the rest stay zero.
	c := estimate(t, &eventSourceMock{}, 0)

	ones := 0
	for _, d := range c.Daily {
		require.LessOrEqual(t, d.Count, 1)
		ones += d.Count
	}
	require.NotZero(t, ones)
	// 60 trailing days of a 366-day walk contain 8 or 9 placeholder days.
	require.LessOrEqual(t, ones, 9)
	require.GreaterOrEqual(t, ones, 8)
}

func TestEstimateContributions_BucketedDayKeepsRealCount(t *testing.T) {
	src := &eventSourceMock{events: []github.Event{
		event(t, "PushEvent", "2024-06-15T01:00:00Z", "tester/own", 1),
		event(t, "PushEvent", "2024-06-15T02:00:00Z", "tester/own", 1),
		event(t, "PushEvent", "2024-06-15T03:00:00Z", "tester/own", 1),
	}}
	c := estimate(t, src, 0)

	last := c.Daily[len(c.Daily)-1]
	require.Equal(t, "2024-06-15", last.Date)
	require.Equal(t, 3, last.Count)
}

func TestEstimateContributions_TotalsAndLastYear(t *testing.T) {
	src := &eventSourceMock{events: []github.Event{
		event(t, "PushEvent", "2024-06-15T01:00:00Z", "tester/own", 2),
		event(t, "PushEvent", "2024-06-14T01:00:00Z", "tester/own", 2),
	}}
	c := estimate(t, src, 0)

	// Two bucketed events across two days.
	require.Equal(t, 2, c.Total)

	sum := 0
	for _, d := range c.Daily {
		sum += d.Count
	}
	require.Equal(t, sum, c.LastYear)
}

func TestEstimateContributions_MonthlyRecountFromDaily(t *testing.T) {
	// No events: monthly counts fall back to the number of materialized
	// daily entries per month.
	c := estimate(t, &eventSourceMock{}, 0)

	june := c.Monthly[len(c.Monthly)-1]
	require.Equal(t, "2024-06", june.Month)
	require.Equal(t, 15, june.Count)
}
