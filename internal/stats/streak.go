package stats

import (
	"sort"
	"time"

	"github.com/nahidn4p/git-stat-generator/internal/entities"
)

// Streaks holds the current and longest contiguous-day contribution runs.
// Date bounds are ascending (Start <= End) and nil when the streak is zero.
type Streaks struct {
	Current      int
	Longest      int
	CurrentStart *string
	CurrentEnd   *string
	LongestStart *string
	LongestEnd   *string
}

// CalculateStreaks derives streaks from the daily contribution series.
// The current streak must include today: if today has no contribution it
// is zero regardless of yesterday. Today is resolved on the UTC calendar,
// the same one the series dates are bucketed on. The longest streak scans
// the distinct active dates in ascending order; a gap of exactly one day
// extends the run, anything else closes it.
func CalculateStreaks(daily []entities.DailyCount, today time.Time) Streaks {
	active := map[string]struct{}{}
	for _, d := range daily {
		if d.Count > 0 {
			active[d.Date] = struct{}{}
		}
	}
	if len(active) == 0 {
		return Streaks{}
	}

	var s Streaks

	utc := today.UTC()
	day := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	for {
		key := day.Format(dayFormat)
		if _, ok := active[key]; !ok {
			break
		}
		s.Current++
		if s.CurrentEnd == nil {
			s.CurrentEnd = ptr(key)
		}
		s.CurrentStart = ptr(key)
		day = day.AddDate(0, 0, -1)
	}

	dates := make([]string, 0, len(active))
	for d := range active {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	runStart := 0
	runLen := 1
	closeRun := func(endIdx int) {
		if runLen > s.Longest {
			s.Longest = runLen
			s.LongestStart = ptr(dates[runStart])
			s.LongestEnd = ptr(dates[endIdx])
		}
	}
	for i := 1; i < len(dates); i++ {
		if daysBetween(dates[i-1], dates[i]) == 1 {
			runLen++
			continue
		}
		closeRun(i - 1)
		runStart = i
		runLen = 1
	}
	// The run ending at the last active date closes here.
	closeRun(len(dates) - 1)

	return s
}

func daysBetween(a, b string) int {
	ta, _ := time.Parse(dayFormat, a)
	tb, _ := time.Parse(dayFormat, b)
	return int(tb.Sub(ta).Hours() / 24)
}

func ptr(s string) *string { return &s }
