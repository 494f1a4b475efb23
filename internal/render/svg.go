// Package render produces the HTML pages and the SVG badge from a
// statistics record and a theme. It is presentation glue: it only reads
// the record, never recomputes anything.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/nahidn4p/git-stat-generator/internal/entities"
	"github.com/nahidn4p/git-stat-generator/internal/themes"
)

const (
	badgeWidth  = 600
	badgeHeight = 320
)

//go:embed templates/badge.svg.tmpl
var badgeTemplate string

//go:embed templates/error_badge.svg.tmpl
var errorBadgeTemplate string

var badgeTmpl = template.Must(
	template.New("badge").
		Funcs(template.FuncMap{
			"formatNumber": formatNumber,
			"truncate":     truncate,
		}).
		Parse(badgeTemplate),
)

var errorBadgeTmpl = template.Must(template.New("errorBadge").Parse(errorBadgeTemplate))

type badgeViewModel struct {
	Width  int
	Height int
	Theme  themes.Theme

	Username      string
	Name          string
	Rating        string
	TopLanguage   string
	Stars         string
	Repos         int
	Followers     string
	Contributions string
	Commits       string
	PullRequests  int
	CurrentStreak int
	ContributedTo int
	// BarWidth is the contributed-to indicator width in pixels.
	BarWidth float64
}

// BadgeSVG renders the stats badge for the given theme.
func BadgeSVG(record *entities.UserStatistics, theme themes.Theme) ([]byte, error) {
	topLanguage := "N/A"
	if len(record.Languages) > 0 {
		topLanguage = record.Languages[0].Name
	}

	repos := record.PublicRepos
	if repos < 1 {
		repos = 1
	}
	barWidth := float64(record.ContributedTo) / float64(repos) * 540
	if barWidth > 540 {
		barWidth = 540
	}

	vm := badgeViewModel{
		Width:         badgeWidth,
		Height:        badgeHeight,
		Theme:         theme,
		Username:      record.Username,
		Name:          truncate(record.Name, 40),
		Rating:        starRating(record.TotalStars),
		TopLanguage:   truncate(topLanguage, 12),
		Stars:         formatNumber(record.TotalStars),
		Repos:         record.PublicRepos,
		Followers:     formatNumber(record.Followers),
		Contributions: formatNumber(record.TotalContributions),
		Commits:       formatNumber(record.CommitsLastYear),
		PullRequests:  record.PullRequestsLastYear,
		CurrentStreak: record.CurrentStreak,
		ContributedTo: record.ContributedTo,
		BarWidth:      barWidth,
	}

	var buf bytes.Buffer
	if err := badgeTmpl.Execute(&buf, vm); err != nil {
		return nil, fmt.Errorf("render badge: %w", err)
	}
	return buf.Bytes(), nil
}

// ErrorBadgeSVG renders a small badge carrying an error message.
func ErrorBadgeSVG(message string) []byte {
	var buf bytes.Buffer
	_ = errorBadgeTmpl.Execute(&buf, struct{ Message string }{Message: truncate(message, 50)})
	return buf.Bytes()
}

// starRating maps total stars to a letter grade shown on the badge.
func starRating(stars int) string {
	switch {
	case stars > 1000:
		return "A+"
	case stars > 500:
		return "A"
	case stars > 100:
		return "B+"
	default:
		return "C+"
	}
}

func formatNumber(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
