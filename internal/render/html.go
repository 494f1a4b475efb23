package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/nahidn4p/git-stat-generator/internal/entities"
	"github.com/nahidn4p/git-stat-generator/internal/themes"
)

//go:embed templates/*.html.tmpl
var htmlTemplates embed.FS

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"formatNumber": formatNumber,
}).ParseFS(htmlTemplates, "templates/*.html.tmpl"))

type pageViewModel struct {
	Theme     themes.Theme
	ThemeID   string
	AllThemes []themes.Theme
}

type statsViewModel struct {
	pageViewModel
	Stats       *entities.UserStatistics
	DailyJSON   template.JS
	MonthlyJSON template.JS
}

type errorViewModel struct {
	pageViewModel
	Username    string
	Error       string
	IsRateLimit bool
	HasToken    bool
}

// HomePage renders the landing page with the username search form.
func HomePage(theme themes.Theme) ([]byte, error) {
	return renderPage("home.html.tmpl", pageViewModel{
		Theme:     theme,
		ThemeID:   theme.ID,
		AllThemes: themes.All(),
	})
}

// StatsPage renders the dashboard for a statistics record. The daily and
// monthly series are embedded as JSON for the chart scripts.
func StatsPage(record *entities.UserStatistics, theme themes.Theme) ([]byte, error) {
	daily, err := json.Marshal(record.DailyContributions)
	if err != nil {
		return nil, fmt.Errorf("marshal daily series: %w", err)
	}
	monthly, err := json.Marshal(record.MonthlyContributions)
	if err != nil {
		return nil, fmt.Errorf("marshal monthly series: %w", err)
	}

	return renderPage("stats.html.tmpl", statsViewModel{
		pageViewModel: pageViewModel{
			Theme:     theme,
			ThemeID:   theme.ID,
			AllThemes: themes.All(),
		},
		Stats:       record,
		DailyJSON:   template.JS(daily),
		MonthlyJSON: template.JS(monthly),
	})
}

// ErrorPage renders the error page, with rate-limit guidance when applicable.
func ErrorPage(username, message string, isRateLimit, hasToken bool, theme themes.Theme) ([]byte, error) {
	return renderPage("error.html.tmpl", errorViewModel{
		pageViewModel: pageViewModel{
			Theme:     theme,
			ThemeID:   theme.ID,
			AllThemes: themes.All(),
		},
		Username:    username,
		Error:       message,
		IsRateLimit: isRateLimit,
		HasToken:    hasToken,
	})
}

func renderPage(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
