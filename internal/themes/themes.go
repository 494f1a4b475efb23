// Package themes holds the visual theme registry for the dashboard and
// badge renderers.
package themes

// Theme configures colors and CSS classes for one visual theme.
type Theme struct {
	ID              string
	Name            string
	BodyClasses     string
	CardClasses     string
	TextPrimary     string
	TextSecondary   string
	AccentColor     string
	AccentColorLite string
	SuccessColor    string
	WarningColor    string
	ChartLineColor  string
	ChartFillColor  string
	// Badge colors used by the SVG renderer.
	BadgeBackground string
	BadgeText       string
	BadgeTextSec    string
}

// DefaultTheme is used when no or an unknown theme is requested.
const DefaultTheme = "neon_dark"

var registry = []Theme{
	{
		ID:              "neon_dark",
		Name:            "Neon Dark",
		BodyClasses:     "theme-neon-dark bg-dark-bg",
		CardClasses:     "bg-dark-card border border-gray-700",
		TextPrimary:     "text-gray-100",
		TextSecondary:   "text-gray-400",
		AccentColor:     "#00d4ff",
		AccentColorLite: "#33dfff",
		SuccessColor:    "#10b981",
		WarningColor:    "#f59e0b",
		ChartLineColor:  "#00d4ff",
		ChartFillColor:  "rgba(0, 212, 255, 0.1)",
		BadgeBackground: "#141b2d",
		BadgeText:       "#e5e7eb",
		BadgeTextSec:    "#9ca3af",
	},
	{
		ID:              "solar_dark",
		Name:            "Solar Dark",
		BodyClasses:     "theme-solar-dark bg-gradient-to-br from-gray-900 via-gray-800 to-gray-900",
		CardClasses:     "bg-gray-800 border border-gray-700",
		TextPrimary:     "text-gray-100",
		TextSecondary:   "text-gray-400",
		AccentColor:     "#fdb44b",
		AccentColorLite: "#fdc66b",
		SuccessColor:    "#10b981",
		WarningColor:    "#ff6b6b",
		ChartLineColor:  "#fdb44b",
		ChartFillColor:  "rgba(253, 180, 75, 0.1)",
		BadgeBackground: "#1f2937",
		BadgeText:       "#e5e7eb",
		BadgeTextSec:    "#9ca3af",
	},
	{
		ID:              "light_clean",
		Name:            "Light Clean",
		BodyClasses:     "theme-light-clean bg-gray-50",
		CardClasses:     "bg-white border border-gray-200",
		TextPrimary:     "text-gray-900",
		TextSecondary:   "text-gray-600",
		AccentColor:     "#3b82f6",
		AccentColorLite: "#60a5fa",
		SuccessColor:    "#10b981",
		WarningColor:    "#f59e0b",
		ChartLineColor:  "#3b82f6",
		ChartFillColor:  "rgba(59, 130, 246, 0.1)",
		BadgeBackground: "#ffffff",
		BadgeText:       "#111827",
		BadgeTextSec:    "#6b7280",
	},
	{
		ID:              "minimal_dark",
		Name:            "Minimal Dark",
		BodyClasses:     "theme-minimal-dark bg-gray-950",
		CardClasses:     "bg-gray-900 border border-gray-800",
		TextPrimary:     "text-gray-100",
		TextSecondary:   "text-gray-500",
		AccentColor:     "#8b5cf6",
		AccentColorLite: "#a78bfa",
		SuccessColor:    "#10b981",
		WarningColor:    "#f59e0b",
		ChartLineColor:  "#8b5cf6",
		ChartFillColor:  "rgba(139, 92, 246, 0.1)",
		BadgeBackground: "#111827",
		BadgeText:       "#e5e7eb",
		BadgeTextSec:    "#9ca3af",
	},
}

// Get returns the theme for id, falling back to the default.
func Get(id string) Theme {
	for _, t := range registry {
		if t.ID == id {
			return t
		}
	}
	return Get(DefaultTheme)
}

// All returns every registered theme in declaration order.
func All() []Theme {
	out := make([]Theme, len(registry))
	copy(out, registry)
	return out
}
