package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string
	Border     string

	Text   string
	Muted  string
	Faint  string
	Accent string

	Success string
	Warning string
	Danger  string

	SelectionBg   string
	SelectionText string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		FocusedPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(0, 1),

		Selection: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
	}
}

// Styles bundles the Lipgloss styles derived from a theme.
type Styles struct {
	Text      lipgloss.Style
	MutedText lipgloss.Style
	FaintText lipgloss.Style

	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header       lipgloss.Style
	Panel        lipgloss.Style
	FocusedPanel lipgloss.Style
	Selection    lipgloss.Style
}

// themes holds the built-in themes in cycling order.
var themes = []Theme{
	{
		Name:          "Voyago Night",
		Background:    "#111827",
		Surface:       "#1f2937",
		Border:        "#374151",
		Text:          "#f9fafb",
		Muted:         "#9ca3af",
		Faint:         "#6b7280",
		Accent:        "#facc15",
		Success:       "#4ade80",
		Warning:       "#fbbf24",
		Danger:        "#f87171",
		SelectionBg:   "#facc15",
		SelectionText: "#111827",
	},
	{
		Name:          "Aegean",
		Background:    "#0f172a",
		Surface:       "#1e293b",
		Border:        "#334155",
		Text:          "#e2e8f0",
		Muted:         "#94a3b8",
		Faint:         "#64748b",
		Accent:        "#38bdf8",
		Success:       "#34d399",
		Warning:       "#fbbf24",
		Danger:        "#fb7185",
		SelectionBg:   "#38bdf8",
		SelectionText: "#0f172a",
	},
	{
		Name:          "Sand",
		Background:    "#1c1917",
		Surface:       "#292524",
		Border:        "#44403c",
		Text:          "#fafaf9",
		Muted:         "#a8a29e",
		Faint:         "#78716c",
		Accent:        "#f59e0b",
		Success:       "#84cc16",
		Warning:       "#eab308",
		Danger:        "#ef4444",
		SelectionBg:   "#f59e0b",
		SelectionText: "#1c1917",
	},
}

// GetTheme returns the named theme, falling back to the first one.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name following the given theme in cycling order.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}
