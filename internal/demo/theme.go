package demo

import "github.com/charmbracelet/lipgloss"

// Theme defines the demo's color palette.
type Theme struct {
	Name string

	Background  string
	Surface     string
	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Accent  string
	Success string
	Danger  string
}

// DefaultTheme returns the Dracula-flavored palette.
func DefaultTheme() Theme {
	return Theme{
		Name:        "Dracula",
		Background:  "#282a36",
		Surface:     "#44475a",
		Border:      "#6272a4",
		BorderFocus: "#bd93f9",
		Text:        "#f8f8f2",
		Muted:       "#6272a4",
		Accent:      "#bd93f9",
		Success:     "#50fa7b",
		Danger:      "#ff5555",
	}
}

// Styles holds the Lipgloss styles derived from a theme.
type Styles struct {
	Title      lipgloss.Style
	Label      lipgloss.Style
	LabelFocus lipgloss.Style
	Value      lipgloss.Style
	Cursor     lipgloss.Style

	Card      lipgloss.Style
	CardFocus lipgloss.Style
	Summary   lipgloss.Style

	Status  lipgloss.Style
	Hint    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Width(12),

		LabelFocus: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Width(12),

		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(1, 2),

		CardFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(1, 2),

		Summary: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Faint(true),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)),
	}
}
