package render

import "charm.land/lipgloss/v2"

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Styles is the set of styles a Renderer draws with.
type Styles struct {
	Title    lipgloss.Style
	Meta     lipgloss.Style
	Label    lipgloss.Style
	Body     lipgloss.Style
	Card     lipgloss.Style
	Model    lipgloss.Style
	Fallback lipgloss.Style
	Warn     lipgloss.Style
}

// DefaultStyles returns the colored terminal styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary),

		Meta: lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true),

		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary),

		Body: lipgloss.NewStyle(),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1),

		Model: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Fallback: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true),

		Warn: lipgloss.NewStyle().
			Foreground(Error),
	}
}

// PlainStyles draws no colors or borders, for pipes and tests.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title: plain, Meta: plain, Label: plain, Body: plain,
		Card: plain, Model: plain, Fallback: plain, Warn: plain,
	}
}
