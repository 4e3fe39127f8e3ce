// Package display renders advice for the terminal: static output for
// one-shot queries and a Bubble Tea roulette for practice play.
package display

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains all styling for advice output
type Styles struct {
	Header    lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Fold      lipgloss.Style
	Call      lipgloss.Style
	Raise     lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style
	Panel     lipgloss.Style
}

// DefaultStyles returns the default color scheme, picking the black
// suit color off the terminal background.
func DefaultStyles() *Styles {
	blackCard := lipgloss.Color("#1A1A1A")
	if termenv.HasDarkBackground() {
		blackCard = lipgloss.Color("#FAFAFA")
	}
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: lipgloss.NewStyle().
			Foreground(blackCard).
			Bold(true),
		Fold: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Call: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
		Raise: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Highlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(1, 2),
	}
}
