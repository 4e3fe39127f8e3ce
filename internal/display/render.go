package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokercoach/internal/deck"
	"github.com/lox/pokercoach/internal/strategy"
)

const barWidth = 30

// Renderer produces styled terminal output for advice.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer with the default styles.
func NewRenderer() *Renderer {
	return &Renderer{styles: DefaultStyles()}
}

// Cards renders cards with suit-colored glyphs.
func (r *Renderer) Cards(cards []deck.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		style := r.styles.BlackCard
		if c.Suit.IsRed() {
			style = r.styles.RedCard
		}
		parts = append(parts, style.Render(c.String()))
	}
	return strings.Join(parts, " ")
}

// Advice renders the full advice panel: hand context, the base
// recommendation and, when lessons changed it, the adjusted one.
func (r *Renderer) Advice(hole, board []deck.Card, advice strategy.Advice) string {
	var b strings.Builder

	b.WriteString(r.styles.Header.Render("Advice"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Hand:      %s  %s\n", r.Cards(hole), r.styles.Muted.Render("("+advice.Notation+", "+string(advice.HandCategory)+")")))
	if len(board) > 0 {
		b.WriteString(fmt.Sprintf("Board:     %s  %s\n", r.Cards(board), r.styles.Muted.Render("("+string(advice.BoardTexture)+")")))
	}
	b.WriteString(fmt.Sprintf("Situation: %s\n\n", string(advice.Situation)))

	b.WriteString(r.recommendation(advice.Adjusted, len(board) > 0))
	if advice.Adjusted != advice.Base {
		b.WriteString("\n")
		b.WriteString(r.styles.Muted.Render(fmt.Sprintf("before lessons: fold %d%% / call %d%% / raise %d%%",
			advice.Base.Fold, advice.Base.Call, advice.Base.Raise)))
		b.WriteString("\n")
	}

	return r.styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// Recommendation renders one recommendation as probability bars,
// treating the raise size as a preflop sizing in big blinds.
func (r *Renderer) Recommendation(rec strategy.Recommendation) string {
	return r.recommendation(rec, false)
}

func (r *Renderer) recommendation(rec strategy.Recommendation, postflop bool) string {
	var b strings.Builder
	b.WriteString(r.bar("fold ", rec.Fold, r.styles.Fold))
	b.WriteString(r.bar("call ", rec.Call, r.styles.Call))
	raise := r.bar("raise", rec.Raise, r.styles.Raise)
	if rec.RaiseSize > 0 && rec.Raise > 0 {
		raise = strings.TrimRight(raise, "\n") + r.styles.Muted.Render("  (size "+FormatSize(rec.RaiseSize, postflop)+")") + "\n"
	}
	b.WriteString(raise)
	return b.String()
}

// FormatSize renders a raise size with its unit: big blinds preflop,
// percent of pot postflop.
func FormatSize(size float64, postflop bool) string {
	if postflop {
		return fmt.Sprintf("%g%% pot", size)
	}
	return fmt.Sprintf("%gbb", size)
}

func (r *Renderer) bar(label string, pct int, style lipgloss.Style) string {
	filled := pct * barWidth / 100
	if filled > barWidth {
		filled = barWidth
	}
	bar := style.Render(strings.Repeat("█", filled)) + r.styles.Muted.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("%s %s %3d%%\n", style.Render(label), bar, pct)
}
