package display

import (
	"fmt"
	"strings"
	"time"

	rand "math/rand/v2"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/pokercoach/internal/strategy"
)

// rouletteOrder is the display order of the wheel.
var rouletteOrder = []strategy.Action{strategy.ActionFold, strategy.ActionCall, strategy.ActionRaise}

type tickMsg time.Time

// RouletteModel animates a weighted pick across fold/call/raise. The
// outcome is sampled up front; the spin is presentation only.
type RouletteModel struct {
	rec      strategy.Recommendation
	result   strategy.Action
	postflop bool
	styles   *Styles
	spinner  spinner.Model
	rng      *rand.Rand

	highlight int
	ticksLeft int
	interval  time.Duration
	done      bool
	quitting  bool
}

// NewRouletteModel creates the spin for an already-sampled result.
// postflop selects the raise size unit shown on a raise verdict.
func NewRouletteModel(rec strategy.Recommendation, result strategy.Action, postflop bool) *RouletteModel {
	styles := DefaultStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Highlight

	return &RouletteModel{
		rec:       rec,
		result:    result,
		postflop:  postflop,
		styles:    styles,
		spinner:   sp,
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		ticksLeft: 18,
		interval:  60 * time.Millisecond,
	}
}

// Result returns the sampled action once the spin has finished.
func (m *RouletteModel) Result() (strategy.Action, bool) {
	return m.result, m.done
}

func (m *RouletteModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.tick())
}

func (m *RouletteModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *RouletteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		if m.done {
			return m, tea.Quit
		}
		m.ticksLeft--
		if m.ticksLeft <= 0 {
			// Land on the sampled result
			for i, a := range rouletteOrder {
				if a == m.result {
					m.highlight = i
				}
			}
			m.done = true
			return m, tea.Tick(800*time.Millisecond, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}
		// Interim highlights are fresh draws from the same distribution
		interim := strategy.Sample(m.rec, m.rng)
		for i, a := range rouletteOrder {
			if a == interim {
				m.highlight = i
			}
		}
		// Decelerate as the wheel runs down
		m.interval += 12 * time.Millisecond
		return m, m.tick()
	}

	return m, nil
}

func (m *RouletteModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.done {
		b.WriteString(m.styles.Header.Render("Verdict"))
	} else {
		b.WriteString(m.spinner.View() + " spinning...")
	}
	b.WriteString("\n\n")

	cells := make([]string, 0, len(rouletteOrder))
	for i, action := range rouletteOrder {
		pct := m.pct(action)
		label := fmt.Sprintf("%s %d%%", action, pct)
		if i == m.highlight {
			cells = append(cells, m.styles.Highlight.Render("▶ "+label))
		} else {
			cells = append(cells, m.styles.Muted.Render("  "+label))
		}
	}
	b.WriteString(strings.Join(cells, "   "))
	b.WriteString("\n")

	if m.done && m.result == strategy.ActionRaise && m.rec.RaiseSize > 0 {
		b.WriteString(m.styles.Muted.Render("\nraise to " + FormatSize(m.rec.RaiseSize, m.postflop)))
		b.WriteString("\n")
	}

	return m.styles.Panel.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

func (m *RouletteModel) pct(action strategy.Action) int {
	switch action {
	case strategy.ActionFold:
		return m.rec.Fold
	case strategy.ActionCall:
		return m.rec.Call
	default:
		return m.rec.Raise
	}
}
