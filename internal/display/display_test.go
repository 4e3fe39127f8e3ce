package display

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/pokercoach/internal/deck"
	"github.com/lox/pokercoach/internal/strategy"
)

func TestRendererRecommendation(t *testing.T) {
	out := NewRenderer().Recommendation(strategy.Recommendation{Fold: 10, Call: 30, Raise: 60, RaiseSize: 3})

	for _, want := range []string{"fold", "call", "raise", "10%", "30%", "60%", "3bb"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRendererAdviceShowsBaseWhenAdjusted(t *testing.T) {
	advice := strategy.Advice{
		Notation:     "AA",
		HandCategory: "premium",
		Situation:    strategy.RFI,
		Base:         strategy.Recommendation{Raise: 100, RaiseSize: 3},
		Adjusted:     strategy.Recommendation{Call: 20, Raise: 80, RaiseSize: 3},
	}

	out := NewRenderer().Advice(deck.MustParseCards("AsAh"), nil, advice)
	if !strings.Contains(out, "before lessons") {
		t.Errorf("adjusted advice should show the base line:\n%s", out)
	}

	advice.Adjusted = advice.Base
	out = NewRenderer().Advice(deck.MustParseCards("AsAh"), nil, advice)
	if strings.Contains(out, "before lessons") {
		t.Errorf("unadjusted advice should not show the base line:\n%s", out)
	}
}

func TestRouletteLandsOnResult(t *testing.T) {
	m := NewRouletteModel(strategy.Recommendation{Fold: 20, Call: 30, Raise: 50}, strategy.ActionCall, false)

	// Drive ticks until the wheel stops
	var model tea.Model = m
	for i := 0; i < 100; i++ {
		model, _ = model.Update(tickMsg{})
		if result, done := model.(*RouletteModel).Result(); done {
			if result != strategy.ActionCall {
				t.Fatalf("Result() = %v, want call", result)
			}
			view := model.(*RouletteModel).View()
			if !strings.Contains(view, "call") {
				t.Errorf("final view missing landed action:\n%s", view)
			}
			return
		}
	}
	t.Fatal("roulette never finished")
}

func TestRouletteQuitsOnKeypress(t *testing.T) {
	m := NewRouletteModel(strategy.Recommendation{Raise: 100}, strategy.ActionRaise, false)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if view := model.View(); view != "" {
		t.Errorf("quitting view should be empty, got %q", view)
	}
}
