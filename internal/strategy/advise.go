package strategy

import (
	"github.com/lox/pokercoach/internal/classify"
	"github.com/lox/pokercoach/internal/game"
)

// Advice is the full output for one decision point: the chart-derived
// base recommendation and the lesson-adjusted one, plus the features
// they were resolved from.
type Advice struct {
	Notation     string                `json:"notation,omitempty"`
	HandCategory classify.HandCategory `json:"handCategory,omitempty"`
	BoardTexture classify.BoardTexture `json:"boardTexture,omitempty"`
	Situation    Situation             `json:"situation,omitempty"`
	Base         Recommendation        `json:"base"`
	Adjusted     Recommendation        `json:"adjusted"`
}

// neutralPlaceholder is returned when the hand is incomplete; the
// resolver is never invoked in that case.
var neutralPlaceholder = Recommendation{Fold: 33, Call: 33, Raise: 34}

// Advise resolves a full game state against the charts and then layers
// the given adjustments on top. With fewer than two hole cards it
// returns a fixed neutral placeholder for both recommendations.
func Advise(s game.State, adjustments []Adjustment) Advice {
	if len(s.HoleCards) < 2 {
		return Advice{Base: neutralPlaceholder, Adjusted: neutralPlaceholder}
	}

	a, b := s.HoleCards[0], s.HoleCards[1]
	cat := classify.Hand(a, b)
	sit := Infer(s.StreetActions(game.Preflop))

	advice := Advice{
		Notation:     classify.Notation(a, b),
		HandCategory: cat,
		Situation:    sit,
	}

	if s.Street == game.Preflop || s.Street == "" {
		advice.Base = Preflop(a, b, s.Position, sit, s.EffectiveStack)
	} else {
		tex := classify.Board(s.Board)
		if ps := PostflopSituation(s); ps != None {
			sit = ps
		}
		advice.BoardTexture = tex
		advice.Situation = sit
		advice.Base = Postflop(cat, tex, sit)
	}

	advice.Adjusted = Apply(advice.Base, adjustments, cat, s.Position, sit)
	return advice
}
