// Package strategy resolves a decision point into a mixed fold/call/raise
// recommendation. Everything in this package is pure computation: each
// call depends only on its arguments and is safe for concurrent use.
package strategy

import (
	"github.com/lox/pokercoach/internal/game"
	"github.com/lox/pokercoach/internal/position"
)

// Situation is the discrete label for the betting context of a decision.
type Situation string

const (
	RFI        Situation = "RFI"
	VsLimp     Situation = "vs_limp"
	VsRaise    Situation = "vs_raise"
	Vs3Bet     Situation = "vs_3bet"
	Vs4Bet     Situation = "vs_4bet"
	CBet       Situation = "cbet"
	FacingCBet Situation = "facing_cbet"

	// None marks a postflop spot that is neither a continuation-bet
	// opportunity nor facing one; the resolver falls back to its
	// neutral postflop line.
	None Situation = ""
)

// ValidSituation reports whether s is one of the seven named situations.
func ValidSituation(s Situation) bool {
	switch s {
	case RFI, VsLimp, VsRaise, Vs3Bet, Vs4Bet, CBet, FacingCBet:
		return true
	}
	return false
}

// Infer derives the preflop situation from the actions before the
// decision. Rules apply in strict priority order: three or more raises
// is vs_4bet, two is vs_3bet, any raise or bet is vs_raise, a call with
// no raise is vs_limp, otherwise the pot is unopened (RFI).
//
// A position appearing more than once keeps only its latest action
// (last-write-wins) before counting.
func Infer(actions []game.PlayerAction) Situation {
	actions = dedupeByPosition(actions)

	raises := 0
	betOrRaise := false
	called := false
	for _, a := range actions {
		switch a.Action {
		case game.Raise:
			raises++
			betOrRaise = true
		case game.Bet:
			betOrRaise = true
		case game.Call:
			called = true
		}
	}

	switch {
	case raises >= 3:
		return Vs4Bet
	case raises >= 2:
		return Vs3Bet
	case betOrRaise:
		return VsRaise
	case called:
		return VsLimp
	default:
		return RFI
	}
}

// PostflopSituation tags a postflop decision. A bet or raise by another
// player on the current street means the hero is facing a continuation
// bet; otherwise, if the hero made the last preflop raise, this is the
// hero's own continuation-bet spot; anything else is None. This rule is
// street-driven rather than derived from the preflop raise count.
func PostflopSituation(s game.State) Situation {
	if s.Street == game.Preflop || s.Street == "" {
		return None
	}

	for _, a := range s.StreetActions(s.Street) {
		if a.Position == s.Position {
			continue
		}
		switch a.Action {
		case game.Bet, game.Raise, game.AllIn:
			return FacingCBet
		}
	}

	if wasPreflopAggressor(s.StreetActions(game.Preflop), s.Position) {
		return CBet
	}

	return None
}

// wasPreflopAggressor reports whether the hero made the last preflop
// bet or raise.
func wasPreflopAggressor(preflop []game.PlayerAction, hero position.Position) bool {
	var last position.Position
	found := false
	for _, a := range preflop {
		if a.Action == game.Bet || a.Action == game.Raise || a.Action == game.AllIn {
			last = a.Position
			found = true
		}
	}
	return found && last == hero
}

func dedupeByPosition(actions []game.PlayerAction) []game.PlayerAction {
	latest := make(map[position.Position]int)
	var out []game.PlayerAction
	for _, a := range actions {
		if i, seen := latest[a.Position]; seen {
			out[i] = a
			continue
		}
		latest[a.Position] = len(out)
		out = append(out, a)
	}
	return out
}
