// Package game defines the decision-point context handed to the
// strategy engine. Values here are owned by the caller and treated as
// immutable inputs per call.
package game

import (
	"github.com/lox/pokercoach/internal/deck"
	"github.com/lox/pokercoach/internal/position"
)

// Street is a betting round.
type Street string

const (
	Preflop Street = "preflop"
	Flop    Street = "flop"
	Turn    Street = "turn"
	River   Street = "river"
)

// ValidStreet reports whether s names a betting round.
func ValidStreet(s Street) bool {
	switch s {
	case Preflop, Flop, Turn, River:
		return true
	}
	return false
}

// Stakes describes the blind levels of the table.
type Stakes struct {
	SmallBlind float64 `json:"smallBlind"`
	BigBlind   float64 `json:"bigBlind"`
	Label      string  `json:"label,omitempty"`
}

// ActionType is a single poker action.
type ActionType string

const (
	Fold  ActionType = "fold"
	Check ActionType = "check"
	Call  ActionType = "call"
	Bet   ActionType = "bet"
	Raise ActionType = "raise"
	AllIn ActionType = "all-in"
)

// PlayerAction records one action taken before the hero's decision.
// Amount is in big blinds, zero when not applicable. Street zero value
// means preflop.
type PlayerAction struct {
	Position position.Position `json:"position"`
	Action   ActionType        `json:"action"`
	Amount   float64           `json:"amount,omitempty"`
	Street   Street            `json:"street,omitempty"`
}

// OnStreet reports whether the action happened on the given street,
// treating an unset street as preflop.
func (a PlayerAction) OnStreet(s Street) bool {
	if a.Street == "" {
		return s == Preflop
	}
	return a.Street == s
}

// State is the full decision context for one spot.
type State struct {
	Stakes         Stakes            `json:"stakes"`
	Position       position.Position `json:"position"`
	HoleCards      []deck.Card       `json:"holeCards"`
	Street         Street            `json:"street"`
	Board          []deck.Card       `json:"boardCards"`
	PotSize        float64           `json:"potSize"`
	EffectiveStack float64           `json:"effectiveStack"`
	Actions        []PlayerAction    `json:"actions"`
}

// StreetActions returns the actions that happened on the given street,
// deduplicated so that a position keeps only its latest entry
// (last-write-wins), preserving relative order of the survivors.
func (s State) StreetActions(street Street) []PlayerAction {
	latest := make(map[position.Position]int)
	var filtered []PlayerAction
	for _, a := range s.Actions {
		if !a.OnStreet(street) {
			continue
		}
		if i, seen := latest[a.Position]; seen {
			filtered[i] = a
			continue
		}
		latest[a.Position] = len(filtered)
		filtered = append(filtered, a)
	}
	return filtered
}
