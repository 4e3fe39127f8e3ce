// Package position models table seats and their strategic tiers.
package position

// Position is a canonical seat label, ordered from earliest to latest
// preflop action.
type Position string

const (
	UTG  Position = "UTG"
	UTG1 Position = "UTG+1"
	UTG2 Position = "UTG+2"
	LJ   Position = "LJ"
	HJ   Position = "HJ"
	CO   Position = "CO"
	BTN  Position = "BTN"
	SB   Position = "SB"
	BB   Position = "BB"
)

// All lists the nine canonical positions in action order (9-handed).
var All = []Position{UTG, UTG1, UTG2, LJ, HJ, CO, BTN, SB, BB}

// Names maps positions to their long-form names.
var Names = map[Position]string{
	UTG:  "Under the Gun",
	UTG1: "Under the Gun +1",
	UTG2: "Under the Gun +2",
	LJ:   "Lojack",
	HJ:   "Hijack",
	CO:   "Cutoff",
	BTN:  "Button",
	SB:   "Small Blind",
	BB:   "Big Blind",
}

// seatsByTableSize is a fixed lookup: each table size selects a
// subsequence of the canonical order, always ending BTN, SB, BB
// (heads-up collapses to BTN, BB).
var seatsByTableSize = map[int][]Position{
	2: {BTN, BB},
	3: {BTN, SB, BB},
	4: {CO, BTN, SB, BB},
	5: {HJ, CO, BTN, SB, BB},
	6: {LJ, HJ, CO, BTN, SB, BB},
	7: {UTG, LJ, HJ, CO, BTN, SB, BB},
	8: {UTG, UTG1, LJ, HJ, CO, BTN, SB, BB},
	9: {UTG, UTG1, UTG2, LJ, HJ, CO, BTN, SB, BB},
}

// Seats returns the seats in play for a table of n players (2-9), in
// canonical action order. Returns nil for sizes outside that range.
func Seats(n int) []Position {
	seats, ok := seatsByTableSize[n]
	if !ok {
		return nil
	}
	out := make([]Position, len(seats))
	copy(out, seats)
	return out
}

// Tier is a coarse strategic grouping of seats.
type Tier string

const (
	Early  Tier = "early"
	Middle Tier = "middle"
	Late   Tier = "late"
	Blinds Tier = "blinds"
)

// TierOf classifies a seat into its strategic tier.
func TierOf(p Position) Tier {
	switch p {
	case UTG, UTG1, UTG2:
		return Early
	case LJ, HJ:
		return Middle
	case CO, BTN:
		return Late
	default:
		return Blinds
	}
}

// Valid reports whether p is one of the nine canonical seat labels.
func Valid(p Position) bool {
	_, ok := Names[p]
	return ok
}

// Index returns the seat's place in the canonical order, or -1.
func Index(p Position) int {
	for i, pos := range All {
		if pos == p {
			return i
		}
	}
	return -1
}
