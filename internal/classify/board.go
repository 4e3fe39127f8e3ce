package classify

import (
	"sort"

	"github.com/lox/pokercoach/internal/deck"
)

// BoardTexture is a coarse classification of how much a board favours
// drawing hands. The categories are mutually exclusive; Board applies
// them in precedence order monotone > paired > wet > dry.
type BoardTexture string

const (
	Dry      BoardTexture = "dry"
	Wet      BoardTexture = "wet"
	Paired   BoardTexture = "paired"
	Monotone BoardTexture = "monotone"
)

// Board classifies 3-5 community cards. Fewer than 3 cards (preflop) is
// dry by convention.
func Board(cards []deck.Card) BoardTexture {
	if len(cards) < 3 {
		return Dry
	}

	suitCounts := make(map[deck.Suit]int)
	rankCounts := make(map[deck.Rank]int)
	for _, c := range cards {
		suitCounts[c.Suit]++
		rankCounts[c.Rank]++
	}

	if len(suitCounts) == 1 {
		return Monotone
	}

	for _, n := range rankCounts {
		if n >= 2 {
			return Paired
		}
	}

	// Flush draw possible: three or more of one suit
	for _, n := range suitCounts {
		if n >= 3 {
			return Wet
		}
	}

	// Straight draw heavy: every adjacent gap in the sorted ranks is
	// at most two
	ranks := make([]int, 0, len(rankCounts))
	for r := range rankCounts {
		ranks = append(ranks, int(r))
	}
	sort.Ints(ranks)

	maxGap := 0
	for i := 1; i < len(ranks); i++ {
		if gap := ranks[i] - ranks[i-1]; gap > maxGap {
			maxGap = gap
		}
	}
	if maxGap <= 2 {
		return Wet
	}

	return Dry
}

// ValidTexture reports whether t is a known board texture.
func ValidTexture(t BoardTexture) bool {
	switch t {
	case Dry, Wet, Paired, Monotone:
		return true
	}
	return false
}
