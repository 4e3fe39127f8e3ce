// Package classify maps hole cards and community cards onto the coarse
// categories the strategy charts are keyed by.
package classify

import (
	"github.com/lox/pokercoach/internal/deck"
)

// HandCategory is the strength tier of a two-card starting hand.
type HandCategory string

const (
	Premium     HandCategory = "premium"     // AA, KK, QQ, AKs, AKo
	Strong      HandCategory = "strong"      // JJ, TT, AQ, AJs, KQs
	Medium      HandCategory = "medium"      // 99-77, ATs-A9s, KJs, QJs, JTs, T9s-76s
	Speculative HandCategory = "speculative" // 66-22, A8s-A2s, KTs, low suited connectors, suited one-gappers
	Weak        HandCategory = "weak"        // everything else
)

// Categories lists all hand categories from strongest to weakest.
var Categories = []HandCategory{Premium, Strong, Medium, Speculative, Weak}

// ValidCategory reports whether c is a known hand category.
func ValidCategory(c HandCategory) bool {
	switch c {
	case Premium, Strong, Medium, Speculative, Weak:
		return true
	}
	return false
}

// Notation returns the standard shorthand for a starting hand: rank
// doubled for pairs ("QQ"), high card then low card with a suited or
// offsuit suffix otherwise ("AKs", "T9o").
func Notation(a, b deck.Card) string {
	high, low := orderByRank(a, b)
	if high.Rank == low.Rank {
		return high.Rank.String() + low.Rank.String()
	}
	suffix := "o"
	if high.Suit == low.Suit {
		suffix = "s"
	}
	return high.Rank.String() + low.Rank.String() + suffix
}

// Hand assigns a starting hand to exactly one category. Rules apply in
// order, first match wins; the result is invariant under card order.
func Hand(a, b deck.Card) HandCategory {
	high, low := orderByRank(a, b)
	pair := high.Rank == low.Rank
	suited := high.Suit == low.Suit

	// Premium: QQ+ and AK
	if pair && high.Rank >= deck.Queen {
		return Premium
	}
	if high.Rank == deck.Ace && low.Rank == deck.King {
		return Premium
	}

	// Strong: JJ, TT, AQ, AJs, KQs
	if pair && (high.Rank == deck.Jack || high.Rank == deck.Ten) {
		return Strong
	}
	if high.Rank == deck.Ace && low.Rank == deck.Queen {
		return Strong
	}
	if suited && high.Rank == deck.Ace && low.Rank == deck.Jack {
		return Strong
	}
	if suited && high.Rank == deck.King && low.Rank == deck.Queen {
		return Strong
	}

	// Medium: middle pairs, suited ace-nine/ten, suited broadway and
	// middling suited connectors
	if pair && high.Rank >= deck.Seven && high.Rank <= deck.Nine {
		return Medium
	}
	if suited && high.Rank == deck.Ace && (low.Rank == deck.Nine || low.Rank == deck.Ten) {
		return Medium
	}
	if suited {
		switch Notation(a, b) {
		case "KJs", "QJs", "JTs", "T9s", "98s", "87s", "76s":
			return Medium
		}
	}

	// Speculative: small pairs, suited wheel aces, low suited
	// connectors, suited one-gappers with a decent high card, KTs
	if pair && high.Rank <= deck.Six {
		return Speculative
	}
	if suited && high.Rank == deck.Ace && low.Rank <= deck.Eight {
		return Speculative
	}
	if suited && isConnector(high, low) && high.Rank <= deck.Seven {
		return Speculative
	}
	if suited && isOneGapper(high, low) && high.Rank >= deck.Nine {
		return Speculative
	}
	if suited && high.Rank == deck.King && low.Rank >= deck.Ten {
		return Speculative
	}

	return Weak
}

// isConnector reports whether the two ranks are adjacent. A-2 counts as
// a connector (wheel wrap), not a 12-gap.
func isConnector(high, low deck.Card) bool {
	if high.Rank == deck.Ace && low.Rank == deck.Two {
		return true
	}
	return high.Rank-low.Rank == 1
}

func isOneGapper(high, low deck.Card) bool {
	return high.Rank-low.Rank == 2
}

func orderByRank(a, b deck.Card) (high, low deck.Card) {
	if a.Rank >= b.Rank {
		return a, b
	}
	return b, a
}
