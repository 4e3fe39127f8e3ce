package strategy

import (
	"math"

	"github.com/lox/pokercoach/internal/classify"
	"github.com/lox/pokercoach/internal/deck"
	"github.com/lox/pokercoach/internal/position"
)

// Recommendation is a mixed strategy for one decision. Fold, Call and
// Raise are integer percentages that always sum to exactly 100.
// RaiseSize is in big blinds preflop and percent of pot postflop.
type Recommendation struct {
	Fold      int     `json:"fold"`
	Call      int     `json:"call"`
	Raise     int     `json:"raise"`
	RaiseSize float64 `json:"raiseSize,omitempty"`
}

// shortStackBB is the effective stack below which premium and strong
// hands shift toward a push/fold line preflop.
const shortStackBB = 30

// Preflop resolves a preflop decision from the hole cards, seat,
// situation and effective stack in big blinds.
func Preflop(a, b deck.Card, pos position.Position, sit Situation, stackBB float64) Recommendation {
	cat := classify.Hand(a, b)
	tier := position.TierOf(pos)

	var raw triple
	switch sit {
	case RFI:
		raw = rfiTable[tier][cat]
	case VsLimp:
		raw = vsLimpTable[tier][cat]
	case VsRaise:
		raw = vsRaiseTable[tier][cat]
	case Vs3Bet:
		raw = vs3BetTable[cat]
	case Vs4Bet:
		switch cat {
		case classify.Premium:
			raw = triple{0, 30, 70}
		case classify.Strong:
			raw = triple{50, 40, 10}
		default:
			raw = triple{100, 0, 0}
		}
	default:
		raw = triple{50, 25, 25}
	}

	f, c, r := float64(raw[0]), float64(raw[1]), float64(raw[2])

	// Short stacks play push/fold with their best hands: fold and call
	// mass shifts into raise. The transfer preserves the row total.
	if stackBB < shortStackBB && (cat == classify.Premium || cat == classify.Strong) {
		f, c, r = f*0.5, c*0.3, r+c*0.7+f*0.5
	}

	rec := normalize(f, c, r)
	rec.RaiseSize = preflopRaiseSize(sit)
	return rec
}

// Postflop resolves a postflop decision from the hand category, board
// texture and situation. Situations other than cbet and facing_cbet get
// a fixed neutral line.
func Postflop(cat classify.HandCategory, tex classify.BoardTexture, sit Situation) Recommendation {
	var raw triple
	size := 100.0 // percent of pot
	switch sit {
	case CBet:
		raw = cbetTable[tex][cat]
		size = 50
	case FacingCBet:
		raw = facingCBetTable[tex][cat]
	default:
		raw = triple{40, 40, 20}
	}

	rec := normalize(float64(raw[0]), float64(raw[1]), float64(raw[2]))
	rec.RaiseSize = size
	return rec
}

// preflopRaiseSize is a fixed open/3-bet/4-bet sizing in big blinds.
func preflopRaiseSize(sit Situation) float64 {
	switch sit {
	case RFI:
		return 3
	case VsLimp:
		return 4
	case VsRaise:
		return 9
	case Vs3Bet:
		return 22
	default:
		return 3
	}
}

// normalize scales a raw triple to integer percentages summing to
// exactly 100. Each component is rounded independently; any residual
// left by rounding is added to the raise component.
func normalize(f, c, r float64) Recommendation {
	total := f + c + r
	fold := int(math.Round(f / total * 100))
	call := int(math.Round(c / total * 100))
	raise := int(math.Round(r / total * 100))
	residual := 100 - fold - call - raise
	return Recommendation{Fold: fold, Call: call, Raise: raise + residual}
}
