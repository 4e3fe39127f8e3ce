package strategy

import (
	"math"

	"github.com/lox/pokercoach/internal/classify"
	"github.com/lox/pokercoach/internal/position"
)

// Adjustment is a user-scoped percentage delta applied on top of a base
// recommendation. Match fields act as predicates: an unset field is a
// wildcard, so an adjustment with no match fields applies universally.
// Deltas are percentage points in [-50, 50]; validation happens at the
// extraction boundary, never here. The engine only reads adjustments,
// it never mutates or persists them.
type Adjustment struct {
	Source       string                `json:"source"`
	VideoURL     string                `json:"videoUrl,omitempty"`
	Position     position.Position     `json:"position,omitempty"`
	HandCategory classify.HandCategory `json:"handCategory,omitempty"`
	Situation    Situation             `json:"situation,omitempty"`
	FoldDelta    int                   `json:"foldDelta,omitempty"`
	CallDelta    int                   `json:"callDelta,omitempty"`
	RaiseDelta   int                   `json:"raiseDelta,omitempty"`
	Active       bool                  `json:"isActive"`
}

// Matches reports whether every set match field equals the context.
func (a Adjustment) Matches(cat classify.HandCategory, pos position.Position, sit Situation) bool {
	if a.HandCategory != "" && a.HandCategory != cat {
		return false
	}
	if a.Position != "" && a.Position != pos {
		return false
	}
	if a.Situation != "" && a.Situation != sit {
		return false
	}
	return true
}

// Apply layers every active, matching adjustment onto base, then clamps
// each component into [0,100] and rescales so the result sums to exactly
// 100. Application is additive, so the order of adjustments does not
// matter. An empty or fully-inactive list returns base unchanged.
func Apply(base Recommendation, adjustments []Adjustment, cat classify.HandCategory, pos position.Position, sit Situation) Recommendation {
	fold, call, raise := base.Fold, base.Call, base.Raise

	for _, adj := range adjustments {
		if !adj.Active || !adj.Matches(cat, pos, sit) {
			continue
		}
		fold += adj.FoldDelta
		call += adj.CallDelta
		raise += adj.RaiseDelta
	}

	fold = clampPercent(fold)
	call = clampPercent(call)
	raise = clampPercent(raise)

	total := fold + call + raise
	if total == 0 {
		// Degenerate: the adjustments drove every component to zero.
		return Recommendation{Fold: 34, Call: 33, Raise: 33, RaiseSize: base.RaiseSize}
	}

	f := int(math.Round(float64(fold) / float64(total) * 100))
	c := int(math.Round(float64(call) / float64(total) * 100))
	r := int(math.Round(float64(raise) / float64(total) * 100))
	residual := 100 - f - c - r

	return Recommendation{Fold: f, Call: c, Raise: r + residual, RaiseSize: base.RaiseSize}
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
