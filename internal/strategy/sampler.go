package strategy

import rand "math/rand/v2"

// Action is one concrete poker action drawn from a recommendation.
type Action string

const (
	ActionFold  Action = "fold"
	ActionCall  Action = "call"
	ActionRaise Action = "raise"
)

// Sample draws one action from the recommendation's weights: a single
// uniform draw in [0,100) mapped through the cumulative fold/call/raise
// distribution. Stateless apart from the provided source.
func Sample(rec Recommendation, rng *rand.Rand) Action {
	r := rng.Float64() * 100
	switch {
	case r < float64(rec.Fold):
		return ActionFold
	case r < float64(rec.Fold+rec.Call):
		return ActionCall
	default:
		return ActionRaise
	}
}
