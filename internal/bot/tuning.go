package bot

import (
	botinternal "napoleon/internal/bot/internal"
	"napoleon/internal/domain"
)

// DefaultTuning gives each archetype a distinct temperament. Collectors of
// many cards (Victoria, Katyusha need four) weigh their target rank heavily
// and hold jokers back for thefts; Louise needs a single ace and bids harder
// to control the exchange.
var DefaultTuning = map[domain.Archetype]botinternal.Weights{
	domain.Maria: {
		BidAggression:   0,
		TargetRankBonus: 18,
		PointGreed:      1.0,
		JokerCaution:    1.0,
	},
	domain.Jeanne: {
		BidAggression:   0,
		TargetRankBonus: 20,
		PointGreed:      1.1,
		JokerCaution:    1.2,
	},
	domain.Victoria: {
		BidAggression:   -1,
		TargetRankBonus: 25,
		PointGreed:      0.9,
		JokerCaution:    1.4,
	},
	domain.Louise: {
		BidAggression:   1,
		TargetRankBonus: 15,
		PointGreed:      1.2,
		JokerCaution:    0.8,
	},
	domain.Katyusha: {
		BidAggression:   -1,
		TargetRankBonus: 25,
		PointGreed:      0.9,
		JokerCaution:    1.4,
	},
}

// TuningFor returns the archetype's weights, falling back to a neutral set.
func TuningFor(a domain.Archetype) botinternal.Weights {
	if w, ok := DefaultTuning[a]; ok {
		return w
	}
	return botinternal.Weights{PointGreed: 1.0, JokerCaution: 1.0}
}
