package bot

import (
	botinternal "napoleon/internal/bot/internal"
	"napoleon/internal/domain"
)

// StandardBrain is the heuristic strategy every archetype runs, parameterized
// by its tuning weights.
type StandardBrain struct {
	weights botinternal.Weights
}

// ChooseBid estimates the hand's sure tricks in its best suit and bids two
// points per trick over a base of eleven. A hand that cannot reach the
// thirteen-point floor, or cannot legally raise the standing bid, passes.
func (b *StandardBrain) ChooseBid(v View) (domain.Bid, bool) {
	if v.Dropped {
		return domain.Bid{}, false
	}
	suit := botinternal.BestBidSuit(v.Hand)
	est := botinternal.EstimateTricks(v.Hand, suit) + b.weights.BidAggression
	comfort := 11 + 2*est
	if comfort > domain.MaxBidCount {
		comfort = domain.MaxBidCount
	}
	if comfort < domain.MinBidCount {
		return domain.Bid{}, false
	}

	// Lowest legal raise within the comfort ceiling.
	for count := domain.MinBidCount; count <= comfort; count++ {
		bid := domain.Bid{Count: count, Suit: suit}
		if v.HighestBid == nil || domain.CompareBid(bid, *v.HighestBid) > 0 {
			return bid, true
		}
	}
	return domain.Bid{}, false
}

// ChooseAlly designates the strongest card outside the Emperor's own hand:
// the Almighty, the Wobble, the trump-suit jacks and the jokers first, then
// trump honors down to the seven, then every suit's honors down to the ten.
// Naming a held card would leave the Emperor fighting alone, so owned
// candidates are skipped; the pool is wide enough that a fourteen-card hand
// can never exhaust it.
func (b *StandardBrain) ChooseAlly(v View) domain.AllySpec {
	var specs []domain.AllySpec
	for _, c := range []domain.Card{
		domain.Almighty,
		domain.Wobble,
		domain.RightJack(v.TrumpSuit),
		domain.LeftJack(v.TrumpSuit),
	} {
		specs = append(specs, domain.AllySpec{Suit: c.Suit, Rank: c.Rank})
	}
	specs = append(specs,
		domain.AllySpec{Joker: domain.JokerRed},
		domain.AllySpec{Joker: domain.JokerBlack})
	for rank := domain.RankAce; rank >= 7; rank-- {
		specs = append(specs, domain.AllySpec{Suit: v.TrumpSuit, Rank: rank})
	}
	for _, suit := range domain.Suits {
		for rank := domain.RankAce; rank >= 10; rank-- {
			specs = append(specs, domain.AllySpec{Suit: suit, Rank: rank})
		}
	}

	for _, spec := range specs {
		if !domain.HandHas(v.Hand, spec.Card()) {
			return spec
		}
	}
	return domain.AllySpec{Suit: v.TrumpSuit, Rank: 2}
}

// ChooseDiscard drops the four cards the hand values least.
func (b *StandardBrain) ChooseDiscard(v View) []domain.Card {
	target := v.Archetype.Profile().TargetRank
	sorted := botinternal.SortByKeepValue(v.Hand, v.TrumpSuit, target, b.weights)
	return sorted[:domain.WidowSize]
}

// ChoosePlay picks from the legal set. Leading, it opens with its most
// expendable card unless it holds a near-certain winner worth cashing.
// Following, it plays the cheapest card that would currently take the trick
// when the points at stake justify it, and otherwise dumps its weakest card.
func (b *StandardBrain) ChoosePlay(v View) (domain.Card, domain.Suit) {
	target := v.Archetype.Profile().TargetRank
	sorted := botinternal.SortByKeepValue(v.Legal, v.TrumpSuit, target, b.weights)

	leading := v.Trick == nil || len(v.Trick.Plays) == 0
	if leading {
		card := b.chooseLead(v, sorted)
		var declared domain.Suit
		if card.IsJoker() {
			declared = botinternal.LongestSuit(v.Hand)
		}
		return card, declared
	}

	// A following joker rides the lead suit; no declaration needed.
	stake := float64(botinternal.PointsOnTable(v.Trick)) * b.weights.PointGreed
	stake += float64(botinternal.TargetRankOnTable(v.Trick, target)) * 2
	last := len(v.Trick.Plays) == domain.NumSeats-1

	if stake >= 1 || last {
		for _, c := range sorted {
			resolved := c.Suit
			if c.IsJoker() {
				resolved = v.Trick.LeadSuit
			}
			if botinternal.WouldWin(v.Trick, v.Seat, c, resolved, v.TrumpSuit) {
				if last || !c.IsJoker() {
					return c, ""
				}
			}
		}
	}
	return sorted[0], ""
}

// chooseLead cashes the strongest sure winner early when the hand has one,
// otherwise leads the weakest card to probe.
func (b *StandardBrain) chooseLead(v View, sorted []domain.Card) domain.Card {
	for i := len(sorted) - 1; i >= 0; i-- {
		c := sorted[i]
		if c == domain.Almighty || c == domain.RightJack(v.TrumpSuit) {
			return c
		}
	}
	return sorted[0]
}
