package internal

import "napoleon/internal/domain"

// Weights tune one archetype's decision making.
type Weights struct {
	// BidAggression shifts the estimated-trick count before it is turned
	// into a bid. Positive bids higher, negative passes more.
	BidAggression int
	// TargetRankBonus raises the keep value of point cards matching the
	// archetype's special-victory rank.
	TargetRankBonus float64
	// PointGreed scales how much captured points matter when deciding
	// whether a winning play is worth its card.
	PointGreed float64
	// JokerCaution scales the keep value of jokers; high values hold the
	// theft threat back for later tricks.
	JokerCaution float64
}

// ghostSuit picks a suit that is neither trump nor the lead suit, so padded
// cards can never decide a simulated trick.
func ghostSuit(trump, lead domain.Suit) domain.Suit {
	for _, s := range domain.Suits {
		if s != trump && s != lead {
			return s
		}
	}
	return domain.Clubs
}

// WouldWin reports whether playing the card now would take the trick if every
// seat still to act threw a worthless card. For the last seat of a trick this
// is exact; earlier it is an optimistic floor, since unseen seats may still
// overcall.
func WouldWin(t *domain.Trick, seat int, card domain.Card, resolved domain.Suit, trump domain.Suit) bool {
	sim := domain.NewTrick(t.Leader)
	sim.LeadSuit = t.LeadSuit
	sim.Plays = append(sim.Plays, t.Plays...)
	if len(sim.Plays) == 0 {
		sim.LeadSuit = resolved
	}
	sim.Plays = append(sim.Plays, domain.Play{Seat: seat, Card: card, ResolvedSuit: resolved})

	ghost := ghostSuit(trump, sim.LeadSuit)
	for next := (seat + 1) % domain.NumSeats; !sim.Complete(); next = (next + 1) % domain.NumSeats {
		sim.Plays = append(sim.Plays, domain.Play{
			Seat:         next,
			Card:         domain.Card{Suit: ghost, Rank: 3},
			ResolvedSuit: ghost,
		})
	}

	result, err := domain.EvaluateTrick(sim, trump)
	if err != nil {
		return false
	}
	return result.WinnerSeat == seat
}

// PointsOnTable counts the point cards already laid into the trick.
func PointsOnTable(t *domain.Trick) int {
	n := 0
	for _, p := range t.Plays {
		if p.Card.IsPoint() {
			n++
		}
	}
	return n
}

// TargetRankOnTable counts trick cards of the given rank.
func TargetRankOnTable(t *domain.Trick, rank int) int {
	n := 0
	for _, p := range t.Plays {
		if !p.Card.IsJoker() && p.Card.Rank == rank {
			n++
		}
	}
	return n
}
