package bot

import (
	"napoleon/internal/domain"
)

// View is the slice of round state a bot is allowed to see: its own hand and
// everything already public. Nothing in a View exposes another seat's hand or
// the widow.
type View struct {
	Seat      int
	Archetype domain.Archetype
	Hand      []domain.Card

	Phase       domain.Phase
	EmperorSeat int
	TrumpSuit   domain.Suit
	Target      int

	HighestBid  *domain.Bid
	HighestSeat int
	// Dropped means the seat passed after bidding and may only pass again.
	Dropped bool

	AllySpec     domain.AllySpec // zero until designated
	AllyRevealed bool
	AllySeat     int // -1 until revealed

	Trick   *domain.Trick
	TrickNo int

	// Legal is the engine-computed legal set for the seat's current play.
	// Empty outside the trick phase.
	Legal []domain.Card

	// PointsTaken is the public per-seat count of captured point cards.
	PointsTaken [domain.NumSeats]int
}

// Brain decides one archetype's moves. Implementations must be pure over the
// View: same view, same answer.
type Brain interface {
	// ChooseBid returns the bid to place, or false to pass.
	ChooseBid(v View) (domain.Bid, bool)
	// ChooseAlly picks the ally designation after winning the auction.
	ChooseAlly(v View) domain.AllySpec
	// ChooseDiscard names the four cards to return after taking the widow.
	ChooseDiscard(v View) []domain.Card
	// ChoosePlay picks a card from v.Legal; the suit is the declared lead
	// suit and only meaningful when the card is a led joker.
	ChoosePlay(v View) (domain.Card, domain.Suit)
}
