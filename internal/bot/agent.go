package bot

import (
	"napoleon/internal/domain"
)

// Agent binds a strategy to a seat and guards every answer so the engine is
// never handed an illegal move, whatever the strategy returns.
type Agent struct {
	Seat     int
	Identity Identity
	Strategy Brain
}

// NewAgent seats a strategy for the archetype at the given seat.
func NewAgent(seat int, a domain.Archetype) *Agent {
	return &Agent{
		Seat:     seat,
		Identity: IdentityFor(a),
		Strategy: NewBrain(a),
	}
}

// BidOrPass returns the agent's auction move. Out-of-range answers collapse
// to a pass.
func (a *Agent) BidOrPass(v View) (domain.Bid, bool) {
	bid, ok := a.Strategy.ChooseBid(v)
	if !ok {
		return domain.Bid{}, false
	}
	if bid.Count < domain.MinBidCount || bid.Count > domain.MaxBidCount || !bid.Suit.Valid() {
		return domain.Bid{}, false
	}
	if v.HighestBid != nil && domain.CompareBid(bid, *v.HighestBid) <= 0 {
		return domain.Bid{}, false
	}
	return bid, true
}

// Designate returns the ally spec. An invalid answer, or one naming a card
// the Emperor holds, is replaced by the first unheld card of the deck.
func (a *Agent) Designate(v View) domain.AllySpec {
	spec := a.Strategy.ChooseAlly(v)
	if spec.Valid() && !domain.HandHas(v.Hand, spec.Card()) {
		return spec
	}
	for _, c := range domain.NewDeck() {
		if domain.HandHas(v.Hand, c) {
			continue
		}
		if c.IsJoker() {
			return domain.AllySpec{Joker: c.Joker}
		}
		return domain.AllySpec{Suit: c.Suit, Rank: c.Rank}
	}
	return domain.AllySpec{Suit: domain.Spades, Rank: domain.RankAce}
}

// Discard returns four held cards, falling back to the front of the hand when
// the strategy's answer is unusable.
func (a *Agent) Discard(v View) []domain.Card {
	cards := a.Strategy.ChooseDiscard(v)
	if validDiscard(v.Hand, cards) {
		return cards
	}
	return append([]domain.Card{}, v.Hand[:domain.WidowSize]...)
}

// Play returns a card from the legal set plus the declared suit for a led
// joker. An illegal answer falls back to the first legal card.
func (a *Agent) Play(v View) (domain.Card, domain.Suit) {
	card, declared := a.Strategy.ChoosePlay(v)
	if !domain.HandHas(v.Legal, card) {
		card = v.Legal[0]
		declared = ""
	}
	leading := v.Trick == nil || len(v.Trick.Plays) == 0
	if leading && card.IsJoker() && !declared.Valid() {
		declared = domain.Hearts
	}
	return card, declared
}

func validDiscard(hand, cards []domain.Card) bool {
	if len(cards) != domain.WidowSize {
		return false
	}
	rest := append([]domain.Card{}, hand...)
	for _, c := range cards {
		var ok bool
		rest, ok = domain.RemoveCard(rest, c)
		if !ok {
			return false
		}
	}
	return true
}
