package domain

import (
	"fmt"
	"math/rand"
	"sort"
)

// Table dimensions for a five-seat round.
const (
	NumSeats   = 5
	HandSize   = 10
	WidowSize  = 4
	TrickCount = 10
	DeckSize   = 54
)

// NewDeck returns the ordered 54-card deck: 52 suited cards plus both jokers.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for r := 2; r <= RankAce; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	deck = append(deck, Card{Joker: JokerRed}, Card{Joker: JokerBlack})
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal distributes a 54-card deck round-robin into five 10-card hands and a
// 4-card widow.
func Deal(deck []Card) (hands [NumSeats][]Card, widow []Card, err error) {
	if len(deck) != DeckSize {
		return hands, nil, fmt.Errorf("deal requires %d cards, got %d", DeckSize, len(deck))
	}
	idx := 0
	for round := 0; round < HandSize; round++ {
		for seat := 0; seat < NumSeats; seat++ {
			hands[seat] = append(hands[seat], deck[idx])
			idx++
		}
	}
	widow = append([]Card{}, deck[idx:idx+WidowSize]...)
	return hands, widow, nil
}

// SortHand orders a hand for display: trump suit first, then by suit power
// and rank descending, jokers ahead of everything.
func SortHand(hand []Card, trump Suit) {
	sort.SliceStable(hand, func(i, j int) bool {
		return handSortKey(hand[i], trump) > handSortKey(hand[j], trump)
	})
}

func handSortKey(c Card, trump Suit) int {
	if c.IsJoker() {
		if c.Joker == JokerRed {
			return 10000
		}
		return 9999
	}
	key := c.Suit.Power()*100 + c.Rank
	if trump.Valid() && c.Suit == trump {
		key += 20000
	}
	return key
}

// HandHas reports whether the hand contains the exact card.
func HandHas(hand []Card, c Card) bool {
	for _, h := range hand {
		if h == c {
			return true
		}
	}
	return false
}

// HandHasSuit reports whether the hand contains any non-joker card of the suit.
func HandHasSuit(hand []Card, s Suit) bool {
	for _, h := range hand {
		if !h.IsJoker() && h.Suit == s {
			return true
		}
	}
	return false
}

// RemoveCard removes one instance of the card from the hand. The second
// return value is false when the card was not present.
func RemoveCard(hand []Card, c Card) ([]Card, bool) {
	for i, h := range hand {
		if h == c {
			out := append([]Card{}, hand[:i]...)
			return append(out, hand[i+1:]...), true
		}
	}
	return hand, false
}

// PointCards returns the point-card subset of the given cards.
func PointCards(cards []Card) []Card {
	var out []Card
	for _, c := range cards {
		if c.IsPoint() {
			out = append(out, c)
		}
	}
	return out
}
