package nakama

import (
	"fmt"

	"napoleon/internal/domain"
)

// Client requests carry cards as their stable string ids ("H12", "JR").

type PlaceBidRequest struct {
	Count int    `json:"count"`
	Suit  string `json:"suit"`
}

type DesignateAllyRequest struct {
	Card string `json:"card"`
}

type DiscardRequest struct {
	Cards []string `json:"cards"`
}

type PlayCardRequest struct {
	Card     string `json:"card"`
	LeadSuit string `json:"lead_suit,omitempty"` // required when leading a joker
}

// GameErrorEvent is sent privately to the seat whose command was rejected.
type GameErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func parseCards(ids []string) ([]domain.Card, error) {
	cards := make([]domain.Card, 0, len(ids))
	for _, id := range ids {
		c, err := domain.ParseCardID(id)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func parseSuit(s string) (domain.Suit, error) {
	if s == "" {
		return "", nil
	}
	suit := domain.Suit(s)
	if !suit.Valid() {
		return "", fmt.Errorf("malformed suit %q", s)
	}
	return suit, nil
}

func parseAllySpec(id string) (domain.AllySpec, error) {
	card, err := domain.ParseCardID(id)
	if err != nil {
		return domain.AllySpec{}, err
	}
	if card.IsJoker() {
		return domain.AllySpec{Joker: card.Joker}, nil
	}
	return domain.AllySpec{Suit: card.Suit, Rank: card.Rank}, nil
}
