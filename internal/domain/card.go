package domain

import "fmt"

// Suit is one of the four French suits.
type Suit string

const (
	Clubs    Suit = "C"
	Diamonds Suit = "D"
	Hearts   Suit = "H"
	Spades   Suit = "S"
)

// Suits lists all suits in ascending power order (C < D < H < S).
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Power returns the suit's tie-break strength. Higher wins.
func (s Suit) Power() int {
	switch s {
	case Clubs:
		return 1
	case Diamonds:
		return 2
	case Hearts:
		return 3
	case Spades:
		return 4
	}
	return 0
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s.Power() > 0
}

// SameColorPartner returns the other suit of the same color (C<->S, D<->H).
func SameColorPartner(s Suit) Suit {
	switch s {
	case Clubs:
		return Spades
	case Spades:
		return Clubs
	case Diamonds:
		return Hearts
	case Hearts:
		return Diamonds
	}
	return ""
}

// JokerColor distinguishes the two jokers. Empty for ordinary cards.
type JokerColor string

const (
	JokerNone  JokerColor = ""
	JokerRed   JokerColor = "R"
	JokerBlack JokerColor = "B"
)

// Ranks 11..14 are the face cards.
const (
	RankJack  = 11
	RankQueen = 12
	RankKing  = 13
	RankAce   = 14
)

// Card is a single card of the 54-card deck. Ordinary cards carry a suit and
// a rank 2..14; jokers carry only a color.
type Card struct {
	Suit  Suit       `json:"suit,omitempty"`
	Rank  int        `json:"rank,omitempty"`
	Joker JokerColor `json:"joker,omitempty"`
}

// IsJoker reports whether the card is one of the two jokers.
func (c Card) IsJoker() bool {
	return c.Joker != JokerNone
}

// IsPoint reports whether the card is a point card (rank 10..A, never a joker).
func (c Card) IsPoint() bool {
	return !c.IsJoker() && c.Rank >= 10
}

// ID returns the stable wire identifier, e.g. "H12" or "JR".
func (c Card) ID() string {
	if c.IsJoker() {
		return "J" + string(c.Joker)
	}
	return fmt.Sprintf("%s%d", c.Suit, c.Rank)
}

// String renders a short human-readable form for logs.
func (c Card) String() string {
	if c.IsJoker() {
		if c.Joker == JokerRed {
			return "Red Joker"
		}
		return "Black Joker"
	}
	return fmt.Sprintf("%s%s", c.Suit, rankLabel(c.Rank))
}

func rankLabel(r int) string {
	switch r {
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankAce:
		return "A"
	}
	return fmt.Sprintf("%d", r)
}

// ParseCardID is the inverse of Card.ID.
func ParseCardID(id string) (Card, error) {
	switch id {
	case "JR":
		return Card{Joker: JokerRed}, nil
	case "JB":
		return Card{Joker: JokerBlack}, nil
	}
	if len(id) < 2 {
		return Card{}, fmt.Errorf("malformed card id %q", id)
	}
	suit := Suit(id[:1])
	if !suit.Valid() {
		return Card{}, fmt.Errorf("malformed card id %q", id)
	}
	var rank int
	if _, err := fmt.Sscanf(id[1:], "%d", &rank); err != nil || rank < 2 || rank > RankAce {
		return Card{}, fmt.Errorf("malformed card id %q", id)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// Almighty is the Ace of Spades, the strongest single card.
var Almighty = Card{Suit: Spades, Rank: RankAce}

// Wobble is the Queen of Hearts, elevated above the Almighty only when both
// land in the same trick.
var Wobble = Card{Suit: Hearts, Rank: RankQueen}

// RightJack returns the Jack of the trump suit.
func RightJack(trump Suit) Card {
	return Card{Suit: trump, Rank: RankJack}
}

// LeftJack returns the Jack of the trump suit's same-color partner.
func LeftJack(trump Suit) Card {
	return Card{Suit: SameColorPartner(trump), Rank: RankJack}
}

// AllySpec designates the secret ally: either a concrete suit+rank or a
// joker color, chosen by the Emperor. The seat that first plays a matching
// card becomes the ally.
type AllySpec struct {
	Suit  Suit       `json:"suit,omitempty"`
	Rank  int        `json:"rank,omitempty"`
	Joker JokerColor `json:"joker,omitempty"`
}

// Valid reports whether the spec names exactly one card of the deck.
func (s AllySpec) Valid() bool {
	if s.Joker != JokerNone {
		return s.Suit == "" && s.Rank == 0 && (s.Joker == JokerRed || s.Joker == JokerBlack)
	}
	return s.Suit.Valid() && s.Rank >= 2 && s.Rank <= RankAce
}

// Matches reports whether the played card is the designated one.
func (s AllySpec) Matches(c Card) bool {
	if s.Joker != JokerNone {
		return c.Joker == s.Joker
	}
	return !c.IsJoker() && c.Suit == s.Suit && c.Rank == s.Rank
}

// Card returns the concrete card the spec names.
func (s AllySpec) Card() Card {
	if s.Joker != JokerNone {
		return Card{Joker: s.Joker}
	}
	return Card{Suit: s.Suit, Rank: s.Rank}
}
