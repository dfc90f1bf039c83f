package app

import "napoleon/internal/domain"

// EventKind identifies emitted round events for transport dispatch.
type EventKind string

const (
	EventHandDealt       EventKind = "hand_dealt"
	EventAuctionStarted  EventKind = "auction_started"
	EventBidAccepted     EventKind = "bid_accepted"
	EventPassAccepted    EventKind = "pass_accepted"
	EventAuctionResolved EventKind = "auction_resolved"
	EventRedeal          EventKind = "redeal"
	EventAllyDesignated  EventKind = "ally_designated"
	EventWidowTaken      EventKind = "widow_taken"
	EventDiscarded       EventKind = "discarded"
	EventCardPlayed      EventKind = "card_played"
	EventAllyRevealed    EventKind = "ally_revealed"
	EventTrickResolved   EventKind = "trick_resolved"
	EventRoundResult     EventKind = "round_result"
)

// Event is a round event with optional targeted recipients. Recipients are
// seat numbers; empty means broadcast to the whole match.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []int
}

type HandDealtPayload struct {
	Seat int           `json:"seat"`
	Hand []domain.Card `json:"hand"`
}

type AuctionStartedPayload struct {
	FirstSeat int `json:"first_seat"`
}

type BidAcceptedPayload struct {
	Seat int        `json:"seat"`
	Bid  domain.Bid `json:"bid"`
	Next int        `json:"next"`
}

type PassAcceptedPayload struct {
	Seat int `json:"seat"`
	Next int `json:"next"`
}

type AuctionResolvedPayload struct {
	EmperorSeat int         `json:"emperor_seat"`
	TrumpSuit   domain.Suit `json:"trump_suit"`
	Target      int         `json:"target"`
}

type AllyDesignatedPayload struct {
	Spec domain.AllySpec `json:"spec"`
}

// WidowTakenPayload is targeted at the Emperor; other seats only learn that
// the widow moved.
type WidowTakenPayload struct {
	Seat  int           `json:"seat"`
	Cards []domain.Card `json:"cards,omitempty"`
}

type DiscardedPayload struct {
	Seat int `json:"seat"`
}

type CardPlayedPayload struct {
	Seat     int         `json:"seat"`
	Card     domain.Card `json:"card"`
	LeadSuit domain.Suit `json:"lead_suit"`
	Next     int         `json:"next"` // -1 when the trick just completed
}

type AllyRevealedPayload struct {
	Seat int         `json:"seat"`
	Card domain.Card `json:"card"`
}

type TrickResolvedPayload struct {
	TrickNo    int                  `json:"trick_no"`
	WinnerSeat int                  `json:"winner_seat"`
	Reason     domain.WinReason     `json:"reason"`
	Thefts     []domain.Theft       `json:"thefts,omitempty"`
	NextLeader int                  `json:"next_leader"` // -1 on the last trick
	Points     [domain.NumSeats]int `json:"points"`
}

type RoundResultPayload struct {
	Result domain.RoundResult `json:"result"`
}
