package app

import (
	"math/rand"
	"time"

	"napoleon/internal/bot"
	"napoleon/internal/domain"
)

// Service contains the round use-cases. It owns the shuffle source; all game
// state lives in the domain.Round the caller holds.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// StartRound shuffles, deals and opens the auction. Each seat receives its
// hand privately; the auction opening is broadcast.
func (s *Service) StartRound() (*domain.Round, []Event, error) {
	deck := domain.ShuffleDeck(domain.NewDeck(), s.rng)
	round, err := domain.NewRound(deck)
	if err != nil {
		return nil, nil, err
	}

	events := make([]Event, 0, domain.NumSeats+1)
	for seat := 0; seat < domain.NumSeats; seat++ {
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: seat, Hand: round.Hands[seat]},
			Recipients: []int{seat},
		})
	}
	events = append(events, Event{
		Kind:    EventAuctionStarted,
		Payload: AuctionStartedPayload{FirstSeat: round.Auction.Turn},
	})
	return round, events, nil
}

// SubmitBid applies a bid. Rejections surface as errors and emit nothing.
func (s *Service) SubmitBid(round *domain.Round, seat int, bid domain.Bid) ([]Event, error) {
	if err := round.SubmitBid(seat, bid); err != nil {
		return nil, err
	}
	return []Event{{
		Kind:    EventBidAccepted,
		Payload: BidAcceptedPayload{Seat: seat, Bid: bid, Next: round.Auction.Turn},
	}}, nil
}

// SubmitPass applies a pass. Resolution fixes the Emperor and broadcasts it;
// an all-pass first round broadcasts a redeal and ends the round.
func (s *Service) SubmitPass(round *domain.Round, seat int) ([]Event, error) {
	status, err := round.SubmitPass(seat)
	if err != nil {
		return nil, err
	}
	switch status {
	case domain.AuctionResolved:
		return []Event{
			{Kind: EventPassAccepted, Payload: PassAcceptedPayload{Seat: seat, Next: -1}},
			{Kind: EventAuctionResolved, Payload: AuctionResolvedPayload{
				EmperorSeat: round.Roles.EmperorSeat,
				TrumpSuit:   round.TrumpSuit,
				Target:      round.Target,
			}},
		}, nil
	case domain.AuctionRedeal:
		return []Event{{Kind: EventRedeal, Payload: struct{}{}}}, nil
	}
	return []Event{{
		Kind:    EventPassAccepted,
		Payload: PassAcceptedPayload{Seat: seat, Next: round.Auction.Turn},
	}}, nil
}

// DesignateAlly records the Emperor's public designation.
func (s *Service) DesignateAlly(round *domain.Round, seat int, spec domain.AllySpec) ([]Event, error) {
	if err := round.DesignateAlly(seat, spec); err != nil {
		return nil, err
	}
	return []Event{{
		Kind:    EventAllyDesignated,
		Payload: AllyDesignatedPayload{Spec: spec},
	}}, nil
}

// TakeWidow hands the widow to the Emperor. The card faces go only to the
// Emperor's seat; everyone else sees the bare transfer.
func (s *Service) TakeWidow(round *domain.Round, seat int) ([]Event, error) {
	if err := round.TakeWidow(seat); err != nil {
		return nil, err
	}
	return []Event{
		{
			Kind:       EventWidowTaken,
			Payload:    WidowTakenPayload{Seat: seat, Cards: round.Hands[seat][domain.HandSize:]},
			Recipients: []int{seat},
		},
		{Kind: EventWidowTaken, Payload: WidowTakenPayload{Seat: seat}},
	}, nil
}

// Discard returns four cards face down and opens the trick phase.
func (s *Service) Discard(round *domain.Round, seat int, cards []domain.Card) ([]Event, error) {
	if err := round.Discard(seat, cards); err != nil {
		return nil, err
	}
	return []Event{{
		Kind:    EventDiscarded,
		Payload: DiscardedPayload{Seat: seat},
	}}, nil
}

// PlayCard applies one play and unrolls its consequences into events: the
// play itself, an ally reveal when the designated card hits the table, the
// trick resolution with thefts, and the final tally when the round ends.
func (s *Service) PlayCard(round *domain.Round, seat int, card domain.Card, declared domain.Suit) ([]Event, error) {
	out, err := round.PlayCard(seat, card, declared)
	if err != nil {
		return nil, err
	}

	next := -1
	if out.Trick == nil && round.Trick != nil {
		next = round.Trick.ExpectedSeat()
	}
	leadSuit := out.Play.ResolvedSuit
	if round.Trick != nil && len(round.Trick.Plays) > 0 {
		leadSuit = round.Trick.LeadSuit
	}

	events := []Event{{
		Kind: EventCardPlayed,
		Payload: CardPlayedPayload{
			Seat:     seat,
			Card:     card,
			LeadSuit: leadSuit,
			Next:     next,
		},
	}}

	if out.AllyRevealed {
		events = append(events, Event{
			Kind:    EventAllyRevealed,
			Payload: AllyRevealedPayload{Seat: seat, Card: card},
		})
	}

	if out.Trick != nil {
		var points [domain.NumSeats]int
		for s := 0; s < domain.NumSeats; s++ {
			points[s] = len(round.Points[s])
		}
		nextLeader := -1
		if round.Trick != nil {
			nextLeader = round.Trick.Leader
		}
		events = append(events, Event{
			Kind: EventTrickResolved,
			Payload: TrickResolvedPayload{
				TrickNo:    out.Trick.TrickNo,
				WinnerSeat: out.Trick.Result.WinnerSeat,
				Reason:     out.Trick.Result.Reason,
				Thefts:     out.Trick.Thefts,
				NextLeader: nextLeader,
				Points:     points,
			},
		})
	}

	if out.RoundOver {
		result, err := round.Result()
		if err != nil {
			return events, err
		}
		events = append(events, Event{
			Kind:    EventRoundResult,
			Payload: RoundResultPayload{Result: result},
		})
	}
	return events, nil
}

// ViewFor builds the restricted state slice a bot at the seat may see.
func (s *Service) ViewFor(round *domain.Round, seat int) bot.View {
	v := bot.View{
		Seat:        seat,
		Archetype:   round.Seating[seat],
		Hand:        round.Hands[seat],
		Phase:       round.Phase,
		EmperorSeat: round.Roles.EmperorSeat,
		TrumpSuit:   round.TrumpSuit,
		Target:      round.Target,
		AllySeat:    round.Roles.AllySeat,
		Trick:       round.Trick,
		TrickNo:     round.TrickNo,
		Legal:       round.LegalPlays(seat),
	}
	if round.Phase == domain.PhaseAuction && round.Auction != nil {
		v.HighestBid = round.Auction.Highest
		v.HighestSeat = round.Auction.HighestSeat
		v.Dropped = round.Auction.Dropped(seat)
	}
	if round.Phase != domain.PhaseAuction && round.Phase != domain.PhaseAllyPick {
		v.AllySpec = round.Roles.AllySpec
	}
	v.AllyRevealed = round.Roles.AllyRevealed
	for s := 0; s < domain.NumSeats; s++ {
		v.PointsTaken[s] = len(round.Points[s])
	}
	return v
}
