package domain

// Phase is the lifecycle stage of a round.
type Phase string

const (
	// PhaseAuction runs the bidding rotation.
	PhaseAuction Phase = "auction"
	// PhaseAllyPick waits for the Emperor's ally designation.
	PhaseAllyPick Phase = "ally_pick"
	// PhaseExchange covers the widow hand-off and the discard back to ten.
	PhaseExchange Phase = "exchange"
	// PhasePlaying runs the ten tricks.
	PhasePlaying Phase = "playing"
	// PhaseEnded means the round is over and Result is available.
	PhaseEnded Phase = "ended"
)

// Theft is a joker-triggered point-card transfer after a trick.
type Theft struct {
	FromSeat int  `json:"from_seat"`
	ToSeat   int  `json:"to_seat"`
	Card     Card `json:"card"`
}

// TrickOutcome reports a completed trick: its winner and any thefts applied
// before the next trick begins.
type TrickOutcome struct {
	TrickNo int
	Result  TrickResult
	Thefts  []Theft
}

// PlayOutcome reports the effects of one card play.
type PlayOutcome struct {
	Play         Play
	AllyRevealed bool          // true only for the play that fixed the ally
	Trick        *TrickOutcome // non-nil when the play completed a trick
	RoundOver    bool
}

// Round is the single authoritative state record for one deal. All
// transitions go through its methods; rejected moves leave it untouched.
type Round struct {
	Phase   Phase
	Seating [NumSeats]Archetype

	Hands [NumSeats][]Card
	Widow []Card

	Auction   *Auction
	Roles     RoleAssignment
	TrumpSuit Suit
	Target    int

	Trick   *Trick
	TrickNo int

	Captured [NumSeats][]Card
	Points   [NumSeats][]Card

	discards   []Card
	widowTaken bool
	redealt    bool
}

// NewRound deals a shuffled 54-card deck and opens the auction at seat 0.
func NewRound(deck []Card) (*Round, error) {
	hands, widow, err := Deal(deck)
	if err != nil {
		return nil, err
	}
	r := &Round{
		Phase:   PhaseAuction,
		Seating: DefaultSeating,
		Hands:   hands,
		Widow:   widow,
		Auction: NewAuction(0),
		Roles:   RoleAssignment{AllySeat: -1},
	}
	return r, nil
}

// SubmitBid forwards a bid to the auction.
func (r *Round) SubmitBid(seat int, bid Bid) error {
	if r.Phase != PhaseAuction {
		return ErrWrongPhase
	}
	return r.Auction.SubmitBid(seat, bid)
}

// SubmitPass forwards a pass to the auction. On resolution the Emperor,
// trump suit and faction target are fixed and the round moves to the ally
// pick; on AuctionRedeal the round is dead and must be rebuilt from a fresh
// shuffle.
func (r *Round) SubmitPass(seat int) (AuctionStatus, error) {
	if r.Phase != PhaseAuction {
		return AuctionOpen, ErrWrongPhase
	}
	status, err := r.Auction.SubmitPass(seat)
	if err != nil {
		return status, err
	}
	switch status {
	case AuctionResolved:
		winner, bid := r.Auction.Resolved()
		r.Roles = NewRoleAssignment(winner)
		r.TrumpSuit = bid.Suit
		r.Target = bid.Count
		r.Phase = PhaseAllyPick
	case AuctionRedeal:
		r.Phase = PhaseEnded
		r.redealt = true
	}
	return status, nil
}

// DesignateAlly records the Emperor's ally spec and opens the exchange.
func (r *Round) DesignateAlly(seat int, spec AllySpec) error {
	if r.Phase != PhaseAllyPick {
		return ErrWrongPhase
	}
	if seat != r.Roles.EmperorSeat {
		return ErrNotEmperor
	}
	if err := r.Roles.Designate(spec); err != nil {
		return err
	}
	r.Phase = PhaseExchange
	return nil
}

// TakeWidow moves the four widow cards into the Emperor's hand.
func (r *Round) TakeWidow(seat int) error {
	if r.Phase != PhaseExchange || r.widowTaken {
		return ErrWrongPhase
	}
	if seat != r.Roles.EmperorSeat {
		return ErrNotEmperor
	}
	r.Hands[seat] = append(r.Hands[seat], r.Widow...)
	r.Widow = nil
	r.widowTaken = true
	return nil
}

// Discard removes exactly four held cards from the Emperor's enlarged hand,
// restoring it to ten, and starts the trick phase with the Emperor leading.
func (r *Round) Discard(seat int, cards []Card) error {
	if r.Phase != PhaseExchange || !r.widowTaken {
		return ErrWrongPhase
	}
	if seat != r.Roles.EmperorSeat {
		return ErrNotEmperor
	}
	if len(cards) != WidowSize {
		return ErrBadDiscard
	}
	hand := append([]Card{}, r.Hands[seat]...)
	for _, c := range cards {
		var ok bool
		hand, ok = RemoveCard(hand, c)
		if !ok {
			return ErrBadDiscard
		}
	}
	r.Hands[seat] = hand
	r.discards = append(r.discards, cards...)
	r.Phase = PhasePlaying
	r.Trick = NewTrick(seat)
	return nil
}

// LegalPlays returns the cards the seat may legally play right now.
func (r *Round) LegalPlays(seat int) []Card {
	if r.Phase != PhasePlaying || r.Trick == nil {
		return nil
	}
	return LegalPlays(r.Hands[seat], r.Trick.LeadSuit)
}

// NeedsLeadSuit reports whether playing the card requires a declared lead
// suit, i.e. the card is a joker about to lead a trick.
func (r *Round) NeedsLeadSuit(card Card) bool {
	return r.Phase == PhasePlaying && r.Trick != nil && len(r.Trick.Plays) == 0 && card.IsJoker()
}

// PlayCard applies one play. For a led joker the declared suit is a
// required side input; it is ignored otherwise. Completing the fifth play
// resolves the trick: the winner captures all five cards, losing joker
// plays steal, and either the next trick opens or the round ends.
func (r *Round) PlayCard(seat int, card Card, declared Suit) (PlayOutcome, error) {
	if r.Phase != PhasePlaying || r.Trick == nil {
		return PlayOutcome{}, ErrWrongPhase
	}
	if seat != r.Trick.ExpectedSeat() {
		return PlayOutcome{}, ErrNotYourTurn
	}
	if !HandHas(r.Hands[seat], card) {
		return PlayOutcome{}, ErrCardNotHeld
	}
	legal := LegalPlays(r.Hands[seat], r.Trick.LeadSuit)
	if !HandHas(legal, card) {
		return PlayOutcome{}, ErrMustFollow
	}

	var resolved Suit
	if len(r.Trick.Plays) == 0 {
		if card.IsJoker() {
			if !declared.Valid() {
				return PlayOutcome{}, ErrNeedLeadSuit
			}
			resolved = declared
		} else {
			resolved = card.Suit
		}
		r.Trick.LeadSuit = resolved
	} else {
		if card.IsJoker() {
			resolved = r.Trick.LeadSuit
		} else {
			resolved = card.Suit
		}
	}

	r.Hands[seat], _ = RemoveCard(r.Hands[seat], card)
	play := Play{Seat: seat, Card: card, ResolvedSuit: resolved}
	r.Trick.Plays = append(r.Trick.Plays, play)

	out := PlayOutcome{Play: play}
	out.AllyRevealed = r.Roles.NotePlay(seat, card)

	if !r.Trick.Complete() {
		return out, nil
	}

	result, err := EvaluateTrick(r.Trick, r.TrumpSuit)
	if err != nil {
		// Unreachable fallback or incomplete trick: fatal for the round.
		return out, err
	}
	trickOut := &TrickOutcome{TrickNo: r.TrickNo, Result: result}

	winner := result.WinnerSeat
	for _, p := range r.Trick.Plays {
		r.Captured[winner] = append(r.Captured[winner], p.Card)
		if p.Card.IsPoint() {
			r.Points[winner] = append(r.Points[winner], p.Card)
		}
	}
	trickOut.Thefts = r.applyJokerThefts(r.Trick, winner)

	r.TrickNo++
	if r.TrickNo >= TrickCount {
		r.Phase = PhaseEnded
		r.Trick = nil
		out.RoundOver = true
	} else {
		r.Trick = NewTrick(winner)
	}
	out.Trick = trickOut
	return out, nil
}

// applyJokerThefts runs the theft side effect once per losing joker play,
// in play order, after the winner's pile has been updated.
func (r *Round) applyJokerThefts(t *Trick, winner int) []Theft {
	var thefts []Theft
	for _, p := range t.Plays {
		if !p.Card.IsJoker() || p.Seat == winner {
			continue
		}
		need := r.Seating[p.Seat].Profile().TargetRank
		card, ok := StealCandidate(need, r.Points[winner])
		if !ok {
			continue
		}
		r.Points[winner], _ = RemoveCard(r.Points[winner], card)
		r.Captured[winner], _ = RemoveCard(r.Captured[winner], card)
		r.Points[p.Seat] = append(r.Points[p.Seat], card)
		r.Captured[p.Seat] = append(r.Captured[p.Seat], card)
		thefts = append(thefts, Theft{FromSeat: winner, ToSeat: p.Seat, Card: card})
	}
	return thefts
}

// RoundResult is the final outcome of a completed round.
type RoundResult struct {
	EmperorSeat int
	AllySeat    int // -1 when the designated card was never played
	TeamPoints  int
	Target      int
	EmperorWins bool

	SpecialSeat int // -1 when no special victory
	Trophy      string
}

// Result tallies the completed round. The faction count uses the ally seat
// the engine fixed during play; if the designated card never hit the table
// the Emperor is counted alone. A special victory supersedes the faction
// outcome; simultaneous qualifiers resolve to the lowest seat index.
func (r *Round) Result() (RoundResult, error) {
	if r.Phase != PhaseEnded {
		return RoundResult{}, ErrWrongPhase
	}
	if r.redealt {
		return RoundResult{}, ProtocolError("round was redealt and has no result")
	}
	emperor := r.Roles.EmperorSeat
	res := RoundResult{
		EmperorSeat: emperor,
		AllySeat:    r.Roles.AllySeat,
		Target:      r.Target,
		SpecialSeat: -1,
	}

	res.TeamPoints = len(r.Points[emperor])
	if res.AllySeat >= 0 && res.AllySeat != emperor {
		res.TeamPoints += len(r.Points[res.AllySeat])
	}
	res.EmperorWins = res.TeamPoints >= res.Target

	for seat := 0; seat < NumSeats; seat++ {
		p := r.Seating[seat].Profile()
		if MeetsProfile(p, r.Points[seat]) {
			res.SpecialSeat = seat
			res.Trophy = p.Trophy
			break
		}
	}
	return res, nil
}

// CardCount sums every card the round still accounts for: hands, widow,
// captured piles, the Emperor's discards and the current trick. It must be
// DeckSize at every quiescent point.
func (r *Round) CardCount() int {
	n := len(r.Widow) + len(r.discards)
	for seat := 0; seat < NumSeats; seat++ {
		n += len(r.Hands[seat]) + len(r.Captured[seat])
	}
	if r.Trick != nil {
		n += len(r.Trick.Plays)
	}
	return n
}
