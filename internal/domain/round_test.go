package domain

import (
	"errors"
	"testing"
)

// An unshuffled deck deals deterministic hands:
//
//	seat 0: C2 C7 C12 D4 D9 D14 H6 H11 S3 S8
//	seat 1: C3 C8 C13 D5 D10 H2 H7 H12 S4 S9
//	seat 2: C4 C9 C14 D6 D11 H3 H8 H13 S5 S10
//	seat 3: C5 C10 D2 D7 D12 H4 H9 H14 S6 S11
//	seat 4: C6 C11 D3 D8 D13 H5 H10 S2 S7 S12
//	widow:  S13 S14 JR JB
func fixedRound(t *testing.T) *Round {
	t.Helper()
	r, err := NewRound(NewDeck())
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	return r
}

func runAuction(t *testing.T, r *Round) {
	t.Helper()
	if err := r.SubmitBid(0, Bid{13, Clubs}); err != nil {
		t.Fatalf("bid: %v", err)
	}
	for _, seat := range []int{1, 2, 3, 4} {
		if _, err := r.SubmitPass(seat); err != nil {
			t.Fatalf("pass %d: %v", seat, err)
		}
	}
	if r.Phase != PhaseAllyPick {
		t.Fatalf("phase = %s after auction, want %s", r.Phase, PhaseAllyPick)
	}
}

func TestRoundFullPlaythrough(t *testing.T) {
	r := fixedRound(t)
	if r.CardCount() != DeckSize {
		t.Fatalf("card count after deal = %d", r.CardCount())
	}

	runAuction(t, r)
	if r.Roles.EmperorSeat != 0 || r.TrumpSuit != Clubs || r.Target != 13 {
		t.Fatalf("auction result = emperor %d trump %s target %d",
			r.Roles.EmperorSeat, r.TrumpSuit, r.Target)
	}

	// Seat 1 holds H12; designating it guarantees a reveal during play.
	if err := r.DesignateAlly(0, AllySpec{Suit: Hearts, Rank: 12}); err != nil {
		t.Fatalf("designate: %v", err)
	}

	if err := r.TakeWidow(0); err != nil {
		t.Fatalf("take widow: %v", err)
	}
	if len(r.Hands[0]) != HandSize+WidowSize || len(r.Widow) != 0 {
		t.Fatalf("post-widow hand = %d, widow = %d", len(r.Hands[0]), len(r.Widow))
	}
	if r.CardCount() != DeckSize {
		t.Fatalf("card count after widow = %d", r.CardCount())
	}

	discard := []Card{
		{Suit: Spades, Rank: 13},
		{Suit: Spades, Rank: 14},
		{Joker: JokerRed},
		{Joker: JokerBlack},
	}
	if err := r.Discard(0, discard); err != nil {
		t.Fatalf("discard: %v", err)
	}
	if len(r.Hands[0]) != HandSize {
		t.Fatalf("post-discard hand = %d", len(r.Hands[0]))
	}
	if r.CardCount() != DeckSize {
		t.Fatalf("card count after discard = %d", r.CardCount())
	}

	reveals := 0
	tricks := 0
	for r.Phase == PhasePlaying {
		seat := r.Trick.ExpectedSeat()
		legal := r.LegalPlays(seat)
		if len(legal) == 0 {
			t.Fatalf("seat %d has no legal play in trick %d", seat, r.TrickNo)
		}
		card := legal[0]
		var declared Suit
		if r.NeedsLeadSuit(card) {
			declared = Hearts
		}
		out, err := r.PlayCard(seat, card, declared)
		if err != nil {
			t.Fatalf("play %v by seat %d: %v", card, seat, err)
		}
		if out.AllyRevealed {
			reveals++
			if r.Roles.AllySeat != 1 {
				t.Errorf("ally seat = %d, want 1", r.Roles.AllySeat)
			}
		}
		if out.Trick != nil {
			tricks++
			winner := out.Trick.Result.WinnerSeat
			if winner < 0 || winner >= NumSeats {
				t.Fatalf("trick winner out of range: %d", winner)
			}
			if r.CardCount() != DeckSize {
				t.Fatalf("card count after trick %d = %d", tricks, r.CardCount())
			}
		}
	}

	if tricks != TrickCount {
		t.Fatalf("played %d tricks, want %d", tricks, TrickCount)
	}
	if reveals != 1 {
		t.Fatalf("ally revealed %d times, want exactly once", reveals)
	}
	if !r.Roles.AllyRevealed {
		t.Fatal("ally not revealed after H12 was played")
	}

	res, err := r.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if res.AllySeat != 1 {
		t.Errorf("result ally seat = %d, want 1", res.AllySeat)
	}
	captured := 0
	for seat := 0; seat < NumSeats; seat++ {
		captured += len(r.Captured[seat])
	}
	if captured != NumSeats*TrickCount {
		t.Errorf("captured cards = %d, want %d", captured, NumSeats*TrickCount)
	}

	// Result is pure: re-reading must not change anything.
	again, err := r.Result()
	if err != nil || again != res {
		t.Errorf("second Result() = %+v, %v; want %+v", again, err, res)
	}
}

func TestRoundMoveRejections(t *testing.T) {
	r := fixedRound(t)

	// Trick-phase operations are protocol errors during the auction.
	if _, err := r.PlayCard(0, Card{Suit: Clubs, Rank: 2}, ""); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("play during auction: err = %v", err)
	}
	if err := r.TakeWidow(0); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("widow during auction: err = %v", err)
	}

	runAuction(t, r)

	// Only the Emperor designates.
	if err := r.DesignateAlly(2, AllySpec{Suit: Spades, Rank: 14}); !errors.Is(err, ErrNotEmperor) {
		t.Errorf("non-emperor designate: err = %v", err)
	}
	if err := r.DesignateAlly(0, AllySpec{}); !errors.Is(err, ErrAllySpec) {
		t.Errorf("empty spec: err = %v", err)
	}
	if err := r.DesignateAlly(0, AllySpec{Joker: JokerRed}); err != nil {
		t.Fatalf("designate: %v", err)
	}

	if err := r.TakeWidow(0); err != nil {
		t.Fatalf("take widow: %v", err)
	}

	// Discards must name exactly four held cards.
	if err := r.Discard(0, []Card{{Suit: Spades, Rank: 13}}); !errors.Is(err, ErrBadDiscard) {
		t.Errorf("short discard: err = %v", err)
	}
	if err := r.Discard(0, []Card{
		{Suit: Spades, Rank: 13},
		{Suit: Spades, Rank: 14},
		{Joker: JokerRed},
		{Suit: Hearts, Rank: 2}, // seat 1's card
	}); !errors.Is(err, ErrBadDiscard) {
		t.Errorf("foreign-card discard: err = %v", err)
	}
	// Rejected discards must not shrink the hand.
	if len(r.Hands[0]) != HandSize+WidowSize {
		t.Fatalf("hand size after rejected discards = %d", len(r.Hands[0]))
	}

	if err := r.Discard(0, []Card{
		{Suit: Spades, Rank: 13},
		{Suit: Spades, Rank: 14},
		{Joker: JokerRed},
		{Joker: JokerBlack},
	}); err != nil {
		t.Fatalf("discard: %v", err)
	}

	// Emperor leads the first trick; other seats are out of turn.
	if _, err := r.PlayCard(1, Card{Suit: Clubs, Rank: 3}, ""); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("out-of-turn play: err = %v", err)
	}
	// Leading a card the seat does not hold.
	if _, err := r.PlayCard(0, Card{Suit: Spades, Rank: 14}, ""); !errors.Is(err, ErrCardNotHeld) {
		t.Errorf("unheld card: err = %v", err)
	}
	// Lead clubs, then seat 1 must follow.
	if _, err := r.PlayCard(0, Card{Suit: Clubs, Rank: 2}, ""); err != nil {
		t.Fatalf("lead: %v", err)
	}
	if _, err := r.PlayCard(1, Card{Suit: Hearts, Rank: 2}, ""); !errors.Is(err, ErrMustFollow) {
		t.Errorf("must-follow violation: err = %v", err)
	}
}

func TestRoundAllPassRedeal(t *testing.T) {
	r := fixedRound(t)
	var status AuctionStatus
	for seat := 0; seat < NumSeats; seat++ {
		var err error
		status, err = r.SubmitPass(seat)
		if err != nil {
			t.Fatalf("pass %d: %v", seat, err)
		}
	}
	if status != AuctionRedeal {
		t.Fatalf("status = %v, want redeal", status)
	}
	if r.Phase != PhaseEnded {
		t.Fatalf("phase = %s, want ended", r.Phase)
	}
	if _, err := r.Result(); err == nil {
		t.Error("redealt round produced a result")
	}
}

func TestRoundLedJokerNeedsSuit(t *testing.T) {
	r := &Round{
		Phase:   PhasePlaying,
		Seating: DefaultSeating,
		Roles:   RoleAssignment{AllySeat: -1},
		Trick:   NewTrick(0),
	}
	r.Hands[0] = []Card{{Joker: JokerRed}}
	if _, err := r.PlayCard(0, Card{Joker: JokerRed}, ""); !errors.Is(err, ErrNeedLeadSuit) {
		t.Fatalf("led joker without suit: err = %v", err)
	}
	out, err := r.PlayCard(0, Card{Joker: JokerRed}, Hearts)
	if err != nil {
		t.Fatalf("led joker with suit: %v", err)
	}
	if out.Play.ResolvedSuit != Hearts || r.Trick.LeadSuit != Hearts {
		t.Errorf("resolved suit = %s, lead = %s, want hearts", out.Play.ResolvedSuit, r.Trick.LeadSuit)
	}
}

func TestRoundJokerTheft(t *testing.T) {
	r := &Round{
		Phase:     PhasePlaying,
		Seating:   DefaultSeating,
		TrumpSuit: Clubs,
		Target:    13,
		Roles:     RoleAssignment{AllySeat: -1},
		Trick:     NewTrick(0),
	}
	r.Hands[0] = []Card{{Suit: Diamonds, Rank: 10}}
	r.Hands[1] = []Card{{Joker: JokerBlack}} // Jeanne: target rank 10
	r.Hands[2] = []Card{{Suit: Diamonds, Rank: 5}}
	r.Hands[3] = []Card{{Suit: Diamonds, Rank: 14}}
	r.Hands[4] = []Card{{Suit: Diamonds, Rank: 3}}

	plays := []struct {
		seat int
		card Card
	}{
		{0, Card{Suit: Diamonds, Rank: 10}},
		{1, Card{Joker: JokerBlack}},
		{2, Card{Suit: Diamonds, Rank: 5}},
		{3, Card{Suit: Diamonds, Rank: 14}},
		{4, Card{Suit: Diamonds, Rank: 3}},
	}
	var out PlayOutcome
	for _, p := range plays {
		var err error
		out, err = r.PlayCard(p.seat, p.card, "")
		if err != nil {
			t.Fatalf("play %v by seat %d: %v", p.card, p.seat, err)
		}
	}
	if out.Trick == nil {
		t.Fatal("fifth play did not resolve the trick")
	}
	if out.Trick.Result.WinnerSeat != 3 || out.Trick.Result.Reason != ReasonLeadSuit {
		t.Fatalf("result = %+v, want seat 3 by lead suit", out.Trick.Result)
	}
	if len(out.Trick.Thefts) != 1 {
		t.Fatalf("thefts = %v, want exactly one", out.Trick.Thefts)
	}
	theft := out.Trick.Thefts[0]
	want := Theft{FromSeat: 3, ToSeat: 1, Card: Card{Suit: Diamonds, Rank: 10}}
	if theft != want {
		t.Errorf("theft = %+v, want %+v", theft, want)
	}
	if len(r.Points[3]) != 1 || r.Points[3][0] != (Card{Suit: Diamonds, Rank: 14}) {
		t.Errorf("winner points after theft = %v", r.Points[3])
	}
	if len(r.Points[1]) != 1 || r.Points[1][0] != (Card{Suit: Diamonds, Rank: 10}) {
		t.Errorf("thief points = %v", r.Points[1])
	}
	if len(r.Captured[3]) != 4 || len(r.Captured[1]) != 1 {
		t.Errorf("captured sizes = winner %d, thief %d", len(r.Captured[3]), len(r.Captured[1]))
	}
}

func TestRoundJokerTheftNoCandidate(t *testing.T) {
	r := &Round{
		Phase:     PhasePlaying,
		Seating:   DefaultSeating,
		TrumpSuit: Clubs,
		Target:    13,
		Roles:     RoleAssignment{AllySeat: -1},
		Trick:     NewTrick(0),
	}
	// No rank-10 card on the table: Jeanne's joker steals nothing.
	r.Hands[0] = []Card{{Suit: Diamonds, Rank: 9}}
	r.Hands[1] = []Card{{Joker: JokerBlack}}
	r.Hands[2] = []Card{{Suit: Diamonds, Rank: 5}}
	r.Hands[3] = []Card{{Suit: Diamonds, Rank: 14}}
	r.Hands[4] = []Card{{Suit: Diamonds, Rank: 3}}

	var out PlayOutcome
	seq := []struct {
		seat int
		card Card
	}{
		{0, Card{Suit: Diamonds, Rank: 9}},
		{1, Card{Joker: JokerBlack}},
		{2, Card{Suit: Diamonds, Rank: 5}},
		{3, Card{Suit: Diamonds, Rank: 14}},
		{4, Card{Suit: Diamonds, Rank: 3}},
	}
	for _, p := range seq {
		var err error
		out, err = r.PlayCard(p.seat, p.card, "")
		if err != nil {
			t.Fatalf("play: %v", err)
		}
	}
	if len(out.Trick.Thefts) != 0 {
		t.Errorf("thefts = %v, want none", out.Trick.Thefts)
	}
}
