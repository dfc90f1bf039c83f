package domain

// Play is one card laid into the current trick. ResolvedSuit is the suit
// used for same-suit comparisons: a led joker carries the declared suit, a
// following joker carries the lead suit, any other card its own suit.
type Play struct {
	Seat         int  `json:"seat"`
	Card         Card `json:"card"`
	ResolvedSuit Suit `json:"resolved_suit"`
}

// Trick holds the in-progress plays of one of the ten rounds.
type Trick struct {
	Leader   int
	LeadSuit Suit
	Plays    []Play
}

// NewTrick starts a trick with the given leader.
func NewTrick(leader int) *Trick {
	return &Trick{Leader: leader}
}

// ExpectedSeat returns the seat whose turn it is to play.
func (t *Trick) ExpectedSeat() int {
	return (t.Leader + len(t.Plays)) % NumSeats
}

// Complete reports whether all five seats have played.
func (t *Trick) Complete() bool {
	return len(t.Plays) == NumSeats
}

// LegalPlays returns the subset of the hand that may be played against the
// current lead suit. A seat holding the lead suit must follow with it;
// jokers never satisfy the follow obligation and are only free when the
// seat holds no card of the lead suit.
func LegalPlays(hand []Card, leadSuit Suit) []Card {
	if !leadSuit.Valid() {
		return append([]Card{}, hand...)
	}
	var follow []Card
	for _, c := range hand {
		if !c.IsJoker() && c.Suit == leadSuit {
			follow = append(follow, c)
		}
	}
	if len(follow) > 0 {
		return follow
	}
	return append([]Card{}, hand...)
}

// WinReason names the precedence rule that decided a trick.
type WinReason string

const (
	ReasonWobble      WinReason = "wobble"
	ReasonAlmighty    WinReason = "almighty"
	ReasonLeadJoker   WinReason = "lead_joker"
	ReasonRightJack   WinReason = "right_jack"
	ReasonLeftJack    WinReason = "left_jack"
	ReasonSameSuitTwo WinReason = "same_suit_two"
	ReasonTrump       WinReason = "trump"
	ReasonLeadSuit    WinReason = "lead_suit"
	ReasonWeakJoker   WinReason = "weak_joker"
)

// TrickResult identifies the winning play of a completed trick.
type TrickResult struct {
	WinnerSeat  int
	WinningCard Card
	Reason      WinReason
}

// EvaluateTrick applies the precedence chain over a completed trick:
// wobble > almighty > lead joker > right jack > left jack > same-suit 2 >
// trump > lead suit > weak joker. The chain exhausts every legal trick; the
// fallback past it is an engine defect, not a game outcome. Evaluation is
// pure: it never mutates the trick and is repeatable.
func EvaluateTrick(t *Trick, trump Suit) (TrickResult, error) {
	if !t.Complete() {
		return TrickResult{}, InconsistencyError("trick evaluated before completion")
	}
	plays := t.Plays

	hasAlmighty := false
	for _, p := range plays {
		if p.Card == Almighty {
			hasAlmighty = true
			break
		}
	}

	// Wobble: the Queen of Hearts beats the Almighty, but only when both
	// are on the table.
	if hasAlmighty {
		for _, p := range plays {
			if p.Card == Wobble {
				return TrickResult{WinnerSeat: p.Seat, WinningCard: p.Card, Reason: ReasonWobble}, nil
			}
		}
		for _, p := range plays {
			if p.Card == Almighty {
				return TrickResult{WinnerSeat: p.Seat, WinningCard: p.Card, Reason: ReasonAlmighty}, nil
			}
		}
	}

	if plays[0].Card.IsJoker() {
		return TrickResult{WinnerSeat: plays[0].Seat, WinningCard: plays[0].Card, Reason: ReasonLeadJoker}, nil
	}

	rj, lj := RightJack(trump), LeftJack(trump)
	for _, p := range plays {
		if p.Card == rj {
			return TrickResult{WinnerSeat: p.Seat, WinningCard: p.Card, Reason: ReasonRightJack}, nil
		}
	}
	for _, p := range plays {
		if p.Card == lj {
			return TrickResult{WinnerSeat: p.Seat, WinningCard: p.Card, Reason: ReasonLeftJack}, nil
		}
	}

	// Same-suit 2: fires only when every resolved suit matches the lead,
	// jokers included via their resolved suit.
	if t.LeadSuit.Valid() {
		allSame := true
		for _, p := range plays {
			if p.ResolvedSuit != t.LeadSuit {
				allSame = false
				break
			}
		}
		if allSame {
			for _, p := range plays {
				if !p.Card.IsJoker() && p.Card.Suit == t.LeadSuit && p.Card.Rank == 2 {
					return TrickResult{WinnerSeat: p.Seat, WinningCard: p.Card, Reason: ReasonSameSuitTwo}, nil
				}
			}
		}
	}

	if best, ok := highestOfSuit(plays, trump); ok {
		return TrickResult{WinnerSeat: best.Seat, WinningCard: best.Card, Reason: ReasonTrump}, nil
	}
	if best, ok := highestOfSuit(plays, t.LeadSuit); ok {
		return TrickResult{WinnerSeat: best.Seat, WinningCard: best.Card, Reason: ReasonLeadSuit}, nil
	}

	// A joker that neither led nor rode a winning rule: weakest card, wins
	// only when nothing else can.
	for _, p := range plays {
		if p.Card.IsJoker() {
			return TrickResult{WinnerSeat: p.Seat, WinningCard: p.Card, Reason: ReasonWeakJoker}, nil
		}
	}

	return TrickResult{}, InconsistencyError("trick reached the unreachable fallback rule")
}

func highestOfSuit(plays []Play, suit Suit) (Play, bool) {
	if !suit.Valid() {
		return Play{}, false
	}
	var best Play
	found := false
	for _, p := range plays {
		if p.Card.IsJoker() || p.Card.Suit != suit {
			continue
		}
		if !found || p.Card.Rank > best.Card.Rank {
			best = p
			found = true
		}
	}
	return best, found
}
