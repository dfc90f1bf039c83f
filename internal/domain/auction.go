package domain

// Bid is a declaration of a target point-card count under a proposed trump
// suit. Counts run 13..20; ties on count break by suit power.
type Bid struct {
	Count int  `json:"count"`
	Suit  Suit `json:"suit"`
}

const (
	MinBidCount = 13
	MaxBidCount = 20
)

// CompareBid orders bids by count, then suit power. Returns -1, 0 or 1.
func CompareBid(a, b Bid) int {
	if a.Count != b.Count {
		if a.Count > b.Count {
			return 1
		}
		return -1
	}
	if a.Suit == b.Suit {
		return 0
	}
	if a.Suit.Power() > b.Suit.Power() {
		return 1
	}
	return -1
}

// AuctionStatus is the auction's lifecycle state after a move.
type AuctionStatus int

const (
	AuctionOpen AuctionStatus = iota
	AuctionResolved
	AuctionRedeal
)

// maxAuctionTurns bounds the rotation. A five-seat auction resolves within a
// few dozen turns; anything past this is an engine defect.
const maxAuctionTurns = 512

// Auction runs the strict round-robin bidding over the five seats. A seat
// that passes after having bid is dropped: the rotation still visits it, but
// it can only pass again.
type Auction struct {
	Highest     *Bid
	HighestSeat int
	Turn        int

	hadAnyBid         bool
	consecutivePasses int
	firstRoundPasses  int
	hasBid            [NumSeats]bool
	dropped           [NumSeats]bool
	turns             int
	status            AuctionStatus
}

// NewAuction starts an auction with the given seat to act first.
func NewAuction(firstSeat int) *Auction {
	return &Auction{Turn: firstSeat, HighestSeat: -1}
}

// Status returns the auction's current lifecycle state.
func (a *Auction) Status() AuctionStatus { return a.status }

// Dropped reports whether the seat has passed after bidding and may only
// pass for the rest of the auction.
func (a *Auction) Dropped(seat int) bool { return a.dropped[seat] }

// Resolved returns the winning seat and bid. Only meaningful once Status is
// AuctionResolved.
func (a *Auction) Resolved() (seat int, bid Bid) {
	return a.HighestSeat, *a.Highest
}

// SubmitBid validates and applies a bid for the seat. Rejections leave the
// auction untouched; the seat must then pass or resubmit.
func (a *Auction) SubmitBid(seat int, bid Bid) error {
	if a.status != AuctionOpen {
		return ErrWrongPhase
	}
	if seat != a.Turn {
		return ErrNotYourTurn
	}
	if a.dropped[seat] {
		return ErrSeatDropped
	}
	if bid.Count < MinBidCount || bid.Count > MaxBidCount || !bid.Suit.Valid() {
		return ErrBidRange
	}
	if a.Highest != nil && CompareBid(bid, *a.Highest) <= 0 {
		return ErrBidTooLow
	}

	b := bid
	a.Highest = &b
	a.HighestSeat = seat
	a.hadAnyBid = true
	a.hasBid[seat] = true
	a.consecutivePasses = 0
	return a.advance()
}

// SubmitPass applies a pass for the seat. The returned status is
// AuctionRedeal when all five seats passed before any bid, and
// AuctionResolved once four consecutive passes follow a bid.
func (a *Auction) SubmitPass(seat int) (AuctionStatus, error) {
	if a.status != AuctionOpen {
		return a.status, ErrWrongPhase
	}
	if seat != a.Turn {
		return a.status, ErrNotYourTurn
	}

	if !a.hadAnyBid {
		a.firstRoundPasses++
	} else {
		a.consecutivePasses++
	}
	if a.hasBid[seat] {
		a.dropped[seat] = true
	}

	if !a.hadAnyBid && a.firstRoundPasses >= NumSeats {
		a.status = AuctionRedeal
		return a.status, nil
	}
	if a.hadAnyBid && a.consecutivePasses >= NumSeats-1 {
		a.status = AuctionResolved
		return a.status, nil
	}
	if err := a.advance(); err != nil {
		return a.status, err
	}
	return a.status, nil
}

func (a *Auction) advance() error {
	a.turns++
	if a.turns > maxAuctionTurns {
		return InconsistencyError("auction exceeded its turn bound without resolving")
	}
	a.Turn = (a.Turn + 1) % NumSeats
	return nil
}
