package domain

// The engine distinguishes three failure classes. RuleError and
// ProtocolError are synchronous rejections that leave state untouched; the
// caller retries with a different move. InconsistencyError is fatal for the
// round and must surface distinctly so the caller can abort and redeal.

// RuleError rejects a move that violates the game rules.
type RuleError string

func (e RuleError) Error() string { return string(e) }

// ProtocolError rejects a move submitted out of turn or for a closed phase.
type ProtocolError string

func (e ProtocolError) Error() string { return string(e) }

// InconsistencyError flags an internal engine defect, not a game outcome.
type InconsistencyError string

func (e InconsistencyError) Error() string { return string(e) }

var (
	ErrNotYourTurn  = ProtocolError("not this seat's turn")
	ErrWrongPhase   = ProtocolError("operation not valid in current phase")
	ErrNotEmperor   = ProtocolError("only the emperor may do this")
	ErrSeatDropped  = RuleError("seat has dropped from the auction")
	ErrBidRange     = RuleError("bid count out of range")
	ErrBidTooLow    = RuleError("bid does not exceed the current highest")
	ErrCardNotHeld  = RuleError("card not in hand")
	ErrMustFollow   = RuleError("must follow the lead suit")
	ErrNeedLeadSuit = RuleError("a led joker requires a declared lead suit")
	ErrBadDiscard   = RuleError("discard must name exactly four held cards")
	ErrAllySpec     = RuleError("ally spec does not name a card")
	ErrAllyFixed    = ProtocolError("ally already designated")
)
