package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a
	// joinable table.
	RpcQuickMatch = "quick_match"

	// MatchNameNapoleon is the authoritative match handler name registered
	// with Nakama.
	MatchNameNapoleon = "napoleon_match"

	// MatchLabelKey_OpenSeats is the label key carrying the open seat count.
	MatchLabelKey_OpenSeats = "open"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartRound    int64 = 1
	OpPlaceBid      int64 = 2
	OpPassBid       int64 = 3
	OpDesignateAlly int64 = 4
	OpTakeWidow     int64 = 5
	OpDiscard       int64 = 6
	OpPlayCard      int64 = 7

	// Server -> Client events
	OpMatchState      int64 = 100
	OpHandDealt       int64 = 101 // sent privately
	OpAuctionStarted  int64 = 102
	OpBidAccepted     int64 = 103
	OpPassAccepted    int64 = 104
	OpAuctionResolved int64 = 105
	OpRedeal          int64 = 106
	OpAllyDesignated  int64 = 107
	OpWidowTaken      int64 = 108
	OpDiscarded       int64 = 109
	OpCardPlayed      int64 = 110
	OpAllyRevealed    int64 = 111
	OpTrickResolved   int64 = 112
	OpRoundResult     int64 = 113
	OpGameError       int64 = 120
)
