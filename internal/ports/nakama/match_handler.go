package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"napoleon/internal/app"
	"napoleon/internal/bot"
	"napoleon/internal/config"
	"napoleon/internal/domain"
	"napoleon/internal/ports"
)

// matchLabel is the JSON label indexed by Nakama's match listing.
type matchLabel struct {
	Open  int    `json:"open"`
	Phase string `json:"phase"`
	Game  string `json:"game"`
}

// MatchState holds the authoritative runtime state for the Nakama match
// handler: the seat map, the live round, and the bot bookkeeping.
type MatchState struct {
	Seats     [domain.NumSeats]string // user IDs; empty string means the seat is open
	OwnerSeat int                     // seat of the match owner, always a human
	Tick      int64
	Presences map[string]runtime.Presence `json:"-"`

	App   *app.Service  `json:"-"`
	Round *domain.Round `json:"-"` // nil while in the lobby

	BotsEnabled          bool
	BotMinDelay          int
	BotMaxDelay          int
	BotAutoFillDelay     int
	BotWaitUntil         int64
	LastSinglePlayerTick int64
	Bots                 map[int]*bot.Agent `json:"-"` // seat -> agent

	Achievements ports.AchievementsPort `json:"-"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !isBotUserId(seat) {
			count++
		}
	}
	return count
}

// seatOf returns the seat index of the user, or -1.
func (ms *MatchState) seatOf(userID string) int {
	for i, id := range ms.Seats {
		if id == userID {
			return i
		}
	}
	return -1
}

func isBotUserId(userId string) bool {
	return bot.IsBot(userId)
}

func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userId := seats[seatIndex]
	return userId != "" && !isBotUserId(userId)
}

func findFirstHumanSeat(seats []string) int {
	for i, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return i
		}
	}
	return -1
}

func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

// expectedActor returns the seat the round is waiting on, or -1.
func expectedActor(round *domain.Round) int {
	if round == nil {
		return -1
	}
	switch round.Phase {
	case domain.PhaseAuction:
		return round.Auction.Turn
	case domain.PhaseAllyPick, domain.PhaseExchange:
		return round.Roles.EmperorSeat
	case domain.PhasePlaying:
		if round.Trick != nil {
			return round.Trick.ExpectedSeat()
		}
	}
	return -1
}

type matchHandler struct{}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: initializing match handler.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: could not load game config: %v", err)
	}

	state := &MatchState{
		Tick:         time.Now().Unix(),
		Presences:    make(map[string]runtime.Presence),
		App:          app.NewService(nil),
		OwnerSeat:    -1,
		Bots:         make(map[int]*bot.Agent),
		Achievements: NewNakamaAchievementsAdapter(nk),
		BotsEnabled:  true,
	}

	if cfg := config.GetGameConfig(); cfg != nil {
		state.BotMinDelay = cfg.BotMinDelaySeconds
		state.BotMaxDelay = cfg.BotMaxDelaySeconds
		state.BotAutoFillDelay = cfg.BotAutoFillDelaySeconds
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["napoleon_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["napoleon_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["napoleon_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxDelay = i
		}
	}
	if val, ok := env["napoleon_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotAutoFillDelay = i
		}
	}
	if state.BotMinDelay == 0 {
		state.BotMinDelay = 1
	}
	if state.BotMaxDelay == 0 {
		state.BotMaxDelay = 3
	}
	if state.BotAutoFillDelay == 0 {
		state.BotAutoFillDelay = 5
	}
	if state.BotMaxDelay < state.BotMinDelay {
		state.BotMaxDelay = state.BotMinDelay
	}

	tickRate := 1
	return state, tickRate, makeLabel(state, logger)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	if matchState.GetOpenSeatsCount() <= 0 {
		// A bot seat can be reclaimed while no round is running.
		hasBot := false
		if matchState.Round == nil {
			for _, seat := range matchState.Seats {
				if isBotUserId(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "match full"
		}
	}
	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		assigned := false
		for i, seatUserId := range matchState.Seats {
			if seatUserId == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}
		if !assigned && matchState.Round == nil {
			for i, seatUserId := range matchState.Seats {
				if isBotUserId(seatUserId) {
					logger.Info("MatchJoin: replacing bot %s with human %s in seat %d", seatUserId, p.GetUserId(), i)
					delete(matchState.Bots, i)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}
		if !assigned {
			logger.Warn("MatchJoin: user %s joined but no seat was available.", p.GetUserId())
		}
	}

	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
		for i, seatUserId := range matchState.Seats {
			if seatUserId == p.GetUserId() {
				matchState.Seats[i] = ""
				logger.Debug("MatchLeave: user %s left, seat %d freed.", p.GetUserId(), i)
				break
			}
		}
	}

	matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])

	if shouldTerminateNoHumans(matchState.Seats[:]) {
		logger.Info("MatchLeave: terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}
	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartRound:
			mh.handleStartRound(ctx, matchState, dispatcher, logger, msg)
		case OpPlaceBid:
			mh.handlePlaceBid(ctx, matchState, dispatcher, logger, msg)
		case OpPassBid:
			mh.handlePassBid(ctx, matchState, dispatcher, logger, msg)
		case OpDesignateAlly:
			mh.handleDesignateAlly(ctx, matchState, dispatcher, logger, msg)
		case OpTakeWidow:
			mh.handleTakeWidow(ctx, matchState, dispatcher, logger, msg)
		case OpDiscard:
			mh.handleDiscard(ctx, matchState, dispatcher, logger, msg)
		case OpPlayCard:
			mh.handlePlayCard(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}
	return matchState
}

// processBots auto-fills the lobby and plays the bot seats. A bot acts only
// after a short randomized delay so humans can follow the table.
func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Round == nil || state.Round.Phase == domain.PhaseEnded {
		humanCount := state.GetHumanPlayerCount()
		if humanCount >= 1 && state.GetOpenSeatsCount() > 0 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
			}
			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				mh.fillWithBots(state, dispatcher, logger)
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	seat := expectedActor(state.Round)
	if seat < 0 || !isBotUserId(state.Seats[seat]) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[seat]
	if !exists {
		agent = bot.NewAgent(seat, state.Round.Seating[seat])
		state.Bots[seat] = agent
	}

	round := state.Round
	v := state.App.ViewFor(round, seat)
	var events []app.Event
	var err error
	switch round.Phase {
	case domain.PhaseAuction:
		if bid, ok := agent.BidOrPass(v); ok {
			events, err = state.App.SubmitBid(round, seat, bid)
		} else {
			events, err = state.App.SubmitPass(round, seat)
		}
	case domain.PhaseAllyPick:
		events, err = state.App.DesignateAlly(round, seat, agent.Designate(v))
	case domain.PhaseExchange:
		if len(round.Hands[seat]) == domain.HandSize {
			events, err = state.App.TakeWidow(round, seat)
		} else {
			events, err = state.App.Discard(round, seat, agent.Discard(v))
		}
	case domain.PhasePlaying:
		card, declared := agent.Play(v)
		events, err = state.App.PlayCard(round, seat, card, declared)
	}
	if err != nil {
		logger.Error("processBots: bot at seat %d failed to act: %v", seat, err)
		return
	}
	for _, ev := range events {
		mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) fillWithBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	added := false
	for i, seat := range state.Seats {
		if seat != "" {
			continue
		}
		identity := bot.IdentityFor(domain.DefaultSeating[i])
		state.Seats[i] = identity.UserID
		state.Bots[i] = bot.NewAgent(i, domain.DefaultSeating[i])
		logger.Info("processBots: added bot %s to seat %d", identity.Username, i)
		added = true
	}
	if added {
		mh.updateLabel(state, dispatcher, logger)
		mh.broadcastMatchState(state, dispatcher, logger)
	}
}

// matchStateSnapshot is broadcast after joins and round starts.
type matchStateSnapshot struct {
	Seats     []string `json:"seats"`
	OwnerSeat int      `json:"owner_seat"`
	Phase     string   `json:"phase"`
	Tick      int64    `json:"tick"`
}

func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := "lobby"
	if state.Round != nil {
		phase = string(state.Round.Phase)
	}
	snapshot := matchStateSnapshot{
		Seats:     state.Seats[:],
		OwnerSeat: state.OwnerSeat,
		Phase:     phase,
		Tick:      state.Tick,
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("broadcastMatchState: marshal failed: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchState, data, nil, nil, true)
}

func (mh *matchHandler) handleStartRound(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := state.seatOf(msg.GetUserId())
	if senderSeat != state.OwnerSeat {
		logger.Warn("StartRound: user %s is not the owner.", msg.GetUserId())
		return
	}
	if state.Round != nil && state.Round.Phase != domain.PhaseEnded {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 409, "round already running")
		return
	}

	// A round needs all five seats; fill the gaps with bots.
	mh.fillWithBots(state, dispatcher, logger)

	round, events, err := state.App.StartRound()
	if err != nil {
		logger.Error("StartRound: failed: %v", err)
		return
	}
	state.Round = round
	mh.updateLabel(state, dispatcher, logger)
	for _, ev := range events {
		mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handlePlaceBid(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat := state.seatOf(msg.GetUserId())
	if state.Round == nil || seat < 0 {
		return
	}
	var req PlaceBidRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "malformed bid")
		return
	}
	suit, err := parseSuit(req.Suit)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	events, err := state.App.SubmitBid(state.Round, seat, domain.Bid{Count: req.Count, Suit: suit})
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	for _, ev := range events {
		mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handlePassBid(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat := state.seatOf(msg.GetUserId())
	if state.Round == nil || seat < 0 {
		return
	}
	events, err := state.App.SubmitPass(state.Round, seat)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	for _, ev := range events {
		mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleDesignateAlly(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat := state.seatOf(msg.GetUserId())
	if state.Round == nil || seat < 0 {
		return
	}
	var req DesignateAllyRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "malformed designation")
		return
	}
	spec, err := parseAllySpec(req.Card)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	events, err := state.App.DesignateAlly(state.Round, seat, spec)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	for _, ev := range events {
		mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleTakeWidow(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat := state.seatOf(msg.GetUserId())
	if state.Round == nil || seat < 0 {
		return
	}
	events, err := state.App.TakeWidow(state.Round, seat)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	for _, ev := range events {
		mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleDiscard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat := state.seatOf(msg.GetUserId())
	if state.Round == nil || seat < 0 {
		return
	}
	var req DiscardRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "malformed discard")
		return
	}
	cards, err := parseCards(req.Cards)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	events, err := state.App.Discard(state.Round, seat, cards)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	for _, ev := range events {
		mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handlePlayCard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat := state.seatOf(msg.GetUserId())
	if state.Round == nil || seat < 0 {
		return
	}
	var req PlayCardRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "malformed play")
		return
	}
	card, err := domain.ParseCardID(req.Card)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	declared, err := parseSuit(req.LeadSuit)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	events, err := state.App.PlayCard(state.Round, seat, card, declared)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	for _, ev := range events {
		mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
	}
}

// eventOpCodes maps app event kinds to wire opcodes.
var eventOpCodes = map[app.EventKind]int64{
	app.EventHandDealt:       OpHandDealt,
	app.EventAuctionStarted:  OpAuctionStarted,
	app.EventBidAccepted:     OpBidAccepted,
	app.EventPassAccepted:    OpPassAccepted,
	app.EventAuctionResolved: OpAuctionResolved,
	app.EventRedeal:          OpRedeal,
	app.EventAllyDesignated:  OpAllyDesignated,
	app.EventWidowTaken:      OpWidowTaken,
	app.EventDiscarded:       OpDiscarded,
	app.EventCardPlayed:      OpCardPlayed,
	app.EventAllyRevealed:    OpAllyRevealed,
	app.EventTrickResolved:   OpTrickResolved,
	app.EventRoundResult:     OpRoundResult,
}

// dispatchEvent converts an app event to a wire message. Targeted events go
// only to the named seats' presences; a target list that resolves to no
// connected presence (bot seats) is dropped, never broadcast.
func (mh *matchHandler) dispatchEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	opCode, ok := eventOpCodes[ev.Kind]
	if !ok {
		logger.Warn("dispatchEvent: unknown event kind %v", ev.Kind)
		return
	}
	data, err := json.Marshal(ev.Payload)
	if err != nil {
		logger.Error("dispatchEvent: failed to marshal %v: %v", ev.Kind, err)
		return
	}

	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, seat := range ev.Recipients {
			if seat < 0 || seat >= domain.NumSeats {
				continue
			}
			if p, ok := state.Presences[state.Seats[seat]]; ok {
				recipients = append(recipients, p)
			}
		}
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, data, recipients, nil, true)

	if ev.Kind == app.EventRoundResult {
		payload := ev.Payload.(app.RoundResultPayload)
		mh.recordAchievements(ctx, state, logger, payload.Result)
		mh.updateLabel(state, dispatcher, logger)
	}
}

// recordAchievements persists the milestone flags for every human seat after
// a finished round.
func (mh *matchHandler) recordAchievements(ctx context.Context, state *MatchState, logger runtime.Logger, result domain.RoundResult) {
	if state.Achievements == nil {
		return
	}
	for seat, userID := range state.Seats {
		if userID == "" || isBotUserId(userID) {
			continue
		}
		flags := ports.AchievementFlags{Played: true}
		if result.SpecialSeat >= 0 {
			flags.WonSpecially = seat == result.SpecialSeat
		} else if result.EmperorWins {
			flags.WonNormally = seat == result.EmperorSeat || seat == result.AllySeat
		} else {
			// Defenders win when the Emperor's faction misses its target.
			flags.WonNormally = seat != result.EmperorSeat && seat != result.AllySeat
		}
		if err := state.Achievements.Record(ctx, userID, flags); err != nil {
			logger.Error("recordAchievements: failed for %s: %v", userID, err)
		}
	}
}

// sendError sends a GameErrorEvent to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	data, err := json.Marshal(GameErrorEvent{Code: code, Message: message})
	if err != nil {
		logger.Error("sendError: marshal failed: %v", err)
		return
	}
	presence, ok := state.Presences[userID]
	if !ok {
		return
	}
	dispatcher.BroadcastMessage(OpGameError, data, []runtime.Presence{presence}, nil, true)
}

func makeLabel(state *MatchState, logger runtime.Logger) string {
	phase := "lobby"
	if state.Round != nil && state.Round.Phase != domain.PhaseEnded {
		phase = "playing"
	}
	label := matchLabel{
		Open:  state.GetOpenSeatsCount(),
		Phase: phase,
		Game:  "napoleon",
	}
	data, err := json.Marshal(label)
	if err != nil {
		logger.Error("makeLabel: marshal failed: %v", err)
		return "{}"
	}
	return string(data)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if err := dispatcher.MatchLabelUpdate(makeLabel(state, logger)); err != nil {
		logger.Error("updateLabel: failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
