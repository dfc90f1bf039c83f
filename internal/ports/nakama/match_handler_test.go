package nakama

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/heroiclabs/nakama-common/runtime"

	"napoleon/internal/app"
	"napoleon/internal/bot"
	"napoleon/internal/domain"
	"napoleon/internal/ports"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy
// the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	broadcastCount int
	labelUpdates   int
	lastOpCode     int64
	lastData       []byte
	lastRecipients []runtime.Presence
	opCodes        []int64
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.broadcastCount++
	md.lastOpCode = opCode
	md.lastData = append([]byte(nil), data...)
	md.lastRecipients = presences
	md.opCodes = append(md.opCodes, opCode)
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	return nil
}

// mockAchievements records flag merges in memory.
type mockAchievements struct {
	records map[string]ports.AchievementFlags
}

func (ma *mockAchievements) Get(ctx context.Context, userID string) (ports.AchievementFlags, error) {
	return ma.records[userID], nil
}

func (ma *mockAchievements) Record(ctx context.Context, userID string, flags ports.AchievementFlags) error {
	if ma.records == nil {
		ma.records = make(map[string]ports.AchievementFlags)
	}
	current := ma.records[userID]
	current.Merge(flags)
	ma.records[userID] = current
	return nil
}

func newTestState() *MatchState {
	return &MatchState{
		Presences:    make(map[string]runtime.Presence),
		App:          app.NewService(nil),
		OwnerSeat:    -1,
		Bots:         make(map[int]*bot.Agent),
		BotsEnabled:  true,
		BotMinDelay:  1,
		BotMaxDelay:  1,
		Achievements: &mockAchievements{},
	}
}

func TestFindFirstHumanSeat(t *testing.T) {
	bot1 := bot.IdentityFor(domain.Maria).UserID
	bot2 := bot.IdentityFor(domain.Jeanne).UserID

	tests := []struct {
		name  string
		seats []string
		want  int
	}{
		{
			name:  "FirstHumanAfterBot",
			seats: []string{bot1, "user-1", "", "", ""},
			want:  1,
		},
		{
			name:  "AllBots",
			seats: []string{bot1, bot2, "", "", ""},
			want:  -1,
		},
		{
			name:  "AllEmpty",
			seats: []string{"", "", "", "", ""},
			want:  -1,
		},
		{
			name:  "FirstHumanIsSeatZero",
			seats: []string{"user-1", bot1, "user-2", "", ""},
			want:  0,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := findFirstHumanSeat(test.seats); got != test.want {
				t.Fatalf("findFirstHumanSeat() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestShouldTerminateNoHumans(t *testing.T) {
	bot1 := bot.IdentityFor(domain.Maria).UserID
	bot2 := bot.IdentityFor(domain.Jeanne).UserID

	tests := []struct {
		name  string
		seats []string
		want  bool
	}{
		{name: "BotsOnly", seats: []string{bot1, bot2, "", "", ""}, want: true},
		{name: "HumansPresent", seats: []string{bot1, "user-1", "", "", ""}, want: false},
		{name: "AllEmpty", seats: []string{"", "", "", "", ""}, want: true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := shouldTerminateNoHumans(test.seats); got != test.want {
				t.Fatalf("shouldTerminateNoHumans() = %t, want %t", got, test.want)
			}
		})
	}
}

func TestMakeLabel(t *testing.T) {
	state := newTestState()
	state.Seats = [domain.NumSeats]string{"user-1", "", "", "", ""}

	var label matchLabel
	if err := json.Unmarshal([]byte(makeLabel(state, noopLogger{})), &label); err != nil {
		t.Fatalf("label is not valid JSON: %v", err)
	}
	if label.Open != 4 || label.Phase != "lobby" || label.Game != "napoleon" {
		t.Fatalf("label = %+v", label)
	}
}

func TestFillWithBotsSeatsEveryArchetype(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState()
	state.Seats[0] = "user-1"
	state.OwnerSeat = 0

	handler.fillWithBots(state, dispatcher, noopLogger{})

	if state.GetOpenSeatsCount() != 0 {
		t.Fatalf("open seats after fill = %d", state.GetOpenSeatsCount())
	}
	botCount := 0
	for _, seat := range state.Seats {
		if isBotUserId(seat) {
			botCount++
		}
	}
	if botCount != domain.NumSeats-1 {
		t.Fatalf("bots seated = %d, want %d", botCount, domain.NumSeats-1)
	}
	if len(state.Bots) != domain.NumSeats-1 {
		t.Fatalf("agents created = %d", len(state.Bots))
	}
	if dispatcher.labelUpdates == 0 || dispatcher.broadcastCount == 0 {
		t.Fatal("fill must update the label and broadcast the seat map")
	}
}

func TestExpectedActorByPhase(t *testing.T) {
	round, err := domain.NewRound(domain.NewDeck())
	if err != nil {
		t.Fatal(err)
	}
	if got := expectedActor(round); got != 0 {
		t.Fatalf("auction actor = %d, want 0", got)
	}

	if err := round.SubmitBid(0, domain.Bid{Count: 13, Suit: domain.Clubs}); err != nil {
		t.Fatal(err)
	}
	for seat := 1; seat < domain.NumSeats; seat++ {
		if _, err := round.SubmitPass(seat); err != nil {
			t.Fatal(err)
		}
	}
	// Emperor (seat 0) owns the ally pick and the exchange.
	if got := expectedActor(round); got != 0 {
		t.Fatalf("ally-pick actor = %d, want 0", got)
	}

	if got := expectedActor(nil); got != -1 {
		t.Fatalf("nil round actor = %d, want -1", got)
	}
}

// TestBotsDriveRoundToCompletion runs MatchLoop ticks until the bot seats
// finish an entire round on their own.
func TestBotsDriveRoundToCompletion(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState()
	// No humans needed for state transitions; seat bots everywhere.
	for i := 0; i < domain.NumSeats; i++ {
		state.Seats[i] = bot.IdentityFor(domain.DefaultSeating[i]).UserID
		state.Bots[i] = bot.NewAgent(i, domain.DefaultSeating[i])
	}

	round, events, err := state.App.StartRound()
	if err != nil {
		t.Fatal(err)
	}
	state.Round = round
	for _, ev := range events {
		handler.dispatchEvent(context.Background(), state, dispatcher, noopLogger{}, ev)
	}

	// Each bot move takes at most two ticks (delay arm + act). A full round
	// is bounded by auction turns + exchange + fifty plays.
	for tick := int64(0); tick < 2000 && state.Round.Phase != domain.PhaseEnded; tick++ {
		state.Tick = tick
		handler.processBots(context.Background(), state, dispatcher, noopLogger{})
	}

	if state.Round.Phase != domain.PhaseEnded {
		t.Fatalf("round stuck in phase %s", state.Round.Phase)
	}
	if state.Round.CardCount() != domain.DeckSize {
		t.Fatalf("card count = %d", state.Round.CardCount())
	}
}

func TestRecordAchievementsSkipsBots(t *testing.T) {
	handler := &matchHandler{}
	ach := &mockAchievements{}
	state := newTestState()
	state.Achievements = ach
	state.Seats = [domain.NumSeats]string{
		"user-1",
		bot.IdentityFor(domain.Jeanne).UserID,
		"user-2",
		bot.IdentityFor(domain.Louise).UserID,
		bot.IdentityFor(domain.Katyusha).UserID,
	}

	result := domain.RoundResult{
		EmperorSeat: 0,
		AllySeat:    2,
		TeamPoints:  14,
		Target:      13,
		EmperorWins: true,
		SpecialSeat: -1,
	}
	handler.recordAchievements(context.Background(), state, noopLogger{}, result)

	if len(ach.records) != 2 {
		t.Fatalf("recorded %d users, want 2 humans", len(ach.records))
	}
	for _, userID := range []string{"user-1", "user-2"} {
		flags := ach.records[userID]
		if !flags.Played || !flags.WonNormally {
			t.Errorf("%s flags = %+v", userID, flags)
		}
		if flags.WonSpecially {
			t.Errorf("%s won specially without a special victory", userID)
		}
	}
}

func TestRecordAchievementsSpecialVictory(t *testing.T) {
	handler := &matchHandler{}
	ach := &mockAchievements{}
	state := newTestState()
	state.Achievements = ach
	state.Seats = [domain.NumSeats]string{"user-1", "user-2", "", "", ""}

	result := domain.RoundResult{
		EmperorSeat: 0,
		AllySeat:    -1,
		EmperorWins: true,
		SpecialSeat: 1,
		Trophy:      "Three Musketeers",
	}
	handler.recordAchievements(context.Background(), state, noopLogger{}, result)

	if !ach.records["user-2"].WonSpecially {
		t.Error("special winner not flagged")
	}
	if ach.records["user-1"].WonNormally {
		t.Error("faction outcome must be superseded by the special victory")
	}
	if !ach.records["user-1"].Played {
		t.Error("participation flag missing")
	}
}

func TestDispatchEventDropsBotOnlyTargets(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState()
	state.Seats[1] = bot.IdentityFor(domain.Jeanne).UserID

	ev := app.Event{
		Kind:       app.EventHandDealt,
		Payload:    app.HandDealtPayload{Seat: 1},
		Recipients: []int{1},
	}
	handler.dispatchEvent(context.Background(), state, dispatcher, noopLogger{}, ev)

	if dispatcher.broadcastCount != 0 {
		t.Fatal("targeted event for a bot seat must not be broadcast")
	}
}
