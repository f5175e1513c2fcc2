package subscribers_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/events"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/events/subscribers"
)

func base(eventType string) events.BaseEvent {
	return events.BaseEvent{EventType: eventType, Time: time.Now(), Game: "test-game-1"}
}

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Logger()

	logSub := subscribers.NewLoggerSubscriber("test-logger", logger, zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())
	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeTurnChanged))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("event-logger", logger, zerolog.InfoLevel)

	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name: "GameStartedEvent",
			event: &events.GameStartedEvent{
				BaseEvent:     base(events.TypeGameStarted),
				BoardSize:     10,
				FirstSide:     core.Red,
				PiecesPerSide: map[core.Side]int{core.Red: 40, core.Blue: 40},
			},
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(10), logLine["board_size"])
				assert.Equal(t, "Red", logLine["first_side"])
				assert.Equal(t, float64(40), logLine["pieces_Red"])
				assert.Equal(t, float64(40), logLine["pieces_Blue"])
			},
		},
		{
			name: "TurnChangedEvent",
			event: &events.TurnChangedEvent{
				BaseEvent: base(events.TypeTurnChanged),
				Metadata:  events.EventMetadata{Side: core.Blue, Turn: 5},
			},
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(5), logLine["turn"])
				assert.Equal(t, "Blue", logLine["side"])
			},
		},
		{
			name: "CombatResolvedEvent",
			event: &events.CombatResolvedEvent{
				BaseEvent: base(events.TypeCombatResolved),
				Metadata:  events.EventMetadata{Side: core.Red, Turn: 7},
				Location:  core.NewCoordinate(4, 5),
				Attacker:  core.PieceInfo{Side: core.Red, Rank: core.RankSpy},
				Defender:  core.PieceInfo{Side: core.Blue, Rank: core.RankMarshal},
				Outcome:   core.OutcomeAttackerWins,
				Message:   "Spy assassinated the Marshal!",
			},
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Red Spy", logLine["attacker"])
				assert.Equal(t, "Blue Marshal", logLine["defender"])
				assert.Equal(t, float64(4), logLine["location_x"])
				assert.Equal(t, float64(5), logLine["location_y"])
				assert.Equal(t, "attacker wins", logLine["outcome"])
				assert.Equal(t, "Spy assassinated the Marshal!", logLine["combat_message"])
			},
		},
		{
			name: "MoveRejectedEvent",
			event: &events.MoveRejectedEvent{
				BaseEvent: base(events.TypeMoveRejected),
				Metadata:  events.EventMetadata{Side: core.Red, Turn: 2},
				From:      core.NewCoordinate(1, 3),
				To:        core.NewCoordinate(1, 4),
				Reason:    core.RejectLakeDestination,
			},
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "(1,3)", logLine["from"])
				assert.Equal(t, "(1,4)", logLine["to"])
				assert.Equal(t, "LakeDestination", logLine["reason"])
			},
		},
		{
			name: "GameEndedEvent",
			event: &events.GameEndedEvent{
				BaseEvent: base(events.TypeGameEnded),
				Winner:    core.Blue,
				Reason:    "flag_captured",
				Duration:  time.Minute * 5,
				FinalTurn: 88,
			},
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Blue", logLine["winner"])
				assert.Equal(t, "flag_captured", logLine["reason"])
				assert.Equal(t, float64(300000), logLine["duration"]) // 5 minutes in ms
				assert.Equal(t, float64(88), logLine["final_turn"])
			},
		},
		{
			name:  "StateTransitionEvent",
			event: events.NewStateTransitionEvent("test-game-1", "Setup", "InProgress", "armies deployed"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Setup", logLine["from_phase"])
				assert.Equal(t, "InProgress", logLine["to_phase"])
				assert.Equal(t, "armies deployed", logLine["reason"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			logSub.HandleEvent(tc.event)

			logOutput := buf.String()
			require.NotEmpty(t, logOutput, "Log output should not be empty")

			var logLine map[string]interface{}
			err := json.Unmarshal([]byte(logOutput), &logLine)
			require.NoError(t, err, "Should be able to parse log output as JSON")

			assert.Equal(t, "info", logLine["level"])
			assert.Equal(t, "Game event", logLine["message"])
			assert.Equal(t, tc.event.Type(), logLine["event_type"])
			assert.Equal(t, "test-game-1", logLine["game_id"])

			tc.check(t, logLine)
		})
	}
}

func TestLoggerSubscriberWithFilter(t *testing.T) {
	logSub := subscribers.NewLoggerSubscriber("filtered-logger", zerolog.Nop(), zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeGameStarted, events.TypeGameEnded})

	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeGameEnded))
	assert.False(t, logSub.InterestedIn(events.TypeTurnChanged))
	assert.False(t, logSub.InterestedIn(events.TypeMoveExecuted))

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeMoveExecuted))
}

func TestLoggerSubscriberViaBus(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("bus-logger", zerolog.New(&buf), zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeGameEnded})

	bus := events.NewEventBus(zerolog.Nop())
	bus.Subscribe(logSub)

	bus.Publish(events.NewTurnChangedEvent("g", core.Blue, 1))
	assert.Empty(t, buf.String())

	bus.Publish(events.NewGameEndedEvent("g", core.Red, "no_legal_moves", time.Second, 30))
	assert.Contains(t, buf.String(), "no_legal_moves")
}

func TestLoggerSubscriberLogLevels(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel zerolog.Level
		expected string
	}{
		{"Debug", zerolog.DebugLevel, "debug"},
		{"Info", zerolog.InfoLevel, "info"},
		{"Warn", zerolog.WarnLevel, "warn"},
		{"Error", zerolog.ErrorLevel, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(tc.logLevel)

			logSub := subscribers.NewLoggerSubscriber("level-logger", logger, tc.logLevel)
			logSub.HandleEvent(events.NewArmyDeployedEvent("game1", core.Red, 40))

			require.NotZero(t, buf.Len())
			var logLine map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))
			assert.Equal(t, tc.expected, logLine["level"])
		})
	}
}

func TestLoggerSubscriberDevelopmentMode(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("dev-logger", zerolog.New(&buf), zerolog.InfoLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewMoveExecutedEvent("dev-game", core.MoveReport{
		Turn:     3,
		Side:     core.Red,
		From:     core.NewCoordinate(5, 3),
		To:       core.NewCoordinate(5, 4),
		Attacker: core.PieceInfo{Side: core.Red, Rank: core.RankScout},
	}))

	var logLine map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))

	eventData, ok := logLine["event_data"]
	require.True(t, ok, "event_data should be present")

	eventDataBytes, err := json.Marshal(eventData)
	require.NoError(t, err)
	assert.Contains(t, string(eventDataBytes), "move.executed")
	assert.Contains(t, string(eventDataBytes), "Rank")
}
