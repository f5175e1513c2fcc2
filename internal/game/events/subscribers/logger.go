package subscribers

import (
	"encoding/json"

	"github.com/mitchelldurbincs/StrategoElite/internal/game/events"
	"github.com/rs/zerolog"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	var logEvent *zerolog.Event
	switch ls.logLevel {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("board_size", e.BoardSize).
			Str("first_side", e.FirstSide.String())
		for side, n := range e.PiecesPerSide {
			logEvent.Int("pieces_"+side.String(), n)
		}

	case *events.GameEndedEvent:
		logEvent.
			Str("winner", e.Winner.String()).
			Str("reason", e.Reason).
			Dur("duration", e.Duration).
			Int("final_turn", e.FinalTurn)

	case *events.ArmyDeployedEvent:
		logEvent.
			Str("side", e.Metadata.Side.String()).
			Int("pieces", e.Pieces)

	case *events.MoveExecutedEvent:
		logEvent.
			Int("turn", e.Metadata.Turn).
			Str("side", e.Metadata.Side.String()).
			Str("rank", e.Rank.String()).
			Int("from_x", e.From.X).
			Int("from_y", e.From.Y).
			Int("to_x", e.To.X).
			Int("to_y", e.To.Y).
			Str("outcome", e.Outcome.String())

	case *events.MoveRejectedEvent:
		logEvent.
			Int("turn", e.Metadata.Turn).
			Str("side", e.Metadata.Side.String()).
			Str("from", e.From.String()).
			Str("to", e.To.String()).
			Str("reason", e.Reason.String())

	case *events.CombatResolvedEvent:
		logEvent.
			Int("turn", e.Metadata.Turn).
			Str("attacker", e.Attacker.Side.String()+" "+e.Attacker.Rank.String()).
			Str("defender", e.Defender.Side.String()+" "+e.Defender.Rank.String()).
			Int("location_x", e.Location.X).
			Int("location_y", e.Location.Y).
			Str("outcome", e.Outcome.String()).
			Str("combat_message", e.Message)

	case *events.TurnChangedEvent:
		logEvent.
			Int("turn", e.Metadata.Turn).
			Str("side", e.Metadata.Side.String())

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
