package states

import (
	"time"

	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"github.com/rs/zerolog"
)

// GameContext provides game-specific information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// Deployed records which sides have placed their army
	Deployed map[core.Side]bool

	// StartTime is when the game started (PhaseInProgress entered)
	StartTime time.Time

	// EndTime is when PhaseFinished was entered
	EndTime time.Time

	// Winner is the winning side once the game is decided
	Winner core.Side

	// EndReason describes how the game was decided
	EndReason string
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID:   gameID,
		Logger:   logger.With().Str("game_id", gameID).Logger(),
		Deployed: make(map[core.Side]bool),
		Winner:   core.NoSide,
	}
}

// IsReady returns true once both sides have deployed
func (gc *GameContext) IsReady() bool {
	for _, side := range core.Sides {
		if !gc.Deployed[side] {
			return false
		}
	}
	return true
}

// GetElapsedTime returns the time played so far, or the full game length once finished
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	if !gc.EndTime.IsZero() {
		return gc.EndTime.Sub(gc.StartTime)
	}
	return time.Since(gc.StartTime)
}
