package states

import (
	"fmt"
	"time"

	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
)

// SetupState represents deployment before the first move
type SetupState struct{}

func NewSetupState() State {
	return &SetupState{}
}

func (s *SetupState) Phase() GamePhase {
	return PhaseSetup
}

func (s *SetupState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering Setup state")
	return nil
}

func (s *SetupState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Armies deployed, leaving Setup")
	return nil
}

func (s *SetupState) Validate(ctx *GameContext) error {
	return nil
}

// InProgressState represents active play
type InProgressState struct{}

func NewInProgressState() State {
	return &InProgressState{}
}

func (s *InProgressState) Phase() GamePhase {
	return PhaseInProgress
}

func (s *InProgressState) Enter(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		ctx.StartTime = time.Now()
	}
	ctx.Logger.Info().
		Time("start_time", ctx.StartTime).
		Msg("Game started")
	return nil
}

func (s *InProgressState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Exiting InProgress state")
	return nil
}

func (s *InProgressState) Validate(ctx *GameContext) error {
	if !ctx.IsReady() {
		return fmt.Errorf("both sides must deploy before play starts")
	}
	return nil
}

// FogStormState would cover the board in clouds for a few turns
type FogStormState struct{}

func NewFogStormState() State {
	return &FogStormState{}
}

func (s *FogStormState) Phase() GamePhase {
	return PhaseFogStorm
}

func (s *FogStormState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().Msg("Fog storm rolling in")
	return nil
}

func (s *FogStormState) Exit(ctx *GameContext) error {
	ctx.Logger.Info().Msg("Fog storm cleared")
	return nil
}

func (s *FogStormState) Validate(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		return fmt.Errorf("fog storm requires a started game")
	}
	return nil
}

// FinishedState represents a decided game
type FinishedState struct{}

func NewFinishedState() State {
	return &FinishedState{}
}

func (s *FinishedState) Phase() GamePhase {
	return PhaseFinished
}

func (s *FinishedState) Enter(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Info().
		Str("winner", ctx.Winner.String()).
		Str("reason", ctx.EndReason).
		Dur("game_duration", ctx.GetElapsedTime()).
		Msg("Game finished")
	return nil
}

func (s *FinishedState) Exit(ctx *GameContext) error {
	return fmt.Errorf("finished is a terminal state")
}

func (s *FinishedState) Validate(ctx *GameContext) error {
	if ctx.Winner != core.Red && ctx.Winner != core.Blue {
		return fmt.Errorf("finished state requires a winner, got %s", ctx.Winner)
	}
	return nil
}
