package game

import (
	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/events"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/states"
	"github.com/rs/zerolog"
)

// TurnProcessor handles the orchestration of a single move
type TurnProcessor struct {
	engine *Engine
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(engine *Engine) *TurnProcessor {
	return &TurnProcessor{
		engine: engine,
		logger: engine.logger,
	}
}

// ProcessMove plays one move for the side on turn. A rejected move leaves
// the game untouched and returns the *core.MoveError from validation.
func (tp *TurnProcessor) ProcessMove(move core.Move) (core.MoveReport, error) {
	if err := tp.validateGameState(); err != nil {
		return core.MoveReport{}, err
	}

	gs := tp.engine.gs
	side := gs.CurrentSide
	turnLogger := tp.logger.With().
		Int("turn", gs.Turn+1).
		Str("side", side.String()).
		Logger()

	if err := tp.validateMove(side, move, turnLogger); err != nil {
		return core.MoveReport{}, err
	}

	report := tp.applyMove(side, move)
	turnLogger.Debug().
		Str("move", move.String()).
		Str("outcome", report.Outcome.String()).
		Msg("Move executed")

	endReason := tp.processEndOfTurnPhase(&report)
	tp.engine.gs.History = append(tp.engine.gs.History, report)
	tp.publishMove(report)

	if report.GameOver {
		if err := tp.engine.finish(report.Winner, endReason); err != nil {
			return report, err
		}
		return report, nil
	}

	tp.advanceTurn()
	return report, nil
}

// validateGameState ensures the game can receive moves
func (tp *TurnProcessor) validateGameState() error {
	gs := tp.engine.gs
	currentPhase := tp.engine.Phase()
	if currentPhase == states.PhaseFinished {
		tp.logger.Warn().
			Int("turn", gs.Turn).
			Msg("Attempted to move in a game that is already over")
		return core.WrapGameStateError(gs.Turn, currentPhase.String(), core.ErrGameOver)
	}
	if !currentPhase.CanReceiveMoves() {
		tp.logger.Warn().
			Str("current_phase", currentPhase.String()).
			Int("turn", gs.Turn).
			Msg("Attempted to move in phase that cannot receive moves")
		return core.WrapGameStateError(gs.Turn, currentPhase.String(), core.ErrNotInProgress)
	}
	return nil
}

// validateMove runs the rule checks and announces rejections
func (tp *TurnProcessor) validateMove(side core.Side, move core.Move, turnLogger zerolog.Logger) error {
	err := core.ValidateMove(tp.engine.gs.Board, tp.engine.rules, side, move.From, move.To)
	if err == nil {
		return nil
	}
	reason := core.RejectionOf(err)
	turnLogger.Debug().
		Str("move", move.String()).
		Str("reason", reason.String()).
		Msg("Move rejected")
	tp.engine.eventBus.Publish(events.NewMoveRejectedEvent(
		tp.engine.gameID, side, move.From, move.To, reason, tp.engine.gs.Turn,
	))
	return err
}

// applyMove mutates the board and builds the report
func (tp *TurnProcessor) applyMove(side core.Side, move core.Move) core.MoveReport {
	gs := tp.engine.gs
	res := core.ApplyMove(gs.Board, tp.engine.rules, move)
	gs.Turn++

	return core.MoveReport{
		Turn:     gs.Turn,
		Side:     side,
		From:     move.From,
		To:       move.To,
		Combat:   res.Combat,
		Attacker: res.Attacker,
		Defender: res.Defender,
		Outcome:  res.Outcome,
		Message:  res.Message,
	}
}

// processEndOfTurnPhase decides whether the move ended the game and
// returns the end reason when it did
func (tp *TurnProcessor) processEndOfTurnPhase(report *core.MoveReport) string {
	tp.engine.gs.Board.CheckInvariants()

	over, winner, reason := tp.engine.winCondition.CheckAfterMove(tp.engine.gs.Board, report.Side, report.Outcome)
	if !over {
		return ""
	}
	report.GameOver = true
	report.Winner = winner
	return reason.String()
}

// publishMove announces the executed move and any combat
func (tp *TurnProcessor) publishMove(report core.MoveReport) {
	bus := tp.engine.eventBus
	bus.Publish(events.NewMoveExecutedEvent(tp.engine.gameID, report))
	if report.Combat {
		bus.Publish(events.NewCombatResolvedEvent(tp.engine.gameID, report))
	}
}

// advanceTurn hands the move to the other side
func (tp *TurnProcessor) advanceTurn() {
	gs := tp.engine.gs
	gs.CurrentSide = gs.CurrentSide.Opponent()
	tp.engine.eventBus.Publish(events.NewTurnChangedEvent(tp.engine.gameID, gs.CurrentSide, gs.Turn))
}
