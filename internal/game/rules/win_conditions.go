package rules

import (
	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"github.com/rs/zerolog"
)

// EndReason says why a game finished
type EndReason int

const (
	EndNone EndReason = iota
	EndFlagCaptured
	EndNoLegalMoves
)

func (r EndReason) String() string {
	switch r {
	case EndFlagCaptured:
		return "flag_captured"
	case EndNoLegalMoves:
		return "no_legal_moves"
	default:
		return "none"
	}
}

// WinConditionChecker handles game over detection and winner determination
type WinConditionChecker struct {
	logger zerolog.Logger
	moves  *LegalMoveCalculator
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger, moves *LegalMoveCalculator) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
		moves:  moves,
	}
}

// CheckAfterMove decides whether the move just made by mover ended the game.
// A captured flag wins outright; otherwise the game ends when the side due to
// move next has nothing it can legally do.
// Returns (isGameOver, winner, reason)
func (wc *WinConditionChecker) CheckAfterMove(board *core.Board, mover core.Side, outcome core.Outcome) (bool, core.Side, EndReason) {
	if outcome == core.OutcomeFlagCaptured {
		wc.logger.Info().Str("winner", mover.String()).Msg("Flag captured")
		return true, mover, EndFlagCaptured
	}
	return wc.CheckStuck(board, mover.Opponent())
}

// CheckStuck ends the game in the opponent's favour when side cannot move
func (wc *WinConditionChecker) CheckStuck(board *core.Board, side core.Side) (bool, core.Side, EndReason) {
	if wc.moves.HasLegalMove(board, side) {
		return false, core.NoSide, EndNone
	}
	winner := side.Opponent()
	wc.logger.Info().
		Str("stuck_side", side.String()).
		Str("winner", winner.String()).
		Msg("Side has no legal moves")
	return true, winner, EndNoLegalMoves
}
