package game

import (
	"context"
	"fmt"
	"time"

	"github.com/mitchelldurbincs/StrategoElite/internal/ai"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
)

// MatchResult is the outcome of one AI-vs-AI game
type MatchResult struct {
	GameID   string
	Winner   core.Side // NoSide when the turn limit was reached
	Reason   string
	Turns    int
	Duration time.Duration
	Stats    map[core.Side]SideStats
}

// RunMatch plays computer players against each other until the game ends,
// maxTurns moves have been made (0 means no limit) or ctx is cancelled.
// The engine must already be in progress. Cancellation is checked between
// moves; a move is never interrupted.
func RunMatch(ctx context.Context, e *Engine, players map[core.Side]*ai.Player, maxTurns int) (MatchResult, error) {
	for _, side := range core.Sides {
		if players[side] == nil {
			return MatchResult{}, fmt.Errorf("no player for %s", side)
		}
		if players[side].Side != side {
			return MatchResult{}, fmt.Errorf("player for %s plays %s", side, players[side].Side)
		}
	}
	if !e.Phase().CanReceiveMoves() && !e.IsGameOver() {
		return MatchResult{}, core.WrapGameStateError(e.Turn(), e.Phase().String(), core.ErrNotInProgress)
	}

	start := time.Now()
	logger := e.logger.With().Str("component", "MatchRunner").Logger()

	for !e.IsGameOver() {
		select {
		case <-ctx.Done():
			logger.Warn().
				Err(ctx.Err()).
				Int("turn", e.Turn()).
				Msg("Match cancelled")
			return e.matchResult(start, core.NoSide, ""), ctx.Err()
		default:
		}

		if maxTurns > 0 && e.Turn() >= maxTurns {
			logger.Info().Int("max_turns", maxTurns).Msg("Turn limit reached")
			return e.matchResult(start, core.NoSide, EndReasonTurnLimit), nil
		}

		if _, _, err := e.AIMove(players[e.CurrentSide()]); err != nil {
			return e.matchResult(start, core.NoSide, ""), err
		}
	}

	return e.matchResult(start, e.Winner(), e.stateMachine.GetContext().EndReason), nil
}

func (e *Engine) matchResult(start time.Time, winner core.Side, reason string) MatchResult {
	return MatchResult{
		GameID:   e.gameID,
		Winner:   winner,
		Reason:   reason,
		Turns:    e.gs.Turn,
		Duration: time.Since(start),
		Stats:    e.Stats(),
	}
}
