package ai

import (
	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/rules"
	"github.com/rs/zerolog"
)

// Player is a computer-controlled side
type Player struct {
	Side     core.Side
	Strategy Strategy
	moves    *rules.LegalMoveCalculator
	logger   zerolog.Logger
}

// NewPlayer creates a player for side using strategy
func NewPlayer(side core.Side, strategy Strategy, moves *rules.LegalMoveCalculator, logger zerolog.Logger) *Player {
	return &Player{
		Side:     side,
		Strategy: strategy,
		moves:    moves,
		logger: logger.With().
			Str("component", "AIPlayer").
			Str("side", side.String()).
			Str("strategy", strategy.Name()).
			Logger(),
	}
}

// NextMove generates the legal moves for the player's side and lets the
// strategy pick one. Returns false when the side cannot move.
func (p *Player) NextMove(board *core.Board) (core.Move, bool) {
	candidates := p.moves.LegalMoves(board, p.Side)
	move, ok := p.Strategy.Choose(board, p.Side, candidates)
	if !ok {
		p.logger.Debug().Msg("No legal moves available")
		return core.Move{}, false
	}
	p.logger.Debug().
		Int("candidates", len(candidates)).
		Str("move", move.String()).
		Msg("Move chosen")
	return move, true
}
