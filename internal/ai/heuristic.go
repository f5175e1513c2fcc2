package ai

import (
	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"golang.org/x/exp/rand"
)

// Heuristic weights
const (
	backRowDefuserBonus  = 100 // the enemy back row is where bombs and the flag live
	backRowAttackPenalty = -50
	captureBonus         = 40
	advanceBonus         = 10
	advanceSpecialBonus  = 5
	heuristicJitter      = 4 // random bonus in [0, 3]
)

// Heuristic prefers sending defusers into the enemy back row, attacking
// elsewhere, and advancing one step at a time.
type Heuristic struct {
	rules core.RuleSet
	rng   *rand.Rand
}

func NewHeuristic(rules core.RuleSet, rng *rand.Rand) *Heuristic {
	return &Heuristic{rules: rules, rng: rng}
}

func (h *Heuristic) Name() string { return LevelHeuristic.String() }

func (h *Heuristic) Choose(board *core.Board, side core.Side, candidates []core.Move) (core.Move, bool) {
	enemyBackRow := side.Opponent().BackRow(board.Size)
	return bestMove(candidates, func(m core.Move) int {
		return h.score(board, side, enemyBackRow, m) + h.rng.Intn(heuristicJitter)
	})
}

func (h *Heuristic) score(board *core.Board, side core.Side, enemyBackRow int, m core.Move) int {
	piece := board.PieceAt(m.From)
	if piece == nil {
		return 0
	}

	if board.PieceAt(m.To) != nil {
		if m.To.Y == enemyBackRow {
			if piece.Rank == h.rules.Defuser {
				return backRowDefuserBonus
			}
			return backRowAttackPenalty
		}
		return captureBonus
	}

	score := 0
	if m.To.Y-m.From.Y == side.Forward() {
		score += advanceBonus
		if piece.Rank == h.rules.LongRange || piece.Rank == h.rules.Defuser {
			score += advanceSpecialBonus
		}
	}
	return score
}
