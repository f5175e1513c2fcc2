package ai

import (
	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"golang.org/x/exp/rand"
)

const (
	greedyCaptureBonus = 50
	greedyJitter       = 6 // random bonus in [0, 5]
)

// Greedy attacks whenever it can; otherwise it moves at random
type Greedy struct {
	rng *rand.Rand
}

func NewGreedy(rng *rand.Rand) *Greedy {
	return &Greedy{rng: rng}
}

func (g *Greedy) Name() string { return LevelGreedy.String() }

func (g *Greedy) Choose(board *core.Board, _ core.Side, candidates []core.Move) (core.Move, bool) {
	return bestMove(candidates, func(m core.Move) int {
		score := 0
		if board.PieceAt(m.To) != nil {
			score += greedyCaptureBonus
		}
		return score + g.rng.Intn(greedyJitter)
	})
}
