package ai

import (
	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal moves
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Name() string { return LevelRandom.String() }

func (r *Random) Choose(_ *core.Board, _ core.Side, candidates []core.Move) (core.Move, bool) {
	if len(candidates) == 0 {
		return core.Move{}, false
	}
	return candidates[r.rng.Intn(len(candidates))], true
}
