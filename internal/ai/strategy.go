// Package ai picks moves for computer-controlled sides.
package ai

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"golang.org/x/exp/rand"
)

// Strategy chooses one move out of a list of legal candidates.
// It must not modify the board. An empty candidate list yields (Move{}, false).
type Strategy interface {
	Name() string
	Choose(board *core.Board, side core.Side, candidates []core.Move) (core.Move, bool)
}

// Level is the difficulty of a computer player
type Level int

const (
	LevelRandom    Level = 1
	LevelGreedy    Level = 2
	LevelHeuristic Level = 3
)

func (l Level) String() string {
	switch l {
	case LevelRandom:
		return "random"
	case LevelGreedy:
		return "greedy"
	case LevelHeuristic:
		return "heuristic"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel accepts a level number ("1".."3") or a strategy name
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		l := Level(n)
		if l < LevelRandom || l > LevelHeuristic {
			return 0, fmt.Errorf("ai level %d out of range 1-3", n)
		}
		return l, nil
	}
	for l := LevelRandom; l <= LevelHeuristic; l++ {
		if l.String() == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown ai level %q", s)
}

// NewStrategy builds the strategy for a level
func NewStrategy(level Level, rules core.RuleSet, rng *rand.Rand) (Strategy, error) {
	switch level {
	case LevelRandom:
		return NewRandom(rng), nil
	case LevelGreedy:
		return NewGreedy(rng), nil
	case LevelHeuristic:
		return NewHeuristic(rules, rng), nil
	default:
		return nil, fmt.Errorf("unknown ai level %d", int(level))
	}
}

// scoreFunc rates one candidate move; higher is better
type scoreFunc func(m core.Move) int

// bestMove returns the highest scoring candidate. Ties keep the earliest move.
func bestMove(candidates []core.Move, score scoreFunc) (core.Move, bool) {
	if len(candidates) == 0 {
		return core.Move{}, false
	}
	best, bestScore := candidates[0], score(candidates[0])
	for _, m := range candidates[1:] {
		if s := score(m); s > bestScore {
			best, bestScore = m, s
		}
	}
	return best, true
}
