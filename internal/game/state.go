package game

import (
	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/states"
)

// GameState is everything the engine tracks about a game in progress
type GameState struct {
	Board       *core.Board
	Turn        int // number of moves executed so far
	CurrentSide core.Side
	Phase       states.GamePhase
	Winner      core.Side
	EndReason   string
	History     []core.MoveReport
}

// Clone returns a deep copy that shares nothing with the receiver
func (gs *GameState) Clone() *GameState {
	c := *gs
	c.Board = gs.Board.Clone()
	c.History = make([]core.MoveReport, len(gs.History))
	copy(c.History, gs.History)
	return &c
}

// LastMove returns the most recent move report, false before the first move
func (gs *GameState) LastMove() (core.MoveReport, bool) {
	if len(gs.History) == 0 {
		return core.MoveReport{}, false
	}
	return gs.History[len(gs.History)-1], true
}
