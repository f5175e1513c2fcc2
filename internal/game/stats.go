package game

import "github.com/mitchelldurbincs/StrategoElite/internal/game/core"

// This file contains per-side statistics derived from the board and history.

// SideStats summarizes one side's position
type SideStats struct {
	Side     core.Side
	Pieces   int
	Movable  int
	Revealed int
	ByRank   map[core.Rank]int
	Captures int // enemy pieces this side removed in combat
	Losses   int // own pieces removed in combat
}

// Stats recalculates statistics for both sides
func (e *Engine) Stats() map[core.Side]SideStats {
	out := make(map[core.Side]SideStats, len(core.Sides))
	for _, side := range core.Sides {
		out[side] = e.boardStats(side)
	}

	for _, r := range e.gs.History {
		if !r.Combat {
			continue
		}
		att, def := out[r.Attacker.Side], out[r.Defender.Side]
		switch r.Outcome {
		case core.OutcomeAttackerWins, core.OutcomeFlagCaptured:
			att.Captures++
			def.Losses++
		case core.OutcomeDefenderWins:
			def.Captures++
			att.Losses++
		case core.OutcomeMutualElimination:
			att.Captures++
			att.Losses++
			def.Captures++
			def.Losses++
		}
		out[r.Attacker.Side], out[r.Defender.Side] = att, def
	}
	return out
}

func (e *Engine) boardStats(side core.Side) SideStats {
	s := SideStats{Side: side, ByRank: make(map[core.Rank]int)}
	for _, pp := range e.gs.Board.Pieces(side) {
		s.Pieces++
		s.ByRank[pp.Piece.Rank]++
		if pp.Piece.Movable() {
			s.Movable++
		}
		if pp.Piece.Revealed {
			s.Revealed++
		}
	}
	return s
}
