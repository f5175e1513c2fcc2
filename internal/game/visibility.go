package game

import "github.com/mitchelldurbincs/StrategoElite/internal/game/core"

// This file contains the fog rules: what a side can see of the board.

// PieceView is a piece as seen by one side. Rank is RankUnknown while
// the opponent's piece has not been revealed.
type PieceView struct {
	Side  core.Side
	Rank  core.Rank
	Known bool
}

// VisiblePieceAt reports what viewer sees at c. It returns false for an
// empty cell, a cell off the board, or a piece hidden inside a cloud.
// Viewer NoSide sees everything.
func (e *Engine) VisiblePieceAt(c core.Coordinate, viewer core.Side) (PieceView, bool) {
	return visiblePiece(e.gs.Board, c, viewer, e.HasCloudVision(viewer))
}

// HasCloudVision reports whether viewer has a long-range piece standing on a
// cloud cell. Such a piece lets its side see into every cloud.
func (e *Engine) HasCloudVision(viewer core.Side) bool {
	return hasCloudVision(e.gs.Board, e.rules, viewer)
}

func hasCloudVision(board *core.Board, rs core.RuleSet, viewer core.Side) bool {
	for i := range board.T {
		cell := &board.T[i]
		if !cell.IsCloud() || cell.Occupant == nil {
			continue
		}
		if cell.Occupant.Side == viewer && rs.IsLongRange(cell.Occupant.Rank) {
			return true
		}
	}
	return false
}

func visiblePiece(board *core.Board, c core.Coordinate, viewer core.Side, cloudVision bool) (PieceView, bool) {
	if !board.Contains(c) {
		return PieceView{}, false
	}
	cell := board.GetCell(c)
	p := cell.Occupant
	if p == nil {
		return PieceView{}, false
	}

	if viewer == core.NoSide || p.Side == viewer {
		return PieceView{Side: p.Side, Rank: p.Rank, Known: true}, true
	}
	if cell.IsCloud() && !cloudVision {
		return PieceView{}, false
	}
	if p.Revealed {
		return PieceView{Side: p.Side, Rank: p.Rank, Known: true}, true
	}
	return PieceView{Side: p.Side, Rank: core.RankUnknown}, true
}
