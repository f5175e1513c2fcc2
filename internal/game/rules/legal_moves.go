package rules

import "github.com/mitchelldurbincs/StrategoElite/internal/game/core"

// LegalMoveCalculator enumerates the moves a side may make. It keeps no cache;
// every call scans the board fresh.
type LegalMoveCalculator struct {
	rules core.RuleSet
}

// NewLegalMoveCalculator creates a new legal move calculator for a rule set
func NewLegalMoveCalculator(rules core.RuleSet) *LegalMoveCalculator {
	return &LegalMoveCalculator{rules: rules}
}

// LegalMoves returns every legal move for side, scanning pieces row-major and
// directions North, East, South, West. An empty result means the side is stuck.
func (lmc *LegalMoveCalculator) LegalMoves(board *core.Board, side core.Side) []core.Move {
	var moves []core.Move
	for idx := range board.T {
		p := board.T[idx].Occupant
		if p == nil || p.Side != side || !p.Movable() {
			continue
		}
		from := core.FromIndex(idx, board.Size)
		for _, to := range lmc.destinations(board, p, from) {
			moves = append(moves, core.Move{From: from, To: to})
		}
	}
	return moves
}

// LegalDestinations returns the cells the piece at from may move to.
// Returns nil for an empty cell or an immobile piece.
func (lmc *LegalMoveCalculator) LegalDestinations(board *core.Board, from core.Coordinate) []core.Coordinate {
	p := board.PieceAt(from)
	if p == nil || !p.Movable() {
		return nil
	}
	return lmc.destinations(board, p, from)
}

// HasLegalMove reports whether side has at least one legal move
func (lmc *LegalMoveCalculator) HasLegalMove(board *core.Board, side core.Side) bool {
	for idx := range board.T {
		p := board.T[idx].Occupant
		if p == nil || p.Side != side || !p.Movable() {
			continue
		}
		if len(lmc.destinations(board, p, core.FromIndex(idx, board.Size))) > 0 {
			return true
		}
	}
	return false
}

func (lmc *LegalMoveCalculator) destinations(board *core.Board, p *core.Piece, from core.Coordinate) []core.Coordinate {
	var out []core.Coordinate
	longRange := lmc.rules.IsLongRange(p.Rank)

	for _, dir := range core.Directions {
		for cur := from.Move(dir); board.Contains(cur); cur = cur.Move(dir) {
			if board.TerrainAt(cur) == core.TerrainLake {
				break
			}
			occupant := board.PieceAt(cur)
			if occupant != nil {
				if occupant.Side != p.Side {
					out = append(out, cur)
				}
				break
			}
			out = append(out, cur)
			if !longRange {
				break
			}
		}
	}
	return out
}
