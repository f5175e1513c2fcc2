package core

import "fmt"

// ValidateMove checks a proposed move for the acting side. Checks run in a fixed
// order and the first failure is returned as a *MoveError. The board is not modified.
func ValidateMove(b *Board, rules RuleSet, side Side, from, to Coordinate) error {
	if !b.Contains(from) || !b.Contains(to) {
		return reject(RejectOutOfBounds, side, from, to, "")
	}

	piece := b.PieceAt(from)
	if piece == nil {
		return reject(RejectNoPieceAtStart, side, from, to, "")
	}

	if piece.Side != side {
		return reject(RejectWrongTurn, side, from, to, fmt.Sprintf("it is %s's turn", side))
	}

	if !piece.Movable() {
		return reject(RejectImmobile, side, from, to, piece.Rank.String())
	}

	if b.TerrainAt(to) == TerrainLake {
		return reject(RejectLakeDestination, side, from, to, "")
	}

	if target := b.PieceAt(to); target != nil && target.Side == piece.Side {
		return reject(RejectFriendlyFire, side, from, to, "")
	}

	if rules.IsLongRange(piece.Rank) {
		if !from.IsStraightLineTo(to) {
			return reject(RejectInvalidShape, side, from, to, "must move in a straight line")
		}
		if !isPathClear(b, from, to) {
			return reject(RejectInvalidShape, side, from, to, "path is blocked")
		}
		return nil
	}

	if !from.IsAdjacentTo(to) {
		return reject(RejectInvalidShape, side, from, to, "can only move one step")
	}
	return nil
}

// isPathClear reports whether every cell strictly between from and to is empty
// land. The caller guarantees the two lie on one row or column.
func isPathClear(b *Board, from, to Coordinate) bool {
	step := from.StepToward(to)
	for cur := from.Add(step); cur != to; cur = cur.Add(step) {
		if b.PieceAt(cur) != nil || b.TerrainAt(cur) == TerrainLake {
			return false
		}
	}
	return true
}

// MoveResult is what ApplyMove did to the board
type MoveResult struct {
	Combat   bool
	Attacker PieceInfo
	Defender PieceInfo
	CombatResult
}

// ApplyMove executes a move that has already passed ValidateMove.
// The attacker is detached first; then it is either placed on an empty
// destination or fights the occupant. Both combatants are revealed.
// Calling it with a move that has no piece at From is a programming defect.
func ApplyMove(b *Board, rules RuleSet, m Move) MoveResult {
	attacker := b.Remove(m.From)
	if attacker == nil {
		panic(fmt.Sprintf("ApplyMove: no piece at %s", m.From))
	}

	defender := b.PieceAt(m.To)
	if defender == nil {
		b.Place(attacker, m.To)
		return MoveResult{
			Attacker:     attacker.Info(),
			CombatResult: CombatResult{Outcome: OutcomeSimpleMove, Message: "moved"},
		}
	}
	if defender.Side == attacker.Side {
		panic(fmt.Sprintf("ApplyMove: %s attacking own piece at %s", attacker, m.To))
	}

	attacker.Reveal()
	defender.Reveal()
	result := ResolveCombat(attacker.Rank, defender.Rank, rules)

	switch {
	case result.AttackerSurvives():
		b.Place(attacker, m.To)
	case result.DefenderSurvives():
		// defender keeps its cell, attacker is already off the board
	default:
		b.Remove(m.To)
	}
	return MoveResult{
		Combat:       true,
		Attacker:     attacker.Info(),
		Defender:     defender.Info(),
		CombatResult: result,
	}
}
