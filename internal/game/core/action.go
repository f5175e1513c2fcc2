package core

import "fmt"

// Move is a proposed relocation of the piece at From to To
type Move struct {
	From Coordinate
	To   Coordinate
}

func NewMove(fx, fy, tx, ty int) Move {
	return Move{From: NewCoordinate(fx, fy), To: NewCoordinate(tx, ty)}
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.From, m.To)
}

// Outcome classifies what happened when a move was executed
type Outcome int

const (
	OutcomeSimpleMove Outcome = iota
	OutcomeAttackerWins
	OutcomeDefenderWins
	OutcomeMutualElimination
	OutcomeFlagCaptured
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSimpleMove:
		return "simple move"
	case OutcomeAttackerWins:
		return "attacker wins"
	case OutcomeDefenderWins:
		return "defender wins"
	case OutcomeMutualElimination:
		return "mutual elimination"
	case OutcomeFlagCaptured:
		return "flag captured"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// MoveReport describes an executed move for presentation layers
type MoveReport struct {
	Turn     int
	Side     Side
	From     Coordinate
	To       Coordinate
	Combat   bool
	Attacker PieceInfo
	Defender PieceInfo // zero value when Combat is false
	Outcome  Outcome
	Message  string
	GameOver bool
	Winner   Side
}

func (r MoveReport) String() string {
	if !r.Combat {
		return fmt.Sprintf("turn %d: %s %s %s -> %s", r.Turn, r.Side, r.Attacker.Rank, r.From, r.To)
	}
	return fmt.Sprintf("turn %d: %s %s %s attacks %s %s at %s: %s",
		r.Turn, r.Side, r.Attacker.Rank, r.From, r.Defender.Side, r.Defender.Rank, r.To, r.Message)
}
