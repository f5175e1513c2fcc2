package core

import (
	"errors"
	"fmt"
)

// Move validation rejections. These are expected outcomes of a proposal, not faults.
var (
	ErrOutOfBounds     = errors.New("move out of bounds")
	ErrNoPieceAtStart  = errors.New("no piece at starting position")
	ErrWrongTurn       = errors.New("piece belongs to the side not on turn")
	ErrImmobile        = errors.New("piece cannot move")
	ErrLakeDestination = errors.New("cannot move into a lake")
	ErrFriendlyFire    = errors.New("destination occupied by own piece")
	ErrInvalidShape    = errors.New("illegal movement shape")
)

// Lifecycle errors
var (
	ErrGameOver         = errors.New("game is over")
	ErrNotInProgress    = errors.New("game is not in progress")
	ErrAlreadyDeployed  = errors.New("side already deployed")
	ErrArmySizeMismatch = errors.New("army does not fill home zone")
)

// Rejection classifies why a move was refused. The set is closed.
type Rejection int

const (
	RejectNone Rejection = iota
	RejectOutOfBounds
	RejectNoPieceAtStart
	RejectWrongTurn
	RejectImmobile
	RejectLakeDestination
	RejectFriendlyFire
	RejectInvalidShape
)

var rejectionErrors = map[Rejection]error{
	RejectOutOfBounds:     ErrOutOfBounds,
	RejectNoPieceAtStart:  ErrNoPieceAtStart,
	RejectWrongTurn:       ErrWrongTurn,
	RejectImmobile:        ErrImmobile,
	RejectLakeDestination: ErrLakeDestination,
	RejectFriendlyFire:    ErrFriendlyFire,
	RejectInvalidShape:    ErrInvalidShape,
}

func (r Rejection) String() string {
	switch r {
	case RejectNone:
		return "None"
	case RejectOutOfBounds:
		return "OutOfBounds"
	case RejectNoPieceAtStart:
		return "NoPieceAtStart"
	case RejectWrongTurn:
		return "WrongTurn"
	case RejectImmobile:
		return "Immobile"
	case RejectLakeDestination:
		return "LakeDestination"
	case RejectFriendlyFire:
		return "FriendlyFireBlocked"
	case RejectInvalidShape:
		return "InvalidShape"
	default:
		return fmt.Sprintf("Rejection(%d)", int(r))
	}
}

// Err returns the sentinel error for the rejection, nil for RejectNone
func (r Rejection) Err() error {
	return rejectionErrors[r]
}

// MoveError is a validation rejection with the move that caused it
type MoveError struct {
	Reason Rejection
	Side   Side
	From   Coordinate
	To     Coordinate
	Detail string
}

func (e *MoveError) Error() string {
	msg := fmt.Sprintf("%s move %s -> %s: %v", e.Side, e.From, e.To, e.Reason.Err())
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap lets errors.Is match the sentinel for the rejection
func (e *MoveError) Unwrap() error {
	return e.Reason.Err()
}

func reject(reason Rejection, side Side, from, to Coordinate, detail string) *MoveError {
	return &MoveError{Reason: reason, Side: side, From: from, To: to, Detail: detail}
}

// RejectionOf extracts the rejection reason from an error returned by ValidateMove.
// Nil maps to RejectNone; errors that are not rejections also map to RejectNone.
func RejectionOf(err error) Rejection {
	var me *MoveError
	if errors.As(err, &me) {
		return me.Reason
	}
	return RejectNone
}

// WrapGameStateError adds turn and phase context to an error
func WrapGameStateError(turn int, phase string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("game turn %d [%s]: %w", turn, phase, err)
}

// WrapSideError adds the acting side and operation to an error
func WrapSideError(side Side, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", side, operation, err)
}
