package events

import (
	"time"

	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameEnded       = "game.ended"
	TypeArmyDeployed    = "army.deployed"
	TypeMoveExecuted    = "move.executed"
	TypeMoveRejected    = "move.rejected"
	TypeCombatResolved  = "combat.resolved"
	TypeTurnChanged     = "turn.changed"
	TypeStateTransition = "state.transition"
)

// GameStartedEvent is published when play begins after both armies are deployed
type GameStartedEvent struct {
	BaseEvent
	BoardSize     int
	FirstSide     core.Side
	PiecesPerSide map[core.Side]int
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, boardSize int, firstSide core.Side, pieces map[core.Side]int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:     newBase(TypeGameStarted, gameID),
		BoardSize:     boardSize,
		FirstSide:     firstSide,
		PiecesPerSide: pieces,
	}
}

// GameEndedEvent is published when a game ends
type GameEndedEvent struct {
	BaseEvent
	Winner    core.Side
	Reason    string
	Duration  time.Duration
	FinalTurn int
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, winner core.Side, reason string, duration time.Duration, finalTurn int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBase(TypeGameEnded, gameID),
		Winner:    winner,
		Reason:    reason,
		Duration:  duration,
		FinalTurn: finalTurn,
	}
}

// ArmyDeployedEvent is published when a side's army has been placed in its home zone
type ArmyDeployedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Pieces   int
}

// NewArmyDeployedEvent creates a new ArmyDeployedEvent
func NewArmyDeployedEvent(gameID string, side core.Side, pieces int) *ArmyDeployedEvent {
	return &ArmyDeployedEvent{
		BaseEvent: newBase(TypeArmyDeployed, gameID),
		Metadata:  EventMetadata{Side: side},
		Pieces:    pieces,
	}
}

// MoveExecutedEvent is published when a move is executed
type MoveExecutedEvent struct {
	BaseEvent
	Metadata EventMetadata
	From     core.Coordinate
	To       core.Coordinate
	Rank     core.Rank
	Outcome  core.Outcome
}

// NewMoveExecutedEvent creates a new MoveExecutedEvent from the engine's report
func NewMoveExecutedEvent(gameID string, report core.MoveReport) *MoveExecutedEvent {
	return &MoveExecutedEvent{
		BaseEvent: newBase(TypeMoveExecuted, gameID),
		Metadata:  EventMetadata{Side: report.Side, Turn: report.Turn},
		From:      report.From,
		To:        report.To,
		Rank:      report.Attacker.Rank,
		Outcome:   report.Outcome,
	}
}

// MoveRejectedEvent is published when a proposed move fails validation
type MoveRejectedEvent struct {
	BaseEvent
	Metadata EventMetadata
	From     core.Coordinate
	To       core.Coordinate
	Reason   core.Rejection
}

// NewMoveRejectedEvent creates a new MoveRejectedEvent
func NewMoveRejectedEvent(gameID string, side core.Side, from, to core.Coordinate, reason core.Rejection, turn int) *MoveRejectedEvent {
	return &MoveRejectedEvent{
		BaseEvent: newBase(TypeMoveRejected, gameID),
		Metadata:  EventMetadata{Side: side, Turn: turn},
		From:      from,
		To:        to,
		Reason:    reason,
	}
}

// CombatResolvedEvent is published when combat occurs
type CombatResolvedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Location core.Coordinate
	Attacker core.PieceInfo
	Defender core.PieceInfo
	Outcome  core.Outcome
	Message  string
}

// NewCombatResolvedEvent creates a new CombatResolvedEvent from the engine's report
func NewCombatResolvedEvent(gameID string, report core.MoveReport) *CombatResolvedEvent {
	return &CombatResolvedEvent{
		BaseEvent: newBase(TypeCombatResolved, gameID),
		Metadata:  EventMetadata{Side: report.Side, Turn: report.Turn},
		Location:  report.To,
		Attacker:  report.Attacker,
		Defender:  report.Defender,
		Outcome:   report.Outcome,
		Message:   report.Message,
	}
}

// TurnChangedEvent is published when the side to move changes
type TurnChangedEvent struct {
	BaseEvent
	Metadata EventMetadata
}

// NewTurnChangedEvent creates a new TurnChangedEvent
func NewTurnChangedEvent(gameID string, side core.Side, turn int) *TurnChangedEvent {
	return &TurnChangedEvent{
		BaseEvent: newBase(TypeTurnChanged, gameID),
		Metadata:  EventMetadata{Side: side, Turn: turn},
	}
}

// StateTransitionEvent is published when the game state machine transitions between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
