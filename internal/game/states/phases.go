package states

import "fmt"

// GamePhase represents the current phase of a game
type GamePhase int

const (
	// PhaseSetup - armies are being deployed
	PhaseSetup GamePhase = iota

	// PhaseInProgress - sides alternate moves
	PhaseInProgress

	// PhaseFogStorm - reserved for timed cloud cover. No phase transitions into it.
	PhaseFogStorm

	// PhaseFinished - a winner has been decided; terminal
	PhaseFinished
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseInProgress:
		return "InProgress"
	case PhaseFogStorm:
		return "FogStorm"
	case PhaseFinished:
		return "Finished"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseFinished
}

// CanReceiveMoves returns true if the game can process moves in this phase
func (p GamePhase) CanReceiveMoves() bool {
	return p == PhaseInProgress
}

// CanDeploy returns true if armies may still be placed
func (p GamePhase) CanDeploy() bool {
	return p == PhaseSetup
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseSetup:
		return []GamePhase{PhaseInProgress}
	case PhaseInProgress:
		return []GamePhase{PhaseFinished}
	case PhaseFogStorm:
		return []GamePhase{PhaseInProgress, PhaseFinished}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a GamePhase
func ParsePhase(s string) (GamePhase, error) {
	for p := PhaseSetup; p <= PhaseFinished; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return PhaseSetup, fmt.Errorf("unknown phase %q", s)
}
