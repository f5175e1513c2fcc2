package game

import "github.com/mitchelldurbincs/StrategoElite/internal/game/core"

const (
	// DefaultBoardSize is the classic 10x10 board
	DefaultBoardSize = 10

	// DefaultFirstSide moves first unless configured otherwise
	DefaultFirstSide = core.Red

	// DefaultMaxTurns caps AI-vs-AI matches that shuffle pieces forever
	DefaultMaxTurns = 2000
)

// EndReasonTurnLimit marks a match stopped by the turn cap. The engine
// itself never finishes a game for this reason.
const EndReasonTurnLimit = "turn_limit"
