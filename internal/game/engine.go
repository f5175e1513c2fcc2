package game

import (
	"context"
	"fmt"

	"github.com/mitchelldurbincs/StrategoElite/internal/ai"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/deploy"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/events"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/rules"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/states"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// GameConfig holds configuration for creating a new game engine
type GameConfig struct {
	BoardSize    int
	Clouds       []core.Coordinate
	RandomClouds int
	Army         core.ArmyComposition
	Rules        core.RuleSet
	FirstSide    core.Side
	Rng          *rand.Rand
	Logger       zerolog.Logger
	GameID       string           // generated when empty
	EventBus     *events.EventBus // optional, shared with external subscribers
}

// Engine owns one game: its board, whose turn it is, the phase and the
// move history. Engine methods are not safe for concurrent use.
type Engine struct {
	gs            *GameState
	rules         core.RuleSet
	army          core.ArmyComposition
	rng           *rand.Rand
	logger        zerolog.Logger
	gameID        string
	firstSide     core.Side
	legalMoves    *rules.LegalMoveCalculator
	winCondition  *rules.WinConditionChecker
	planner       *deploy.Planner
	eventBus      *events.EventBus
	stateMachine  *states.StateMachine
	turnProcessor *TurnProcessor
}

// NewEngine creates a game in the Setup phase with an empty board
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// GameID returns the unique id of this game
func (e *Engine) GameID() string { return e.gameID }

// EventBus returns the bus the engine publishes on
func (e *Engine) EventBus() *events.EventBus { return e.eventBus }

// Rules returns the rule set in force
func (e *Engine) Rules() core.RuleSet { return e.rules }

// Place puts a single piece on the board during Setup. Used for hand-built
// positions; Deploy is the normal way to fill a home zone.
func (e *Engine) Place(side core.Side, rank core.Rank, c core.Coordinate) (*core.Piece, error) {
	if phase := e.Phase(); !phase.CanDeploy() {
		return nil, core.WrapGameStateError(e.gs.Turn, phase.String(), fmt.Errorf("cannot place pieces outside setup"))
	}
	board := e.gs.Board
	if !board.Contains(c) {
		return nil, fmt.Errorf("place %s: %w", c, core.ErrOutOfBounds)
	}
	if board.TerrainAt(c) == core.TerrainLake {
		return nil, fmt.Errorf("place %s: %w", c, core.ErrLakeDestination)
	}
	if board.PieceAt(c) != nil {
		return nil, fmt.Errorf("place %s: cell occupied", c)
	}
	p := core.NewPiece(e.nextPieceID(), rank, side, e.rules)
	board.Place(p, c)
	return p, nil
}

// Deploy fills side's home zone using the deployment planner
func (e *Engine) Deploy(side core.Side) error {
	phase := e.Phase()
	if !phase.CanDeploy() {
		return core.WrapGameStateError(e.gs.Turn, phase.String(), fmt.Errorf("cannot deploy outside setup"))
	}
	if e.stateMachine.GetContext().Deployed[side] {
		return core.WrapSideError(side, "deploy", core.ErrAlreadyDeployed)
	}
	if err := e.planner.Deploy(e.gs.Board, side); err != nil {
		return err
	}
	if err := e.stateMachine.MarkDeployed(side); err != nil {
		return err
	}

	pieces := e.gs.Board.CountPieces(side)
	e.eventBus.Publish(events.NewArmyDeployedEvent(e.gameID, side, pieces))
	e.logger.Info().Str("side", side.String()).Int("pieces", pieces).Msg("Army deployed")
	return nil
}

// DeployAll deploys every side that has not deployed yet and starts the game
func (e *Engine) DeployAll() error {
	for _, side := range core.Sides {
		if e.stateMachine.GetContext().Deployed[side] {
			continue
		}
		if err := e.Deploy(side); err != nil {
			return err
		}
	}
	return e.Start()
}

// Start ends Setup. Sides placed by hand count as deployed once they have
// at least one piece on the board.
func (e *Engine) Start() error {
	ctx := e.stateMachine.GetContext()
	for _, side := range core.Sides {
		if !ctx.Deployed[side] && e.gs.Board.CountPieces(side) > 0 {
			if err := e.stateMachine.MarkDeployed(side); err != nil {
				return err
			}
		}
	}
	if err := e.stateMachine.TransitionTo(states.PhaseInProgress, "Both armies deployed"); err != nil {
		return core.WrapGameStateError(e.gs.Turn, e.Phase().String(), err)
	}
	e.gs.Phase = states.PhaseInProgress
	e.gs.CurrentSide = e.firstSide

	e.eventBus.Publish(events.NewGameStartedEvent(e.gameID, e.gs.Board.Size, e.firstSide, map[core.Side]int{
		core.Red:  e.gs.Board.CountPieces(core.Red),
		core.Blue: e.gs.Board.CountPieces(core.Blue),
	}))
	e.logger.Info().
		Int("board_size", e.gs.Board.Size).
		Str("first_side", e.firstSide.String()).
		Msg("Game started")

	if over, winner, reason := e.winCondition.CheckStuck(e.gs.Board, e.firstSide); over {
		return e.finish(winner, reason.String())
	}
	return nil
}

// ValidateMove checks a proposed move for side without changing anything.
// Outside InProgress every move is refused with RejectNone; ExecuteMove
// reports the lifecycle error in that case.
func (e *Engine) ValidateMove(side core.Side, from, to core.Coordinate) (bool, core.Rejection) {
	if !e.Phase().CanReceiveMoves() {
		return false, core.RejectNone
	}
	err := core.ValidateMove(e.gs.Board, e.rules, side, from, to)
	switch reason := core.RejectionOf(err); {
	case reason == core.RejectOutOfBounds || reason == core.RejectNoPieceAtStart:
		return false, reason
	case side != e.gs.CurrentSide:
		return false, core.RejectWrongTurn
	case err != nil:
		return false, reason
	}
	return true, core.RejectNone
}

// ExecuteMove validates and plays a move for the side on turn
func (e *Engine) ExecuteMove(from, to core.Coordinate) (core.MoveReport, error) {
	return e.turnProcessor.ProcessMove(core.Move{From: from, To: to})
}

// AIMove asks player for a move and plays it. When the player has no legal
// move the game ends in the opponent's favour and false is returned.
func (e *Engine) AIMove(player *ai.Player) (core.MoveReport, bool, error) {
	if err := e.turnProcessor.validateGameState(); err != nil {
		return core.MoveReport{}, false, err
	}
	if player.Side != e.gs.CurrentSide {
		return core.MoveReport{}, false, core.WrapSideError(player.Side, "ai move", core.ErrWrongTurn)
	}

	move, ok := player.NextMove(e.gs.Board)
	if !ok {
		if err := e.finish(player.Side.Opponent(), rules.EndNoLegalMoves.String()); err != nil {
			return core.MoveReport{}, false, err
		}
		return core.MoveReport{}, false, nil
	}

	report, err := e.ExecuteMove(move.From, move.To)
	if err != nil {
		return core.MoveReport{}, false, err
	}
	return report, true, nil
}

// LegalMoves returns every legal move for side on the current board
func (e *Engine) LegalMoves(side core.Side) []core.Move {
	return e.legalMoves.LegalMoves(e.gs.Board, side)
}

// LegalDestinations returns where the piece at from may move
func (e *Engine) LegalDestinations(from core.Coordinate) []core.Coordinate {
	return e.legalMoves.LegalDestinations(e.gs.Board, from)
}

// PieceAt returns the piece at c with its true rank, nil if none
func (e *Engine) PieceAt(c core.Coordinate) *core.Piece {
	return e.gs.Board.PieceAt(c)
}

// Public accessors
func (e *Engine) Phase() states.GamePhase { return e.stateMachine.CurrentPhase() }
func (e *Engine) CurrentSide() core.Side  { return e.gs.CurrentSide }
func (e *Engine) Winner() core.Side       { return e.stateMachine.Winner() }
func (e *Engine) IsGameOver() bool        { return e.Phase() == states.PhaseFinished }
func (e *Engine) Turn() int               { return e.gs.Turn }

// Snapshot returns a deep copy of the game state
func (e *Engine) Snapshot() GameState {
	snap := *e.gs.Clone()
	snap.Phase = e.Phase()
	snap.Winner = e.Winner()
	return snap
}

// History returns a copy of the executed moves in order
func (e *Engine) History() []core.MoveReport {
	out := make([]core.MoveReport, len(e.gs.History))
	copy(out, e.gs.History)
	return out
}

// StateHistory returns the phase transitions so far
func (e *Engine) StateHistory() []states.Transition {
	return e.stateMachine.GetHistory()
}

// finish moves the game to Finished and announces the result
func (e *Engine) finish(winner core.Side, reason string) error {
	if err := e.stateMachine.Finish(winner, reason); err != nil {
		return core.WrapGameStateError(e.gs.Turn, e.Phase().String(), err)
	}
	e.gs.Phase = states.PhaseFinished
	e.gs.Winner = winner
	e.gs.EndReason = reason

	ctx := e.stateMachine.GetContext()
	e.eventBus.Publish(events.NewGameEndedEvent(e.gameID, winner, reason, ctx.GetElapsedTime(), e.gs.Turn))
	e.logger.Info().
		Str("winner", winner.String()).
		Str("reason", reason).
		Int("final_turn", e.gs.Turn).
		Msg("Game over")
	return nil
}

func (e *Engine) nextPieceID() int {
	maxID := 0
	for _, pp := range e.gs.Board.Pieces(core.NoSide) {
		if pp.Piece.ID > maxID {
			maxID = pp.Piece.ID
		}
	}
	return maxID + 1
}
