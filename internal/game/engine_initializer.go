package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/deploy"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/events"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/mapgen"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/rules"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/states"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// EngineInitializer handles the initialization of a game engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// Initialize creates an engine in the Setup phase
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled or timed out during initial phase")
		return nil, ctx.Err()
	default:
	}

	ei.setupDefaults()

	if err := ei.config.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule set: %w", err)
	}
	if ei.config.FirstSide != core.Red && ei.config.FirstSide != core.Blue {
		return nil, fmt.Errorf("invalid first side %s", ei.config.FirstSide)
	}

	board, err := ei.generateMap()
	if err != nil {
		return nil, fmt.Errorf("map generation failed: %w", err)
	}

	engine := ei.createEngine(board)

	ei.logger.Info().
		Str("game_id", engine.gameID).
		Int("board_size", board.Size).
		Str("first_side", engine.firstSide.String()).
		Int("army_size", ei.config.Army.Total()).
		Msg("Engine created successfully")

	return engine, nil
}

// setupDefaults fills in zero-valued configuration
func (ei *EngineInitializer) setupDefaults() {
	if ei.config.Rng == nil {
		ei.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		ei.config.Rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if ei.config.GameID == "" {
		ei.config.GameID = uuid.New().String()
	}
	if ei.config.BoardSize == 0 {
		ei.config.BoardSize = DefaultBoardSize
	}
	if len(ei.config.Rules.Immobile) == 0 {
		ei.config.Rules = core.DefaultRules()
	}
	if ei.config.Army == nil {
		ei.config.Army = core.DefaultArmy()
	}
	if ei.config.FirstSide == core.NoSide {
		ei.config.FirstSide = DefaultFirstSide
	}
	if ei.config.EventBus == nil {
		ei.config.EventBus = events.NewEventBus(ei.config.Logger)
	}
}

// generateMap lays out lakes and clouds on an empty board
func (ei *EngineInitializer) generateMap() (*core.Board, error) {
	mapCfg := mapgen.MapConfig{
		Size:         ei.config.BoardSize,
		Clouds:       ei.config.Clouds,
		RandomClouds: ei.config.RandomClouds,
	}
	generator := mapgen.NewGenerator(mapCfg, ei.config.Rng)
	return generator.GenerateBoard()
}

// createEngine creates the engine with all its components
func (ei *EngineInitializer) createEngine(board *core.Board) *Engine {
	legalMoves := rules.NewLegalMoveCalculator(ei.config.Rules)

	gameContext := states.NewGameContext(ei.config.GameID, ei.logger)
	stateMachine := states.NewStateMachine(gameContext, ei.config.EventBus)

	engine := &Engine{
		gs: &GameState{
			Board:       board,
			CurrentSide: ei.config.FirstSide,
			Phase:       states.PhaseSetup,
			Winner:      core.NoSide,
		},
		rules:        ei.config.Rules,
		army:         ei.config.Army,
		rng:          ei.config.Rng,
		logger:       ei.logger.With().Str("game_id", ei.config.GameID).Logger(),
		gameID:       ei.config.GameID,
		firstSide:    ei.config.FirstSide,
		legalMoves:   legalMoves,
		winCondition: rules.NewWinConditionChecker(ei.logger, legalMoves),
		planner:      deploy.NewPlanner(ei.config.Army, ei.config.Rules, ei.config.Rng, ei.logger),
		eventBus:     ei.config.EventBus,
		stateMachine: stateMachine,
	}
	engine.turnProcessor = NewTurnProcessor(engine)

	return engine
}
