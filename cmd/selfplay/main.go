package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/mitchelldurbincs/StrategoElite/internal/ai"
	"github.com/mitchelldurbincs/StrategoElite/internal/common"
	"github.com/mitchelldurbincs/StrategoElite/internal/config"
	"github.com/mitchelldurbincs/StrategoElite/internal/game"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/events"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/rules"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	configPath = flag.String("config", "", "Path to config file")
	env        = flag.String("env", "", "Environment overlay (loads config.<env>.yaml)")
	games      = flag.Int("games", 0, "Number of games to play (0 = match.games)")
	seed       = flag.Uint64("seed", 0, "Base seed; every game derives its own seeds from it (0 = time based)")
	watch      = flag.Bool("watch", false, "Reload the config file between games when it changes")
	showFinal  = flag.Bool("board", false, "Print the final board of every game")
)

// summary accumulates results across games
type summary struct {
	wins   map[core.Side]int
	draws  int
	turns  []int
	reason map[string]int
}

func newSummary() *summary {
	return &summary{wins: make(map[core.Side]int), reason: make(map[string]int)}
}

func (s *summary) add(r game.MatchResult) {
	s.turns = append(s.turns, r.Turns)
	s.reason[r.Reason]++
	if r.Winner == core.NoSide {
		s.draws++
		return
	}
	s.wins[r.Winner]++
}

func main() {
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	setupLogging(config.Get().Logging)

	var current atomic.Pointer[config.Config]
	current.Store(config.Get())
	if *watch {
		config.WatchConfig(func(c *config.Config) {
			current.Store(c)
			log.Info().Str("file", config.ConfigFilePath()).Msg("Config reloaded, applies from next game")
		}, func(err error) {
			log.Warn().Err(err).Msg("Ignoring invalid config change")
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	n := *games
	if n <= 0 {
		n = current.Load().Match.Games
	}
	base := *seed
	if base == 0 {
		base = uint64(time.Now().UnixNano())
	}

	sum := newSummary()
	start := time.Now()
	for i := 0; i < n; i++ {
		result, err := playOne(ctx, current.Load(), seedsFor(base, i))
		if errors.Is(err, context.Canceled) {
			log.Warn().Int("played", i).Msg("Interrupted")
			break
		}
		if err != nil {
			log.Fatal().Err(err).Int("game", i+1).Msg("Game failed")
		}
		sum.add(result)

		log.Info().
			Int("game", i+1).
			Str("game_id", result.GameID).
			Str("winner", result.Winner.String()).
			Str("reason", result.Reason).
			Int("turns", result.Turns).
			Int("red_pieces", result.Stats[core.Red].Pieces).
			Int("blue_pieces", result.Stats[core.Blue].Pieces).
			Dur("duration", result.Duration).
			Msg("Game finished")
	}

	printSummary(sum, time.Since(start))
}

// gameSeeds are the RNG seeds of one game: the map and deployment, then
// one strategy per side in core.Sides order
type gameSeeds struct {
	board      uint64
	strategies [len(core.Sides)]uint64
}

// seedsFor gives every game its own block of seeds so no two games
// share a random stream
func seedsFor(base uint64, n int) gameSeeds {
	const stride = 1 + len(core.Sides)
	first := base + uint64(n)*uint64(stride)
	s := gameSeeds{board: first}
	for i := range s.strategies {
		s.strategies[i] = first + uint64(i) + 1
	}
	return s
}

func playOne(ctx context.Context, cfg *config.Config, seeds gameSeeds) (game.MatchResult, error) {
	army, err := cfg.Army()
	if err != nil {
		return game.MatchResult{}, err
	}
	rs, err := cfg.Rules()
	if err != nil {
		return game.MatchResult{}, err
	}
	clouds, err := cfg.Clouds()
	if err != nil {
		return game.MatchResult{}, err
	}
	first, err := cfg.FirstSide()
	if err != nil {
		return game.MatchResult{}, err
	}

	bus := events.NewEventBus(log.Logger)
	if cfg.Development.LogEvents {
		bus.Subscribe(subscribers.NewLoggerSubscriber("selfplay-log", log.Logger, zerolog.DebugLevel))
	}

	e, err := game.NewEngine(ctx, game.GameConfig{
		BoardSize:    cfg.Game.Board.Size,
		Clouds:       clouds,
		RandomClouds: cfg.Game.Board.RandomClouds,
		Army:         army,
		Rules:        rs,
		FirstSide:    first,
		Rng:          rand.New(rand.NewSource(seeds.board)),
		Logger:       log.Logger,
		EventBus:     bus,
	})
	if err != nil {
		return game.MatchResult{}, err
	}
	if err := e.DeployAll(); err != nil {
		return game.MatchResult{}, err
	}

	moves := rules.NewLegalMoveCalculator(rs)
	players := make(map[core.Side]*ai.Player, len(core.Sides))
	for i, side := range core.Sides {
		lvl, err := cfg.LevelFor(side)
		if err != nil {
			return game.MatchResult{}, err
		}
		strategy, err := ai.NewStrategy(lvl, rs, rand.New(rand.NewSource(seeds.strategies[i])))
		if err != nil {
			return game.MatchResult{}, err
		}
		players[side] = ai.NewPlayer(side, strategy, moves, log.Logger)
	}

	result, err := game.RunMatch(ctx, e, players, cfg.Match.MaxTurns)
	if err == nil && *showFinal {
		fmt.Println(e.RenderPlain(core.NoSide))
	}
	return result, err
}

func printSummary(s *summary, elapsed time.Duration) {
	played := len(s.turns)
	fmt.Printf("\n%-10s %6s %8s\n", "result", "games", "share")
	for _, side := range core.Sides {
		fmt.Printf("%-10s %6d %7.1f%%\n", side.String()+" wins", s.wins[side], common.Percent(s.wins[side], played))
	}
	fmt.Printf("%-10s %6d %7.1f%%\n", "draws", s.draws, common.Percent(s.draws, played))
	fmt.Printf("\nmean game length: %.1f turns over %d games (%s)\n", common.Mean(s.turns), played, elapsed.Round(time.Millisecond))
	for reason, count := range s.reason {
		fmt.Printf("  %-18s %d\n", reason, count)
	}
}

func setupLogging(c config.LoggingConfig) {
	logLevel, err := zerolog.ParseLevel(c.Level)
	if err != nil || c.Level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if c.Format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}
