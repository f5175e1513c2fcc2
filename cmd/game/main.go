package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
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

const human = core.Red

var (
	configPath = flag.String("config", "", "Path to config file")
	env        = flag.String("env", "", "Environment overlay (loads config.<env>.yaml)")
	level      = flag.String("level", "", "AI level for Blue: random, greedy, heuristic or 1-3")
	seed       = flag.Uint64("seed", 0, "Seed for map, deployment and AI (0 = time based)")
	plain      = flag.Bool("plain", false, "Disable ANSI colors")
)

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
	cfg := config.Get()
	setupLogging(cfg.Logging)

	if *level != "" {
		if err := config.Set("ai.blue_level", *level); err != nil {
			log.Fatal().Err(err).Msg("Invalid -level")
		}
	}
	if *seed != 0 {
		if err := config.Set("ai.seed", *seed); err != nil {
			log.Fatal().Err(err).Msg("Invalid -seed")
		}
	}

	e, opponent, err := newGame(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create game")
	}

	log.Info().
		Str("game_id", e.GameID()).
		Str("opponent", opponent.Strategy.Name()).
		Msg("Game ready")

	if err := play(e, opponent, cfg.Development.ShowAllPieces); err != nil {
		log.Fatal().Err(err).Msg("Game aborted")
	}
}

func newGame(cfg *config.Config) (*game.Engine, *ai.Player, error) {
	army, err := cfg.Army()
	if err != nil {
		return nil, nil, err
	}
	rs, err := cfg.Rules()
	if err != nil {
		return nil, nil, err
	}
	clouds, err := cfg.Clouds()
	if err != nil {
		return nil, nil, err
	}
	first, err := cfg.FirstSide()
	if err != nil {
		return nil, nil, err
	}
	lvl, err := cfg.LevelFor(human.Opponent())
	if err != nil {
		return nil, nil, err
	}

	s := cfg.AI.Seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}

	bus := events.NewEventBus(log.Logger)
	if cfg.Development.LogEvents {
		sub := subscribers.NewLoggerSubscriber("game-log", log.Logger, zerolog.DebugLevel)
		sub.SetDevMode(true)
		bus.Subscribe(sub)
	}

	e, err := game.NewEngine(context.Background(), game.GameConfig{
		BoardSize:    cfg.Game.Board.Size,
		Clouds:       clouds,
		RandomClouds: cfg.Game.Board.RandomClouds,
		Army:         army,
		Rules:        rs,
		FirstSide:    first,
		Rng:          rand.New(rand.NewSource(s)),
		Logger:       log.Logger,
		EventBus:     bus,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := e.DeployAll(); err != nil {
		return nil, nil, err
	}

	strategy, err := ai.NewStrategy(lvl, rs, rand.New(rand.NewSource(s+1)))
	if err != nil {
		return nil, nil, err
	}
	opponent := ai.NewPlayer(human.Opponent(), strategy, rules.NewLegalMoveCalculator(rs), log.Logger)
	return e, opponent, nil
}

func play(e *game.Engine, opponent *ai.Player, showAll bool) error {
	viewer := human
	if showAll {
		viewer = core.NoSide
	}
	render := e.Render
	if *plain {
		render = e.RenderPlain
	}

	in := bufio.NewScanner(os.Stdin)
	fmt.Println(render(viewer))
	printHelp()

	for !e.IsGameOver() {
		if e.CurrentSide() != human {
			report, moved, err := e.AIMove(opponent)
			if err != nil {
				return err
			}
			if moved {
				fmt.Println(describe(report))
				fmt.Println(render(viewer))
			}
			continue
		}

		fmt.Print("> ")
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return err
			}
			fmt.Println()
			return nil
		}
		line := strings.TrimSpace(in.Text())

		switch {
		case line == "":
			continue
		case line == "q" || line == "quit":
			return nil
		case line == "help":
			printHelp()
			continue
		case line == "board":
			fmt.Println(render(viewer))
			continue
		case strings.HasPrefix(line, "moves"):
			showDestinations(e, strings.TrimPrefix(line, "moves"))
			continue
		}

		move, err := common.ParseMoveInput(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if ok, reason := e.ValidateMove(human, move.From, move.To); !ok {
			fmt.Printf("illegal move: %s\n", reason)
			continue
		}
		report, err := e.ExecuteMove(move.From, move.To)
		if err != nil {
			return err
		}
		fmt.Println(describe(report))
		fmt.Println(render(viewer))
	}

	fmt.Println(render(core.NoSide))
	return nil
}

func showDestinations(e *game.Engine, arg string) {
	from, err := common.ParseCoordinate(arg)
	if err != nil {
		fmt.Println(err)
		return
	}
	p := e.PieceAt(from)
	if p == nil || p.Side != human {
		fmt.Printf("no %s piece at %s\n", human, from)
		return
	}
	dests := e.LegalDestinations(from)
	if len(dests) == 0 {
		fmt.Printf("%s at %s cannot move\n", p.Rank, from)
		return
	}
	parts := make([]string, len(dests))
	for i, d := range dests {
		parts[i] = d.String()
	}
	fmt.Printf("%s at %s can reach %s\n", p.Rank, from, strings.Join(parts, " "))
}

// describe hides the rank of an enemy piece that simply moved
func describe(r core.MoveReport) string {
	if r.Combat || r.Side == human {
		return r.String()
	}
	return fmt.Sprintf("turn %d: %s moves %s -> %s", r.Turn, r.Side, r.From, r.To)
}

func printHelp() {
	fmt.Println("Enter moves as \"x1 y1 x2 y2\". Other commands: moves x y, board, help, quit")
}

func setupLogging(c config.LoggingConfig) {
	logLevel, err := zerolog.ParseLevel(c.Level)
	if err != nil || c.Level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// Logs go to stderr so they never interleave with the board on stdout
	if c.Format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
