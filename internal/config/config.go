package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchelldurbincs/StrategoElite/internal/ai"
	"github.com/mitchelldurbincs/StrategoElite/internal/common"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	AI          AIConfig          `mapstructure:"ai"`
	Match       MatchConfig       `mapstructure:"match"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds board and rules configuration
type GameConfig struct {
	Board     BoardConfig    `mapstructure:"board"`
	Army      map[string]int `mapstructure:"army"`
	Rules     RulesConfig    `mapstructure:"rules"`
	FirstSide string         `mapstructure:"first_side"`
}

// BoardConfig holds terrain settings. Clouds are "x,y" strings.
type BoardConfig struct {
	Size         int      `mapstructure:"size"`
	Clouds       []string `mapstructure:"clouds"`
	RandomClouds int      `mapstructure:"random_clouds"`
}

// RulesConfig names the special ranks
type RulesConfig struct {
	Immobile       []string `mapstructure:"immobile"`
	Defuser        string   `mapstructure:"defuser"`
	Assassin       string   `mapstructure:"assassin"`
	AssassinTarget string   `mapstructure:"assassin_target"`
	LongRange      string   `mapstructure:"long_range"`
}

// AIConfig holds computer player settings. Per-side levels fall back to Level.
type AIConfig struct {
	Level     string `mapstructure:"level"`
	RedLevel  string `mapstructure:"red_level"`
	BlueLevel string `mapstructure:"blue_level"`
	Seed      uint64 `mapstructure:"seed"`
}

// MatchConfig holds self-play settings
type MatchConfig struct {
	MaxTurns int `mapstructure:"max_turns"`
	Games    int `mapstructure:"games"`
}

// LoggingConfig holds zerolog settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	ShowAllPieces bool `mapstructure:"show_all_pieces"`
	LogEvents     bool `mapstructure:"log_events"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.board.size", 10)
	v.SetDefault("game.board.clouds", []string{})
	v.SetDefault("game.board.random_clouds", 0)
	v.SetDefault("game.first_side", "red")

	v.SetDefault("game.rules.immobile", []string{"flag", "bomb"})
	v.SetDefault("game.rules.defuser", "miner")
	v.SetDefault("game.rules.assassin", "spy")
	v.SetDefault("game.rules.assassin_target", "marshal")
	v.SetDefault("game.rules.long_range", "scout")

	v.SetDefault("ai.level", "heuristic")
	v.SetDefault("ai.red_level", "")
	v.SetDefault("ai.blue_level", "")
	v.SetDefault("ai.seed", 0)

	v.SetDefault("match.max_turns", 2000)
	v.SetDefault("match.games", 10)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("development.show_all_pieces", false)
	v.SetDefault("development.log_events", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/stratego-elite")
	}

	v.SetEnvPrefix("SSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing explicit file falls back to defaults like the search path does
		var notFound viper.ConfigFileNotFoundError
		if configPath == "" && !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded configuration
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	base := v.ConfigFileUsed()
	v.SetConfigFile(envFile)
	err := v.MergeInConfig()
	// keep watching the base file
	v.SetConfigFile(base)
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	merged := &Config{}
	if err := v.Unmarshal(merged); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}
	if err := Validate(merged); err != nil {
		return fmt.Errorf("merged config validation failed: %w", err)
	}
	cfg = merged
	return nil
}

// Set applies a runtime override. An override that fails to decode or
// validate is rolled back and the current config is left unchanged.
func Set(key string, value interface{}) error {
	prev := v.Get(key)
	v.Set(key, value)

	next := &Config{}
	err := v.Unmarshal(next)
	if err == nil {
		err = Validate(next)
	}
	if err != nil {
		v.Set(key, prev)
		return fmt.Errorf("set %s: %w", key, err)
	}
	*cfg = *next
	return nil
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig reloads the config file whenever it changes on disk. onChange
// receives the freshly validated config; invalid edits are reported through
// onError and the previous config stays active.
func WatchConfig(onChange func(*Config), onError func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		next := &Config{}
		err := v.Unmarshal(next)
		if err == nil {
			err = Validate(next)
		}
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		cfg = next
		if onChange != nil {
			onChange(next)
		}
	})
	v.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.Board.Size < 6 || c.Game.Board.Size%2 != 0 {
		return fmt.Errorf("game.board.size must be an even number >= 6, got %d", c.Game.Board.Size)
	}
	if c.Game.Board.RandomClouds < 0 {
		return fmt.Errorf("game.board.random_clouds must be non-negative")
	}
	if _, err := c.Clouds(); err != nil {
		return err
	}
	if _, err := c.Army(); err != nil {
		return err
	}
	rules, err := c.Rules()
	if err != nil {
		return err
	}
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("game.rules: %w", err)
	}
	if _, err := c.FirstSide(); err != nil {
		return err
	}

	for _, side := range core.Sides {
		if _, err := c.LevelFor(side); err != nil {
			return err
		}
	}

	if c.Match.MaxTurns <= 0 {
		return fmt.Errorf("match.max_turns must be positive")
	}
	if c.Match.Games <= 0 {
		return fmt.Errorf("match.games must be positive")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

// Clouds parses game.board.clouds
func (c *Config) Clouds() ([]core.Coordinate, error) {
	out := make([]core.Coordinate, 0, len(c.Game.Board.Clouds))
	for _, s := range c.Game.Board.Clouds {
		coord, err := common.ParseCoordinate(s)
		if err != nil {
			return nil, fmt.Errorf("game.board.clouds: %w", err)
		}
		out = append(out, coord)
	}
	return out, nil
}

// Army returns game.army as a composition, or the classic army when unset
func (c *Config) Army() (core.ArmyComposition, error) {
	if len(c.Game.Army) == 0 {
		return core.DefaultArmy(), nil
	}
	army := make(core.ArmyComposition, len(c.Game.Army))
	for name, count := range c.Game.Army {
		rank, err := core.ParseRank(name)
		if err != nil {
			return nil, fmt.Errorf("game.army: %w", err)
		}
		if count < 0 {
			return nil, fmt.Errorf("game.army.%s must be non-negative", name)
		}
		army[rank] = count
	}
	return army, nil
}

// Rules returns game.rules as a rule set
func (c *Config) Rules() (core.RuleSet, error) {
	r := c.Game.Rules
	var rules core.RuleSet
	for _, name := range r.Immobile {
		rank, err := core.ParseRank(name)
		if err != nil {
			return core.RuleSet{}, fmt.Errorf("game.rules.immobile: %w", err)
		}
		rules.Immobile = append(rules.Immobile, rank)
	}

	special := []struct {
		key  string
		name string
		dst  *core.Rank
	}{
		{"defuser", r.Defuser, &rules.Defuser},
		{"assassin", r.Assassin, &rules.Assassin},
		{"assassin_target", r.AssassinTarget, &rules.AssassinTarget},
		{"long_range", r.LongRange, &rules.LongRange},
	}
	for _, s := range special {
		rank, err := core.ParseRank(s.name)
		if err != nil {
			return core.RuleSet{}, fmt.Errorf("game.rules.%s: %w", s.key, err)
		}
		*s.dst = rank
	}
	return rules, nil
}

// FirstSide parses game.first_side
func (c *Config) FirstSide() (core.Side, error) {
	side, err := core.ParseSide(c.Game.FirstSide)
	if err != nil {
		return core.NoSide, fmt.Errorf("game.first_side: %w", err)
	}
	return side, nil
}

// LevelFor returns the AI level for a side, using ai.red_level or
// ai.blue_level when set and ai.level otherwise
func (c *Config) LevelFor(side core.Side) (ai.Level, error) {
	key, raw := "ai.level", c.AI.Level
	switch side {
	case core.Red:
		if c.AI.RedLevel != "" {
			key, raw = "ai.red_level", c.AI.RedLevel
		}
	case core.Blue:
		if c.AI.BlueLevel != "" {
			key, raw = "ai.blue_level", c.AI.BlueLevel
		}
	}
	level, err := ai.ParseLevel(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return level, nil
}
