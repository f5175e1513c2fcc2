package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchelldurbincs/StrategoElite/internal/ai"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset() {
	cfg = nil
	v = nil
}

func TestInit(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
game:
  board:
    size: 6
    clouds: ["0,2", "5 3"]
  army:
    flag: 1
    bomb: 1
    scout: 2
    miner: 1
    marshal: 1
  first_side: blue
ai:
  level: greedy
  red_level: "3"
  seed: 42
match:
  max_turns: 300
logging:
  format: json
`
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	reset()
	require.NoError(t, Init(configFile))

	c := Get()
	assert.Equal(t, 6, c.Game.Board.Size)
	assert.Equal(t, uint64(42), c.AI.Seed)
	assert.Equal(t, 300, c.Match.MaxTurns)
	assert.Equal(t, "json", c.Logging.Format)

	clouds, err := c.Clouds()
	require.NoError(t, err)
	assert.Equal(t, []core.Coordinate{{X: 0, Y: 2}, {X: 5, Y: 3}}, clouds)

	army, err := c.Army()
	require.NoError(t, err)
	assert.Equal(t, 6, army.Total())
	assert.Equal(t, 2, army[core.RankScout])

	side, err := c.FirstSide()
	require.NoError(t, err)
	assert.Equal(t, core.Blue, side)

	red, err := c.LevelFor(core.Red)
	require.NoError(t, err)
	assert.Equal(t, ai.LevelHeuristic, red)
	blue, err := c.LevelFor(core.Blue)
	require.NoError(t, err)
	assert.Equal(t, ai.LevelGreedy, blue)
}

func TestInitWithDefaults(t *testing.T) {
	reset()

	require.NoError(t, Init("/non/existent/path/config.yaml"))

	c := Get()
	assert.Equal(t, 10, c.Game.Board.Size)
	assert.Equal(t, 2000, c.Match.MaxTurns)
	assert.Equal(t, "console", c.Logging.Format)
	assert.False(t, c.Development.ShowAllPieces)

	army, err := c.Army()
	require.NoError(t, err)
	assert.Equal(t, core.DefaultArmy(), army)

	rules, err := c.Rules()
	require.NoError(t, err)
	assert.Equal(t, core.DefaultRules(), rules)

	side, err := c.FirstSide()
	require.NoError(t, err)
	assert.Equal(t, core.Red, side)
}

func TestEnvironmentVariables(t *testing.T) {
	reset()

	t.Setenv("SSE_GAME_BOARD_SIZE", "8")
	t.Setenv("SSE_AI_BLUE_LEVEL", "random")
	t.Setenv("SSE_MATCH_MAX_TURNS", "50")

	require.NoError(t, Init("/non/existent/path/config.yaml"))

	c := Get()
	assert.Equal(t, 8, c.Game.Board.Size)
	assert.Equal(t, 50, c.Match.MaxTurns)
	level, err := c.LevelFor(core.Blue)
	require.NoError(t, err)
	assert.Equal(t, ai.LevelRandom, level)
}

func TestSet(t *testing.T) {
	reset()
	require.NoError(t, Init("/non/existent/path/config.yaml"))

	c := Get()
	require.NoError(t, Set("match.max_turns", 123))
	require.NoError(t, Set("development.log_events", true))

	assert.Equal(t, 123, c.Match.MaxTurns)
	assert.True(t, c.Development.LogEvents)
	assert.Same(t, c, Get())
}

func TestSet_RejectsInvalidOverride(t *testing.T) {
	reset()
	require.NoError(t, Init("/non/existent/path/config.yaml"))

	err := Set("ai.blue_level", "genius")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ai.blue_level")

	err = Set("match.max_turns", 0)
	require.Error(t, err)

	c := Get()
	assert.Equal(t, "", c.AI.BlueLevel)
	assert.Equal(t, 2000, c.Match.MaxTurns)
	require.NoError(t, Validate(c))

	// a rejected override does not linger for the next change
	require.NoError(t, Set("development.show_all_pieces", true))
	assert.Equal(t, 2000, Get().Match.MaxTurns)
}

func TestValidate(t *testing.T) {
	valid := func(t *testing.T) *Config {
		reset()
		require.NoError(t, Init("/non/existent/path/config.yaml"))
		c := *Get()
		return &c
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"odd board", func(c *Config) { c.Game.Board.Size = 7 }},
		{"tiny board", func(c *Config) { c.Game.Board.Size = 4 }},
		{"negative random clouds", func(c *Config) { c.Game.Board.RandomClouds = -1 }},
		{"bad cloud", func(c *Config) { c.Game.Board.Clouds = []string{"one,two"} }},
		{"unknown rank in army", func(c *Config) { c.Game.Army = map[string]int{"admiral": 1} }},
		{"negative army count", func(c *Config) { c.Game.Army = map[string]int{"flag": 1, "scout": -2} }},
		{"immobile defuser", func(c *Config) { c.Game.Rules.Immobile = []string{"flag", "miner"} }},
		{"mobile flag", func(c *Config) { c.Game.Rules.Immobile = []string{"bomb"} }},
		{"unknown long range", func(c *Config) { c.Game.Rules.LongRange = "archer" }},
		{"bad first side", func(c *Config) { c.Game.FirstSide = "green" }},
		{"bad ai level", func(c *Config) { c.AI.Level = "7" }},
		{"bad red level", func(c *Config) { c.AI.RedLevel = "genius" }},
		{"zero max turns", func(c *Config) { c.Match.MaxTurns = 0 }},
		{"zero games", func(c *Config) { c.Match.Games = 0 }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid(t)
			require.NoError(t, Validate(c))
			tt.mutate(c)
			assert.Error(t, Validate(c))
		})
	}
}

func TestInvalidFileRejected(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("game:\n  board:\n    size: 5\n"), 0644))

	reset()
	err := Init(configFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.board.size")
}

func TestLoadEnvironmentConfig(t *testing.T) {
	tmpDir := t.TempDir()

	baseConfig := filepath.Join(tmpDir, "config.yaml")
	baseContent := `
game:
  board:
    size: 10
match:
  max_turns: 500
`
	require.NoError(t, os.WriteFile(baseConfig, []byte(baseContent), 0644))

	envConfig := filepath.Join(tmpDir, "config.tournament.yaml")
	envContent := `
match:
  max_turns: 1000
ai:
  level: heuristic
development:
  log_events: true
`
	require.NoError(t, os.WriteFile(envConfig, []byte(envContent), 0644))

	oldWd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(oldWd) }()

	reset()
	require.NoError(t, Init(baseConfig))
	require.NoError(t, LoadEnvironmentConfig("tournament"))

	c := Get()
	assert.Equal(t, 10, c.Game.Board.Size)
	assert.Equal(t, 1000, c.Match.MaxTurns)
	assert.True(t, c.Development.LogEvents)

	assert.NoError(t, LoadEnvironmentConfig(""))
}

func TestLoadEnvironmentConfig_MissingOverlay(t *testing.T) {
	tmpDir := t.TempDir()
	baseConfig := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(baseConfig, []byte("match:\n  max_turns: 700\n"), 0644))

	oldWd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(oldWd) }()

	reset()
	require.NoError(t, Init(baseConfig))
	require.NoError(t, LoadEnvironmentConfig("nosuchenv"))

	assert.Equal(t, 700, Get().Match.MaxTurns)
	assert.Equal(t, baseConfig, ConfigFilePath())
}
