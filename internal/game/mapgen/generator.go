package mapgen

import (
	"fmt"

	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"golang.org/x/exp/rand"
)

// MinBoardSize is the smallest board that leaves a home zone on each side of the lakes
const MinBoardSize = 6

// MapConfig holds configuration for terrain generation
type MapConfig struct {
	Size         int
	Clouds       []core.Coordinate // fixed cloud cells
	RandomClouds int               // extra clouds scattered over the neutral rows
}

// DefaultMapConfig returns the classic layout with no clouds
func DefaultMapConfig(size int) MapConfig {
	return MapConfig{Size: size}
}

// Validate checks the config can produce a playable board
func (c MapConfig) Validate() error {
	if c.Size < MinBoardSize {
		return fmt.Errorf("board size %d below minimum %d", c.Size, MinBoardSize)
	}
	if c.Size%2 != 0 {
		return fmt.Errorf("board size %d must be even", c.Size)
	}
	for _, cl := range c.Clouds {
		if !cl.IsValid(c.Size) {
			return fmt.Errorf("cloud %s outside %dx%d board", cl, c.Size, c.Size)
		}
	}
	if c.RandomClouds < 0 {
		return fmt.Errorf("random clouds must be non-negative, got %d", c.RandomClouds)
	}
	return nil
}

// Generator builds boards with deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new terrain generator. rng may be nil when
// RandomClouds is zero.
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// GenerateBoard creates an empty board with lakes and clouds laid out
func (g *Generator) GenerateBoard() (*core.Board, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}
	if g.config.RandomClouds > 0 && g.rng == nil {
		return nil, fmt.Errorf("random clouds requested without an rng")
	}

	board := core.NewBoard(g.config.Size)
	for _, c := range LakeCells(g.config.Size) {
		board.SetTerrain(c, core.TerrainLake)
	}
	for _, c := range g.config.Clouds {
		g.placeCloud(board, c)
	}
	g.scatterClouds(board)

	return board, nil
}

// LakeCells returns the two 2x2 lake blocks in the middle rows
func LakeCells(size int) []core.Coordinate {
	rows := []int{size/2 - 1, size / 2}
	cols := []int{1, 2, size - 3, size - 2}
	out := make([]core.Coordinate, 0, len(rows)*len(cols))
	for _, y := range rows {
		for _, x := range cols {
			out = append(out, core.Coordinate{X: x, Y: y})
		}
	}
	return out
}

// placeCloud marks c as cloud unless it is a lake
func (g *Generator) placeCloud(b *core.Board, c core.Coordinate) bool {
	if b.TerrainAt(c) != core.TerrainEmpty {
		return false
	}
	b.SetTerrain(c, core.TerrainCloud)
	return true
}

func (g *Generator) scatterClouds(b *core.Board) {
	want := g.config.RandomClouds
	if want == 0 {
		return
	}

	// neutral rows sit between the two home zones
	depth := core.HomeDepth(b.Size)
	first, rows := depth, b.Size-2*depth

	placed := 0
	maxAttempts := want * 20
	for attempts := 0; placed < want && attempts < maxAttempts; attempts++ {
		c := core.Coordinate{X: g.rng.Intn(b.Size), Y: first + g.rng.Intn(rows)}
		if g.placeCloud(b, c) {
			placed++
		}
	}
}
