// Package deploy places a side's army in its home zone before play starts.
package deploy

import (
	"fmt"

	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Planner deploys armies with a few placement heuristics: the flag on the back
// row walled in by bombs, fast and bomb-clearing pieces up front, the rest shuffled.
type Planner struct {
	army   core.ArmyComposition
	rules  core.RuleSet
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewPlanner creates a planner drawing all random choices from rng
func NewPlanner(army core.ArmyComposition, rules core.RuleSet, rng *rand.Rand, logger zerolog.Logger) *Planner {
	return &Planner{
		army:   army,
		rules:  rules,
		rng:    rng,
		logger: logger.With().Str("component", "DeploymentPlanner").Logger(),
	}
}

// Deploy fills every home cell of side with exactly one piece.
// The board must have the side's home zone empty.
func (p *Planner) Deploy(board *core.Board, side core.Side) error {
	home := board.HomeCells(side)
	if err := p.army.Validate(len(home)); err != nil {
		return core.WrapSideError(side, "deploy", err)
	}
	for _, c := range home {
		if board.PieceAt(c) != nil {
			return core.WrapSideError(side, "deploy", fmt.Errorf("%w: home cell %s occupied", core.ErrAlreadyDeployed, c))
		}
	}

	d := &deployment{
		board:  board,
		side:   side,
		rules:  p.rules,
		rng:    p.rng,
		free:   append([]core.Coordinate(nil), home...),
		nextID: nextPieceID(board),
	}

	rows := core.HomeRows(side, board.Size)
	backRow := rows[0]
	secondRow := backRow
	if len(rows) > 1 {
		secondRow = rows[1]
	}
	frontRows := rows
	if len(rows) > 2 {
		frontRows = rows[len(rows)-2:]
	}

	// flag on a random column of the back row
	flagAt := core.Coordinate{X: p.rng.Intn(board.Size), Y: backRow}
	d.place(core.RankFlag, flagAt)

	// bombs beside and in front of the flag, then along the back two rows
	bombs := p.army[core.RankBomb]
	guards := []core.Coordinate{
		{X: flagAt.X - 1, Y: backRow},
		{X: flagAt.X + 1, Y: backRow},
		{X: flagAt.X, Y: backRow + side.Forward()},
	}
	for _, c := range guards {
		if bombs == 0 {
			break
		}
		if d.isFree(c) {
			d.place(core.RankBomb, c)
			bombs--
		}
	}
	for ; bombs > 0; bombs-- {
		d.placeRandom(core.RankBomb, backRow, secondRow)
	}

	// long-range pieces then defusers near the front
	forward := []core.Rank{p.rules.LongRange}
	if p.rules.Defuser != p.rules.LongRange {
		forward = append(forward, p.rules.Defuser)
	}
	for _, rank := range forward {
		for i := 0; i < p.army[rank]; i++ {
			d.placeRandom(rank, frontRows...)
		}
	}

	var rest []core.Rank
	for _, rank := range p.army.Ranks() {
		switch rank {
		case core.RankFlag, core.RankBomb, p.rules.LongRange, p.rules.Defuser:
			continue
		}
		for i := 0; i < p.army[rank]; i++ {
			rest = append(rest, rank)
		}
	}
	p.rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	for _, rank := range rest {
		d.placeRandom(rank)
	}

	p.logger.Debug().
		Str("side", side.String()).
		Int("pieces", len(home)).
		Str("flag", flagAt.String()).
		Msg("Army deployed")
	return nil
}

// deployment tracks the free cells of one Deploy call
type deployment struct {
	board  *core.Board
	side   core.Side
	rules  core.RuleSet
	rng    *rand.Rand
	free   []core.Coordinate
	nextID int
}

func (d *deployment) isFree(c core.Coordinate) bool {
	return d.indexOf(c) >= 0
}

func (d *deployment) indexOf(c core.Coordinate) int {
	for i, f := range d.free {
		if f == c {
			return i
		}
	}
	return -1
}

func (d *deployment) place(rank core.Rank, c core.Coordinate) {
	i := d.indexOf(c)
	if i < 0 {
		panic(fmt.Sprintf("deploy: %s is not a free home cell", c))
	}
	d.free = append(d.free[:i], d.free[i+1:]...)
	d.board.Place(core.NewPiece(d.nextID, rank, d.side, d.rules), c)
	d.nextID++
}

// placeRandom puts rank on a random free cell in one of rows, or anywhere
// free in the home zone when those rows are full or no rows are given.
func (d *deployment) placeRandom(rank core.Rank, rows ...int) {
	candidates := d.free
	if len(rows) > 0 {
		var inRows []core.Coordinate
		for _, c := range d.free {
			for _, y := range rows {
				if c.Y == y {
					inRows = append(inRows, c)
					break
				}
			}
		}
		if len(inRows) > 0 {
			candidates = inRows
		}
	}
	d.place(rank, candidates[d.rng.Intn(len(candidates))])
}

func nextPieceID(board *core.Board) int {
	maxID := 0
	for _, pp := range board.Pieces(core.NoSide) {
		if pp.Piece.ID > maxID {
			maxID = pp.Piece.ID
		}
	}
	return maxID + 1
}
