package core

import (
	"fmt"
	"sort"
	"strings"
)

// ArmyComposition is how many pieces of each rank one side fields
type ArmyComposition map[Rank]int

// DefaultArmy returns the 40-piece army for a 10x10 board
func DefaultArmy() ArmyComposition {
	return ArmyComposition{
		RankMarshal:    1,
		RankGeneral:    1,
		RankColonel:    2,
		RankMajor:      3,
		RankCaptain:    4,
		RankLieutenant: 4,
		RankSergeant:   4,
		RankMiner:      5,
		RankScout:      8,
		RankSpy:        1,
		RankBomb:       6,
		RankFlag:       1,
	}
}

// Total returns the number of pieces in the army
func (a ArmyComposition) Total() int {
	n := 0
	for _, c := range a {
		n += c
	}
	return n
}

// Ranks returns the ranks present in the army in AllRanks order
func (a ArmyComposition) Ranks() []Rank {
	out := make([]Rank, 0, len(a))
	for _, r := range AllRanks {
		if a[r] > 0 {
			out = append(out, r)
		}
	}
	return out
}

// Validate checks the army fits a home zone of the given number of cells exactly
func (a ArmyComposition) Validate(homeCells int) error {
	if a[RankFlag] != 1 {
		return fmt.Errorf("army must contain exactly one flag, has %d", a[RankFlag])
	}
	for r, c := range a {
		if c < 0 {
			return fmt.Errorf("army count for %s must be non-negative", r)
		}
		if r == RankUnknown {
			return fmt.Errorf("army cannot contain unknown ranks")
		}
	}
	if total := a.Total(); total != homeCells {
		return fmt.Errorf("%w: army has %d pieces, home zone has %d cells", ErrArmySizeMismatch, total, homeCells)
	}
	return nil
}

// String lists the composition in rank order, e.g. "Marshal:1 General:1 ..."
func (a ArmyComposition) String() string {
	parts := make([]string, 0, len(a))
	for _, r := range a.Ranks() {
		parts = append(parts, fmt.Sprintf("%s:%d", r, a[r]))
	}
	return strings.Join(parts, " ")
}

// HomeDepth returns how many rows each side deploys on for a board of the given size.
// The two lake rows sit in the middle, so each side gets the rows above/below them.
func HomeDepth(size int) int {
	return size/2 - 1
}

// HomeRows returns a side's deployment rows, back row first
func HomeRows(side Side, size int) []int {
	depth := HomeDepth(size)
	rows := make([]int, 0, depth)
	back := side.BackRow(size)
	for i := 0; i < depth; i++ {
		rows = append(rows, back+i*side.Forward())
	}
	return rows
}

// HomeCells returns every non-lake cell in a side's home rows, row-major
func (b *Board) HomeCells(side Side) []Coordinate {
	var out []Coordinate
	rows := HomeRows(side, b.Size)
	sort.Ints(rows)
	for _, y := range rows {
		for x := 0; x < b.Size; x++ {
			c := Coordinate{X: x, Y: y}
			if b.TerrainAt(c) != TerrainLake {
				out = append(out, c)
			}
		}
	}
	return out
}
