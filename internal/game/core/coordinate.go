package core

import "fmt"

// Coordinate represents a cell position on the board
type Coordinate struct {
	X, Y int
}

// NewCoordinate creates a new coordinate with the given x and y values
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// FromIndex creates a coordinate from a board array index using row-major ordering
func FromIndex(idx, size int) Coordinate {
	return Coordinate{X: idx % size, Y: idx / size}
}

// ToIndex converts the coordinate to a board array index using row-major ordering
func (c Coordinate) ToIndex(size int) int {
	return c.Y*size + c.X
}

// IsValid checks if the coordinate is inside a square board of the given size
func (c Coordinate) IsValid(size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

// DistanceTo calculates the Manhattan distance to another coordinate
func (c Coordinate) DistanceTo(other Coordinate) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

// IsAdjacentTo checks if this coordinate is orthogonally adjacent to another
func (c Coordinate) IsAdjacentTo(other Coordinate) bool {
	return c.DistanceTo(other) == 1
}

// IsStraightLineTo reports whether other lies on the same row or column, excluding c itself
func (c Coordinate) IsStraightLineTo(other Coordinate) bool {
	if c == other {
		return false
	}
	return c.X == other.X || c.Y == other.Y
}

// StepToward returns the unit offset pointing from c to other along one axis.
// Only meaningful when IsStraightLineTo(other) holds.
func (c Coordinate) StepToward(other Coordinate) Coordinate {
	return Coordinate{X: sign(other.X - c.X), Y: sign(other.Y - c.Y)}
}

// Neighbors returns the four orthogonal neighbors of this coordinate
func (c Coordinate) Neighbors() []Coordinate {
	out := make([]Coordinate, 0, len(Directions))
	for _, d := range Directions {
		out = append(out, c.Move(d))
	}
	return out
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{X: c.X + other.X, Y: c.Y + other.Y}
}

// Scale returns the coordinate multiplied by n on both axes
func (c Coordinate) Scale(n int) Coordinate {
	return Coordinate{X: c.X * n, Y: c.Y * n}
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction represents a cardinal direction
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the cardinal directions in generation order
var Directions = [...]Direction{North, East, South, West}

// directionVectors provides coordinate offsets for each direction
var directionVectors = [...]Coordinate{
	North: {X: 0, Y: -1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: 1},
	West:  {X: -1, Y: 0},
}

// Vector returns the unit offset of the direction
func (d Direction) Vector() Coordinate {
	if d < North || d > West {
		return Coordinate{}
	}
	return directionVectors[d]
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Move returns a new coordinate moved one step in the given direction
func (c Coordinate) Move(d Direction) Coordinate {
	return c.Add(d.Vector())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
