package core

import "fmt"

// Terrain is the fixed type of a board cell
type Terrain int

const (
	TerrainEmpty Terrain = iota
	TerrainLake
	TerrainCloud
)

func (t Terrain) String() string {
	switch t {
	case TerrainEmpty:
		return "Empty"
	case TerrainLake:
		return "Lake"
	case TerrainCloud:
		return "Cloud"
	default:
		return fmt.Sprintf("Terrain(%d)", int(t))
	}
}

// Cell is a single board square.
// Occupant is nil when the cell is empty; lakes never hold one.
type Cell struct {
	Terrain  Terrain
	Occupant *Piece
}

func (c *Cell) IsLake() bool  { return c.Terrain == TerrainLake }
func (c *Cell) IsCloud() bool { return c.Terrain == TerrainCloud }
func (c *Cell) IsEmpty() bool { return c.Occupant == nil }

// Board is a square grid stored row-major. It is a mechanical container:
// no rule checks happen here.
type Board struct {
	Size int
	T    []Cell // length = Size*Size
}

func NewBoard(size int) *Board {
	return &Board{Size: size, T: make([]Cell, size*size)}
}

func (b *Board) Idx(x, y int) int      { return y*b.Size + x }
func (b *Board) XY(idx int) (int, int) { return idx % b.Size, idx / b.Size }

// InBounds checks if coordinates are within board boundaries
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Size && y >= 0 && y < b.Size
}

// Contains is InBounds for a Coordinate
func (b *Board) Contains(c Coordinate) bool {
	return b.InBounds(c.X, c.Y)
}

// GetCell safely returns a cell pointer if coordinates are valid, nil otherwise
func (b *Board) GetCell(c Coordinate) *Cell {
	if !b.Contains(c) {
		return nil
	}
	return &b.T[b.Idx(c.X, c.Y)]
}

// TerrainAt returns the terrain of a cell. Off-board coordinates read as Lake
// so that callers walking outward stop at the edge.
func (b *Board) TerrainAt(c Coordinate) Terrain {
	cell := b.GetCell(c)
	if cell == nil {
		return TerrainLake
	}
	return cell.Terrain
}

// SetTerrain changes a cell's terrain. Only used while building the board.
func (b *Board) SetTerrain(c Coordinate, t Terrain) {
	if cell := b.GetCell(c); cell != nil {
		cell.Terrain = t
	}
}

// PieceAt returns the occupant of a cell, or nil
func (b *Board) PieceAt(c Coordinate) *Piece {
	cell := b.GetCell(c)
	if cell == nil {
		return nil
	}
	return cell.Occupant
}

// Place writes a piece into a cell unconditionally, overwriting any occupant.
func (b *Board) Place(p *Piece, c Coordinate) {
	if cell := b.GetCell(c); cell != nil {
		cell.Occupant = p
	}
}

// Remove clears a cell and returns whatever occupied it
func (b *Board) Remove(c Coordinate) *Piece {
	cell := b.GetCell(c)
	if cell == nil {
		return nil
	}
	p := cell.Occupant
	cell.Occupant = nil
	return p
}

// Locate finds the cell holding the given piece
func (b *Board) Locate(p *Piece) (Coordinate, bool) {
	if p == nil {
		return Coordinate{}, false
	}
	for idx := range b.T {
		if b.T[idx].Occupant == p {
			return FromIndex(idx, b.Size), true
		}
	}
	return Coordinate{}, false
}

// PlacedPiece pairs a piece with the cell it stands on
type PlacedPiece struct {
	Piece *Piece
	At    Coordinate
}

// Pieces returns every piece of a side in row-major order.
// NoSide returns the pieces of both sides.
func (b *Board) Pieces(side Side) []PlacedPiece {
	var out []PlacedPiece
	for idx := range b.T {
		p := b.T[idx].Occupant
		if p == nil || (side != NoSide && p.Side != side) {
			continue
		}
		out = append(out, PlacedPiece{Piece: p, At: FromIndex(idx, b.Size)})
	}
	return out
}

// CountPieces returns the number of pieces a side has on the board.
// NoSide counts both sides.
func (b *Board) CountPieces(side Side) int {
	n := 0
	for idx := range b.T {
		p := b.T[idx].Occupant
		if p != nil && (side == NoSide || p.Side == side) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board. Pieces are copied, so mutating the
// clone never affects the original.
func (b *Board) Clone() *Board {
	nb := &Board{Size: b.Size, T: make([]Cell, len(b.T))}
	for i, cell := range b.T {
		nb.T[i].Terrain = cell.Terrain
		if cell.Occupant != nil {
			cp := *cell.Occupant
			nb.T[i].Occupant = &cp
		}
	}
	return nb
}

// CheckInvariants panics if a piece occupies more than one cell or a lake holds
// a piece. Either condition is a programming defect, not a game error.
func (b *Board) CheckInvariants() {
	seen := make(map[*Piece]int, len(b.T))
	for idx := range b.T {
		cell := &b.T[idx]
		if cell.Occupant == nil {
			continue
		}
		at := FromIndex(idx, b.Size)
		if cell.IsLake() {
			panic(fmt.Sprintf("board invariant violated: piece %s on lake %s", cell.Occupant, at))
		}
		if prev, ok := seen[cell.Occupant]; ok {
			panic(fmt.Sprintf("board invariant violated: piece %s at both %s and %s",
				cell.Occupant, FromIndex(prev, b.Size), at))
		}
		seen[cell.Occupant] = idx
	}
}
