package testutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
)

// CreateTestBoard creates a board of the given size with the standard lake blocks
func CreateTestBoard(size int) *core.Board {
	board := core.NewBoard(size)
	for _, y := range []int{size/2 - 1, size / 2} {
		for _, x := range []int{1, 2, size - 3, size - 2} {
			board.SetTerrain(core.Coordinate{X: x, Y: y}, core.TerrainLake)
		}
	}
	return board
}

// PlacePiece puts a new piece on the board under the default rules.
// IDs continue from the number of pieces already placed.
func PlacePiece(board *core.Board, rank core.Rank, side core.Side, x, y int) *core.Piece {
	p := core.NewPiece(board.CountPieces(core.NoSide)+1, rank, side, core.DefaultRules())
	board.Place(p, core.Coordinate{X: x, Y: y})
	return p
}

// ParseBoard builds a square board from whitespace-separated tokens, one string per row:
//
//	.    empty land
//	~    lake
//	:    cloud
//	R5   red Sergeant (side letter R or B, then the rank symbol F, B, S or 2-10)
//	:B2  blue Scout standing on a cloud
//
// It panics on malformed input since fixtures are fixed at compile time.
func ParseBoard(rows ...string) *core.Board {
	board := core.NewBoard(len(rows))
	for y, row := range rows {
		tokens := strings.Fields(row)
		if len(tokens) != len(rows) {
			panic(fmt.Sprintf("ParseBoard: row %d has %d cells, want %d", y, len(tokens), len(rows)))
		}
		for x, tok := range tokens {
			c := core.Coordinate{X: x, Y: y}
			switch tok {
			case ".":
				continue
			case "~":
				board.SetTerrain(c, core.TerrainLake)
				continue
			case ":":
				board.SetTerrain(c, core.TerrainCloud)
				continue
			}
			if strings.HasPrefix(tok, ":") {
				board.SetTerrain(c, core.TerrainCloud)
				tok = tok[1:]
			}
			side, rank := parsePieceToken(tok)
			PlacePiece(board, rank, side, x, y)
		}
	}
	return board
}

func parsePieceToken(tok string) (core.Side, core.Rank) {
	if len(tok) < 2 {
		panic(fmt.Sprintf("ParseBoard: bad token %q", tok))
	}
	var side core.Side
	switch tok[0] {
	case 'R':
		side = core.Red
	case 'B':
		side = core.Blue
	default:
		panic(fmt.Sprintf("ParseBoard: bad side in %q", tok))
	}
	return side, RankFromSymbol(tok[1:])
}

// RankFromSymbol is the inverse of core.Rank.Symbol
func RankFromSymbol(sym string) core.Rank {
	switch sym {
	case "F":
		return core.RankFlag
	case "B":
		return core.RankBomb
	case "S":
		return core.RankSpy
	}
	n, err := strconv.Atoi(sym)
	if err != nil || n < 2 || n > 10 {
		panic(fmt.Sprintf("RankFromSymbol: bad symbol %q", sym))
	}
	return core.RankScout + core.Rank(n-2)
}

// SmallArmy returns a 12-piece army that exactly fills a 6x6 home zone
func SmallArmy() core.ArmyComposition {
	return core.ArmyComposition{
		core.RankFlag:     1,
		core.RankBomb:     2,
		core.RankSpy:      1,
		core.RankScout:    2,
		core.RankMiner:    2,
		core.RankSergeant: 1,
		core.RankCaptain:  1,
		core.RankGeneral:  1,
		core.RankMarshal:  1,
	}
}
