package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/StrategoElite/internal/common"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"github.com/mitchelldurbincs/StrategoElite/internal/game/states"
)

// This file contains all board rendering functionality for the game engine.

const (
	emptySymbol = "·"
	lakeSymbol  = "~~"
	cloudSymbol = "::"
	cellWidth   = 3
)

// Render returns the board as viewer sees it, with ANSI colors.
// Viewer NoSide shows every piece.
func (e *Engine) Render(viewer core.Side) string {
	return e.render(viewer, true)
}

// RenderPlain is Render without color codes
func (e *Engine) RenderPlain(viewer core.Side) string {
	return e.render(viewer, false)
}

func (e *Engine) render(viewer core.Side, color bool) string {
	board := e.gs.Board
	size := board.Size
	cloudVision := viewer == core.NoSide || e.HasCloudVision(viewer)

	var sb strings.Builder
	sb.Grow((size*cellWidth + 4) * (size + 4))

	sb.WriteString("   ")
	for x := 0; x < size; x++ {
		fmt.Fprintf(&sb, "%*d", cellWidth, x)
	}
	sb.WriteString("\n")

	for y := 0; y < size; y++ {
		fmt.Fprintf(&sb, "%2d ", y)
		for x := 0; x < size; x++ {
			c := core.Coordinate{X: x, Y: y}
			text, clr := cellDisplay(board, c, viewer, cloudVision)
			sb.WriteString(common.Colorize(fmt.Sprintf("%*s", cellWidth, text), clr, color))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(emptySymbol + "=empty " + lakeSymbol + "=lake " + cloudSymbol + "=cloud ?=unknown F=flag B=bomb S=spy\n")
	sb.WriteString(e.statusLine())
	return sb.String()
}

// cellDisplay returns the text and color for one cell
func cellDisplay(board *core.Board, c core.Coordinate, viewer core.Side, cloudVision bool) (string, string) {
	terrain := board.TerrainAt(c)
	if terrain == core.TerrainLake {
		return lakeSymbol, common.ColorCyan
	}

	view, ok := visiblePiece(board, c, viewer, cloudVision)
	if !ok {
		if terrain == core.TerrainCloud {
			return cloudSymbol, common.ColorGray
		}
		return emptySymbol, common.ColorGray
	}

	text := string(view.Side.String()[0]) + view.Rank.Symbol()
	return text, common.SideColor(view.Side)
}

func (e *Engine) statusLine() string {
	phase := e.Phase()
	switch phase {
	case states.PhaseFinished:
		return fmt.Sprintf("turn %d, %s wins (%s)\n", e.gs.Turn, e.Winner(), e.stateMachine.GetContext().EndReason)
	case states.PhaseInProgress:
		return fmt.Sprintf("turn %d, %s to move\n", e.gs.Turn, e.gs.CurrentSide)
	default:
		return fmt.Sprintf("phase %s\n", phase)
	}
}
