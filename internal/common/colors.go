package common

import "github.com/mitchelldurbincs/StrategoElite/internal/game/core"

// ANSI color codes for terminal output
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
	ColorBlue  = "\033[34m"
	ColorCyan  = "\033[36m"
	ColorWhite = "\033[37m"
	ColorGray  = "\033[90m"
	ColorBold  = "\033[1m"
)

// SideColor returns the terminal color for a side
func SideColor(side core.Side) string {
	switch side {
	case core.Red:
		return ColorRed
	case core.Blue:
		return ColorBlue
	default:
		return ColorWhite
	}
}

// Colorize wraps s in color when enabled is true
func Colorize(s, color string, enabled bool) string {
	if !enabled || color == "" {
		return s
	}
	return color + s + ColorReset
}
