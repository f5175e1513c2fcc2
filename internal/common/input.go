package common

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
)

// ParseMoveInput reads a move typed as "x1 y1 x2 y2". Commas are accepted
// as separators. Bounds are not checked; the rules engine does that.
func ParseMoveInput(line string) (core.Move, error) {
	fields := strings.FieldsFunc(line, isSeparator)
	if len(fields) != 4 {
		return core.Move{}, fmt.Errorf("expected 4 numbers \"x1 y1 x2 y2\", got %d", len(fields))
	}
	var n [4]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return core.Move{}, fmt.Errorf("invalid number %q", f)
		}
		n[i] = v
	}
	return core.NewMove(n[0], n[1], n[2], n[3]), nil
}

// ParseCoordinate reads a coordinate typed as "x y" or "x,y"
func ParseCoordinate(s string) (core.Coordinate, error) {
	fields := strings.FieldsFunc(s, isSeparator)
	if len(fields) != 2 {
		return core.Coordinate{}, fmt.Errorf("expected \"x y\", got %q", s)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.Coordinate{}, fmt.Errorf("invalid x %q", fields[0])
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.Coordinate{}, fmt.Errorf("invalid y %q", fields[1])
	}
	return core.NewCoordinate(x, y), nil
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
