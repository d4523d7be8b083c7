package game

import (
	"strconv"
	"strings"
)

// Board renders the grid one line per row, top row (y = height-1) first.
// Free cells print as '.', owners as their id; ids of two or more digits are
// wrapped in single spaces so neighbouring ids stay readable.
func (g *Game) Board() string {
	var sb strings.Builder
	sb.Grow(g.board.Width*g.board.Height + g.board.Height)

	for y := g.board.Height - 1; y >= 0; y-- {
		for x := 0; x < g.board.Width; x++ {
			sb.WriteString(CellText(g.board.At(Pos{X: x, Y: y})))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CellText is the rendering of a single cell owner.
func CellText(owner int) string {
	switch {
	case owner == 0:
		return "."
	case owner < 10:
		return strconv.Itoa(owner)
	default:
		return " " + strconv.Itoa(owner) + " "
	}
}
