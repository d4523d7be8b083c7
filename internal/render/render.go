// Package render prints boards and standings for terminals, optionally in colour.
package render

import (
	"fmt"
	"strings"

	"gamma/internal/game"

	"github.com/logrusorgru/aurora"
)

type painter func(au aurora.Aurora, s string) aurora.Value

var palette = []painter{
	func(au aurora.Aurora, s string) aurora.Value { return au.Red(s) },
	func(au aurora.Aurora, s string) aurora.Value { return au.Green(s) },
	func(au aurora.Aurora, s string) aurora.Value { return au.Yellow(s) },
	func(au aurora.Aurora, s string) aurora.Value { return au.Blue(s) },
	func(au aurora.Aurora, s string) aurora.Value { return au.Magenta(s) },
	func(au aurora.Aurora, s string) aurora.Value { return au.Cyan(s) },
}

// Cell renders one owner with its player colour. Free cells are dimmed.
func Cell(au aurora.Aurora, owner int) string {
	text := game.CellText(owner)
	if owner == 0 {
		return au.Faint(text).String()
	}
	return palette[(owner-1)%len(palette)](au, text).String()
}

// Board renders g like game.Board but colours every owner.
// With colours disabled the output equals g.Board().
func Board(au aurora.Aurora, g *game.Game) string {
	var sb strings.Builder
	for y := g.Height() - 1; y >= 0; y-- {
		for x := 0; x < g.Width(); x++ {
			sb.WriteString(Cell(au, g.Owner(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Standings lists every player's busy field count, best first.
func Standings(au aurora.Aurora, g *game.Game) string {
	var sb strings.Builder
	for _, st := range game.Standing(g) {
		name := palette[(st.Player-1)%len(palette)](au, fmt.Sprintf("PLAYER %d", st.Player))
		fmt.Fprintf(&sb, "%s %d\n", name, st.Occupied)
	}
	return sb.String()
}
