package game

import "sort"

// LegalMoves returns the previews of every normal move available to player,
// scanning rows bottom to top.
func LegalMoves(g *Game, player int) []Preview {
	if !g.validPlayer(player) || g.FreeFields(player) == 0 {
		return nil
	}

	var moves []Preview
	for y := 0; y < g.board.Height; y++ {
		for x := 0; x < g.board.Width; x++ {
			if pv, err := g.Plan(player, x, y); err == nil {
				moves = append(moves, pv)
			}
		}
	}
	return moves
}

// LegalGoldenMoves returns the previews of every golden move available to player.
func LegalGoldenMoves(g *Game, player int) []Preview {
	if !g.GoldenPossible(player) {
		return nil
	}

	var moves []Preview
	for y := 0; y < g.board.Height; y++ {
		for x := 0; x < g.board.Width; x++ {
			if pv, err := g.PlanGolden(player, x, y); err == nil {
				moves = append(moves, pv)
			}
		}
	}
	return moves
}

// CanMove reports whether player has any move left to try: a reachable free
// cell or an unused golden move with an opponent cell on the board.
func CanMove(g *Game, player int) bool {
	return g.FreeFields(player) > 0 || g.GoldenPossible(player)
}

// Standing ranks players by busy fields, ties broken by the lower id.
func Standing(g *Game) []PlayerStats {
	out := make([]PlayerStats, 0, g.Players())
	for p := 1; p <= g.Players(); p++ {
		st, _ := g.Stats(p)
		out = append(out, st)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Occupied > out[j].Occupied
	})
	return out
}
