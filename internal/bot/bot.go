package bot

import (
	"gamma/internal/config"
	"gamma/internal/game"
)

// Score rates a legal move from its preview. Higher is better.
func Score(pv game.Preview, w config.Weights) int {
	score := w.WJoin*pv.Joined + w.WFrontier*pv.FrontierGain + w.WDeny*len(pv.Denied)

	// a move touching none of the player's regions opens a new area
	if pv.Joined == 0 {
		score -= w.WSpread
	}
	return score
}

func best(moves []game.Preview, w config.Weights) (game.Preview, int) {
	top := moves[0]
	topScore := Score(top, w)
	for _, mv := range moves[1:] {
		if s := Score(mv, w); s > topScore {
			top = mv
			topScore = s
		}
	}
	return top, topScore
}

// Choose picks a move for player. The golden move is spent only when no normal
// move exists or when it beats the best normal move by more than WGolden.
// ok is false when the player has nothing legal to play.
func Choose(g *game.Game, player int, w config.Weights) (mv game.Preview, ok bool) {
	normal := game.LegalMoves(g, player)
	golden := game.LegalGoldenMoves(g, player)

	switch {
	case len(normal) == 0 && len(golden) == 0:
		return game.Preview{}, false
	case len(golden) == 0:
		mv, _ = best(normal, w)
		return mv, true
	case len(normal) == 0:
		mv, _ = best(golden, w)
		return mv, true
	}

	n, ns := best(normal, w)
	gm, gs := best(golden, w)
	if gs > ns+w.WGolden {
		return gm, true
	}
	return n, true
}

// Play chooses and applies a move for player.
func Play(g *game.Game, player int, w config.Weights) (game.Preview, bool) {
	mv, ok := Choose(g, player, w)
	if !ok {
		return game.Preview{}, false
	}

	var err error
	if mv.Golden {
		err = g.PlayGolden(player, mv.Pos.X, mv.Pos.Y)
	} else {
		err = g.Play(player, mv.Pos.X, mv.Pos.Y)
	}
	return mv, err == nil
}
