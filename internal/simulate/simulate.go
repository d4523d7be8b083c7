// Package simulate plays random games and checks the engine bookkeeping
// after every committed move.
package simulate

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"gamma/internal/bot"
	"gamma/internal/config"
	"gamma/internal/game"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
	"github.com/zeromicro/go-zero/core/logx"
)

type Options struct {
	Games      int
	Seed       int64
	MaxSide    int
	MaxPlayers int
	MaxAreas   int
	// Bots makes every player choose moves with the bot instead of at random.
	Bots    bool
	Weights config.Weights
}

type Report struct {
	Games       int
	Moves       int
	GoldenMoves int
}

func newBar(w io.Writer, n int) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("simulating"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}

func withDefaults(o Options) Options {
	if o.Games <= 0 {
		o.Games = 100
	}
	if o.MaxSide <= 0 {
		o.MaxSide = 8
	}
	if o.MaxPlayers <= 0 {
		o.MaxPlayers = 4
	}
	if o.MaxAreas <= 0 {
		o.MaxAreas = 3
	}
	return o
}

// Run plays o.Games games, reporting progress to progress. It stops at the
// first broken invariant or when ctx is done.
func Run(ctx context.Context, o Options, progress io.Writer) (Report, error) {
	o = withDefaults(o)
	rng := rand.New(rand.NewSource(o.Seed))
	bar := newBar(progress, o.Games)
	defer bar.Close()

	var rep Report
	for i := 0; i < o.Games; i++ {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		w, h := 1+rng.Intn(o.MaxSide), 1+rng.Intn(o.MaxSide)
		players, areas := 1+rng.Intn(o.MaxPlayers), 1+rng.Intn(o.MaxAreas)
		g, err := game.New(w, h, players, areas)
		if err != nil {
			return rep, err
		}

		if err := playOut(g, rng, o, &rep); err != nil {
			logx.Errorf("simulation game %d (%dx%d, %d players, %d areas): %v", i, w, h, players, areas, err)
			return rep, fmt.Errorf("game %d: %w", i, err)
		}
		rep.Games++
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	logx.Infof("simulated %d games, %d moves, %d golden", rep.Games, rep.Moves, rep.GoldenMoves)
	return rep, nil
}

// playOut takes turns until no player can move, verifying after every move.
func playOut(g *game.Game, rng *rand.Rand, o Options, rep *Report) error {
	idle := 0
	for p := 1; idle < g.Players(); p = p%g.Players() + 1 {
		if !game.CanMove(g, p) {
			idle++
			continue
		}

		pv, ok := pick(g, p, rng, o)
		if !ok {
			idle++
			continue
		}
		idle = 0

		var err error
		if pv.Golden {
			err = g.PlayGolden(p, pv.Pos.X, pv.Pos.Y)
			rep.GoldenMoves++
		} else {
			err = g.Play(p, pv.Pos.X, pv.Pos.Y)
		}
		if err != nil {
			return fmt.Errorf("player %d at %v: %w", p, pv.Pos, err)
		}
		rep.Moves++

		if err := g.Verify(); err != nil {
			return fmt.Errorf("after player %d at %v golden=%v: %w", p, pv.Pos, pv.Golden, err)
		}
	}
	return g.Verify()
}

func pick(g *game.Game, p int, rng *rand.Rand, o Options) (game.Preview, bool) {
	if o.Bots {
		return bot.Choose(g, p, o.Weights)
	}

	moves := game.LegalMoves(g, p)
	// spend the golden move now and then, or when nothing else is left
	if len(moves) == 0 || rng.Intn(10) == 0 {
		if golden := game.LegalGoldenMoves(g, p); len(golden) > 0 {
			return golden[rng.Intn(len(golden))], true
		}
	}
	if len(moves) == 0 {
		return game.Preview{}, false
	}
	return moves[rng.Intn(len(moves))], true
}
