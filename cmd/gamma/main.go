package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"gamma/internal/batch"
	"gamma/internal/config"
	"gamma/internal/game"
	"gamma/internal/interactive"
	"gamma/internal/simulate"

	"github.com/urfave/cli/v2"
	"github.com/zeromicro/go-zero/core/logx"
)

var cfg config.Config

func loadConfig(c *cli.Context) error {
	var err error
	if path := c.String("config"); path != "" {
		cfg, err = config.LoadFile(path)
		if err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
	} else {
		cfg = config.Load()
	}
	if err := config.SetupLogging(cfg.Log); err != nil {
		return err
	}
	// stdout carries protocol output
	logx.SetWriter(logx.NewWriter(os.Stderr))
	return nil
}

func runBatch(c *cli.Context) error {
	color := c.Bool("color")
	r := batch.NewRunner(os.Stdout, os.Stderr, batch.Options{
		Color: color,
		JSON:  c.Bool("json"),
		Interactive: func(g *game.Game) error {
			return interactive.Play(g, os.Stdout, color)
		},
	})
	return r.Run(os.Stdin)
}

func runInteractive(c *cli.Context) error {
	g, err := game.New(
		pick(c.Int("width"), cfg.Game.Width),
		pick(c.Int("height"), cfg.Game.Height),
		pick(c.Int("players"), cfg.Game.Players),
		pick(c.Int("areas"), cfg.Game.Areas),
	)
	if err != nil {
		return err
	}
	return interactive.Play(g, os.Stdout, c.Bool("color"))
}

func runSimulate(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	rep, err := simulate.Run(ctx, simulate.Options{
		Games:      c.Int("games"),
		Seed:       c.Int64("seed"),
		MaxSide:    c.Int("max-side"),
		MaxPlayers: c.Int("max-players"),
		MaxAreas:   c.Int("max-areas"),
		Bots:       c.Bool("bots"),
		Weights:    cfg.Weights,
	}, os.Stderr)
	if err != nil {
		return err
	}
	fmt.Printf("\n%d games, %d moves, %d golden moves, all invariants held\n", rep.Games, rep.Moves, rep.GoldenMoves)
	return nil
}

func pick(flag, def int) int {
	if flag != 0 {
		return flag
	}
	return def
}

func colorFlag() cli.Flag {
	return &cli.BoolFlag{Name: "color", Usage: "colour boards by player"}
}

func main() {
	app := &cli.App{
		Name:  "gamma",
		Usage: "play and check gamma games",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"f"}, Usage: "yaml or json config file"},
		},
		Before: loadConfig,
		// with no command the text protocol is read from stdin
		Action: runBatch,
		Commands: []*cli.Command{
			{
				Name:   "batch",
				Usage:  "run the line protocol from stdin",
				Flags:  []cli.Flag{colorFlag(), &cli.BoolFlag{Name: "json", Usage: "print boards as json snapshots"}},
				Action: runBatch,
			},
			{
				Name:  "interactive",
				Usage: "play on this terminal",
				Flags: []cli.Flag{
					colorFlag(),
					&cli.IntFlag{Name: "width"},
					&cli.IntFlag{Name: "height"},
					&cli.IntFlag{Name: "players"},
					&cli.IntFlag{Name: "areas"},
				},
				Action: runInteractive,
			},
			{
				Name:  "simulate",
				Usage: "play random games and verify the engine after every move",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "games", Value: 1000},
					&cli.Int64Flag{Name: "seed", Value: 1},
					&cli.IntFlag{Name: "max-side", Value: 8},
					&cli.IntFlag{Name: "max-players", Value: 4},
					&cli.IntFlag{Name: "max-areas", Value: 3},
					&cli.BoolFlag{Name: "bots", Usage: "let the bot choose every move"},
				},
				Action: runSimulate,
			},
		},
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
