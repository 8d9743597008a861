package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"grid-snake/app"
	"grid-snake/config"
	"grid-snake/game"
	"grid-snake/ui"
	"grid-snake/ui/term"
	"grid-snake/ui/window"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		window.Fatal(err)
	}
	if err := window.SetLogLevel(cfg.LogLevel); err != nil {
		window.Fatal(err)
	}
	log := window.TraceLogger{}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g, err := game.NewGame(game.Options{
		Grid:       cfg.Grid(),
		AutoReset:  cfg.AutoReset(),
		ResetTicks: cfg.ResetTicks(),
		Seed:       seed,
	})
	if err != nil {
		window.Fatal(err)
	}

	style := ui.NewStyle(cfg.Block, cfg.Border)
	fe, err := newFrontend(cfg, style)
	if err != nil {
		window.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	res, runErr := app.Run(ctx, fe, g, log, app.Options{
		ExitOnGameOver: !cfg.AutoReset(),
		Snapshot:       cfg.Snapshot,
		Style:          style,
	})
	stop()
	if err := fe.Close(); err != nil {
		log.Warnf("close frontend: %v", err)
	}
	if cfg.Frontend == config.FrontendTerm {
		// Trace output was held back while the terminal was in use.
		_ = window.SetLogLevel(cfg.LogLevel)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		window.Fatal(runErr)
	}

	log.Infof("final score %d, length %d, %d ticks, cause %s, best %d over %d rounds",
		res.Score, res.Length, res.Ticks, res.Cause, g.Stats().HighScore(), g.Stats().GamesPlayed())
}

func newFrontend(cfg config.Config, style ui.Style) (app.Frontend, error) {
	switch cfg.Frontend {
	case config.FrontendTerm:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, errors.Wrap(err, "open terminal")
		}
		fe, err := term.New(screen, style.Palette, cfg.Speed)
		if err != nil {
			return nil, err
		}
		// Trace lines would tear the screen.
		_ = window.SetLogLevel("none")
		return fe, nil
	default:
		return window.New(cfg.Grid(), style, cfg.Speed, "Snake"), nil
	}
}
