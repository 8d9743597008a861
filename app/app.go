// Package app drives a game through a frontend, one tick at a time.
package app

import (
	"context"

	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/ui"
)

// Frontend collects input, draws scenes and paces the loop.
type Frontend interface {
	Poll() ui.Input
	Draw(scene ui.Scene)
	// Wait blocks until the next tick is due.
	Wait()
	Close() error
}

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

type Options struct {
	// ExitOnGameOver stops the loop at the first game over. Otherwise the
	// game is expected to reset itself and the loop runs until quit.
	ExitOnGameOver bool
	// Snapshot, if set, is the PNG path the final frame is written to.
	Snapshot string
	Style    ui.Style
}

type Result struct {
	Score  int
	Length int
	Ticks  int
	Cause  manager.CollisionType
	Quit   bool
}

func result(g *game.Game, quit bool) Result {
	return Result{
		Score:  g.Score(),
		Length: g.GetSnake().Length(),
		Ticks:  g.Ticks(),
		Cause:  g.Cause(),
		Quit:   quit,
	}
}

// Run loops poll, step, draw, wait until the player quits, ctx is done or,
// with ExitOnGameOver, the round ends.
func Run(ctx context.Context, fe Frontend, g *game.Game, log Logger, opts Options) (Result, error) {
	for {
		if err := ctx.Err(); err != nil {
			return result(g, true), err
		}

		in := fe.Poll()
		if in.Quit {
			log.Infof("quit at tick %d with score %d", g.Ticks(), g.Score())
			return result(g, true), nil
		}

		events := g.Step(in.Dir)
		logEvents(log, g, events)

		scene := ui.Compose(g)
		fe.Draw(scene)

		if opts.ExitOnGameOver && events.Has(game.EventGameOver) {
			saveSnapshot(log, scene, opts)
			return result(g, false), nil
		}
		fe.Wait()
	}
}

func logEvents(log Logger, g *game.Game, events game.Events) {
	log.Debugf("tick %d: game over %t, score %d", g.Ticks(), g.IsGameOver(), g.Score())

	if events.Has(game.EventAppleEaten) {
		log.Infof("apple eaten, score %d, length %d", g.Score(), g.GetSnake().Length())
	}
	if events.Has(game.EventGameOver) {
		stats := g.Stats()
		log.Infof("game over (%s) after %d ticks, score %d, best %d, average %.2f",
			g.Cause(), g.Ticks(), g.Score(), stats.HighScore(), stats.GetAverageScore())
	}
	if events.Has(game.EventReset) {
		log.Infof("new round %s", g.Stats().RoundID())
	}
}

func saveSnapshot(log Logger, scene ui.Scene, opts Options) {
	if opts.Snapshot == "" {
		return
	}
	if err := ui.SavePNG(opts.Snapshot, scene, opts.Style); err != nil {
		log.Warnf("%v", err)
		return
	}
	log.Infof("snapshot written to %s", opts.Snapshot)
}
