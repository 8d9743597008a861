package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/game/types"
)

func newGame(t *testing.T, opts game.Options) *game.Game {
	t.Helper()
	if opts.Grid == (types.Grid{}) {
		opts.Grid = types.Grid{Width: types.DefaultWidth, Height: types.DefaultHeight}
	}
	g, err := game.NewGame(opts)
	require.NoError(t, err)
	return g
}

// parkApple keeps the apple out of the way of scripted moves.
func parkApple(t *testing.T, g *game.Game, p types.Point) {
	t.Helper()
	require.True(t, g.PlaceApple(p))
}

func TestNewGame(t *testing.T) {
	g := newGame(t, game.Options{Seed: 1})

	assert.Equal(t, game.Playing, g.State)
	assert.Equal(t, types.Point{X: 16, Y: 12}, g.GetSnake().Head())
	assert.Equal(t, types.RIGHT, g.GetSnake().Direction())
	assert.Equal(t, 3, g.GetSnake().Len())
	assert.Equal(t, 0, g.Score())
	assert.False(t, g.GetSnake().Contains(g.GetApple()))
	assert.True(t, g.Grid.Contains(g.GetApple()))
	assert.Len(t, g.Walls(), 2*(32+24))
}

func TestNewGameRejectsBadBoards(t *testing.T) {
	_, err := game.NewGame(game.Options{Grid: types.Grid{Width: 0, Height: 10}})
	assert.Error(t, err)

	_, err = game.NewGame(game.Options{Grid: types.Grid{Width: 3, Height: 3}})
	assert.Error(t, err)
}

func TestMoveRightFiveTimes(t *testing.T) {
	g := newGame(t, game.Options{Seed: 3})
	parkApple(t, g, types.Point{X: 0, Y: 0})

	for i := 0; i < 5; i++ {
		assert.Zero(t, g.Step(types.RIGHT))
	}

	assert.Equal(t, types.Point{X: 21, Y: 12}, g.GetSnake().Head())
	assert.False(t, g.IsGameOver())
	assert.Equal(t, 5, g.Ticks())
}

func TestNoInputKeepsDirection(t *testing.T) {
	g := newGame(t, game.Options{Seed: 3})
	parkApple(t, g, types.Point{X: 0, Y: 0})

	g.Step(types.DOWN)
	g.Step(types.NONE)

	assert.Equal(t, types.Point{X: 16, Y: 14}, g.GetSnake().Head())
	assert.Equal(t, types.DOWN, g.GetSnake().Direction())
}

func TestReversalContinuesForward(t *testing.T) {
	g := newGame(t, game.Options{Seed: 3})
	parkApple(t, g, types.Point{X: 0, Y: 0})

	g.Step(types.LEFT)

	assert.Equal(t, types.Point{X: 17, Y: 12}, g.GetSnake().Head())
	assert.Equal(t, types.RIGHT, g.GetSnake().Direction())
	assert.False(t, g.IsGameOver())
}

func TestWallCollisionLeft(t *testing.T) {
	g := newGame(t, game.Options{Seed: 3})
	parkApple(t, g, types.Point{X: 31, Y: 23})

	// Turn around and run into the wall at x=-1.
	g.Step(types.UP)
	g.Step(types.LEFT)
	var events game.Events
	for i := 0; i < 40 && !g.IsGameOver(); i++ {
		events = g.Step(types.LEFT)
	}

	require.True(t, g.IsGameOver())
	assert.True(t, events.Has(game.EventGameOver))
	assert.Equal(t, types.Point{X: -1, Y: 11}, g.GetSnake().Head())
	assert.Equal(t, manager.WallCollision, g.Cause())
	require.Len(t, g.Stats().Rounds(), 1)
	assert.Equal(t, manager.WallCollision, g.Stats().Rounds()[0].Cause)
}

func TestWallCollisionEveryEdge(t *testing.T) {
	for _, dir := range []types.Direction{types.UP, types.RIGHT, types.DOWN} {
		t.Run(dir.String(), func(t *testing.T) {
			g := newGame(t, game.Options{Seed: 5})
			parkApple(t, g, types.Point{X: 0, Y: 0})
			if dir == types.UP {
				parkApple(t, g, types.Point{X: 0, Y: 23})
			}

			for i := 0; i < 40 && !g.IsGameOver(); i++ {
				g.Step(dir)
			}

			require.True(t, g.IsGameOver())
			assert.False(t, g.Grid.Contains(g.GetSnake().Head()))
			assert.Equal(t, manager.WallCollision, g.Cause())
		})
	}
}

func TestSelfCollision(t *testing.T) {
	g := newGame(t, game.Options{Seed: 9})
	parkApple(t, g, types.Point{X: 17, Y: 12})

	g.Step(types.RIGHT) // eat: length 4
	parkApple(t, g, types.Point{X: 18, Y: 12})
	g.Step(types.RIGHT) // eat: length 5
	parkApple(t, g, types.Point{X: 0, Y: 0})
	require.Equal(t, 2, g.Score())

	g.Step(types.DOWN)
	g.Step(types.LEFT)
	require.False(t, g.IsGameOver())
	events := g.Step(types.UP)

	assert.True(t, events.Has(game.EventGameOver))
	assert.True(t, g.IsGameOver())
	assert.Equal(t, manager.SelfCollision, g.Cause())
}

func TestEatApple(t *testing.T) {
	g := newGame(t, game.Options{Seed: 11})
	parkApple(t, g, types.Point{X: 17, Y: 12})

	events := g.Step(types.RIGHT)

	assert.True(t, events.Has(game.EventAppleEaten))
	assert.Equal(t, 1, g.Score())
	assert.Equal(t, 4, g.GetSnake().Length())
	assert.Equal(t, 3, g.GetSnake().Len())
	assert.NotEqual(t, types.Point{X: 17, Y: 12}, g.GetApple())
	assert.False(t, g.GetSnake().Contains(g.GetApple()))

	parkApple(t, g, types.Point{X: 0, Y: 0})
	g.Step(types.RIGHT)
	assert.Equal(t, 4, g.GetSnake().Len())
	assert.Equal(t, 1, g.Score())
}

func TestAppleNeverOnSnake(t *testing.T) {
	g := newGame(t, game.Options{Grid: types.Grid{Width: 8, Height: 8}, Seed: 21, AutoReset: true, ResetTicks: 1})

	// Chase the apple greedily for a while and check every respawn.
	for i := 0; i < 2000; i++ {
		if g.IsGameOver() {
			g.Step(types.NONE)
			continue
		}
		head, apple := g.GetSnake().Head(), g.GetApple()
		dir := types.NONE
		switch {
		case apple.X > head.X:
			dir = types.RIGHT
		case apple.X < head.X:
			dir = types.LEFT
		case apple.Y > head.Y:
			dir = types.DOWN
		case apple.Y < head.Y:
			dir = types.UP
		}
		g.Step(dir)
		if !g.IsGameOver() {
			assert.False(t, g.GetSnake().Contains(g.GetApple()), "apple on snake at tick %d", i)
		}
	}
	assert.Greater(t, g.Stats().HighScore(), 0)
}

func TestGameOverWithoutResetStays(t *testing.T) {
	g := newGame(t, game.Options{Seed: 3})
	parkApple(t, g, types.Point{X: 0, Y: 0})
	for !g.IsGameOver() {
		g.Step(types.RIGHT)
	}
	head := g.GetSnake().Head()

	for i := 0; i < 10; i++ {
		assert.Zero(t, g.Step(types.UP))
	}
	assert.True(t, g.IsGameOver())
	assert.Equal(t, head, g.GetSnake().Head())
}

func TestAutoReset(t *testing.T) {
	g := newGame(t, game.Options{Seed: 3, AutoReset: true, ResetTicks: 3})
	parkApple(t, g, types.Point{X: 17, Y: 12})
	g.Step(types.RIGHT)
	require.Equal(t, 1, g.Score())
	parkApple(t, g, types.Point{X: 0, Y: 0})
	for !g.IsGameOver() {
		g.Step(types.RIGHT)
	}

	assert.Zero(t, g.Step(types.NONE))
	assert.Zero(t, g.Step(types.NONE))
	events := g.Step(types.NONE)

	assert.True(t, events.Has(game.EventReset))
	assert.Equal(t, game.Playing, g.State)
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 0, g.Ticks())
	assert.Equal(t, types.Point{X: 16, Y: 12}, g.GetSnake().Head())
	assert.Equal(t, 3, g.GetSnake().Length())
	assert.Equal(t, 1, g.Stats().HighScore())
	require.Len(t, g.Stats().Rounds(), 1)
	assert.Equal(t, 1, g.Stats().Rounds()[0].Score)
}

func TestBoardFullEndsRound(t *testing.T) {
	// 4x2 board, spawn covers (0..2,1). Feed the snake around the ring until
	// it covers every cell.
	g := newGame(t, game.Options{Grid: types.Grid{Width: 4, Height: 2}, Seed: 1})
	path := []types.Direction{types.RIGHT, types.UP, types.LEFT, types.LEFT, types.LEFT, types.DOWN}

	var events game.Events
	for _, dir := range path {
		next := g.GetSnake().Head().Add(dir.ToPoint())
		if g.GetApple() != next {
			parkApple(t, g, next)
		}
		events = g.Step(dir)
		require.True(t, events.Has(game.EventAppleEaten))
	}

	assert.True(t, events.Has(game.EventGameOver))
	assert.Equal(t, manager.BoardFull, g.Cause())
	assert.Equal(t, 8, g.GetSnake().Len())
	assert.Equal(t, 6, g.Score())
}

func TestPlaceAppleRejectsSnakeCells(t *testing.T) {
	g := newGame(t, game.Options{Seed: 3})

	assert.False(t, g.PlaceApple(types.Point{X: 16, Y: 12}))
	assert.False(t, g.PlaceApple(types.Point{X: -1, Y: 0}))
	assert.True(t, g.PlaceApple(types.Point{X: 1, Y: 1}))
	assert.Equal(t, types.Point{X: 1, Y: 1}, g.GetApple())
}
