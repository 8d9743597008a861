package game

import (
	"github.com/pkg/errors"

	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"
)

// State of the game loop.
type State int

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "playing"
}

// Events reports what happened during one Step.
type Events uint8

const (
	EventAppleEaten Events = 1 << iota
	EventGameOver
	EventReset
)

func (e Events) Has(flag Events) bool {
	return e&flag != 0
}

// Options configure a Game.
type Options struct {
	Grid types.Grid
	// AutoReset starts a new round ResetTicks ticks after a game over.
	// Without it the game stays over.
	AutoReset  bool
	ResetTicks int
	Seed       uint64
}

type Game struct {
	Grid  types.Grid
	State State

	snake *entity.Snake
	apple types.Point
	cause manager.CollisionType
	ticks int

	autoReset    bool
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	popMgr       *manager.PopulationManager
	stateMgr     *manager.StateManager
}

func NewGame(opts Options) (*Game, error) {
	if opts.Grid.Width < 1 || opts.Grid.Height < 1 {
		return nil, errors.Errorf("invalid board %dx%d", opts.Grid.Width, opts.Grid.Height)
	}

	collisionMgr := manager.NewCollisionManager(opts.Grid)
	g := &Game{
		Grid:         opts.Grid,
		autoReset:    opts.AutoReset,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(opts.Grid, collisionMgr, opts.Seed),
		popMgr:       manager.NewPopulationManager(opts.Grid, opts.ResetTicks),
		stateMgr:     manager.NewStateManager(),
	}
	if err := g.spawn(); err != nil {
		return nil, err
	}
	return g, nil
}

// spawn places a new snake and apple and opens a new round.
func (g *Game) spawn() error {
	snake, err := g.popMgr.SpawnSnake()
	if err != nil {
		return errors.Wrap(err, "spawn snake")
	}
	apple, ok := g.foodMgr.GenerateFood(snake)
	if !ok {
		return errors.New("spawn apple: board has no free cell")
	}

	g.snake = snake
	g.apple = apple
	g.cause = manager.NoCollision
	g.ticks = 0
	g.State = Playing
	g.stateMgr.StartRound()
	return nil
}

// Step runs one tick. dir is the requested direction; NONE or a reversal
// keeps the snake on its current heading.
func (g *Game) Step(dir types.Direction) Events {
	if g.State == GameOver {
		return g.stepGameOver()
	}

	if dir == types.NONE || dir == g.snake.Direction().Opposite() {
		dir = g.snake.Direction()
	}
	g.snake.Move(dir)
	g.ticks++

	if cause := g.collisionMgr.CheckCollision(g.snake); cause != manager.NoCollision {
		g.end(cause)
		return EventGameOver
	}

	if g.snake.Head() != g.apple {
		return 0
	}

	g.stateMgr.AddPoint()
	// Growth of one is always within bounds.
	_ = g.snake.ChangeLength(1)
	apple, ok := g.foodMgr.GenerateFood(g.snake)
	if !ok {
		g.end(manager.BoardFull)
		return EventAppleEaten | EventGameOver
	}
	g.apple = apple
	return EventAppleEaten
}

func (g *Game) stepGameOver() Events {
	if !g.autoReset || !g.popMgr.Tick() {
		return 0
	}
	if err := g.spawn(); err != nil {
		// The same board spawned a snake before, so this cannot happen.
		panic(err)
	}
	return EventReset
}

func (g *Game) end(cause manager.CollisionType) {
	g.State = GameOver
	g.cause = cause
	g.stateMgr.EndRound(g.snake.Length(), g.ticks, cause)
	if g.autoReset {
		g.popMgr.ScheduleRespawn()
	}
}

func (g *Game) IsGameOver() bool {
	return g.State == GameOver
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetApple() types.Point {
	return g.apple
}

func (g *Game) Walls() []types.Point {
	return g.collisionMgr.Walls()
}

func (g *Game) Score() int {
	return g.stateMgr.Score()
}

func (g *Game) Cause() manager.CollisionType {
	return g.cause
}

// Ticks counts the moves of the current round.
func (g *Game) Ticks() int {
	return g.ticks
}

func (g *Game) Stats() *manager.StateManager {
	return g.stateMgr
}

// PlaceApple moves the apple to pos. It refuses cells off the board or
// under the snake.
func (g *Game) PlaceApple(pos types.Point) bool {
	if !g.collisionMgr.ValidateSpawnPosition(pos, g.snake) {
		return false
	}
	g.apple = pos
	return true
}
