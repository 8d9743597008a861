package manager

import (
	"github.com/kamstrup/intmap"

	"grid-snake/game/entity"
	"grid-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	BoardFull // no free cell left for the next apple
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFull:
		return "board full"
	default:
		return "none"
	}
}

// CollisionManager owns the static wall ring around the board.
type CollisionManager struct {
	grid  types.Grid
	walls []types.Point
	set   *intmap.Set[int64]
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	walls := generateWalls(grid)
	set := intmap.NewSet[int64](len(walls))
	for _, w := range walls {
		set.Add(w.Key())
	}
	return &CollisionManager{
		grid:  grid,
		walls: walls,
		set:   set,
	}
}

// generateWalls places one wall cell just outside every board edge cell.
// Corners are left out; the head can never reach them.
func generateWalls(grid types.Grid) []types.Point {
	walls := make([]types.Point, 0, 2*(grid.Width+grid.Height))
	for x := 0; x < grid.Width; x++ {
		walls = append(walls, types.Point{X: x, Y: -1})
	}
	for x := 0; x < grid.Width; x++ {
		walls = append(walls, types.Point{X: x, Y: grid.Height})
	}
	for y := 0; y < grid.Height; y++ {
		walls = append(walls, types.Point{X: -1, Y: y})
	}
	for y := 0; y < grid.Height; y++ {
		walls = append(walls, types.Point{X: grid.Width, Y: y})
	}
	return walls
}

// Walls returns the wall cells in render order.
func (cm *CollisionManager) Walls() []types.Point {
	return cm.walls
}

func (cm *CollisionManager) IsWall(pos types.Point) bool {
	return cm.set.Has(pos.Key())
}

// CheckCollision classifies the snake's current head position.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	head := snake.Head()
	if cm.IsWall(head) || !cm.grid.Contains(head) {
		return WallCollision
	}
	if snake.HitsItself() {
		return SelfCollision
	}
	return NoCollision
}

// ValidateSpawnPosition reports whether pos is free for an apple.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return snake == nil || !snake.Contains(pos)
}
