package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

// PopulationManager spawns the snake and, in auto-reset play, counts
// down the ticks between a game over and the next snake.
type PopulationManager struct {
	grid      types.Grid
	delay     int
	remaining int
	pending   bool
}

// NewPopulationManager returns a manager that respawns delayTicks ticks
// after a game over. delayTicks below one is treated as one.
func NewPopulationManager(grid types.Grid, delayTicks int) *PopulationManager {
	if delayTicks < 1 {
		delayTicks = 1
	}
	return &PopulationManager{
		grid:  grid,
		delay: delayTicks,
	}
}

// SpawnSnake creates a fresh snake at the board center, facing right.
func (pm *PopulationManager) SpawnSnake() (*entity.Snake, error) {
	return entity.NewSnake(pm.grid, pm.grid.Center(), types.InitialLength, types.RIGHT)
}

// ScheduleRespawn starts the countdown. Repeated calls do not restart it.
func (pm *PopulationManager) ScheduleRespawn() {
	if pm.pending {
		return
	}
	pm.pending = true
	pm.remaining = pm.delay
}

// Tick advances the countdown and reports whether the respawn is due.
func (pm *PopulationManager) Tick() bool {
	if !pm.pending {
		return false
	}
	pm.remaining--
	if pm.remaining > 0 {
		return false
	}
	pm.pending = false
	return true
}

func (pm *PopulationManager) Pending() bool {
	return pm.pending
}
