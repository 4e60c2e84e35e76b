package manager

import (
	"errors"
	"fmt"

	"ringsnake/game/entity"
	"ringsnake/game/types"
)

// ErrPoolExhausted is returned by Allocate once every slot is taken.
var ErrPoolExhausted = errors.New("snake pool exhausted")

// SnakeHandle identifies a snake inside its pool
type SnakeHandle int

// SnakePool hands out snakes from preallocated storage. Slots are never
// reclaimed; a pool lives as long as the game owning it.
type SnakePool struct {
	grid       types.Grid
	historyCap int
	slots      []entity.Snake
	used       int
}

// NewSnakePool creates a pool for capacity snakes on grid. historyCap bounds
// each snake's body; values below 1 default to the number of board cells so
// a snake can always grow to fill the board.
func NewSnakePool(capacity int, grid types.Grid, historyCap int) (*SnakePool, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("invalid snake pool capacity %d", capacity)
	}
	if grid.Width < 1 || grid.Height < 1 {
		return nil, fmt.Errorf("invalid grid %dx%d", grid.Width, grid.Height)
	}
	if historyCap < 1 {
		historyCap = grid.Cells()
	}

	return &SnakePool{
		grid:       grid,
		historyCap: historyCap,
		slots:      make([]entity.Snake, capacity),
	}, nil
}

// Allocate places a new snake at (x, y), heading left.
func (pm *SnakePool) Allocate(x, y int) (SnakeHandle, error) {
	if pm.used == len(pm.slots) {
		return -1, fmt.Errorf("allocate snake at (%d,%d): %w", x, y, ErrPoolExhausted)
	}

	h := SnakeHandle(pm.used)
	pm.slots[h] = *entity.NewSnake(types.Position{X: x, Y: y}, pm.grid, pm.historyCap)
	pm.used++
	return h, nil
}

func (pm *SnakePool) Get(h SnakeHandle) (*entity.Snake, error) {
	if h < 0 || int(h) >= pm.used {
		return nil, fmt.Errorf("unknown snake handle %d", h)
	}
	return &pm.slots[h], nil
}

// Len returns the number of allocated snakes
func (pm *SnakePool) Len() int {
	return pm.used
}

func (pm *SnakePool) Cap() int {
	return len(pm.slots)
}
