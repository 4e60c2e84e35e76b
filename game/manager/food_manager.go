package manager

import (
	"ringsnake/game/entity"
	"ringsnake/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager keeps at most one apple on the board
type FoodManager struct {
	grid    types.Grid
	rng     *rand.Rand
	apple   types.Position
	spawned bool
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Apple returns the apple position; false when there is none.
func (fm *FoodManager) Apple() (types.Position, bool) {
	return fm.apple, fm.spawned
}

// Spawn drops an apple on a random cell the snake does not cover. It does
// nothing while an apple is already on the board. The caller guarantees at
// least one free cell, otherwise Spawn never returns.
func (fm *FoodManager) Spawn(snake *entity.Snake) {
	if fm.spawned {
		return
	}

	for {
		food := types.Wrap(fm.rng.Intn(fm.grid.Width), fm.rng.Intn(fm.grid.Height), fm.grid)
		if !snake.OccupiesPosition(food) {
			fm.apple = food
			fm.spawned = true
			return
		}
	}
}

// IsFoodCollision reports whether pos is on the apple
func (fm *FoodManager) IsFoodCollision(pos types.Position) bool {
	return fm.spawned && fm.apple == pos
}

// Consume removes the apple
func (fm *FoodManager) Consume() {
	fm.spawned = false
}
