package ai

import (
	"ringsnake/game/entity"
	"ringsnake/game/types"
)

// candidates in order of preference when scores tie
var candidates = [4]types.Direction{types.Up, types.Right, types.Down, types.Left}

// Autopilot steers a snake toward the apple while avoiding its own body.
// It only looks one cell ahead.
type Autopilot struct {
	grid types.Grid
}

func NewAutopilot(grid types.Grid) *Autopilot {
	return &Autopilot{grid: grid}
}

// NextDirection returns the heading to use for the next step. Reversals are
// never proposed. If every option bites, the current heading is kept.
func (a *Autopilot) NextDirection(snake *entity.Snake, apple types.Position, hasApple bool) types.Direction {
	current := snake.Heading()
	head := snake.Head()

	best := current
	bestScore := -1 << 31
	for _, d := range candidates {
		if d == types.Opposite(current) {
			continue
		}
		next := types.Move(head, d, a.grid)
		if snake.OccupiesPosition(next) {
			continue
		}

		score := 0
		if hasApple {
			score = -2 * WrappedDistance(next, apple, a.grid)
		}
		if d == current {
			score++ // straight wins ties
		}
		if score > bestScore {
			best, bestScore = d, score
		}
	}
	return best
}

// WrappedDistance is the Manhattan distance between two cells on a board
// whose edges wrap.
func WrappedDistance(p1, p2 types.Position, g types.Grid) int {
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)

	if dx > g.Width/2 {
		dx = g.Width - dx
	}
	if dy > g.Height/2 {
		dy = g.Height - dy
	}

	return dx + dy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
