package types

import "fmt"

// Board dimensions in cells
const (
	BoardWidth  = 32
	BoardHeight = 24
)

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid is the board the game is played on
var DefaultGrid = Grid{Width: BoardWidth, Height: BoardHeight}

// Cells returns the total number of cells on the board
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Position is a cell on the grid, always normalized by Wrap
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Wrap folds any coordinates, negative ones included, into the grid.
func Wrap(x, y int, g Grid) Position {
	return Position{X: mod(x, g.Width), Y: mod(y, g.Height)}
}

func mod(v, n int) int {
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}

// Direction represents a cardinal direction
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Opposite returns the reverse of d
func Opposite(d Direction) Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// ToPoint converts a Direction into a one-cell displacement
func (d Direction) ToPoint() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// Move returns the neighbour of p in direction d, wrapping at the edges.
func Move(p Position, d Direction, g Grid) Position {
	dx, dy := d.ToPoint()
	return Wrap(p.X+dx, p.Y+dy, g)
}
