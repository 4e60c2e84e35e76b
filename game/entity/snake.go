package entity

import (
	"iter"

	"ringsnake/game/types"
)

// SnakeEvent is the outcome of a single Step
type SnakeEvent int

const (
	SnakeNone SnakeEvent = iota
	SnakeBite
)

func (e SnakeEvent) String() string {
	if e == SnakeBite {
		return "bite"
	}
	return "none"
}

// bodyCache remembers the last reconstructed segment so an ascending scan
// resumes where the previous query stopped.
type bodyCache struct {
	valid bool
	index int
	pos   types.Position
}

// Snake stores only its head and the directions leading from each segment
// to the next one. Segment positions are rebuilt on demand.
type Snake struct {
	grid      types.Grid
	head      types.Position
	direction types.Direction
	body      *DirectionHistory
	grow      bool
	cache     bodyCache
}

// NewSnake places a one-segment snake at start heading left. capacity bounds
// the number of body segments behind the head.
func NewSnake(start types.Position, grid types.Grid, capacity int) *Snake {
	s := &Snake{grid: grid}
	s.head = types.Wrap(start.X, start.Y, grid)
	s.direction = types.Left
	s.body = NewDirectionHistory(capacity)
	return s
}

func (s *Snake) Head() types.Position {
	return s.head
}

func (s *Snake) Heading() types.Direction {
	return s.direction
}

// Capacity is the longest body the history can describe behind the head.
func (s *Snake) Capacity() int {
	return s.body.Cap()
}

func (s *Snake) Size() int {
	return 1 + s.body.Size()
}

// ChangeDirection takes effect on the next Step. Reversals are ignored.
func (s *Snake) ChangeDirection(dir types.Direction) {
	if dir != types.Opposite(s.direction) {
		s.direction = dir
	}
}

// Grow requests one extra segment on the next Step.
func (s *Snake) Grow() {
	s.grow = true
}

// Growing reports whether a growth request is pending.
func (s *Snake) Growing() bool {
	return s.grow
}

// Step advances the head one cell. If the next cell is part of the current
// body the snake stays where it is and SnakeBite is returned.
func (s *Snake) Step() SnakeEvent {
	next := types.Move(s.head, s.direction, s.grid)
	if s.OccupiesPosition(next) {
		return SnakeBite
	}

	s.body.Push(types.Opposite(s.direction))
	s.head = next
	if !s.grow {
		s.body.Pop()
	} else {
		s.grow = false
	}

	s.cache.valid = false
	return SnakeNone
}

// BodyPosition returns segment n, the head being segment 0. The second
// result is false once n runs past the tail. Queries made in ascending
// order between two steps cost O(1) each; going backwards restarts from the
// head.
func (s *Snake) BodyPosition(n int) (types.Position, bool) {
	if n < 0 || n > s.body.Size() {
		return types.Position{}, false
	}

	i, p := 0, s.head
	if s.cache.valid && s.cache.index <= n {
		i, p = s.cache.index, s.cache.pos
	}

	for ; i < n; i++ {
		p = types.Move(p, s.body.Top(i), s.grid)
	}

	s.cache = bodyCache{valid: true, index: n, pos: p}
	return p, true
}

// Body yields segments head first. The sequence can be ranged over again
// after every step.
func (s *Snake) Body() iter.Seq2[int, types.Position] {
	return func(yield func(int, types.Position) bool) {
		for i := 0; ; i++ {
			p, ok := s.BodyPosition(i)
			if !ok || !yield(i, p) {
				return
			}
		}
	}
}

func (s *Snake) OccupiesPosition(pos types.Position) bool {
	for _, p := range s.Body() {
		if p == pos {
			return true
		}
	}
	return false
}
