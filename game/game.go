package game

import (
	"fmt"
	"log"
	"time"

	"ringsnake/game/entity"
	"ringsnake/game/manager"
	"ringsnake/game/types"

	"github.com/google/uuid"
)

// Event is what a single tick produced
type Event int

const (
	EventNone Event = iota
	EventWin
	EventLose
)

func (e Event) String() string {
	switch e {
	case EventWin:
		return "win"
	case EventLose:
		return "lose"
	default:
		return "none"
	}
}

// Config holds the runtime settings of a game
type Config struct {
	Grid       types.Grid
	FPS        int
	SpawnX     int
	SpawnY     int
	Seed       uint64
	HistoryCap int // 0 sizes the body history to the board
}

func DefaultConfig() Config {
	return Config{
		Grid:   types.DefaultGrid,
		FPS:    10,
		SpawnX: types.BoardWidth / 2,
		SpawnY: types.BoardHeight / 2,
		Seed:   uint64(time.Now().UnixNano()),
	}
}

type Game struct {
	UUID  string
	Grid  types.Grid
	FPS   int
	pool  *manager.SnakePool
	snake *entity.Snake
	food  *manager.FoodManager
	state *manager.StateManager
}

// NewGame allocates the snake and spawns the first apple. It fails when the
// snake cannot be created; the game cannot run without it.
func NewGame(cfg Config) (*Game, error) {
	if cfg.FPS < 1 {
		return nil, fmt.Errorf("invalid fps %d", cfg.FPS)
	}

	pool, err := manager.NewSnakePool(1, cfg.Grid, cfg.HistoryCap)
	if err != nil {
		return nil, fmt.Errorf("create snake pool: %w", err)
	}
	h, err := pool.Allocate(cfg.SpawnX, cfg.SpawnY)
	if err != nil {
		return nil, fmt.Errorf("create snake: %w", err)
	}
	snake, err := pool.Get(h)
	if err != nil {
		return nil, fmt.Errorf("create snake: %w", err)
	}

	g := &Game{
		UUID:  uuid.New().String(),
		Grid:  cfg.Grid,
		FPS:   cfg.FPS,
		pool:  pool,
		snake: snake,
		food:  manager.NewFoodManager(cfg.Grid, cfg.Seed),
		state: manager.NewStateManager(),
	}
	if cfg.Grid.Cells() > 1 {
		g.food.Spawn(g.snake)
	}

	log.Printf("game %s: %dx%d board, snake at %v, %d fps",
		g.UUID, cfg.Grid.Width, cfg.Grid.Height, snake.Head(), cfg.FPS)
	return g, nil
}

// Step advances the game one tick. After a win or a loss it keeps
// returning the same event without touching the board.
func (g *Game) Step() Event {
	switch g.state.Result() {
	case manager.Won:
		return EventWin
	case manager.Lost:
		return EventLose
	case manager.Quit:
		return EventNone
	}

	if g.snake.Step() == entity.SnakeBite {
		g.finish(manager.Lost)
		return EventLose
	}
	g.state.Tick()

	if g.food.IsFoodCollision(g.snake.Head()) {
		// The snake covers every cell, nowhere left for an apple
		if g.snake.Size() == g.Grid.Cells() {
			g.food.Consume()
			g.finish(manager.Won)
			return EventWin
		}

		g.snake.Grow()
		g.food.Consume()
		g.food.Spawn(g.snake)
	}

	return EventNone
}

func (g *Game) finish(r manager.Result) {
	g.state.Finish(r)
	log.Printf("game %s: %s after %d ticks, size %d, %s",
		g.UUID, r, g.state.Ticks(), g.snake.Size(), g.state.Elapsed().Round(time.Millisecond))
}

// Quit ends a running game without a winner.
func (g *Game) Quit() {
	if !g.state.Over() {
		g.finish(manager.Quit)
	}
}

// ChangeDirection forwards a direction request to the snake; it is applied
// on the next Step.
func (g *Game) ChangeDirection(d types.Direction) {
	g.snake.ChangeDirection(d)
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

// GetFood returns the apple position; false when no apple is on the board.
func (g *Game) GetFood() (types.Position, bool) {
	return g.food.Apple()
}

// Score is the number of apples eaten so far
func (g *Game) Score() int {
	return g.snake.Size() - 1
}

func (g *Game) Result() manager.Result {
	return g.state.Result()
}

func (g *Game) Ticks() int {
	return g.state.Ticks()
}

func (g *Game) ElapsedTime() time.Duration {
	return g.state.Elapsed()
}
