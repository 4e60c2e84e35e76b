package ui

import (
	"errors"
	"fmt"

	"ringsnake/game"
	"ringsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	cellSize  = 20 // pixels per board cell
	hudHeight = 30
)

type windowKey struct {
	key int32
	dir types.Direction
}

// windowKeys is checked in order, so the last pressed entry wins
var windowKeys = []windowKey{
	{rl.KeyUp, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyRight, types.Right},
}

// WindowFrontend draws the board in a raylib window.
type WindowFrontend struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	feedback     feedback
}

// NewWindowFrontend opens a window sized for grid.
func NewWindowFrontend(grid types.Grid, opts Options) (*WindowFrontend, error) {
	r := &WindowFrontend{
		cellSize:     cellSize,
		screenWidth:  int32(grid.Width) * cellSize,
		screenHeight: int32(grid.Height)*cellSize + hudHeight,
		feedback:     feedback{opts: opts},
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(r.screenWidth, r.screenHeight, "Snake")
	if !rl.IsWindowReady() {
		return nil, errors.New("failed to create window")
	}
	return r, nil
}

func (r *WindowFrontend) PollInput(g *game.Game) bool {
	if rl.WindowShouldClose() {
		return false
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		return false
	}

	applyWindowKeys(g, rl.IsKeyPressed)
	r.feedback.steer(g)
	return true
}

// applyWindowKeys forwards every pressed arrow key to the game in
// windowKeys order.
func applyWindowKeys(g *game.Game, pressed func(key int32) bool) {
	for _, k := range windowKeys {
		if pressed(k.key) {
			g.ChangeDirection(k.dir)
		}
	}
}

func (r *WindowFrontend) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	for _, p := range g.GetSnake().Body() {
		r.drawCell(p, rl.White)
	}
	if apple, ok := g.GetFood(); ok {
		r.drawCell(apple, rl.Red)
	}

	boardHeight := r.screenHeight - hudHeight
	rl.DrawRectangle(0, boardHeight, r.screenWidth, hudHeight, rl.DarkGray)
	rl.DrawText(fmt.Sprintf("Score: %d", g.Score()), 8, boardHeight+6, 20, rl.White)

	rl.EndDrawing()
	r.feedback.observe(g)
}

func (r *WindowFrontend) drawCell(p types.Position, color rl.Color) {
	rl.DrawRectangle(int32(p.X)*r.cellSize, int32(p.Y)*r.cellSize, r.cellSize, r.cellSize, color)
}

func (r *WindowFrontend) Close() {
	rl.CloseWindow()
}
