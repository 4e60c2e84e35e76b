package ui

import (
	"testing"

	"ringsnake/ai"
	"ringsnake/game"
	"ringsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

type recordedCell struct {
	r     rune
	style tcell.Style
}

// mockCanvas records what drawBoard paints
type mockCanvas struct {
	cells map[[2]int]recordedCell
	shown int
}

func newMockCanvas() *mockCanvas {
	return &mockCanvas{cells: make(map[[2]int]recordedCell)}
}

func (m *mockCanvas) Clear() { m.cells = make(map[[2]int]recordedCell) }
func (m *mockCanvas) Show()  { m.shown++ }
func (m *mockCanvas) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = recordedCell{r: mainc, style: style}
}

func newTestGame(t *testing.T, grid types.Grid, x, y int) *game.Game {
	t.Helper()
	g, err := game.NewGame(game.Config{Grid: grid, FPS: 1000, SpawnX: x, SpawnY: y, Seed: 1})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestDrawBoard(t *testing.T) {
	g := newTestGame(t, types.Grid{Width: 10, Height: 8}, 4, 3)
	c := newMockCanvas()
	drawBoard(c, g)

	if c.shown != 1 {
		t.Errorf("Show called %d times, want 1", c.shown)
	}

	head := c.cells[[2]int{1 + 4*2, 1 + 3}]
	if head.r != '▓' || head.style != snakeStyle {
		t.Errorf("head cell = %q, want snake head", head.r)
	}
	if c.cells[[2]int{2 + 4*2, 1 + 3}].r != '▓' {
		t.Error("head drawn one column wide")
	}

	apple, ok := g.GetFood()
	if !ok {
		t.Fatal("no apple")
	}
	if got := c.cells[[2]int{1 + apple.X*2, 1 + apple.Y}]; got.r != '●' || got.style != appleStyle {
		t.Errorf("apple cell = %q, want apple", got.r)
	}

	for _, corner := range [][2]int{{0, 0}, {21, 0}, {0, 9}, {21, 9}} {
		if _, ok := c.cells[corner]; !ok {
			t.Errorf("border corner %v not drawn", corner)
		}
	}
	if c.cells[[2]int{2, 10}].r != 's' {
		t.Error("status line missing")
	}
}

func TestDrawBoardBody(t *testing.T) {
	g := newTestGame(t, types.Grid{Width: 30, Height: 30}, 15, 15)
	g.GetSnake().Grow()
	g.Step()

	c := newMockCanvas()
	drawBoard(c, g)
	for i, p := range g.GetSnake().Body() {
		want := '█'
		if i == 0 {
			want = '▓'
		}
		if got := c.cells[[2]int{1 + p.X*2, 1 + p.Y}].r; got != want {
			t.Errorf("segment %d at %v drawn as %q, want %q", i, p, got, want)
		}
	}
}

func TestHandleEvent(t *testing.T) {
	tests := []struct {
		name      string
		ev        *tcell.EventKey
		heading   types.Direction
		keepGoing bool
	}{
		{"Arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), types.Up, true},
		{"Arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), types.Down, true},
		{"Arrow right is a reversal", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), types.Left, true},
		{"Vi up", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), types.Up, true},
		{"WASD down", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), types.Down, true},
		{"Unmapped rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), types.Left, true},
		{"Quit rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), types.Left, false},
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), types.Left, false},
		{"Ctrl-C", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), types.Left, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, types.Grid{Width: 10, Height: 10}, 5, 5)
			term := &TerminalFrontend{}
			if got := term.handleEvent(g, tt.ev); got != tt.keepGoing {
				t.Errorf("handleEvent() = %v, want %v", got, tt.keepGoing)
			}
			if h := g.GetSnake().Heading(); h != tt.heading {
				t.Errorf("heading = %v, want %v", h, tt.heading)
			}
		})
	}
}

func TestTerminalFrontendLifecycle(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := newTerminalFrontend(screen, Options{Sounds: NewSoundManager()})
	if err != nil {
		t.Fatalf("newTerminalFrontend: %v", err)
	}
	screen.SetSize(80, 30)

	g := newTestGame(t, types.Grid{Width: 10, Height: 10}, 5, 5)
	if !term.PollInput(g) {
		t.Error("PollInput quit without input")
	}
	term.Draw(g)
	term.Close()
}

func TestPollInputAppliesQueuedEvents(t *testing.T) {
	g := newTestGame(t, types.Grid{Width: 10, Height: 10}, 5, 5)
	term := &TerminalFrontend{events: make(chan tcell.Event, 4)}

	term.events <- tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	term.events <- tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
	if !term.PollInput(g) {
		t.Fatal("PollInput quit")
	}
	if h := g.GetSnake().Heading(); h != types.Right {
		t.Errorf("heading = %v, want right", h)
	}

	term.events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	if term.PollInput(g) {
		t.Error("PollInput ignored quit")
	}
}

func TestAutopilotSteersThroughFrontend(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	g := newTestGame(t, grid, 5, 5)
	term := &TerminalFrontend{
		events:   make(chan tcell.Event, 1),
		feedback: feedback{opts: Options{Autopilot: ai.NewAutopilot(grid)}},
	}

	apple, _ := g.GetFood()
	want := ai.NewAutopilot(grid).NextDirection(g.GetSnake(), apple, true)
	term.PollInput(g)
	if h := g.GetSnake().Heading(); h != want {
		t.Errorf("heading = %v, want %v", h, want)
	}
}
