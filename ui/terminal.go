package ui

import (
	"fmt"

	"ringsnake/game"
	"ringsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

var (
	terminalKeys = map[tcell.Key]types.Direction{
		tcell.KeyUp:    types.Up,
		tcell.KeyDown:  types.Down,
		tcell.KeyLeft:  types.Left,
		tcell.KeyRight: types.Right,
	}
	terminalRunes = map[rune]types.Direction{
		'k': types.Up, 'w': types.Up,
		'j': types.Down, 's': types.Down,
		'h': types.Left, 'a': types.Left,
		'l': types.Right, 'd': types.Right,
	}

	snakeStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	appleStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// canvas is the part of tcell.Screen the board is painted on
type canvas interface {
	Clear()
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Show()
}

// TerminalFrontend draws the board with two terminal columns per cell.
type TerminalFrontend struct {
	screen   tcell.Screen
	events   chan tcell.Event
	quit     chan struct{}
	feedback feedback
}

func NewTerminalFrontend(opts Options) (*TerminalFrontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return newTerminalFrontend(screen, opts)
}

func newTerminalFrontend(screen tcell.Screen, opts Options) (*TerminalFrontend, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()

	t := &TerminalFrontend{
		screen:   screen,
		events:   make(chan tcell.Event, 100),
		quit:     make(chan struct{}),
		feedback: feedback{opts: opts},
	}
	go t.pollEvents()
	return t, nil
}

func (t *TerminalFrontend) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// PollInput drains queued events without blocking.
func (t *TerminalFrontend) PollInput(g *game.Game) bool {
	for {
		select {
		case ev := <-t.events:
			if !t.handleEvent(g, ev) {
				return false
			}
		default:
			t.feedback.steer(g)
			return true
		}
	}
}

func (t *TerminalFrontend) handleEvent(g *game.Game, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			if ev.Rune() == 'q' {
				return false
			}
			if dir, ok := terminalRunes[ev.Rune()]; ok {
				g.ChangeDirection(dir)
			}
			return true
		}
		if dir, ok := terminalKeys[ev.Key()]; ok {
			g.ChangeDirection(dir)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *TerminalFrontend) Draw(g *game.Game) {
	drawBoard(t.screen, g)
	t.feedback.observe(g)
}

// drawBoard paints the board inside a one-cell border with the status line
// underneath.
func drawBoard(c canvas, g *game.Game) {
	c.Clear()
	w, h := g.Grid.Width*2, g.Grid.Height

	for x := 0; x <= w+1; x++ {
		c.SetContent(x, 0, '─', nil, borderStyle)
		c.SetContent(x, h+1, '─', nil, borderStyle)
	}
	for y := 0; y <= h+1; y++ {
		c.SetContent(0, y, '│', nil, borderStyle)
		c.SetContent(w+1, y, '│', nil, borderStyle)
	}

	for i, p := range g.GetSnake().Body() {
		r := '█'
		if i == 0 {
			r = '▓'
		}
		putCell(c, p, r, snakeStyle)
	}
	if apple, ok := g.GetFood(); ok {
		putCell(c, apple, '●', appleStyle)
	}

	status := fmt.Sprintf(" score %d  size %d  %s ", g.Score(), g.GetSnake().Size(), g.Result())
	for i, r := range status {
		c.SetContent(1+i, h+2, r, nil, statusStyle)
	}
	c.Show()
}

func putCell(c canvas, p types.Position, r rune, style tcell.Style) {
	x, y := 1+p.X*2, 1+p.Y
	c.SetContent(x, y, r, nil, style)
	c.SetContent(x+1, y, r, nil, style)
}

func (t *TerminalFrontend) Close() {
	close(t.quit)
	t.screen.Fini()
}
