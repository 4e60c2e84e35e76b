package ui

import (
	"ringsnake/ai"
	"ringsnake/game"
	"ringsnake/game/manager"
)

// Frontend is a game.Driver owning a window or terminal.
type Frontend interface {
	game.Driver
	Close()
}

// Options are shared by every frontend
type Options struct {
	Sounds    *SoundManager // nil plays nothing
	Autopilot *ai.Autopilot // nil leaves steering to the player
}

// feedback turns state changes seen between frames into sound effects and
// applies the autopilot.
type feedback struct {
	opts      Options
	lastScore int
	ended     bool
}

func (f *feedback) steer(g *game.Game) {
	if f.opts.Autopilot == nil {
		return
	}
	apple, ok := g.GetFood()
	g.ChangeDirection(f.opts.Autopilot.NextDirection(g.GetSnake(), apple, ok))
}

func (f *feedback) observe(g *game.Game) {
	if f.opts.Sounds == nil || f.ended {
		return
	}

	switch g.Result() {
	case manager.Won:
		f.opts.Sounds.PlayWin()
		f.ended = true
		return
	case manager.Lost:
		f.opts.Sounds.PlayBite()
		f.ended = true
		return
	}

	if score := g.Score(); score > f.lastScore {
		f.opts.Sounds.PlayChomp()
		f.lastScore = score
	}
}
