package game

import (
	"time"

	"ringsnake/game/manager"
)

// Driver is the presentation side of the loop: it feeds input into the game
// and paints it once per frame.
type Driver interface {
	// PollInput applies pending input. It returns false when the player
	// asked to leave.
	PollInput(g *Game) bool
	Draw(g *Game)
}

// Play runs the game until it is won, lost or abandoned. Each frame polls
// input, steps once, draws and then sleeps for 1/FPS.
func Play(g *Game, d Driver) manager.Result {
	frame := time.Second / time.Duration(g.FPS)

	for d.PollInput(g) {
		switch g.Step() {
		case EventWin:
			d.Draw(g)
			return manager.Won
		case EventLose:
			d.Draw(g)
			return manager.Lost
		}
		d.Draw(g)
		time.Sleep(frame)
	}

	g.Quit()
	return manager.Quit
}
