package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"ringsnake/ai"
	"ringsnake/game"
	"ringsnake/game/manager"
	"ringsnake/ui"
)

func main() {
	defaults := game.DefaultConfig()
	fps := flag.Int("fps", defaults.FPS, "Frames (and steps) per second")
	spawnX := flag.Int("x", defaults.SpawnX, "Snake spawn column")
	spawnY := flag.Int("y", defaults.SpawnY, "Snake spawn row")
	seed := flag.Uint64("seed", 0, "Apple placement seed (0 = time based)")
	tui := flag.Bool("tui", false, "Play in the terminal instead of a window")
	autopilot := flag.Bool("autopilot", false, "Let the computer steer")
	mute := flag.Bool("mute", false, "Disable sound effects")
	flag.Parse()

	log.SetPrefix("ringsnake: ")
	log.SetFlags(0)

	cfg := defaults
	cfg.FPS = *fps
	cfg.SpawnX = *spawnX
	cfg.SpawnY = *spawnY
	if *seed != 0 {
		cfg.Seed = *seed
	}

	os.Exit(run(cfg, *tui, *autopilot, *mute))
}

func run(cfg game.Config, tui, autopilot, mute bool) int {
	g, err := game.NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game object: %v\n", err)
		return 1
	}

	opts := ui.Options{}
	if autopilot {
		opts.Autopilot = ai.NewAutopilot(cfg.Grid)
	}
	if !mute {
		sounds := ui.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("audio initialization failed: %v", err)
		} else {
			defer sounds.Cleanup()
		}
		opts.Sounds = sounds
	}

	var frontend ui.Frontend
	if tui {
		frontend, err = ui.NewTerminalFrontend(opts)
	} else {
		frontend, err = ui.NewWindowFrontend(cfg.Grid, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start frontend: %v\n", err)
		return 1
	}

	result := game.Play(g, frontend)
	if result != manager.Quit {
		// Leave the final frame up for a moment
		time.Sleep(time.Second)
	}
	frontend.Close()

	switch result {
	case manager.Won:
		fmt.Fprintln(os.Stderr, "You win!")
	case manager.Lost:
		fmt.Fprintln(os.Stderr, "You lose!")
	}
	return 0
}
