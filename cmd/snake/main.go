package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/trytobebee/termsnake/pkg/config"
	"github.com/trytobebee/termsnake/pkg/engine"
	"github.com/trytobebee/termsnake/pkg/game"
	"github.com/trytobebee/termsnake/pkg/input"
	"github.com/trytobebee/termsnake/pkg/renderer"
	"github.com/trytobebee/termsnake/pkg/terminal"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("snake: ")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	tty, err := terminal.Open(os.Stdin)
	if err != nil {
		log.Fatalf("Error opening terminal: %v", err)
	}

	render := renderer.NewTerminalRenderer(os.Stdout, config.Width, config.Height)

	// Every exit path, including panics and signals, goes through restore
	restore := sync.OnceValue(func() error {
		return errors.Join(render.ShowCursor(), tty.Restore())
	})
	stop := terminal.RestoreOnSignal(func() { restore() })
	defer stop()
	defer restore()

	if err := render.HideCursor(); err != nil {
		restore()
		log.Fatalf("Error hiding cursor: %v", err)
	}

	g := game.NewGame(game.NewGrid(config.Width, config.Height), rng)
	loop := engine.NewLoop(g, input.NewReader(tty), render, config.TickInterval)
	if err := loop.Run(); err != nil {
		restore()
		log.Fatalf("Game loop failed: %v", err)
	}

	err = finish(tty, render, g, restore)
	stop()
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := input.WaitAnyKey(); err != nil {
		log.Printf("%v", err)
	}
}

type drainer interface {
	Drain() error
}

type summaryScreen interface {
	RenderGameOver(g *game.Game) error
}

// finish draws the summary and releases the terminal. The terminal is
// restored even when drawing fails, and every error is reported.
func finish(tty drainer, screen summaryScreen, g *game.Game, restore func() error) error {
	var errs []error
	// Keys pressed during the last tick should not skip the summary
	if err := tty.Drain(); err != nil {
		errs = append(errs, fmt.Errorf("drain input: %w", err))
	}
	if err := screen.RenderGameOver(g); err != nil {
		errs = append(errs, fmt.Errorf("draw summary: %w", err))
	}
	if err := restore(); err != nil {
		errs = append(errs, fmt.Errorf("restore terminal: %w", err))
	}
	return errors.Join(errs...)
}
