// Package engine drives a game at a fixed tick rate.
package engine

import (
	"fmt"
	"time"

	"github.com/trytobebee/termsnake/pkg/game"
	"github.com/trytobebee/termsnake/pkg/input"
)

// Poller returns the player's intent for this tick without blocking
type Poller interface {
	Poll() (input.Intent, error)
}

// Screen draws the current game state
type Screen interface {
	Render(g *game.Game) error
}

// Loop runs render, input, step and sleep once per tick until the game ends
type Loop struct {
	game     *game.Game
	input    Poller
	screen   Screen
	interval time.Duration
	sleep    func(time.Duration)
	ticks    int
}

// NewLoop creates a loop stepping g every interval
func NewLoop(g *game.Game, in Poller, screen Screen, interval time.Duration) *Loop {
	return &Loop{
		game:     g,
		input:    in,
		screen:   screen,
		interval: interval,
		sleep:    time.Sleep,
	}
}

// SetSleep replaces the clock's sleep function
func (l *Loop) SetSleep(sleep func(time.Duration)) {
	l.sleep = sleep
}

// Ticks returns the number of completed ticks
func (l *Loop) Ticks() int {
	return l.ticks
}

// Run blocks until the game is over or an I/O error occurs
func (l *Loop) Run() error {
	for !l.game.Over() {
		if err := l.screen.Render(l.game); err != nil {
			return fmt.Errorf("tick %d: %w", l.ticks, err)
		}

		intent, err := l.input.Poll()
		if err != nil {
			return fmt.Errorf("tick %d: %w", l.ticks, err)
		}
		Apply(l.game, intent)

		l.game.Step()
		l.ticks++
		l.sleep(l.interval)
	}
	return nil
}

// Apply hands one decoded intent to the game
func Apply(g *game.Game, intent input.Intent) {
	switch intent.Kind {
	case input.IntentMove:
		g.SetDirection(intent.Direction)
	case input.IntentQuit:
		g.Quit()
	}
}
