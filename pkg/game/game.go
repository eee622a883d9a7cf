package game

import (
	"math/rand"
	"time"

	"github.com/trytobebee/termsnake/pkg/config"
)

// NewGame creates a new game on grid. The snake starts with
// config.InitialLength segments in the middle of the board, heading Right.
func NewGame(grid Grid, rng *rand.Rand) *Game {
	center := grid.Center()
	segments := make([]Point, config.InitialLength)
	for i := range segments {
		segments[i] = Point{X: center.X + config.InitialLength - 1 - i, Y: center.Y}
	}

	g := &Game{
		Grid:      grid,
		Snake:     NewSnake(segments...),
		Direction: Right,
		State:     Running,
		StartTime: time.Now(),
		spawner:   NewFoodSpawner(rng),
	}
	if food, ok := g.spawner.Spawn(g.Grid, g.Snake); ok {
		g.Food = food
	} else {
		g.end(ReasonBoardFull, Point{})
	}
	return g
}

// Over reports whether the game has ended
func (g *Game) Over() bool {
	return g.State == GameOver
}

// SetDirection changes the heading unless d reverses the current one.
// It returns whether the heading changed.
func (g *Game) SetDirection(d Direction) bool {
	if g.Over() || IsOpposite(g.Direction, d) || g.Direction == d {
		return false
	}
	g.Direction = d
	return true
}

// Quit ends the game at the player's request
func (g *Game) Quit() {
	if g.Over() {
		return
	}
	g.end(ReasonQuit, g.Snake.Head())
}

// Step advances the game by one tick
func (g *Game) Step() {
	if g.Over() {
		return
	}

	newHead := g.Snake.Head().Add(g.Direction)

	if g.Grid.IsWall(newHead) {
		g.end(ReasonWall, newHead)
		return
	}

	// The tail has not moved yet, so its cell still counts as body
	if g.Snake.Occupies(newHead) {
		g.end(ReasonSelf, newHead)
		return
	}

	if newHead == g.Food {
		g.Snake.Advance(newHead, true)
		g.Score += config.ScoreIncrement
		g.FoodEaten++

		food, ok := g.spawner.Spawn(g.Grid, g.Snake)
		if !ok {
			g.end(ReasonBoardFull, newHead)
			return
		}
		g.Food = food
		return
	}

	g.Snake.Advance(newHead, false)
}

// Elapsed returns how long the game has been played
func (g *Game) Elapsed() time.Duration {
	end := time.Now()
	if g.Over() {
		end = g.EndTime
	}
	return end.Sub(g.StartTime)
}

func (g *Game) end(reason EndReason, at Point) {
	g.State = GameOver
	g.Reason = reason
	g.CrashPoint = at
	g.EndTime = time.Now()
}
