package game

import (
	"fmt"
	"time"
)

// Point represents a coordinate on the game board
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p moved by one step along d
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is the heading of the snake
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the unit offset for the direction. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// IsOpposite reports whether a and b point in geometrically opposite directions
func IsOpposite(a, b Direction) bool {
	ax, ay := a.Delta()
	bx, by := b.Delta()
	return (ax != 0 || ay != 0) && ax == -bx && ay == -by
}

// State is the phase of a game session
type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "running"
}

// EndReason records why a game left the Running state
type EndReason int

const (
	ReasonNone      EndReason = iota
	ReasonWall                // Head moved onto the wall ring
	ReasonSelf                // Head moved onto the snake's own body
	ReasonQuit                // Player pressed a quit key
	ReasonBoardFull           // No free cell left for food
)

func (r EndReason) String() string {
	switch r {
	case ReasonWall:
		return "hit the wall"
	case ReasonSelf:
		return "bit itself"
	case ReasonQuit:
		return "quit"
	case ReasonBoardFull:
		return "filled the board"
	}
	return ""
}

// Game represents the state of one session
type Game struct {
	Grid       Grid
	Snake      *Snake
	Food       Point
	Direction  Direction
	Score      int
	State      State
	Reason     EndReason
	CrashPoint Point     // Cell the head tried to enter on a collision
	FoodEaten  int       // Number of foods eaten
	StartTime  time.Time // Game start time
	EndTime    time.Time // Game end time

	spawner foodSpawner
}
