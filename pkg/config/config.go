package config

import "time"

// Game board dimensions, including the wall ring
const (
	Width  = 40
	Height = 20
)

// Snake settings
const (
	InitialLength  = 3  // Segments at game start
	ScoreIncrement = 10 // Points per food eaten
)

// Food spawn settings
const (
	FoodSpawnAttempts = 100 // Random samples before falling back to a full scan
)

// Speed settings
const (
	TickInterval = 100 * time.Millisecond // One simulation step per tick
)

// Characters for rendering
const (
	CharEmpty = " "
	CharWall  = "#"
	CharHead  = "@"
	CharBody  = "O"
	CharFood  = "*"
)

// ANSI colors for rendering
const (
	ColorReset  = "\033[0m"
	ColorWall   = "\033[33m"   // Yellow
	ColorHead   = "\033[92m"   // Bright green
	ColorBody   = "\033[32m"   // Green
	ColorFood   = "\033[91m"   // Bright red
	ColorBold   = "\033[1m"
	ColorBanner = "\033[1;31m" // Bold red
)
