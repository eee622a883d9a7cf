package game

import (
	"math/rand"

	"github.com/trytobebee/termsnake/pkg/config"
)

type foodSpawner interface {
	Spawn(grid Grid, snake *Snake) (Point, bool)
}

// FoodSpawner picks free interior cells for food
type FoodSpawner struct {
	rng      *rand.Rand
	attempts int
}

// NewFoodSpawner creates a spawner drawing from rng
func NewFoodSpawner(rng *rand.Rand) *FoodSpawner {
	return &FoodSpawner{rng: rng, attempts: config.FoodSpawnAttempts}
}

// Spawn returns a uniformly random interior cell not occupied by the snake.
// It samples at random first and falls back to scanning every free cell, so
// it terminates even on a crowded board. ok is false when no cell is free.
func (f *FoodSpawner) Spawn(grid Grid, snake *Snake) (pos Point, ok bool) {
	if grid.Interior() == 0 {
		return Point{}, false
	}

	for attempt := 0; attempt < f.attempts; attempt++ {
		pos = Point{
			X: f.rng.Intn(grid.Width-2) + 1,
			Y: f.rng.Intn(grid.Height-2) + 1,
		}
		if !snake.Occupies(pos) {
			return pos, true
		}
	}

	free := make([]Point, 0, grid.Interior())
	for y := 1; y < grid.Height-1; y++ {
		for x := 1; x < grid.Width-1; x++ {
			p := Point{X: x, Y: y}
			if !snake.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[f.rng.Intn(len(free))], true
}
