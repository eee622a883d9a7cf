package game

import "testing"

// TestIsOpposite checks every pair of directions
func TestIsOpposite(t *testing.T) {
	opposite := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	all := []Direction{Up, Down, Left, Right}

	for _, a := range all {
		for _, b := range all {
			want := opposite[a] == b
			if got := IsOpposite(a, b); got != want {
				t.Errorf("IsOpposite(%v, %v) = %v, want %v", a, b, got, want)
			}
		}
	}
}

// TestPointAdd checks that each direction moves exactly one cell
func TestPointAdd(t *testing.T) {
	origin := Point{X: 5, Y: 5}
	tests := []struct {
		dir  Direction
		want Point
	}{
		{Up, Point{5, 4}},
		{Down, Point{5, 6}},
		{Left, Point{4, 5}},
		{Right, Point{6, 5}},
	}
	for _, tc := range tests {
		if got := origin.Add(tc.dir); got != tc.want {
			t.Errorf("%v.Add(%v) = %v, want %v", origin, tc.dir, got, tc.want)
		}
	}
}

// TestGridIsWall checks the wall ring on a small board
func TestGridIsWall(t *testing.T) {
	grid := NewGrid(5, 4)
	for y := -1; y <= grid.Height; y++ {
		for x := -1; x <= grid.Width; x++ {
			interior := x >= 1 && x <= 3 && y >= 1 && y <= 2
			if got := grid.IsWall(Point{x, y}); got == interior {
				t.Errorf("IsWall(%d,%d) = %v, interior=%v", x, y, got, interior)
			}
		}
	}
	if grid.Interior() != 6 {
		t.Errorf("Expected 6 interior cells, got %d", grid.Interior())
	}
}
