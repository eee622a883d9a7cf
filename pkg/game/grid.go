package game

// Grid is the fixed board. The outer ring of cells is wall.
type Grid struct {
	Width  int
	Height int
}

// NewGrid returns a width x height board
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// IsWall reports whether p lies on the wall ring. Points outside the board
// also count as wall, so any move off the playable area collides.
func (g Grid) IsWall(p Point) bool {
	return p.X <= 0 || p.X >= g.Width-1 || p.Y <= 0 || p.Y >= g.Height-1
}

// Interior returns the number of playable cells
func (g Grid) Interior() int {
	if g.Width < 3 || g.Height < 3 {
		return 0
	}
	return (g.Width - 2) * (g.Height - 2)
}

// Center returns the middle cell of the board
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}
