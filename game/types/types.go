package types

// Point is a grid cell (x, y) or a unit step vector (dx, dy).
type Point struct {
	X, Y int
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Cardinal step vectors. Y grows downwards.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Add returns p moved by v.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// IsCardinal reports whether v is one of Up, Down, Left or Right.
func (v Point) IsCardinal() bool {
	switch v {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// Opposite returns the reversed vector.
func (v Point) Opposite() Point {
	return Point{X: -v.X, Y: -v.Y}
}

// TurnLeft rotates a direction 90° counter-clockwise (screen coordinates).
func (v Point) TurnLeft() Point {
	return Point{X: v.Y, Y: -v.X}
}

// TurnRight rotates a direction 90° clockwise (screen coordinates).
func (v Point) TurnRight() Point {
	return Point{X: -v.Y, Y: v.X}
}

// Contains reports whether p lies inside [0,Width)×[0,Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Manhattan returns the taxicab distance between two cells.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
