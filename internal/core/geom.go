// Package core provides the grid, input and screen-buffer primitives shared by the
// game logic and the terminal platform. It has no terminal dependencies so game
// logic stays pure and testable.
package core

// Point is an integer grid coordinate in tile units.
// The same type is used for snake segments, food, obstacles and velocities.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Neg returns the opposite vector.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Collides reports whether two cells are the same grid cell.
func (p Point) Collides(other Point) bool {
	return p == other
}

// CollidesAny reports whether p is equal to any cell in cells.
func (p Point) CollidesAny(cells []Point) bool {
	for _, c := range cells {
		if p.Collides(c) {
			return true
		}
	}
	return false
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
