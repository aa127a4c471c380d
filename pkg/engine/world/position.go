package world

import "fmt"

// Position is a cell coordinate on a square grid
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String returns "(x,y)"
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns the position reached by moving n cells in direction d
func (p Position) Step(d Direction, n int) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx*n, Y: p.Y + dy*n}
}

// InBounds reports whether p lies inside a size x size grid
func (p Position) InBounds(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// Wrap folds p back onto a size x size torus
func (p Position) Wrap(size int) Position {
	return Position{X: wrap(p.X, size), Y: wrap(p.Y, size)}
}

func wrap(v, size int) int {
	if size <= 0 {
		return 0
	}
	return ((v % size) + size) % size
}
