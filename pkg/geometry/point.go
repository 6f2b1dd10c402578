package geometry

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Point is a cell position on an integer grid
type Point struct {
	X int
	Y int
}

func NewPoint(x, y int) *Point {
	return &Point{X: x, Y: y}
}

func MakePoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Convert the point to an orb point (x -> X, y -> Y)
func (p Point) Orb() orb.Point {
	return orb.Point{float64(p.X), float64(p.Y)}
}

// Euclidean distance between p and q.
// This is used both as edge cost and as A* heuristic.
func (p Point) DistanceTo(q Point) float64 {
	return planar.Distance(p.Orb(), q.Orb())
}

func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
