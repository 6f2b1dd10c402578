package osmimport

import (
	"math"

	"github.com/natevvv/grid-pathfinder/pkg/graph"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Raster maps geographic coordinates to the cells of a width x height grid over a bound.
// Row 0 is the northern edge.
type Raster struct {
	bound  orb.Bound
	width  int
	height int
	dx, dy float64
}

func NewRaster(bound orb.Bound, width, height int) (*Raster, error) {
	if width < 1 || height < 1 {
		return nil, graph.ErrEmptyGrid
	}
	if bound.Max[0] <= bound.Min[0] || bound.Max[1] <= bound.Min[1] {
		return nil, ErrEmptyBound
	}
	return &Raster{
		bound:  bound,
		width:  width,
		height: height,
		dx:     (bound.Max[0] - bound.Min[0]) / float64(width),
		dy:     (bound.Max[1] - bound.Min[1]) / float64(height),
	}, nil
}

// Cell containing p. Points on the eastern and southern edge belong to the last column and row
func (r *Raster) Cell(p orb.Point) (x, y int, ok bool) {
	if !r.bound.Contains(p) {
		return -1, -1, false
	}
	x, y = r.clampedCell(p)
	return x, y, true
}

// Cell containing p, or the nearest cell if p lies outside of the bound
func (r *Raster) clampedCell(p orb.Point) (x, y int) {
	x = int(math.Floor((p[0] - r.bound.Min[0]) / r.dx))
	y = int(math.Floor((r.bound.Max[1] - p[1]) / r.dy))
	return min(max(x, 0), r.width-1), min(max(y, 0), r.height-1)
}

// Center of the cell (x, y)
func (r *Raster) Center(x, y int) orb.Point {
	return orb.Point{
		r.bound.Min[0] + (float64(x)+0.5)*r.dx,
		r.bound.Max[1] - (float64(y)+0.5)*r.dy,
	}
}

// Rasterize the features onto a new grid. Lines block every cell they cross,
// areas additionally block every cell whose center lies inside
func (r *Raster) Rasterize(features []Feature, conn graph.Connectivity) (*graph.GridGraph, error) {
	gg, err := graph.NewGridGraph(r.width, r.height, conn)
	if err != nil {
		return nil, err
	}
	block := func(x, y int) { gg.SetObstacle(gg.Index(x, y), true) }

	for _, f := range features {
		r.rasterizeLine(f.Points, block)
		if f.IsArea() {
			r.rasterizeArea(f.Ring(), block)
		}
	}
	return gg, nil
}

func (r *Raster) rasterizeLine(ls orb.LineString, block func(x, y int)) {
	step := math.Min(r.dx, r.dy) / 2
	for i, p := range ls {
		if x, y, ok := r.Cell(p); ok {
			block(x, y)
		}
		if i == 0 {
			continue
		}
		q := ls[i-1]
		n := int(math.Ceil(planar.Distance(p, q) / step))
		for s := 1; s < n; s++ {
			t := float64(s) / float64(n)
			sample := orb.Point{q[0] + t*(p[0]-q[0]), q[1] + t*(p[1]-q[1])}
			if x, y, ok := r.Cell(sample); ok {
				block(x, y)
			}
		}
	}
}

func (r *Raster) rasterizeArea(ring orb.Ring, block func(x, y int)) {
	rb := ring.Bound()
	if !r.bound.Intersects(rb) {
		return
	}
	minX, minY := r.clampedCell(orb.Point{rb.Min[0], rb.Max[1]})
	maxX, maxY := r.clampedCell(orb.Point{rb.Max[0], rb.Min[1]})
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if planar.RingContains(ring, r.Center(x, y)) {
				block(x, y)
			}
		}
	}
}
