package graph

import (
	"fmt"

	"github.com/natevvv/grid-pathfinder/pkg/geometry"
)

// Connectivity selects the neighbors of a grid cell.
type Connectivity int

const (
	// Conn4 connects a cell with the cells above, below, left and right of it.
	Conn4 Connectivity = iota
	// Conn8 additionally connects the diagonal cells.
	Conn8
)

func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// neighbor offsets in the order they get added to the adjacency
var (
	conn4Offsets = [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

// GridGraph is a static width×height grid.
// Cell (x, y) is stored at the row-major index y*Width + x.
// Only the obstacle flags may change after construction.
type GridGraph struct {
	*AdjacencyArrayGraph
	Width  int
	Height int
	Conn   Connectivity
}

// Build a grid without obstacles.
// Returns ErrEmptyGrid if width or height is not positive
func NewGridGraph(width, height int, conn Connectivity) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	var alg DynamicGraph = NewAdjacencyListGraph()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alg.AddNode(MakeNode(x, y, false))
		}
	}

	offsets := conn4Offsets
	if conn == Conn8 {
		offsets = conn8Offsets
	}

	gg := &GridGraph{Width: width, Height: height, Conn: conn}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := geometry.MakePoint(x, y)
			for _, d := range offsets {
				n := cell.Add(d[0], d[1])
				if !gg.InBounds(n.X, n.Y) {
					continue
				}
				alg.AddArc(gg.Index(x, y), gg.Index(n.X, n.Y))
			}
		}
	}
	gg.AdjacencyArrayGraph = NewAdjacencyArrayFromGraph(alg)

	return gg, nil
}

// Build a grid where obstacles[y][x] marks the obstacle cells
func NewGridGraphFromObstacles(obstacles [][]bool, conn Connectivity) (*GridGraph, error) {
	if len(obstacles) == 0 || len(obstacles[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(obstacles), len(obstacles[0])
	for _, row := range obstacles {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	gg, err := NewGridGraph(w, h, conn)
	if err != nil {
		return nil, err
	}
	for y, row := range obstacles {
		for x, obstacle := range row {
			gg.SetObstacle(gg.Index(x, y), obstacle)
		}
	}
	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Index maps (x,y) to the node id. The coordinate has to be in bounds
func (gg *GridGraph) Index(x, y int) NodeId {
	return y*gg.Width + x
}

// Coordinate converts a node id back to (x,y).
func (gg *GridGraph) Coordinate(id NodeId) (x, y int) {
	return id % gg.Width, id / gg.Width
}

// Get the node id of the cell at p
func (gg *GridGraph) NodeAt(p geometry.Point) (NodeId, error) {
	if !gg.InBounds(p.X, p.Y) {
		return -1, fmt.Errorf("%w: %v in %vx%v grid", ErrOutOfBounds, p, gg.Width, gg.Height)
	}
	return gg.Index(p.X, p.Y), nil
}

// Flip the obstacle flag of the cell and return the new value
func (gg *GridGraph) ToggleObstacle(id NodeId) bool {
	obstacle := !gg.IsObstacle(id)
	gg.SetObstacle(id, obstacle)
	return obstacle
}

// All obstacle cells in row-major order
func (gg *GridGraph) Obstacles() []NodeId {
	obstacles := make([]NodeId, 0)
	for id := range gg.Nodes {
		if gg.Nodes[id].Obstacle {
			obstacles = append(obstacles, id)
		}
	}
	return obstacles
}
