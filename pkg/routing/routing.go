package routing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/natevvv/grid-pathfinder/pkg/geometry"
	"github.com/natevvv/grid-pathfinder/pkg/graph"
	"github.com/natevvv/grid-pathfinder/pkg/graph/path"
)

var (
	ErrUnknownNavigator = errors.New("routing: unknown navigator")
	ErrMissingEndpoint  = errors.New("routing: grid map without start or finish")
)

// Navigators which can be selected with SetNavigator
const (
	NavigatorAStar    = "astar"
	NavigatorDijkstra = "dijkstra"
)

// Config of a new routing session
type Config struct {
	Width           int
	Height          int
	Conn            graph.Connectivity
	Start           geometry.Point
	Finish          geometry.Point
	Navigator       string
	MaxSettledNodes int // values below 1 remove the limit
	DebugLevel      int
}

// Setup of the interactive demo: a 32x18 grid with the endpoints on the middle row
func DefaultConfig() Config {
	return Config{
		Width:     32,
		Height:    18,
		Conn:      graph.Conn4,
		Start:     geometry.MakePoint(2, 9),
		Finish:    geometry.MakePoint(30, 9),
		Navigator: NavigatorAStar,
	}
}

// Route result
type Route struct {
	Origin      geometry.Point   // start cell
	Destination geometry.Point   // finish cell
	Exists      bool             // whether a path exists
	Cost        float64          // path cost, -1 if no path exists
	Waypoints   []geometry.Point // cells on the path, empty if no path exists
	SearchSpace []geometry.Point // cells settled by the search
}

// Router is a routing session on one grid.
// Every edit of the grid or of the endpoints re-runs the search.
// It is safe for concurrent use.
type Router struct {
	mu              sync.Mutex
	grid            *graph.GridGraph
	start           graph.NodeId
	finish          graph.NodeId
	navigatorType   string
	navigator       path.Navigator
	maxSettledNodes int
	debugLevel      int
	lastRoute       Route
}

// Create a new router on the given grid
func NewRouter(grid *graph.GridGraph, start, finish geometry.Point, navigator string) (*Router, error) {
	r := &Router{grid: grid}
	var err error
	if r.start, err = grid.NodeAt(start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if r.finish, err = grid.NodeAt(finish); err != nil {
		return nil, fmt.Errorf("finish: %w", err)
	}
	if err := r.SetNavigator(navigator); err != nil {
		return nil, err
	}
	return r, nil
}

// Create a new router with an empty grid as described by cfg
func NewRouterFromConfig(cfg Config) (*Router, error) {
	grid, err := graph.NewGridGraph(cfg.Width, cfg.Height, cfg.Conn)
	if err != nil {
		return nil, err
	}
	return newConfiguredRouter(grid, cfg.Start, cfg.Finish, cfg)
}

// Create a new router from a grid map. The map needs a start and a finish.
// The size, the connectivity and the endpoints of cfg are ignored
func NewRouterFromGridMap(m *graph.GridMap, cfg Config) (*Router, error) {
	if m.Start < 0 || m.Finish < 0 {
		return nil, ErrMissingEndpoint
	}
	return newConfiguredRouter(m.Grid, m.Grid.GetNode(m.Start).Point, m.Grid.GetNode(m.Finish).Point, cfg)
}

func newConfiguredRouter(grid *graph.GridGraph, start, finish geometry.Point, cfg Config) (*Router, error) {
	r, err := NewRouter(grid, start, finish, cfg.Navigator)
	if err != nil {
		return nil, err
	}
	r.maxSettledNodes = cfg.MaxSettledNodes
	r.debugLevel = cfg.DebugLevel
	r.configureNavigator()
	return r, nil
}

// Select the algorithm, "astar" or "dijkstra"
func (r *Router) SetNavigator(navigatorType string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch navigatorType {
	case NavigatorAStar, NavigatorDijkstra:
		// the heuristic-free AStar is the Dijkstra of the demo
		r.navigator = path.NewAStar(r.grid)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownNavigator, navigatorType)
	}
	r.navigatorType = navigatorType
	r.configureNavigator()
	return nil
}

func (r *Router) configureNavigator() {
	astar := r.navigator.(*path.AStar)
	astar.SetUseHeuristic(r.navigatorType == NavigatorAStar)
	astar.SetMaxNumSettledNodes(r.maxSettledNodes)
	astar.SetDebugLevel(r.debugLevel)
}

func (r *Router) Navigator() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.navigatorType
}

// Compute the route between the current start and finish
func (r *Router) ComputeRoute(ctx context.Context) (Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.solve(ctx)
}

// Compute the route between two cells. They become the new start and finish
func (r *Router) ComputeRouteBetween(ctx context.Context, origin, destination geometry.Point) (Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	start, err := r.grid.NodeAt(origin)
	if err != nil {
		return Route{}, fmt.Errorf("origin: %w", err)
	}
	finish, err := r.grid.NodeAt(destination)
	if err != nil {
		return Route{}, fmt.Errorf("destination: %w", err)
	}
	r.start, r.finish = start, finish
	return r.solve(ctx)
}

// Toggle the obstacle flag of a cell and compute the new route
func (r *Router) ToggleObstacle(ctx context.Context, p geometry.Point) (Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, err := r.grid.NodeAt(p)
	if err != nil {
		return Route{}, err
	}
	obstacle := r.grid.ToggleObstacle(id)
	if r.debugLevel >= 1 {
		log.Printf("Cell %v obstacle: %v\n", p, obstacle)
	}
	return r.solve(ctx)
}

// Move the start to the given cell and compute the new route
func (r *Router) SetStart(ctx context.Context, p geometry.Point) (Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, err := r.grid.NodeAt(p)
	if err != nil {
		return Route{}, err
	}
	r.start = id
	return r.solve(ctx)
}

// Move the finish to the given cell and compute the new route
func (r *Router) SetFinish(ctx context.Context, p geometry.Point) (Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, err := r.grid.NodeAt(p)
	if err != nil {
		return Route{}, err
	}
	r.finish = id
	return r.solve(ctx)
}

// Move the start and the finish and compute the new route. A nil point keeps its endpoint.
// Nothing changes if one of the points is outside of the grid
func (r *Router) SetEndpoints(ctx context.Context, start, finish *geometry.Point) (Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	startId, finishId := r.start, r.finish
	var err error
	if start != nil {
		if startId, err = r.grid.NodeAt(*start); err != nil {
			return Route{}, fmt.Errorf("start: %w", err)
		}
	}
	if finish != nil {
		if finishId, err = r.grid.NodeAt(*finish); err != nil {
			return Route{}, fmt.Errorf("finish: %w", err)
		}
	}
	r.start, r.finish = startId, finishId
	return r.solve(ctx)
}

// Result of the last computation
func (r *Router) LastRoute() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastRoute
}

// Cells settled by the last computation
func (r *Router) GetSearchSpace() []geometry.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastRoute.SearchSpace
}

// Current start and finish
func (r *Router) Endpoints() (start, finish geometry.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.point(r.start), r.point(r.finish)
}

func (r *Router) Width() int  { return r.grid.Width }
func (r *Router) Height() int { return r.grid.Height }

// Cells which are obstacles
func (r *Router) Obstacles() []geometry.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buildWaypoints(r.grid.Obstacles())
}

// Render the grid with the endpoints and the last route in the grid map format
func (r *Router) Render() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	visited := make([]bool, r.grid.NodeCount())
	for _, p := range r.lastRoute.SearchSpace {
		visited[r.grid.Index(p.X, p.Y)] = true
	}
	cells := make([]graph.NodeId, 0, len(r.lastRoute.Waypoints))
	for _, p := range r.lastRoute.Waypoints {
		cells = append(cells, r.grid.Index(p.X, p.Y))
	}
	return graph.RenderGridMap(r.grid, r.start, r.finish, cells, visited)
}

// Run the navigator from start to finish. Requires the lock
func (r *Router) solve(ctx context.Context) (Route, error) {
	route := Route{Origin: r.point(r.start), Destination: r.point(r.finish), Cost: -1, Waypoints: make([]geometry.Point, 0)}

	cost, err := r.navigator.ComputeShortestPath(ctx, r.start, r.finish)
	route.SearchSpace = r.buildWaypoints(r.navigator.GetSearchSpace())
	if err != nil {
		r.lastRoute = route
		return route, err
	}
	if cost >= 0 {
		route.Exists = true
		route.Cost = cost
		route.Waypoints = r.buildWaypoints(r.navigator.GetPath(r.start, r.finish))
	}
	r.lastRoute = route
	return route, nil
}

func (r *Router) point(id graph.NodeId) geometry.Point {
	return r.grid.GetNode(id).Point
}

// Build the waypoints of the given node ids
func (r *Router) buildWaypoints(nodeIds []graph.NodeId) []geometry.Point {
	waypoints := make([]geometry.Point, 0, len(nodeIds))
	for _, nodeId := range nodeIds {
		waypoints = append(waypoints, r.point(nodeId))
	}
	return waypoints
}
