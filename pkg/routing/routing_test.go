package routing

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/natevvv/grid-pathfinder/pkg/geometry"
	"github.com/natevvv/grid-pathfinder/pkg/graph"
	"github.com/natevvv/grid-pathfinder/pkg/graph/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultRouter(t *testing.T) *Router {
	t.Helper()
	r, err := NewRouterFromConfig(DefaultConfig())
	require.NoError(t, err)
	return r
}

func TestDefaultRoute(t *testing.T) {
	r := newDefaultRouter(t)
	route, err := r.ComputeRoute(context.Background())
	require.NoError(t, err)
	assert.True(t, route.Exists)
	assert.InDelta(t, 28.0, route.Cost, 1e-9)
	require.Len(t, route.Waypoints, 29)
	assert.Equal(t, geometry.MakePoint(2, 9), route.Waypoints[0])
	assert.Equal(t, geometry.MakePoint(30, 9), route.Waypoints[28])
	assert.NotEmpty(t, route.SearchSpace)
	assert.Equal(t, route.SearchSpace, r.GetSearchSpace())
	assert.Equal(t, 32, r.Width())
	assert.Equal(t, 18, r.Height())
}

func TestToggleObstacle(t *testing.T) {
	r := newDefaultRouter(t)
	ctx := context.Background()

	route, err := r.ToggleObstacle(ctx, geometry.MakePoint(16, 9))
	require.NoError(t, err)
	assert.True(t, route.Exists)
	assert.InDelta(t, 30.0, route.Cost, 1e-9)
	assert.NotContains(t, route.Waypoints, geometry.MakePoint(16, 9))
	assert.Equal(t, []geometry.Point{geometry.MakePoint(16, 9)}, r.Obstacles())

	route, err = r.ToggleObstacle(ctx, geometry.MakePoint(16, 9))
	require.NoError(t, err)
	assert.InDelta(t, 28.0, route.Cost, 1e-9)
	assert.Empty(t, r.Obstacles())

	_, err = r.ToggleObstacle(ctx, geometry.MakePoint(32, 0))
	assert.ErrorIs(t, err, graph.ErrOutOfBounds)
}

func TestWallBlocksRoute(t *testing.T) {
	r := newDefaultRouter(t)
	ctx := context.Background()
	var route Route
	var err error
	for y := 0; y < r.Height(); y++ {
		route, err = r.ToggleObstacle(ctx, geometry.MakePoint(16, y))
		require.NoError(t, err)
	}
	assert.False(t, route.Exists)
	assert.Equal(t, -1.0, route.Cost)
	assert.Empty(t, route.Waypoints)
	assert.Equal(t, route, r.LastRoute())
}

func TestSetEndpoints(t *testing.T) {
	r := newDefaultRouter(t)
	ctx := context.Background()

	route, err := r.SetStart(ctx, geometry.MakePoint(30, 0))
	require.NoError(t, err)
	assert.InDelta(t, 9.0, route.Cost, 1e-9)

	route, err = r.SetFinish(ctx, geometry.MakePoint(27, 0))
	require.NoError(t, err)
	assert.InDelta(t, 3.0, route.Cost, 1e-9)
	start, finish := r.Endpoints()
	assert.Equal(t, geometry.MakePoint(30, 0), start)
	assert.Equal(t, geometry.MakePoint(27, 0), finish)

	_, err = r.SetFinish(ctx, geometry.MakePoint(-1, 3))
	assert.ErrorIs(t, err, graph.ErrOutOfBounds)

	route, err = r.ComputeRouteBetween(ctx, geometry.MakePoint(0, 0), geometry.MakePoint(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, route.Cost)
	assert.Equal(t, []geometry.Point{geometry.MakePoint(0, 0)}, route.Waypoints)
}

func TestSetBothEndpoints(t *testing.T) {
	r := newDefaultRouter(t)
	ctx := context.Background()
	before, err := r.ComputeRoute(ctx)
	require.NoError(t, err)

	start, outside := geometry.MakePoint(5, 5), geometry.MakePoint(99, 99)
	_, err = r.SetEndpoints(ctx, &start, &outside)
	assert.ErrorIs(t, err, graph.ErrOutOfBounds)
	s, f := r.Endpoints()
	assert.Equal(t, geometry.MakePoint(2, 9), s, "start moved by a failed request")
	assert.Equal(t, geometry.MakePoint(30, 9), f)
	assert.Equal(t, before, r.LastRoute())

	finish := geometry.MakePoint(5, 9)
	route, err := r.SetEndpoints(ctx, &start, &finish)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, route.Cost, 1e-9)
	assert.Equal(t, start, route.Origin)
	assert.Equal(t, finish, route.Destination)

	route, err = r.SetEndpoints(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, start, route.Origin)
}

func TestSetNavigator(t *testing.T) {
	r := newDefaultRouter(t)
	ctx := context.Background()
	astarRoute, err := r.ComputeRoute(ctx)
	require.NoError(t, err)

	require.NoError(t, r.SetNavigator(NavigatorDijkstra))
	assert.Equal(t, NavigatorDijkstra, r.Navigator())
	dijkstraRoute, err := r.ComputeRoute(ctx)
	require.NoError(t, err)
	assert.InDelta(t, astarRoute.Cost, dijkstraRoute.Cost, 1e-9)
	assert.Greater(t, len(dijkstraRoute.SearchSpace), len(astarRoute.SearchSpace))

	err = r.SetNavigator("contraction-hierarchies")
	assert.ErrorIs(t, err, ErrUnknownNavigator)
	assert.Equal(t, NavigatorDijkstra, r.Navigator())
}

func TestSearchLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSettledNodes = 5
	r, err := NewRouterFromConfig(cfg)
	require.NoError(t, err)
	route, err := r.ComputeRoute(context.Background())
	assert.ErrorIs(t, err, path.ErrSearchLimit)
	assert.False(t, route.Exists)
	assert.Len(t, route.SearchSpace, 5)
}

func TestRouterFromGridMap(t *testing.T) {
	m, err := graph.ParseGridMap("S.#\n..F\n", graph.Conn4)
	require.NoError(t, err)
	r, err := NewRouterFromGridMap(m, DefaultConfig())
	require.NoError(t, err)
	route, err := r.ComputeRoute(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 3.0, route.Cost, 1e-9)

	rendered := r.Render()
	assert.Len(t, strings.Split(strings.TrimSpace(rendered), "\n"), 2)
	assert.Equal(t, byte('S'), rendered[0])
	assert.Equal(t, byte('#'), rendered[2])
	assert.Contains(t, rendered, "*F")

	m, err = graph.ParseGridMap("...\n..F\n", graph.Conn4)
	require.NoError(t, err)
	_, err = NewRouterFromGridMap(m, DefaultConfig())
	assert.ErrorIs(t, err, ErrMissingEndpoint)
}

func TestInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Start = geometry.MakePoint(40, 9)
	_, err := NewRouterFromConfig(cfg)
	assert.ErrorIs(t, err, graph.ErrOutOfBounds)

	cfg = DefaultConfig()
	cfg.Navigator = "bidirectional-dijkstra"
	_, err = NewRouterFromConfig(cfg)
	assert.ErrorIs(t, err, ErrUnknownNavigator)

	cfg = DefaultConfig()
	cfg.Width = 0
	_, err = NewRouterFromConfig(cfg)
	assert.ErrorIs(t, err, graph.ErrEmptyGrid)
}

func TestConcurrentEdits(t *testing.T) {
	r := newDefaultRouter(t)
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// every cell is toggled twice, so the grid ends up empty again
			p := geometry.MakePoint(10+i, 3)
			_, err := r.ToggleObstacle(ctx, p)
			assert.NoError(t, err)
			_, err = r.ToggleObstacle(ctx, p)
			assert.NoError(t, err)
			_, err = r.ComputeRoute(ctx)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Empty(t, r.Obstacles())
	route, err := r.ComputeRoute(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 28.0, route.Cost, 1e-9)
}
