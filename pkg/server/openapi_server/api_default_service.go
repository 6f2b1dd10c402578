package openapi_server

import (
	"context"
	"net/http"

	"github.com/natevvv/grid-pathfinder/pkg/geometry"
	"github.com/natevvv/grid-pathfinder/pkg/routing"
)

// DefaultApiService is a service that implements the logic for the DefaultApiServicer
// This service should implement the business logic for every endpoint for the DefaultApi API.
// Include any external packages or services that will be required by this service.
type DefaultApiService struct {
	router *routing.Router
}

// NewDefaultApiService creates a default api service
func NewDefaultApiService(router *routing.Router) DefaultApiServicer {
	return &DefaultApiService{router: router}
}

func (s *DefaultApiService) GetGrid(ctx context.Context) (ImplResponse, error) {
	start, finish := s.router.Endpoints()
	grid := Grid{
		Width:     s.router.Width(),
		Height:    s.router.Height(),
		Start:     toPoint(start),
		Finish:    toPoint(finish),
		Obstacles: toPoints(s.router.Obstacles()),
		Navigator: s.router.Navigator(),
	}
	return Response(http.StatusOK, grid), nil
}

func (s *DefaultApiService) RenderGrid(ctx context.Context) (ImplResponse, error) {
	return Response(http.StatusOK, s.router.Render()), nil
}

// ComputeRoute - Compute a new route
func (s *DefaultApiService) ComputeRoute(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	route, err := s.router.ComputeRouteBetween(ctx, fromPoint(*routeRequest.Origin), fromPoint(*routeRequest.Destination))
	if err != nil {
		return Response(http.StatusInternalServerError, nil), err
	}
	return Response(http.StatusOK, toRouteResult(route)), nil
}

func (s *DefaultApiService) ToggleObstacle(ctx context.Context, obstacleRequest ObstacleRequest) (ImplResponse, error) {
	route, err := s.router.ToggleObstacle(ctx, fromPoint(*obstacleRequest.Cell))
	if err != nil {
		return Response(http.StatusInternalServerError, nil), err
	}
	return Response(http.StatusOK, toRouteResult(route)), nil
}

func (s *DefaultApiService) SetEndpoints(ctx context.Context, endpointsRequest EndpointsRequest) (ImplResponse, error) {
	var start, finish *geometry.Point
	if endpointsRequest.Start != nil {
		p := fromPoint(*endpointsRequest.Start)
		start = &p
	}
	if endpointsRequest.Finish != nil {
		p := fromPoint(*endpointsRequest.Finish)
		finish = &p
	}
	route, err := s.router.SetEndpoints(ctx, start, finish)
	if err != nil {
		return Response(http.StatusInternalServerError, nil), err
	}
	return Response(http.StatusOK, toRouteResult(route)), nil
}

func (s *DefaultApiService) GetSearchSpace(ctx context.Context) (ImplResponse, error) {
	nodes := Nodes{Waypoints: toPoints(s.router.GetSearchSpace())}
	return Response(http.StatusOK, nodes), nil
}

func (s *DefaultApiService) SetNavigator(ctx context.Context, navigatorRequest NavigatorRequest) (ImplResponse, error) {
	if err := s.router.SetNavigator(navigatorRequest.Navigator); err != nil {
		return Response(http.StatusBadRequest, nil), err
	}
	return Response(http.StatusOK, navigatorRequest.Navigator), nil
}

func toRouteResult(route routing.Route) RouteResult {
	routeResult := RouteResult{Origin: toPoint(route.Origin), Destination: toPoint(route.Destination), Reachable: route.Exists}
	routeResult.Path = Path{Cost: route.Cost, Waypoints: toPoints(route.Waypoints)}
	return routeResult
}

func toPoint(p geometry.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

func fromPoint(p Point) geometry.Point {
	return geometry.MakePoint(p.X, p.Y)
}

func toPoints(points []geometry.Point) []Point {
	result := make([]Point, 0, len(points))
	for _, p := range points {
		result = append(result, toPoint(p))
	}
	return result
}
