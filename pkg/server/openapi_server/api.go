// SPDX-License-Identifier: MIT

package openapi_server

import (
	"context"
	"net/http"
)

// DefaultApiRouter defines the required methods for binding the api requests to a responses for the DefaultApi
// The DefaultApiRouter implementation should parse necessary information from the http request,
// pass the data to a DefaultApiServicer to perform the required actions, then write the service results to the http response.
type DefaultApiRouter interface {
	GetGrid(http.ResponseWriter, *http.Request)
	ComputeRoute(http.ResponseWriter, *http.Request)
	ToggleObstacle(http.ResponseWriter, *http.Request)
	SetEndpoints(http.ResponseWriter, *http.Request)
	GetSearchSpace(http.ResponseWriter, *http.Request)
	SetNavigator(http.ResponseWriter, *http.Request)
}

// DefaultApiServicer defines the api actions for the DefaultApi service
// This interface intended to stay up to date with the openapi yaml used to generate it,
// while the service implementation can ignored with the .openapi-generator-ignore file
// and updated with the logic required for the API.
type DefaultApiServicer interface {
	GetGrid(context.Context) (ImplResponse, error)
	RenderGrid(context.Context) (ImplResponse, error)
	ComputeRoute(context.Context, RouteRequest) (ImplResponse, error)
	ToggleObstacle(context.Context, ObstacleRequest) (ImplResponse, error)
	SetEndpoints(context.Context, EndpointsRequest) (ImplResponse, error)
	GetSearchSpace(context.Context) (ImplResponse, error)
	SetNavigator(context.Context, NavigatorRequest) (ImplResponse, error)
}
