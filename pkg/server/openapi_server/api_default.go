package openapi_server

import (
	"encoding/json"
	"net/http"
	"strings"
)

// DefaultApiController binds http requests to an api service and writes the service results to the http response
type DefaultApiController struct {
	service      DefaultApiServicer
	errorHandler ErrorHandler
}

// DefaultApiOption for how the controller is set up.
type DefaultApiOption func(*DefaultApiController)

// WithDefaultApiErrorHandler inject ErrorHandler into controller
func WithDefaultApiErrorHandler(h ErrorHandler) DefaultApiOption {
	return func(c *DefaultApiController) {
		c.errorHandler = h
	}
}

// NewDefaultApiController creates a default api controller
func NewDefaultApiController(s DefaultApiServicer, opts ...DefaultApiOption) Router {
	controller := &DefaultApiController{
		service:      s,
		errorHandler: DefaultErrorHandler,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Routes returns all of the api route for the DefaultApiController
func (c *DefaultApiController) Routes() Routes {
	return Routes{
		{
			"GetGrid",
			strings.ToUpper("Get"),
			"/grid",
			c.GetGrid,
		},
		{
			"ComputeRoute",
			strings.ToUpper("Post"),
			"/routes",
			c.ComputeRoute,
		},
		{
			"ToggleObstacle",
			strings.ToUpper("Post"),
			"/obstacles",
			c.ToggleObstacle,
		},
		{
			"SetEndpoints",
			strings.ToUpper("Post"),
			"/endpoints",
			c.SetEndpoints,
		},
		{
			"GetSearchSpace",
			strings.ToUpper("Get"),
			"/searchSpace",
			c.GetSearchSpace,
		},
		{
			"SetNavigator",
			strings.ToUpper("Post"),
			"/navigator",
			c.SetNavigator,
		},
	}
}

func setCorsHeaders(w http.ResponseWriter, method string) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", method)
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// GetGrid - Get the grid, as json or with format=text in the grid map format
func (c *DefaultApiController) GetGrid(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "text" {
		result, err := c.service.RenderGrid(r.Context())
		if err != nil {
			c.errorHandler(w, r, err, &result)
			return
		}
		setCorsHeaders(w, "GET")
		text, _ := result.Body.(string)
		EncodeTextResponse(text, &result.Code, w)
		return
	}

	result, err := c.service.GetGrid(r.Context())
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	setCorsHeaders(w, "GET")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

// ComputeRoute - Compute a new route
func (c *DefaultApiController) ComputeRoute(w http.ResponseWriter, r *http.Request) {
	routeRequestParam := RouteRequest{}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&routeRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	if err := AssertRouteRequestRequired(routeRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.ComputeRoute(r.Context(), routeRequestParam)
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	setCorsHeaders(w, "POST")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

// ToggleObstacle - Flip the obstacle flag of a cell
func (c *DefaultApiController) ToggleObstacle(w http.ResponseWriter, r *http.Request) {
	obstacleRequestParam := ObstacleRequest{}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&obstacleRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	if err := AssertObstacleRequestRequired(obstacleRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.ToggleObstacle(r.Context(), obstacleRequestParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	setCorsHeaders(w, "POST")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

// SetEndpoints - Move the start and/or the finish
func (c *DefaultApiController) SetEndpoints(w http.ResponseWriter, r *http.Request) {
	endpointsRequestParam := EndpointsRequest{}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&endpointsRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	if err := AssertEndpointsRequestRequired(endpointsRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.SetEndpoints(r.Context(), endpointsRequestParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	setCorsHeaders(w, "POST")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *DefaultApiController) GetSearchSpace(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetSearchSpace(r.Context())
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	setCorsHeaders(w, "GET")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *DefaultApiController) SetNavigator(w http.ResponseWriter, r *http.Request) {
	navigatorRequestParam := NavigatorRequest{}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&navigatorRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	if err := AssertNavigatorRequestRequired(navigatorRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.SetNavigator(r.Context(), navigatorRequestParam)
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	setCorsHeaders(w, "POST")
	EncodeJSONResponse(result.Body, &result.Code, w)
}
