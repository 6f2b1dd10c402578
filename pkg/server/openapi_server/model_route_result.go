package openapi_server

type RouteResult struct {
	Origin      Point `json:"origin"`
	Destination Point `json:"destination"`
	Reachable   bool  `json:"reachable"`
	Path        Path  `json:"path,omitempty"`
}

type Path struct {
	Cost      float64 `json:"cost"`
	Waypoints []Point `json:"waypoints"`
}
