package openapi_server

type Grid struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Start     Point   `json:"start"`
	Finish    Point   `json:"finish"`
	Obstacles []Point `json:"obstacles"`
	Navigator string  `json:"navigator"`
}
