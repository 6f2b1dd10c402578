package openapi_server

// Point is a grid cell
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// AssertPointRequired checks if the required fields are not zero-ed.
// Both coordinates may be zero
func AssertPointRequired(obj Point) error {
	return nil
}
