package openapi_server

type ObstacleRequest struct {
	Cell *Point `json:"cell"`
}

// AssertObstacleRequestRequired checks if the required fields are not zero-ed
func AssertObstacleRequestRequired(obj ObstacleRequest) error {
	if IsZeroValue(obj.Cell) {
		return &RequiredError{Field: "cell"}
	}
	return AssertPointRequired(*obj.Cell)
}
