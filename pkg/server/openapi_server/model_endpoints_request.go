package openapi_server

// EndpointsRequest moves the start, the finish or both
type EndpointsRequest struct {
	Start  *Point `json:"start,omitempty"`
	Finish *Point `json:"finish,omitempty"`
}

// AssertEndpointsRequestRequired checks that at least one endpoint is given
func AssertEndpointsRequestRequired(obj EndpointsRequest) error {
	if IsZeroValue(obj.Start) && IsZeroValue(obj.Finish) {
		return &RequiredError{Field: "start"}
	}
	return nil
}
