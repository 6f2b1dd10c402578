package path

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGraph indicates that the navigator has no graph to search on.
	ErrNilGraph = errors.New("path: graph is nil")
	// ErrNodeOutOfRange indicates an origin or destination which is not a node of the graph.
	ErrNodeOutOfRange = errors.New("path: node id out of range")
	// ErrSearchLimit indicates that the search was stopped after settling the maximum number of nodes.
	ErrSearchLimit = errors.New("path: maximum number of settled nodes reached")
)

// NodeRangeError reports which endpoint of a request is not a node of the graph.
type NodeRangeError struct {
	NodeId    int
	NodeCount int
	Role      string // "origin" or "destination"
}

func (e *NodeRangeError) Error() string {
	return fmt.Sprintf("%v: %v %d not in [0, %d)", ErrNodeOutOfRange, e.Role, e.NodeId, e.NodeCount)
}

func (e *NodeRangeError) Unwrap() error { return ErrNodeOutOfRange }
