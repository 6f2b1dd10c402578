package osmimport

import (
	"errors"

	"github.com/paulmach/orb"
)

var (
	ErrEmptyBound    = errors.New("osmimport: extract has an empty bounding box")
	ErrUnknownFormat = errors.New("osmimport: unknown file format, expected .osm or .pbf")
)

// Feature is a way which blocks movement.
// Points are (lon, lat) pairs.
type Feature struct {
	ID     int64
	Kind   string // tag key which made the way an obstacle
	Closed bool   // first and last node are the same
	Points orb.LineString
}

// Ring of a closed feature
func (f Feature) Ring() orb.Ring {
	return orb.Ring(f.Points)
}

// Is an area, the cells inside the ring are blocked as well
func (f Feature) IsArea() bool {
	return f.Closed && f.Kind != "barrier" && len(f.Points) >= 4
}

// obstacleKind returns the tag key which marks a way as obstacle.
// lookup returns the value of a tag and whether it is present
func obstacleKind(lookup func(key string) (string, bool)) (string, bool) {
	if v, ok := lookup("building"); ok && v != "no" {
		return "building", true
	}
	if v, ok := lookup("barrier"); ok && v != "no" {
		return "barrier", true
	}
	if v, _ := lookup("natural"); v == "water" {
		return "natural", true
	}
	if _, ok := lookup("waterway"); ok {
		return "waterway", true
	}
	if v, _ := lookup("landuse"); v == "reservoir" {
		return "landuse", true
	}
	return "", false
}

// collector resolves way nodes to coordinates and tracks the bounds of all nodes
type collector struct {
	nodes    map[int64]orb.Point
	features []Feature
	bound    orb.Bound
	hasBound bool
}

func newCollector() *collector {
	return &collector{nodes: make(map[int64]orb.Point), features: make([]Feature, 0)}
}

func (c *collector) addNode(id int64, lon, lat float64) {
	p := orb.Point{lon, lat}
	c.nodes[id] = p
	if !c.hasBound {
		c.bound = p.Bound()
		c.hasBound = true
		return
	}
	c.bound = c.bound.Extend(p)
}

func (c *collector) addWay(id int64, kind string, nodeIds []int64) {
	points := make(orb.LineString, 0, len(nodeIds))
	for _, nodeId := range nodeIds {
		if p, ok := c.nodes[nodeId]; ok {
			points = append(points, p)
		}
	}
	if len(points) == 0 {
		return
	}
	closed := len(nodeIds) > 2 && nodeIds[0] == nodeIds[len(nodeIds)-1]
	c.features = append(c.features, Feature{ID: id, Kind: kind, Closed: closed, Points: points})
}
