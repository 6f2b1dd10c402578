package osmimport

import (
	"context"
	"io"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
)

// Read an OSM XML extract. Nodes have to precede the ways which reference them
func importXml(ctx context.Context, r io.Reader, c *collector) error {
	scanner := osmxml.New(ctx, r)
	defer scanner.Close()

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			c.addNode(int64(o.ID), o.Lon, o.Lat)
		case *osm.Way:
			kind, ok := obstacleKind(func(key string) (string, bool) {
				return o.Tags.Find(key), o.Tags.HasTag(key)
			})
			if !ok {
				continue
			}
			nodeIds := make([]int64, 0, len(o.Nodes))
			for _, wn := range o.Nodes {
				nodeIds = append(nodeIds, int64(wn.ID))
			}
			c.addWay(int64(o.ID), kind, nodeIds)
		}
	}
	return scanner.Err()
}
