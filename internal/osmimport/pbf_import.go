package osmimport

import (
	"errors"
	"io"
	"os"
	"runtime"

	"github.com/qedus/osmpbf"
)

// Read an OSM PBF extract in two passes, nodes first and ways afterwards
func importPbf(filename string, c *collector) error {
	if err := decodePbf(filename, func(v interface{}) {
		if node, ok := v.(*osmpbf.Node); ok {
			c.addNode(node.ID, node.Lon, node.Lat)
		}
	}); err != nil {
		return err
	}

	return decodePbf(filename, func(v interface{}) {
		way, ok := v.(*osmpbf.Way)
		if !ok {
			return
		}
		kind, ok := obstacleKind(func(key string) (string, bool) {
			value, ok := way.Tags[key]
			return value, ok
		})
		if ok {
			c.addWay(way.ID, kind, way.NodeIDs)
		}
	})
}

func decodePbf(filename string, handle func(v interface{})) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)

	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		return err
	}

	for {
		v, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		handle(v)
	}
}
