package osmimport

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb"
)

// Importer reads the obstacle features of an OSM extract
type Importer struct {
	filename  string
	collector *collector
}

func NewImporter(filename string) *Importer {
	return &Importer{filename: filename, collector: newCollector()}
}

// Import the extract. ".pbf" files are read with the pbf decoder, ".osm" files as xml
func (im *Importer) Import(ctx context.Context) error {
	im.collector = newCollector()
	switch {
	case strings.HasSuffix(im.filename, ".pbf"):
		return importPbf(im.filename, im.collector)
	case strings.HasSuffix(im.filename, ".osm"), strings.HasSuffix(im.filename, ".xml"):
		file, err := os.Open(im.filename)
		if err != nil {
			return err
		}
		defer file.Close()
		return importXml(ctx, file, im.collector)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, im.filename)
	}
}

func (im *Importer) Features() []Feature { return im.collector.features }

// Bounds of all nodes of the extract
func (im *Importer) Bound() orb.Bound { return im.collector.bound }

func (im *Importer) NodeCount() int { return len(im.collector.nodes) }
