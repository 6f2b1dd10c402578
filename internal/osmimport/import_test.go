package osmimport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/natevvv/grid-pathfinder/pkg/graph"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 10x10 degree extract with a square building, a stream and a road
const extractXml = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="test">
 <node id="1" lat="0" lon="0"/>
 <node id="2" lat="10" lon="10"/>
 <node id="3" lat="2" lon="2"/>
 <node id="4" lat="2" lon="4"/>
 <node id="5" lat="4" lon="4"/>
 <node id="6" lat="4" lon="2"/>
 <node id="7" lat="1" lon="6"/>
 <node id="8" lat="9" lon="6"/>
 <way id="100">
  <nd ref="3"/>
  <nd ref="4"/>
  <nd ref="5"/>
  <nd ref="6"/>
  <nd ref="3"/>
  <tag k="building" v="yes"/>
 </way>
 <way id="101">
  <nd ref="7"/>
  <nd ref="8"/>
  <tag k="waterway" v="stream"/>
 </way>
 <way id="102">
  <nd ref="1"/>
  <nd ref="2"/>
  <tag k="highway" v="residential"/>
 </way>
</osm>
`

func writeExtract(t *testing.T) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "extract.osm")
	require.NoError(t, os.WriteFile(filename, []byte(extractXml), 0o644))
	return filename
}

func TestImportXml(t *testing.T) {
	im := NewImporter(writeExtract(t))
	require.NoError(t, im.Import(context.Background()))

	assert.Equal(t, 8, im.NodeCount())
	assert.Equal(t, orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}, im.Bound())

	features := im.Features()
	require.Len(t, features, 2)
	assert.Equal(t, int64(100), features[0].ID)
	assert.Equal(t, "building", features[0].Kind)
	assert.True(t, features[0].Closed)
	assert.True(t, features[0].IsArea())
	assert.Len(t, features[0].Points, 5)
	assert.Equal(t, "waterway", features[1].Kind)
	assert.False(t, features[1].IsArea())
}

// testdata/extract.osm.pbf holds the same extract as extractXml
func TestImportPbf(t *testing.T) {
	im := NewImporter(filepath.Join("testdata", "extract.osm.pbf"))
	require.NoError(t, im.Import(context.Background()))

	assert.Equal(t, 8, im.NodeCount())
	bound := im.Bound()
	assert.InDelta(t, 0.0, bound.Min.Lon(), 1e-7)
	assert.InDelta(t, 0.0, bound.Min.Lat(), 1e-7)
	assert.InDelta(t, 10.0, bound.Max.Lon(), 1e-7)
	assert.InDelta(t, 10.0, bound.Max.Lat(), 1e-7)

	features := im.Features()
	require.Len(t, features, 2)
	assert.Equal(t, int64(100), features[0].ID)
	assert.Equal(t, "building", features[0].Kind)
	assert.True(t, features[0].IsArea())
	require.Len(t, features[0].Points, 5)
	assert.InDelta(t, 4.0, features[0].Points[2].Lon(), 1e-7)
	assert.InDelta(t, 4.0, features[0].Points[2].Lat(), 1e-7)
	assert.Equal(t, int64(101), features[1].ID)
	assert.Equal(t, "waterway", features[1].Kind)
	assert.False(t, features[1].Closed)

	xml := NewImporter(writeExtract(t))
	require.NoError(t, xml.Import(context.Background()))
	require.Len(t, xml.Features(), len(features))
	for i, feature := range features {
		assert.InDeltaSlice(t, flatten(xml.Features()[i].Points), flatten(feature.Points), 1e-7, "feature %v", feature.ID)
	}
}

func flatten(ls orb.LineString) []float64 {
	values := make([]float64, 0, 2*len(ls))
	for _, p := range ls {
		values = append(values, p[0], p[1])
	}
	return values
}

func TestImportErrors(t *testing.T) {
	err := NewImporter("extract.json").Import(context.Background())
	assert.ErrorIs(t, err, ErrUnknownFormat)

	err = NewImporter(filepath.Join(t.TempDir(), "missing.osm")).Import(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = NewImporter(filepath.Join(t.TempDir(), "missing.osm.pbf")).Import(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(t.TempDir(), "broken.osm.pbf")
	require.NoError(t, os.WriteFile(broken, []byte("not a pbf file"), 0o644))
	assert.Error(t, NewImporter(broken).Import(context.Background()))
}

func TestObstacleKind(t *testing.T) {
	cases := []struct {
		name string
		tags map[string]string
		kind string
		ok   bool
	}{
		{"Building", map[string]string{"building": "house"}, "building", true},
		{"NoBuilding", map[string]string{"building": "no"}, "", false},
		{"Fence", map[string]string{"barrier": "fence"}, "barrier", true},
		{"Lake", map[string]string{"natural": "water"}, "natural", true},
		{"Wood", map[string]string{"natural": "wood"}, "", false},
		{"River", map[string]string{"waterway": "river"}, "waterway", true},
		{"Reservoir", map[string]string{"landuse": "reservoir"}, "landuse", true},
		{"Road", map[string]string{"highway": "primary"}, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, ok := obstacleKind(func(key string) (string, bool) {
				v, ok := tc.tags[key]
				return v, ok
			})
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.kind, kind)
		})
	}
}

func TestRasterize(t *testing.T) {
	im := NewImporter(writeExtract(t))
	require.NoError(t, im.Import(context.Background()))

	raster, err := NewRaster(im.Bound(), 10, 10)
	require.NoError(t, err)
	gg, err := raster.Rasterize(im.Features(), graph.Conn4)
	require.NoError(t, err)

	blocked := func(x, y int) bool { return gg.IsObstacle(gg.Index(x, y)) }
	// inside of the building, row 0 is the north
	assert.True(t, blocked(2, 6))
	assert.True(t, blocked(3, 6))
	assert.True(t, blocked(2, 7))
	assert.True(t, blocked(3, 7))
	// stream along lon 6
	for y := 1; y <= 9; y++ {
		assert.True(t, blocked(6, y), "stream cell (6,%d)", y)
	}
	assert.False(t, blocked(0, 0))
	assert.False(t, blocked(8, 5))
	assert.False(t, blocked(5, 5))
	assert.False(t, blocked(9, 9))
	assert.False(t, blocked(6, 0))
}

func TestRaster(t *testing.T) {
	raster, err := NewRaster(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{4, 2}}, 4, 2)
	require.NoError(t, err)

	x, y, ok := raster.Cell(orb.Point{0.5, 1.5})
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})
	x, y, ok = raster.Cell(orb.Point{4, 0})
	require.True(t, ok)
	assert.Equal(t, [2]int{3, 1}, [2]int{x, y})
	_, _, ok = raster.Cell(orb.Point{5, 0})
	assert.False(t, ok)
	assert.Equal(t, orb.Point{2.5, 0.5}, raster.Center(2, 1))

	_, err = NewRaster(orb.Bound{Min: orb.Point{1, 1}, Max: orb.Point{1, 3}}, 4, 2)
	assert.ErrorIs(t, err, ErrEmptyBound)
	_, err = NewRaster(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}, 0, 2)
	assert.ErrorIs(t, err, graph.ErrEmptyGrid)
}

func TestClosedBarrierIsLine(t *testing.T) {
	raster, err := NewRaster(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{6, 6}}, 6, 6)
	require.NoError(t, err)
	fence := Feature{
		ID:     1,
		Kind:   "barrier",
		Closed: true,
		Points: orb.LineString{{1.5, 1.5}, {4.5, 1.5}, {4.5, 4.5}, {1.5, 4.5}, {1.5, 1.5}},
	}
	gg, err := raster.Rasterize([]Feature{fence}, graph.Conn4)
	require.NoError(t, err)
	assert.True(t, gg.IsObstacle(gg.Index(1, 1)))
	assert.True(t, gg.IsObstacle(gg.Index(4, 4)))
	assert.False(t, gg.IsObstacle(gg.Index(2, 2)), "inside of a fence is free")
	assert.False(t, gg.IsObstacle(gg.Index(0, 0)))
}
