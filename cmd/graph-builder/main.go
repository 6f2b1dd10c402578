package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/natevvv/grid-pathfinder/internal/osmimport"
	"github.com/natevvv/grid-pathfinder/pkg/geometry"
	"github.com/natevvv/grid-pathfinder/pkg/graph"
)

func main() {
	osmFile := flag.String("osm", "", "Rasterize the obstacles of an OSM extract (.osm or .pbf)")
	random := flag.Bool("random", false, "Create a random grid")
	density := flag.Float64("density", 0.25, "Obstacle probability of the random grid")
	seed := flag.Int64("seed", 0, "Seed for the random grid. 0 uses the current time")
	width := flag.Int("width", 32, "Number of columns")
	height := flag.Int("height", 18, "Number of rows")
	startCell := flag.String("start", "2,9", "Start cell x,y")
	finishCell := flag.String("finish", "30,9", "Finish cell x,y")
	outputFile := flag.String("o", "grid.map", "Output grid map file")
	fmiFile := flag.String("fmi", "", "Also write the grid as fmi graph")
	flag.Parse()

	start := time.Now()
	var gg *graph.GridGraph
	var err error
	switch {
	case *osmFile != "":
		gg, err = rasterizeExtract(*osmFile, *width, *height)
	case *random:
		if *seed == 0 {
			*seed = time.Now().UnixNano()
		}
		gg, err = randomGrid(*width, *height, *density, rand.New(rand.NewSource(*seed)))
	default:
		gg, err = graph.NewGridGraph(*width, *height, graph.Conn4)
	}
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)
	fmt.Printf("[TIME] Build grid: %s\n", elapsed)
	fmt.Printf("Cells: %d, obstacles: %d\n", gg.NodeCount(), len(gg.Obstacles()))

	m := &graph.GridMap{Grid: gg}
	if m.Start, err = parseCell(gg, *startCell); err != nil {
		log.Fatalf("start: %v", err)
	}
	if m.Finish, err = parseCell(gg, *finishCell); err != nil {
		log.Fatalf("finish: %v", err)
	}
	// endpoints are always free
	gg.SetObstacle(m.Start, false)
	gg.SetObstacle(m.Finish, false)

	if err := graph.WriteGridMapFile(m, *outputFile); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %v\n", *outputFile)

	if *fmiFile != "" {
		if err := graph.WriteFmi(gg, *fmiFile); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %v\n", *fmiFile)
	}
}

func rasterizeExtract(filename string, width, height int) (*graph.GridGraph, error) {
	importer := osmimport.NewImporter(filename)
	if err := importer.Import(context.Background()); err != nil {
		return nil, err
	}
	fmt.Printf("Nodes: %d, obstacle ways: %d\n", importer.NodeCount(), len(importer.Features()))

	raster, err := osmimport.NewRaster(importer.Bound(), width, height)
	if err != nil {
		return nil, err
	}
	return raster.Rasterize(importer.Features(), graph.Conn4)
}

func randomGrid(width, height int, density float64, rng *rand.Rand) (*graph.GridGraph, error) {
	gg, err := graph.NewGridGraph(width, height, graph.Conn4)
	if err != nil {
		return nil, err
	}
	for id := 0; id < gg.NodeCount(); id++ {
		if rng.Float64() < density {
			gg.SetObstacle(id, true)
		}
	}
	return gg, nil
}

func parseCell(gg *graph.GridGraph, cell string) (graph.NodeId, error) {
	var x, y int
	if _, err := fmt.Sscanf(cell, "%d,%d", &x, &y); err != nil {
		return -1, fmt.Errorf("cell %q: %w", cell, err)
	}
	return gg.NodeAt(geometry.MakePoint(x, y))
}
