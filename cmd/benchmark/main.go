package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/natevvv/grid-pathfinder/pkg/graph"
	p "github.com/natevvv/grid-pathfinder/pkg/graph/path"
	"github.com/natevvv/grid-pathfinder/pkg/slice"
)

// origin, destination, cost and #hops (nodes from source to target) computed by the reference
type target struct {
	origin      graph.NodeId
	destination graph.NodeId
	cost        float64
	hops        int
}

func main() {
	mapFile := flag.String("map", "", "Grid map file to work with. A random grid is generated if empty")
	width := flag.Int("width", 256, "Width of the random grid")
	height := flag.Int("height", 256, "Height of the random grid")
	density := flag.Float64("density", 0.25, "Obstacle probability of the random grid")
	seed := flag.Int64("seed", 0, "Seed for the random grid and targets. 0 uses the current time")
	diagonal := flag.Bool("diagonal", false, "Use 8-connectivity")
	amountTargets := flag.Int("n", 100, "How many new targets should get created")
	targetFile := flag.String("targets", "", "Read targets from file (or write them with -store)")
	storeTargets := flag.Bool("store", false, "Store targets (when newly generated)")
	algorithm := flag.String("search", "astar", "Select the search algorithm: astar, dijkstra or reference")
	debugLevel := flag.Int("debug", 0, "Set the debug level of the search")
	cpuProfile := flag.String("cpu", "", "write cpu profile to file")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	conn := graph.Conn4
	if *diagonal {
		conn = graph.Conn8
	}

	start := time.Now()
	gg, err := loadGrid(*mapFile, *width, *height, *density, conn, rng)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)
	fmt.Printf("[TIME-Import] = %s\n", elapsed)
	fmt.Printf("Grid %vx%v, %v obstacles\n", gg.Width, gg.Height, len(gg.Obstacles()))

	navigator := getNavigator(*algorithm, gg, *debugLevel)
	if navigator == nil {
		log.Fatal("Navigator not supported")
	}
	referenceDijkstra := p.NewDijkstra(gg)

	var targets []target
	if *targetFile != "" && !*storeTargets {
		targets, err = readTargets(*targetFile)
		if err != nil {
			log.Fatal(err)
		}
		if *amountTargets < len(targets) {
			targets = targets[0:*amountTargets]
		}
	} else {
		targets = createTargets(*amountTargets, referenceDijkstra, rng)
		if *storeTargets && *targetFile != "" {
			if err := writeTargets(targets, *targetFile); err != nil {
				log.Fatal(err)
			}
		}
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	benchmark(navigator, targets)
}

func loadGrid(mapFile string, width, height int, density float64, conn graph.Connectivity, rng *rand.Rand) (*graph.GridGraph, error) {
	if mapFile != "" {
		m, err := graph.ReadGridMapFile(mapFile, conn)
		if err != nil {
			return nil, err
		}
		return m.Grid, nil
	}
	gg, err := graph.NewGridGraph(width, height, conn)
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

func getNavigator(algorithm string, g graph.Graph, debugLevel int) p.Navigator {
	if slice.Contains([]string{"default", "astar"}, algorithm) {
		astar := p.NewAStar(g)
		astar.SetDebugLevel(debugLevel)
		return astar
	} else if algorithm == "dijkstra" {
		d := p.NewAStar(g)
		d.SetUseHeuristic(false)
		d.SetDebugLevel(debugLevel)
		return d
	} else if algorithm == "reference" {
		return p.NewDijkstra(g)
	}
	return nil
}

func readTargets(filename string) ([]target, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)

	targets := make([]target, 0)

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 1 {
			// skip empty lines
			continue
		} else if line[0] == '#' {
			// skip comments
			continue
		}
		var t target
		if _, err := fmt.Sscanf(line, "%d %d %g %d", &t.origin, &t.destination, &t.cost, &t.hops); err != nil {
			return nil, fmt.Errorf("target %q: %w", line, err)
		}
		targets = append(targets, t)
	}
	return targets, scanner.Err()
}

func createTargets(n int, referenceNavigator *p.Dijkstra, rng *rand.Rand) []target {
	targets := make([]target, n)
	nodeCount := referenceNavigator.GetGraph().NodeCount()
	// reference algorithm to compute path
	for i := 0; i < n; i++ {
		origin := rng.Intn(nodeCount)
		destination := rng.Intn(nodeCount)
		cost, err := referenceNavigator.ComputeShortestPath(context.Background(), origin, destination)
		if err != nil {
			log.Fatal(err)
		}
		hops := len(referenceNavigator.GetPath(origin, destination))
		targets[i] = target{origin: origin, destination: destination, cost: cost, hops: hops}
	}
	return targets
}

func writeTargets(targets []target, targetFile string) error {
	var sb strings.Builder
	for _, t := range targets {
		sb.WriteString(fmt.Sprintf("%v %v %v %v\n", t.origin, t.destination, t.cost, t.hops))
	}
	return os.WriteFile(targetFile, []byte(sb.String()), 0o644)
}

// Run benchmarks on the provided grid and targets
func benchmark(navigator p.Navigator, targets []target) {
	var runtime time.Duration = 0
	var runtimeWithPathExtraction time.Duration = 0
	completed := 0

	pqPops := 0
	pqUpdates := 0
	settledNodes := 0
	edgeRelaxations := 0
	relaxationAttempts := 0

	invalidLengths := make([]int, 0)
	invalidResults := make([]int, 0)
	invalidHops := make([]int, 0)

	showResults := func() {
		if completed == 0 {
			return
		}
		fmt.Printf("Average runtime: %.3fms, %.3fms\n", float64(int(runtime.Nanoseconds())/completed)/1000000, float64(int(runtimeWithPathExtraction.Nanoseconds())/completed)/1000000)
		fmt.Printf("Average pq pops: %d\n", pqPops/completed)
		fmt.Printf("Average pq updates: %d\n", pqUpdates/completed)
		fmt.Printf("Average settled nodes: %d\n", settledNodes/completed)
		fmt.Printf("Average relaxations attempts: %d\n", relaxationAttempts/completed)
		fmt.Printf("Average edge relaxations: %d\n", edgeRelaxations/completed)

		fmt.Printf("%v/%v invalid Result (source/target).\n", len(invalidResults), completed)
		for i, result := range invalidResults {
			fmt.Printf("%v: Case %v (%v -> %v) has invalid result\n", i, result, targets[result].origin, targets[result].destination)
		}

		fmt.Printf("%v/%v invalid path lengths.\n", len(invalidLengths), completed)
		for i, testcase := range invalidLengths {
			fmt.Printf("%v: Case %v (%v -> %v) has invalid length. Reference: %v\n", i, testcase, targets[testcase].origin, targets[testcase].destination, targets[testcase].cost)
		}

		// hops may differ between paths of equal cost
		fmt.Printf("%v/%v different hops number.\n", len(invalidHops), completed)
	}

	// catch interrupt to still show already calculated results
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		showResults()
		os.Exit(0)
	}()

	for i, t := range targets {
		start := time.Now()
		length, err := navigator.ComputeShortestPath(context.Background(), t.origin, t.destination)
		elapsed := time.Since(start)
		if err != nil {
			log.Printf("Case %v (%v -> %v) failed: %v\n", i, t.origin, t.destination, err)
			continue
		}

		pqPops += navigator.GetPqPops()
		pqUpdates += navigator.GetPqUpdates()
		settledNodes += navigator.GetSettledNodes()
		edgeRelaxations += navigator.GetEdgeRelaxations()
		relaxationAttempts += navigator.GetRelaxationAttempts()

		path := navigator.GetPath(t.origin, t.destination)
		elapsedPath := time.Since(start)

		fmt.Printf("[%3v TIME-Navigate, TIME-Path, PQ Pops, PQ Updates, relaxed Edges, relax attempts] = %12s, %12s, %7d, %7d, %7d, %7d\n", i, elapsed, elapsedPath, navigator.GetPqPops(), navigator.GetPqUpdates(), navigator.GetEdgeRelaxations(), navigator.GetRelaxationAttempts())

		if math.Abs(length-t.cost) > 1e-6 {
			invalidLengths = append(invalidLengths, i)
		}
		if length > -1 && (path[0] != t.origin || path[len(path)-1] != t.destination) {
			invalidResults = append(invalidResults, i)
		}
		if t.hops != len(path) {
			invalidHops = append(invalidHops, i)
		}

		runtime += elapsed
		runtimeWithPathExtraction += elapsedPath
		completed++
	}
	// normal termination, show results
	showResults()
}
