package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/natevvv/grid-pathfinder/pkg/graph"
	"github.com/natevvv/grid-pathfinder/pkg/routing"
	server "github.com/natevvv/grid-pathfinder/pkg/server/openapi_server"
)

func main() {
	mapFile := flag.String("map", "", "Grid map file. The 32x18 demo grid is used if empty")
	navigator := flag.String("navigator", routing.NavigatorAStar, "Navigator: astar or dijkstra")
	diagonal := flag.Bool("diagonal", false, "Use 8-connectivity")
	maxSettledNodes := flag.Int("max-settled-nodes", 0, "Stop a search after this many settled nodes. 0 is unlimited")
	debugLevel := flag.Int("debug", 0, "Set the debug level of the router")
	port := flag.Int("port", 8081, "Port to listen on")
	flag.Parse()

	conn := graph.Conn4
	if *diagonal {
		conn = graph.Conn8
	}

	router, err := newRouter(*mapFile, conn, *navigator, *maxSettledNodes, *debugLevel)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := router.ComputeRoute(context.Background()); err != nil {
		log.Printf("Initial route: %v\n", err)
	}

	log.Printf("Server started on port %v", *port)

	DefaultApiService := server.NewDefaultApiService(router)
	DefaultApiController := server.NewDefaultApiController(DefaultApiService)

	httpRouter := server.NewRouter(DefaultApiController)

	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", *port), httpRouter))
}

func newRouter(mapFile string, conn graph.Connectivity, navigator string, maxSettledNodes, debugLevel int) (*routing.Router, error) {
	cfg := routing.DefaultConfig()
	cfg.Conn = conn
	cfg.Navigator = navigator
	cfg.MaxSettledNodes = maxSettledNodes
	cfg.DebugLevel = debugLevel
	if mapFile == "" {
		return routing.NewRouterFromConfig(cfg)
	}
	m, err := graph.ReadGridMapFile(mapFile, conn)
	if err != nil {
		return nil, err
	}
	return routing.NewRouterFromGridMap(m, cfg)
}
