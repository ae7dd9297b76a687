package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"golang.org/x/time/rate"
)

func main() {
	var (
		addr       = flag.String("addr", ":8080", "listen address for server mode")
		input      = flag.String("input", "", "solve a single scene from this file ('-' for stdin) and exit")
		geojsonDir = flag.String("geojson", "", "directory of *.geojson obstacle files preloaded into the server")
		rateLimit  = flag.Float64("rate", 50, "request rate limit per second")
		burst      = flag.Int("burst", 20, "request burst size")
	)
	flag.Parse()

	if *input != "" {
		runSolve(*input)
		return
	}
	runServer(*addr, *geojsonDir, rate.Limit(*rateLimit), *burst)
}

// runSolve solves one scene in the text format and prints the shortest
// path length with fixed-point precision, or "unreachable".
func runSolve(path string) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("open scene: %v", err)
		}
		defer f.Close()
		r = f
	}

	scene, err := ParseScene(r)
	if err != nil {
		log.Fatalf("parse scene: %v", err)
	}
	if err := scene.Validate(); err != nil {
		log.Fatalf("invalid scene: %v", err)
	}

	distance, ok := Solve(scene)
	if !ok {
		fmt.Println("unreachable")
		return
	}
	fmt.Println(FormatDistance(distance))
}

func runServer(addr, geojsonDir string, limit rate.Limit, burst int) {
	log.Println("Obstacle route planner")

	var obstacles []Obstacle
	if geojsonDir != "" {
		var err error
		obstacles, err = LoadObstaclesFromGeoJSON(geojsonDir)
		if err != nil {
			log.Fatalf("load obstacles: %v", err)
		}
		if len(obstacles) > MaxObstacles {
			log.Fatalf("loaded %d obstacles, limit is %d", len(obstacles), MaxObstacles)
		}
	}

	s := newServer(obstacles, limit, burst)

	log.Printf("Server starting on %s\n", addr)
	log.Println("Endpoints:")
	log.Println("  POST /route   - shortest obstacle-avoiding path")
	log.Println("  POST /graph   - visibility graph edges for visualization")
	log.Println("  GET  /health  - server status")

	if err := http.ListenAndServe(addr, s); err != nil {
		log.Fatal(err)
	}
}
