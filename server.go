package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// RouteRequest is one planning query. When Obstacles is omitted, the
// server's preloaded obstacle set is used instead.
type RouteRequest struct {
	Obstacles []Obstacle `json:"obstacles,omitempty"`
	Start     Point      `json:"start"`
	End       Point      `json:"end"`
}

type RouteResponse struct {
	Reachable bool    `json:"reachable"`
	Distance  float64 `json:"distance"`
	Path      []Point `json:"path,omitempty"`
	Message   string  `json:"message,omitempty"`
}

type GraphResponse struct {
	Lines    [][2]Point `json:"lines"`
	NumNodes int        `json:"numNodes"`
	NumEdges int        `json:"numEdges"`
}

// server is the HTTP front end. Each request is solved independently; the
// only shared state is the immutable preloaded obstacle set and the rate
// limiter.
type server struct {
	obstacles []Obstacle
	limiter   *rate.Limiter
	serveMux  http.ServeMux
}

// newServer initializes the planner's HTTP server.
func newServer(obstacles []Obstacle, limit rate.Limit, burst int) *server {
	s := &server{
		obstacles: obstacles,
		limiter:   rate.NewLimiter(limit, burst),
	}
	s.serveMux.HandleFunc("/route", s.withMiddleware(s.routeHandler))
	s.serveMux.HandleFunc("/graph", s.withMiddleware(s.graphHandler))
	s.serveMux.HandleFunc("/health", s.withMiddleware(s.healthHandler))
	return s
}

// ServeHTTP implements the required interface for an http server
func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.serveMux.ServeHTTP(w, r)
}

// withMiddleware adds CORS headers, a request id for log correlation, and
// rate limiting.
func (s *server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		if !s.limiter.Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		log.Printf("%s %s %s\n", requestID, r.Method, r.URL.Path)

		next(w, r)
	}
}

// decodeScene reads a route request and assembles the validated scene.
// A nil scene is returned after the error response has been written.
func (s *server) decodeScene(w http.ResponseWriter, r *http.Request) *Scene {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return nil
	}

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return nil
	}

	obstacles := req.Obstacles
	if obstacles == nil {
		obstacles = s.obstacles
	}

	scene := &Scene{Obstacles: obstacles, Start: req.Start, End: req.End}
	if err := scene.Validate(); err != nil {
		log.Printf("Rejected scene: %v\n", err)
		http.Error(w, "Invalid scene: "+err.Error(), http.StatusUnprocessableEntity)
		return nil
	}
	return scene
}

// routeHandler solves one scene and reports the shortest obstacle-avoiding
// path. Unreachability is a valid outcome, reported explicitly rather than
// as a large distance.
func (s *server) routeHandler(w http.ResponseWriter, r *http.Request) {
	scene := s.decodeScene(w, r)
	if scene == nil {
		return
	}

	distance, path, ok := SolveWithPath(scene)

	response := RouteResponse{
		Reachable: ok,
		Distance:  distance,
		Path:      path,
	}
	if !ok {
		response.Message = "destination is not reachable"
		log.Printf("No path from (%d, %d) to (%d, %d)\n",
			scene.Start.X, scene.Start.Y, scene.End.X, scene.End.Y)
	} else {
		log.Printf("Path found: %d waypoints, distance %s\n", len(path), FormatDistance(distance))
	}

	writeJSON(w, http.StatusOK, response)
}

// graphHandler returns the visibility graph edges as line segments for
// visualization.
func (s *server) graphHandler(w http.ResponseWriter, r *http.Request) {
	scene := s.decodeScene(w, r)
	if scene == nil {
		return
	}

	graph := BuildVisibilityGraph(scene)
	lines := graph.LineSegments()

	writeJSON(w, http.StatusOK, GraphResponse{
		Lines:    lines,
		NumNodes: len(graph.Nodes),
		NumEdges: len(lines),
	})
}

// healthHandler reports server status and the preloaded obstacle count.
func (s *server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "ready",
		"numObstacles": len(s.obstacles),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v\n", err)
	}
}
