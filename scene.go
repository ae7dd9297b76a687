package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
)

// Scene is one planning problem: the obstacle set plus the two query
// points. A scene is read once and never mutated while solving.
type Scene struct {
	Obstacles []Obstacle `json:"obstacles"`
	Start     Point      `json:"start"`
	End       Point      `json:"end"`
}

// Validate checks the upstream input contract: obstacle count, coordinate
// bounds, convexity and orientation, no corner of one obstacle strictly
// inside another, and query points outside every obstacle interior. The
// solver assumes a validated scene.
func (s *Scene) Validate() error {
	if len(s.Obstacles) > MaxObstacles {
		return fmt.Errorf("too many obstacles: %d > %d", len(s.Obstacles), MaxObstacles)
	}
	for i := range s.Obstacles {
		if err := s.Obstacles[i].Validate(); err != nil {
			return fmt.Errorf("obstacle %d: %w", i, err)
		}
	}
	for i := range s.Obstacles {
		for j := range s.Obstacles {
			if i == j {
				continue
			}
			for k := 0; k < 4; k++ {
				if s.Obstacles[j].ContainsStrict(s.Obstacles[i][k]) {
					return fmt.Errorf("corner %d of obstacle %d lies inside obstacle %d", k, i, j)
				}
			}
		}
	}
	for _, q := range []struct {
		name string
		p    Point
	}{{"start", s.Start}, {"end", s.End}} {
		name, p := q.name, q.p
		if !inCoordRange(p) {
			return fmt.Errorf("%s point (%d, %d) outside ±%d", name, p.X, p.Y, CoordLimit)
		}
		for i := range s.Obstacles {
			if s.Obstacles[i].ContainsStrict(p) {
				return fmt.Errorf("%s point lies inside obstacle %d", name, i)
			}
		}
	}
	return nil
}

// ParseScene reads a scene in the planner's text format: the obstacle
// count n, then n lines of eight integers (four corners in
// counter-clockwise order), then the start and end coordinates. Tokens may
// be separated by any whitespace.
func ParseScene(r io.Reader) (*Scene, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (int64, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		return strconv.ParseInt(sc.Text(), 10, 64)
	}
	nextPoint := func() (Point, error) {
		x, err := next()
		if err != nil {
			return Point{}, err
		}
		y, err := next()
		if err != nil {
			return Point{}, err
		}
		return Point{X: x, Y: y}, nil
	}

	n, err := next()
	if err != nil {
		return nil, fmt.Errorf("reading obstacle count: %w", err)
	}
	if n < 0 || n > MaxObstacles {
		return nil, fmt.Errorf("obstacle count %d outside [0, %d]", n, MaxObstacles)
	}

	scene := &Scene{Obstacles: make([]Obstacle, n)}
	for i := range scene.Obstacles {
		for k := 0; k < 4; k++ {
			if scene.Obstacles[i][k], err = nextPoint(); err != nil {
				return nil, fmt.Errorf("reading obstacle %d corner %d: %w", i, k, err)
			}
		}
	}
	if scene.Start, err = nextPoint(); err != nil {
		return nil, fmt.Errorf("reading start point: %w", err)
	}
	if scene.End, err = nextPoint(); err != nil {
		return nil, fmt.Errorf("reading end point: %w", err)
	}
	return scene, nil
}

// WriteScene writes a scene in the text format accepted by ParseScene.
func WriteScene(w io.Writer, s *Scene) error {
	if _, err := fmt.Fprintln(w, len(s.Obstacles)); err != nil {
		return err
	}
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		_, err := fmt.Fprintf(w, "%d %d %d %d %d %d %d %d\n",
			o[0].X, o[0].Y, o[1].X, o[1].Y, o[2].X, o[2].Y, o[3].X, o[3].Y)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d %d %d %d\n", s.Start.X, s.Start.Y, s.End.X, s.End.Y)
	return err
}

// SaveScene serializes and saves the scene to a JSON file.
func SaveScene(scene *Scene, filename string) error {
	data, err := json.MarshalIndent(scene, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	log.Printf("Scene saved to %s (%d bytes)\n", filename, len(data))
	return nil
}

// LoadScene deserializes and loads a scene from a JSON file.
func LoadScene(filename string) (*Scene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var scene Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scene: %w", err)
	}

	return &scene, nil
}
