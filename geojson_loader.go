package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadObstaclesFromGeoJSON loads all GeoJSON files from a directory and
// converts their polygon features to obstacles. Features that are not
// valid obstacles (wrong vertex count, non-integral or out-of-range
// coordinates, non-convex ring) are logged and skipped.
func LoadObstaclesFromGeoJSON(dir string) ([]Obstacle, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.geojson"))
	if err != nil {
		return nil, err
	}

	log.Printf("Loading obstacles from %d GeoJSON files...\n", len(files))

	var all []Obstacle
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Printf("⚠️  Failed to read %s: %v\n", file, err)
			continue
		}

		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			log.Printf("⚠️  Failed to parse %s: %v\n", file, err)
			continue
		}

		count := 0
		for _, feature := range fc.Features {
			obstacles := obstaclesFromGeometry(feature.Geometry)
			all = append(all, obstacles...)
			count += len(obstacles)
		}

		log.Printf("   Loaded %d obstacles from %s\n", count, filepath.Base(file))
	}

	log.Printf("Total obstacles loaded: %d\n", len(all))
	return all, nil
}

// obstaclesFromGeometry converts a GeoJSON geometry to obstacles, taking
// the outer ring of each polygon.
func obstaclesFromGeometry(geometry orb.Geometry) []Obstacle {
	var obstacles []Obstacle

	switch g := geometry.(type) {
	case orb.Polygon:
		if len(g) > 0 {
			if o, err := obstacleFromRing(g[0]); err != nil {
				log.Printf("⚠️  Skipping polygon: %v\n", err)
			} else {
				obstacles = append(obstacles, o)
			}
		}

	case orb.MultiPolygon:
		for _, poly := range g {
			if len(poly) == 0 {
				continue
			}
			if o, err := obstacleFromRing(poly[0]); err != nil {
				log.Printf("⚠️  Skipping polygon: %v\n", err)
			} else {
				obstacles = append(obstacles, o)
			}
		}
	}

	return obstacles
}

// obstacleFromRing converts an outer ring to an obstacle. GeoJSON rings
// repeat the first vertex at the end; after unclosing, the ring must have
// exactly four integral vertices. Clockwise rings are reversed, since the
// solver requires counter-clockwise corners.
func obstacleFromRing(ring orb.Ring) (Obstacle, error) {
	if ring.Orientation() == orb.CW {
		ring = ring.Clone()
		ring.Reverse()
	}

	pts := []orb.Point(ring)
	if len(pts) >= 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) != 4 {
		return Obstacle{}, fmt.Errorf("ring has %d vertices, want 4", len(pts))
	}

	var o Obstacle
	for i, pt := range pts {
		x, y := pt.X(), pt.Y()
		if x != math.Trunc(x) || y != math.Trunc(y) {
			return Obstacle{}, fmt.Errorf("non-integral coordinate (%v, %v)", x, y)
		}
		if math.Abs(x) > CoordLimit || math.Abs(y) > CoordLimit {
			return Obstacle{}, fmt.Errorf("coordinate (%v, %v) outside ±%d", x, y, CoordLimit)
		}
		o[i] = Point{X: int64(x), Y: int64(y)}
	}
	if err := o.Validate(); err != nil {
		return Obstacle{}, err
	}
	return o, nil
}
