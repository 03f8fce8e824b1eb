// Package geo maps localities to map coordinates. The mapping is loaded
// once at startup from a JSON file and is immutable afterwards.
package geo

import (
	"encoding/json"
	"fmt"
	"os"
)

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Locations is an immutable locality→coordinate lookup. File keys are
// either a bare locality name or "<lokalita>|<kod_kraje>" when a name
// repeats across regions.
type Locations struct {
	points map[string]Point
}

// Load reads the mapping file. A missing file yields an empty mapping, not
// an error; the map layer then simply renders no points.
func Load(path string) (*Locations, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Locations{points: map[string]Point{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read locations file: %w", err)
	}

	points := map[string]Point{}
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("failed to parse locations file: %w", err)
	}
	return &Locations{points: points}, nil
}

// Lookup resolves a locality's coordinates, preferring the region-qualified
// key. Unknown localities return ok=false and are omitted from map output.
func (l *Locations) Lookup(locality, regionCode string) (Point, bool) {
	if p, ok := l.points[locality+"|"+regionCode]; ok {
		return p, true
	}
	p, ok := l.points[locality]
	return p, ok
}

// Len returns the number of mapped keys.
func (l *Locations) Len() int {
	return len(l.points)
}
