package domain

import (
	"fmt"
	"strings"
)

// WorldSettings identifies the procedurally generated world a document maps.
// Both fields are replaced together; see Document.EditWorld.
type WorldSettings struct {
	// GeneratorVersion is the game version string the world was generated with (e.g. "1.21.3").
	GeneratorVersion string `json:"version"`

	// Seed is the world seed.
	Seed int64 `json:"seed"`
}

// Dimension partitions world geometry queries.
type Dimension string

// Known dimensions.
const (
	DimensionOverworld Dimension = "overworld"
	DimensionNether    Dimension = "nether"
	DimensionEnd       Dimension = "end"
)

// ParseDimension parses a dimension name case-insensitively.
// An empty string yields the overworld.
func ParseDimension(s string) (Dimension, error) {
	switch d := Dimension(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return DimensionOverworld, nil
	case DimensionOverworld, DimensionNether, DimensionEnd:
		return d, nil
	default:
		return "", fmt.Errorf("unknown dimension %q: %w", s, ErrInvalidInput)
	}
}

// Hit is a single location reported by the world oracle.
type Hit struct {
	X int32
	Z int32
}

// Point converts the hit to a horizontal point.
func (h Hit) Point() Point {
	return Point{X: float64(h.X), Y: float64(h.Z)}
}
