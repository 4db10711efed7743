package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is a horizontal world position.
// X maps to the world's X axis and Y maps to the world's Z (depth) axis.
type Point struct {
	X float64
	Y float64
}

// Origin is the world origin.
var Origin = Point{}

// ManhattanDistance returns the taxicab distance to other, which is the
// distance measured in blocks walked along the grid.
func (p Point) ManhattanDistance(other Point) float64 {
	return math.Abs(p.X-other.X) + math.Abs(p.Y-other.Y)
}

// Rounded rounds both components to the nearest integer, away from zero on ties.
func (p Point) Rounded() Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// Readout is the human-readable form used for display and accessibility,
// e.g. "1,847, -1,847".
func (p Point) Readout() string {
	return GroupThousands(int64(p.X)) + ", " + GroupThousands(int64(p.Y))
}

// String returns the coordinate in query form, e.g. "1847, -1847".
func (p Point) String() string {
	return fmt.Sprintf("%d, %d", int64(p.X), int64(p.Y))
}

// ToOrigin lifts the point into a 3-D oracle origin at height y.
func (p Point) ToOrigin(y int32) Point3 {
	return Point3{X: int32(p.X), Y: y, Z: int32(p.Y)}
}

// MarshalJSON encodes the point as a two-element array.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// UnmarshalJSON decodes a two-element array.
func (p *Point) UnmarshalJSON(data []byte) error {
	var raw []float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("point: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("point: expected 2 components, got %d: %w", len(raw), ErrInvalidInput)
	}
	p.X, p.Y = raw[0], raw[1]
	return nil
}

// GroupThousands formats n with comma thousands separators, e.g. "-1,847".
func GroupThousands(n int64) string {
	digits := strconv.FormatInt(n, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + b.String()
}

// Point3 is an integer block position used when querying the world oracle.
type Point3 struct {
	X int32
	Y int32
	Z int32
}

// Flat drops the vertical axis.
func (p Point3) Flat() Point {
	return Point{X: float64(p.X), Y: float64(p.Z)}
}
