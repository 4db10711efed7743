package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// parsePoint parses an "x,z" pair. Whitespace around either number is ignored.
func parsePoint(s string) (domain.Point, error) {
	xs, zs, ok := strings.Cut(s, ",")
	if !ok {
		return domain.Point{}, fmt.Errorf("expected x,z but got %q: %w", s, domain.ErrInvalidInput)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("invalid x coordinate %q: %w", xs, domain.ErrInvalidInput)
	}
	z, err := strconv.ParseFloat(strings.TrimSpace(zs), 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("invalid z coordinate %q: %w", zs, domain.ErrInvalidInput)
	}
	return domain.Point{X: x, Y: z}, nil
}

// parseIndex parses a zero-based pin or location index.
func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 0 {
		return 0, fmt.Errorf("invalid index %q: %w", s, domain.ErrInvalidInput)
	}
	return i, nil
}

// parseIndices parses every argument as an index.
func parseIndices(args []string) ([]int, error) {
	indices := make([]int, 0, len(args))
	for _, arg := range args {
		i, err := parseIndex(arg)
		if err != nil {
			return nil, err
		}
		indices = append(indices, i)
	}
	return indices, nil
}
