//go:build !cgo || !cubiomes

package cubiomes

import (
	"context"
	"fmt"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driven"
)

// Ensure Oracle implements the interface.
var _ driven.WorldOracle = (*Oracle)(nil)

// Oracle answers structure and biome queries for one seed and version.
// This is a stub for builds without cubiomes.
type Oracle struct{}

// New always fails: this build has no world generator.
func New(settings domain.WorldSettings) (*Oracle, error) {
	return nil, fmt.Errorf("generator version %q (built without cubiomes): %w",
		settings.GeneratorVersion, domain.ErrOracleUnavailable)
}

// NewFactory returns an OracleFactory whose oracles never construct.
func NewFactory() driven.OracleFactory {
	return driven.OracleFactoryFunc(func(settings domain.WorldSettings) (driven.WorldOracle, error) {
		return New(settings)
	})
}

// Available reports whether this build can construct oracles.
func Available() bool {
	return false
}

// FindStructures is not available in this build.
func (o *Oracle) FindStructures(
	_ context.Context, _ string, _ domain.Point3, _ int32, _ domain.Dimension,
) ([]domain.Hit, error) {
	return nil, domain.ErrNotImplemented
}

// FindBiomes is not available in this build.
func (o *Oracle) FindBiomes(
	_ context.Context, _ string, _ domain.Point3, _ int32, _ domain.Dimension,
) ([]domain.Hit, error) {
	return nil, domain.ErrNotImplemented
}
