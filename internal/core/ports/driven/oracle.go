package driven

import (
	"context"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// WorldOracle answers geometry queries about one generated world.
// The generation algorithm itself is opaque to the core.
//
// Calls may be CPU-bound and slow. Implementations need not honour
// cancellation mid-call; abandoned results are discarded by the caller.
type WorldOracle interface {
	// FindStructures locates structures of the given kind within radius blocks of origin.
	FindStructures(
		ctx context.Context, kind string, origin domain.Point3, radius int32, dim domain.Dimension,
	) ([]domain.Hit, error)

	// FindBiomes locates biomes of the given kind within radius blocks of origin.
	FindBiomes(
		ctx context.Context, kind string, origin domain.Point3, radius int32, dim domain.Dimension,
	) ([]domain.Hit, error)
}

// OracleFactory constructs a world oracle from world settings.
// Construction fails with domain.ErrOracleUnavailable when the generator
// version is not recognised.
type OracleFactory interface {
	NewOracle(settings domain.WorldSettings) (WorldOracle, error)
}

// OracleFactoryFunc adapts a function to OracleFactory.
type OracleFactoryFunc func(settings domain.WorldSettings) (WorldOracle, error)

// NewOracle calls f.
func (f OracleFactoryFunc) NewOracle(settings domain.WorldSettings) (WorldOracle, error) {
	return f(settings)
}
