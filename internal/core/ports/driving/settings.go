package driving

import "github.com/alicerunsonfedora/mcmaps/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// StructureRadius returns the configured structure search radius.
	StructureRadius() int32

	// SetStructureRadius persists a new structure search radius. Must be positive.
	SetStructureRadius(radius int32) error

	// Dimension returns the configured default dimension.
	Dimension() domain.Dimension

	// SetDimension persists a new default dimension.
	SetDimension(dim domain.Dimension) error

	// LibraryPath returns the configured library database directory, if any.
	LibraryPath() string

	// SetLibraryPath persists the library database directory.
	SetLibraryPath(path string) error

	// SearchOptions builds search options centred on origin from current settings.
	SearchOptions(origin domain.Point3) domain.SearchOptions
}
