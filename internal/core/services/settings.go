package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driven"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStructureRadius = "search.structure_radius"
	keyDimension       = "search.dimension"
	keyLibraryPath     = "library.path"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// StructureRadius returns the configured structure search radius.
// Missing, non-positive or out-of-range values fall back to the default.
func (s *SettingsService) StructureRadius() int32 {
	radius := s.configStore.GetInt(keyStructureRadius)
	if radius <= 0 || radius > math.MaxInt32 {
		return domain.DefaultStructureRadius
	}
	return int32(radius)
}

// SetStructureRadius persists a new structure search radius.
func (s *SettingsService) SetStructureRadius(radius int32) error {
	if radius <= 0 {
		return fmt.Errorf("structure radius must be positive, got %d: %w", radius, domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyStructureRadius, int(radius)); err != nil {
		return fmt.Errorf("failed to save structure radius: %w", err)
	}
	return nil
}

// Dimension returns the configured default dimension.
// Unknown values fall back to the overworld.
func (s *SettingsService) Dimension() domain.Dimension {
	dim, err := domain.ParseDimension(s.configStore.GetString(keyDimension))
	if err != nil {
		return domain.DimensionOverworld
	}
	return dim
}

// SetDimension persists a new default dimension.
func (s *SettingsService) SetDimension(dim domain.Dimension) error {
	parsed, err := domain.ParseDimension(string(dim))
	if err != nil {
		return err
	}
	if err := s.configStore.Set(keyDimension, string(parsed)); err != nil {
		return fmt.Errorf("failed to save dimension: %w", err)
	}
	return nil
}

// LibraryPath returns the configured library directory, or an empty string.
func (s *SettingsService) LibraryPath() string {
	return s.configStore.GetString(keyLibraryPath)
}

// SetLibraryPath persists the library directory. An empty path restores the default.
func (s *SettingsService) SetLibraryPath(path string) error {
	if err := s.configStore.Set(keyLibraryPath, strings.TrimSpace(path)); err != nil {
		return fmt.Errorf("failed to save library path: %w", err)
	}
	return nil
}

// SearchOptions builds search options centred on origin.
func (s *SettingsService) SearchOptions(origin domain.Point3) domain.SearchOptions {
	return domain.SearchOptions{
		Origin:          origin,
		Dimension:       s.Dimension(),
		StructureRadius: s.StructureRadius(),
	}
}
