package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driven"
)

// Ensure PackageStore implements the interface.
var _ driven.PackageStore = (*PackageStore)(nil)

// PackageStore is an in-memory implementation of driven.PackageStore.
// Stored bytes are copied in and out so callers cannot alias them.
type PackageStore struct {
	mu       sync.RWMutex
	packages map[string]driven.Package
}

// NewPackageStore creates a new in-memory package store.
func NewPackageStore() *PackageStore {
	return &PackageStore{
		packages: make(map[string]driven.Package),
	}
}

// Read retrieves the package at location.
func (s *PackageStore) Read(_ context.Context, location string) (*driven.Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pkg, ok := s.packages[location]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clonePackage(&pkg), nil
}

// Write stores or replaces the package at location.
func (s *PackageStore) Write(_ context.Context, location string, pkg *driven.Package) error {
	if pkg == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packages[location] = *clonePackage(pkg)
	return nil
}

// Exists reports whether location holds a package.
func (s *PackageStore) Exists(_ context.Context, location string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.packages[location]
	return ok, nil
}

// List returns every stored location, sorted.
func (s *PackageStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.packages)), nil
}

func clonePackage(pkg *driven.Package) *driven.Package {
	assets := make(map[string][]byte, len(pkg.Assets))
	for name, data := range pkg.Assets {
		assets[name] = slices.Clone(data)
	}
	return &driven.Package{
		Manifest: slices.Clone(pkg.Manifest),
		Assets:   assets,
	}
}
