package services

import (
	"context"
	"sync"
	"time"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driven"
)

// oracleCall records a single oracle query.
type oracleCall struct {
	kind      string
	origin    domain.Point3
	radius    int32
	dimension domain.Dimension
}

// mockOracle implements driven.WorldOracle for testing.
type mockOracle struct {
	mu             sync.Mutex
	structures     []domain.Hit
	biomes         []domain.Hit
	structureErr   error
	biomeErr       error
	delay          time.Duration
	structureCalls []oracleCall
	biomeCalls     []oracleCall
}

func (m *mockOracle) FindStructures(
	_ context.Context, kind string, origin domain.Point3, radius int32, dim domain.Dimension,
) ([]domain.Hit, error) {
	time.Sleep(m.delay)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.structureCalls = append(m.structureCalls, oracleCall{kind, origin, radius, dim})
	if m.structureErr != nil {
		return nil, m.structureErr
	}
	return m.structures, nil
}

func (m *mockOracle) FindBiomes(
	_ context.Context, kind string, origin domain.Point3, radius int32, dim domain.Dimension,
) ([]domain.Hit, error) {
	time.Sleep(m.delay)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.biomeCalls = append(m.biomeCalls, oracleCall{kind, origin, radius, dim})
	if m.biomeErr != nil {
		return nil, m.biomeErr
	}
	return m.biomes, nil
}

// fixedOracle returns a factory that always yields oracle.
func fixedOracle(oracle driven.WorldOracle) driven.OracleFactory {
	return driven.OracleFactoryFunc(func(domain.WorldSettings) (driven.WorldOracle, error) {
		return oracle, nil
	})
}

// unavailableOracle returns a factory that always fails to construct.
func unavailableOracle() driven.OracleFactory {
	return driven.OracleFactoryFunc(func(domain.WorldSettings) (driven.WorldOracle, error) {
		return nil, domain.ErrOracleUnavailable
	})
}

// failingPackageStore implements driven.PackageStore with injectable failures.
type failingPackageStore struct {
	driven.PackageStore
	writeErr  error
	existsErr error
}

func (s *failingPackageStore) Write(ctx context.Context, location string, pkg *driven.Package) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	return s.PackageStore.Write(ctx, location, pkg)
}

func (s *failingPackageStore) Exists(ctx context.Context, location string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	return s.PackageStore.Exists(ctx, location)
}

// testDocument builds a document on the 1.21.3 generator with the given pins.
func testDocument(pins ...domain.Pin) *domain.Document {
	return domain.NewDocument(domain.Manifest{
		SchemaVersion: domain.LatestSchemaVersion,
		Name:          "Test World",
		World:         domain.WorldSettings{GeneratorVersion: "1.21.3", Seed: 123},
		Pins:          pins,
	}, nil)
}
