package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

func TestSearchService_EmptyQuery(t *testing.T) {
	oracle := &mockOracle{structures: []domain.Hit{{X: 1, Z: 1}}}
	service := NewSearchService(fixedOracle(oracle))
	doc := testDocument(domain.NewPin(domain.Point{}, "Home"), domain.NewPin(domain.Point{X: 5}, "Village"))

	result, err := service.Search(context.Background(), "", doc, domain.DefaultSearchOptions())

	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
	assert.Empty(t, oracle.structureCalls)
}

func TestSearchService_WhitespaceQueryMatchesPins(t *testing.T) {
	oracle := &mockOracle{structures: []domain.Hit{{X: 1, Z: 1}}}
	service := NewSearchService(fixedOracle(oracle))
	doc := testDocument(domain.NewPin(domain.Point{}, "My Base"), domain.NewPin(domain.Point{X: 5}, "Village"))

	result, err := service.Search(context.Background(), " ", doc, domain.DefaultSearchOptions())

	require.NoError(t, err)
	require.Len(t, result.Pins, 1)
	assert.Equal(t, "My Base", result.Pins[0].Name)
	assert.Empty(t, result.Structures)
	assert.Empty(t, result.Coordinates)
	assert.Empty(t, oracle.structureCalls)
}

func TestSearchService_CoordinateIntent(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []domain.Point
	}{
		{"origin", "0, 0", []domain.Point{{X: 0, Y: 0}}},
		{"negative", "-120, 48", []domain.Point{{X: -120, Y: 48}}},
		{"both negative", "-1, -2", []domain.Point{{X: -1, Y: -2}}},
		{"embedded", "go to 10, 20 now", []domain.Point{{X: 10, Y: 20}}},
		{"first match wins", "1, 2 and 3, 4", []domain.Point{{X: 1, Y: 2}}},
		{"no space", "1,2", []domain.Point{}},
		{"two spaces", "1,  2", []domain.Point{}},
		{"decimal is not a coordinate", "1.5, x", []domain.Point{}},
		{"beyond int64", "99999999999999999999, 1", []domain.Point{{X: 1e20, Y: 1}}},
	}

	service := NewSearchService(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Search(context.Background(), tt.query, testDocument(), domain.DefaultSearchOptions())

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Coordinates)
		})
	}
}

func TestSearchService_CoordinateIgnoresDocumentContent(t *testing.T) {
	oracle := &mockOracle{structures: []domain.Hit{{X: 1, Z: 1}}}
	service := NewSearchService(fixedOracle(oracle))
	doc := testDocument(domain.NewPin(domain.Point{X: 3}, "Base"))

	result, err := service.Search(context.Background(), "0, 0", doc, domain.DefaultSearchOptions())

	require.NoError(t, err)
	assert.Equal(t, []domain.Point{{X: 0, Y: 0}}, result.Coordinates)
	assert.Empty(t, result.Pins)
	assert.Empty(t, result.Structures)
	assert.Empty(t, result.Biomes)
	assert.Equal(t, 1, result.Count())
}

func TestSearchService_NameIntent(t *testing.T) {
	doc := testDocument(
		domain.NewPin(domain.Point{X: 1}, "Main Base"),
		domain.NewPin(domain.Point{X: 2}, "Nether Portal"),
		domain.NewPin(domain.Point{X: 3}, "base camp"),
	)
	service := NewSearchService(nil)

	result, err := service.Search(context.Background(), "BASE", doc, domain.DefaultSearchOptions())

	require.NoError(t, err)
	require.Len(t, result.Pins, 2)
	assert.Equal(t, "Main Base", result.Pins[0].Name)
	assert.Equal(t, "base camp", result.Pins[1].Name)
}

func TestSearchService_NameIntentClonesPins(t *testing.T) {
	pin := domain.NewPin(domain.Point{}, "Home")
	pin.Tags = []string{"safe"}
	doc := testDocument(pin)

	result, err := NewSearchService(nil).Search(context.Background(), "home", doc, domain.DefaultSearchOptions())
	require.NoError(t, err)
	require.Len(t, result.Pins, 1)

	result.Pins[0].Tags[0] = "changed"
	assert.Equal(t, "safe", doc.Manifest.Pins[0].Tags[0])
}

func TestSearchService_StructureIntent(t *testing.T) {
	oracle := &mockOracle{structures: []domain.Hit{{X: 5, Z: 0}, {X: 0, Z: 2}, {X: -3, Z: 2}}}
	service := NewSearchService(fixedOracle(oracle))
	opts := domain.SearchOptions{Dimension: domain.DimensionOverworld, StructureRadius: 64}

	result, err := service.Search(context.Background(), "Village", testDocument(), opts)

	require.NoError(t, err)
	require.Len(t, result.Structures, 3)
	assert.Equal(t, domain.Point{X: 0, Y: 2}, result.Structures[0].Position)
	assert.Equal(t, domain.Point{X: 5, Y: 0}, result.Structures[1].Position)
	assert.Equal(t, domain.Point{X: -3, Y: 2}, result.Structures[2].Position)
	for _, hit := range result.Structures {
		assert.Equal(t, "Village", hit.Name)
		assert.Equal(t, domain.PinColorBrown, hit.Color)
		assert.Empty(t, hit.Images)
		assert.Empty(t, hit.Tags)
	}

	require.Len(t, oracle.structureCalls, 1)
	assert.Equal(t, "village", oracle.structureCalls[0].kind)
	assert.Equal(t, int32(64), oracle.structureCalls[0].radius)
	assert.Empty(t, oracle.biomeCalls)
}

func TestSearchService_StructureOrderingIsStable(t *testing.T) {
	oracle := &mockOracle{structures: []domain.Hit{{X: 2, Z: 0}, {X: 0, Z: 2}, {X: 1, Z: 1}, {X: 0, Z: 0}}}
	service := NewSearchService(fixedOracle(oracle))

	result, err := service.Search(context.Background(), "igloo", testDocument(), domain.DefaultSearchOptions())

	require.NoError(t, err)
	require.Len(t, result.Structures, 4)
	assert.Equal(t, domain.Point{X: 0, Y: 0}, result.Structures[0].Position)
	assert.Equal(t, domain.Point{X: 2, Y: 0}, result.Structures[1].Position)
	assert.Equal(t, domain.Point{X: 0, Y: 2}, result.Structures[2].Position)
	assert.Equal(t, domain.Point{X: 1, Y: 1}, result.Structures[3].Position)
}

func TestSearchService_StructureDistanceFromOrigin(t *testing.T) {
	oracle := &mockOracle{structures: []domain.Hit{{X: 100, Z: 100}, {X: 0, Z: 0}}}
	service := NewSearchService(fixedOracle(oracle))
	opts := domain.DefaultSearchOptions()
	opts.Origin = domain.Point3{X: 98, Y: 64, Z: 99}

	result, err := service.Search(context.Background(), "ocean monument", testDocument(), opts)

	require.NoError(t, err)
	require.Len(t, result.Structures, 2)
	assert.Equal(t, domain.Point{X: 100, Y: 100}, result.Structures[0].Position)
	assert.Equal(t, opts.Origin, oracle.structureCalls[0].origin)
}

func TestSearchService_DefaultStructureRadius(t *testing.T) {
	oracle := &mockOracle{}
	service := NewSearchService(fixedOracle(oracle))

	_, err := service.Search(context.Background(), "village", testDocument(), domain.SearchOptions{})

	require.NoError(t, err)
	require.Len(t, oracle.structureCalls, 1)
	assert.Equal(t, domain.DefaultStructureRadius, oracle.structureCalls[0].radius)
}

func TestSearchService_BiomeIntent(t *testing.T) {
	oracle := &mockOracle{biomes: []domain.Hit{{X: 400, Z: -400}, {X: 10, Z: 10}}}
	service := NewSearchService(fixedOracle(oracle))
	opts := domain.DefaultSearchOptions()
	opts.Dimension = domain.DimensionOverworld

	result, err := service.Search(context.Background(), "cherry grove", testDocument(), opts)

	require.NoError(t, err)
	require.Len(t, result.Biomes, 2)
	assert.Equal(t, domain.Point{X: 10, Y: 10}, result.Biomes[0].Position)
	assert.Equal(t, "Cherry Grove", result.Biomes[0].Name)
	assert.Equal(t, domain.DefaultPinColor, result.Biomes[0].Color)

	require.Len(t, oracle.biomeCalls, 1)
	assert.Equal(t, "cherry_grove", oracle.biomeCalls[0].kind)
	assert.Equal(t, domain.BiomeSearchRadius, oracle.biomeCalls[0].radius)
	assert.Empty(t, oracle.structureCalls)
}

func TestSearchService_BiomeIntentRespectsGeneratorVersion(t *testing.T) {
	oracle := &mockOracle{biomes: []domain.Hit{{X: 1, Z: 1}}}
	service := NewSearchService(fixedOracle(oracle))
	doc := testDocument()
	doc.Manifest.World.GeneratorVersion = "1.16.5"

	result, err := service.Search(context.Background(), "Cherry Grove", doc, domain.DefaultSearchOptions())
	require.NoError(t, err)
	assert.Empty(t, result.Biomes)

	result, err = service.Search(context.Background(), "Mountains", doc, domain.DefaultSearchOptions())
	require.NoError(t, err)
	require.Len(t, result.Biomes, 1)
	assert.Equal(t, "Mountains", result.Biomes[0].Name)
}

func TestSearchService_NonExclusiveIntents(t *testing.T) {
	oracle := &mockOracle{structures: []domain.Hit{{X: 7, Z: 7}}}
	service := NewSearchService(fixedOracle(oracle))
	doc := testDocument(domain.NewPin(domain.Point{X: 1}, "Village"), domain.NewPin(domain.Point{X: 2}, "Farm"))

	result, err := service.Search(context.Background(), "village", doc, domain.DefaultSearchOptions())

	require.NoError(t, err)
	assert.Len(t, result.Pins, 1)
	assert.Len(t, result.Structures, 1)
	assert.Empty(t, result.Coordinates)
}

func TestSearchService_OracleUnavailable(t *testing.T) {
	service := NewSearchService(unavailableOracle())
	doc := testDocument(domain.NewPin(domain.Point{}, "Village Square"))

	result, err := service.Search(context.Background(), "village", doc, domain.DefaultSearchOptions())

	require.NoError(t, err)
	assert.Len(t, result.Pins, 1)
	assert.Empty(t, result.Structures)
	assert.NotNil(t, result.Structures)
	assert.Empty(t, result.Biomes)
}

func TestSearchService_NilOracleFactory(t *testing.T) {
	service := NewSearchService(nil)

	result, err := service.Search(context.Background(), "desert", testDocument(), domain.DefaultSearchOptions())

	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
}

func TestSearchService_OracleErrorsDegradeIndependently(t *testing.T) {
	tests := []struct {
		name           string
		oracle         *mockOracle
		query          string
		wantStructures int
		wantBiomes     int
	}{
		{
			name:   "structure failure",
			oracle: &mockOracle{structureErr: errors.New("boom"), biomes: []domain.Hit{{X: 1}}},
			query:  "village",
		},
		{
			name:       "biome failure",
			oracle:     &mockOracle{biomeErr: errors.New("boom"), structures: []domain.Hit{{X: 1}}},
			query:      "desert",
			wantBiomes: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSearchService(fixedOracle(tt.oracle))
			result, err := service.Search(context.Background(), tt.query, testDocument(), domain.DefaultSearchOptions())

			require.NoError(t, err)
			assert.Len(t, result.Structures, tt.wantStructures)
			assert.Len(t, result.Biomes, tt.wantBiomes)
		})
	}
}

func TestSearchService_CancelledContext(t *testing.T) {
	oracle := &mockOracle{delay: 200 * time.Millisecond, structures: []domain.Hit{{X: 1}}}
	service := NewSearchService(fixedOracle(oracle))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := service.Search(ctx, "village", testDocument(), domain.DefaultSearchOptions())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSearchService_ConcurrentSearches(t *testing.T) {
	oracle := &mockOracle{structures: []domain.Hit{{X: 3}, {X: 1}}}
	service := NewSearchService(fixedOracle(oracle))
	doc := testDocument(domain.NewPin(domain.Point{}, "Village"))

	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func() {
			result, err := service.Search(context.Background(), "village", doc, domain.DefaultSearchOptions())
			if err == nil && len(result.Structures) != 2 {
				err = errors.New("unexpected structure count")
			}
			errs <- err
		}()
	}
	for i := 0; i < 10; i++ {
		assert.NoError(t, <-errs)
	}
}

func TestParseCoordinate(t *testing.T) {
	p, ok := parseCoordinate("12, -34")
	assert.True(t, ok)
	assert.Equal(t, domain.Point{X: 12, Y: -34}, p)

	_, ok = parseCoordinate("twelve, thirty")
	assert.False(t, ok)

	_, ok = parseCoordinate("99999999999999999999, 1")
	assert.False(t, ok)
}
