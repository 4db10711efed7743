package services

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/alicerunsonfedora/mcmaps/internal/core/catalog"
	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driven"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driving"
	"github.com/alicerunsonfedora/mcmaps/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// coordinatePattern matches a literal "x, z" pair. Exactly one comma-space separator.
var coordinatePattern = regexp.MustCompile(`(-?\d+), (-?\d+)`)

// SearchService resolves a free-text query against a document and its world.
// It holds no per-call state; concurrent searches do not interfere.
type SearchService struct {
	oracles driven.OracleFactory
}

// NewSearchService creates a new search service.
// The oracles parameter is optional (can be nil); without it structure and
// biome intents produce no results.
func NewSearchService(oracles driven.OracleFactory) *SearchService {
	return &SearchService{oracles: oracles}
}

// Search interprets query as every intent it matches and returns the grouped results.
func (s *SearchService) Search(
	ctx context.Context, query string, doc *domain.Document, opts domain.SearchOptions,
) (domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	result := domain.NewSearchResult()
	// Only the empty string is empty: " " still matches pins like "My Base".
	if query == "" || doc == nil {
		logger.Debug("Empty query, returning no results")
		return result, nil
	}

	if p, ok := parseCoordinate(query); ok {
		result.Coordinates = append(result.Coordinates, p)
	}
	result.Pins = matchPins(query, doc.Manifest.Pins)

	settings := doc.Manifest.World
	structure, hasStructure := catalog.ResolveStructure(query)
	biome, hasBiome := catalog.ResolveBiome(query, settings.GeneratorVersion)
	logger.Debug("Intents: coordinate=%v pins=%d structure=%v biome=%v",
		len(result.Coordinates) > 0, len(result.Pins), hasStructure, hasBiome)

	if !hasStructure && !hasBiome {
		return result, nil
	}

	oracle := s.oracle(settings)
	if oracle == nil {
		return result, nil
	}

	var structures, biomes []domain.Pin
	g, gctx := errgroup.WithContext(ctx)
	if hasStructure {
		g.Go(func() error {
			structures = s.findStructures(gctx, oracle, structure, opts)
			return nil
		})
	}
	if hasBiome {
		g.Go(func() error {
			biomes = s.findBiomes(gctx, oracle, biome, settings.GeneratorVersion, opts)
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Debug("Search abandoned: %v", ctx.Err())
		return domain.SearchResult{}, ctx.Err()
	}

	if structures != nil {
		result.Structures = structures
	}
	if biomes != nil {
		result.Biomes = biomes
	}
	logger.Debug("Results: %d total", result.Count())
	return result, nil
}

// oracle builds a world oracle, or returns nil if none is available.
func (s *SearchService) oracle(settings domain.WorldSettings) driven.WorldOracle {
	if s.oracles == nil {
		logger.Debug("No oracle factory configured")
		return nil
	}
	oracle, err := s.oracles.NewOracle(settings)
	if err != nil {
		logger.Warn("World oracle unavailable for %s/%d: %v", settings.GeneratorVersion, settings.Seed, err)
		return nil
	}
	return oracle
}

func (s *SearchService) findStructures(
	ctx context.Context, oracle driven.WorldOracle, kind catalog.StructureKind, opts domain.SearchOptions,
) []domain.Pin {
	hits, err := oracle.FindStructures(ctx, kind.ID, opts.Origin, opts.EffectiveStructureRadius(), opts.Dimension)
	if err != nil {
		logger.Warn("Structure search for %s failed: %v", kind.ID, err)
		return nil
	}
	pins := make([]domain.Pin, 0, len(hits))
	for _, hit := range hits {
		pins = append(pins, domain.Pin{Position: hit.Point(), Name: kind.Name, Color: kind.Color})
	}
	sortByDistance(pins, opts.Origin.Flat())
	logger.Debug("Structures: %d hits for %s", len(pins), kind.ID)
	return pins
}

func (s *SearchService) findBiomes(
	ctx context.Context, oracle driven.WorldOracle, kind catalog.BiomeKind, version string, opts domain.SearchOptions,
) []domain.Pin {
	hits, err := oracle.FindBiomes(ctx, kind.ID, opts.Origin, domain.BiomeSearchRadius, opts.Dimension)
	if err != nil {
		logger.Warn("Biome search for %s failed: %v", kind.ID, err)
		return nil
	}
	name := kind.LocalizedName(version)
	pins := make([]domain.Pin, 0, len(hits))
	for _, hit := range hits {
		pins = append(pins, domain.Pin{Position: hit.Point(), Name: name, Color: domain.DefaultPinColor})
	}
	sortByDistance(pins, opts.Origin.Flat())
	logger.Debug("Biomes: %d hits for %s", len(pins), kind.ID)
	return pins
}

// parseCoordinate returns the first literal coordinate in query.
func parseCoordinate(query string) (domain.Point, bool) {
	m := coordinatePattern.FindStringSubmatch(query)
	if m == nil {
		return domain.Point{}, false
	}
	// Digit runs too long for an int64 still parse, as large floats.
	x, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return domain.Point{}, false
	}
	y, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return domain.Point{}, false
	}
	return domain.Point{X: x, Y: y}, true
}

// matchPins returns the pins whose names contain query, ignoring case, in document order.
func matchPins(query string, pins []domain.Pin) []domain.Pin {
	q := strings.ToLower(query)
	matches := []domain.Pin{}
	for _, pin := range pins {
		if strings.Contains(strings.ToLower(pin.Name), q) {
			matches = append(matches, pin.Clone())
		}
	}
	return matches
}

func sortByDistance(pins []domain.Pin, origin domain.Point) {
	sort.SliceStable(pins, func(i, j int) bool {
		return pins[i].Position.ManhattanDistance(origin) < pins[j].Position.ManhattanDistance(origin)
	})
}
