package cli

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [location] [query]", searchCmd.Use)
}

func TestSearchCmd_RequiresTwoArgs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(t, "search", testLocation)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestSearchCmd_HasFlags(t *testing.T) {
	for _, name := range []string{"origin", "dimension", "radius", "json"} {
		assert.NotNil(t, searchCmd.Flags().Lookup(name), "missing flag %s", name)
	}
	assert.Equal(t, "r", searchCmd.Flags().Lookup("radius").Shorthand)
}

func TestSearchCmd_Structures(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "search", testLocation, "village")

	require.NoError(t, err)
	assert.Contains(t, out, `Results for "village" (2):`)
	assert.Contains(t, out, "Structures")
	// Nearest first from the origin.
	assert.Less(t, strings.Index(out, "128, 64"), strings.Index(out, "-300, 10"))
	assert.Contains(t, out, "192 blocks")
}

func TestSearchCmd_PinsAndCoordinates(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "search", testLocation, "base")
	require.NoError(t, err)
	assert.Contains(t, out, "Pins")
	assert.Contains(t, out, "Base")

	out, err = executeCommand(t, "search", testLocation, "100, -50")
	require.NoError(t, err)
	assert.Contains(t, out, "Coordinates")
}

func TestSearchCmd_NoResults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "search", testLocation, "zzz")

	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "search", testLocation, "cherry grove", "--json")
	require.NoError(t, err)

	var result domain.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Biomes, 1)
	assert.Equal(t, domain.Point{X: 500, Y: 500}, result.Biomes[0].Position)
	assert.Empty(t, result.Structures)
}

func TestSearchCmd_InvalidFlags(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(t, "search", testLocation, "village", "--origin", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = executeCommand(t, "search", testLocation, "village", "--dimension", "aether")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchCmd_NotConfigured(t *testing.T) {
	previous := deps
	defer func() { deps = previous }()
	SetServices(&Services{})

	_, err := executeCommand(t, "search", testLocation, "village")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "search service not configured")
}

func TestSearchOptions(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, deps.Settings.SetStructureRadius(64))
	require.NoError(t, deps.Settings.SetDimension(domain.DimensionNether))

	doc := openTestDocument(t)

	opts, err := searchOptions(doc, "", "", 0)
	require.NoError(t, err)
	assert.Equal(t, domain.SearchOptions{
		Origin:          domain.Point3{X: 0, Y: domain.DefaultOriginY, Z: 0},
		Dimension:       domain.DimensionNether,
		StructureRadius: 64,
	}, opts)

	_, err = deps.Documents.PushRecentLocation(context.Background(), testLocation, domain.Point{X: 10.6, Y: -3.5})
	require.NoError(t, err)
	doc = openTestDocument(t)

	opts, err = searchOptions(doc, "", "end", 5)
	require.NoError(t, err)
	assert.Equal(t, domain.Point3{X: 11, Y: domain.DefaultOriginY, Z: -4}, opts.Origin)
	assert.Equal(t, domain.DimensionEnd, opts.Dimension)
	assert.Equal(t, int32(5), opts.StructureRadius)

	opts, err = searchOptions(doc, "-20,30", "", 0)
	require.NoError(t, err)
	assert.Equal(t, domain.Point3{X: -20, Y: domain.DefaultOriginY, Z: 30}, opts.Origin)
}
