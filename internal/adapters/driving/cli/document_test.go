package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

func TestNewCmd_Use(t *testing.T) {
	assert.Equal(t, "new [location]", newCmd.Use)
}

func TestNewCmd_Defaults(t *testing.T) {
	flag := newCmd.Flags().Lookup("name")
	require.NotNil(t, flag)
	assert.Equal(t, "My World", flag.DefValue)

	flag = newCmd.Flags().Lookup("version")
	require.NotNil(t, flag)
	assert.Equal(t, "1.21.3", flag.DefValue)
}

func TestNewCmd_CreatesDocument(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "new", "Nether.mcmap", "--name", "Hub", "--seed", "-42", "--version", "1.20.1")

	require.NoError(t, err)
	assert.Contains(t, out, `Created "Hub" at Nether.mcmap`)
	assert.Contains(t, out, "Seed:    -42")

	doc, err := deps.Documents.Open(context.Background(), "Nether.mcmap")
	require.NoError(t, err)
	assert.Equal(t, domain.WorldSettings{GeneratorVersion: "1.20.1", Seed: -42}, doc.Manifest.World)
	assert.Empty(t, doc.Manifest.Pins)
}

func TestNewCmd_ExistingLocation(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(t, "new", testLocation)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestNewCmd_Library(t *testing.T) {
	cleanup, stores := setupTestServicesWithStores()
	defer cleanup()

	_, err := executeCommand(t, "--library", "new", "Shared")
	require.NoError(t, err)

	exists, err := stores.library.Exists(context.Background(), "Shared")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = stores.packages.Exists(context.Background(), "Shared")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestInfoCmd_ShowsDocument(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := deps.Documents.PushRecentLocation(context.Background(), testLocation, domain.Point{X: 1847, Y: -1847})
	require.NoError(t, err)

	out, err := executeCommand(t, "info", testLocation)

	require.NoError(t, err)
	assert.Contains(t, out, "World: Test World")
	assert.Contains(t, out, "Version:  1.21.3")
	assert.Contains(t, out, "Seed:     123")
	assert.Contains(t, out, "Schema:   v2")
	assert.Contains(t, out, "Pins:     2")
	assert.Contains(t, out, "Tags:     home")
	assert.Contains(t, out, "Current:  1,847, -1,847")
}

func TestInfoCmd_Missing(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(t, "info", "nowhere")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInfoCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(t, "info")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestListCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, testLocation)
	assert.Contains(t, out, "Total: 1 documents")

	out, err = executeCommand(t, "--library", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No documents found.")
}
