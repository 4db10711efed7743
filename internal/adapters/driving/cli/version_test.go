package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	original := version
	version = v
	t.Cleanup(func() { version = original })
}

func TestVersionCmd_Executes(t *testing.T) {
	withVersion(t, "1.4.0")

	out, err := executeCommand(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "mcmaps version 1.4.0\n", out)
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	withVersion(t, "dev")

	out, err := executeCommand(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "mcmaps version dev")
	assert.NotContains(t, out, "Schema:")
}

func TestVersionCmd_Details(t *testing.T) {
	withVersion(t, "1.4.0")
	cleanup := setupTestServices()
	defer cleanup()
	deps.Oracle = "cubiomes"

	out, err := executeCommand(t, "version", "--details")

	require.NoError(t, err)
	assert.Contains(t, out, "mcmaps version 1.4.0")
	assert.Contains(t, out, "Schema:   v2")
	assert.Contains(t, out, "Oracle:   cubiomes")
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionCmd_DetailsWithoutOracle(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "version", "-d")

	require.NoError(t, err)
	assert.Contains(t, out, "Oracle:   unknown")
}
