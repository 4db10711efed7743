package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture routes output to a buffer until the test ends.
func capture(t *testing.T, verbose bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verbose)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name    string
		log     func(string, ...any)
		verbose bool
		want    string
	}{
		{"debug verbose", Debug, true, "[DEBUG]\tupgraded v1\n"},
		{"info verbose", Info, true, "[INFO]\tupgraded v1\n"},
		{"warn verbose", Warn, true, "[WARN]\tupgraded v1\n"},
		{"error verbose", Error, true, "[ERROR]\tupgraded v1\n"},
		{"debug quiet", Debug, false, ""},
		{"info quiet", Info, false, ""},
		{"warn quiet", Warn, false, ""},
		{"error quiet", Error, false, "[ERROR]\tupgraded v1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, tt.verbose)

			tt.log("upgraded v%d", 1)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSection(t *testing.T) {
	buf := capture(t, true)
	Section("Search")
	assert.Equal(t, "\n=== Search ===\n", buf.String())

	buf = capture(t, false)
	Section("Search")
	assert.Zero(t, buf.Len())
}
