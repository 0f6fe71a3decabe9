package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "player.log")

	require.NoError(t, Setup(path, "debug"))
	Logger.Info().Str("album", "Geogaddi").Msg("album verified")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"album":"Geogaddi"`)
	assert.Contains(t, string(data), `"message":"album verified"`)

	// later calls are ignored
	require.NoError(t, Setup(filepath.Join(t.TempDir(), "other.log"), "not-a-level"))
}
