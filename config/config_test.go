package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, 320, cfg.MinBitrate)
	assert.Equal(t, 44100, cfg.SampleRate)
	assert.True(t, cfg.AutoAdvance)
	assert.Equal(t, 200, cfg.ArtworkSize)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
album_directory = "/srv/music"
min_bitrate = 256
auto_advance = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/srv/music", cfg.AlbumDirectory)
	assert.Equal(t, 256, cfg.MinBitrate)
	assert.False(t, cfg.AutoAdvance)
	assert.Equal(t, 44100, cfg.SampleRate)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("album_dir = \"/x\"\n"), 0o644))

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "album_dir")
}

func TestLoadRejectsBrokenToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("min_bitrate = \n"), 0o644))

	_, err := Load(path)

	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.AlbumDirectory = "/home/me/Albums"
	cfg.RemoteAddr = "127.0.0.1:8085"
	cfg.Volume = -1.5

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bitrate", func(c *Config) { c.MinBitrate = 0 }},
		{"sample rate", func(c *Config) { c.SampleRate = -1 }},
		{"artwork", func(c *Config) { c.ArtworkSize = 0 }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
