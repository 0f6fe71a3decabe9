package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naineel1209/golang-mp3-player/config"
)

func TestParseFlagsOverridesPreferences(t *testing.T) {
	f, err := parseFlags([]string{"--config", "/tmp/go-tcha.toml", "-d", "/music", "--remote=127.0.0.1:8085", "--log-level", "debug"})
	require.NoError(t, err)

	cfg := config.Default()
	f.apply(cfg)

	assert.Equal(t, "/tmp/go-tcha.toml", f.configPath)
	assert.Equal(t, "/music", cfg.AlbumDirectory)
	assert.Equal(t, "127.0.0.1:8085", cfg.RemoteAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseFlagsKeepsPreferencesWhenUnset(t *testing.T) {
	f, err := parseFlags(nil)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.AlbumDirectory = "/albums"
	f.apply(cfg)

	assert.Equal(t, config.DefaultPath(), f.configPath)
	assert.Equal(t, "/albums", cfg.AlbumDirectory)
	assert.Equal(t, config.Default().LogLevel, cfg.LogLevel)
}

func TestParseFlagsRejectsUnknown(t *testing.T) {
	_, err := parseFlags([]string{"--shuffle"})

	assert.Error(t, err)
}
