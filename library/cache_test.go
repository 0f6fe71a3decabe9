package library

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/naineel1209/golang-mp3-player/type-defs"
)

func TestCacheStoreAndLookup(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	defer cache.Close()

	track := types.Track{
		Path:        "/music/Aja/01 Black Cow.mp3",
		Title:       "Black Cow",
		Artist:      "Steely Dan",
		Album:       "Aja",
		TrackNumber: 1,
		DiscNumber:  1,
		Bitrate:     320000,
		Duration:    5*time.Minute + 10*time.Second,
		HasArtwork:  true,
		Size:        12345,
		ModTime:     1700000000000000000,
	}
	require.NoError(t, cache.Store(track))

	got, ok, err := cache.Lookup(track.Path, track.Size, track.ModTime)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, track, got)

	_, ok, err = cache.Lookup(track.Path, track.Size+1, track.ModTime)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = cache.Lookup("/music/Aja/02 Aja.mp3", 1, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheStoreReplaces(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	defer cache.Close()

	track := types.Track{Path: "/a.mp3", Title: "old", Size: 1, ModTime: 1}
	require.NoError(t, cache.Store(track))
	track.Title = "new"
	track.ModTime = 2
	require.NoError(t, cache.Store(track))

	got, ok, err := cache.Lookup("/a.mp3", 1, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", got.Title)
}
