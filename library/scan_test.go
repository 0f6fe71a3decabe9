package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestListAlbums(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"Selected Ambient Works", "Geogaddi", ".trash", "Aja"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, dir), 0o755))
	}
	touch(t, filepath.Join(root, "readme.txt"))

	albums, err := ListAlbums(root)

	require.NoError(t, err)
	assert.Equal(t, []string{"Aja", "Geogaddi", "Selected Ambient Works"}, albums)
}

func TestListAlbumsMissingDirectory(t *testing.T) {
	_, err := ListAlbums(filepath.Join(t.TempDir(), "missing"))

	assert.Error(t, err)
}

func TestAlbumTracksWalksRecursively(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "02 - b.mp3"))
	touch(t, filepath.Join(root, "01 - a.MP3"))
	touch(t, filepath.Join(root, "cover.jpg"))
	touch(t, filepath.Join(root, "CD2", "01 - c.mp3"))
	touch(t, filepath.Join(root, "notes.mp3.txt"))

	tracks, err := AlbumTracks(root)

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "01 - a.MP3"),
		filepath.Join(root, "02 - b.mp3"),
		filepath.Join(root, "CD2", "01 - c.mp3"),
	}, tracks)
}

func TestAlbumTracksEmptyAlbum(t *testing.T) {
	tracks, err := AlbumTracks(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, tracks)
}
