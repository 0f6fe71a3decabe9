package library

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var musicExtensions = []string{".mp3"}

// ListAlbums returns the names of the album folders directly below dir, sorted.
// Plain files and hidden entries are ignored.
func ListAlbums(dir string) ([]string, error) {
	dirData, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read album directory %s", dir)
	}

	var albums []string
	for _, entry := range dirData {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		albums = append(albums, entry.Name())
	}

	return albums, nil
}

// AlbumTracks walks albumPath recursively and returns every mp3 file in lexical order.
func AlbumTracks(albumPath string) ([]string, error) {
	var musicFiles []string

	err := filepath.WalkDir(albumPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isMusicFile(d.Name()) {
			musicFiles = append(musicFiles, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scan album %s", albumPath)
	}

	return musicFiles, nil
}

func isMusicFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, musicExt := range musicExtensions {
		if ext == musicExt {
			return true
		}
	}

	return false
}
