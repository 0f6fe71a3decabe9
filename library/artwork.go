package library

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/naineel1209/golang-mp3-player/logger"
	types "github.com/naineel1209/golang-mp3-player/type-defs"
)

var ErrNoArtwork = errors.New("no artwork found")

var folderArtwork = []string{"cover.jpg", "cover.png", "folder.jpg", "folder.png"}

// Artwork returns the album cover scaled to fit size x size. The first track carrying an
// embedded picture wins; otherwise a cover image in the album folder is used.
func Artwork(album types.Album, size int) (image.Image, error) {
	for _, track := range album.Tracks {
		data, err := embeddedPicture(track.Path)
		if err != nil {
			logger.Logger.Debug().Err(err).Str("path", track.Path).Msg("no embedded artwork")
			continue
		}

		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			logger.Logger.Warn().Err(err).Str("path", track.Path).Msg("undecodable artwork")
			continue
		}

		return thumbnail(img, size), nil
	}

	for _, name := range folderArtwork {
		file, err := os.Open(filepath.Join(album.Path, name))
		if err != nil {
			continue
		}

		img, _, err := image.Decode(file)
		file.Close()
		if err != nil {
			logger.Logger.Warn().Err(err).Str("file", name).Msg("undecodable folder artwork")
			continue
		}

		return thumbnail(img, size), nil
	}

	return nil, ErrNoArtwork
}

// embeddedPicture prefers the front cover APIC frame and falls back to whatever
// picture the generic tag reader finds first.
func embeddedPicture(path string) ([]byte, error) {
	id3, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{"Attached picture"}})
	if err == nil {
		defer id3.Close()

		var first []byte
		for _, f := range id3.GetFrames(id3.CommonID("Attached picture")) {
			pic, ok := f.(id3v2.PictureFrame)
			if !ok {
				continue
			}
			if pic.PictureType == id3v2.PTFrontCover {
				return pic.Picture, nil
			}
			if first == nil {
				first = pic.Picture
			}
		}
		if first != nil {
			return first, nil
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open track")
	}
	defer file.Close()

	m, err := tag.ReadFrom(file)
	if err != nil {
		return nil, errors.Wrap(err, "read tags")
	}
	if pic := m.Picture(); pic != nil {
		return pic.Data, nil
	}

	return nil, ErrNoArtwork
}

func thumbnail(img image.Image, size int) image.Image {
	return resize.Thumbnail(uint(size), uint(size), img, resize.Lanczos3)
}
