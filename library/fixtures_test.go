package library

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/stretchr/testify/require"
)

// mpeg1 layer 3, 44.1kHz, joint stereo, no crc
var frameHeaders = map[int][]byte{
	320: {0xFF, 0xFB, 0xE0, 0x40},
	128: {0xFF, 0xFB, 0x90, 0x40},
}

var frameSizes = map[int]int{
	320: 1044,
	128: 417,
}

type fixture struct {
	Title   string
	Artist  string
	Album   string
	Kbps    int
	Frames  int
	Picture []byte
	PicType byte
}

func writeMP3(t *testing.T, path string, f fixture) {
	t.Helper()

	var buf bytes.Buffer

	tag := id3v2.NewEmptyTag()
	if f.Title != "" {
		tag.SetTitle(f.Title)
	}
	if f.Artist != "" {
		tag.SetArtist(f.Artist)
	}
	if f.Album != "" {
		tag.SetAlbum(f.Album)
	}
	if f.Picture != nil {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/png",
			PictureType: f.PicType,
			Description: "cover",
			Picture:     f.Picture,
		})
	}
	_, err := tag.WriteTo(&buf)
	require.NoError(t, err)

	kbps := f.Kbps
	if kbps == 0 {
		kbps = 320
	}
	frames := f.Frames
	if frames == 0 {
		frames = 38
	}
	for i := 0; i < frames; i++ {
		frame := make([]byte, frameSizes[kbps])
		copy(frame, frameHeaders[kbps])
		buf.Write(frame)
	}

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
