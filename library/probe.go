package library

import (
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/pkg/errors"
	"github.com/tcolgate/mp3"

	"github.com/naineel1209/golang-mp3-player/logger"
	types "github.com/naineel1209/golang-mp3-player/type-defs"
)

var ErrNotMP3 = errors.New("no mpeg audio frames found")

// Prober reads tags and stream properties of mp3 files, going through the cache when
// one is configured. It is safe for concurrent use.
type Prober struct {
	cache *Cache
}

func NewProber(cache *Cache) *Prober {
	return &Prober{cache: cache}
}

func (p *Prober) Probe(path string) (types.Track, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.Track{}, errors.Wrap(err, "stat track")
	}

	if p.cache != nil {
		track, ok, err := p.cache.Lookup(path, info.Size(), info.ModTime().UnixNano())
		if err != nil {
			logger.Logger.Warn().Err(err).Str("path", path).Msg("cache lookup failed")
		} else if ok {
			return track, nil
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return types.Track{}, errors.Wrap(err, "open track")
	}
	defer file.Close()

	track := types.Track{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime().UnixNano(),
	}

	if err := readTags(file, &track); err != nil {
		return types.Track{}, err
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return types.Track{}, errors.Wrap(err, "rewind track")
	}

	if err := measureStream(file, &track); err != nil {
		return types.Track{}, err
	}

	if p.cache != nil {
		if err := p.cache.Store(track); err != nil {
			logger.Logger.Warn().Err(err).Str("path", path).Msg("cache store failed")
		}
	}

	logger.Logger.Debug().
		Str("path", path).
		Int("bitrate", track.Bitrate).
		Dur("duration", track.Duration).
		Msg("probed track")

	return track, nil
}

func readTags(r io.ReadSeeker, track *types.Track) error {
	m, err := tag.ReadFrom(r)
	if errors.Is(err, tag.ErrNoTagsFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "read tags")
	}

	track.Title = strings.TrimSpace(m.Title())
	track.Artist = strings.TrimSpace(m.Artist())
	track.Album = strings.TrimSpace(m.Album())
	track.TrackNumber, _ = m.Track()
	track.DiscNumber, _ = m.Disc()
	track.HasArtwork = m.Picture() != nil

	return nil
}

// measureStream walks every MPEG frame after the ID3v2 tag and records the total
// duration and the duration-weighted average bitrate.
func measureStream(r io.ReadSeeker, track *types.Track) error {
	offset, err := id3v2Size(r)
	if err != nil {
		return err
	}
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return errors.Wrap(err, "skip id3v2 tag")
	}

	decoder := mp3.NewDecoder(r)

	var (
		frame    mp3.Frame
		skipped  int
		frames   int
		bits     float64
		duration time.Duration
	)
	for {
		if err := decoder.Decode(&frame, &skipped); err != nil {
			if errors.Is(err, io.EOF) || frames > 0 {
				break
			}
			return errors.Wrap(err, "decode mpeg frame")
		}

		d := frame.Duration()
		bits += float64(frame.Header().BitRate()) * d.Seconds()
		duration += d
		frames++
	}

	if frames == 0 || duration <= 0 {
		return ErrNotMP3
	}

	track.Duration = duration
	track.Bitrate = int(math.Round(bits / duration.Seconds()))

	return nil
}

// id3v2Size returns the byte length of a leading ID3v2 tag, or 0 when there is none.
func id3v2Size(r io.ReadSeeker) (int64, error) {
	header := make([]byte, 10)
	if _, err := io.ReadFull(r, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "read id3v2 header")
	}

	if string(header[:3]) != "ID3" {
		return 0, nil
	}

	//the size is a 28 bit syncsafe integer
	size := int64(header[6]&0x7f)<<21 | int64(header[7]&0x7f)<<14 | int64(header[8]&0x7f)<<7 | int64(header[9]&0x7f)
	size += 10
	if header[5]&0x10 != 0 {
		size += 10 // footer
	}

	return size, nil
}
