package library

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/naineel1209/golang-mp3-player/logger"
	types "github.com/naineel1209/golang-mp3-player/type-defs"
)

type Reason int

const (
	ReasonLowBitrate Reason = iota + 1
	ReasonMissingMetadata
	ReasonUnreadable
)

// VerifyError names the first file of an album that failed verification.
type VerifyError struct {
	File       string
	Reason     Reason
	MinBitrate int // kbps
	Err        error
}

func (e *VerifyError) Error() string {
	switch e.Reason {
	case ReasonLowBitrate:
		return fmt.Sprintf("%s bitrate is below %dkbps", e.File, e.MinBitrate)
	case ReasonMissingMetadata:
		return fmt.Sprintf("%s is missing metadata", e.File)
	default:
		return fmt.Sprintf("%s could not be read: %v", e.File, e.Err)
	}
}

func (e *VerifyError) Unwrap() error {
	return e.Err
}

// Verifier checks that every track of an album meets the bitrate floor and carries
// artist and title tags.
type Verifier struct {
	prober     *Prober
	minBitrate int // kbps
	workers    int
}

func NewVerifier(prober *Prober, minBitrate int) *Verifier {
	return &Verifier{
		prober:     prober,
		minBitrate: minBitrate,
		workers:    runtime.NumCPU(),
	}
}

// Verify probes the album and returns it with its tracks in walk order. When any track
// fails, the error is a *VerifyError for the first failing file in that order.
func (v *Verifier) Verify(ctx context.Context, albumPath string) (types.Album, error) {
	paths, err := AlbumTracks(albumPath)
	if err != nil {
		return types.Album{}, err
	}

	tracks := make([]types.Track, len(paths))
	failures := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(v.workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			track, err := v.prober.Probe(path)
			if err != nil {
				failures[i] = &VerifyError{File: filepath.Base(path), Reason: ReasonUnreadable, Err: err}
				return nil
			}

			tracks[i] = track
			failures[i] = v.check(track)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return types.Album{}, errors.Wrap(err, "verify album")
	}

	for _, failure := range failures {
		if failure != nil {
			logger.Logger.Warn().Err(failure).Str("album", albumPath).Msg("album rejected")
			return types.Album{}, failure
		}
	}

	logger.Logger.Info().Str("album", albumPath).Int("tracks", len(tracks)).Msg("album verified")

	return types.Album{
		Name:   filepath.Base(albumPath),
		Path:   albumPath,
		Tracks: tracks,
	}, nil
}

func (v *Verifier) check(track types.Track) error {
	file := filepath.Base(track.Path)

	if track.Bitrate < v.minBitrate*1000 {
		return &VerifyError{File: file, Reason: ReasonLowBitrate, MinBitrate: v.minBitrate}
	}
	if track.Artist == "" || track.Title == "" {
		return &VerifyError{File: file, Reason: ReasonMissingMetadata}
	}

	return nil
}
