package player

import (
	"context"
	"sync"

	"github.com/gopxl/beep"
	"github.com/pkg/errors"

	"github.com/naineel1209/golang-mp3-player/logger"
	types "github.com/naineel1209/golang-mp3-player/type-defs"
)

var ErrNoTrack = errors.New("no such track")

var _ types.Controller = (*Engine)(nil)

type Options struct {
	SampleRate  beep.SampleRate
	Volume      float64
	AutoAdvance bool
	Decode      DecodeFunc
}

// Engine plays the tracks of one album. Lock order is mu, then the output lock.
type Engine struct {
	mu      sync.Mutex
	out     Output
	queue   *types.Queue
	opts    Options
	album   types.Album
	current int
	state   types.PlaybackState
	playID  uint64
}

// NewEngine installs the engine's queue on out. Call Run to handle finished tracks.
func NewEngine(out Output, opts Options) *Engine {
	if opts.Decode == nil {
		opts.Decode = DecodeMP3
	}
	if opts.SampleRate == 0 {
		opts.SampleRate = 44100
	}

	e := &Engine{
		out:     out,
		queue:   types.NewQueue(),
		opts:    opts,
		current: -1,
	}
	out.Play(e.queue)

	return e
}

// Run advances through the album as tracks finish, until ctx is done.
func (e *Engine) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case id := <-e.queue.Done():
			e.trackFinished(id)
		}
	}
}

func (e *Engine) trackFinished(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.releaseFinishedLocked()

	if id != e.playID || e.state == types.Stopped {
		return
	}

	logger.Logger.Debug().Int("index", e.current).Msg("track finished")

	if e.opts.AutoAdvance && e.current+1 < len(e.album.Tracks) {
		if err := e.playLocked(e.current + 1); err != nil {
			logger.Logger.Error().Err(err).Msg("auto advance failed")
			e.state = types.Stopped
		}
		return
	}

	e.state = types.Stopped
}

// Load stops playback and replaces the track list.
func (e *Engine) Load(album types.Album) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()
	e.album = album
	e.current = -1

	logger.Logger.Info().Str("album", album.Name).Int("tracks", album.Len()).Msg("album loaded")
}

// Play starts the track at index. Playing the paused current track resumes it.
func (e *Engine) Play(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == types.Paused && index == e.current {
		e.setPausedLocked(false)
		return nil
	}

	return e.playLocked(index)
}

func (e *Engine) playLocked(index int) error {
	if index < 0 || index >= len(e.album.Tracks) {
		return ErrNoTrack
	}

	track := e.album.Tracks[index]
	streamer, format, err := e.opts.Decode(track.Path)
	if err != nil {
		return errors.Wrapf(err, "play %s", track.Path)
	}

	e.playID++

	e.out.Lock()
	prev := e.queue.Load(streamer, format, e.opts.SampleRate, e.opts.Volume, e.playID)
	e.out.Unlock()

	closeStreamer(prev)
	e.releaseFinishedLocked()

	e.current = index
	e.state = types.Playing

	logger.Logger.Info().Int("index", index).Str("title", track.Title).Msg("playing")

	return nil
}

func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == types.Playing {
		e.setPausedLocked(true)
	}
}

func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == types.Paused {
		e.setPausedLocked(false)
	}
}

func (e *Engine) TogglePause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case types.Playing:
		e.setPausedLocked(true)
	case types.Paused:
		e.setPausedLocked(false)
	}
}

func (e *Engine) setPausedLocked(paused bool) {
	e.out.Lock()
	e.queue.SetPaused(paused)
	e.out.Unlock()

	if paused {
		e.state = types.Paused
	} else {
		e.state = types.Playing
	}
}

// Stop unloads the current track. The current index is kept.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()
}

func (e *Engine) stopLocked() {
	e.out.Lock()
	prev := e.queue.Unload()
	e.out.Unlock()

	closeStreamer(prev)
	e.releaseFinishedLocked()
	e.state = types.Stopped
}

// releaseFinishedLocked closes the tracks that ended on their own.
func (e *Engine) releaseFinishedLocked() {
	e.out.Lock()
	finished := e.queue.Finished()
	e.out.Unlock()

	for _, s := range finished {
		closeStreamer(s)
	}
}

// Next plays the following track. It does nothing on the last track.
func (e *Engine) Next() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current >= len(e.album.Tracks)-1 {
		return nil
	}

	return e.playLocked(e.current + 1)
}

// Previous plays the preceding track. It does nothing on the first track.
func (e *Engine) Previous() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current <= 0 {
		return nil
	}

	return e.playLocked(e.current - 1)
}

func (e *Engine) SetVolume(volume float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Volume = volume

	e.out.Lock()
	e.queue.SetVolume(volume)
	e.out.Unlock()
}

func (e *Engine) Status() types.Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	status := types.Status{
		State:  e.state,
		Index:  e.current,
		Volume: e.opts.Volume,
	}
	if e.current >= 0 && e.current < len(e.album.Tracks) {
		status.Track = e.album.Tracks[e.current]
	}

	e.out.Lock()
	pos, length, format, ok := e.queue.Position()
	e.out.Unlock()

	if !ok {
		return status
	}

	status.Elapsed = format.SampleRate.D(pos)
	status.Total = format.SampleRate.D(length)
	if length <= 0 {
		status.Total = status.Track.Duration
	}

	return status
}

// Close stops playback and releases the current track.
func (e *Engine) Close() {
	e.Stop()
}

func closeStreamer(s *types.CustomStreamer) {
	if s == nil {
		return
	}

	if err := s.Streamer.Close(); err != nil {
		logger.Logger.Warn().Err(err).Msg("close streamer")
	}
}
