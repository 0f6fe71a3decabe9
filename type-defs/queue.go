package types

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// CustomStreamer is the decoded track currently owned by the Queue.
type CustomStreamer struct {
	Streamer beep.StreamSeekCloser
	Ctrl     *beep.Ctrl
	Volume   *effects.Volume
	Format   beep.Format
	ID       uint64
}

// Queue is installed once on the speaker and plays whatever track is loaded into it.
// All methods except Done must be called with the speaker locked.
type Queue struct {
	Current  *CustomStreamer
	finished []*CustomStreamer
	done     chan uint64
}

func NewQueue() *Queue {
	return &Queue{done: make(chan uint64, 1)}
}

// Load replaces the current track and returns the previous one so the caller can close it.
func (q *Queue) Load(streamer beep.StreamSeekCloser, format beep.Format, sampleRate beep.SampleRate, volume float64, id uint64) *CustomStreamer {
	ctrl := &beep.Ctrl{Streamer: streamer, Paused: false}

	var out beep.Streamer = ctrl
	if format.SampleRate != sampleRate {
		//resample the audio data to the speaker rate
		out = beep.Resample(4, format.SampleRate, sampleRate, ctrl)
	}

	prev := q.Current
	q.Current = &CustomStreamer{
		Streamer: streamer,
		Ctrl:     ctrl,
		Volume:   &effects.Volume{Streamer: out, Base: 2, Volume: volume},
		Format:   format,
		ID:       id,
	}

	return prev
}

// Unload removes the current track without signalling Done.
func (q *Queue) Unload() *CustomStreamer {
	prev := q.Current
	q.Current = nil

	return prev
}

func (q *Queue) SetPaused(paused bool) {
	if q.Current == nil {
		return
	}

	q.Current.Ctrl.Paused = paused
}

func (q *Queue) SetVolume(volume float64) {
	if q.Current == nil {
		return
	}

	q.Current.Volume.Volume = volume
}

// Position reports the current track position and length in samples of its own format.
func (q *Queue) Position() (pos, length int, format beep.Format, ok bool) {
	if q.Current == nil {
		return 0, 0, beep.Format{}, false
	}

	return q.Current.Streamer.Position(), q.Current.Streamer.Len(), q.Current.Format, true
}

// Finished hands over the tracks that played to their end so the caller can close them.
func (q *Queue) Finished() []*CustomStreamer {
	finished := q.finished
	q.finished = nil

	return finished
}

// Done receives the id of every track that played to its end.
func (q *Queue) Done() <-chan uint64 {
	return q.done
}

func (q *Queue) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	for filled < len(samples) {
		//if there is no track - make a silence
		if q.Current == nil {
			for i := range samples[filled:] {
				samples[filled+i] = [2]float64{}
			}
			break
		}

		n, ok := q.Current.Volume.Stream(samples[filled:])
		filled += n
		if !ok || n == 0 {
			q.finish()
		}
	}

	return len(samples), true
}

func (q *Queue) finish() {
	id := q.Current.ID
	q.finished = append(q.finished, q.Current)
	q.Current = nil

	//keep only the latest finished id
	select {
	case q.done <- id:
	default:
		select {
		case <-q.done:
		default:
		}
		q.done <- id
	}
}

func (q *Queue) Err() error {
	return nil
}
