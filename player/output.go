package player

import (
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// Output is where the engine sends audio. The speaker implementation is the only
// production one; tests drive the streamer directly.
type Output interface {
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

type speakerOutput struct{}

// NewSpeakerOutput initialises the audio device with a 100ms buffer.
func NewSpeakerOutput(sampleRate beep.SampleRate) (Output, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}

	return speakerOutput{}, nil
}

func (speakerOutput) Play(s ...beep.Streamer) {
	speaker.Play(s...)
}

func (speakerOutput) Lock() {
	speaker.Lock()
}

func (speakerOutput) Unlock() {
	speaker.Unlock()
}

// DecodeFunc opens a track for streaming. Closing the streamer closes the file.
type DecodeFunc func(path string) (beep.StreamSeekCloser, beep.Format, error)

func DecodeMP3(path string) (beep.StreamSeekCloser, beep.Format, error) {
	fi, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, errors.Wrap(err, "open track")
	}

	//streamer streams the audio data from the file as and when required
	streamer, format, err := mp3.Decode(fi)
	if err != nil {
		fi.Close()
		return nil, beep.Format{}, errors.Wrap(err, "decode mp3")
	}

	return streamer, format, nil
}
