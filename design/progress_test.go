package design

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	types "github.com/naineel1209/golang-mp3-player/type-defs"
)

func TestProgressLine(t *testing.T) {
	assert.Equal(t, "===·······", progressLine(10, 3))
	assert.Equal(t, "··········", progressLine(10, -4))
	assert.Equal(t, "==========", progressLine(10, 12))
}

func TestUpdateProgressBar(t *testing.T) {
	progress := generateProgressBar("Music Progress", 10)

	updateProgressBar(progress, types.Status{
		State:   types.Playing,
		Track:   types.Track{Path: "01.mp3", Title: "Peg"},
		Elapsed: 30 * time.Second,
		Total:   time.Minute,
	})

	assert.Equal(t, 5, progress.Current)
	assert.Equal(t, "Peg", progress.Name)
	assert.Equal(t, "=====·····", progress.Tview.GetText(true))

	updateProgressBar(progress, types.Status{})

	assert.Equal(t, 0, progress.Current)
	assert.Equal(t, "Music Progress", progress.Name)
}
