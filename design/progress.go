package design

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	types "github.com/naineel1209/golang-mp3-player/type-defs"
)

func generateProgressBar(name string, full int) *types.ProgressBar {
	progress := types.ProgressBar{
		Name:    name,
		Tview:   tview.NewTextView(),
		Full:    full,
		Current: 0,
	}

	progress.Tview.SetBackgroundColor(tcell.ColorBlack.TrueColor())
	progress.Tview.SetBorder(true)
	progress.Tview.SetTitle(name)
	progress.Tview.SetTitleAlign(tview.AlignLeft)
	progress.Tview.SetTextColor(tcell.ColorYellow.TrueColor())
	progress.Tview.SetText(progressLine(progress.Full, 0))

	return &progress
}

func updateProgressBar(progress *types.ProgressBar, status types.Status) {
	current := 0
	if status.Total > 0 {
		current = int(float64(progress.Full) * status.Elapsed.Seconds() / status.Total.Seconds())
	}

	name := "Music Progress"
	if status.State != types.Stopped && status.Track.Path != "" {
		name = status.Track.DisplayTitle()
	}

	progress.Name = name
	progress.Current = current
	progress.Tview.SetTitle(" " + tview.Escape(name) + " ")
	progress.Tview.SetText(progressLine(progress.Full, current))
}

func progressLine(full, current int) string {
	current = max(0, min(current, full))
	return strings.Repeat("=", current) + strings.Repeat("·", full-current)
}
