package design

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/naineel1209/golang-mp3-player/library"
	"github.com/naineel1209/golang-mp3-player/logger"
	"github.com/naineel1209/golang-mp3-player/player"
	types "github.com/naineel1209/golang-mp3-player/type-defs"
)

const (
	pageMain        = "main"
	pageError       = "error"
	pagePreferences = "preferences"

	volumeStep = 0.25
)

type AlbumVerifier interface {
	Verify(ctx context.Context, albumPath string) (types.Album, error)
}

type Options struct {
	Verifier        AlbumVerifier
	Artwork         func(album types.Album, size int) (image.Image, error)
	ArtworkSize     int
	SavePreferences func(dir string) error
}

type view struct {
	*types.UiStruct

	ctx     context.Context
	base    *types.BaseStruct
	opts    Options
	artwork *ArtworkView

	// latest album selection, only touched on the UI goroutine
	selection    uint64
	cancelVerify context.CancelFunc
}

func newList(title string) *tview.List {
	list := tview.NewList()

	// Set background color and text color for individual list items
	list.ShowSecondaryText(false)
	list.SetBackgroundColor(tcell.ColorBlack.TrueColor())
	list.SetMainTextStyle(tcell.StyleDefault.Foreground(tcell.ColorWhite.TrueColor()))
	list.SetSelectedStyle(tcell.StyleDefault.Foreground(tcell.ColorYellow.TrueColor()).Bold(true).Underline(true))
	list.SetShortcutStyle(tcell.StyleDefault.Foreground(tcell.ColorGreen.TrueColor()))

	list.SetTitle(title)
	list.SetTitleAlign(tview.AlignLeft)
	list.SetBorder(true)

	return list
}

func newPrimitive(title string) *tview.TextView {
	textView := tview.NewTextView()
	textView.SetTextColor(tcell.ColorYellow.TrueColor())
	textView.SetBackgroundColor(tcell.ColorBlack.TrueColor())
	textView.SetBorder(true)
	textView.SetTitle(title)

	return textView
}

func newButton(label string, selected func()) *tview.Button {
	button := tview.NewButton(label).SetSelectedFunc(selected)
	button.SetBackgroundColor(tcell.ColorDarkSlateGray)

	return button
}

func generateRibbon(v *view) *tview.Flex {
	title := tview.NewTextView().SetText(" go-tcha album player")
	title.SetTextColor(tcell.ColorWhite)
	title.SetBackgroundColor(tcell.ColorDimGray)

	preferences := newButton("Preferences", func() { showPreferences(v) })

	return tview.NewFlex().
		AddItem(title, 0, 1, false).
		AddItem(preferences, 13, 0, false)
}

func generateControls(v *view) *tview.Flex {
	controls := tview.NewFlex()

	buttons := []*tview.Button{
		newButton("Previous", func() { previousTrack(v) }),
		newButton("Play", func() { playSelected(v) }),
		newButton("Pause", func() { pauseTrack(v) }),
		newButton("Stop", func() { stopTrack(v) }),
		newButton("Next", func() { nextTrack(v) }),
	}

	column := tview.NewFlex().SetDirection(tview.FlexRow)
	row := tview.NewFlex()
	for _, button := range buttons {
		row.AddItem(button, 10, 0, false)
		row.AddItem(nil, 1, 0, false)
	}
	column.AddItem(nil, 1, 0, false)
	column.AddItem(row, 1, 0, false)
	column.AddItem(v.Status, 1, 0, false)

	controls.AddItem(column, 56, 0, false)
	controls.AddItem(v.ProgressBar.Tview, 0, 1, false)
	controls.AddItem(v.Timer, 17, 0, false)

	return controls
}

func handleTicker(v *view) *time.Ticker {
	ticker := time.NewTicker(time.Second)

	go func() {
		for {
			select {
			case <-v.ctx.Done():
				return
			case <-ticker.C:
				//force the screen to redraw with the new timer
				v.App.QueueUpdateDraw(func() {
					handleMusicProgress(v)
				})
			}
		}
	}()

	return ticker
}

func handleMusicProgress(v *view) {
	status := v.base.Player.Status()

	v.Timer.SetText(player.Timer(status))
	updateProgressBar(v.ProgressBar, status)

	switch status.State {
	case types.Stopped:
		v.Status.SetText("[gray]stopped")
	default:
		v.Status.SetText(fmt.Sprintf("[yellow]%s[-] %s", status.State, tview.Escape(status.Track.DisplayTitle())))
	}

	//follow the player in the track list when it moves on by itself
	if status.Index != v.PlayingIndex {
		v.PlayingIndex = status.Index
		if v.base.PlayingAlbum == v.base.Album.Path && status.Index >= 0 && status.Index < v.Tracks.GetItemCount() {
			v.Tracks.SetCurrentItem(status.Index)
		}
	}
}

func handleKeys(v *view) {
	v.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if front, _ := v.Pages.GetFrontPage(); front != pageMain {
			return event
		}

		switch event.Key() {
		case tcell.KeyTAB:
			focusNext(v)
			return nil
		case tcell.KeyCtrlC:
			v.App.Stop()
			return nil
		case tcell.KeyRune:
		default:
			return event
		}

		switch event.Rune() {
		case 'q':
			v.App.Stop()
		case ' ':
			v.base.Player.TogglePause()
			handleMusicProgress(v)
		case 's':
			stopTrack(v)
		case 'n':
			nextTrack(v)
		case 'p':
			previousTrack(v)
		case '+':
			changeVolume(v, volumeStep)
		case '-':
			changeVolume(v, -volumeStep)
		case 'o':
			showPreferences(v)
		default:
			return event
		}

		return nil
	})
}

func focusNext(v *view) {
	current := v.App.GetFocus()
	next := 0
	for i, item := range v.Focusables {
		if item == current {
			next = (i + 1) % len(v.Focusables)
			break
		}
	}

	v.App.SetFocus(v.Focusables[next])
}

func newView(ctx context.Context, base *types.BaseStruct, opts Options) *view {
	if opts.Artwork == nil {
		opts.Artwork = library.Artwork
	}
	if opts.ArtworkSize <= 0 {
		opts.ArtworkSize = 200
	}

	v := &view{
		UiStruct: &types.UiStruct{
			App:          tview.NewApplication(),
			Pages:        tview.NewPages(),
			Albums:       newList("Albums"),
			Tracks:       newList("Tracks"),
			AlbumInfo:    newPrimitive("Album Info"),
			Timer:        newPrimitive("Time"),
			Status:       tview.NewTextView().SetDynamicColors(true),
			ProgressBar:  generateProgressBar("Music Progress", 100),
			PlayingIndex: -1,
		},
		ctx:     ctx,
		base:    base,
		opts:    opts,
		artwork: NewArtworkView(),
	}

	v.artwork.SetBorder(true)
	v.artwork.SetTitle("Artwork")
	v.AlbumInfo.SetText(albumInfoText(types.Album{}))
	v.Timer.SetTextAlign(tview.AlignCenter)
	v.Timer.SetText(player.Timer(types.Status{}))
	v.Focusables = []tview.Primitive{v.Albums, v.Tracks}

	//place the items into their place
	top := tview.NewFlex().
		AddItem(v.artwork, 26, 0, false).
		AddItem(v.AlbumInfo, 0, 1, false)
	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 14, 0, false).
		AddItem(v.Tracks, 0, 1, false)
	body := tview.NewFlex().
		AddItem(v.Albums, 30, 0, true).
		AddItem(right, 0, 1, false)
	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(generateRibbon(v), 1, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(generateControls(v), 3, 0, false)

	v.Pages.AddPage(pageMain, root, true, true)

	handleAlbums(v)
	handleTracks(v)
	handleKeys(v)

	return v
}

// InitDesign builds the player screen and runs it until the user quits or ctx is done.
func InitDesign(ctx context.Context, base *types.BaseStruct, opts Options) error {
	v := newView(ctx, base, opts)
	app := v.App

	ticker := handleTicker(v)
	defer ticker.Stop()

	app.SetRoot(v.Pages, true).EnableMouse(true).SetFocus(v.Albums)

	if base.AlbumDirectory != "" {
		if err := loadAlbums(v, base.AlbumDirectory); err != nil {
			showError(v, err.Error())
		}
	}

	go func() {
		<-ctx.Done()
		app.Stop()
	}()

	logger.Logger.Info().Str("dir", base.AlbumDirectory).Msg("ui started")

	return app.Run()
}
