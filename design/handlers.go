package design

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rivo/tview"

	"github.com/naineel1209/golang-mp3-player/library"
	"github.com/naineel1209/golang-mp3-player/logger"
	"github.com/naineel1209/golang-mp3-player/player"
	types "github.com/naineel1209/golang-mp3-player/type-defs"
)

func loadAlbums(v *view, dir string) error {
	albums, err := library.ListAlbums(dir)
	if err != nil {
		return err
	}

	v.base.AlbumDirectory = dir
	v.base.Albums = albums

	v.Albums.Clear()
	for _, album := range albums {
		v.Albums.AddItem(album, "", 0, nil)
	}
	v.Albums.SetTitle(fmt.Sprintf("Albums (%d)", len(albums)))

	return nil
}

func handleAlbums(v *view) {
	v.Albums.SetSelectedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		selectAlbum(v, mainText)
	})
}

// selectAlbum verifies the album in the background. A newer selection cancels it and its
// result is dropped.
func selectAlbum(v *view, name string) {
	if v.cancelVerify != nil {
		v.cancelVerify()
	}
	ctx, cancel := context.WithCancel(v.ctx)
	v.cancelVerify = cancel
	v.selection++
	selection := v.selection

	albumPath := filepath.Join(v.base.AlbumDirectory, name)
	v.AlbumInfo.SetText("Verifying " + name + " ...")

	go func() {
		album, err := v.opts.Verifier.Verify(ctx, albumPath)

		current := false
		v.App.QueueUpdateDraw(func() {
			if selection != v.selection {
				logger.Logger.Debug().Str("album", name).Msg("stale verification dropped")
				return
			}
			current = true
			cancel()

			if err != nil {
				v.AlbumInfo.SetText(albumInfoText(v.base.Album))
				showError(v, err.Error())
				return
			}
			displayAlbum(v, album)
		})
		if !current || err != nil {
			return
		}

		img, err := v.opts.Artwork(album, v.opts.ArtworkSize)
		if err != nil {
			logger.Logger.Debug().Err(err).Str("album", album.Name).Msg("no artwork")
		}

		v.App.QueueUpdateDraw(func() {
			if selection == v.selection && v.base.Album.Path == album.Path {
				v.artwork.SetImage(img)
			}
		})
	}()
}

func displayAlbum(v *view, album types.Album) {
	v.base.Album = album

	v.AlbumInfo.SetText(albumInfoText(album))
	v.artwork.SetImage(nil)

	v.Tracks.Clear()
	for _, track := range album.Tracks {
		v.Tracks.AddItem(track.DisplayTitle(), "", 0, nil)
	}

	status := v.base.Player.Status()
	if v.base.PlayingAlbum == album.Path && status.Index >= 0 && status.Index < len(album.Tracks) {
		v.Tracks.SetCurrentItem(status.Index)
	}
}

func albumInfoText(album types.Album) string {
	if album.Name == "" {
		return "Album Info"
	}

	artist := album.Artist()
	if artist == "" {
		artist = "-"
	}

	return fmt.Sprintf("Album: %s\nArtist: %s\nTracks: %d\nLength: %s",
		album.Name, artist, album.Len(), player.FormatTime(album.Duration()))
}

func handleTracks(v *view) {
	v.Tracks.SetSelectedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		playSelected(v)
	})
}

// ensureLoaded hands the displayed album to the player if it is not the one playing.
func ensureLoaded(v *view) {
	if v.base.PlayingAlbum == v.base.Album.Path {
		return
	}

	v.base.Player.Load(v.base.Album)
	v.base.PlayingAlbum = v.base.Album.Path
	v.PlayingIndex = -1
}

func playSelected(v *view) {
	if v.base.Album.Len() == 0 || v.Tracks.GetItemCount() == 0 {
		return
	}

	ensureLoaded(v)
	if err := v.base.Player.Play(v.Tracks.GetCurrentItem()); err != nil {
		showError(v, err.Error())
	}

	handleMusicProgress(v)
}

func pauseTrack(v *view) {
	v.base.Player.Pause()
	handleMusicProgress(v)
}

func stopTrack(v *view) {
	v.base.Player.Stop()
	handleMusicProgress(v)
}

func nextTrack(v *view) {
	if v.base.Album.Len() == 0 {
		return
	}

	ensureLoaded(v)
	if err := v.base.Player.Next(); err != nil {
		showError(v, err.Error())
	}

	handleMusicProgress(v)
}

// previousTrack steps back in the playing album. A freshly loaded album has nothing before
// its first track, so browsing another album leaves playback alone.
func previousTrack(v *view) {
	if v.base.Album.Len() == 0 || v.base.PlayingAlbum != v.base.Album.Path {
		return
	}

	if err := v.base.Player.Previous(); err != nil {
		showError(v, err.Error())
	}

	handleMusicProgress(v)
}

func changeVolume(v *view, delta float64) {
	volume := v.base.Player.Status().Volume + delta
	v.base.Player.SetVolume(volume)
	v.Status.SetText(fmt.Sprintf("[yellow]volume[-] %+.2f", volume))
}

func showError(v *view, message string) {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			v.Pages.RemovePage(pageError)
			v.App.SetFocus(v.Albums)
		})
	modal.SetTitle("File Error")
	modal.SetBorder(true)

	logger.Logger.Warn().Str("message", message).Msg("file error")

	v.Pages.AddPage(pageError, modal, true, true)
	v.App.SetFocus(modal)
}

func showPreferences(v *view) {
	form := tview.NewForm()

	closeForm := func() {
		v.Pages.RemovePage(pagePreferences)
		v.App.SetFocus(v.Albums)
	}

	input := tview.NewInputField().
		SetLabel("Album folder ").
		SetText(v.base.AlbumDirectory).
		SetFieldWidth(50)
	input.SetAutocompleteFunc(completeDirectory)

	form.AddFormItem(input)
	form.AddButton("Save", func() {
		dir := filepath.Clean(strings.TrimSpace(input.GetText()))
		if err := loadAlbums(v, dir); err != nil {
			closeForm()
			showError(v, err.Error())
			return
		}

		if v.opts.SavePreferences != nil {
			if err := v.opts.SavePreferences(dir); err != nil {
				logger.Logger.Error().Err(err).Msg("save preferences")
			}
		}

		closeForm()
	})
	form.AddButton("Cancel", closeForm)
	form.SetCancelFunc(closeForm)
	form.SetBorder(true)
	form.SetTitle("Preferences")

	v.Pages.AddPage(pagePreferences, centered(form, 72, 7), true, true)
	v.App.SetFocus(form)
}

func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}

// completeDirectory lists the directories that extend the typed path.
func completeDirectory(text string) []string {
	if text == "" {
		return nil
	}

	dir, prefix := filepath.Split(text)
	if dir == "" {
		dir = "."
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var matches []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) {
			matches = append(matches, filepath.Join(dir, entry.Name())+string(filepath.Separator))
		}
	}

	return matches
}
