package types

import (
	"time"

	"github.com/rivo/tview"
)

// Track is one probed mp3 file of an album.
type Track struct {
	Path        string        `db:"path"`
	Title       string        `db:"title"`
	Artist      string        `db:"artist"`
	Album       string        `db:"album"`
	TrackNumber int           `db:"track_number"`
	DiscNumber  int           `db:"disc_number"`
	Bitrate     int           `db:"bitrate"` // bits per second, averaged over all frames
	Duration    time.Duration `db:"duration"`
	HasArtwork  bool          `db:"has_artwork"`
	Size        int64         `db:"size"`
	ModTime     int64         `db:"mtime"` // unix nanoseconds
}

// DisplayTitle is what the track list shows.
func (t Track) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}

	return t.Path
}

// Album is a verified album folder.
type Album struct {
	Name   string
	Path   string
	Tracks []Track
}

func (a Album) Len() int {
	return len(a.Tracks)
}

// Artist returns the artist of the first track, or "" for an empty album.
func (a Album) Artist() string {
	if len(a.Tracks) == 0 {
		return ""
	}

	return a.Tracks[0].Artist
}

// Duration is the summed length of all tracks.
func (a Album) Duration() time.Duration {
	var total time.Duration
	for _, t := range a.Tracks {
		total += t.Duration
	}

	return total
}

type PlaybackState int

const (
	Stopped PlaybackState = iota
	Playing
	Paused
)

func (s PlaybackState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Status is a snapshot of the player. Index is -1 until a track has been played.
type Status struct {
	State   PlaybackState
	Index   int
	Track   Track
	Elapsed time.Duration
	Total   time.Duration
	Volume  float64
}

// Controller is the playback surface shared by the terminal UI and the remote API.
type Controller interface {
	Load(album Album)
	Play(index int) error
	Pause()
	Resume()
	TogglePause()
	Stop()
	Next() error
	Previous() error
	SetVolume(volume float64)
	Status() Status
}

// BaseStruct is the state the UI works on.
type BaseStruct struct {
	AlbumDirectory string
	Albums         []string
	Album          Album  // the album on display
	PlayingAlbum   string // path of the album loaded into Player
	Player         Controller
}

type UiStruct struct {
	App         *tview.Application
	Pages       *tview.Pages
	Albums      *tview.List
	Tracks      *tview.List
	AlbumInfo   *tview.TextView
	Timer       *tview.TextView
	Status      *tview.TextView
	ProgressBar *ProgressBar
	Focusables  []tview.Primitive

	// index last seen playing, used to follow the player in the track list
	PlayingIndex int
}

type ProgressBar struct {
	Name    string
	Tview   *tview.TextView
	Full    int
	Current int
}
