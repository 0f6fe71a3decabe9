package player

import (
	"fmt"
	"time"

	types "github.com/naineel1209/golang-mp3-player/type-defs"
)

// FormatTime renders d as MM:SS. Minutes keep growing past 99.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	seconds := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Timer is the elapsed/total readout shown under the controls.
func Timer(status types.Status) string {
	return FormatTime(status.Elapsed) + " / " + FormatTime(status.Total)
}
