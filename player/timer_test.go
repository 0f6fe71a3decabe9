package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	types "github.com/naineel1209/golang-mp3-player/type-defs"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{999 * time.Millisecond, "00:00"},
		{61 * time.Second, "01:01"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{125 * time.Minute, "125:00"},
		{-time.Second, "00:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.in), tt.in.String())
	}
}

func TestTimer(t *testing.T) {
	status := types.Status{Elapsed: 75 * time.Second, Total: 4*time.Minute + 5*time.Second}

	assert.Equal(t, "01:15 / 04:05", Timer(status))
}
