// Package logger owns the file-backed zerolog logger. The terminal belongs to the UI,
// so nothing is ever written to stdout or stderr once the player is running.
package logger

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	Logger     = zerolog.Nop()
	loggerOnce sync.Once
)

// Setup opens (or creates) the log file and installs the package logger. Only the
// first call has any effect.
func Setup(path, level string) error {
	var err error

	loggerOnce.Do(func() {
		lvl, perr := zerolog.ParseLevel(level)
		if perr != nil {
			err = errors.Wrapf(perr, "parse log level %q", level)
			return
		}
		if lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}

		if dir := filepath.Dir(path); dir != "" {
			if merr := os.MkdirAll(dir, 0o755); merr != nil {
				err = errors.Wrap(merr, "create log directory")
				return
			}
		}

		file, oerr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if oerr != nil {
			err = errors.Wrap(oerr, "open log file")
			return
		}

		Logger = zerolog.New(file).Level(lvl).With().Timestamp().Logger()
	})

	return err
}
