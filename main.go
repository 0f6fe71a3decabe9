package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gopxl/beep"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/naineel1209/golang-mp3-player/config"
	"github.com/naineel1209/golang-mp3-player/design"
	"github.com/naineel1209/golang-mp3-player/library"
	"github.com/naineel1209/golang-mp3-player/logger"
	"github.com/naineel1209/golang-mp3-player/player"
	"github.com/naineel1209/golang-mp3-player/remote"
	types "github.com/naineel1209/golang-mp3-player/type-defs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "go-tcha:", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	albumDir   string
	remoteAddr string
	logLevel   string
}

func parseFlags(args []string) (flags, error) {
	var f flags

	fs := flag.NewFlagSet("go-tcha", flag.ContinueOnError)
	fs.StringVarP(&f.configPath, "config", "c", config.DefaultPath(), "path of the preferences file")
	fs.StringVarP(&f.albumDir, "dir", "d", "", "album folder (overrides the preferences)")
	fs.StringVar(&f.remoteAddr, "remote", "", "listen address of the HTTP remote control, e.g. 127.0.0.1:8085")
	fs.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	err := fs.Parse(args)

	return f, err
}

func (f flags) apply(cfg *config.Config) {
	if f.albumDir != "" {
		cfg.AlbumDirectory = f.albumDir
	}
	if f.remoteAddr != "" {
		cfg.RemoteAddr = f.remoteAddr
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
}

func run() error {
	f, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	f.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid preferences")
	}

	if err := logger.Setup(cfg.LogFile, cfg.LogLevel); err != nil {
		return err
	}

	var cache *library.Cache
	if cfg.CachePath != "" {
		cache, err = library.OpenCache(cfg.CachePath)
		if err != nil {
			return err
		}
		defer cache.Close()
	}

	verifier := library.NewVerifier(library.NewProber(cache), cfg.MinBitrate)

	sampleRate := beep.SampleRate(cfg.SampleRate)
	out, err := player.NewSpeakerOutput(sampleRate)
	if err != nil {
		return err
	}

	engine := player.NewEngine(out, player.Options{
		SampleRate:  sampleRate,
		Volume:      cfg.Volume,
		AutoAdvance: cfg.AutoAdvance,
	})
	defer engine.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go engine.Run(ctx)

	if cfg.RemoteAddr != "" {
		server := remote.NewServer(engine)
		go func() {
			if err := server.ListenAndServe(ctx, cfg.RemoteAddr); err != nil {
				logger.Logger.Error().Err(err).Msg("remote control stopped")
			}
		}()
	}

	base := &types.BaseStruct{
		AlbumDirectory: cfg.AlbumDirectory,
		Player:         engine,
	}

	return design.InitDesign(ctx, base, design.Options{
		Verifier:    verifier,
		ArtworkSize: cfg.ArtworkSize,
		SavePreferences: func(dir string) error {
			cfg.AlbumDirectory = dir
			return cfg.Save(f.configPath)
		},
	})
}
