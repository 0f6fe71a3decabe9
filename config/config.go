// Package config loads and saves the player preferences as TOML.
package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const appDir = "go-tcha"

type Config struct {
	AlbumDirectory string  `toml:"album_directory"`
	MinBitrate     int     `toml:"min_bitrate"` // kbps
	SampleRate     int     `toml:"sample_rate"`
	Volume         float64 `toml:"volume"`
	AutoAdvance    bool    `toml:"auto_advance"`
	ArtworkSize    int     `toml:"artwork_size"`
	LogFile        string  `toml:"log_file"`
	LogLevel       string  `toml:"log_level"`
	CachePath      string  `toml:"cache_path"`
	RemoteAddr     string  `toml:"remote_addr"`
}

// Dir is the per-user directory holding the config file, log and cache.
func Dir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	return filepath.Join(dir, appDir)
}

func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

func Default() *Config {
	dir := Dir()

	return &Config{
		MinBitrate:  320,
		SampleRate:  44100,
		AutoAdvance: true,
		ArtworkSize: 200,
		LogFile:     filepath.Join(dir, "logs.log"),
		LogLevel:    "info",
		CachePath:   filepath.Join(dir, "library.db"),
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, errors.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MinBitrate <= 0 {
		return errors.Errorf("min_bitrate must be positive, got %d", c.MinBitrate)
	}
	if c.SampleRate <= 0 {
		return errors.Errorf("sample_rate must be positive, got %d", c.SampleRate)
	}
	if c.ArtworkSize <= 0 {
		return errors.Errorf("artwork_size must be positive, got %d", c.ArtworkSize)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}

	return nil
}

// Save writes the config to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create config directory")
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create config file")
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(c); err != nil {
		return errors.Wrap(err, "encode config")
	}

	return file.Close()
}
