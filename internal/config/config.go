package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the runtime settings for bookshelf.
type Config struct {
	LoadDelay    time.Duration
	SeedFile     string // empty serves the built-in seed
	LogFile      string
	RefreshEvery time.Duration // zero disables periodic reloads
	AutoLoad     bool
}

const (
	defaultConfigPath = "~/.config/bookshelf/config.toml"
	defaultLogFile    = "~/.local/share/bookshelf/bookshelf.log"
	defaultLoadDelay  = time.Second
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		LoadDelay: defaultLoadDelay,
		LogFile:   mustExpand(defaultLogFile),
		AutoLoad:  true,
	}
}

// Load locates and parses the bookshelf config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LoadDelay    string `toml:"load_delay"`
		SeedFile     string `toml:"seed_file"`
		LogFile      string `toml:"log_file"`
		RefreshEvery string `toml:"refresh_every"`
		AutoLoad     *bool  `toml:"auto_load"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.LoadDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("parse load_delay %q: %w", v, durationErr(err))
		}
		cfg.LoadDelay = d
	}

	if v := strings.TrimSpace(raw.RefreshEvery); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("parse refresh_every %q: %w", v, durationErr(err))
		}
		cfg.RefreshEvery = d
	}

	if v := strings.TrimSpace(raw.SeedFile); v != "" {
		cfg.SeedFile = mustExpand(v)
	}

	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}

	if raw.AutoLoad != nil {
		cfg.AutoLoad = *raw.AutoLoad
	}

	return cfg, nil
}

var errNegativeDuration = errors.New("duration must not be negative")

func durationErr(err error) error {
	if err != nil {
		return err
	}
	return errNegativeDuration
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
