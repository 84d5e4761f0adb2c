package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the defaults a run starts from. Command-line flags override
// every field.
type Config struct {
	IntervalMS     int
	LinesPerSecond float64
	MaxLineBytes   int
	Engine         string
	Color          string
	Theme          string
	Highlight      []string
	JSONKeys       []string
	Colors         map[string]string
}

const (
	defaultConfigPath     = "~/.config/logknife/config.toml"
	defaultIntervalMS     = 200
	defaultLinesPerSecond = 10
	defaultMaxLineBytes   = 8192
	defaultEngine         = "simple"
	defaultColor          = "auto"
	defaultTheme          = "default"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		IntervalMS:     defaultIntervalMS,
		LinesPerSecond: defaultLinesPerSecond,
		MaxLineBytes:   defaultMaxLineBytes,
		Engine:         defaultEngine,
		Color:          defaultColor,
		Theme:          defaultTheme,
	}
}

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the TOML config at path (the default path when empty). A missing
// file yields Default(); empty or zero fields keep their defaults.
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
		IntervalMS     int               `toml:"interval_ms"`
		LinesPerSecond float64           `toml:"lines_per_second"`
		MaxLineBytes   int               `toml:"max_line_bytes"`
		Engine         string            `toml:"engine"`
		Color          string            `toml:"color"`
		Theme          string            `toml:"theme"`
		Highlight      []string          `toml:"highlight"`
		JSONKeys       []string          `toml:"json_keys"`
		Colors         map[string]string `toml:"colors"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.IntervalMS > 0 {
		cfg.IntervalMS = ClampInterval(raw.IntervalMS)
	}
	if raw.LinesPerSecond > 0 {
		cfg.LinesPerSecond = raw.LinesPerSecond
	}
	if raw.MaxLineBytes > 0 {
		cfg.MaxLineBytes = raw.MaxLineBytes
	}
	cfg.Engine = orDefault(raw.Engine, defaultEngine)
	cfg.Color = orDefault(raw.Color, defaultColor)
	cfg.Theme = orDefault(raw.Theme, defaultTheme)
	cfg.Highlight = raw.Highlight
	cfg.JSONKeys = raw.JSONKeys
	cfg.Colors = raw.Colors

	return cfg, nil
}

func orDefault(value, def string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return def
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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
