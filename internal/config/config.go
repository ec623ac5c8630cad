// Package config loads the viewer settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "config/diorama.toml"

type Config struct {
	Window    Window    `toml:"window"`
	Scene     Scene     `toml:"scene"`
	Assets    Assets    `toml:"assets"`
	Animation Animation `toml:"animation"`
	Log       Log       `toml:"log"`
}

type Window struct {
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	Title     string `toml:"title"`
	TargetFPS int32  `toml:"target_fps"`
}

type Scene struct {
	// DefaultSelection is selected once the initial assets have settled.
	// Empty selects the first selectable node.
	DefaultSelection string `toml:"default_selection"`
}

type Assets struct {
	Chair       string `toml:"chair"`
	Storage     string `toml:"storage"`
	MoonTexture string `toml:"moon_texture"`
}

type Animation struct {
	OrbitSpeed      float32 `toml:"orbit_speed"`
	RotationalSpeed float32 `toml:"rotational_speed"`
}

type Log struct {
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Diorama",
			TargetFPS: 60,
		},
		Scene: Scene{
			DefaultSelection: "Chair",
		},
		Assets: Assets{
			Chair:       "assets/models/chair.obj",
			Storage:     "assets/models/storage.obj",
			MoonTexture: "assets/texture/moon.jpg",
		},
		Animation: Animation{
			OrbitSpeed:      0.01,
			RotationalSpeed: 0.01,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// SlogLevel maps the configured level name, defaulting to info.
func (l Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
