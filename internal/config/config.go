// Package config loads the tiles configuration.
//
// Settings are layered: built-in defaults, then the user file
// (~/.config/tiles/config.yaml), then the project file (./.tiles/config.yaml),
// then an explicit --config path. Later layers override earlier ones field by
// field; a field left out of a file keeps the value from below.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/nikbrunner/tiles/internal/tiling"
)

var (
	ErrInvalidThickness  = errors.New("separator thickness must be positive")
	ErrUnknownPreset     = errors.New("unknown preset")
	ErrInvalidExportSize = errors.New("export size must be positive")
)

// Config holds application configuration.
type Config struct {
	DefaultPreset      string       `yaml:"defaultPreset"`
	SeparatorThickness int          `yaml:"separatorThickness"`
	Panes              []string     `yaml:"panes"`
	Log                LogConfig    `yaml:"log"`
	Export             ExportConfig `yaml:"export"`

	// Sources lists the files that were merged, in order.
	Sources []string `yaml:"-"`
}

// LogConfig controls where the host writes its log while the alt screen is up.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// ExportConfig is the container size used for HTML snapshots.
type ExportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DefaultPreset:      tiling.DoubleVert.String(),
		SeparatorThickness: 1,
		Panes:              []string{"AAPL", "MSFT", "BTCUSD", "EURUSD"},
		Log: LogConfig{
			Level: "info",
		},
		Export: ExportConfig{
			Width:  1280,
			Height: 800,
		},
	}
}

// Preset returns the configured default preset.
func (c Config) Preset() tiling.Preset {
	p, _ := tiling.ParsePreset(c.DefaultPreset)
	return p
}

// LogLevel returns the configured log level, or info if it does not parse.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Validate reports every invalid setting, joined.
func (c Config) Validate() error {
	var errs []error
	if c.SeparatorThickness <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidThickness, c.SeparatorThickness))
	}
	if _, ok := tiling.ParsePreset(c.DefaultPreset); !ok {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownPreset, c.DefaultPreset))
	}
	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %dx%d", ErrInvalidExportSize, c.Export.Width, c.Export.Height))
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("log level: %w", err))
		}
	}
	return errors.Join(errs...)
}
