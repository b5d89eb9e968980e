// Package cli implements the tiles command-line interface.
//
// Running tiles with no subcommand opens the interactive layout host. The
// subcommands work on the preset catalog directly:
//   - pick: fuzzy-pick a preset and print its name
//   - presets: list the catalog, or sweep it for geometry faults with --check
//   - geometry: print the resolved rects of a preset at a given size
//   - export: write an HTML snapshot of a preset
//   - inspect: read an HTML snapshot back
//   - config: write or locate the user configuration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging to stderr.
// Loggers are passed through context.Context. The interactive host owns the
// terminal, so it logs to the configured log file or nowhere.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nikbrunner/tiles/internal/config"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// openHostLog returns the logger for the interactive host. Without a log
// file it discards everything. The returned close func is never nil.
func openHostLog(cfg config.Config, verbose bool) (*log.Logger, func() error, error) {
	level := cfg.LogLevel()
	if verbose {
		level = log.DebugLevel
	}
	if cfg.Log.File == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l := newLogger(f, level)
	l.SetPrefix("host")
	return l, f.Close, nil
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the loaded config from ctx, or the defaults.
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}
