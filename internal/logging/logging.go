// Package logging builds the diagnostic zerolog logger.
//
// The interactive board owns the terminal, so by default diagnostics go to a
// log file in the config directory. One-shot commands run with --debug log
// to stderr instead.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"taskdeck/internal/config"
)

// New returns a logger writing to w at the named level.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level: %q", level)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("app", config.AppName).Logger(), nil
}

// Open returns the logger for cfg and a closer for its sink.
// With console set and cfg.Debug on, logs go to stderr in human form;
// otherwise they are appended to cfg.LogFile.
func Open(cfg *config.Config, console bool, stderr io.Writer) (zerolog.Logger, io.Closer, error) {
	level := cfg.LogLevel
	if cfg.Debug {
		level = zerolog.LevelDebugValue
	}

	if console && cfg.Debug {
		w := zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.TimeOnly, NoColor: true}
		log, err := New(w, level)
		return log, nopCloser{}, err
	}

	if cfg.LogFile == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}
	if err := ensureLogDir(cfg); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log, err := New(f, level)
	if err != nil {
		f.Close()
		return zerolog.Nop(), nil, err
	}
	return log, f, nil
}

// ensureLogDir creates the directory holding the log file. The default log
// file lives in the config directory itself.
func ensureLogDir(cfg *config.Config) error {
	dir := filepath.Dir(cfg.LogFile)
	if filepath.Clean(dir) == filepath.Clean(cfg.Dir) {
		return cfg.EnsureDir()
	}
	return os.MkdirAll(dir, 0700)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
