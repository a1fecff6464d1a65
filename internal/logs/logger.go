package logs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	logFile *os.File
	mu      sync.Mutex
)

// This runs automatically when the package is imported.
// Logs are dropped until Initialize is called since the terminal belongs to the UI.
func init() {
	log.Logger = zerolog.New(io.Discard)
}

// New returns a logger that writes JSON lines to w at the given level.
//
// The level parameter can be one of: trace, debug, info, warn, error, fatal, disabled.
func New(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("parse log level: %w", err)
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(lvl), nil
}

// Initialize points the global logger at path, creating parent directories.
func Initialize(level, path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		return fmt.Errorf("no log file configured")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create logs dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	logger, err := New(level, f)
	if err != nil {
		_ = f.Close()
		return err
	}

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	log.Logger = logger

	log.Debug().Str("path", path).Msg("logger initialized")
	return nil
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	log.Logger = zerolog.New(io.Discard)
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
