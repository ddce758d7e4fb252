// Package logger configures zerolog output for the CLI and library consumers.
package logger

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urlkit/legacyurl/internal/config"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// New creates a zerolog.Logger based on the provided LogConfig.
// Console output goes to stderr so parsed records on stdout stay clean.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	levelStr := cfg.LogLevel
	if levelStr == "" {
		levelStr = config.DefaultLogLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level '%s': %w", cfg.LogLevel, err)
	}

	var writers []io.Writer

	switch cfg.LogFormat {
	case "json":
		writers = append(writers, os.Stderr)
	default:
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}

	if cfg.LogFile != "" {
		logDir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return zerolog.Nop(), fmt.Errorf("could not create log directory '%s': %w", logDir, err)
		}
		maxSize := cfg.MaxLogSizeMB
		if maxSize <= 0 {
			maxSize = config.DefaultMaxLogSizeMB
		}
		maxBackups := cfg.MaxLogBackups
		if maxBackups <= 0 {
			maxBackups = config.DefaultMaxLogBackups
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			Compress:   true,
		})
	}

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	// Route anything using the standard library logger through zerolog.
	stdlog.SetOutput(l)
	stdlog.SetFlags(0)

	return l, nil
}
