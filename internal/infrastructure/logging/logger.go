package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/common"
	"github.com/andrescamacho/fantasy-manager-go/internal/infrastructure/config"
)

// SlogLogger implements common.Logger on top of log/slog
type SlogLogger struct {
	logger *slog.Logger
	file   *os.File
}

// New builds a logger honouring the configured level, format and output.
// Call Close when the output is a file.
func New(cfg *config.LoggingConfig) (*SlogLogger, error) {
	var (
		out  io.Writer
		file *os.File
	)

	switch cfg.Output {
	case "stdout":
		out = os.Stdout
	case "", "stderr":
		out = os.Stderr
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", cfg.FilePath, err)
		}
		out = f
		file = f
	default:
		return nil, fmt.Errorf("unsupported log output: %s", cfg.Output)
	}

	l := NewWithWriter(out, cfg.Level, cfg.Format, cfg.IncludeCaller)
	l.file = file
	return l, nil
}

// NewWithWriter builds a logger writing to w
func NewWithWriter(w io.Writer, level, format string, includeCaller bool) *SlogLogger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: includeCaller,
	}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &SlogLogger{logger: slog.New(handler)}
}

// ParseLevel maps a configured level name to an slog level; unknown names mean info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// Log implements common.Logger
func (l *SlogLogger) Log(level, message string, metadata map[string]interface{}) {
	attrs := make([]slog.Attr, 0, len(metadata))
	for key, value := range metadata {
		attrs = append(attrs, slog.Any(key, value))
	}
	l.logger.LogAttrs(context.Background(), toSlogLevel(level), message, attrs...)
}

// Slog exposes the underlying slog logger
func (l *SlogLogger) Slog() *slog.Logger {
	return l.logger
}

// Close releases the log file, if any
func (l *SlogLogger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func toSlogLevel(level string) slog.Level {
	switch level {
	case common.LevelDebug:
		return slog.LevelDebug
	case common.LevelWarn:
		return slog.LevelWarn
	case common.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var _ common.Logger = (*SlogLogger)(nil)
