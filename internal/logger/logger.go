package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

var (
	ErrLoggerInvalidLogLevel  = errors.New("invalid log level")
	ErrLoggerInvalidLogFormat = errors.New("invalid log format")
)

type options struct {
	writer  io.Writer
	service string
}

type Option func(*options)

// WithWriter directs log output to w instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// WithService adds a service attribute to every record.
func WithService(service string) Option {
	return func(o *options) {
		o.service = service
	}
}

// NewLogger builds a logger for level (DEBUG, INFO, WARN, ERROR) and format (json, text, tint).
func NewLogger(logLevel, logFormat string, opts ...Option) (*slog.Logger, error) {
	o := &options{writer: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	slogLevel, err := ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	var handler slog.Handler
	switch strings.ToLower(logFormat) {
	case "json":
		handler = slog.NewJSONHandler(o.writer, &slog.HandlerOptions{Level: slogLevel})
	case "text":
		handler = slog.NewTextHandler(o.writer, &slog.HandlerOptions{Level: slogLevel})
	case "tint":
		handler = tint.NewHandler(o.writer, &tint.Options{Level: slogLevel})
	default:
		return nil, errors.Join(ErrLoggerInvalidLogFormat, fmt.Errorf("log format: %s", logFormat))
	}

	logger := slog.New(handler)
	if o.service != "" {
		logger = logger.With(slog.String("service", o.service))
	}

	return logger, nil
}

func ParseLevel(logLevel string) (slog.Level, error) {
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, errors.Join(ErrLoggerInvalidLogLevel, fmt.Errorf("log level: %s", logLevel))
}
