package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// NewMultiLogger creates a logger that writes to multiple outputs
func NewMultiLogger(writers ...io.Writer) *Logger {
	w := io.MultiWriter(writers...)
	return New(w)
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// TopicLoaded logs a successful content fetch
func (l *Logger) TopicLoaded(requestID, topic, path string, size int) {
	l.Info("topic loaded",
		"request", requestID,
		"topic", topic,
		"path", path,
		"bytes", size)
}

// ContentUnavailable logs a topic whose content could not be fetched
func (l *Logger) ContentUnavailable(requestID, topic, path string, err error) {
	l.Warn("content unavailable",
		"request", requestID,
		"topic", topic,
		"path", path,
		"error", err)
}

// DocumentParsed logs the outcome of a parse
func (l *Logger) DocumentParsed(requestID, source string, blocks, diagnostics int, duration time.Duration) {
	l.Info("document parsed",
		"request", requestID,
		"source", source,
		"blocks", blocks,
		"diagnostics", diagnostics,
		"duration", duration.Round(time.Microsecond))
}

// ParseDiagnostic logs a recovered problem in lesson markup
func (l *Logger) ParseDiagnostic(source string, line int, message string) {
	l.Debug("markup recovered",
		"source", source,
		"line", line,
		"message", message)
}

// CheckCompleted logs the completion of a catalog check
func (l *Logger) CheckCompleted(topics, missing, diagnostics int, duration time.Duration) {
	l.Info("check completed",
		"topics", topics,
		"missing", missing,
		"diagnostics", diagnostics,
		"duration", duration.Round(time.Millisecond))
}

// StateError logs a state-related error
func (l *Logger) StateError(operation string, err error) {
	l.Error("state error",
		"operation", operation,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(contentRoot, format string, width int) {
	l.Debug("config loaded",
		"content_root", contentRoot,
		"format", format,
		"width", width)
}
