package logger

import (
	"io"
	"os"
	"sync/atomic"

	charm "github.com/charmbracelet/log"

	errUtils "github.com/cloudposse/countdown/errors"
	"github.com/cloudposse/countdown/pkg/schema"
)

// defaultLogger is the global default Logger instance stored atomically.
var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(NewLogger(charm.Default()))
}

// Default returns the global default Logger instance.
func Default() *Logger {
	return defaultLogger.Load().(*Logger)
}

// SetDefault sets a new global default Logger instance.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// SetupFromConfig builds the default logger from the logs section of the
// configuration. The returned closer releases the log file, if one was opened.
func SetupFromConfig(cfg schema.Logs) (io.Closer, error) {
	level, err := ParseLogLevel(cfg.Level)
	if err != nil {
		return nopCloser{}, err
	}

	out, closer, err := openLogFile(cfg.File)
	if err != nil {
		return nopCloser{}, err
	}

	l := NewWithOutput(out)
	l.SetLevel(ToCharmLevel(level))
	l.SetReportTimestamp(closer != nopCloser{})
	SetDefault(l)

	return closer, nil
}

func openLogFile(file string) (io.Writer, io.Closer, error) {
	switch file {
	case "", "/dev/stderr":
		return os.Stderr, nopCloser{}, nil
	case "/dev/stdout":
		return os.Stdout, nopCloser{}, nil
	case "/dev/null":
		return io.Discard, nopCloser{}, nil
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, nil, errUtils.Build(errUtils.ErrInvalidLogFile).
			WithCause(err).
			WithContext("file", file).
			WithHint("Use a writable path or one of /dev/stderr, /dev/stdout, /dev/null").
			Err()
	}
	return f, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Trace logs at trace level on the default logger.
func Trace(msg interface{}, keyvals ...interface{}) {
	Default().Trace(msg, keyvals...)
}

// Debug logs at debug level on the default logger.
func Debug(msg interface{}, keyvals ...interface{}) {
	Default().Debug(msg, keyvals...)
}

// Info logs at info level on the default logger.
func Info(msg interface{}, keyvals ...interface{}) {
	Default().Info(msg, keyvals...)
}

// Warn logs at warn level on the default logger.
func Warn(msg interface{}, keyvals ...interface{}) {
	Default().Warn(msg, keyvals...)
}

// Error logs at error level on the default logger.
func Error(msg interface{}, keyvals ...interface{}) {
	Default().Error(msg, keyvals...)
}

// GetLevel returns the level of the default logger.
func GetLevel() charm.Level {
	return Default().GetLevel()
}

// SetLevel sets the level of the default logger.
func SetLevel(level charm.Level) {
	Default().SetLevel(level)
}
