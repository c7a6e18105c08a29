// Package logger wraps charmbracelet/log with the level names and defaults used
// across the countdown CLI.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	charm "github.com/charmbracelet/log"

	errUtils "github.com/cloudposse/countdown/errors"
)

// LogLevel is the user-facing name of a log level as written in configuration.
type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

// Charm levels, plus Trace one step more verbose than Debug.
const (
	TraceLevel = charm.DebugLevel - 1
	DebugLevel = charm.DebugLevel
	InfoLevel  = charm.InfoLevel
	WarnLevel  = charm.WarnLevel
	ErrorLevel = charm.ErrorLevel
	FatalLevel = charm.FatalLevel
	// OffLevel is above every level the logger emits.
	OffLevel = charm.Level(1 << 30)
)

// Logger is the countdown logger.
type Logger struct {
	*charm.Logger
}

// NewLogger wraps an existing charm logger and applies the countdown styles.
func NewLogger(l *charm.Logger) *Logger {
	l.SetStyles(getLogStyles())
	return &Logger{Logger: l}
}

// New creates a new Logger writing to stderr.
func New() *Logger {
	return NewLogger(charm.New(os.Stderr))
}

// NewWithOutput creates a new Logger writing to w.
func NewWithOutput(w io.Writer) *Logger {
	return NewLogger(charm.New(w))
}

// Trace logs a message one level below Debug.
func (l *Logger) Trace(msg interface{}, keyvals ...interface{}) {
	l.Log(TraceLevel, msg, keyvals...)
}

// GetLevelString returns the lower-case name of the current level.
func (l *Logger) GetLevelString() string {
	switch level := l.GetLevel(); level {
	case TraceLevel:
		return "trace"
	case OffLevel:
		return "off"
	default:
		return strings.ToLower(level.String())
	}
}

// ParseLogLevel converts a configured level name into a LogLevel.
// An empty string means Info.
func ParseLogLevel(logLevel string) (LogLevel, error) {
	if logLevel == "" {
		return LogLevelInfo, nil
	}

	for _, candidate := range []LogLevel{LogLevelOff, LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarning} {
		if strings.EqualFold(logLevel, string(candidate)) {
			return candidate, nil
		}
	}

	return "", errUtils.Build(errUtils.ErrInvalidLogLevel).
		WithContext("level", logLevel).
		WithHint("Supported log levels are Trace, Debug, Info, Warning, Off").
		WithExitCode(errUtils.ExitCodeUsage).
		Err()
}

// ToCharmLevel maps a LogLevel to the charm level that filters it.
func ToCharmLevel(level LogLevel) charm.Level {
	switch level {
	case LogLevelOff:
		return OffLevel
	case LogLevelTrace:
		return TraceLevel
	case LogLevelDebug:
		return DebugLevel
	case LogLevelWarning:
		return WarnLevel
	default:
		return InfoLevel
	}
}

func getLogStyles() *charm.Styles {
	styles := charm.DefaultStyles()

	levelStyle := func(label, color string) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(label).
			Bold(true).
			MaxWidth(4).
			Foreground(lipgloss.Color(color))
	}

	styles.Levels[TraceLevel] = levelStyle("TRCE", "#6B7280")
	styles.Levels[DebugLevel] = levelStyle("DEBU", "#93C5FD")
	styles.Levels[InfoLevel] = levelStyle("INFO", "#F9A8D4")
	styles.Levels[WarnLevel] = levelStyle("WARN", "#FDE047")
	styles.Levels[ErrorLevel] = levelStyle("ERRO", "#F43F5E")
	styles.Levels[FatalLevel] = levelStyle("FATA", "#A855F7")

	return styles
}
