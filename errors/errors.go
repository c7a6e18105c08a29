package errors

import (
	"github.com/cockroachdb/errors"
)

// Configuration errors.
var (
	ErrInvalidTarget      = errors.New("invalid countdown target")
	ErrInvalidInstant     = errors.New("invalid --at instant")
	ErrInvalidTimezone    = errors.New("invalid timezone")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidLogFile     = errors.New("invalid log file")
	ErrInvalidFormat      = errors.New("invalid output format")
	ErrReadConfig         = errors.New("failed to read countdown configuration")
	ErrUnmarshalConfig    = errors.New("failed to unmarshal countdown configuration")
	ErrBindFlag           = errors.New("failed to bind command-line flag")
	ErrInvalidInterval    = errors.New("invalid refresh interval")
	ErrInvalidBubbleCount = errors.New("invalid bubble count")
)

// Runtime errors.
var (
	ErrAlreadyStarted = errors.New("refresher already started")
	ErrDisplayFailed  = errors.New("countdown display failed")
	ErrRenderOutput   = errors.New("failed to render output")
	ErrInterrupted    = errors.New("interrupted by signal")
)
