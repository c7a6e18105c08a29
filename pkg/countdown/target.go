package countdown

import (
	"strings"
	"time"

	errUtils "github.com/cloudposse/countdown/errors"
)

// DefaultTarget is the celebration instant used when nothing else is configured.
const DefaultTarget = "2025-12-12T00:00:00"

// Layouts accepted by ParseTarget, tried in order. Layouts without an offset
// are read as wall-clock time in the supplied location.
var targetLayouts = []struct {
	layout   string
	absolute bool
}{
	{layout: time.RFC3339Nano, absolute: true},
	{layout: "2006-01-02T15:04:05"},
	{layout: "2006-01-02T15:04"},
	{layout: "2006-01-02"},
}

// TargetLayoutsExplanation describes how targets are read.
const TargetLayoutsExplanation = "A target without a UTC offset, such as 2025-12-12T00:00:00, 2025-12-12T00:00 or 2025-12-12, " +
	"is wall-clock time in the configured timezone. An RFC 3339 timestamp with an offset or Z is an exact instant and ignores the timezone."

// Target is the fixed instant the countdown runs towards.
// The zero value is not usable; build one with ParseTarget or NewTarget.
type Target struct {
	at time.Time
}

// NewTarget fixes the countdown target at t.
func NewTarget(t time.Time) Target {
	return Target{at: t}
}

// ParseTarget parses value as a countdown target. A nil loc means time.Local.
func ParseTarget(value string, loc *time.Location) (Target, error) {
	if loc == nil {
		loc = time.Local
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Target{}, errUtils.Build(errUtils.ErrInvalidTarget).
			WithHint("Set --target, COUNTDOWN_TARGET or `target` in countdown.yaml").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	for _, l := range targetLayouts {
		var (
			t   time.Time
			err error
		)
		if l.absolute {
			t, err = time.Parse(l.layout, trimmed)
		} else {
			t, err = time.ParseInLocation(l.layout, trimmed, loc)
		}
		if err == nil {
			return Target{at: t}, nil
		}
	}

	return Target{}, errUtils.Build(errUtils.ErrInvalidTarget).
		WithContext("target", trimmed).
		WithExplanation(TargetLayoutsExplanation).
		WithHintf("Use a timestamp such as `%s` or `2025-12-12T00:00:00+01:00`", DefaultTarget).
		WithExitCode(errUtils.ExitCodeUsage).
		Err()
}

// Time returns the target instant.
func (t Target) Time() time.Time {
	return t.at
}

// IsZero reports whether the target was never set.
func (t Target) IsZero() bool {
	return t.at.IsZero()
}

func (t Target) String() string {
	return t.at.Format(time.RFC3339)
}
