package errors

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func plainConfig() FormatterConfig {
	config := DefaultFormatterConfig()
	config.Color = "never"
	return config
}

func TestDefaultFormatterConfig(t *testing.T) {
	config := DefaultFormatterConfig()

	assert.False(t, config.Verbose)
	assert.Equal(t, "auto", config.Color)
	assert.Equal(t, 80, config.MaxLineLength)
}

func TestFormat_NilError(t *testing.T) {
	assert.Empty(t, Format(nil, plainConfig()))
}

func TestFormat_SimpleError(t *testing.T) {
	result := Format(errors.New("test error"), plainConfig())

	assert.Equal(t, "test error", result)
	assert.NotContains(t, result, hintPrefix)
}

func TestFormat_ErrorWithHints(t *testing.T) {
	err := Build(ErrInvalidTarget).
		WithHint("First hint").
		WithHint("Second hint").
		Err()

	result := Format(err, plainConfig())

	assert.Contains(t, result, "invalid countdown target")
	assert.Contains(t, result, "First hint")
	assert.Contains(t, result, "Second hint")
	assert.Equal(t, 2, strings.Count(result, hintPrefix))
}

func TestFormat_LongErrorMessage(t *testing.T) {
	longMsg := "This is a very long error message that exceeds the maximum line length and should be wrapped to multiple lines for better readability in the terminal output"

	result := Format(errors.New(longMsg), plainConfig())

	for _, line := range strings.Split(result, "\n") {
		assert.LessOrEqual(t, len(line), DefaultMaxLineLength)
	}
	assert.Contains(t, result, "\n")
}

func TestFormat_VerboseIncludesContext(t *testing.T) {
	err := Build(ErrInvalidTimezone).WithContext("timezone", "Mars/Olympus").Err()

	config := plainConfig()
	config.Verbose = true
	result := Format(err, config)

	assert.Contains(t, result, "invalid timezone")
	assert.Contains(t, result, "timezone")
	assert.Contains(t, result, "Mars/Olympus")
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "fits", text: "short text", width: 20, want: "short text"},
		{name: "wraps", text: "one two three", width: 7, want: "one two\nthree"},
		{name: "default width", text: "abc", width: 0, want: "abc"},
		{name: "empty", text: "", width: 10, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(tt.text, tt.width))
		})
	}
}
