package errors

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitCodeOK},
		{name: "plain error", err: errors.New("boom"), want: ExitCodeFailure},
		{name: "explicit code", err: WithExitCode(errors.New("boom"), 42), want: 42},
		{name: "wrapped explicit code", err: fmt.Errorf("outer: %w", WithExitCode(errors.New("boom"), ExitCodeUsage)), want: ExitCodeUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestWithExitCode_Nil(t *testing.T) {
	assert.NoError(t, WithExitCode(nil, 3))
}

func TestWithExitCode_PreservesChain(t *testing.T) {
	err := WithExitCode(ErrAlreadyStarted, 5)

	assert.ErrorIs(t, err, ErrAlreadyStarted)
	assert.Equal(t, ErrAlreadyStarted.Error(), err.Error())
}

func TestCheckErrorPrintAndExit(t *testing.T) {
	original := OsExit
	defer func() { OsExit = original }()

	var code int
	called := false
	OsExit = func(c int) {
		called = true
		code = c
	}

	CheckErrorPrintAndExit(nil)
	assert.False(t, called)

	CheckErrorPrintAndExit(WithExitCode(errors.New("boom"), 7))
	assert.True(t, called)
	assert.Equal(t, 7, code)
}
