package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"runtime"
	"testing"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	errUtils "github.com/cloudposse/countdown/errors"
	"github.com/cloudposse/countdown/pkg/countdown"
	log "github.com/cloudposse/countdown/pkg/logger"
	"github.com/cloudposse/countdown/pkg/ui/display"
)

// resetFlags puts every flag of c and its children back to its default,
// since cobra commands keep flag state between executions.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("COUNTDOWN_LOGS_FILE", "/dev/null")
	xdg.Reload()
	// Equivalent of t.Chdir (Go 1.24+) for older toolchains.
	prevWd, wdErr := os.Getwd()
	if wdErr != nil {
		t.Fatal(wdErr)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWd) })

	original := isTerminal
	isTerminal = func() bool { return false }
	defaultLogger := log.Default()
	t.Cleanup(func() {
		isTerminal = original
		log.SetDefault(defaultLogger)
		xdg.Reload()
	})

	resetFlags(RootCmd)
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)

	err := Execute()
	return out.String(), err
}

func TestOnce(t *testing.T) {
	base := []string{"once", "--target", "2025-12-12T00:00:00", "--timezone", "UTC"}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "two days out",
			args: []string{"--at", "2025-12-10T00:00:00"},
			want: display.HeadingCounting + "\n02 Days  00 Hours  00 Minutes  00 Seconds\n",
		},
		{
			name: "one second out",
			args: []string{"--at", "2025-12-11T23:59:59"},
			want: display.HeadingCounting + "\n00 Days  00 Hours  00 Minutes  01 Seconds\n",
		},
		{
			name: "celebration day",
			args: []string{"--at", "2025-12-12T08:00:00", "--format", "text"},
			want: display.HeadingExpired + "\n00 Days  00 Hours  00 Minutes  00 Seconds\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append(base, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestOnce_StructuredFormats(t *testing.T) {
	args := []string{"once", "--target", "2025-12-12T00:00:00+01:00", "--at", "2025-12-01T10:29:15+01:00"}
	want := countdown.Remaining{Days: 10, Hours: 13, Minutes: 30, Seconds: 45}

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, append(args, "--format", "json")...)
		require.NoError(t, err)

		var got snapshot
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, want, got.Remaining)
		assert.Equal(t, "2025-12-12T00:00:00+01:00", got.Target)
		assert.Equal(t, display.HeadingCounting, got.Heading)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := execute(t, append(args, "-f", "yaml")...)
		require.NoError(t, err)

		var got snapshot
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, want, got.Remaining)
	})
}

func TestOnce_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "unknown format", args: []string{"once", "--format", "xml"}, want: errUtils.ErrInvalidFormat},
		{name: "bad target", args: []string{"once", "--target", "next friday"}, want: errUtils.ErrInvalidTarget},
		{name: "bad at", args: []string{"once", "--at", "yesterday"}, want: errUtils.ErrInvalidTarget},
		{name: "bad timezone", args: []string{"once", "--timezone", "Mars/Olympus"}, want: errUtils.ErrInvalidTimezone},
		{name: "bad log level", args: []string{"once", "--logs-level", "chatty"}, want: errUtils.ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, errUtils.ExitCodeUsage, errUtils.GetExitCode(err))
		})
	}
}

func TestOnce_BadAtIsMarked(t *testing.T) {
	_, err := execute(t, "once", "--at", "yesterday")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidInstant)
	assert.ErrorIs(t, err, errUtils.ErrInvalidTarget)

	_, err = execute(t, "once", "--target", "next friday")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errUtils.ErrInvalidInstant)
}

func TestRoot_StaticRender(t *testing.T) {
	out, err := execute(t, "--target", "2999-01-01")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	assert.Contains(t, plain, display.Title)
	assert.Contains(t, plain, display.HeadingCounting)
	assert.Contains(t, plain, "Seconds")
}

func TestBubbles(t *testing.T) {
	first, err := execute(t, "bubbles", "--seed", "42", "--count", "3")
	require.NoError(t, err)
	second, err := execute(t, "bubbles", "--seed", "42", "--count", "3")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	plain := ansi.Strip(first)
	for _, want := range []string{"Size", "Left", "Delay", "Duration", "Tint", "white", "pink", "blue"} {
		assert.Contains(t, plain, want)
	}

	_, err = execute(t, "bubbles", "--count", "-1")
	assert.ErrorIs(t, err, errUtils.ErrInvalidBubbleCount)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "countdown test on "+runtime.GOOS+"/"+runtime.GOARCH)
}

func TestBadTargetOnlyFailsCommandsThatUseIt(t *testing.T) {
	t.Setenv("COUNTDOWN_TARGET", "whenever")

	_, err := execute(t, "version")
	assert.NoError(t, err)

	_, err = execute(t, "bubbles", "--seed", "1", "--count", "2")
	assert.NoError(t, err)

	_, err = execute(t, "once")
	assert.ErrorIs(t, err, errUtils.ErrInvalidTarget)

	_, err = execute(t)
	assert.ErrorIs(t, err, errUtils.ErrInvalidTarget)
}

func TestCleanup(t *testing.T) {
	var order []int
	RegisterCleanup(func() { order = append(order, 1) })
	RegisterCleanup(func() { order = append(order, 2) })

	Cleanup()
	Cleanup()

	assert.Equal(t, []int{2, 1}, order)
}
