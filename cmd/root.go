package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/elewis787/boa"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cloudposse/countdown/pkg/config"
	"github.com/cloudposse/countdown/pkg/countdown"
	"github.com/cloudposse/countdown/pkg/decor"
	log "github.com/cloudposse/countdown/pkg/logger"
	"github.com/cloudposse/countdown/pkg/schema"
	"github.com/cloudposse/countdown/pkg/ui/display"
)

var countdownConfig schema.Configuration

// logCloser releases the log file opened for the current run.
var (
	logMu     sync.Mutex
	logCloser io.Closer
)

// isTerminal reports whether stdout is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Count down to the birthday celebration",
	Long: `Shows the days, hours, minutes and seconds left until the celebration, refreshed every second.
When stdout is not a terminal a single snapshot is printed instead.`,
	Example: "countdown\ncountdown --target 2025-12-12T00:00:00 --timezone Europe/Berlin",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Do not silence usage or errors when help is invoked
		if cmd.Name() == "help" || cmd.Flags().Changed("help") {
			cmd.SilenceUsage = false
			cmd.SilenceErrors = false
		} else {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
		}

		cfg, err := config.LoadConfig(cmd.Flags())
		if err != nil {
			return err
		}
		countdownConfig = cfg

		return setupLogger(cfg.Logs, cmd == cmd.Root() && isTerminal())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLogger()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		target, loc, err := config.ResolveTarget(countdownConfig)
		if err != nil {
			return err
		}
		log.Debug("Resolved target", "target", target, "timezone", loc)

		if !isTerminal() {
			remaining := countdown.Compute(target, time.Now())
			fmt.Fprintln(cmd.OutOrStdout(), display.Render(remaining, 0))
			return nil
		}

		bubbles, err := decor.NewSeededGenerator(time.Now().UnixNano()).Generate(decor.DefaultCount)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		done := make(chan struct{})
		defer close(done)
		defer cancel()
		RegisterCleanup(func() {
			cancel()
			select {
			case <-done:
			case <-time.After(cleanupTimeout):
			}
		})

		return display.Run(ctx, display.Options{
			Target:    target,
			Bubbles:   bubbles,
			AltScreen: true,
		})
	},
}

// setupLogger installs the default logger. While the display owns the
// terminal, logs that would go to stderr are dropped.
func setupLogger(logs schema.Logs, interactive bool) error {
	closeLogger()
	if interactive && (logs.File == "" || logs.File == "/dev/stderr" || logs.File == "/dev/stdout") {
		logs.File = "/dev/null"
	}
	closer, err := log.SetupFromConfig(logs)
	if err != nil {
		return err
	}

	logMu.Lock()
	defer logMu.Unlock()
	logCloser = closer
	return nil
}

func closeLogger() {
	logMu.Lock()
	defer logMu.Unlock()
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

func init() {
	RootCmd.PersistentFlags().String(config.TargetFlag, "", fmt.Sprintf("Celebration instant, e.g. '%s' (wall clock in --timezone) or RFC 3339 with an offset", countdown.DefaultTarget))
	RootCmd.PersistentFlags().String(config.TimezoneFlag, "", "IANA timezone for targets without an offset, e.g. 'Europe/Berlin'. Defaults to the system timezone")
	RootCmd.PersistentFlags().String(config.ConfigFlag, "", "Path to a countdown.yaml config file")
	RootCmd.PersistentFlags().String(config.LogsLevelFlag, "", "Logs level. Supported log levels are Trace, Debug, Info, Warning, Off. If the log level is set to Off, countdown will not log any messages")
	RootCmd.PersistentFlags().String(config.LogsFileFlag, "", "The file to write logs to. Logs can be written to any file or any standard file descriptor, including '/dev/stdout', '/dev/stderr' and '/dev/null'")

	b := boa.New(boa.WithStyles(boa.DefaultStyles()))
	RootCmd.SetUsageFunc(b.UsageFunc)
}
