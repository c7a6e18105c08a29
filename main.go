package main

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/cloudposse/countdown/cmd"
	errUtils "github.com/cloudposse/countdown/errors"
	log "github.com/cloudposse/countdown/pkg/logger"
)

// interruptCode holds the exit code for the signal that ended the run, or 0.
var interruptCode atomic.Int32

func main() {
	// Set up signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		sig := <-sigChan
		// Recorded before cleanup so run() reports the signal once the display unwinds.
		recordSignal(sig)
		// Stop the refresh loop and release the terminal before exit.
		cmd.Cleanup()
		errUtils.OsExit(int(interruptCode.Load()))
	}()

	log.Default().SetReportTimestamp(false)

	if err := run(); err != nil {
		errUtils.CheckErrorPrintAndExit(err)
		return
	}
	errUtils.OsExit(errUtils.ExitCodeOK)
}

// run executes the main application logic.
// This separation allows proper cleanup via defer before os.Exit in main().
func run() error {
	// Ensure cleanup happens on normal exit.
	defer cmd.Cleanup()

	var err error
	// Handle --version flag at application entry point, before any config is loaded.
	if hasVersionFlag(os.Args) {
		err = cmd.ExecuteVersion()
	} else {
		err = cmd.Execute()
	}

	if code := interruptCode.Load(); code != 0 {
		return errUtils.Build(errUtils.ErrInterrupted).
			WithExitCode(int(code)).
			Err()
	}
	if err != nil {
		log.Debug("Exiting with exit code", "code", errUtils.GetExitCode(err))
	}
	return err
}

// recordSignal stores the POSIX exit code (128 + signal number) for sig.
func recordSignal(sig os.Signal) {
	code := errUtils.ExitCodeInterrupted
	if s, ok := sig.(syscall.Signal); ok {
		code = 128 + int(s)
	}
	interruptCode.Store(int32(code))
}

// hasVersionFlag checks if --version is the first argument after the program name.
func hasVersionFlag(args []string) bool {
	return len(args) > 1 && args[1] == "--version"
}
