package errors

import (
	"os"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// CheckErrorPrintAndExit prints a formatted error to stderr and exits with the
// error's exit code. It does nothing when err is nil.
func CheckErrorPrintAndExit(err error) {
	if err == nil {
		return
	}
	_, _ = os.Stderr.WriteString(Format(err, DefaultFormatterConfig()) + "\n")
	OsExit(GetExitCode(err))
}
