package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	tuiUtils "github.com/cloudposse/countdown/internal/tui/utils"
	"github.com/cloudposse/countdown/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the CLI version",
	Long:    `This command prints the CLI version`,
	Example: "countdown version",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		// Print a styled banner to the terminal
		fmt.Fprintln(out)
		if err := tuiUtils.PrintStyledText(out, "COUNTDOWN"); err != nil {
			return err
		}

		fmt.Fprintf(out, "\U0001F382 countdown %s on %s/%s\n\n", version.Version, runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

// ExecuteVersion prints the version without loading configuration.
func ExecuteVersion() error {
	return versionCmd.RunE(versionCmd, nil)
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
