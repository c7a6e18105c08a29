package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	errUtils "github.com/cloudposse/countdown/errors"
	"github.com/cloudposse/countdown/pkg/config"
	"github.com/cloudposse/countdown/pkg/countdown"
	"github.com/cloudposse/countdown/pkg/ui/display"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	onceFormat string
	onceAt     string
)

// snapshot is the machine-readable form printed by `countdown once`.
type snapshot struct {
	Target    string              `json:"target" yaml:"target"`
	Now       string              `json:"now" yaml:"now"`
	Heading   string              `json:"heading" yaml:"heading"`
	Remaining countdown.Remaining `json:"remaining" yaml:"remaining"`
}

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Print the time left once and exit",
	Long:  `This command computes the remaining time a single time and prints it as text, JSON or YAML`,
	Example: "countdown once\n" +
		"countdown once --format json\n" +
		"countdown once --at 2025-12-10T00:00:00 --format yaml",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, loc, err := config.ResolveTarget(countdownConfig)
		if err != nil {
			return err
		}

		now := time.Now()
		if onceAt != "" {
			at, err := countdown.ParseTarget(onceAt, loc)
			if err != nil {
				return errUtils.Build(err).
					WithSentinel(errUtils.ErrInvalidInstant).
					WithHint("--at accepts the same layouts as --target").
					Err()
			}
			now = at.Time()
		}

		remaining := countdown.Compute(target, now)
		return printSnapshot(cmd.OutOrStdout(), onceFormat, snapshot{
			Target:    target.String(),
			Now:       now.Format(time.RFC3339),
			Heading:   display.Heading(remaining),
			Remaining: remaining,
		})
	},
}

func printSnapshot(w io.Writer, format string, s snapshot) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		_, err := fmt.Fprintf(w, "%s\n%s\n", s.Heading, tilesLine(s.Remaining))
		return err
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return errUtils.Build(errUtils.ErrRenderOutput).WithCause(err).Err()
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return errUtils.Build(errUtils.ErrRenderOutput).WithCause(err).Err()
		}
		return enc.Close()
	default:
		return errUtils.Build(errUtils.ErrInvalidFormat).
			WithContext("format", format).
			WithHintf("Supported formats are %s, %s and %s", FormatText, FormatJSON, FormatYAML).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
}

func tilesLine(r countdown.Remaining) string {
	parts := make([]string, 0, 4)
	for _, tile := range r.Tiles() {
		parts = append(parts, tile.Padded()+" "+tile.Label)
	}
	return strings.Join(parts, "  ")
}

func init() {
	onceCmd.Flags().StringVarP(&onceFormat, "format", "f", FormatText, "Output format: text, json or yaml")
	onceCmd.Flags().StringVar(&onceAt, "at", "", "Compute for this instant instead of now")
	RootCmd.AddCommand(onceCmd)
}
