package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cockroachdb/errors"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
)

const (
	// DefaultMaxLineLength is the default maximum line length before wrapping.
	DefaultMaxLineLength = 80

	hintPrefix = "💡 "
	hintIndent = "    "
	newline    = "\n"
)

// FormatterConfig controls error formatting behavior.
type FormatterConfig struct {
	// Verbose adds the context table and the full error chain.
	Verbose bool

	// Color controls color output: "auto", "always", or "never".
	Color string

	// MaxLineLength is the maximum length before wrapping.
	MaxLineLength int
}

// DefaultFormatterConfig returns default formatting configuration.
func DefaultFormatterConfig() FormatterConfig {
	return FormatterConfig{
		Verbose:       false,
		Color:         "auto",
		MaxLineLength: DefaultMaxLineLength,
	}
}

// Format formats an error for display: the message, one line per hint, and in
// verbose mode the safe context and the detailed chain.
func Format(err error, config FormatterConfig) string {
	if err == nil {
		return ""
	}

	useColor := shouldUseColor(config.Color)

	errorStyle := lipgloss.NewStyle()
	hintStyle := lipgloss.NewStyle()
	if useColor {
		errorStyle = errorStyle.Foreground(lipgloss.Color("#FF5F87")).Bold(true)
		hintStyle = hintStyle.Foreground(lipgloss.Color("#FDE047"))
	}

	var output strings.Builder

	mainMsg := err.Error()
	if len(mainMsg) > config.MaxLineLength && !config.Verbose {
		mainMsg = wrapText(mainMsg, config.MaxLineLength)
	}
	output.WriteString(errorStyle.Render(mainMsg))

	hints := errors.GetAllHints(err)
	if len(hints) > 0 {
		output.WriteString(newline)
		for _, hint := range hints {
			output.WriteString(hintIndent + hintStyle.Render(hintPrefix+hint))
			output.WriteString(newline)
		}
	}

	if config.Verbose {
		if contextTable := formatContextTable(err, useColor); contextTable != "" {
			output.WriteString(contextTable)
			output.WriteString(newline)
		}
		output.WriteString(newline)
		output.WriteString(fmt.Sprintf("%+v", err))
	}

	return output.String()
}

// formatContextTable renders the safe details attached by ErrorBuilder.WithContext
// as a two-column table.
func formatContextTable(err error, useColor bool) string {
	var rows [][]string
	for _, payload := range errors.GetAllSafeDetails(err) {
		for _, detail := range payload.SafeDetails {
			for _, pair := range strings.Split(detail, " ") {
				if parts := strings.SplitN(pair, "=", 2); len(parts) == 2 {
					rows = append(rows, []string{parts[0], parts[1]})
				}
			}
		}
	}
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Context", "Value").
		Rows(rows...)

	if useColor {
		t = t.
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#EC4899"))).
			StyleFunc(func(row, col int) lipgloss.Style {
				style := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
				if row == table.HeaderRow {
					return style.Foreground(lipgloss.Color("#FDE047")).Bold(true)
				}
				if col == 0 {
					return style.Foreground(lipgloss.Color("#808080"))
				}
				return style
			})
	}

	return newline + t.String()
}

// shouldUseColor determines if color output should be used.
func shouldUseColor(colorMode string) bool {
	switch colorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// wrapText wraps text on word boundaries to the specified width.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultMaxLineLength
	}
	return wordwrap.String(text, width)
}
