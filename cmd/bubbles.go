package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/cloudposse/countdown/pkg/decor"
	log "github.com/cloudposse/countdown/pkg/logger"
	"github.com/cloudposse/countdown/pkg/ui/theme"
)

var (
	bubblesSeed  int64
	bubblesCount int
)

var bubblesCmd = &cobra.Command{
	Use:     "bubbles",
	Short:   "Print the generated bubble parameters",
	Long:    `This command generates the decorative bubbles and prints their size, position and timing as a table`,
	Example: "countdown bubbles\ncountdown bubbles --seed 42 --count 5",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := bubblesSeed
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}
		log.Debug("Generating bubbles", "seed", seed, "count", bubblesCount)

		bubbles, err := decor.NewSeededGenerator(seed).Generate(bubblesCount)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), bubblesTable(bubbles))
		return nil
	},
}

func bubblesTable(bubbles []decor.Bubble) string {
	styles := theme.DefaultStyles()

	rows := lo.Map(bubbles, func(b decor.Bubble, _ int) []string {
		return []string{
			strconv.Itoa(b.Index + 1),
			fmt.Sprintf("%.1fpx", b.Size),
			fmt.Sprintf("%.1f%%", b.Left),
			fmt.Sprintf("%.2fs", b.Delay.Seconds()),
			fmt.Sprintf("%.2fs", b.Duration.Seconds()),
			b.Tint().String(),
		}
	})

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.TableFrame).
		Headers("#", "Size", "Left", "Delay", "Duration", "Tint").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHead
			}
			return styles.TableCell
		}).
		String()
}

func init() {
	bubblesCmd.Flags().Int64Var(&bubblesSeed, "seed", 0, "Random seed; the same seed always yields the same bubbles. Defaults to the current time")
	bubblesCmd.Flags().IntVar(&bubblesCount, "count", decor.DefaultCount, "Number of bubbles to generate")
	RootCmd.AddCommand(bubblesCmd)
}
