// Package theme holds the colors and lipgloss styles of the countdown display.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/cloudposse/countdown/pkg/decor"
)

// Palette.
const (
	ColorYellow     = "#FDE047"
	ColorPink       = "#F472B6"
	ColorPinkLight  = "#FBCFE8"
	ColorPinkBorder = "#EC4899"
	ColorPurple     = "#A855F7"
	ColorPurpleSoft = "#C084FC"
	ColorRed        = "#F87171"
	ColorBlue       = "#93C5FD"
	ColorWhite      = "#F3F4F6"
	ColorGray       = "#6B7280"
	ColorGrayDark   = "#374151"
	ColorBubblePink = "#FFC0CB"
)

// Gradient stops for the two gradient texts on the card.
var (
	TitleGradient    = []string{ColorYellow, ColorPink, ColorPurple}
	GreetingGradient = []string{ColorPurpleSoft, ColorRed}
)

// Styles is the set of styles the display uses.
type Styles struct {
	Card       lipgloss.Style
	Celebrant  lipgloss.Style
	Subtitle   lipgloss.Style
	Heading    lipgloss.Style
	Tile       lipgloss.Style
	TileValue  lipgloss.Style
	TileLabel  lipgloss.Style
	Message    lipgloss.Style
	Footer     lipgloss.Style
	Help       lipgloss.Style
	Bubbles    map[decor.Tint]lipgloss.Style
	TableHead  lipgloss.Style
	TableCell  lipgloss.Style
	TableFrame lipgloss.Style
}

// DefaultStyles returns the birthday styles.
func DefaultStyles() Styles {
	return Styles{
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorPinkBorder)).
			Padding(1, 4),
		Celebrant: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Subtitle:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(ColorPinkLight)),
		Heading:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorYellow)),
		Tile: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorPink)).
			Width(9).
			Margin(0, 1).
			Align(lipgloss.Center),
		TileValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		TileLabel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPinkLight)),
		Message:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWhite)).Align(lipgloss.Center),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGrayDark)),
		Bubbles: map[decor.Tint]lipgloss.Style{
			decor.TintWhite: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWhite)).Faint(true),
			decor.TintPink:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBubblePink)),
			decor.TintBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue)),
		},
		TableHead:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPink)).Padding(0, 1),
		TableCell:  lipgloss.NewStyle().Padding(0, 1),
		TableFrame: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGrayDark)),
	}
}

// Gradient colors each rune of text along the given hex stops.
// Invalid stops fall back to the plain text.
func Gradient(text string, stops ...string) string {
	runes := []rune(text)
	if len(runes) == 0 || len(stops) == 0 {
		return text
	}

	colors := make([]colorful.Color, 0, len(stops))
	for _, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			return text
		}
		colors = append(colors, c)
	}

	var sb strings.Builder
	for i, r := range runes {
		hex := colorAt(colors, position(i, len(runes))).Hex()
		sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hex)).Render(string(r)))
	}
	return sb.String()
}

func position(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// colorAt blends between the stops surrounding t in [0,1].
func colorAt(stops []colorful.Color, t float64) colorful.Color {
	if len(stops) == 1 {
		return stops[0]
	}
	segments := float64(len(stops) - 1)
	idx := int(t * segments)
	if idx >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	local := t*segments - float64(idx)
	return stops[idx].BlendLuv(stops[idx+1], local).Clamped()
}
