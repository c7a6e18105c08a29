package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"

	"github.com/cloudposse/countdown/pkg/countdown"
	"github.com/cloudposse/countdown/pkg/decor"
	"github.com/cloudposse/countdown/pkg/ui/theme"
)

// Card copy.
const (
	Title           = "HAPPY BIRTHDAY"
	Celebrant       = "DII"
	Subtitle        = "Celebrating December 12th in Advance!"
	HeadingCounting = "Countdown to the Celebration..."
	HeadingExpired  = "The day is here! Celebrate!"
	Message         = "The world is already getting ready for December 12th, and so are we! " +
		"May the year ahead be filled with laughter, incredible achievements, and moments that truly sparkle. " +
		"You deserve nothing but the very best, DII."
	Greeting = "Happy Advance Birthday!"
	Footer   = "Made with warmth and excitement for your special day."
)

// Heading returns the line above the tiles.
func Heading(r countdown.Remaining) string {
	if r.Expired {
		return HeadingExpired
	}
	return HeadingCounting
}

// Render draws the countdown card for r without bubbles. With width > 0 the
// card is centered in that many columns.
func Render(r countdown.Remaining, width int) string {
	card := renderCard(theme.DefaultStyles(), r)
	if width > lipgloss.Width(card) {
		card = lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
	}
	return card
}

func renderCard(s theme.Styles, r countdown.Remaining) string {
	tiles := lo.Map(r.Tiles(), func(t countdown.Tile, _ int) string {
		return s.Tile.Render(s.TileValue.Render(t.Padded()) + "\n" + s.TileLabel.Render(t.Label))
	})
	row := lipgloss.JoinHorizontal(lipgloss.Top, tiles...)

	message := s.Message.Render(wordwrap.String(Message, lipgloss.Width(row)))

	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Gradient(Title, theme.TitleGradient...),
		s.Celebrant.Render(Celebrant),
		s.Subtitle.Render(Subtitle),
		"",
		s.Heading.Render(Heading(r)),
		row,
		"",
		message,
		"",
		theme.Gradient(Greeting, theme.GreetingGradient...),
		"",
		s.Footer.Render(Footer),
	)
	return s.Card.Render(body)
}

// compose centers card on a width x height field and scatters the sprites in
// the cells the card leaves free. A field too small for the card yields the
// card alone.
func compose(s theme.Styles, card string, sprites []decor.Sprite, width, height int) string {
	lines := strings.Split(card, "\n")
	cardWidth := lipgloss.Width(card)
	if width < cardWidth || height < len(lines) {
		return card
	}

	grid := make([][]string, height)
	for y := range grid {
		grid[y] = make([]string, width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	for _, sp := range sprites {
		if sp.Row < 0 || sp.Row >= height || sp.Col < 0 || sp.Col >= width {
			continue
		}
		grid[sp.Row][sp.Col] = s.Bubbles[sp.Tint].Render(sp.Glyph)
	}

	x0 := (width - cardWidth) / 2
	y0 := (height - len(lines)) / 2

	rows := make([]string, height)
	for y := range grid {
		if y < y0 || y >= y0+len(lines) {
			rows[y] = strings.Join(grid[y], "")
			continue
		}
		line := lines[y-y0]
		if pad := cardWidth - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		rows[y] = strings.Join(grid[y][:x0], "") + line + strings.Join(grid[y][x0+cardWidth:], "")
	}
	return strings.Join(rows, "\n")
}
