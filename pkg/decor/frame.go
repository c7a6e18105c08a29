package decor

import (
	"math"
	"time"

	"github.com/samber/lo"
)

// Frame returns how far b has floated at elapsed, as a fraction in [0,1) of
// one rise. The animation loops forever and starts after b.Delay.
func Frame(b Bubble, elapsed time.Duration) (progress float64, visible bool) {
	if elapsed < b.Delay || b.Duration <= 0 {
		return 0, false
	}
	phase := (elapsed - b.Delay) % b.Duration
	return float64(phase) / float64(b.Duration), true
}

// Sprite is a bubble positioned on a character grid.
type Sprite struct {
	Col   int
	Row   int
	Glyph string
	Tint  Tint
}

// Place lays the visible bubbles out on a width x height grid. Bubbles rise
// from the bottom row to the top as their progress goes from 0 to 1.
func Place(bubbles []Bubble, elapsed time.Duration, width, height int) []Sprite {
	if width <= 0 || height <= 0 {
		return nil
	}

	return lo.FilterMap(bubbles, func(b Bubble, _ int) (Sprite, bool) {
		progress, visible := Frame(b, elapsed)
		if !visible {
			return Sprite{}, false
		}

		col := int(b.Left / leftSpread * float64(width))
		row := height - 1 - int(math.Floor(progress*float64(height)))

		return Sprite{
			Col:   lo.Clamp(col, 0, width-1),
			Row:   lo.Clamp(row, 0, height-1),
			Glyph: glyph(b.Size, progress),
			Tint:  b.Tint(),
		}, true
	})
}

// Bubbles grow as they rise, so the glyph follows size scaled by progress.
func glyph(size, progress float64) string {
	scaled := size * (1 + progress/2)
	switch {
	case scaled < 18:
		return "·"
	case scaled < 30:
		return "∘"
	case scaled < 45:
		return "○"
	default:
		return "◯"
	}
}
