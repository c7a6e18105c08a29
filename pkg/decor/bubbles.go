// Package decor generates the floating bubbles drawn behind the countdown.
// Bubbles are cosmetic: nothing in them feeds back into the countdown.
package decor

import (
	"math/rand"
	"time"

	"github.com/samber/lo"

	errUtils "github.com/cloudposse/countdown/errors"
)

// DefaultCount is the number of bubbles on screen.
const DefaultCount = 20

// Parameter ranges, as [min, min+spread).
const (
	minSize        = 10.0
	sizeSpread     = 30.0
	leftSpread     = 100.0
	delaySpread    = 5 * time.Second
	minDuration    = 5 * time.Second
	durationSpread = 10 * time.Second
)

// Tint is the bubble fill color class.
type Tint int

const (
	TintWhite Tint = iota
	TintPink
	TintBlue
)

func (t Tint) String() string {
	switch t {
	case TintPink:
		return "pink"
	case TintBlue:
		return "blue"
	default:
		return "white"
	}
}

// Bubble is one decorative item. Size is in pixels of the reference layout,
// Left is a percentage of the width.
type Bubble struct {
	Index    int           `json:"index" yaml:"index"`
	Size     float64       `json:"size" yaml:"size"`
	Left     float64       `json:"left" yaml:"left"`
	Delay    time.Duration `json:"delay" yaml:"delay"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Tint cycles white and pink, with every third bubble blue.
func (b Bubble) Tint() Tint {
	n := b.Index + 1
	switch {
	case n%3 == 0:
		return TintBlue
	case n%2 == 0:
		return TintPink
	default:
		return TintWhite
	}
}

// Generator produces bubbles from a random source.
// A Generator is not safe for concurrent use.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator creates a Generator drawing from src.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// NewSeededGenerator creates a Generator whose output is fixed by seed.
func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.NewSource(seed))
}

// Generate returns exactly n bubbles.
func (g *Generator) Generate(n int) ([]Bubble, error) {
	if n < 0 {
		return nil, errUtils.Build(errUtils.ErrInvalidBubbleCount).
			WithContext("count", n).
			WithHint("The bubble count must be zero or more").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	return lo.Times(n, func(i int) Bubble {
		return Bubble{
			Index:    i,
			Size:     minSize + g.rnd.Float64()*sizeSpread,
			Left:     g.rnd.Float64() * leftSpread,
			Delay:    time.Duration(g.rnd.Float64() * float64(delaySpread)),
			Duration: minDuration + time.Duration(g.rnd.Float64()*float64(durationSpread)),
		}
	}), nil
}
