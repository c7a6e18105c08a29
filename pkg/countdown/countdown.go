// Package countdown turns the distance between now and a fixed target into
// whole days, hours, minutes and seconds.
package countdown

import (
	"fmt"
	"math"
	"time"

	"github.com/samber/lo"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	maxDurationSeconds = int64(math.MaxInt64 / time.Second)
)

// Tile labels in display order.
const (
	LabelDays    = "Days"
	LabelHours   = "Hours"
	LabelMinutes = "Minutes"
	LabelSeconds = "Seconds"
)

// Remaining is one snapshot of the countdown. A new value is produced on every tick.
type Remaining struct {
	Days    int  `json:"days" yaml:"days"`
	Hours   int  `json:"hours" yaml:"hours"`
	Minutes int  `json:"minutes" yaml:"minutes"`
	Seconds int  `json:"seconds" yaml:"seconds"`
	Expired bool `json:"expired" yaml:"expired"`
}

// Compute returns the time left from now until target.
//
// Once now reaches the target the result is all zeros with Expired set. Before
// that each field is a floor division of the remaining time, so partial
// seconds are dropped and Hours, Minutes and Seconds never exceed 23, 59 and 59.
// The difference is taken in Unix seconds, which keeps targets further out
// than time.Duration can hold exact.
func Compute(target Target, now time.Time) Remaining {
	at := target.Time()
	if !now.Before(at) {
		return Remaining{Expired: true}
	}

	secs := at.Unix() - now.Unix()
	if at.Nanosecond() < now.Nanosecond() {
		secs--
	}

	return Remaining{
		Days:    int(secs / secondsPerDay),
		Hours:   int(secs / secondsPerHour % 24),
		Minutes: int(secs / secondsPerMinute % 60),
		Seconds: int(secs % 60),
	}
}

// Total reassembles the whole-second duration the snapshot represents. It
// saturates at the largest time.Duration for targets centuries away.
func (r Remaining) Total() time.Duration {
	secs := int64(r.Days)*secondsPerDay +
		int64(r.Hours)*secondsPerHour +
		int64(r.Minutes)*secondsPerMinute +
		int64(r.Seconds)
	if secs > maxDurationSeconds {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(secs) * time.Second
}

// Tiles returns the four display tiles in Days, Hours, Minutes, Seconds order.
func (r Remaining) Tiles() []Tile {
	values := []int{r.Days, r.Hours, r.Minutes, r.Seconds}
	labels := []string{LabelDays, LabelHours, LabelMinutes, LabelSeconds}

	return lo.Map(labels, func(label string, i int) Tile {
		return Tile{Label: label, Value: values[i]}
	})
}

func (r Remaining) String() string {
	if r.Expired {
		return "expired"
	}
	return fmt.Sprintf("%dd %02dh %02dm %02ds", r.Days, r.Hours, r.Minutes, r.Seconds)
}

// Tile is one labelled number on the countdown display.
type Tile struct {
	Label string
	Value int
}

// Padded renders the value with at least two digits.
func (t Tile) Padded() string {
	return fmt.Sprintf("%02d", t.Value)
}
