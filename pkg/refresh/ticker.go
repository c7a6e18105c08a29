package refresh

import "time"

// Ticker is the periodic registration the refresher owns.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a Ticker firing every interval.
type TickerFactory func(interval time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

func newRealTicker(interval time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(interval)}
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }

func (r *realTicker) Stop() { r.t.Stop() }
