// Package refresh drives the countdown: it recomputes the remaining time on a
// fixed interval and hands every snapshot to a publisher.
package refresh

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	errUtils "github.com/cloudposse/countdown/errors"
	"github.com/cloudposse/countdown/pkg/countdown"
	log "github.com/cloudposse/countdown/pkg/logger"
)

// DefaultInterval is how often the countdown is recomputed.
const DefaultInterval = time.Second

//go:generate go run go.uber.org/mock/mockgen@latest -source=refresher.go -destination=mock_publisher_test.go -package=refresh

// Publisher receives every computed snapshot.
type Publisher interface {
	Publish(remaining countdown.Remaining)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(remaining countdown.Remaining)

func (f PublisherFunc) Publish(remaining countdown.Remaining) { f(remaining) }

// Option configures a Refresher.
type Option func(*Refresher)

// WithClock sets the clock used for "now". Defaults to the system clock.
func WithClock(clock countdown.Clock) Option {
	return func(r *Refresher) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// WithInterval overrides the refresh interval. Non-positive values are rejected by Start.
func WithInterval(interval time.Duration) Option {
	return func(r *Refresher) {
		r.interval = interval
	}
}

// WithTickerFactory replaces the time.Ticker backing the loop.
func WithTickerFactory(factory TickerFactory) Option {
	return func(r *Refresher) {
		if factory != nil {
			r.newTicker = factory
		}
	}
}

// Refresher owns the single periodic callback of the countdown.
type Refresher struct {
	target    countdown.Target
	publisher Publisher
	clock     countdown.Clock
	interval  time.Duration
	newTicker TickerFactory

	started  atomic.Bool
	ticks    atomic.Int64
	stopCh   chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a Refresher for target. Nothing runs until Start.
func New(target countdown.Target, publisher Publisher, opts ...Option) *Refresher {
	r := &Refresher{
		target:    target,
		publisher: publisher,
		clock:     countdown.RealClock{},
		interval:  DefaultInterval,
		newTicker: newRealTicker,
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start publishes the current snapshot right away and then once per interval
// until Stop is called or ctx is done. It returns immediately.
func (r *Refresher) Start(ctx context.Context) error {
	if r.interval <= 0 {
		return errUtils.Build(errUtils.ErrInvalidInterval).
			WithContext("interval", r.interval.String()).
			Err()
	}
	if !r.started.CompareAndSwap(false, true) {
		return errUtils.ErrAlreadyStarted
	}

	select {
	case <-r.stopCh:
		close(r.done)
		return nil
	default:
	}

	ticker := r.newTicker(r.interval)
	r.publish()

	go r.loop(ctx, ticker)
	return nil
}

func (r *Refresher) loop(ctx context.Context, ticker Ticker) {
	defer close(r.done)
	defer ticker.Stop()

	log.Debug("Countdown refresh started", "target", r.target, "interval", r.interval)

	for {
		select {
		case <-ctx.Done():
			log.Debug("Countdown refresh stopped by context", "ticks", r.Ticks())
			return
		case <-r.stopCh:
			log.Debug("Countdown refresh stopped", "ticks", r.Ticks())
			return
		case <-ticker.C():
			// Stop may race with a pending tick; it wins.
			select {
			case <-r.stopCh:
				log.Debug("Countdown refresh stopped", "ticks", r.Ticks())
				return
			default:
			}
			r.publish()
		}
	}
}

func (r *Refresher) publish() {
	remaining := countdown.Compute(r.target, r.clock.Now())
	r.ticks.Add(1)
	log.Trace("Countdown tick", "remaining", remaining.String())
	r.publisher.Publish(remaining)
}

// Stop cancels the periodic callback and waits for the loop to exit. It is
// safe to call more than once and before Start, but not from inside Publish.
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
	if r.started.Load() {
		<-r.done
	}
}

// Done is closed once the loop has exited.
func (r *Refresher) Done() <-chan struct{} {
	return r.done
}

// Ticks returns how many snapshots have been published, including the initial one.
func (r *Refresher) Ticks() int64 {
	return r.ticks.Load()
}
