package display

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/countdown/errors"
	"github.com/cloudposse/countdown/pkg/countdown"
	"github.com/cloudposse/countdown/pkg/decor"
	log "github.com/cloudposse/countdown/pkg/logger"
	"github.com/cloudposse/countdown/pkg/observable"
	"github.com/cloudposse/countdown/pkg/refresh"
)

// Options configures Run.
type Options struct {
	Target  countdown.Target
	Bubbles []decor.Bubble

	// Optional.
	Clock     countdown.Clock
	Interval  time.Duration
	Input     io.Reader
	Output    io.Writer
	AltScreen bool
}

// Run shows the countdown until the user quits or ctx is done. The refresh
// loop and the subscription are released on every return path.
func Run(ctx context.Context, opts Options) error {
	clock := opts.Clock
	if clock == nil {
		clock = countdown.RealClock{}
	}
	interval := opts.Interval
	if interval == 0 {
		interval = refresh.DefaultInterval
	}

	subject := observable.NewSubject()
	defer subject.Close()

	updates, unsubscribe := subject.Subscribe()
	defer unsubscribe()

	refresher := refresh.New(opts.Target, subject,
		refresh.WithClock(clock),
		refresh.WithInterval(interval),
	)
	if err := refresher.Start(ctx); err != nil {
		return err
	}
	defer func() {
		refresher.Stop()
		log.Debug("Countdown display closed", "ticks", refresher.Ticks())
	}()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	model := NewModel(updates, opts.Bubbles, clock)
	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		// Cancellation is a normal way out.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return errUtils.Build(errUtils.ErrDisplayFailed).
			WithCause(err).
			Err()
	}
	return nil
}
