package session

import (
	"context"
	"math/rand"
	"time"

	"github.com/nodoze/nodoze/internal/schedule"
	"github.com/nodoze/nodoze/pkg/logger"
)

// Runner executes keepalive sessions. One Run call owns exactly one Session
// value for its duration; there is no shared session state.
type Runner struct {
	Bounds       schedule.DurationRange
	Interval     time.Duration
	Sink         Pulser
	Poller       KeyPoller
	Observer     Observer
	Log          logger.Logger
	Rand         *rand.Rand
	ProgressTick time.Duration
}

// Run draws a new session and drives it to completion. It returns
// OutcomeElapsed on natural expiry, OutcomeEnded if the user ended the
// session early, and OutcomeQuit if the user (or a signal, via ctx) asked
// to terminate.
func (r *Runner) Run(ctx context.Context) Outcome {
	return r.run(ctx, NewSession(r.Bounds, r.Interval, r.Rand))
}

func (r *Runner) run(ctx context.Context, s Session) Outcome {
	r.Observer.SessionStarted(s)

	total := s.Duration
	nextPulse := s.Start
	nextProgress := s.Start
	out := OutcomeElapsed

loop:
	for {
		now := time.Now()
		if !now.Before(s.End) {
			break
		}

		select {
		case <-ctx.Done():
			r.Observer.QuitRequested()
			return OutcomeQuit
		default:
		}

		if key, ok := r.Poller.Poll(); ok {
			switch key {
			case KeyQuit:
				r.Observer.QuitRequested()
				return OutcomeQuit
			case KeyEnd:
				out = OutcomeEnded
				break loop
			}
		}

		// Pulses follow their own cadence, independent of the faster poll
		// tick: due instants advance by whole intervals from session start.
		if !now.Before(nextPulse) {
			if err := r.Sink.Pulse(); err != nil {
				r.Log.Warning("keepalive pulse failed: %s", err.Error())
			}
			nextPulse = nextPulse.Add(s.Interval)
		}

		if !now.Before(nextProgress) {
			elapsed := now.Sub(s.Start)
			if elapsed < 0 {
				elapsed = 0
			}
			if elapsed > total {
				elapsed = total
			}
			percent := 0
			if total > 0 {
				percent = int(elapsed * 100 / total)
			}
			remaining := s.End.Sub(now)
			if remaining < 0 {
				remaining = 0
			}
			r.Observer.Progress(percent, remaining.Round(time.Second))
			nextProgress = now.Add(r.ProgressTick)
		}

		time.Sleep(runTick)
	}

	r.Observer.SessionEnded(time.Now())
	return out
}
