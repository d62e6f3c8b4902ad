package session

import (
	"context"
	"time"
)

// Waiter counts down the idle period between sessions.
type Waiter struct {
	Poller       KeyPoller
	Observer     Observer
	ProgressTick time.Duration
}

// Wait polls until target is reached, reporting the remaining time each
// progress tick. Only the quit command is honored while waiting; ending
// early has no meaning here. Returns OutcomeElapsed when target arrives.
func (w *Waiter) Wait(ctx context.Context, target time.Time) Outcome {
	nextProgress := time.Now()

	for {
		now := time.Now()
		if !now.Before(target) {
			break
		}

		select {
		case <-ctx.Done():
			w.Observer.QuitRequested()
			return OutcomeQuit
		default:
		}

		if key, ok := w.Poller.Poll(); ok && key == KeyQuit {
			w.Observer.QuitRequested()
			return OutcomeQuit
		}

		if !now.Before(nextProgress) {
			remaining := target.Sub(now)
			if remaining < 0 {
				remaining = 0
			}
			w.Observer.Waiting(target, remaining.Round(time.Second))
			nextProgress = now.Add(w.ProgressTick)
		}

		time.Sleep(waitTick)
	}

	return OutcomeElapsed
}
