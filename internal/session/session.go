package session

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/nodoze/nodoze/internal/schedule"
)

// Single-character commands accepted while a session or wait is active.
const (
	KeyQuit byte = 'Q' // terminate the process
	KeyEnd  byte = 'E' // end the current session early
)

// Poll loop granularity: fast while a session is active so a keypress is
// handled within a quarter second, coarse while idle.
const (
	runTick  = 250 * time.Millisecond
	waitTick = time.Second
)

// Outcome is how a session or wait phase finished.
type Outcome int

const (
	// OutcomeElapsed means the phase ran to its natural end.
	OutcomeElapsed Outcome = iota
	// OutcomeEnded means the user ended the session early; the cycle continues.
	OutcomeEnded
	// OutcomeQuit means the user asked to terminate the process.
	OutcomeQuit
)

// Session is one bounded-duration keepalive period. It is created when the
// session begins and discarded when it ends; nothing persists it.
type Session struct {
	ID       uuid.UUID
	Start    time.Time
	Duration time.Duration
	End      time.Time
	Interval time.Duration
}

// NewSession draws a random duration from bounds and stamps the session as
// starting now.
func NewSession(bounds schedule.DurationRange, interval time.Duration, rng *rand.Rand) Session {
	start := time.Now()
	duration := bounds.Draw(rng)
	return Session{
		ID:       uuid.New(),
		Start:    start,
		Duration: duration,
		End:      start.Add(duration),
		Interval: interval,
	}
}

// Pulser delivers one keepalive pulse. Delivery failure is non-fatal and
// stays the caller's concern.
type Pulser interface {
	Pulse() error
}

// KeyPoller reports a pending single-character command without blocking.
type KeyPoller interface {
	Poll() (byte, bool)
}
