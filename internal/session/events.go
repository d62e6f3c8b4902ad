package session

import "time"

// Observer receives the structured events emitted by the runner and the wait
// loop. Rendering (progress bar, log lines) is the implementation's concern.
type Observer interface {
	// SessionStarted reports a new session with its drawn duration.
	SessionStarted(s Session)

	// Progress reports session completion percent and remaining time.
	Progress(percent int, remaining time.Duration)

	// SessionEnded reports that the session finished, naturally or early.
	SessionEnded(at time.Time)

	// Waiting reports the countdown toward the next scheduled start.
	Waiting(target time.Time, remaining time.Duration)

	// QuitRequested reports that the user asked to terminate the process.
	QuitRequested()
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) SessionStarted(Session)           {}
func (NopObserver) Progress(int, time.Duration)      {}
func (NopObserver) SessionEnded(time.Time)           {}
func (NopObserver) Waiting(time.Time, time.Duration) {}
func (NopObserver) QuitRequested()                   {}

// Recorder implements Observer for testing purposes.
// It records all events for verification in tests.
type Recorder struct {
	Started  []Session
	Percents []int
	Ended    []time.Time
	Waits    []time.Duration
	Quits    int
}

func (r *Recorder) SessionStarted(s Session) {
	r.Started = append(r.Started, s)
}

func (r *Recorder) Progress(percent int, _ time.Duration) {
	r.Percents = append(r.Percents, percent)
}

func (r *Recorder) SessionEnded(at time.Time) {
	r.Ended = append(r.Ended, at)
}

func (r *Recorder) Waiting(_ time.Time, remaining time.Duration) {
	r.Waits = append(r.Waits, remaining)
}

func (r *Recorder) QuitRequested() {
	r.Quits++
}

var (
	_ Observer = NopObserver{}
	_ Observer = (*Recorder)(nil)
)
