// Package keepalive wraps the platform primitives that keep the system
// awake: a power assertion held for the process lifetime and a benign F13
// keypress emitted on demand.
package keepalive

// Sink is the platform keepalive primitive. Open acquires any held power
// assertion and Close releases it; both are scoped to the process lifetime.
// Pulse emits one idle-preventing keypress. A failed Pulse is returned to
// the caller and never aborts anything here; the assertion acquired by Open
// is unaffected by pulse failures.
type Sink interface {
	Open() error
	Pulse() error
	Close() error
}

// New returns the Sink for the platform this binary was built for.
func New() Sink {
	return newSink()
}

// NopSink holds no assertion and delivers no pulses. It backs platforms
// without a keepalive primitive and headless test setups.
type NopSink struct{}

func (NopSink) Open() error  { return nil }
func (NopSink) Pulse() error { return nil }
func (NopSink) Close() error { return nil }

var _ Sink = NopSink{}
