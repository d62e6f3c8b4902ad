package console

import (
	"time"

	"github.com/nodoze/nodoze/internal/session"
	"github.com/nodoze/nodoze/pkg/logger"
)

// LogObserver reports session lifecycle events through the logger instead of
// drawing bars. It backs headless and --quiet operation; per-tick progress
// is intentionally not logged.
type LogObserver struct {
	Log logger.Logger

	lastTarget time.Time
}

func (o *LogObserver) SessionStarted(s session.Session) {
	o.Log.Info("session %s started: duration %d minutes, ends %s",
		s.ID, int(s.Duration/time.Minute), s.End.Format(timeLayout))
}

func (o *LogObserver) Progress(int, time.Duration) {}

func (o *LogObserver) SessionEnded(at time.Time) {
	o.Log.Info("session ended: %s", at.Format(timeLayout))
}

// Waiting logs the target once per wait phase, not once per tick.
func (o *LogObserver) Waiting(target time.Time, _ time.Duration) {
	if target.Equal(o.lastTarget) {
		return
	}
	o.lastTarget = target
	o.Log.Info("next session starts at: %s", target.Format(timeLayout))
}

func (o *LogObserver) QuitRequested() {
	o.Log.Info("quit requested, exiting")
}

var _ session.Observer = (*LogObserver)(nil)
