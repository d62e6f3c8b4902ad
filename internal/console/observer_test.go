package console

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nodoze/nodoze/internal/session"
	"github.com/nodoze/nodoze/pkg/logger"
)

func TestLogObserver_SessionLifecycle(t *testing.T) {
	log := logger.NewMockLogger()
	obs := &LogObserver{Log: log}

	start := time.Date(2026, 8, 17, 9, 12, 0, 0, time.UTC)
	obs.SessionStarted(session.Session{
		ID:       uuid.New(),
		Start:    start,
		Duration: 240 * time.Minute,
		End:      start.Add(240 * time.Minute),
		Interval: time.Minute,
	})
	obs.SessionEnded(start.Add(240 * time.Minute))
	obs.QuitRequested()

	if len(log.InfoCalls) != 3 {
		t.Fatalf("info calls = %d, want 3", len(log.InfoCalls))
	}
	if !strings.Contains(log.InfoCalls[0], "240 minutes") {
		t.Errorf("session-started log missing duration: %s", log.InfoCalls[0])
	}
	if !strings.Contains(log.InfoCalls[1], "session ended") {
		t.Errorf("unexpected session-ended log: %s", log.InfoCalls[1])
	}
}

func TestLogObserver_WaitingLogsTargetOnce(t *testing.T) {
	log := logger.NewMockLogger()
	obs := &LogObserver{Log: log}

	target := time.Date(2026, 8, 18, 8, 45, 0, 0, time.UTC)
	obs.Waiting(target, 2*time.Hour)
	obs.Waiting(target, 2*time.Hour-time.Second)
	obs.Waiting(target, 2*time.Hour-2*time.Second)

	if len(log.InfoCalls) != 1 {
		t.Fatalf("info calls = %d, want a single line per wait target", len(log.InfoCalls))
	}

	// A new target after a session means a new wait phase.
	obs.Waiting(target.AddDate(0, 0, 1), time.Hour)
	if len(log.InfoCalls) != 2 {
		t.Fatalf("info calls = %d after new target, want 2", len(log.InfoCalls))
	}
}

func TestLogObserver_ProgressIsSilent(t *testing.T) {
	log := logger.NewMockLogger()
	obs := &LogObserver{Log: log}

	for i := 0; i <= 100; i++ {
		obs.Progress(i, time.Duration(100-i)*time.Second)
	}
	if len(log.InfoCalls) != 0 {
		t.Errorf("progress produced %d log lines, want none", len(log.InfoCalls))
	}
}
