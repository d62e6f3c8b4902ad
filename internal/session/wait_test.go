package session

import (
	"context"
	"testing"
	"time"
)

func newTestWaiter(poller KeyPoller, rec *Recorder) *Waiter {
	return &Waiter{
		Poller:       poller,
		Observer:     rec,
		ProgressTick: 100 * time.Millisecond,
	}
}

func TestWaiter_ReachesTarget(t *testing.T) {
	rec := &Recorder{}
	w := newTestWaiter(&scriptedPoller{}, rec)

	target := time.Now().Add(600 * time.Millisecond)
	out := w.Wait(context.Background(), target)

	if out != OutcomeElapsed {
		t.Fatalf("outcome = %v, want OutcomeElapsed", out)
	}
	if time.Now().Before(target) {
		t.Error("returned before target")
	}
	if len(rec.Waits) == 0 {
		t.Error("no waiting events emitted")
	}
	for _, remaining := range rec.Waits {
		if remaining < 0 {
			t.Errorf("negative remaining %v", remaining)
		}
	}
}

func TestWaiter_PastTargetReturnsImmediately(t *testing.T) {
	rec := &Recorder{}
	w := newTestWaiter(&scriptedPoller{}, rec)

	begin := time.Now()
	out := w.Wait(context.Background(), begin.Add(-time.Minute))

	if out != OutcomeElapsed {
		t.Fatalf("outcome = %v, want OutcomeElapsed", out)
	}
	if elapsed := time.Since(begin); elapsed > 200*time.Millisecond {
		t.Errorf("took %v for an already-reached target", elapsed)
	}
}

func TestWaiter_Quit(t *testing.T) {
	rec := &Recorder{}
	w := newTestWaiter(&scriptedPoller{keys: []byte{KeyQuit}}, rec)

	begin := time.Now()
	out := w.Wait(context.Background(), begin.Add(time.Hour))

	if out != OutcomeQuit {
		t.Fatalf("outcome = %v, want OutcomeQuit", out)
	}
	if elapsed := time.Since(begin); elapsed > 2*time.Second {
		t.Errorf("quit took %v, want within one tick", elapsed)
	}
	if rec.Quits != 1 {
		t.Errorf("quit events = %d, want 1", rec.Quits)
	}
}

func TestWaiter_EndKeyIgnored(t *testing.T) {
	rec := &Recorder{}
	w := newTestWaiter(&scriptedPoller{keys: []byte{KeyEnd}}, rec)

	out := w.Wait(context.Background(), time.Now().Add(300*time.Millisecond))

	if out != OutcomeElapsed {
		t.Fatalf("outcome = %v, want OutcomeElapsed (end-early has no meaning while waiting)", out)
	}
	if rec.Quits != 0 {
		t.Errorf("unexpected quit")
	}
}

func TestWaiter_ContextCancelQuits(t *testing.T) {
	rec := &Recorder{}
	w := newTestWaiter(&scriptedPoller{}, rec)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := w.Wait(ctx, time.Now().Add(time.Hour))

	if out != OutcomeQuit {
		t.Fatalf("outcome = %v, want OutcomeQuit", out)
	}
}
