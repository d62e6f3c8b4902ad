package schedule

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

// mustDays builds a DaySet or fails the test.
func mustDays(t *testing.T, csv string) DaySet {
	t.Helper()
	days, err := ParseDays(csv)
	if err != nil {
		t.Fatal(err)
	}
	return days
}

func mustWindow(t *testing.T, start, end string) Window {
	t.Helper()
	s, err := ParseClockTime(start)
	if err != nil {
		t.Fatal(err)
	}
	e, err := ParseClockTime(end)
	if err != nil {
		t.Fatal(err)
	}
	w, err := NewWindow(s, e)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestNext_Properties(t *testing.T) {
	w := mustWindow(t, "08:30", "10:00")
	days := mustDays(t, "Mon,Wed,Fri")
	rng := rand.New(rand.NewSource(42))

	// Sweep many "now" instants across two weeks.
	base := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC) // a Monday
	for i := 0; i < 14*24; i++ {
		now := base.Add(time.Duration(i) * time.Hour)
		got, err := Next(now, w, days, rng)
		if err != nil {
			t.Fatalf("Next(%v): %v", now, err)
		}
		if got.Before(now) {
			t.Fatalf("Next(%v) = %v is in the past", now, got)
		}
		if !days.Has(got) {
			t.Fatalf("Next(%v) = %v falls on disallowed weekday %v", now, got, got.Weekday())
		}
		tod := got.Sub(ClockTime(0).On(got))
		if tod < 8*time.Hour+30*time.Minute || tod > 10*time.Hour {
			t.Fatalf("Next(%v) = %v time-of-day outside window", now, got)
		}
	}
}

func TestNext_NowInsideWindowMayReturnNow(t *testing.T) {
	w := mustWindow(t, "08:30", "10:00")
	days := mustDays(t, "Mon")
	now := time.Date(2026, 8, 17, 9, 0, 0, 0, time.UTC) // Monday 09:00

	// Scenario A: result is a Monday in [09:00, 10:00] of the same day.
	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got, err := Next(now, w, days, rng)
		if err != nil {
			t.Fatal(err)
		}
		if got.Weekday() != time.Monday {
			t.Fatalf("got %v, want a Monday", got)
		}
		if got.Before(now) || got.After(time.Date(2026, 8, 17, 10, 0, 0, 0, time.UTC)) {
			t.Fatalf("got %v outside [now, 10:00]", got)
		}
	}
}

func TestNext_AtWindowEndReturnsNow(t *testing.T) {
	w := mustWindow(t, "08:30", "10:00")
	days := mustDays(t, "Mon")
	rng := rand.New(rand.NewSource(11))

	// now == window end: the feasible span collapses to the current
	// instant, so no off-by-one may exclude it.
	now := time.Date(2026, 8, 17, 10, 0, 0, 0, time.UTC)
	got, err := Next(now, w, days, rng)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(now) {
		t.Errorf("got %v, want now itself", got)
	}
}

func TestNext_ZeroWidthWindow(t *testing.T) {
	w := mustWindow(t, "09:00", "09:00")
	days := mustDays(t, "Mon")
	rng := rand.New(rand.NewSource(7))

	// Before the instant: exactly the instant, same day.
	now := time.Date(2026, 8, 17, 8, 0, 0, 0, time.UTC) // Monday 08:00
	got, err := Next(now, w, days, rng)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2026, 8, 17, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Past the instant: rolls to the next allowed day.
	now = time.Date(2026, 8, 17, 9, 0, 1, 0, time.UTC)
	got, err = Next(now, w, days, rng)
	if err != nil {
		t.Fatal(err)
	}
	want = time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want next Monday %v", got, want)
	}
}

func TestNext_SkipsTodayWhenWindowPassed(t *testing.T) {
	w := mustWindow(t, "08:30", "10:00")
	days := mustDays(t, "Mon,Tue")
	rng := rand.New(rand.NewSource(3))

	now := time.Date(2026, 8, 17, 11, 0, 0, 0, time.UTC) // Monday after window end
	got, err := Next(now, w, days, rng)
	if err != nil {
		t.Fatal(err)
	}
	if got.Weekday() != time.Tuesday || got.Day() != 18 {
		t.Errorf("got %v, want Tuesday Aug 18", got)
	}
}

func TestNext_NoAllowedDay(t *testing.T) {
	w := mustWindow(t, "08:30", "10:00")
	rng := rand.New(rand.NewSource(3))
	now := time.Date(2026, 8, 17, 9, 0, 0, 0, time.UTC)

	// An empty set never passes validation; Next still reports the
	// exhausted horizon loudly instead of looping forever.
	_, err := Next(now, w, DaySet{}, rng)
	if !errors.Is(err, ErrNoSlot) {
		t.Errorf("expected ErrNoSlot, got %v", err)
	}
}
