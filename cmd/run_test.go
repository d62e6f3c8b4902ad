package cmd

import (
	"errors"
	"testing"

	"github.com/nodoze/nodoze/internal/schedule"
)

// withFlagValues sets the bound flag variables for a test and restores the
// defaults afterwards.
func withFlagValues(t *testing.T, set func()) {
	t.Helper()
	t.Cleanup(func() {
		windowStart = DEF_WINDOW_START
		windowEnd = DEF_WINDOW_END
		daysOfWeek = DEF_DAYS_OF_WEEK
		minMinutes = DEF_MIN_MINUTES
		maxMinutes = DEF_MAX_MINUTES
		intervalSecs = DEF_INTERVAL_SECS
		progressTick = DEF_PROGRESS_TICK
	})
	windowStart = DEF_WINDOW_START
	windowEnd = DEF_WINDOW_END
	daysOfWeek = DEF_DAYS_OF_WEEK
	minMinutes = DEF_MIN_MINUTES
	maxMinutes = DEF_MAX_MINUTES
	intervalSecs = DEF_INTERVAL_SECS
	progressTick = DEF_PROGRESS_TICK
	set()
}

func TestBuildConfigDefaults(t *testing.T) {
	withFlagValues(t, func() {})

	cfg, err := buildConfig()
	if err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if cfg.Window.String() != "08:30:00-10:00:00" {
		t.Errorf("window = %s", cfg.Window)
	}
	if cfg.Days.String() != "Mon,Tue,Wed,Thu,Fri" {
		t.Errorf("days = %s", cfg.Days)
	}
	if cfg.Duration.Min != 240 || cfg.Duration.Max != 480 {
		t.Errorf("duration = %+v", cfg.Duration)
	}
	if cfg.IntervalSeconds != 60 {
		t.Errorf("interval = %d", cfg.IntervalSeconds)
	}
}

func TestBuildConfigFailures(t *testing.T) {
	cases := []struct {
		name string
		set  func()
		want error
	}{
		{
			name: "unparseable window start",
			set:  func() { windowStart = "morning" },
			want: schedule.ErrTimeFormat,
		},
		{
			name: "window end before start",
			set:  func() { windowStart = "10:00"; windowEnd = "08:30" },
			want: schedule.ErrWindowOrder,
		},
		{
			name: "invalid weekday list",
			set:  func() { daysOfWeek = "Noneday,Someday" },
			want: schedule.ErrNoDays,
		},
		{
			name: "max below min",
			set:  func() { minMinutes = 480; maxMinutes = 240 },
			want: schedule.ErrDurationBounds,
		},
		{
			name: "zero interval",
			set:  func() { intervalSecs = 0 },
			want: schedule.ErrInterval,
		},
		{
			name: "zero progress tick",
			set:  func() { progressTick = 0 },
			want: schedule.ErrProgressTick,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			withFlagValues(t, c.set)
			_, err := buildConfig()
			if !errors.Is(err, c.want) {
				t.Errorf("buildConfig() error = %v, want %v", err, c.want)
			}
		})
	}
}
