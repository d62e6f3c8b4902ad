package schedule

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrTimeFormat     = errors.New("invalid time of day, use HH:MM or HH:MM:SS")
	ErrWindowOrder    = errors.New("window end must not precede window start (windows do not cross midnight)")
	ErrNoDays         = errors.New("days of week is empty or invalid, use Mon,Tue,Wed,Thu,Fri,Sat,Sun")
	ErrDurationBounds = errors.New("duration minutes must be positive and max must be >= min")
	ErrInterval       = errors.New("interval seconds must be positive")
	ErrProgressTick   = errors.New("progress tick seconds must be positive")
)

// ClockTime is a time of day stored as whole seconds from midnight.
type ClockTime int

// ParseClockTime parses "H:MM", "HH:MM" or "HH:MM:SS".
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrTimeFormat, s)
	}
	var hms [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("%w: %q", ErrTimeFormat, s)
		}
		hms[i] = v
	}
	if hms[0] > 23 || hms[1] > 59 || hms[2] > 59 {
		return 0, fmt.Errorf("%w: %q", ErrTimeFormat, s)
	}
	return ClockTime(hms[0]*3600 + hms[1]*60 + hms[2]), nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(c)/3600, int(c)%3600/60, int(c)%60)
}

// On returns the absolute instant of this clock time on the given day,
// in that day's location.
func (c ClockTime) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, int(c), 0, day.Location())
}

// Window is the daily clock-time range within which a session may start.
// A zero-width window (End == Start) is valid and yields exactly one instant.
type Window struct {
	Start ClockTime
	End   ClockTime
}

// NewWindow builds a Window, rejecting end-before-start orderings.
func NewWindow(start, end ClockTime) (Window, error) {
	if end < start {
		return Window{}, ErrWindowOrder
	}
	return Window{Start: start, End: end}, nil
}

func (w Window) String() string {
	return fmt.Sprintf("%s-%s", w.Start, w.End)
}

// dayOrder fixes the canonical output order of a DaySet.
var dayOrder = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var dayAbbrevs = map[string]string{
	"mon": "Mon", "tue": "Tue", "wed": "Wed", "thu": "Thu",
	"fri": "Fri", "sat": "Sat", "sun": "Sun",
}

// DaySet is the weekday allow-list, keyed by canonical 3-letter abbreviation.
type DaySet map[string]struct{}

// ParseDays normalizes a comma-separated weekday list. Matching is
// case-insensitive and tolerant of full names ("monday" -> "Mon");
// unrecognized tokens are dropped. An empty result is an error.
func ParseDays(csv string) (DaySet, error) {
	set := make(DaySet)
	for _, p := range strings.Split(csv, ",") {
		key := strings.ToLower(strings.TrimSpace(p))
		if len(key) > 3 {
			key = key[:3]
		}
		if day, ok := dayAbbrevs[key]; ok {
			set[day] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil, ErrNoDays
	}
	return set, nil
}

// Has reports whether t's weekday is in the set.
func (d DaySet) Has(t time.Time) bool {
	_, ok := d[t.Weekday().String()[:3]]
	return ok
}

func (d DaySet) String() string {
	days := make([]string, 0, len(d))
	for day := range d {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return indexOf(dayOrder, days[i]) < indexOf(dayOrder, days[j])
	})
	return strings.Join(days, ",")
}

func indexOf(s []string, v string) int {
	for i, e := range s {
		if e == v {
			return i
		}
	}
	return len(s)
}

// DurationRange bounds the randomized session duration in whole minutes.
type DurationRange struct {
	Min int
	Max int
}

// Draw picks a uniformly random duration in [Min,Max] minutes inclusive.
func (r DurationRange) Draw(rng *rand.Rand) time.Duration {
	minutes := r.Min
	if r.Max > r.Min {
		minutes += rng.Intn(r.Max - r.Min + 1)
	}
	return time.Duration(minutes) * time.Minute
}

// Config is the validated scheduling configuration. It is immutable after
// Validate passes; all checks run once at startup and any failure is fatal.
type Config struct {
	Window              Window
	Days                DaySet
	Duration            DurationRange
	IntervalSeconds     int
	ProgressTickSeconds int
}

// Validate checks every configuration invariant. It is pure: validating the
// same Config twice yields the same result.
func (c Config) Validate() error {
	if c.Window.End < c.Window.Start {
		return ErrWindowOrder
	}
	if len(c.Days) == 0 {
		return ErrNoDays
	}
	if c.Duration.Min <= 0 || c.Duration.Max <= 0 || c.Duration.Max < c.Duration.Min {
		return ErrDurationBounds
	}
	if c.IntervalSeconds <= 0 {
		return ErrInterval
	}
	if c.ProgressTickSeconds <= 0 {
		return ErrProgressTick
	}
	return nil
}
