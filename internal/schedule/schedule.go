package schedule

import (
	"errors"
	"math/rand"
	"time"
)

// horizonDays bounds the forward scan. A non-empty day set always recurs
// within 7 days, so exhausting the horizon indicates a logic bug rather
// than a user error.
const horizonDays = 14

var ErrNoSlot = errors.New("no valid session start within the scheduling horizon")

// Next returns the next session start: scanning forward from now's date,
// the first allowed weekday with a feasible window wins, and the start is
// drawn uniformly at integer-second resolution from the feasible part of
// that day's window. On day zero the lower bound is clamped to now, so a
// now already inside today's window may be returned as-is.
func Next(now time.Time, w Window, days DaySet, rng *rand.Rand) (time.Time, error) {
	for i := 0; i < horizonDays; i++ {
		day := now.AddDate(0, 0, i)
		if !days.Has(day) {
			continue
		}
		lower := w.Start.On(day)
		upper := w.End.On(day)
		if i == 0 && lower.Before(now) {
			lower = now
		}
		if lower.After(upper) {
			continue
		}
		span := int(upper.Sub(lower) / time.Second)
		return lower.Add(time.Duration(rng.Intn(span+1)) * time.Second), nil
	}
	return time.Time{}, ErrNoSlot
}
