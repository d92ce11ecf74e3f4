package cache

import (
	"time"
)

// TimeUntilNextRefresh returns the duration from now until the next
// hour:00 in loc. Daily reference rates are published once a day, so cached
// responses stay valid until then.
func TimeUntilNextRefresh(now time.Time, loc *time.Location, hour int) time.Duration {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, loc)
	// If today's refresh has already passed, use tomorrow's
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}

	return next.Sub(now)
}

// RefreshTTL binds TimeUntilNextRefresh to the wall clock.
func RefreshTTL(loc *time.Location, hour int) func() time.Duration {
	return func() time.Duration {
		return TimeUntilNextRefresh(time.Now(), loc, hour)
	}
}
