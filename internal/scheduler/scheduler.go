package scheduler

import (
	"time"

	"codeberg.org/mutker/argonctl/internal/logger"
)

// Scheduler decides whether a control tick is due, measuring elapsed time
// from the previous due tick rather than a fixed origin. A late poll
// therefore produces one tick, not a burst of catch-up ticks.
type Scheduler struct {
	prev     time.Time
	interval time.Duration
}

// New creates a scheduler whose first tick falls interval after now
func New(now time.Time, interval time.Duration) *Scheduler {
	return &Scheduler{
		prev:     now,
		interval: interval,
	}
}

// Update reports whether the interval has been reached at now. On a due
// tick the reference point advances to now. If the clock is observed to
// move backwards the scheduler resets its reference point and reports not
// due, so a clock regression can never leave it permanently stuck.
func (s *Scheduler) Update(now time.Time) bool {
	elapsed := now.Sub(s.prev)
	if elapsed < 0 {
		logger.Warn().
			Time("previous", s.prev).
			Time("now", now).
			Msg("Scheduler time went backwards")
		s.prev = now

		return false
	}

	if elapsed >= s.interval {
		s.prev = now

		return true
	}

	return false
}
