package scheduler

import (
	"context"
	"time"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// DefaultPollInterval is how often the wait loop re-reads the clock.
// One second keeps worst-case lateness around the interval length
// without busy-looping.
const DefaultPollInterval = time.Second

// NextOccurrence resolves the next absolute instant at which target occurs,
// relative to now and in now's location. When combining target with now's
// date yields an instant at or before now, the occurrence moves to the next
// calendar day. The result is always strictly after now.
func NextOccurrence(target alarm.TimeOfDay, now time.Time) time.Time {
	candidate := time.Date(
		now.Year(), now.Month(), now.Day(),
		target.Hour, target.Minute, 0, 0,
		now.Location(),
	)

	if !candidate.After(now) {
		// Calendar-day arithmetic so the wall-clock time survives
		// daylight-saving transitions.
		candidate = candidate.AddDate(0, 0, 1)
	}

	return candidate
}

// WaitUntil blocks until clock reaches target, then invokes trigger exactly
// once and returns its error unmodified; the alarm counts as fired even when
// trigger fails and nothing is retried. When the context is canceled before
// the target instant, WaitUntil returns the context error without invoking
// trigger.
func WaitUntil(
	ctx context.Context,
	target time.Time,
	clock Clock,
	interval time.Duration,
	trigger func() error,
) error {
	if clock == nil {
		clock = SystemClock
	}

	if interval <= 0 {
		interval = DefaultPollInterval
	}

	for clock.Now().Before(target) {
		if err := clock.Sleep(ctx, interval); err != nil {
			return err
		}
	}

	return trigger()
}
