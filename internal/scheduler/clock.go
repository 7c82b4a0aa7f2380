package scheduler

import (
	"context"
	"time"
)

// Clock abstracts wall-clock reads and suspension so the wait loop can be
// driven deterministically in tests.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time
	// Sleep suspends the caller for d or until ctx is canceled,
	// returning the context error in the latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

// systemClock is the production Clock backed by the host clock.
type systemClock struct{}

// Now returns the current local time.
func (systemClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d unless the context is canceled first.
func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SystemClock is the default clock implementation.
//
//nolint:gochecknoglobals // Stateless singleton shared by all callers.
var SystemClock Clock = systemClock{}
