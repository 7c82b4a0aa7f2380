package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// fakeClock replays a scripted sequence of instants and counts sleeps.
type fakeClock struct {
	// instants are returned by successive Now calls; the last one repeats.
	instants []time.Time
	// reads counts Now invocations.
	reads int
	// sleeps counts Sleep invocations.
	sleeps int
	// cancelAfter cancels the context after that many sleeps (0 disables).
	cancelAfter int
	// cancel stops the context under test.
	cancel context.CancelFunc
}

// Now returns the next scripted instant.
func (c *fakeClock) Now() time.Time {
	index := c.reads
	if index >= len(c.instants) {
		index = len(c.instants) - 1
	}

	c.reads++

	return c.instants[index]
}

// Sleep advances the script without real delay, honoring cancellation.
func (c *fakeClock) Sleep(ctx context.Context, _ time.Duration) error {
	c.sleeps++

	if c.cancelAfter > 0 && c.sleeps >= c.cancelAfter {
		c.cancel()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// TestNextOccurrenceSameDay keeps the occurrence today when the target
// time is still ahead of now.
func TestNextOccurrenceSameDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.January, 1, 6, 0, 0, 0, time.UTC)
	target := alarm.TimeOfDay{Hour: 7, Minute: 0}

	got := NextOccurrence(target, now)
	require.Equal(t, time.Date(2024, time.January, 1, 7, 0, 0, 0, time.UTC), got)
	require.True(t, got.After(now))
}

// TestNextOccurrenceNextDay rolls the occurrence to tomorrow when the
// target time already passed today.
func TestNextOccurrenceNextDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
	target := alarm.TimeOfDay{Hour: 7, Minute: 0}

	got := NextOccurrence(target, now)
	require.Equal(t, time.Date(2024, time.January, 2, 7, 0, 0, 0, time.UTC), got)
}

// TestNextOccurrenceExactMatchRollsOver treats "now is exactly the target"
// as already passed, so the result stays strictly in the future.
func TestNextOccurrenceExactMatchRollsOver(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 15, 7, 0, 0, 0, time.UTC)
	target := alarm.TimeOfDay{Hour: 7, Minute: 0}

	got := NextOccurrence(target, now)
	require.Equal(t, time.Date(2024, time.June, 16, 7, 0, 0, 0, time.UTC), got)
	require.True(t, got.After(now))
}

// TestNextOccurrenceStrictlyFuture asserts the core invariant over a spread
// of reference instants and targets.
func TestNextOccurrenceStrictlyFuture(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	targets := []alarm.TimeOfDay{
		{Hour: 0, Minute: 0},
		{Hour: 7, Minute: 0},
		{Hour: 12, Minute: 30},
		{Hour: 23, Minute: 59},
	}

	for hourOffset := 0; hourOffset < 48; hourOffset += 5 {
		now := base.Add(time.Duration(hourOffset) * time.Hour)

		for _, target := range targets {
			got := NextOccurrence(target, now)
			require.True(t, got.After(now), "target %s, now %s", target, now)
			require.LessOrEqual(t, got.Sub(now), 24*time.Hour)
		}
	}
}

// TestNextOccurrenceRoundTrip re-parses the formatted result and expects
// the original target back.
func TestNextOccurrenceRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
	target := alarm.TimeOfDay{Hour: 19, Minute: 45}

	got := NextOccurrence(target, now)

	reparsed, err := alarm.Parse(got.Format("15:04"))
	require.NoError(t, err)
	require.Equal(t, target, reparsed)
}

// TestWaitUntilTriggersOnceAfterPolls drives the loop with a scripted clock
// that reaches the target on the third read.
func TestWaitUntilTriggersOnceAfterPolls(t *testing.T) {
	t.Parallel()

	target := time.Date(2024, time.January, 1, 7, 0, 0, 0, time.UTC)
	clock := &fakeClock{
		instants: []time.Time{
			target.Add(-2 * time.Second),
			target.Add(-time.Second),
			target,
		},
	}

	triggered := 0
	err := WaitUntil(context.Background(), target, clock, time.Second, func() error {
		triggered++
		return nil
	})

	require.NoError(t, err)
	require.Equal(t, 1, triggered)
	require.Equal(t, 3, clock.reads)
	require.Equal(t, 2, clock.sleeps)
}

// TestWaitUntilImmediateTarget fires without sleeping when the target is
// already due on the first read.
func TestWaitUntilImmediateTarget(t *testing.T) {
	t.Parallel()

	target := time.Date(2024, time.January, 1, 7, 0, 0, 0, time.UTC)
	clock := &fakeClock{
		instants: []time.Time{target.Add(time.Minute)},
	}

	triggered := 0
	err := WaitUntil(context.Background(), target, clock, time.Second, func() error {
		triggered++
		return nil
	})

	require.NoError(t, err)
	require.Equal(t, 1, triggered)
	require.Zero(t, clock.sleeps)
}

// TestWaitUntilCancellation returns the context error and never invokes
// the trigger when canceled before the target instant.
func TestWaitUntilCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	target := time.Date(2024, time.January, 1, 7, 0, 0, 0, time.UTC)
	clock := &fakeClock{
		instants:    []time.Time{target.Add(-time.Hour)},
		cancelAfter: 2,
		cancel:      cancel,
	}

	triggered := false
	err := WaitUntil(ctx, target, clock, time.Second, func() error {
		triggered = true
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	require.False(t, triggered)
	require.Equal(t, 2, clock.sleeps)
}

// TestWaitUntilPropagatesTriggerError hands the trigger's failure to the
// caller unchanged; the scheduler itself never retries.
func TestWaitUntilPropagatesTriggerError(t *testing.T) {
	t.Parallel()

	target := time.Date(2024, time.January, 1, 7, 0, 0, 0, time.UTC)
	clock := &fakeClock{
		instants: []time.Time{target},
	}

	wantErr := errors.New("playback failed")
	err := WaitUntil(context.Background(), target, clock, time.Second, func() error {
		return wantErr
	})

	require.ErrorIs(t, err, wantErr)
}
