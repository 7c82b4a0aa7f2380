// Package scheduler resolves when an alarm is due and waits for it.
//
// NextOccurrence combines a TimeOfDay with a reference instant, rolling
// over to the next calendar day when the combination is not in the future.
// WaitUntil is a cancellable polling loop over an injectable Clock, which
// keeps the wait deterministic under test.
package scheduler
