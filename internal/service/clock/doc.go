// Package clock orchestrates a single alarm run: it loads settings,
// parses the target time, resolves the next occurrence, waits for it
// and fires the sound plus a desktop notification.
//
// Run's error wraps alarm.ErrInvalidFormat for unparseable time strings
// and the sound package sentinels for playback failures, so the CLI can
// map outcomes to exit codes with errors.Is.
package clock
