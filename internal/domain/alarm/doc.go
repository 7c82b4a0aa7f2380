// Package alarm contains core domain types for the alarm clock.
//
// It defines TimeOfDay (a wall-clock value with minute granularity) and
// Parse, which interprets free-form user input against a fixed, ordered
// list of accepted time formats.
package alarm
