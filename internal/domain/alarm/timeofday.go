package alarm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidFormat is returned when an input string matches none of the
// accepted time formats. The wrapping error carries the original input.
var ErrInvalidFormat = errors.New("unrecognized time format")

// TimeOfDay is a wall-clock value with minute granularity.
// It carries no date and no location, and is immutable once parsed.
type TimeOfDay struct {
	// Hour is the hour of the day in the range 0-23.
	Hour int
	// Minute is the minute of the hour in the range 0-59.
	Minute int
}

// String formats the value as zero-padded 24-hour "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// matcher interprets a normalized candidate string against one template.
// It reports false when the candidate does not fully match.
type matcher func(s string) (TimeOfDay, bool)

// matchers are tried in priority order and the first full match wins.
// More structured templates come first so that inputs valid under several
// templates (e.g. "0700" vs "07:00") resolve deterministically.
//
//nolint:gochecknoglobals // The format list is fixed and read-only.
var matchers = []matcher{
	twelveHourMatcher("3:04 PM"),
	twelveHourMatcher("3:04PM"),
	layoutMatcher("15:04"),
	layoutMatcher("1504"),
	twelveHourMatcher("3 PM"),
	matchCompactMeridiem,
}

// Parse converts a free-form time string into a TimeOfDay.
//
// Accepted formats, in matching order:
//
//	7:00 AM    12-hour, colon, meridiem after a space
//	7:00AM     12-hour, colon, no space
//	07:00      24-hour with colon
//	0700       24-hour without colon
//	7 AM       hour only with meridiem
//	700 AM     hour and minutes without colon, with meridiem
//
// Leading and trailing whitespace is ignored and the meridiem is
// case-insensitive. Inputs matching no format fail with ErrInvalidFormat.
func Parse(input string) (TimeOfDay, error) {
	normalized := strings.ToUpper(strings.TrimSpace(input))

	for _, match := range matchers {
		if t, ok := match(normalized); ok {
			return t, nil
		}
	}

	return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidFormat, input)
}

// layoutMatcher builds a matcher that delegates to time.Parse.
// time.Parse rejects trailing garbage, which gives the required
// "full match or fall through" semantics for free.
func layoutMatcher(layout string) matcher {
	return func(s string) (TimeOfDay, bool) {
		t, err := time.Parse(layout, s)
		if err != nil {
			return TimeOfDay{}, false
		}

		return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, true
	}
}

// twelveHourMatcher wraps layoutMatcher for meridiem layouts.
// time.Parse admits hour 0 for the 12-hour field, which no clock face
// shows; such candidates are rejected before delegating.
func twelveHourMatcher(layout string) matcher {
	base := layoutMatcher(layout)

	return func(s string) (TimeOfDay, bool) {
		if leadingHourIsZero(s) {
			return TimeOfDay{}, false
		}

		return base(s)
	}
}

// leadingHourIsZero reports whether the digit run opening s denotes zero.
func leadingHourIsZero(s string) bool {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == 0 {
		return false
	}

	hour, err := strconv.Atoi(s[:end])

	return err == nil && hour == 0
}

// matchCompactMeridiem handles the "700 AM" / "1130 PM" template.
// time.Parse reads the 12-hour field greedily and cannot backtrack
// "700" into hour 7 plus minute 00, so the digit run is split by hand:
// the last two digits are the minutes, the rest is the hour.
func matchCompactMeridiem(s string) (TimeOfDay, bool) {
	digits, meridiem, found := strings.Cut(s, " ")
	if !found || (meridiem != "AM" && meridiem != "PM") {
		return TimeOfDay{}, false
	}

	if len(digits) < 3 || len(digits) > 4 || !isDigits(digits) {
		return TimeOfDay{}, false
	}

	split := len(digits) - 2

	hour, err := strconv.Atoi(digits[:split])
	if err != nil || hour < 1 || hour > 12 {
		return TimeOfDay{}, false
	}

	minute, err := strconv.Atoi(digits[split:])
	if err != nil || minute > 59 {
		return TimeOfDay{}, false
	}

	if meridiem == "PM" && hour != 12 {
		hour += 12
	}

	if meridiem == "AM" && hour == 12 {
		hour = 0
	}

	return TimeOfDay{Hour: hour, Minute: minute}, true
}

// isDigits reports whether s consists solely of ASCII digits.
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
