package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// MinutesPerDay is the number of minutes in one wall-clock day.
const MinutesPerDay = 1440

var timeRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseError reports a time string that does not match "H:MM" / "HH:MM"
// or falls outside a single day.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid time %q: want HH:MM", e.Input)
}

// TimeToMinutes converts "H:MM" or "HH:MM" to minutes since midnight.
// Malformed input, hours past 23, or minutes past 59 return a *ParseError;
// callers never receive a band computed from garbage input.
func TimeToMinutes(s string) (int, error) {
	matches := timeRe.FindStringSubmatch(s)
	if matches == nil {
		return 0, &ParseError{Input: s}
	}

	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	if hour > 23 || minute > 59 {
		return 0, &ParseError{Input: s}
	}

	return hour*60 + minute, nil
}

// MinutesToTime is the inverse of TimeToMinutes, always zero-padded.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinutesToPixels scales a minute offset to vertical pixels.
// pixelsPerMinute is hourHeight/60.
func MinutesToPixels(minutes int, pixelsPerMinute float64) float64 {
	return float64(minutes) * pixelsPerMinute
}

// FormatHourLabel renders a 0-23 hour as a 12-hour gutter label.
// Hours 0 and 12 both render as "12".
func FormatHourLabel(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d %s", display, suffix)
}

// NowMinutes samples the system clock and returns minutes since local
// midnight.
func NowMinutes() int {
	now := time.Now()
	return now.Hour()*60 + now.Minute()
}
