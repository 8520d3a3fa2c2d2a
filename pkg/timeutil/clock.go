// Package timeutil parses the small time formats the trackers accept: bare
// HH:MM clock times and human-friendly interval strings like "1w" or "90m".
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinutesPerDay is the length of one calendar day in minutes.
const MinutesPerDay = 24 * 60

var clockPattern = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2})$`)

// ParseClock parses a 24-hour "HH:MM" clock time and returns minutes past
// midnight. No date component is involved.
func ParseClock(v string) (int, error) {
	matches := clockPattern.FindStringSubmatch(strings.TrimSpace(v))
	if matches == nil {
		return 0, fmt.Errorf("timeutil: invalid clock time %q, want HH:MM", v)
	}
	hours, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("timeutil: invalid clock hours %q: %w", v, err)
	}
	minutes, err := strconv.Atoi(matches[2])
	if err != nil {
		return 0, fmt.Errorf("timeutil: invalid clock minutes %q: %w", v, err)
	}
	if hours > 23 {
		return 0, fmt.Errorf("timeutil: clock hours out of range in %q", v)
	}
	if minutes > 59 {
		return 0, fmt.Errorf("timeutil: clock minutes out of range in %q", v)
	}
	return hours*60 + minutes, nil
}

// FormatClock renders minutes past midnight as "HH:MM".
func FormatClock(minutes int) string {
	minutes %= MinutesPerDay
	if minutes < 0 {
		minutes += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
