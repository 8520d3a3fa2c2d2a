package sleep

import (
	"math"

	"daykeep/pkg/timeutil"
)

// Duration computes the hours slept between a bedtime and a wake clock time,
// both "HH:MM" with no date part. A wake time earlier than the bedtime is
// taken to be the next calendar day (overnight sleep). Equal times yield a
// full 24.0 hour wrap rather than zero; kept as the documented behavior even
// though a literal same-minute sleep is almost certainly user error. The
// result is rounded to one decimal.
func Duration(bedtime, waketime string) (float64, error) {
	bed, err := timeutil.ParseClock(bedtime)
	if err != nil {
		return 0, err
	}
	wake, err := timeutil.ParseClock(waketime)
	if err != nil {
		return 0, err
	}

	minutes := wake - bed
	if minutes <= 0 {
		minutes += timeutil.MinutesPerDay
	}
	return math.Round(float64(minutes)/60*10) / 10, nil
}
