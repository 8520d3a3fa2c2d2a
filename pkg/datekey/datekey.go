// Package datekey derives the calendar keys that bucket tracker records.
// A key is the local calendar date rendered as YYYY-MM-DD; week keys are the
// key of the Monday beginning the week containing a given moment.
package datekey

import (
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// Key identifies one local calendar day, rendered YYYY-MM-DD.
type Key string

// For renders the key for the local calendar date of t. The year, month, and
// day fields are taken from t's own location rather than converting through
// UTC, so a record saved at 23:59 local stays on its local day even when UTC
// has already rolled over.
func For(t time.Time) Key {
	y, m, d := t.Date()
	return Key(fmt.Sprintf("%04d-%02d-%02d", y, int(m), d))
}

// Parse returns local midnight of the day the key names.
func Parse(k Key) (time.Time, error) {
	t, err := time.ParseInLocation(layoutISO, string(k), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("datekey: parse %q: %w", k, err)
	}
	return t, nil
}

// WeekStart returns midnight of the most recent Monday at or before t, in t's
// location. Sunday sits six days after its week's Monday.
func WeekStart(t time.Time) time.Time {
	back := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-back, 0, 0, 0, 0, t.Location())
}

// WeekFor returns the key of the Monday anchoring the week containing t. The
// result is identical for every moment in [Monday 00:00, next Monday 00:00).
func WeekFor(t time.Time) Key {
	return For(WeekStart(t))
}

// AddDays returns the key n days after k.
func (k Key) AddDays(n int) Key {
	t, err := Parse(k)
	if err != nil {
		return k
	}
	return For(t.AddDate(0, 0, n))
}

// Time returns local midnight for the key, or the zero time when malformed.
func (k Key) Time() time.Time {
	t, err := Parse(k)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Weekday reports the day of the week the key falls on.
func (k Key) Weekday() time.Weekday {
	return k.Time().Weekday()
}
