// Package sleep models the sleep tracker: one log per calendar day inside a
// Monday-aligned week, reset destructively when a new week begins.
package sleep

import (
	"errors"
	"sort"

	"daykeep/pkg/datekey"
	"daykeep/pkg/week"
)

// Log is the sleep record for one calendar day.
type Log struct {
	Date     datekey.Key `json:"date"`
	Bedtime  string      `json:"bedtime"`
	Waketime string      `json:"waketime"`
	Hours    float64     `json:"hours"`
}

// New builds a log for the given day, computing the slept hours from the
// clock times.
func New(day datekey.Key, bedtime, waketime string) (Log, error) {
	if day == "" {
		return Log{}, errors.New("sleep: date required")
	}
	hours, err := Duration(bedtime, waketime)
	if err != nil {
		return Log{}, err
	}
	return Log{Date: day, Bedtime: bedtime, Waketime: waketime, Hours: hours}, nil
}

// Upsert inserts l into logs, replacing any existing log for the same day so
// the collection keeps exactly one record per calendar key. The result is
// sorted by date.
func Upsert(logs []Log, l Log) []Log {
	out := make([]Log, 0, len(logs)+1)
	for _, existing := range logs {
		if existing.Date != l.Date {
			out = append(out, existing)
		}
	}
	out = append(out, l)
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Find returns the log for day, if present.
func Find(logs []Log, day datekey.Key) (Log, bool) {
	for _, l := range logs {
		if l.Date == day {
			return l, true
		}
	}
	return Log{}, false
}

// WeekSeries aggregates slept hours over the window, one slot per day
// Mon..Sun. Logs outside the window are ignored.
func WeekSeries(logs []Log, w week.Window) week.Series {
	var s week.Series
	keys := w.Keys()
	for slot, key := range keys {
		if l, ok := Find(logs, key); ok {
			s.Set(slot, l.Hours)
		}
	}
	return s
}
