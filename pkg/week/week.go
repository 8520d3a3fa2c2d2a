// Package week reconstructs Monday-aligned 7-day windows of per-day records
// for display and statistics.
package week

import (
	"time"

	"daykeep/pkg/datekey"
)

// Days is the number of slots in one aggregation window.
const Days = 7

// Window is a Monday-anchored 7-day span identified by its week key.
type Window struct {
	Start datekey.Key
}

// For returns the window containing t.
func For(t time.Time) Window {
	return Window{Start: datekey.WeekFor(t)}
}

// Keys returns the calendar keys of the window's days, Mon..Sun, always
// exactly seven regardless of what any store contains.
func (w Window) Keys() [Days]datekey.Key {
	var keys [Days]datekey.Key
	for i := range keys {
		keys[i] = w.Start.AddDays(i)
	}
	return keys
}

// Contains reports whether day falls inside the window.
func (w Window) Contains(day datekey.Key) bool {
	for _, k := range w.Keys() {
		if k == day {
			return true
		}
	}
	return false
}

// Labels returns the short weekday labels in slot order.
func Labels() [Days]string {
	return [Days]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
}

// Series is one numeric field aggregated over a window: seven values in
// Mon..Sun order with presence flags for the slots that had a stored record.
type Series struct {
	Values  [Days]float64
	Present [Days]bool
}

// Set records a value for the given slot.
func (s *Series) Set(slot int, v float64) {
	if slot < 0 || slot >= Days {
		return
	}
	s.Values[slot] = v
	s.Present[slot] = true
}

// Count returns the number of populated slots.
func (s Series) Count() int {
	n := 0
	for _, p := range s.Present {
		if p {
			n++
		}
	}
	return n
}

// Sum totals the populated slots.
func (s Series) Sum() float64 {
	total := 0.0
	for i, p := range s.Present {
		if p {
			total += s.Values[i]
		}
	}
	return total
}

// Average returns the mean over populated slots, or zero when none are.
func (s Series) Average() float64 {
	n := s.Count()
	if n == 0 {
		return 0
	}
	return s.Sum() / float64(n)
}

// Min returns the smallest value across all slots, treating absent as zero.
func (s Series) Min() float64 {
	min := s.slotValue(0)
	for i := 1; i < Days; i++ {
		if v := s.slotValue(i); v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest value across all slots, treating absent as zero.
func (s Series) Max() float64 {
	max := s.slotValue(0)
	for i := 1; i < Days; i++ {
		if v := s.slotValue(i); v > max {
			max = v
		}
	}
	return max
}

func (s Series) slotValue(i int) float64 {
	if !s.Present[i] {
		return 0
	}
	return s.Values[i]
}
