package week

import (
	"testing"
	"time"

	"daykeep/pkg/datekey"
)

func TestKeysAlwaysSevenMondayFirst(t *testing.T) {
	// Any moment mid-week resolves to the same Mon..Sun window.
	wed := time.Date(2026, time.September, 2, 15, 30, 0, 0, time.Local)
	w := For(wed)

	keys := w.Keys()
	if len(keys) != 7 {
		t.Fatalf("expected 7 slots, got %d", len(keys))
	}
	if keys[0] != datekey.Key("2026-08-31") {
		t.Fatalf("expected window to start Monday 2026-08-31, got %s", keys[0])
	}
	for i, k := range keys {
		want := time.Weekday((int(time.Monday) + i) % 7)
		if got := k.Weekday(); got != want {
			t.Fatalf("slot %d: expected %s, got %s", i, want, got)
		}
	}
	if keys[6] != datekey.Key("2026-09-06") {
		t.Fatalf("expected window to end Sunday 2026-09-06, got %s", keys[6])
	}
}

func TestContains(t *testing.T) {
	w := Window{Start: datekey.Key("2026-08-31")}
	if !w.Contains(datekey.Key("2026-09-06")) {
		t.Fatal("expected Sunday to be inside the window")
	}
	if w.Contains(datekey.Key("2026-09-07")) {
		t.Fatal("expected following Monday to be outside the window")
	}
}

func TestSeriesStats(t *testing.T) {
	var s Series
	s.Set(0, 8.0)
	s.Set(1, 6.5)
	s.Set(4, 9.5)

	if got := s.Count(); got != 3 {
		t.Fatalf("expected count 3, got %d", got)
	}
	if got := s.Sum(); got != 24.0 {
		t.Fatalf("expected sum 24.0, got %v", got)
	}
	if got := s.Average(); got != 8.0 {
		t.Fatalf("expected average 8.0, got %v", got)
	}
	// Absent slots count as zero for min/max.
	if got := s.Min(); got != 0 {
		t.Fatalf("expected min 0 with absent slots, got %v", got)
	}
	if got := s.Max(); got != 9.5 {
		t.Fatalf("expected max 9.5, got %v", got)
	}
}

func TestSeriesEmpty(t *testing.T) {
	var s Series
	if got := s.Count(); got != 0 {
		t.Fatalf("expected empty count, got %d", got)
	}
	if got := s.Average(); got != 0 {
		t.Fatalf("expected zero average on empty series, got %v", got)
	}
	if s.Min() != 0 || s.Max() != 0 {
		t.Fatalf("expected zero min/max, got %v/%v", s.Min(), s.Max())
	}
}

func TestSeriesSetIgnoresOutOfRange(t *testing.T) {
	var s Series
	s.Set(-1, 5)
	s.Set(7, 5)
	if s.Count() != 0 {
		t.Fatalf("expected out-of-range slots ignored, got count %d", s.Count())
	}
}
