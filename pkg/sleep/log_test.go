package sleep

import (
	"testing"
	"time"

	"daykeep/pkg/datekey"
	"daykeep/pkg/week"
)

func TestUpsertReplacesSameDay(t *testing.T) {
	logs := []Log{
		{Date: "2026-08-31", Hours: 7.0},
		{Date: "2026-09-01", Hours: 6.0},
	}

	logs = Upsert(logs, Log{Date: "2026-09-01", Hours: 8.5})
	if len(logs) != 2 {
		t.Fatalf("expected overwrite in place, got %d logs", len(logs))
	}

	l, ok := Find(logs, "2026-09-01")
	if !ok {
		t.Fatal("expected log for 2026-09-01")
	}
	if l.Hours != 8.5 {
		t.Fatalf("expected replaced hours 8.5, got %v", l.Hours)
	}
}

func TestUpsertKeepsDateOrder(t *testing.T) {
	var logs []Log
	for _, day := range []datekey.Key{"2026-09-02", "2026-08-31", "2026-09-01"} {
		logs = Upsert(logs, Log{Date: day})
	}
	for i := 1; i < len(logs); i++ {
		if logs[i-1].Date > logs[i].Date {
			t.Fatalf("expected sorted logs, got %v before %v", logs[i-1].Date, logs[i].Date)
		}
	}
}

func TestNewComputesHours(t *testing.T) {
	l, err := New("2026-08-31", "22:00", "06:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Hours != 8.5 {
		t.Fatalf("expected 8.5 hours, got %v", l.Hours)
	}
}

func TestNewRequiresDate(t *testing.T) {
	if _, err := New("", "22:00", "06:30"); err == nil {
		t.Fatal("expected error for missing date")
	}
}

func TestWeekSeriesPlacesLogsBySlot(t *testing.T) {
	w := week.Window{Start: "2026-08-31"}
	logs := []Log{
		{Date: "2026-08-31", Hours: 8.0}, // Monday
		{Date: "2026-09-06", Hours: 9.0}, // Sunday
		{Date: "2026-09-07", Hours: 5.0}, // next week, ignored
	}

	s := WeekSeries(logs, w)
	if s.Count() != 2 {
		t.Fatalf("expected 2 populated slots, got %d", s.Count())
	}
	if !s.Present[0] || s.Values[0] != 8.0 {
		t.Fatalf("expected Monday slot 8.0, got %v present=%v", s.Values[0], s.Present[0])
	}
	if !s.Present[6] || s.Values[6] != 9.0 {
		t.Fatalf("expected Sunday slot 9.0, got %v present=%v", s.Values[6], s.Present[6])
	}
	if s.Present[1] {
		t.Fatal("expected Tuesday slot empty")
	}
}

func TestCheckWeekDecisions(t *testing.T) {
	// 2026-08-31 is a Monday.
	monday := time.Date(2026, time.August, 31, 0, 0, 1, 0, time.Local)

	d := CheckWeek("", false, monday)
	if !d.Clear {
		t.Fatal("expected clear with no stored marker")
	}
	if d.Week != datekey.Key("2026-08-31") {
		t.Fatalf("expected marker 2026-08-31, got %s", d.Week)
	}

	// Same week: no reset, any day through Sunday.
	sunday := monday.AddDate(0, 0, 6).Add(23 * time.Hour)
	if d := CheckWeek("2026-08-31", true, sunday); d.Clear {
		t.Fatal("expected no clear within the same week")
	}

	// Crossing Monday 00:00 clears once and moves the marker.
	next := monday.AddDate(0, 0, 7)
	d = CheckWeek("2026-08-31", true, next)
	if !d.Clear {
		t.Fatal("expected clear after week boundary")
	}
	if d.Week != datekey.Key("2026-09-07") {
		t.Fatalf("expected marker 2026-09-07, got %s", d.Week)
	}

	// A second check in the new week is a no-op.
	if d := CheckWeek(d.Week, true, next.Add(time.Hour)); d.Clear {
		t.Fatal("expected reset to happen exactly once")
	}
}
