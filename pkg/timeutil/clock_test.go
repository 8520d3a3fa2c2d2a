package timeutil

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"22:00", 22 * 60},
		{"06:30", 6*60 + 30},
		{"9:05", 9*60 + 5},
		{"23:59", 23*60 + 59},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %d minutes, got %d", tc.in, tc.want, got)
		}
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, in := range []string{"", "24:00", "12:60", "noon", "12", "12:5", "-1:00"} {
		if _, err := ParseClock(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(6*60 + 30); got != "06:30" {
		t.Fatalf("expected 06:30, got %s", got)
	}
	if got := FormatClock(MinutesPerDay); got != "00:00" {
		t.Fatalf("expected wrap to 00:00, got %s", got)
	}
}

func TestParseWindowDefault(t *testing.T) {
	dur, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 15*time.Minute {
		t.Fatalf("expected 15m, got %v", dur)
	}
	if label != "15m" {
		t.Fatalf("expected label 15m, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	dur, label, err := ParseWindow("1h30m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != time.Hour+30*time.Minute {
		t.Fatalf("expected 1h30m, got %v", dur)
	}
	if label != "1h30m" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	if _, _, err := ParseWindow("noop"); err == nil {
		t.Fatalf("expected error for invalid window")
	}
}
