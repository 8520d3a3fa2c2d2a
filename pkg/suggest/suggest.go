// Package suggest derives weekly advice from simple threshold rules over the
// aggregated tracker numbers.
package suggest

import (
	"fmt"

	"daykeep/pkg/week"
)

// WeekStats is the input to the rules: the sleep series for the week plus
// journal and quest aggregates.
type WeekStats struct {
	Sleep           week.Series
	JournalDays     int
	DailyCompletion float64
}

// Sleep-hour thresholds driving the advice below.
const (
	shortSleepHours = 6.5
	longSleepHours  = 9.5
	erraticSpread   = 3.0
)

// For returns the suggestion list for the week, most pressing first. An empty
// list means the week looks fine.
func For(stats WeekStats) []string {
	var out []string

	if n := stats.Sleep.Count(); n == 0 {
		out = append(out, "No sleep logged this week yet. Log tonight's sleep to start the chart.")
	} else {
		avg := stats.Sleep.Average()
		if avg < shortSleepHours {
			out = append(out, fmt.Sprintf("Averaging %.1f hours of sleep. Try moving bedtime earlier this week.", avg))
		}
		if avg > longSleepHours {
			out = append(out, fmt.Sprintf("Averaging %.1f hours of sleep. Oversleeping can leave you groggy; try a consistent wake time.", avg))
		}
		if n >= 2 && stats.Sleep.Max()-minPresent(stats.Sleep) > erraticSpread {
			out = append(out, "Sleep hours swing a lot between days. A steadier schedule usually feels better than a long catch-up night.")
		}
		if n < week.Days {
			out = append(out, fmt.Sprintf("Sleep logged on %d of 7 days. Filling every day makes the weekly average meaningful.", n))
		}
	}

	if stats.JournalDays == 0 {
		out = append(out, "No journal entries this week. Even one line a day keeps the habit alive.")
	} else if stats.JournalDays < 3 {
		out = append(out, fmt.Sprintf("Journaled on %d day(s) this week. Try for three.", stats.JournalDays))
	}

	if stats.DailyCompletion < 0.5 {
		out = append(out, "Less than half of today's dailies are done. Knock out the easiest one first.")
	}

	return out
}

// minPresent is the smallest populated value, ignoring empty slots; Series.Min
// treats absent as zero, which would make the spread rule fire on any gap.
func minPresent(s week.Series) float64 {
	min := 0.0
	seen := false
	for i, p := range s.Present {
		if !p {
			continue
		}
		if !seen || s.Values[i] < min {
			min = s.Values[i]
			seen = true
		}
	}
	return min
}
