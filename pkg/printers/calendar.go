package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"daykeep/pkg/datekey"
	"daykeep/pkg/journal"
)

const calendarWidth = len("11 12 13 14 15 16 17") // an example week

// MoodCalendar prints a month grid with journaled days shown bright and
// annotated below with their mood glyphs.
func (pp *PrettyPrint) MoodCalendar(year int, month time.Month, entries map[datekey.Key]*journal.Entry) {
	then := time.Date(year, month, 1, 1, 0, 0, 0, time.Local)

	tf := color.New(color.FgWhite, color.Italic)
	m := then.Month().String()
	mid := (calendarWidth - len(m)) / 2
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", calendarWidth-mid-len(m)))

	days := DaysIn(then)
	d := StartDay(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		day := datekey.For(time.Date(year, month, i+1, 12, 0, 0, 0, time.Local))
		if _, ok := entries[day]; ok {
			l2.Printf("%2d ", i+1)
		} else {
			l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")

	// Mood legend for the journaled days.
	for i := 0; i < days; i++ {
		day := datekey.For(time.Date(year, month, i+1, 12, 0, 0, 0, time.Local))
		e, ok := entries[day]
		if !ok || e.Mood == "" {
			continue
		}
		fmt.Printf("%2d %s  %s\n", i+1, e.Mood.Symbol(), e.Preview(40))
	}
	fmt.Print("\n")
}

// DaysIn returns the number of days in the month containing then.
func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartDay returns the weekday the month containing then starts on.
func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
