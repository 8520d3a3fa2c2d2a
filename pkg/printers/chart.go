package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"daykeep/pkg/week"
)

const chartWidth = 40

// WeekChart prints a horizontal bar per Mon..Sun slot, scaled to the largest
// value in the series. Absent slots render an empty bar.
func (pp *PrettyPrint) WeekChart(s week.Series) {
	labels := week.Labels()
	bold := color.New(color.Bold)
	bar := color.New(color.FgCyan)
	faint := color.New(color.Faint)

	max := s.Max()
	for i := 0; i < week.Days; i++ {
		_, _ = bold.Printf("%s ", labels[i])
		if !s.Present[i] {
			_, _ = faint.Println("–")
			continue
		}
		_, _ = bar.Print(BarRow(s.Values[i], max, chartWidth))
		fmt.Printf("  %.1f\n", s.Values[i])
	}
	fmt.Println("")

	_, _ = faint.Printf("logged %d/7  avg %.1f  min %.1f  max %.1f\n\n",
		s.Count(), s.Average(), s.Min(), s.Max())
}

// BarRow renders a single scaled bar. A positive value always shows at least
// one block so small values stay visible.
func BarRow(value, max float64, width int) string {
	if value <= 0 || max <= 0 || width <= 0 {
		return ""
	}
	n := int(value / max * float64(width))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n)
}
