// Package report implements the weekly report runner.
package report

import (
	"context"
	"errors"
	"fmt"

	"daykeep/pkg/app"
	"daykeep/pkg/printers"
	"daykeep/pkg/week"
)

// Report prints the week at a glance: the sleep chart, the mood row, and the
// suggestions derived from the week's numbers.
type Report struct {
	Service *app.Service
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("report: no service configured")
	}
	r, err := n.Service.WeekReport(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("Week of %s", r.Window.Start))
	pp.NewLine()

	pp.WeekChart(r.Sleep)

	labels := week.Labels()
	for i, mood := range r.Moods {
		fmt.Printf("%s %s  ", labels[i], mood.Symbol())
	}
	fmt.Println("")
	fmt.Printf("journaled %d/7 days, dailies %.0f%% done\n\n", r.JournalDays, r.DailyCompletion*100)

	pp.Title("Suggestions")
	pp.Suggestions(r.Suggestions)
	return nil
}
