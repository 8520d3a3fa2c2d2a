// Package rest implements the sleep tracker runners.
package rest

import (
	"context"
	"errors"
	"fmt"

	"daykeep/pkg/app"
	"daykeep/pkg/datekey"
	"daykeep/pkg/printers"
)

// Log records hours slept for one night.
type Log struct {
	Service *app.Service

	On       datekey.Key
	Bedtime  string
	Waketime string
}

func (n *Log) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("rest: no service configured")
	}
	l, err := n.Service.LogSleep(ctx, n.On, n.Bedtime, n.Waketime)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("Slept %.1f hours", l.Hours))
	pp.SleepLogs(l)
	return nil
}

// Week prints the current week's log table and bar chart.
type Week struct {
	Service *app.Service

	Chart bool
}

func (n *Week) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("rest: no service configured")
	}
	logs, err := n.Service.SleepLogs(ctx)
	if err != nil {
		return err
	}
	w, series, err := n.Service.SleepWeek(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("Week of %s", w.Start))
	pp.SleepLogs(logs...)
	if n.Chart {
		pp.WeekChart(series)
	}
	return nil
}

// Clear wipes the week's logs on request, the same destructive reset the week
// boundary performs automatically.
type Clear struct {
	Service *app.Service
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("rest: no service configured")
	}
	if err := n.Service.ClearSleep(ctx); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Sleep log cleared")
	pp.NewLine()
	return nil
}
