// Package jot implements the journal runners.
package jot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/manifoldco/promptui"

	"daykeep/pkg/app"
	"daykeep/pkg/datekey"
	"daykeep/pkg/glyph"
	"daykeep/pkg/journal"
	"daykeep/pkg/printers"
)

// Add saves a journal entry for a day, prompting interactively when no text
// was given on the command line.
type Add struct {
	Service *app.Service

	On   datekey.Key
	Text string
	Mood glyph.Mood

	Interactive bool
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("jot: no service configured")
	}
	day := n.On
	if day == "" {
		day = n.Service.Today()
	}

	if n.Interactive {
		if err := n.prompt(); err != nil {
			return err
		}
	}

	e := journal.New(day, n.Text, n.Mood)
	if err := n.Service.SaveJournal(ctx, e); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Journal(e)
	return nil
}

func (n *Add) prompt() error {
	moods := glyph.Moods()
	items := make([]string, len(moods))
	for i, m := range moods {
		items[i] = fmt.Sprintf("%s %s", m.Symbol(), m)
	}
	sel := promptui.Select{
		Label: "How was the day",
		Items: items,
	}
	i, _, err := sel.Run()
	if err != nil {
		return err
	}
	n.Mood = moods[i]

	prompt := promptui.Prompt{
		Label: "Entry",
		Validate: func(v string) error {
			if strings.TrimSpace(v) == "" {
				return errors.New("entry text required")
			}
			return nil
		},
	}
	text, err := prompt.Run()
	if err != nil {
		return err
	}
	n.Text = text
	return nil
}

// Show prints the entry for a day, or the latest saved entry.
type Show struct {
	Service *app.Service

	On     datekey.Key
	Latest bool
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("jot: no service configured")
	}

	var (
		e   *journal.Entry
		err error
	)
	if n.Latest {
		e, err = n.Service.LatestJournal(ctx)
	} else {
		day := n.On
		if day == "" {
			day = n.Service.Today()
		}
		e, err = n.Service.JournalEntry(ctx, day)
	}
	pp := printers.PrettyPrint{}
	if errors.Is(err, app.ErrNoEntry) {
		pp.None()
		return nil
	}
	if err != nil {
		return err
	}
	pp.Journal(e)
	return nil
}

// Calendar prints a month grid annotated with mood glyphs.
type Calendar struct {
	Service *app.Service

	Year  int
	Month time.Month
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("jot: no service configured")
	}
	year, month := n.Year, n.Month
	if year == 0 || month == 0 {
		now := n.Service.Today().Time()
		year, month = now.Year(), now.Month()
	}

	entries, err := n.Service.JournalMonth(ctx, year, month)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.MoodCalendar(year, month, entries)
	return nil
}
