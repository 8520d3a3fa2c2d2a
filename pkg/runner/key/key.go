// Package key prints the symbol legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"daykeep/pkg/glyph"
)

type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	k.bullets()
	k.moods()
	return nil
}

func (k *Key) bullets() {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Symbol"), glyph.Bold("Meaning"))
	tbl.AddRow(glyph.Todo.String(), "todo, completes once")
	tbl.AddRow(glyph.Daily.String(), "daily, resets at midnight")
	tbl.AddRow(glyph.Habit.String(), "habit, scored up or down")
	tbl.AddRow(glyph.Done.String(), "done")

	_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nBullets")))
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (k *Key) moods() {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Symbol"), glyph.Bold("Mood"))
	for _, m := range glyph.Moods() {
		tbl.AddRow(m.Symbol(), string(m))
	}

	_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nMoods")))
	_, _ = fmt.Fprintln(color.Output, tbl)
}
