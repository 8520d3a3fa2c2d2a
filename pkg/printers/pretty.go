// Package printers renders tracker state for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"daykeep/pkg/journal"
	"daykeep/pkg/quests"
	"daykeep/pkg/sleep"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) None() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

// SleepLogs prints the week's sleep rows, oldest first.
func (pp *PrettyPrint) SleepLogs(logs ...sleep.Log) {
	if len(logs) == 0 {
		pp.None()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("DAY", "DATE", "BED", "WAKE", "HOURS")
	for _, l := range logs {
		tbl.AddRow(l.Date.Weekday().String()[:3], string(l.Date), l.Bedtime, l.Waketime, fmt.Sprintf("%.1f", l.Hours))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Quests prints the task list grouped the way the store keeps it.
func (pp *PrettyPrint) Quests(tasks ...*quests.Task) {
	if len(tasks) == 0 {
		pp.None()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	s := color.New(color.Faint)

	for _, task := range tasks {
		if pp.ShowID {
			_, _ = y.Print(task.ID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(task.ID)))
		}
		title := task.Title
		if task.Done {
			title = color.New(color.Faint, color.CrossedOut).Sprint(title)
		}
		_, _ = t.Printf("%s %s", task.Bullet().String(), title)
		if task.Streak > 0 {
			_, _ = s.Printf("  (streak %d)", task.Streak)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Game prints the avatar line under the quest list.
func (pp *PrettyPrint) Game(g quests.Game) {
	h := color.New(color.FgRed)
	x := color.New(color.FgYellow)
	l := color.New(color.Bold)

	_, _ = l.Printf("Level %d  ", g.Level)
	_, _ = h.Printf("HP %d/%d  ", g.Health, quests.MaxHealth)
	_, _ = x.Printf("XP %d/%d\n\n", g.XP, g.NextLevelXP())
}

// Journal prints one journal entry.
func (pp *PrettyPrint) Journal(e *journal.Entry) {
	if e == nil {
		pp.None()
		return
	}

	t := color.New()
	f := color.New(color.Faint)

	pp.Title(fmt.Sprintf("%s %s", e.Date, e.Mood.Symbol()))
	_, _ = t.Println(e.Text)
	if len(e.Overlays) > 0 {
		_, _ = f.Printf("(%d overlay(s))\n", len(e.Overlays))
	}
	_, _ = t.Println("")
}

// Suggestions prints the weekly advice list.
func (pp *PrettyPrint) Suggestions(suggestions []string) {
	if len(suggestions) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("Nothing to suggest. Good week.")
		return
	}
	t := color.New()
	for _, s := range suggestions {
		_, _ = t.Printf("· %s\n", s)
	}
	_, _ = t.Println("")
}
