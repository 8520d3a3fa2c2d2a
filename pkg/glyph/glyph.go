// Package glyph holds the symbols the trackers render: journal moods and
// quest-list bullets.
package glyph

import "fmt"

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Mood is the feeling recorded with a journal entry, annotated on the
// calendar grid.
type Mood string

const (
	MoodGreat Mood = "great"
	MoodGood  Mood = "good"
	MoodOkay  Mood = "okay"
	MoodLow   Mood = "low"
	MoodAwful Mood = "awful"
)

var moodSymbols = map[Mood]string{
	MoodGreat: "😄",
	MoodGood:  "🙂",
	MoodOkay:  "😐",
	MoodLow:   "😕",
	MoodAwful: "😞",
}

// Moods lists the known moods from best to worst.
func Moods() []Mood {
	return []Mood{MoodGreat, MoodGood, MoodOkay, MoodLow, MoodAwful}
}

// Known reports whether m is one of the recorded moods.
func (m Mood) Known() bool {
	_, ok := moodSymbols[m]
	return ok
}

// Symbol returns the calendar glyph for the mood, or a space when unset.
func (m Mood) Symbol() string {
	if s, ok := moodSymbols[m]; ok {
		return s
	}
	return " "
}

// ParseMood resolves a mood name, tolerating the empty string as MoodOkay.
func ParseMood(v string) (Mood, error) {
	if v == "" {
		return MoodOkay, nil
	}
	m := Mood(v)
	if !m.Known() {
		return "", fmt.Errorf("glyph: unknown mood %q", v)
	}
	return m, nil
}

// Bullet marks a quest-list row by task kind and state.
type Bullet int

const (
	Todo Bullet = iota
	Daily
	Habit
	Done
)

var bulletSymbols = map[Bullet]string{
	Todo:  "●",
	Daily: "◆",
	Habit: "↕",
	Done:  "✘",
}

func (b Bullet) String() string {
	if s, ok := bulletSymbols[b]; ok {
		return s
	}
	return " "
}
