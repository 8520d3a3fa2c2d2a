// Package journal models the daily journal: one entry per calendar day with
// free text, a mood, and any image overlays placed on the page. Entries are
// retained indefinitely; unlike the sleep log they are never reset.
package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"daykeep/pkg/datekey"
	"daykeep/pkg/glyph"
)

// Entry is the persisted journal record for one day.
type Entry struct {
	Date     datekey.Key `json:"date"`
	Text     string      `json:"text"`
	Mood     glyph.Mood  `json:"mood,omitempty"`
	Overlays []Overlay   `json:"overlays,omitempty"`
	SavedAt  Timestamp   `json:"savedAt"`
}

// New builds an entry for the given day.
func New(day datekey.Key, text string, mood glyph.Mood) *Entry {
	return &Entry{
		Date:    day,
		Text:    text,
		Mood:    mood,
		SavedAt: Timestamp{Time: time.Now()},
	}
}

// Validate enforces the save preconditions: a well-formed date, non-empty
// text, and a known mood. A failing entry must not be persisted; the caller
// surfaces the message and waits for re-submission.
func (e *Entry) Validate() error {
	if e == nil {
		return errors.New("journal: nil entry")
	}
	if _, err := datekey.Parse(e.Date); err != nil {
		return fmt.Errorf("journal: invalid date: %w", err)
	}
	if strings.TrimSpace(e.Text) == "" {
		return errors.New("journal: entry text required")
	}
	if e.Mood != "" && !e.Mood.Known() {
		return fmt.Errorf("journal: unknown mood %q", e.Mood)
	}
	return nil
}

// Preview returns the first line of the entry text, trimmed for list views.
func (e *Entry) Preview(max int) string {
	text := strings.TrimSpace(e.Text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	runes := []rune(text)
	if max > 0 && len(runes) > max {
		return string(runes[:max-1]) + "…"
	}
	return text
}
