// Package quests models the gamified to-do list: one-off todos, repeating
// dailies, and habits scored up or down, feeding a health/XP/level game.
package quests

import (
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"daykeep/pkg/datekey"
	"daykeep/pkg/glyph"
)

// Kind distinguishes how a task is scored and reset.
type Kind string

const (
	// KindTodo is a one-off task; completing it awards XP once.
	KindTodo Kind = "todo"
	// KindDaily repeats every day; its Done flag clears at local midnight
	// and leaving it incomplete costs health.
	KindDaily Kind = "daily"
	// KindHabit has no Done state; it is scored up (+XP) or down (-health)
	// any number of times.
	KindHabit Kind = "habit"
)

// ParseKind resolves a task kind name.
func ParseKind(v string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(v))) {
	case KindTodo, "":
		return KindTodo, nil
	case KindDaily, "dailies":
		return KindDaily, nil
	case KindHabit, "habits":
		return KindHabit, nil
	}
	return "", fmt.Errorf("quests: unknown task kind %q", v)
}

// Task is one row of the quest list.
type Task struct {
	ID          string      `json:"id"`
	Kind        Kind        `json:"kind"`
	Title       string      `json:"title"`
	Difficulty  int         `json:"difficulty"`
	Done        bool        `json:"done,omitempty"`
	Streak      int         `json:"streak,omitempty"`
	CompletedOn datekey.Key `json:"completedOn,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// NewTask builds a task with a derived identifier. Difficulty runs 1..3 and
// defaults to 1.
func NewTask(kind Kind, title string, difficulty int) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("quests: task title required")
	}
	if difficulty == 0 {
		difficulty = 1
	}
	if difficulty < 1 || difficulty > 3 {
		return nil, fmt.Errorf("quests: difficulty %d out of range 1..3", difficulty)
	}

	t := &Task{
		Kind:       kind,
		Title:      title,
		Difficulty: difficulty,
		CreatedAt:  time.Now(),
	}
	b, _ := json.Marshal(t)
	id := md5.Sum(b)
	t.ID = fmt.Sprintf("%x", id[:8])
	return t, nil
}

// Bullet returns the list glyph for the task's current state.
func (t *Task) Bullet() glyph.Bullet {
	if t.Done {
		return glyph.Done
	}
	switch t.Kind {
	case KindDaily:
		return glyph.Daily
	case KindHabit:
		return glyph.Habit
	default:
		return glyph.Todo
	}
}
