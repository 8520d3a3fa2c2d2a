package quests

import (
	"errors"
	"fmt"
	"strings"

	"daykeep/pkg/datekey"
)

// State is the persisted quest-list blob: the tasks, the avatar, and the day
// the last midnight rollover ran.
type State struct {
	Tasks        []*Task     `json:"tasks"`
	Game         Game        `json:"game"`
	LastRollover datekey.Key `json:"lastRollover,omitempty"`
}

// NewState returns an empty list with a fresh avatar.
func NewState() *State {
	return &State{Game: NewGame()}
}

// Normalize repairs a state loaded from storage: a zero-value game becomes a
// fresh avatar so older blobs keep working.
func (s *State) Normalize() {
	if s.Game.Level == 0 {
		s.Game = NewGame()
	}
}

// Add appends a new task.
func (s *State) Add(kind Kind, title string, difficulty int) (*Task, error) {
	t, err := NewTask(kind, title, difficulty)
	if err != nil {
		return nil, err
	}
	s.Tasks = append(s.Tasks, t)
	return t, nil
}

// Find resolves a task by full ID or unique prefix.
func (s *State) Find(id string) (*Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("quests: task id required")
	}
	var match *Task
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, nil
		}
		if strings.HasPrefix(t.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("quests: ambiguous task id %q", id)
			}
			match = t
		}
	}
	if match == nil {
		return nil, fmt.Errorf("quests: task %q not found", id)
	}
	return match, nil
}

// Complete marks a todo or daily done for the given day and awards XP.
func (s *State) Complete(id string, today datekey.Key) (*Task, error) {
	t, err := s.Find(id)
	if err != nil {
		return nil, err
	}
	if t.Kind == KindHabit {
		return nil, errors.New("quests: habits are scored up or down, not completed")
	}
	if t.Done {
		// A todo's Done flag never clears, so any previous completion is
		// final; a daily's flag only means "done today" until the rollover.
		if t.Kind == KindTodo {
			return nil, fmt.Errorf("quests: %q already completed", t.Title)
		}
		if t.CompletedOn == today {
			return nil, fmt.Errorf("quests: %q already completed today", t.Title)
		}
	}
	t.Done = true
	t.CompletedOn = today
	if t.Kind == KindDaily {
		t.Streak++
	}
	s.Game.GainXP(xpPerDifficulty * t.Difficulty)
	return t, nil
}

// ScoreHabit scores a habit up (+XP, streak grows) or down (-health, streak
// resets).
func (s *State) ScoreHabit(id string, up bool) (*Task, error) {
	t, err := s.Find(id)
	if err != nil {
		return nil, err
	}
	if t.Kind != KindHabit {
		return nil, fmt.Errorf("quests: %q is not a habit", t.Title)
	}
	if up {
		t.Streak++
		s.Game.GainXP(habitXPPerDifficulty * t.Difficulty)
	} else {
		t.Streak = 0
		s.Game.LoseHealth(penaltyPerDifficulty * t.Difficulty)
	}
	return t, nil
}

// Remove deletes a task.
func (s *State) Remove(id string) error {
	t, err := s.Find(id)
	if err != nil {
		return err
	}
	kept := s.Tasks[:0]
	for _, existing := range s.Tasks {
		if existing.ID != t.ID {
			kept = append(kept, existing)
		}
	}
	s.Tasks = kept
	return nil
}

// ByKind lists tasks of one kind, preserving insertion order.
func (s *State) ByKind(kind Kind) []*Task {
	out := make([]*Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

// CompletionRatio reports the share of dailies completed for today; habits
// and todos do not count. Returns 1 when there are no dailies.
func (s *State) CompletionRatio(today datekey.Key) float64 {
	dailies := s.ByKind(KindDaily)
	if len(dailies) == 0 {
		return 1
	}
	done := 0
	for _, t := range dailies {
		if t.Done && t.CompletedOn == today {
			done++
		}
	}
	return float64(done) / float64(len(dailies))
}

// Rollover runs the local-midnight reset for the given day: dailies left
// incomplete cost health and lose their streak, completed ones have their
// Done flag cleared for the new day. The marker makes the rollover idempotent
// per day; a single rollover covers any number of skipped days. Reports
// whether anything ran.
func (s *State) Rollover(today datekey.Key) bool {
	if s.LastRollover == today {
		return false
	}
	first := s.LastRollover == ""
	for _, t := range s.Tasks {
		if t.Kind != KindDaily {
			continue
		}
		if t.Done {
			t.Done = false
			continue
		}
		// No penalty on the very first rollover: there was no prior day to
		// have missed.
		if !first {
			t.Streak = 0
			s.Game.LoseHealth(penaltyPerDifficulty * t.Difficulty)
		}
	}
	s.LastRollover = today
	return true
}
