// Package app provides the high-level tracker operations shared by the CLI,
// the TUI, and the MCP server. It wraps the raw key-value persistence with
// typed read-modify-write transactions that commit only on success.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"daykeep/pkg/datekey"
	"daykeep/pkg/glyph"
	"daykeep/pkg/journal"
	"daykeep/pkg/quests"
	"daykeep/pkg/sleep"
	"daykeep/pkg/store"
	"daykeep/pkg/suggest"
	"daykeep/pkg/theme"
	"daykeep/pkg/week"
)

// ErrNoEntry is returned when no journal entry exists for a day.
var ErrNoEntry = errors.New("app: no entry for that day")

// Service exposes tracker operations over a Persistence.
type Service struct {
	Persistence store.Persistence

	// Now is the clock used for key derivation; nil means time.Now. Tests
	// inject fixed moments to cross week boundaries.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) ready() error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	return nil
}

// Today returns the current local calendar key.
func (s *Service) Today() datekey.Key {
	return datekey.For(s.now())
}

// --- sleep tracker ---

// checkSleepWeek runs the weekly reset policy: entering a new Monday-aligned
// week wipes the log collection and moves the marker. Every sleep operation
// calls this first, so the wipe happens exactly once per boundary crossing.
func (s *Service) checkSleepWeek(ctx context.Context) error {
	var marker datekey.Key
	hasMarker := true
	if err := s.Persistence.Read(store.KeySleepWeek, &marker); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		hasMarker = false
	}

	d := sleep.CheckWeek(marker, hasMarker, s.now())
	if !d.Clear {
		return nil
	}
	if err := s.Persistence.Erase(store.KeySleepLogs); err != nil {
		return err
	}
	return s.Persistence.Write(store.KeySleepWeek, d.Week)
}

// SleepLogs returns the current week's logs, oldest first.
func (s *Service) SleepLogs(ctx context.Context) ([]sleep.Log, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := s.checkSleepWeek(ctx); err != nil {
		return nil, err
	}
	var logs []sleep.Log
	if err := s.Persistence.Read(store.KeySleepLogs, &logs); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return logs, nil
}

// LogSleep records hours slept for a day in the current week, overwriting any
// existing log for that day.
func (s *Service) LogSleep(ctx context.Context, day datekey.Key, bedtime, waketime string) (sleep.Log, error) {
	if err := s.ready(); err != nil {
		return sleep.Log{}, err
	}
	if day == "" {
		day = s.Today()
	}
	l, err := sleep.New(day, bedtime, waketime)
	if err != nil {
		return sleep.Log{}, err
	}

	if err := s.checkSleepWeek(ctx); err != nil {
		return sleep.Log{}, err
	}
	if w := week.For(s.now()); !w.Contains(day) {
		return sleep.Log{}, fmt.Errorf("app: %s is outside the current week starting %s", day, w.Start)
	}

	var logs []sleep.Log
	if err := s.Persistence.Read(store.KeySleepLogs, &logs); err != nil && !errors.Is(err, store.ErrNotFound) {
		return sleep.Log{}, err
	}
	logs = sleep.Upsert(logs, l)
	if err := s.Persistence.Write(store.KeySleepLogs, logs); err != nil {
		return sleep.Log{}, err
	}
	return l, nil
}

// SleepWeek aggregates the current week into 7 Mon..Sun slots.
func (s *Service) SleepWeek(ctx context.Context) (week.Window, week.Series, error) {
	logs, err := s.SleepLogs(ctx)
	if err != nil {
		return week.Window{}, week.Series{}, err
	}
	w := week.For(s.now())
	return w, sleep.WeekSeries(logs, w), nil
}

// ClearSleep wipes the log collection and re-anchors the week marker to the
// current week. Destructive; nothing is archived.
func (s *Service) ClearSleep(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.Persistence.Erase(store.KeySleepLogs); err != nil {
		return err
	}
	return s.Persistence.Write(store.KeySleepWeek, datekey.WeekFor(s.now()))
}

// Midnight runs the daily transitions: the quest rollover for the new day and
// the sleep tracker's week check. Safe to call any number of times.
func (s *Service) Midnight(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := s.Quests(ctx); err != nil {
		return err
	}
	return s.checkSleepWeek(ctx)
}

// --- journal ---

// SaveJournal validates and persists an entry for its day, updating the
// latest-entry snapshot. An invalid entry blocks the save.
func (s *Service) SaveJournal(ctx context.Context, e *journal.Entry) error {
	if err := s.ready(); err != nil {
		return err
	}
	if e != nil && e.Date == "" {
		e.Date = s.Today()
	}
	if err := e.Validate(); err != nil {
		return err
	}
	e.SavedAt = journal.Timestamp{Time: s.now()}
	if err := s.Persistence.Write(store.JournalKey(e.Date), e); err != nil {
		return err
	}
	return s.Persistence.Write(store.KeyJournalLatest, e)
}

// JournalEntry loads the entry for a day, or ErrNoEntry.
func (s *Service) JournalEntry(ctx context.Context, day datekey.Key) (*journal.Entry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var e journal.Entry
	if err := s.Persistence.Read(store.JournalKey(day), &e); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoEntry
		}
		return nil, err
	}
	return &e, nil
}

// LatestJournal loads the most recently saved entry, or ErrNoEntry.
func (s *Service) LatestJournal(ctx context.Context) (*journal.Entry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var e journal.Entry
	if err := s.Persistence.Read(store.KeyJournalLatest, &e); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoEntry
		}
		return nil, err
	}
	return &e, nil
}

// JournalMonth lists entries for a calendar month keyed by day. Malformed
// blobs are skipped silently; missing days are simply absent.
func (s *Service) JournalMonth(ctx context.Context, year int, month time.Month) (map[datekey.Key]*journal.Entry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	prefix := fmt.Sprintf("%s%04d-%02d-", store.PrefixJournal, year, int(month))
	out := make(map[datekey.Key]*journal.Entry)
	for _, key := range s.Persistence.Keys(ctx, prefix) {
		var e journal.Entry
		if err := s.Persistence.Read(key, &e); err != nil {
			continue
		}
		day := datekey.Key(strings.TrimPrefix(key, store.PrefixJournal))
		if _, err := datekey.Parse(day); err != nil {
			continue
		}
		out[day] = &e
	}
	return out, nil
}

// JournalWeek returns the window's entries by Mon..Sun slot; absent days are
// nil. Always exactly 7 slots.
func (s *Service) JournalWeek(ctx context.Context, w week.Window) ([week.Days]*journal.Entry, error) {
	var out [week.Days]*journal.Entry
	if err := s.ready(); err != nil {
		return out, err
	}
	for i, day := range w.Keys() {
		e, err := s.JournalEntry(ctx, day)
		if err != nil {
			if errors.Is(err, ErrNoEntry) {
				continue
			}
			return out, err
		}
		out[i] = e
	}
	return out, nil
}

// --- quests ---

// Quests loads the quest state, applying the midnight rollover for the
// current day before returning. The rolled-over state is persisted so the
// penalty applies once no matter how often it is loaded.
func (s *Service) Quests(ctx context.Context) (*quests.State, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	state := quests.NewState()
	if err := s.Persistence.Read(store.KeyQuests, state); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	state.Normalize()
	if state.Rollover(s.Today()) {
		if err := s.Persistence.Write(store.KeyQuests, state); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// MutateQuests loads the state, applies fn, and commits only when fn
// succeeds.
func (s *Service) MutateQuests(ctx context.Context, fn func(*quests.State) error) (*quests.State, error) {
	state, err := s.Quests(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(state); err != nil {
		return nil, err
	}
	if err := s.Persistence.Write(store.KeyQuests, state); err != nil {
		return nil, err
	}
	return state, nil
}

// AddTask appends a task of the given kind.
func (s *Service) AddTask(ctx context.Context, kind quests.Kind, title string, difficulty int) (*quests.Task, error) {
	var task *quests.Task
	_, err := s.MutateQuests(ctx, func(st *quests.State) error {
		var err error
		task, err = st.Add(kind, title, difficulty)
		return err
	})
	return task, err
}

// CompleteTask marks a todo or daily done for today.
func (s *Service) CompleteTask(ctx context.Context, id string) (*quests.Task, error) {
	var task *quests.Task
	_, err := s.MutateQuests(ctx, func(st *quests.State) error {
		var err error
		task, err = st.Complete(id, s.Today())
		return err
	})
	return task, err
}

// ScoreHabit scores a habit up or down.
func (s *Service) ScoreHabit(ctx context.Context, id string, up bool) (*quests.Task, error) {
	var task *quests.Task
	_, err := s.MutateQuests(ctx, func(st *quests.State) error {
		var err error
		task, err = st.ScoreHabit(id, up)
		return err
	})
	return task, err
}

// RemoveTask deletes a task.
func (s *Service) RemoveTask(ctx context.Context, id string) error {
	_, err := s.MutateQuests(ctx, func(st *quests.State) error {
		return st.Remove(id)
	})
	return err
}

// --- theme ---

// Theme returns the stored color preference, defaulting when absent or
// unknown.
func (s *Service) Theme(ctx context.Context) theme.Theme {
	if s.Persistence == nil {
		return theme.Default()
	}
	var name string
	if err := s.Persistence.Read(store.KeyTheme, &name); err != nil {
		return theme.Default()
	}
	t, err := theme.Lookup(name)
	if err != nil {
		return theme.Default()
	}
	return t
}

// SetTheme stores a color preference.
func (s *Service) SetTheme(ctx context.Context, name string) (theme.Theme, error) {
	if err := s.ready(); err != nil {
		return theme.Theme{}, err
	}
	t, err := theme.Lookup(name)
	if err != nil {
		return theme.Theme{}, err
	}
	if err := s.Persistence.Write(store.KeyTheme, t.Name); err != nil {
		return theme.Theme{}, err
	}
	return t, nil
}

// --- weekly report ---

// WeekReport bundles everything the week view shows: the sleep series, the
// journal entries, quest completion, and the derived suggestions.
type WeekReport struct {
	Window          week.Window
	Sleep           week.Series
	Journal         [week.Days]*journal.Entry
	JournalDays     int
	Moods           [week.Days]glyph.Mood
	DailyCompletion float64
	Suggestions     []string
}

// WeekReport aggregates the current week across all trackers.
func (s *Service) WeekReport(ctx context.Context) (WeekReport, error) {
	if err := s.ready(); err != nil {
		return WeekReport{}, err
	}

	w, series, err := s.SleepWeek(ctx)
	if err != nil {
		return WeekReport{}, err
	}

	entries, err := s.JournalWeek(ctx, w)
	if err != nil {
		return WeekReport{}, err
	}

	state, err := s.Quests(ctx)
	if err != nil {
		return WeekReport{}, err
	}

	r := WeekReport{
		Window:          w,
		Sleep:           series,
		Journal:         entries,
		DailyCompletion: state.CompletionRatio(s.Today()),
	}
	for i, e := range entries {
		if e == nil {
			continue
		}
		r.JournalDays++
		r.Moods[i] = e.Mood
	}
	r.Suggestions = suggest.For(suggest.WeekStats{
		Sleep:           r.Sleep,
		JournalDays:     r.JournalDays,
		DailyCompletion: r.DailyCompletion,
	})
	return r, nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Persistence.Watch(ctx)
}
