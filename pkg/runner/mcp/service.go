// Package mcp provides the Model Context Protocol server integration for daykeep.
package mcp

import (
	"context"
	"errors"

	"daykeep/pkg/app"
	"daykeep/pkg/datekey"
	"daykeep/pkg/glyph"
	"daykeep/pkg/journal"
	"daykeep/pkg/quests"
	"daykeep/pkg/sleep"
	"daykeep/pkg/week"
)

// Service coordinates the operations shared by the MCP tools.
type Service struct {
	App *app.Service
}

// NewService builds a service wrapper over the application layer.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

// SleepLogDTO is a transport-friendly projection of one night.
type SleepLogDTO struct {
	Date     string  `json:"date"`
	Bedtime  string  `json:"bedtime"`
	Waketime string  `json:"waketime"`
	Hours    float64 `json:"hours"`
}

// JournalEntryDTO is a transport-friendly projection of a journal entry.
type JournalEntryDTO struct {
	Date    string `json:"date"`
	Text    string `json:"text"`
	Mood    string `json:"mood"`
	SavedAt string `json:"savedAt,omitempty"`
}

// TaskDTO is a transport-friendly projection of a quest task.
type TaskDTO struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Difficulty  int    `json:"difficulty"`
	Done        bool   `json:"done"`
	Streak      int    `json:"streak"`
	CompletedOn string `json:"completedOn,omitempty"`
}

// GameDTO reports the player stats after a scoring action.
type GameDTO struct {
	Level       int `json:"level"`
	Health      int `json:"health"`
	MaxHealth   int `json:"maxHealth"`
	XP          int `json:"xp"`
	NextLevelXP int `json:"nextLevelXP"`
}

// TaskResultDTO pairs a task mutation with the resulting player stats.
type TaskResultDTO struct {
	Task TaskDTO `json:"task"`
	Game GameDTO `json:"game"`
}

// TaskListDTO is the full quest board.
type TaskListDTO struct {
	Tasks []TaskDTO `json:"tasks"`
	Game  GameDTO   `json:"game"`
}

// WeekReportDTO summarizes the current Monday-aligned week.
type WeekReportDTO struct {
	WeekStart       string    `json:"weekStart"`
	Days            []string  `json:"days"`
	SleepHours      []float64 `json:"sleepHours"`
	SleepLogged     []bool    `json:"sleepLogged"`
	SleepAverage    float64   `json:"sleepAverage"`
	JournalDays     int       `json:"journalDays"`
	Moods           []string  `json:"moods"`
	DailyCompletion float64   `json:"dailyCompletion"`
	Suggestions     []string  `json:"suggestions"`
}

func (s *Service) ready() error {
	if s.App == nil {
		return errors.New("mcp: application service is not configured")
	}
	return nil
}

func resolveDay(s *Service, raw string) (datekey.Key, error) {
	if raw == "" {
		return s.App.Today(), nil
	}
	k := datekey.Key(raw)
	if _, err := datekey.Parse(k); err != nil {
		return "", err
	}
	return k, nil
}

// LogSleep records one night and returns it.
func (s *Service) LogSleep(ctx context.Context, date, bedtime, waketime string) (SleepLogDTO, error) {
	if err := s.ready(); err != nil {
		return SleepLogDTO{}, err
	}
	day, err := resolveDay(s, date)
	if err != nil {
		return SleepLogDTO{}, err
	}
	l, err := s.App.LogSleep(ctx, day, bedtime, waketime)
	if err != nil {
		return SleepLogDTO{}, err
	}
	return toSleepLogDTO(l), nil
}

// SaveJournal validates and stores an entry for the day.
func (s *Service) SaveJournal(ctx context.Context, date, text, mood string) (JournalEntryDTO, error) {
	if err := s.ready(); err != nil {
		return JournalEntryDTO{}, err
	}
	day, err := resolveDay(s, date)
	if err != nil {
		return JournalEntryDTO{}, err
	}
	m, err := glyph.ParseMood(mood)
	if err != nil {
		return JournalEntryDTO{}, err
	}
	e := journal.New(day, text, m)
	if err := s.App.SaveJournal(ctx, e); err != nil {
		return JournalEntryDTO{}, err
	}
	return toJournalDTO(e), nil
}

// AddTask creates a task of the given kind.
func (s *Service) AddTask(ctx context.Context, kind, title string, difficulty int) (TaskDTO, error) {
	if err := s.ready(); err != nil {
		return TaskDTO{}, err
	}
	k, err := quests.ParseKind(kind)
	if err != nil {
		return TaskDTO{}, err
	}
	t, err := s.App.AddTask(ctx, k, title, difficulty)
	if err != nil {
		return TaskDTO{}, err
	}
	return toTaskDTO(t), nil
}

// CompleteTask marks a task done and reports the stat changes.
func (s *Service) CompleteTask(ctx context.Context, id string) (TaskResultDTO, error) {
	if err := s.ready(); err != nil {
		return TaskResultDTO{}, err
	}
	t, err := s.App.CompleteTask(ctx, id)
	if err != nil {
		return TaskResultDTO{}, err
	}
	return s.taskResult(ctx, t)
}

// ScoreHabit scores a habit up or down and reports the stat changes.
func (s *Service) ScoreHabit(ctx context.Context, id string, up bool) (TaskResultDTO, error) {
	if err := s.ready(); err != nil {
		return TaskResultDTO{}, err
	}
	t, err := s.App.ScoreHabit(ctx, id, up)
	if err != nil {
		return TaskResultDTO{}, err
	}
	return s.taskResult(ctx, t)
}

// ListTasks returns the quest board, optionally filtered by kind.
func (s *Service) ListTasks(ctx context.Context, kind string) (TaskListDTO, error) {
	if err := s.ready(); err != nil {
		return TaskListDTO{}, err
	}
	state, err := s.App.Quests(ctx)
	if err != nil {
		return TaskListDTO{}, err
	}

	tasks := state.Tasks
	if kind != "" {
		k, err := quests.ParseKind(kind)
		if err != nil {
			return TaskListDTO{}, err
		}
		tasks = state.ByKind(k)
	}

	out := TaskListDTO{
		Tasks: make([]TaskDTO, 0, len(tasks)),
		Game:  toGameDTO(state.Game),
	}
	for _, t := range tasks {
		out.Tasks = append(out.Tasks, toTaskDTO(t))
	}
	return out, nil
}

// WeekReport summarizes the current week across all trackers.
func (s *Service) WeekReport(ctx context.Context) (WeekReportDTO, error) {
	if err := s.ready(); err != nil {
		return WeekReportDTO{}, err
	}
	r, err := s.App.WeekReport(ctx)
	if err != nil {
		return WeekReportDTO{}, err
	}

	dto := WeekReportDTO{
		WeekStart:       string(r.Window.Start),
		Days:            make([]string, week.Days),
		SleepHours:      make([]float64, week.Days),
		SleepLogged:     make([]bool, week.Days),
		SleepAverage:    r.Sleep.Average(),
		JournalDays:     r.JournalDays,
		Moods:           make([]string, week.Days),
		DailyCompletion: r.DailyCompletion,
		Suggestions:     r.Suggestions,
	}
	for i, k := range r.Window.Keys() {
		dto.Days[i] = string(k)
		if r.Sleep.Present[i] {
			dto.SleepHours[i] = r.Sleep.Values[i]
			dto.SleepLogged[i] = true
		}
		dto.Moods[i] = string(r.Moods[i])
	}
	return dto, nil
}

func (s *Service) taskResult(ctx context.Context, t *quests.Task) (TaskResultDTO, error) {
	state, err := s.App.Quests(ctx)
	if err != nil {
		return TaskResultDTO{}, err
	}
	return TaskResultDTO{
		Task: toTaskDTO(t),
		Game: toGameDTO(state.Game),
	}, nil
}

func toSleepLogDTO(l sleep.Log) SleepLogDTO {
	return SleepLogDTO{
		Date:     string(l.Date),
		Bedtime:  l.Bedtime,
		Waketime: l.Waketime,
		Hours:    l.Hours,
	}
}

func toJournalDTO(e *journal.Entry) JournalEntryDTO {
	dto := JournalEntryDTO{
		Date: string(e.Date),
		Text: e.Text,
		Mood: string(e.Mood),
	}
	if !e.SavedAt.Time.IsZero() {
		dto.SavedAt = e.SavedAt.Time.Format("2006-01-02 15:04:05")
	}
	return dto
}

func toTaskDTO(t *quests.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID,
		Kind:        string(t.Kind),
		Title:       t.Title,
		Difficulty:  t.Difficulty,
		Done:        t.Done,
		Streak:      t.Streak,
		CompletedOn: string(t.CompletedOn),
	}
}

func toGameDTO(g quests.Game) GameDTO {
	return GameDTO{
		Level:       g.Level,
		Health:      g.Health,
		MaxHealth:   quests.MaxHealth,
		XP:          g.XP,
		NextLevelXP: g.NextLevelXP(),
	}
}
