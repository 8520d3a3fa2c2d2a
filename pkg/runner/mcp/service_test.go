package mcp

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"daykeep/pkg/app"
	"daykeep/pkg/store"
)

type memoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{blobs: make(map[string][]byte)}
}

func (m *memoryStore) Read(key string, v any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[key]
	if !ok {
		return store.ErrNotFound
	}
	return json.Unmarshal(data, v)
}

func (m *memoryStore) Write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = data
	return nil
}

func (m *memoryStore) Erase(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

func (m *memoryStore) Keys(ctx context.Context, prefix string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.blobs))
	for k := range m.blobs {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (m *memoryStore) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

// Wednesday 2026-09-02; the week runs 2026-08-31 through 2026-09-06.
func testService() *Service {
	return NewService(&app.Service{
		Persistence: newMemoryStore(),
		Now: func() time.Time {
			return time.Date(2026, time.September, 2, 12, 0, 0, 0, time.Local)
		},
	})
}

func TestLogSleepDefaultsToToday(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	dto, err := svc.LogSleep(ctx, "", "22:30", "06:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto.Date != "2026-09-02" {
		t.Fatalf("expected today's date, got %q", dto.Date)
	}
	if dto.Hours != 8.0 {
		t.Fatalf("expected 8.0 hours, got %v", dto.Hours)
	}
}

func TestLogSleepRejectsMalformedDate(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	if _, err := svc.LogSleep(ctx, "09/02/2026", "22:30", "06:30"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestSaveJournalDefaultsMood(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	dto, err := svc.SaveJournal(ctx, "", "wrote some code", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto.Mood != "okay" {
		t.Fatalf("expected default mood okay, got %q", dto.Mood)
	}
	if dto.SavedAt == "" {
		t.Fatal("expected savedAt to be populated")
	}
}

func TestSaveJournalRejectsBlankText(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	if _, err := svc.SaveJournal(ctx, "", "   ", "good"); err == nil {
		t.Fatal("expected error for blank text")
	}
}

func TestCompleteTaskReportsGameStats(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	task, err := svc.AddTask(ctx, "todo", "ship the release", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Task.Done {
		t.Fatal("expected task to be done")
	}
	if result.Game.XP != 20 {
		t.Fatalf("expected 20 XP for difficulty 2, got %d", result.Game.XP)
	}
}

func TestScoreHabitDown(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	habit, err := svc.AddTask(ctx, "habit", "late night snacks", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.ScoreHabit(ctx, habit.ID, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Game.Health >= result.Game.MaxHealth {
		t.Fatalf("expected health loss, got %d/%d", result.Game.Health, result.Game.MaxHealth)
	}
}

func TestListTasksFiltersByKind(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	if _, err := svc.AddTask(ctx, "todo", "one-off", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.AddTask(ctx, "daily", "stretch", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := svc.ListTasks(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(all.Tasks))
	}

	dailies, err := svc.ListTasks(ctx, "daily")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dailies.Tasks) != 1 || dailies.Tasks[0].Title != "stretch" {
		t.Fatalf("expected only the daily, got %+v", dailies.Tasks)
	}
}

func TestWeekReportShape(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	if _, err := svc.LogSleep(ctx, "2026-08-31", "23:00", "07:00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.SaveJournal(ctx, "2026-09-01", "quiet day", "good"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r, err := svc.WeekReport(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.WeekStart != "2026-08-31" {
		t.Fatalf("expected monday week start, got %q", r.WeekStart)
	}
	if len(r.Days) != 7 || r.Days[6] != "2026-09-06" {
		t.Fatalf("expected 7 days ending sunday, got %v", r.Days)
	}
	if !r.SleepLogged[0] || r.SleepHours[0] != 8.0 {
		t.Fatalf("expected monday sleep 8.0, got %v %v", r.SleepLogged, r.SleepHours)
	}
	if r.JournalDays != 1 || r.Moods[1] != "good" {
		t.Fatalf("expected tuesday mood, got days=%d moods=%v", r.JournalDays, r.Moods)
	}
}
