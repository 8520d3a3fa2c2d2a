package quests

import (
	"testing"

	"daykeep/pkg/datekey"
)

const today = datekey.Key("2026-08-31")

func TestAddAndFindByPrefix(t *testing.T) {
	s := NewState()
	task, err := s.Add(KindTodo, "write tests", 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	found, err := s.Find(task.ID[:4])
	if err != nil {
		t.Fatalf("find by prefix: %v", err)
	}
	if found.ID != task.ID {
		t.Fatalf("expected %s, got %s", task.ID, found.ID)
	}

	if _, err := s.Find("ffff"); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestAddValidation(t *testing.T) {
	s := NewState()
	if _, err := s.Add(KindTodo, "   ", 1); err == nil {
		t.Fatal("expected error for empty title")
	}
	if _, err := s.Add(KindTodo, "ok", 9); err == nil {
		t.Fatal("expected error for difficulty out of range")
	}
}

func TestCompleteAwardsXP(t *testing.T) {
	s := NewState()
	task, _ := s.Add(KindTodo, "ship it", 2)

	if _, err := s.Complete(task.ID, today); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !task.Done || task.CompletedOn != today {
		t.Fatalf("expected task done today, got %+v", task)
	}
	if s.Game.XP != 20 {
		t.Fatalf("expected 20 XP, got %d", s.Game.XP)
	}

	if _, err := s.Complete(task.ID, today); err == nil {
		t.Fatal("expected error completing twice on the same day")
	}
}

func TestCompleteTodoIsFinal(t *testing.T) {
	s := NewState()
	task, _ := s.Add(KindTodo, "file the report", 2)

	if _, err := s.Complete(task.ID, today); err != nil {
		t.Fatalf("complete: %v", err)
	}
	xp := s.Game.XP

	// A finished todo stays finished; a later day must not re-award XP.
	if _, err := s.Complete(task.ID, today.AddDays(1)); err == nil {
		t.Fatal("expected error completing a finished todo on a later day")
	}
	if s.Game.XP != xp {
		t.Fatalf("expected XP unchanged at %d, got %d", xp, s.Game.XP)
	}
}

func TestCompleteDailyGrowsStreak(t *testing.T) {
	s := NewState()
	task, _ := s.Add(KindDaily, "stretch", 1)

	if _, err := s.Complete(task.ID, today); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if task.Streak != 1 {
		t.Fatalf("expected streak 1, got %d", task.Streak)
	}
}

func TestHabitScoring(t *testing.T) {
	s := NewState()
	habit, _ := s.Add(KindHabit, "drink water", 1)

	if _, err := s.ScoreHabit(habit.ID, true); err != nil {
		t.Fatalf("score up: %v", err)
	}
	if s.Game.XP != 5 || habit.Streak != 1 {
		t.Fatalf("expected +5 XP streak 1, got xp=%d streak=%d", s.Game.XP, habit.Streak)
	}

	if _, err := s.ScoreHabit(habit.ID, false); err != nil {
		t.Fatalf("score down: %v", err)
	}
	if s.Game.Health != MaxHealth-5 {
		t.Fatalf("expected health %d, got %d", MaxHealth-5, s.Game.Health)
	}
	if habit.Streak != 0 {
		t.Fatalf("expected streak reset, got %d", habit.Streak)
	}

	todo, _ := s.Add(KindTodo, "not a habit", 1)
	if _, err := s.ScoreHabit(todo.ID, true); err == nil {
		t.Fatal("expected error scoring a todo")
	}
	if _, err := s.Complete(habit.ID, today); err == nil {
		t.Fatal("expected error completing a habit")
	}
}

func TestLevelUp(t *testing.T) {
	g := NewGame()
	g.Health = 40
	g.GainXP(230) // level 1 needs 100, level 2 needs 200

	if g.Level != 2 {
		t.Fatalf("expected level 2, got %d", g.Level)
	}
	if g.XP != 130 {
		t.Fatalf("expected 130 XP into level 2, got %d", g.XP)
	}
	if g.Health != 45 {
		t.Fatalf("expected level-up health bonus, got %d", g.Health)
	}
}

func TestHealthFloorCostsALevel(t *testing.T) {
	g := Game{Health: 5, XP: 80, Level: 3}
	g.LoseHealth(10)

	if g.Level != 2 {
		t.Fatalf("expected level down to 2, got %d", g.Level)
	}
	if g.XP != 0 {
		t.Fatalf("expected XP cleared, got %d", g.XP)
	}
	if g.Health != MaxHealth {
		t.Fatalf("expected health restored, got %d", g.Health)
	}

	// Level 1 is the floor.
	g = Game{Health: 1, XP: 10, Level: 1}
	g.LoseHealth(5)
	if g.Level != 1 {
		t.Fatalf("expected level floor 1, got %d", g.Level)
	}
}

func TestRollover(t *testing.T) {
	s := NewState()
	done, _ := s.Add(KindDaily, "journal", 1)
	missed, _ := s.Add(KindDaily, "run", 2)
	s.Add(KindTodo, "untouched todo", 1)

	// Seed a prior day so penalties apply.
	s.LastRollover = "2026-08-30"
	if _, err := s.Complete(done.ID, "2026-08-30"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	healthBefore := s.Game.Health

	if !s.Rollover(today) {
		t.Fatal("expected rollover to run")
	}

	if done.Done {
		t.Fatal("expected completed daily reset for the new day")
	}
	if done.Streak != 1 {
		t.Fatalf("expected completed daily to keep its streak, got %d", done.Streak)
	}
	if missed.Streak != 0 {
		t.Fatalf("expected missed daily streak reset, got %d", missed.Streak)
	}
	if s.Game.Health != healthBefore-10 {
		t.Fatalf("expected health penalty 10, got %d -> %d", healthBefore, s.Game.Health)
	}

	// Second run on the same day is a no-op.
	health := s.Game.Health
	if s.Rollover(today) {
		t.Fatal("expected rollover to be idempotent per day")
	}
	if s.Game.Health != health {
		t.Fatalf("expected no double penalty, got %d", s.Game.Health)
	}
}

func TestRolloverFirstRunHasNoPenalty(t *testing.T) {
	s := NewState()
	s.Add(KindDaily, "new daily", 3)

	if !s.Rollover(today) {
		t.Fatal("expected first rollover to run")
	}
	if s.Game.Health != MaxHealth {
		t.Fatalf("expected no penalty on first rollover, got %d", s.Game.Health)
	}
}

func TestCompletionRatio(t *testing.T) {
	s := NewState()
	if got := s.CompletionRatio(today); got != 1 {
		t.Fatalf("expected ratio 1 with no dailies, got %v", got)
	}

	a, _ := s.Add(KindDaily, "a", 1)
	s.Add(KindDaily, "b", 1)
	s.Complete(a.ID, today)

	if got := s.CompletionRatio(today); got != 0.5 {
		t.Fatalf("expected ratio 0.5, got %v", got)
	}
}

func TestRemove(t *testing.T) {
	s := NewState()
	task, _ := s.Add(KindTodo, "temp", 1)
	if err := s.Remove(task.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(s.Tasks) != 0 {
		t.Fatalf("expected empty task list, got %d", len(s.Tasks))
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"": KindTodo, "todo": KindTodo, "dailies": KindDaily, "habit": KindHabit} {
		got, err := ParseKind(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %s, got %s", in, want, got)
		}
	}
	if _, err := ParseKind("chore"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
