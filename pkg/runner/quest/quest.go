// Package quest implements the gamified task-list runners.
package quest

import (
	"context"
	"errors"
	"fmt"

	"daykeep/pkg/app"
	"daykeep/pkg/printers"
	"daykeep/pkg/quests"
)

// Add creates a task.
type Add struct {
	Service *app.Service

	Kind       quests.Kind
	Title      string
	Difficulty int
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("quest: no service configured")
	}
	task, err := n.Service.AddTask(ctx, n.Kind, n.Title, n.Difficulty)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Title(fmt.Sprintf("Added %s", task.Kind))
	pp.Quests(task)
	return nil
}

// Complete marks a todo or daily done for today.
type Complete struct {
	Service *app.Service

	ID string
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("quest: no service configured")
	}
	task, err := n.Service.CompleteTask(ctx, n.ID)
	if err != nil {
		return err
	}
	state, err := n.Service.Quests(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("Completed %q", task.Title))
	pp.Game(state.Game)
	return nil
}

// Habit scores a habit up or down.
type Habit struct {
	Service *app.Service

	ID string
	Up bool
}

func (n *Habit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("quest: no service configured")
	}
	task, err := n.Service.ScoreHabit(ctx, n.ID, n.Up)
	if err != nil {
		return err
	}
	state, err := n.Service.Quests(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	direction := "down"
	if n.Up {
		direction = "up"
	}
	pp.Title(fmt.Sprintf("Scored %q %s", task.Title, direction))
	pp.Game(state.Game)
	return nil
}

// List prints the quest board grouped by kind, with the avatar line.
type List struct {
	Service *app.Service

	Kind   quests.Kind
	All    bool
	ShowID bool
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("quest: no service configured")
	}
	state, err := n.Service.Quests(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	kinds := []quests.Kind{quests.KindTodo, quests.KindDaily, quests.KindHabit}
	if !n.All && n.Kind != "" {
		kinds = []quests.Kind{n.Kind}
	}
	for _, kind := range kinds {
		pp.Title(string(kind))
		pp.Quests(state.ByKind(kind)...)
	}
	pp.Game(state.Game)
	return nil
}

// Remove deletes a task.
type Remove struct {
	Service *app.Service

	ID string
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("quest: no service configured")
	}
	return n.Service.RemoveTask(ctx, n.ID)
}
