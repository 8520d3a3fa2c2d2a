package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerLogSleepTool(srv, svc)
	registerWeekReportTool(srv, svc)
	registerSaveJournalTool(srv, svc)
	registerAddTaskTool(srv, svc)
	registerCompleteTaskTool(srv, svc)
	registerScoreHabitTool(srv, svc)
	registerListTasksTool(srv, svc)
}

func registerLogSleepTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"log_sleep",
		mcp.WithDescription("Record bed and wake times for a night. Overwrites any existing log for the same day."),
		mcp.WithString("bedtime",
			mcp.Required(),
			mcp.Description("Bedtime as HH:MM in 24-hour local time."),
		),
		mcp.WithString("waketime",
			mcp.Required(),
			mcp.Description("Wake time as HH:MM in 24-hour local time."),
		),
		mcp.WithString("date",
			mcp.Description("Day to log as YYYY-MM-DD. Defaults to today. Must fall in the current week."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Bedtime  string `json:"bedtime"`
			Waketime string `json:"waketime"`
			Date     string `json:"date"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.LogSleep(ctx, args.Date, args.Bedtime, args.Waketime)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerWeekReportTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_week_report",
		mcp.WithDescription("Summarize the current Monday-aligned week: sleep per day, journal coverage, moods, daily quest completion, and suggestions."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.WeekReport(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSaveJournalTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"save_journal_entry",
		mcp.WithDescription("Save a journal entry for a day. Overwrites any existing entry for that day."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The entry body. Must not be blank."),
		),
		mcp.WithString("mood",
			mcp.Description("Mood for the day."),
			mcp.Enum("great", "good", "okay", "low", "awful"),
		),
		mcp.WithString("date",
			mcp.Description("Day to write as YYYY-MM-DD. Defaults to today."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Text string `json:"text"`
			Mood string `json:"mood"`
			Date string `json:"date"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.SaveJournal(ctx, args.Date, args.Text, args.Mood)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAddTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_task",
		mcp.WithDescription("Add a quest task: a one-off todo, a repeating daily, or a habit."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("What the task is."),
		),
		mcp.WithString("kind",
			mcp.Description("Task kind. Defaults to todo."),
			mcp.Enum("todo", "daily", "habit"),
		),
		mcp.WithNumber("difficulty",
			mcp.Description("Difficulty from 1 (trivial) to 3 (hard). Scales rewards and penalties."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title      string  `json:"title"`
			Kind       string  `json:"kind"`
			Difficulty float64 `json:"difficulty"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddTask(ctx, args.Kind, args.Title, int(args.Difficulty))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerCompleteTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"complete_task",
		mcp.WithDescription("Mark a todo or daily as done and award XP."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier, or a unique prefix of one."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.CompleteTask(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerScoreHabitTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"score_habit",
		mcp.WithDescription("Score a habit up (award XP) or down (lose health)."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Habit identifier, or a unique prefix of one."),
		),
		mcp.WithString("direction",
			mcp.Description("Scoring direction. Defaults to up."),
			mcp.Enum("up", "down"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID        string `json:"id"`
			Direction string `json:"direction"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.ID == "" {
			return mcp.NewToolResultError("id is required"), nil
		}

		dto, err := svc.ScoreHabit(ctx, args.ID, args.Direction != "down")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListTasksTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List quest tasks and current player stats."),
		mcp.WithString("kind",
			mcp.Description("Restrict to one kind. Lists everything when omitted."),
			mcp.Enum("todo", "daily", "habit"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Kind string `json:"kind"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.ListTasks(ctx, args.Kind)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
