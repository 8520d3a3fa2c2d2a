package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"daykeep/pkg/commands/options"
	"daykeep/pkg/quests"
	"daykeep/pkg/runner/quest"
)

func addQuest(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "quest",
		Aliases: []string{"q"},
		Short:   "Manage the quest board",
		Example: `
daykeep quest add daily stretch for ten minutes
daykeep quest list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addQuestAdd(cmd)
	addQuestDone(cmd)
	addQuestHabit(cmd)
	addQuestList(cmd)
	addQuestRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addQuestAdd(topLevel *cobra.Command) {
	qo := &options.QuestOptions{}
	var kind quests.Kind
	var title string

	cmd := &cobra.Command{
		Use:   "add [kind] <title>",
		Short: "Add a todo, daily, or habit",
		Example: `
daykeep quest add write the trip report
daykeep quest add daily stretch for ten minutes
daykeep quest add habit no snacks after dinner --difficulty=2
`,
		ValidArgs: []string{"todo", "daily", "habit"},
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			if k, err := quests.ParseKind(args[0]); err == nil && len(args) > 1 {
				kind = k
				args = args[1:]
			} else {
				kind = quests.KindTodo
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}

			s := quest.Add{
				Service:    svc,
				Kind:       kind,
				Title:      title,
				Difficulty: qo.Difficulty,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDifficultyArgs(cmd, qo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addQuestDone(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"complete"},
		Short:   "Complete a todo or daily",
		Example: `
daykeep quest done 3f2a
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}

			s := quest.Complete{
				Service: svc,
				ID:      args[0],
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addQuestHabit(topLevel *cobra.Command) {
	qo := &options.QuestOptions{}

	cmd := &cobra.Command{
		Use:   "habit <id>",
		Short: "Score a habit up, or down with --down",
		Example: `
daykeep quest habit 3f2a
daykeep quest habit 3f2a --down
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}

			s := quest.Habit{
				Service: svc,
				ID:      args[0],
				Up:      !qo.Down,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDownArg(cmd, qo)

	topLevel.AddCommand(cmd)
}

func addQuestList(topLevel *cobra.Command) {
	qo := &options.QuestOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list [kind]",
		Short: "List the quest board",
		Example: `
daykeep quest list
daykeep quest list dailies
daykeep quest list --show-id
`,
		ValidArgs: []string{"todo", "daily", "habit"},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}

			s := quest.List{
				Service: svc,
				All:     qo.All || len(args) == 0,
				ShowID:  io.ShowID,
			}
			if len(args) > 0 {
				k, err := quests.ParseKind(args[0])
				if err != nil {
					return err
				}
				s.Kind = k
				s.All = qo.All
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddAllArg(cmd, qo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addQuestRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}

			s := quest.Remove{
				Service: svc,
				ID:      args[0],
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
