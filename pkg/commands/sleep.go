package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"daykeep/pkg/commands/options"
	"daykeep/pkg/runner/rest"
)

func addSleep(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "sleep",
		Short: "Track nights of sleep",
		Example: `
daykeep sleep log --bed=23:00 --wake=06:45
daykeep sleep week
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSleepLog(cmd)
	addSleepWeek(cmd)
	addSleepClear(cmd)

	topLevel.AddCommand(cmd)
}

func addSleepLog(topLevel *cobra.Command) {
	so := &options.SleepOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record bed and wake times for a night",
		Example: `
daykeep sleep log --bed=23:00 --wake=06:45
daykeep sleep log --bed=22:30 --wake=06:00 --on=2026-8-31
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if so.Bedtime == "" || so.Waketime == "" {
				return errors.New("requires both --bed and --wake")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}

			s := rest.Log{
				Service:  svc,
				On:       on,
				Bedtime:  so.Bedtime,
				Waketime: so.Waketime,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSleepArgs(cmd, so)
	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addSleepWeek(topLevel *cobra.Command) {
	so := &options.SleepOptions{}

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show this week's sleep",
		Example: `
daykeep sleep week
daykeep sleep week --chart
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}

			s := rest.Week{
				Service: svc,
				Chart:   so.Chart,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddChartArg(cmd, so)

	topLevel.AddCommand(cmd)
}

func addSleepClear(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Wipe all sleep logs and restart the week",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}

			s := rest.Clear{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
