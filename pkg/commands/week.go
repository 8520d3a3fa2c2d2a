package commands

import (
	"context"

	"github.com/spf13/cobra"

	"daykeep/pkg/runner/report"
)

func addWeek(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the weekly report",
		Example: `
daykeep week
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}

			s := report.Report{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
