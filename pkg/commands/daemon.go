package commands

import (
	"github.com/spf13/cobra"

	"daykeep/pkg/runner/daemon"
	"daykeep/pkg/timeutil"
)

func addDaemon(topLevel *cobra.Command) {
	var interval string

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run the midnight rollover in the background",
		Long: `Keep a process running so daily quests reset and the sleep week
rolls over at local midnight even when no command is active.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}

			s := daemon.Daemon{
				Service:  svc,
				Interval: interval,
			}
			return s.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&interval, "interval", timeutil.DefaultInterval,
		"How often to re-check the clock between midnights, example: 15m or 1h.")

	topLevel.AddCommand(cmd)
}
