package commands

import (
	"github.com/spf13/cobra"

	"daykeep/pkg/runner/dashboard"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the full-screen dashboard",
		Example: `
daykeep ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := dashboard.Dashboard{Service: svc}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
