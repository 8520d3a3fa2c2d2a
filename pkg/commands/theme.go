package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"daykeep/pkg/theme"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "theme [name]",
		Short: "Show or set the dashboard color theme",
		Example: `
daykeep theme
daykeep theme forest
`,
		ValidArgs: theme.Names(),
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			ctx := context.Background()

			if len(args) == 0 {
				th := svc.Theme(ctx)
				fmt.Printf("%s (available: %s)\n", th.Name, strings.Join(theme.Names(), ", "))
				return nil
			}

			th, err := svc.SetTheme(ctx, args[0])
			if err != nil {
				return output.HandleError(err)
			}
			fmt.Printf("theme set to %s\n", th.Name)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
