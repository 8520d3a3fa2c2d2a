package commands

import (
	"context"

	"github.com/spf13/cobra"

	"daykeep/pkg/runner/inspire"
)

func addQuote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print the quote of the day",
		Example: `
daykeep quote
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := inspire.Inspire{}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
