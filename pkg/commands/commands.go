package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"daykeep/pkg/app"
	"daykeep/pkg/commands/options"
	"daykeep/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daykeep",
		Short: base.Wrap80("Journal, sleep tracking, and gamified todos on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addKey(topLevel)
	addJot(topLevel)
	addSleep(topLevel)
	addQuest(topLevel)
	addWeek(topLevel)
	addQuote(topLevel)
	addTheme(topLevel)
	addUI(topLevel)
	addDaemon(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func newService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return &app.Service{Persistence: p}, nil
}
