package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"daykeep/pkg/commands/options"
	"daykeep/pkg/glyph"
	"daykeep/pkg/runner/jot"
)

func addJot(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	mo := &options.MoodOptions{}
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "jot [entry text]",
		Short: "Write the journal entry for a day",
		Example: `
daykeep jot slept in, slow start, good afternoon
daykeep jot --mood great shipped the release
daykeep jot -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if io.Interactive {
				return nil
			}
			if len(args) < 1 {
				return errors.New("requires entry text, or -i")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			mood, err := glyph.ParseMood(mo.Mood)
			if err != nil {
				return err
			}

			s := jot.Add{
				Service:     svc,
				On:          on,
				Text:        strings.Join(args, " "),
				Mood:        mood,
				Interactive: io.Interactive,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddMoodArgs(cmd, mo)
	options.InteractiveArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	addJotShow(cmd)
	addJotCalendar(cmd)

	topLevel.AddCommand(cmd)
}

func addJotShow(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	latest := false

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the entry for a day",
		Example: `
daykeep jot show
daykeep jot show --on=2026-8-28
daykeep jot show --latest
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}

			s := jot.Show{
				Service: svc,
				On:      on,
				Latest:  latest,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	cmd.Flags().BoolVarP(&latest, "latest", "l", false, "Show the most recently saved entry.")

	topLevel.AddCommand(cmd)
}

func addJotCalendar(topLevel *cobra.Command) {
	var year, month int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month of moods",
		Example: `
daykeep jot calendar
daykeep jot calendar --month=7
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}

			s := jot.Calendar{
				Service: svc,
				Year:    year,
				Month:   time.Month(month),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to show. Defaults to the current year.")
	cmd.Flags().IntVar(&month, "month", 0, "Month to show, 1 through 12. Defaults to the current month.")

	topLevel.AddCommand(cmd)
}
