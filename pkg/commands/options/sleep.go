package options

import (
	"github.com/spf13/cobra"
)

// SleepOptions
type SleepOptions struct {
	Bedtime  string
	Waketime string
	Chart    bool
}

func AddSleepArgs(cmd *cobra.Command, o *SleepOptions) {
	cmd.Flags().StringVarP(&o.Bedtime, "bed", "b", "",
		`Bedtime as HH:MM, example: --bed=22:30.`)
	cmd.Flags().StringVarP(&o.Waketime, "wake", "w", "",
		`Wake time as HH:MM, example: --wake=06:30.`)
}

func AddChartArg(cmd *cobra.Command, o *SleepOptions) {
	cmd.Flags().BoolVar(&o.Chart, "chart", false,
		"Render the week as a bar chart instead of a table.")
}
