package options

import (
	"github.com/spf13/cobra"
)

// QuestOptions
type QuestOptions struct {
	Difficulty int
	All        bool
	Down       bool
}

func AddDifficultyArgs(cmd *cobra.Command, o *QuestOptions) {
	cmd.Flags().IntVarP(&o.Difficulty, "difficulty", "d", 1,
		"Difficulty from 1 (trivial) to 3 (hard).")
}

func AddAllArg(cmd *cobra.Command, o *QuestOptions) {
	cmd.Flags().BoolVarP(&o.All, "all", "a", false,
		"List every kind of task.")
}

func AddDownArg(cmd *cobra.Command, o *QuestOptions) {
	cmd.Flags().BoolVar(&o.Down, "down", false,
		"Score the habit down instead of up.")
}
