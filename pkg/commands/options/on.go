package options

import (
	"time"

	"github.com/spf13/cobra"

	"daykeep/pkg/datekey"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1-2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-2-28" or --on="2-28".`)
}

// GetOn resolves the flag to a calendar key. Empty means "unset"; callers
// default to today. Short form dates take the current year.
func (o *OnOptions) GetOn() (datekey.Key, error) {
	if o.OnString == "" {
		return "", nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err != nil {
			return "", err
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
	}
	return datekey.For(t), nil
}
