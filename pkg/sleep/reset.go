package sleep

import (
	"time"

	"daykeep/pkg/datekey"
)

// ResetDecision is the outcome of checking the stored week marker against the
// current time.
type ResetDecision struct {
	// Week is the marker that should be stored after the check.
	Week datekey.Key
	// Clear reports whether the log collection must be wiped. The wipe is
	// destructive; no archive of the prior week is kept.
	Clear bool
}

// CheckWeek compares the stored week marker with the week containing now.
// A missing marker or one from a different week clears the collection and
// adopts the new week. Within one Monday-aligned week the decision is stable,
// so repeated checks clear at most once per boundary crossing.
func CheckWeek(marker datekey.Key, hasMarker bool, now time.Time) ResetDecision {
	current := datekey.WeekFor(now)
	if !hasMarker || marker != current {
		return ResetDecision{Week: current, Clear: true}
	}
	return ResetDecision{Week: current, Clear: false}
}
