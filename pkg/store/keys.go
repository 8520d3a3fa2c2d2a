package store

import "daykeep/pkg/datekey"

// Fixed keys for the persisted application state.
const (
	// KeySleepLogs holds the current week's sleep log collection.
	KeySleepLogs = "sleep_logs"
	// KeySleepWeek holds the week marker the sleep logs belong to.
	KeySleepWeek = "sleep_week"
	// KeyJournalLatest holds a snapshot of the most recently saved entry.
	KeyJournalLatest = "journal_latest"
	// KeyQuests holds the gamified task list state.
	KeyQuests = "quests_state"
	// KeyTheme holds the color theme preference.
	KeyTheme = "app_theme"

	// PrefixJournal prefixes the per-day journal entry keys.
	PrefixJournal = "journal_"
)

// JournalKey returns the storage key for the journal entry of one day.
func JournalKey(day datekey.Key) string {
	return PrefixJournal + string(day)
}
