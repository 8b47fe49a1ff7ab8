package engine

import "time"

// DayKeyLayout is the calendar-day key format used by the ledger and streak.
const DayKeyLayout = "2006-01-02"

// DayKey returns the calendar date of t in t's own location.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// PreviousDayKey returns the key of the calendar day before today. An
// unparsable key yields "".
func PreviousDayKey(today string) string {
	d, err := time.Parse(DayKeyLayout, today)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, -1).Format(DayKeyLayout)
}

// AdvanceStreak applies a completion on day today to a streak last touched
// on lastActive. Several completions on one day count once; a gap of two or
// more days (or no prior activity) starts over at 1.
func AdvanceStreak(lastActive string, today string, current int) int {
	switch {
	case lastActive == today:
		return current
	case lastActive != "" && lastActive == PreviousDayKey(today):
		return current + 1
	default:
		return 1
	}
}
