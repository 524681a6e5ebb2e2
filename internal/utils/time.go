package utils

import "time"

const (
	layoutDate    = "2006-01-02"
	layoutClock   = "15:04:05"
	layoutClockHM = "15:04"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// NowClock returns the local wall clock as HH:MM:SS, the form the lane
// monitor displays next to each pass.
func NowClock() string {
	return time.Now().Format(layoutClock)
}

// NowClockHM returns the local wall clock as HH:MM for ledger lines.
func NowClockHM() string {
	return time.Now().Format(layoutClockHM)
}
