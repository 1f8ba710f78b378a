package loan

import "time"

// =============================================================================
// DATE HELPERS - Pure calendar arithmetic, always UTC midnight
// =============================================================================

// parseDate parses YYYY-MM-DD into a UTC midnight time.
func parseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// dateKey normalizes to UTC midnight so dates compare and hash reliably.
func dateKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// lastDayOfMonth returns the length of the month containing t.
func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -1).Day()
}

// isEndOfMonth reports whether t is the last calendar day of its month.
func isEndOfMonth(t time.Time) bool {
	return t.Day() == lastDayOfMonth(t)
}

// endOfMonth snaps t to the last calendar day of its month.
func endOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), lastDayOfMonth(t), 0, 0, 0, 0, time.UTC)
}

// addMonths adds n months, clamping the day-of-month instead of letting it
// overflow into the next month (Jan 31 + 1 month = Feb 28, not Mar 3).
func addMonths(t time.Time, n int) time.Time {
	total := t.Year()*12 + int(t.Month()) - 1 + n
	year := total / 12
	month := time.Month(total%12 + 1)
	day := t.Day()
	if last := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1).Day(); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
