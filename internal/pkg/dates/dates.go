package dates

import "time"

const secondsPerDay = 24 * 60 * 60

// Date returns the calendar date of t as midnight UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b. It is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int((Date(b).Unix() - Date(a).Unix()) / secondsPerDay)
}

func AddDays(t time.Time, n int) time.Time {
	return Date(t).AddDate(0, 0, n)
}
