package calendar

import "time"

// DayOf truncates a time to midnight of its calendar day, preserving location
func DayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// AddDays advances a time by whole calendar days
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// Overdue reports whether a due date lies strictly before today, compared at
// day granularity using the local calendar date, not wall-clock time. A nil
// due date is never overdue.
func Overdue(due *time.Time, today time.Time) bool {
	if due == nil {
		return false
	}
	return DayOf(*due).Before(DayOf(today))
}

// WithinWindow reports whether due falls inside [start, start+windowDays]
// inclusive, compared at day granularity
func WithinWindow(due time.Time, start time.Time, windowDays int) bool {
	day := DayOf(due)
	first := DayOf(start)
	last := AddDays(first, windowDays)
	return !day.Before(first) && !day.After(last)
}
