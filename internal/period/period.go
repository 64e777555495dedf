// Package period derives the UTC date boundaries every dashboard
// aggregation is scoped by. All functions are pure: the same reference
// instant always yields the same boundaries.
package period

import "time"

// Bounds holds the UTC boundaries derived from a reference instant.
//
// StartOfWeek is the first instant of the day six calendar days before the
// reference day, so [StartOfWeek, EndOfToday] is an inclusive trailing
// window of exactly seven days.
type Bounds struct {
	StartOfToday time.Time
	EndOfToday   time.Time
	StartOfWeek  time.Time
	StartOfMonth time.Time
	EndOfMonth   time.Time
}

// At computes the boundaries for the UTC calendar day, trailing week and
// month containing ref.
func At(ref time.Time) Bounds {
	ref = ref.UTC()
	y, m, d := ref.Date()

	startOfToday := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	endOfToday := time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	startOfMonth := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the next month normalizes to the last day of this one.
	endOfMonth := time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond)

	return Bounds{
		StartOfToday: startOfToday,
		EndOfToday:   endOfToday,
		StartOfWeek:  startOfToday.AddDate(0, 0, -6),
		StartOfMonth: startOfMonth,
		EndOfMonth:   endOfMonth,
	}
}

// Now computes the boundaries for the current instant.
func Now() Bounds {
	return At(time.Now())
}

// WeekDays lists the seven UTC calendar days of the trailing window in
// ascending order, formatted YYYY-MM-DD.
func (b Bounds) WeekDays() []string {
	days := make([]string, 0, 7)
	for d := b.StartOfWeek; !d.After(b.StartOfToday); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format("2006-01-02"))
	}
	return days
}
