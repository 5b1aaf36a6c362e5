package util

import "time"

// Period presets driving the dashboard date window.
const (
	PeriodDaily    = "daily"
	PeriodWeekly   = "weekly"
	PeriodBiweekly = "biweekly"
	PeriodMonthly  = "monthly"
)

// RangeForPeriod returns the [start, end] window for a named period preset,
// at calendar-day granularity. "daily" (and any unknown value) keeps the
// explicit start/end untouched, defaulting both to today when unset; the
// other presets override them relative to now.
//
// Bounds are built at UTC midnight of now's calendar day. Record dates parse
// as UTC midnight, so any other zone here would drop the boundary days of
// the window on non-UTC hosts.
func RangeForPeriod(period string, start, end, now time.Time) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch period {
	case PeriodWeekly:
		return today.AddDate(0, 0, -6), today
	case PeriodBiweekly:
		return today.AddDate(0, 0, -14), today
	case PeriodMonthly:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)
		return first, last
	default:
		if start.IsZero() {
			start = today
		}
		if end.IsZero() {
			end = today
		}
		return start, end
	}
}
