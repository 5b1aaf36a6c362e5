package domain

import "time"

const isoDateLayout = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD string. Returns zero time if parsing fails.
func ParseISODate(s string) time.Time {
	t, _ := time.Parse(isoDateLayout, s)
	return t
}

// Midnight truncates a time to calendar-day granularity at UTC midnight,
// the same instant ParseISODate produces for that day. Range bounds and
// "today" must live in one zone or comparisons shift by a day on non-UTC
// hosts.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FilterRange selects the records whose date falls within [start, end],
// inclusive at both bounds, optionally restricted to a single collaborator.
// Passing AllCollaborators disables the collaborator restriction. The input
// order is preserved.
func FilterRange(records []UnitRecord, start, end time.Time, collaborator string) []UnitRecord {
	start = Midnight(start)
	end = Midnight(end)

	filtered := make([]UnitRecord, 0, len(records))
	for _, r := range records {
		d := ParseISODate(r.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		if collaborator != AllCollaborators && r.Collaborator != collaborator {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
