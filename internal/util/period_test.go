package util

import (
	"testing"
	"time"
)

func TestRangeForPeriod(t *testing.T) {
	now := time.Date(2025, 9, 17, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name      string
		period    string
		wantStart string
		wantEnd   string
	}{
		{"weekly is last 7 days", PeriodWeekly, "2025-09-11", "2025-09-17"},
		{"biweekly is last 15 days", PeriodBiweekly, "2025-09-03", "2025-09-17"},
		{"monthly is the calendar month", PeriodMonthly, "2025-09-01", "2025-09-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := RangeForPeriod(tt.period, time.Time{}, time.Time{}, now)
			if got := FormatISODate(start); got != tt.wantStart {
				t.Errorf("start: expected %s, got %s", tt.wantStart, got)
			}
			if got := FormatISODate(end); got != tt.wantEnd {
				t.Errorf("end: expected %s, got %s", tt.wantEnd, got)
			}
		})
	}
}

func TestRangeForPeriod_DailyKeepsExplicitDates(t *testing.T) {
	now := time.Date(2025, 9, 17, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC)

	gotStart, gotEnd := RangeForPeriod(PeriodDaily, start, end, now)

	if !gotStart.Equal(start) || !gotEnd.Equal(end) {
		t.Errorf("expected explicit dates untouched, got %v..%v", gotStart, gotEnd)
	}
}

func TestRangeForPeriod_DailyDefaultsToToday(t *testing.T) {
	now := time.Date(2025, 9, 17, 23, 59, 0, 0, time.UTC)

	start, end := RangeForPeriod(PeriodDaily, time.Time{}, time.Time{}, now)

	if FormatISODate(start) != "2025-09-17" || FormatISODate(end) != "2025-09-17" {
		t.Errorf("expected today..today, got %v..%v", start, end)
	}
}

func TestRangeForPeriod_NonUTCHost(t *testing.T) {
	// Record dates parse as UTC midnight, so the window bounds must too,
	// whatever zone the server clock runs in.
	tests := []struct {
		name      string
		zone      *time.Location
		period    string
		wantStart string
		wantEnd   string
	}{
		{"weekly on a UTC-3 host", time.FixedZone("BRT", -3*60*60), PeriodWeekly, "2025-09-11", "2025-09-17"},
		{"daily on a UTC+3 host", time.FixedZone("MSK", 3*60*60), PeriodDaily, "2025-09-17", "2025-09-17"},
		{"monthly on a UTC-3 host", time.FixedZone("BRT", -3*60*60), PeriodMonthly, "2025-09-01", "2025-09-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2025, 9, 17, 0, 30, 0, 0, tt.zone)
			start, end := RangeForPeriod(tt.period, time.Time{}, time.Time{}, now)

			if start.Location() != time.UTC || end.Location() != time.UTC {
				t.Errorf("expected UTC bounds, got %v and %v", start.Location(), end.Location())
			}
			if got := FormatISODate(start); got != tt.wantStart {
				t.Errorf("start: expected %s, got %s", tt.wantStart, got)
			}
			if got := FormatISODate(end); got != tt.wantEnd {
				t.Errorf("end: expected %s, got %s", tt.wantEnd, got)
			}
		})
	}
}

func TestChartLabel(t *testing.T) {
	if got := ChartLabel("2025-09-05"); got != "05/09" {
		t.Errorf("expected 05/09, got %s", got)
	}
	if got := ChartLabel("not-a-date"); got != "not-a-date" {
		t.Errorf("expected passthrough on parse failure, got %s", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{500, "500"},
		{1500, "1.5K"},
		{1500000, "1.5M"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}
