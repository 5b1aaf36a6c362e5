package util

import (
	"fmt"
	"time"
)

// FormatNumber formats an int with K/M suffix for readability.
// Examples: 500 -> "500", 1500 -> "1.5K", 1500000 -> "1.5M"
func FormatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000)
}

// ChartLabel converts an ISO date (2006-01-02) to the DD/MM label used on
// chart axes. Returns the original string if parsing fails.
func ChartLabel(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01")
}

// FormatISODate formats a time as an ISO date string (2006-01-02).
func FormatISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
