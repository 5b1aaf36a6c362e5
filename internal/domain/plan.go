package domain

import (
	"math"
	"strings"
	"time"
)

// Category status values. StatusPending is declared for API compatibility
// with the classification enum but the current rules never produce it:
// a category is completed, delayed, or on-track.
const (
	StatusPending   = "pending"
	StatusOnTrack   = "on-track"
	StatusDelayed   = "delayed"
	StatusCompleted = "completed"
)

// CategoryPlan is the target schedule for one category. WorkHours and Days
// are display-only fields carried through from the planning sheet.
type CategoryPlan struct {
	Name      string `json:"name"`
	Products  int    `json:"products"`
	WorkHours string `json:"workHours"`
	Days      int    `json:"days"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Adjustment is one row of the schedule adjustment breakdown.
type Adjustment struct {
	Name       string  `json:"name"`
	Value      int     `json:"value"`
	Percentage float64 `json:"percentage"`
}

// ProjectPlan is the editable target schedule the uploads are tracked
// against. TotalProducts and the per-category products/endDate fields can be
// edited at any time; edits persist immediately.
type ProjectPlan struct {
	TotalProducts int            `json:"totalProducts"`
	AnalystTarget int            `json:"analystTarget"`
	TotalAnalysts int            `json:"totalAnalysts"`
	TotalDays     int            `json:"totalDays"`
	StartDate     string         `json:"startDate"`
	EndDate       string         `json:"endDate"`
	Categories    []CategoryPlan `json:"categories"`
	Adjustments   []Adjustment   `json:"adjustments"`
}

// CategoryStatus is a CategoryPlan extended with live progress numbers.
// Progress is a percentage and is not capped at 100.
type CategoryStatus struct {
	CategoryPlan
	Completed int     `json:"completed"`
	Progress  float64 `json:"progress"`
	Status    string  `json:"status"`
}

// PlanStatus is the full planned-vs-actual picture: overall progress plus
// one row per planned category.
type PlanStatus struct {
	TotalCompleted int              `json:"totalCompleted"`
	TotalProgress  float64          `json:"totalProgress"`
	ProgressBar    float64          `json:"progressBar"` // TotalProgress clamped at 100
	DaysLeft       int              `json:"daysLeft"`
	Categories     []CategoryStatus `json:"categories"`
}

// TrackPlan compares the full record set against the plan as of today.
// Category names are matched case-insensitively (uppercased). A category
// with a zero target is vacuously 100% complete. Records whose category
// matches no plan bucket contribute nothing here.
func TrackPlan(records []UnitRecord, plan ProjectPlan, today time.Time) PlanStatus {
	today = Midnight(today)

	completedByCategory := make(map[string]int)
	totalCompleted := 0
	for _, r := range records {
		totalCompleted += r.Items
		if r.Category != "" {
			completedByCategory[strings.ToUpper(r.Category)] += r.Items
		}
	}

	categories := make([]CategoryStatus, 0, len(plan.Categories))
	for _, cat := range plan.Categories {
		completed := completedByCategory[strings.ToUpper(cat.Name)]

		progress := 100.0
		if cat.Products > 0 {
			progress = float64(completed) / float64(cat.Products) * 100
		}

		status := StatusOnTrack
		if progress >= 100 {
			status = StatusCompleted
		} else if today.After(ParseISODate(cat.EndDate)) {
			status = StatusDelayed
		}

		categories = append(categories, CategoryStatus{
			CategoryPlan: cat,
			Completed:    completed,
			Progress:     progress,
			Status:       status,
		})
	}

	var totalProgress float64
	if plan.TotalProducts > 0 {
		totalProgress = float64(totalCompleted) / float64(plan.TotalProducts) * 100
	}
	progressBar := totalProgress
	if progressBar > 100 {
		progressBar = 100
	}

	return PlanStatus{
		TotalCompleted: totalCompleted,
		TotalProgress:  totalProgress,
		ProgressBar:    progressBar,
		DaysLeft:       daysLeft(plan.EndDate, today),
		Categories:     categories,
	}
}

// daysLeft counts whole calendar days from today (midnight) to the plan end
// date, never negative.
func daysLeft(endDate string, today time.Time) int {
	deadline := ParseISODate(endDate)
	days := int(math.Ceil(deadline.Sub(today).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
