package domain

import (
	"testing"
	"time"
)

func TestTrackPlan_CategoryProgress(t *testing.T) {
	today := day("2025-09-10")

	tests := []struct {
		name          string
		records       []UnitRecord
		category      CategoryPlan
		wantCompleted int
		wantProgress  float64
		wantStatus    string
	}{
		{
			name: "delayed past deadline",
			records: repeat(UnitRecord{Category: "BAZAR", Date: "2025-09-05", Items: 1,
				Collaborator: "Ana"}, 40),
			category:      CategoryPlan{Name: "BAZAR", Products: 100, EndDate: "2025-09-09"},
			wantCompleted: 40,
			wantProgress:  40.0,
			wantStatus:    StatusDelayed,
		},
		{
			name: "on track before deadline",
			records: repeat(UnitRecord{Category: "BAZAR", Date: "2025-09-05", Items: 1,
				Collaborator: "Ana"}, 40),
			category:      CategoryPlan{Name: "BAZAR", Products: 100, EndDate: "2025-09-20"},
			wantCompleted: 40,
			wantProgress:  40.0,
			wantStatus:    StatusOnTrack,
		},
		{
			name: "on track on the deadline day itself",
			records: repeat(UnitRecord{Category: "BAZAR", Date: "2025-09-05", Items: 1,
				Collaborator: "Ana"}, 10),
			category:      CategoryPlan{Name: "BAZAR", Products: 100, EndDate: "2025-09-10"},
			wantCompleted: 10,
			wantProgress:  10.0,
			wantStatus:    StatusOnTrack,
		},
		{
			name: "completed overrides deadline",
			records: repeat(UnitRecord{Category: "BAZAR", Date: "2025-09-05", Items: 1,
				Collaborator: "Ana"}, 120),
			category:      CategoryPlan{Name: "BAZAR", Products: 100, EndDate: "2025-09-01"},
			wantCompleted: 120,
			wantProgress:  120.0,
			wantStatus:    StatusCompleted,
		},
		{
			name:          "zero target is vacuously complete",
			records:       nil,
			category:      CategoryPlan{Name: "PEIXARIA", Products: 0, EndDate: "2025-09-01"},
			wantCompleted: 0,
			wantProgress:  100.0,
			wantStatus:    StatusCompleted,
		},
		{
			name: "case-insensitive category match",
			records: repeat(UnitRecord{Category: "bazar", Date: "2025-09-05", Items: 1,
				Collaborator: "Ana"}, 3),
			category:      CategoryPlan{Name: "BAZAR", Products: 100, EndDate: "2025-09-20"},
			wantCompleted: 3,
			wantProgress:  3.0,
			wantStatus:    StatusOnTrack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := ProjectPlan{
				TotalProducts: 1000,
				EndDate:       "2025-10-31",
				Categories:    []CategoryPlan{tt.category},
			}

			status := TrackPlan(tt.records, plan, today)

			if len(status.Categories) != 1 {
				t.Fatalf("expected 1 category row, got %d", len(status.Categories))
			}
			cat := status.Categories[0]
			if cat.Completed != tt.wantCompleted {
				t.Errorf("Completed: expected %d, got %d", tt.wantCompleted, cat.Completed)
			}
			assertFloatNear(t, "Progress", tt.wantProgress, cat.Progress)
			if cat.Status != tt.wantStatus {
				t.Errorf("Status: expected %s, got %s", tt.wantStatus, cat.Status)
			}
		})
	}
}

func TestTrackPlan_UnplannedCategoriesIgnored(t *testing.T) {
	records := []UnitRecord{
		{Category: "BAZAR", Date: "2025-09-05", Items: 1},
		{Category: "AVULSOS", Date: "2025-09-05", Items: 1},
	}
	plan := ProjectPlan{
		TotalProducts: 100,
		EndDate:       "2025-10-31",
		Categories:    []CategoryPlan{{Name: "BAZAR", Products: 10, EndDate: "2025-10-31"}},
	}

	status := TrackPlan(records, plan, day("2025-09-10"))

	if status.Categories[0].Completed != 1 {
		t.Errorf("expected 1 completed in BAZAR, got %d", status.Categories[0].Completed)
	}
	// Unmatched records still count toward the overall total.
	if status.TotalCompleted != 2 {
		t.Errorf("expected total completed 2, got %d", status.TotalCompleted)
	}
}

func TestTrackPlan_OverallProgress(t *testing.T) {
	records := repeat(UnitRecord{Category: "BAZAR", Date: "2025-09-05", Items: 1}, 50)
	plan := ProjectPlan{TotalProducts: 200, EndDate: "2025-10-31"}

	status := TrackPlan(records, plan, day("2025-09-10"))

	assertFloatNear(t, "TotalProgress", 25.0, status.TotalProgress)
	assertFloatNear(t, "ProgressBar", 25.0, status.ProgressBar)
}

func TestTrackPlan_ProgressBarClampedAt100(t *testing.T) {
	records := repeat(UnitRecord{Category: "BAZAR", Date: "2025-09-05", Items: 1}, 30)
	plan := ProjectPlan{TotalProducts: 10, EndDate: "2025-10-31"}

	status := TrackPlan(records, plan, day("2025-09-10"))

	assertFloatNear(t, "TotalProgress", 300.0, status.TotalProgress)
	assertFloatNear(t, "ProgressBar", 100.0, status.ProgressBar)
}

func TestTrackPlan_DaysLeft(t *testing.T) {
	tests := []struct {
		name    string
		endDate string
		today   time.Time
		want    int
	}{
		{"deadline ahead", "2025-09-15", day("2025-09-10"), 5},
		{"deadline today", "2025-09-10", day("2025-09-10"), 0},
		{"deadline passed", "2025-09-01", day("2025-09-10"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := TrackPlan(nil, ProjectPlan{EndDate: tt.endDate}, tt.today)
			if status.DaysLeft != tt.want {
				t.Errorf("DaysLeft: expected %d, got %d", tt.want, status.DaysLeft)
			}
		})
	}
}

func TestTrackPlan_ZonedClockOnDeadlineDay(t *testing.T) {
	// A server clock in any zone still counts the deadline day itself as
	// on-track, and never pads daysLeft by a day.
	records := repeat(UnitRecord{Category: "BAZAR", Date: "2025-09-05", Items: 1}, 40)
	plan := ProjectPlan{
		TotalProducts: 1000,
		EndDate:       "2025-09-10",
		Categories:    []CategoryPlan{{Name: "BAZAR", Products: 100, EndDate: "2025-09-10"}},
	}

	zones := []struct {
		name string
		loc  *time.Location
	}{
		{"UTC-3", time.FixedZone("BRT", -3*60*60)},
		{"UTC+3", time.FixedZone("MSK", 3*60*60)},
	}

	for _, tt := range zones {
		t.Run(tt.name, func(t *testing.T) {
			today := time.Date(2025, 9, 10, 21, 0, 0, 0, tt.loc)
			status := TrackPlan(records, plan, today)

			if status.Categories[0].Status != StatusOnTrack {
				t.Errorf("expected on-track on the deadline day, got %s", status.Categories[0].Status)
			}
			if status.DaysLeft != 0 {
				t.Errorf("expected 0 days left on the deadline day, got %d", status.DaysLeft)
			}
		})
	}
}

func TestSeedPlan_FreshCopyEachCall(t *testing.T) {
	a := SeedPlan()
	a.Categories[0].Products = 1
	a.TotalProducts = 1

	b := SeedPlan()
	if b.TotalProducts == 1 || b.Categories[0].Products == 1 {
		t.Error("editing one seed copy leaked into the next")
	}
	if b.TotalProducts != 114053 {
		t.Errorf("expected seed total 114053, got %d", b.TotalProducts)
	}
	if len(b.Categories) != 21 {
		t.Errorf("expected 21 seed categories, got %d", len(b.Categories))
	}
}

func repeat(r UnitRecord, n int) []UnitRecord {
	out := make([]UnitRecord, n)
	for i := range out {
		out[i] = r
	}
	return out
}
