package domain

import (
	"math"
	"testing"
)

func TestComputeMetrics(t *testing.T) {
	tests := []struct {
		name     string
		filtered []UnitRecord
		all      []UnitRecord
		expected Metrics
	}{
		{
			name: "two days of records",
			filtered: []UnitRecord{
				{Category: "BAZAR", Date: "2025-09-05", Items: 1, Collaborator: "Ana"},
				{Category: "BAZAR", Date: "2025-09-05", Items: 1, Collaborator: "Ana"},
				{Category: "LIMPEZA", Date: "2025-09-06", Items: 1, Collaborator: "Bruno"},
			},
			all: []UnitRecord{
				{Category: "BAZAR", Date: "2025-09-05", Items: 1, Collaborator: "Ana"},
				{Category: "BAZAR", Date: "2025-09-05", Items: 1, Collaborator: "Ana"},
				{Category: "LIMPEZA", Date: "2025-09-06", Items: 1, Collaborator: "Bruno"},
				{Category: "LIMPEZA", Date: "2025-08-01", Items: 1, Collaborator: "Bruno"},
			},
			expected: Metrics{
				TotalItems:      3,
				TotalDays:       2,
				GrandTotalItems: 4,
				AvgDaily:        1.5,
				AvgHourly:       3.0 / (2 * 8.8),
			},
		},
		{
			name:     "empty filtered set keeps averages zero, not NaN",
			filtered: nil,
			all: []UnitRecord{
				{Category: "BAZAR", Date: "2025-09-05", Items: 1, Collaborator: "Ana"},
			},
			expected: Metrics{
				TotalItems:      0,
				TotalDays:       0,
				GrandTotalItems: 1,
				AvgDaily:        0,
				AvgHourly:       0,
			},
		},
		{
			name:     "everything empty",
			filtered: nil,
			all:      nil,
			expected: Metrics{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMetrics(tt.filtered, tt.all)
			if got.TotalItems != tt.expected.TotalItems {
				t.Errorf("TotalItems: expected %d, got %d", tt.expected.TotalItems, got.TotalItems)
			}
			if got.TotalDays != tt.expected.TotalDays {
				t.Errorf("TotalDays: expected %d, got %d", tt.expected.TotalDays, got.TotalDays)
			}
			if got.GrandTotalItems != tt.expected.GrandTotalItems {
				t.Errorf("GrandTotalItems: expected %d, got %d", tt.expected.GrandTotalItems, got.GrandTotalItems)
			}
			assertFloatNear(t, "AvgDaily", tt.expected.AvgDaily, got.AvgDaily)
			assertFloatNear(t, "AvgHourly", tt.expected.AvgHourly, got.AvgHourly)
		})
	}
}

func TestDailySeries_SortedAndSummed(t *testing.T) {
	filtered := []UnitRecord{
		{Date: "2025-09-07", Items: 1},
		{Date: "2025-09-05", Items: 1},
		{Date: "2025-09-07", Items: 1},
		{Date: "2025-09-06", Items: 1},
	}

	series := DailySeries(filtered)

	if len(series) != 3 {
		t.Fatalf("expected 3 points, got %d", len(series))
	}
	wantDates := []string{"2025-09-05", "2025-09-06", "2025-09-07"}
	wantItems := []int{1, 1, 2}
	for i, p := range series {
		if p.Date != wantDates[i] {
			t.Errorf("point %d: expected date %s, got %s", i, wantDates[i], p.Date)
		}
		if p.Items != wantItems[i] {
			t.Errorf("point %d: expected %d items, got %d", i, wantItems[i], p.Items)
		}
	}
}

func TestDailySeries_SumEqualsTotalItems(t *testing.T) {
	filtered := []UnitRecord{
		{Date: "2025-09-05", Items: 1},
		{Date: "2025-09-05", Items: 1},
		{Date: "2025-09-08", Items: 1},
		{Date: "2025-09-10", Items: 1},
	}

	metrics := ComputeMetrics(filtered, filtered)
	sum := 0
	for _, p := range DailySeries(filtered) {
		sum += p.Items
	}

	if sum != metrics.TotalItems {
		t.Errorf("daily series sums to %d, metrics report %d", sum, metrics.TotalItems)
	}
}

func TestCategorySeries_FirstAppearanceOrder(t *testing.T) {
	filtered := []UnitRecord{
		{Category: "LIMPEZA", Date: "2025-09-05", Items: 1},
		{Category: "BAZAR", Date: "2025-09-05", Items: 1},
		{Category: "LIMPEZA", Date: "2025-09-06", Items: 1},
	}

	series := CategorySeries(filtered)

	if len(series) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(series))
	}
	if series[0].Name != "LIMPEZA" || series[0].Value != 2 {
		t.Errorf("expected LIMPEZA=2 first, got %s=%d", series[0].Name, series[0].Value)
	}
	if series[1].Name != "BAZAR" || series[1].Value != 1 {
		t.Errorf("expected BAZAR=1 second, got %s=%d", series[1].Name, series[1].Value)
	}
}

func TestCollaboratorSeries_AvgUsesGlobalDayCount(t *testing.T) {
	// Ana worked 2 days, Bruno only 1. Both averages divide by the overall
	// distinct-day count of the window.
	filtered := []UnitRecord{
		{Collaborator: "Ana", Date: "2025-09-05", Items: 1},
		{Collaborator: "Ana", Date: "2025-09-06", Items: 1},
		{Collaborator: "Bruno", Date: "2025-09-05", Items: 1},
	}

	series := CollaboratorSeries(filtered, 2)

	if len(series) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(series))
	}
	assertFloatNear(t, "Ana avg", 1.0, series[0].Avg)
	assertFloatNear(t, "Bruno avg", 0.5, series[1].Avg)
}

func TestCollaboratorSeries_ZeroDaysFloor(t *testing.T) {
	filtered := []UnitRecord{{Collaborator: "Ana", Date: "2025-09-05", Items: 1}}
	series := CollaboratorSeries(filtered, 0)
	assertFloatNear(t, "avg with zero days", 1.0, series[0].Avg)
}

func TestComputeDailyCollaboratorSeries_ZeroFilled(t *testing.T) {
	filtered := []UnitRecord{
		{Collaborator: "Ana", Date: "2025-09-05", Items: 1},
		{Collaborator: "Ana", Date: "2025-09-06", Items: 1},
		{Collaborator: "Bruno", Date: "2025-09-06", Items: 1},
	}

	series := ComputeDailyCollaboratorSeries(filtered)

	if len(series.Collaborators) != 2 {
		t.Fatalf("expected 2 collaborators, got %d", len(series.Collaborators))
	}
	if len(series.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(series.Rows))
	}
	first := series.Rows[0]
	if first.Date != "2025-09-05" {
		t.Errorf("expected first row 2025-09-05, got %s", first.Date)
	}
	if first.Items["Ana"] != 1 {
		t.Errorf("expected Ana=1 on first day, got %d", first.Items["Ana"])
	}
	if got, ok := first.Items["Bruno"]; !ok || got != 0 {
		t.Errorf("expected zero-filled Bruno cell on first day, got %d (present=%v)", got, ok)
	}
}

func TestCollaboratorNames_UnionWithSentinel(t *testing.T) {
	all := []UnitRecord{
		{Collaborator: "Ana"},
		{Collaborator: "Bruno"},
		{Collaborator: "Ana"},
	}
	registered := []Collaborator{
		{Name: "Bruno", Area: "Bazar"},
		{Name: "Carla", Area: "Limpeza"},
	}

	names := CollaboratorNames(all, registered)

	want := []string{"all", "Ana", "Bruno", "Carla"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}

func assertFloatNear(t *testing.T, name string, expected, actual float64) {
	t.Helper()
	if math.Abs(expected-actual) > 0.0001 {
		t.Errorf("%s: expected %.6f, got %.6f", name, expected, actual)
	}
}
