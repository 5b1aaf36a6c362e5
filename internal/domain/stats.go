package domain

import "sort"

// Metrics holds the summary numbers shown on the dashboard cards.
// Recomputed from the record set on every input change, never persisted.
type Metrics struct {
	TotalItems      int     `json:"totalItems"`
	TotalDays       int     `json:"totalDays"`
	GrandTotalItems int     `json:"grandTotalItems"`
	AvgDaily        float64 `json:"avgDaily"`
	AvgHourly       float64 `json:"avgHourly"`
}

// DailyPoint is one day's item total. Date is the ISO date; chart labels are
// derived at the presentation layer.
type DailyPoint struct {
	Date  string `json:"date"`
	Items int    `json:"items"`
}

// CategorySlice is one category's share of the distribution chart.
type CategorySlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CollaboratorTotal is one collaborator's bar in the comparison chart.
type CollaboratorTotal struct {
	Name  string  `json:"name"`
	Items int     `json:"items"`
	Avg   float64 `json:"avg"`
}

// DailyCollaboratorRow is one day of the per-collaborator evolution matrix.
// Items has an entry for every collaborator in the series, zero-filled.
type DailyCollaboratorRow struct {
	Date  string         `json:"date"`
	Items map[string]int `json:"items"`
}

// DailyCollaboratorSeries is the date x collaborator matrix. Collaborators
// preserves first-appearance order so chart columns stay stable.
type DailyCollaboratorSeries struct {
	Collaborators []string               `json:"collaborators"`
	Rows          []DailyCollaboratorRow `json:"rows"`
}

// ComputeMetrics derives the summary metrics from the filtered records.
// The grand total is taken over the entire unfiltered set. All divisions are
// zero-safe: averages are 0 when no day has records.
func ComputeMetrics(filtered, all []UnitRecord) Metrics {
	var m Metrics
	days := make(map[string]struct{})
	for _, r := range filtered {
		m.TotalItems += r.Items
		days[r.Date] = struct{}{}
	}
	m.TotalDays = len(days)
	for _, r := range all {
		m.GrandTotalItems += r.Items
	}
	if m.TotalDays > 0 {
		m.AvgDaily = float64(m.TotalItems) / float64(m.TotalDays)
		m.AvgHourly = float64(m.TotalItems) / (float64(m.TotalDays) * HoursPerWorkday)
	}
	return m
}

// DailySeries groups the filtered records by date and sums items, sorted
// ascending by ISO date. The sort happens on the ISO form, where
// lexicographic order is chronological.
func DailySeries(filtered []UnitRecord) []DailyPoint {
	grouped := make(map[string]int)
	for _, r := range filtered {
		grouped[r.Date] += r.Items
	}

	dates := make([]string, 0, len(grouped))
	for d := range grouped {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	series := make([]DailyPoint, 0, len(dates))
	for _, d := range dates {
		series = append(series, DailyPoint{Date: d, Items: grouped[d]})
	}
	return series
}

// CategorySeries groups the filtered records by category and sums items.
// Categories appear in first-appearance order, not sorted.
func CategorySeries(filtered []UnitRecord) []CategorySlice {
	totals := make(map[string]int)
	var order []string
	for _, r := range filtered {
		if _, ok := totals[r.Category]; !ok {
			order = append(order, r.Category)
		}
		totals[r.Category] += r.Items
	}

	series := make([]CategorySlice, 0, len(order))
	for _, name := range order {
		series = append(series, CategorySlice{Name: name, Value: totals[name]})
	}
	return series
}

// CollaboratorSeries groups the filtered records by collaborator and sums
// items. Avg divides by the overall distinct-day count of the filtered set,
// not a per-collaborator day count, with a floor of 1 to avoid division by
// zero.
func CollaboratorSeries(filtered []UnitRecord, totalDays int) []CollaboratorTotal {
	if totalDays < 1 {
		totalDays = 1
	}

	totals := make(map[string]int)
	var order []string
	for _, r := range filtered {
		if _, ok := totals[r.Collaborator]; !ok {
			order = append(order, r.Collaborator)
		}
		totals[r.Collaborator] += r.Items
	}

	series := make([]CollaboratorTotal, 0, len(order))
	for _, name := range order {
		series = append(series, CollaboratorTotal{
			Name:  name,
			Items: totals[name],
			Avg:   float64(totals[name]) / float64(totalDays),
		})
	}
	return series
}

// ComputeDailyCollaboratorSeries builds the date x collaborator matrix over
// the filtered records. Rows cover every distinct date sorted ascending;
// missing cells are zero-filled.
func ComputeDailyCollaboratorSeries(filtered []UnitRecord) DailyCollaboratorSeries {
	byCollaborator := make(map[string]map[string]int)
	var collaborators []string
	dateSet := make(map[string]struct{})

	for _, r := range filtered {
		if _, ok := byCollaborator[r.Collaborator]; !ok {
			byCollaborator[r.Collaborator] = make(map[string]int)
			collaborators = append(collaborators, r.Collaborator)
		}
		byCollaborator[r.Collaborator][r.Date] += r.Items
		dateSet[r.Date] = struct{}{}
	}

	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	rows := make([]DailyCollaboratorRow, 0, len(dates))
	for _, d := range dates {
		row := DailyCollaboratorRow{Date: d, Items: make(map[string]int, len(collaborators))}
		for _, c := range collaborators {
			row.Items[c] = byCollaborator[c][d]
		}
		rows = append(rows, row)
	}

	return DailyCollaboratorSeries{Collaborators: collaborators, Rows: rows}
}

// CollaboratorNames returns the deduplicated union of collaborator names
// appearing in the full record set and in the registry, with the
// AllCollaborators filter value prepended. Names keep first-appearance
// order: record authors first, then registered-only names.
func CollaboratorNames(all []UnitRecord, registered []Collaborator) []string {
	names := []string{AllCollaborators}
	seen := make(map[string]struct{})
	for _, r := range all {
		if _, ok := seen[r.Collaborator]; ok {
			continue
		}
		seen[r.Collaborator] = struct{}{}
		names = append(names, r.Collaborator)
	}
	for _, c := range registered {
		if _, ok := seen[c.Name]; ok {
			continue
		}
		seen[c.Name] = struct{}{}
		names = append(names, c.Name)
	}
	return names
}
