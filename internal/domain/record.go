package domain

// AllCollaborators is the reserved filter value meaning "no collaborator
// restriction". It must never collide with a real collaborator name.
const AllCollaborators = "all"

// HoursPerWorkday is the effective workday length (8h48m) used to derive
// hourly productivity averages.
const HoursPerWorkday = 8.8

// UnitRecord is one completed-item fact extracted from a spreadsheet row.
// Records are additive facts, not keyed entities: multiple records may share
// the same category, date and collaborator.
type UnitRecord struct {
	Category     string `json:"category"`
	Date         string `json:"date"` // ISO date, YYYY-MM-DD
	Items        int    `json:"items"`
	Collaborator string `json:"collaborator"`
}

// Collaborator is a registered team member whose uploads are tracked.
type Collaborator struct {
	Name string `json:"name"`
	Area string `json:"area"`
}
