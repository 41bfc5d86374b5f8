package task

import "time"

// Task is one unit of remediation work proposed for a team.
type Task struct {
	// ID is unique within a run: <Team_Name>_<CATEGORY>_<NN>.
	ID          string
	Description string
	// Importance is clamped to 1–10.
	Importance     int
	EstimatedHours float64
	// TentativeDeadline is always at or before the incident deadline.
	TentativeDeadline time.Time
	// AssignedTo is a team member or the team lead.
	AssignedTo string
	// Dependencies reference only earlier tasks from the same team's
	// proposal batch.
	Dependencies []string
}

// ClampImportance bounds an importance value to the valid 1–10 range.
func ClampImportance(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}
