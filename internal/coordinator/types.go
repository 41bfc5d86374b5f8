package coordinator

import (
	"strings"
	"time"

	"github.com/simonbystrom/warroom/internal/query"
	"github.com/simonbystrom/warroom/internal/task"
)

// Selection explains why one agent was queried.
type Selection struct {
	TeamName string
	Score    int
	Matched  []string
}

// TeamMeeting is a meeting tagged with the team that reported it.
type TeamMeeting struct {
	query.Meeting
	Team string
}

// TeamIssue is an issue tagged with the team that reported it.
type TeamIssue struct {
	query.Issue
	Team string
}

// Summary is the cross-team rollup of a query's results. Only the fields
// for the given Type are populated.
type Summary struct {
	Type query.Type

	// count
	TotalCounts       map[string]int
	TeamsWithMentions int

	// meetings
	TotalMeetings int
	AllMeetings   []TeamMeeting

	// issues
	TotalIssues int
	AllIssues   []TeamIssue

	// general
	ByTeam map[string]query.Result
}

// Response is the aggregated answer to one query.
type Response struct {
	Query         string
	AgentsQueried int
	Selections    []Selection
	Results       []query.Result
	Summary       Summary
}

// NodeKind distinguishes the incident node from task nodes.
type NodeKind string

const (
	NodeIncident NodeKind = "incident"
	NodeTask     NodeKind = "task"
)

// EdgeKind distinguishes relevance edges from dependency edges.
type EdgeKind string

const (
	EdgeRelevance  EdgeKind = "relevance"
	EdgeDependency EdgeKind = "dependency"
)

// Node is one vertex of the task graph.
type Node struct {
	ID         string
	Label      string
	Kind       NodeKind
	Importance int
	Team       string
	Deadline   time.Time
}

// Edge is one edge of the task graph.
type Edge struct {
	From   string
	To     string
	Weight int
	Kind   EdgeKind
}

// TaskGraph links every proposed task to the incident and to the tasks
// it depends on. It is plain data for the presentation layer.
type TaskGraph struct {
	Nodes []Node
	Edges []Edge
}

// Assignment is the per-team rollup of proposed tasks, sorted by
// importance descending.
type Assignment struct {
	TeamName            string
	TaskCount           int
	TotalEstimatedHours float64
	AverageImportance   float64
	Tasks               []task.Task
}

// IncidentResult is the full output of one incident coordination pass.
type IncidentResult struct {
	Incident      string
	Deadline      time.Time
	Graph         TaskGraph
	Assignments   []Assignment
	TotalTasks    int
	TeamsInvolved int
}

// IncidentReport is a structured incident description. The coordinator
// itself only ever sees the composed string.
type IncidentReport struct {
	Title            string
	Description      string
	Severity         string
	AffectedServices string
	Impact           string
	InitialActions   string
}

// Describe flattens the report into the single description string the
// coordinator consumes.
func (r IncidentReport) Describe() string {
	var b strings.Builder
	if r.Title != "" {
		b.WriteString(r.Title)
		b.WriteString(": ")
	}
	b.WriteString(r.Description)
	if r.AffectedServices != "" {
		b.WriteString(" | Affected Services: " + r.AffectedServices)
	}
	if r.Impact != "" {
		b.WriteString(" | Customer Impact: " + r.Impact)
	}
	if r.Severity != "" {
		b.WriteString(" | Severity: " + strings.ToUpper(r.Severity))
	}
	if r.InitialActions != "" {
		b.WriteString(" | Initial Actions: " + r.InitialActions)
	}
	return b.String()
}
