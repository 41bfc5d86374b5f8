package coordinator

import (
	"log/slog"
	"math"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/simonbystrom/warroom/internal/task"
)

const incidentNodeID = "INCIDENT"

// HandleIncident coordinates an incident response pass: every agent is
// asked for tasks unconditionally, and the results are assembled into a
// task graph and per-team assignments.
func (c *Coordinator) HandleIncident(incident string, deadline time.Time) IncidentResult {
	slog.Info("coordinating incident response", "incident", incident, "deadline", deadline)

	var allTasks []task.Task
	teamTasks := make(map[string][]task.Task)
	var teamOrder []string

	for _, a := range c.registry.All() {
		name := a.Profile().Name
		tasks := a.ProposeTasks(incident, deadline)
		slog.Info("collected task proposals", "team", name, "tasks", len(tasks))
		teamTasks[name] = tasks
		teamOrder = append(teamOrder, name)
		allTasks = append(allTasks, tasks...)
	}

	return IncidentResult{
		Incident:      incident,
		Deadline:      deadline,
		Graph:         buildTaskGraph(incident, allTasks),
		Assignments:   buildAssignments(teamOrder, teamTasks),
		TotalTasks:    len(allTasks),
		TeamsInvolved: len(teamOrder),
	}
}

// buildTaskGraph links every task to the central incident node with a
// relevance edge weighted by importance, plus one dependency edge per
// declared dependency.
func buildTaskGraph(incident string, tasks []task.Task) TaskGraph {
	g := TaskGraph{
		Nodes: []Node{{
			ID:         incidentNodeID,
			Label:      truncate(incident, 50),
			Kind:       NodeIncident,
			Importance: 10,
		}},
	}

	for _, t := range tasks {
		g.Nodes = append(g.Nodes, Node{
			ID:         t.ID,
			Label:      truncate(t.Description, 40),
			Kind:       NodeTask,
			Importance: t.Importance,
			Team:       t.AssignedTo,
			Deadline:   t.TentativeDeadline,
		})
		g.Edges = append(g.Edges, Edge{
			From:   t.ID,
			To:     incidentNodeID,
			Weight: t.Importance,
			Kind:   EdgeRelevance,
		})
		for _, dep := range t.Dependencies {
			g.Edges = append(g.Edges, Edge{
				From:   dep,
				To:     t.ID,
				Weight: 5,
				Kind:   EdgeDependency,
			})
		}
	}

	return g
}

// buildAssignments groups tasks by team, sorts each team's tasks by
// importance descending, and sorts teams by average importance
// descending. Both sorts are stable so ties keep proposal order.
func buildAssignments(teamOrder []string, teamTasks map[string][]task.Task) []Assignment {
	var assignments []Assignment
	for _, name := range teamOrder {
		tasks := teamTasks[name]
		if len(tasks) == 0 {
			continue
		}

		sorted := make([]task.Task, len(tasks))
		copy(sorted, tasks)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Importance > sorted[j].Importance
		})

		var totalHours float64
		var totalImportance int
		for _, t := range tasks {
			totalHours += t.EstimatedHours
			totalImportance += t.Importance
		}

		assignments = append(assignments, Assignment{
			TeamName:            name,
			TaskCount:           len(tasks),
			TotalEstimatedHours: totalHours,
			AverageImportance:   round2(float64(totalImportance) / float64(len(tasks))),
			Tasks:               sorted,
		})
	}

	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].AverageImportance > assignments[j].AverageImportance
	})

	return assignments
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "..."
}
