package coordinator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/simonbystrom/warroom/internal/query"
)

const rule = "================================================================================"

// FormatResponse renders an aggregated query response as plain text for
// the CLI.
func FormatResponse(resp Response) string {
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("Answer\n")
	b.WriteString(rule + "\n\n")

	switch resp.Summary.Type {
	case query.TypeCount:
		b.WriteString("Count results:\n")
		terms := make([]string, 0, len(resp.Summary.TotalCounts))
		for term := range resp.Summary.TotalCounts {
			terms = append(terms, term)
		}
		sort.Strings(terms)
		for _, term := range terms {
			fmt.Fprintf(&b, "  - %q mentioned %d times across all teams\n", term, resp.Summary.TotalCounts[term])
		}
		fmt.Fprintf(&b, "\nTeams with mentions: %d\n", resp.Summary.TeamsWithMentions)

	case query.TypeMeetings:
		fmt.Fprintf(&b, "Total meetings found: %d\n\n", resp.Summary.TotalMeetings)
		for _, m := range resp.Summary.AllMeetings {
			fmt.Fprintf(&b, "- %s - %s\n", m.Date, m.Team)
			fmt.Fprintf(&b, "  %s\n", firstLine(m.Info))
		}

	case query.TypeIssues:
		fmt.Fprintf(&b, "Total issues found: %d\n\n", resp.Summary.TotalIssues)
		issues := resp.Summary.AllIssues
		if len(issues) > 10 {
			issues = issues[:10]
		}
		for _, is := range issues {
			fmt.Fprintf(&b, "- %s - %s\n", is.ID, is.Team)
			fmt.Fprintf(&b, "  %s\n", firstLine(is.Info))
		}

	default:
		b.WriteString("Results by team:\n\n")
		for _, sel := range resp.Selections {
			fmt.Fprintf(&b, "- %s (score: %d)\n", sel.TeamName, sel.Score)
			if len(sel.Matched) > 0 {
				fmt.Fprintf(&b, "  matching capabilities: %s\n", strings.Join(sel.Matched, ", "))
			}
		}
	}

	b.WriteString("\n" + rule)
	return b.String()
}

// FormatIncidentResult renders an incident coordination result as plain
// text for the CLI.
func FormatIncidentResult(res IncidentResult) string {
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("Incident response summary\n")
	b.WriteString(rule + "\n\n")

	fmt.Fprintf(&b, "Incident: %s\n", res.Incident)
	fmt.Fprintf(&b, "Deadline: %s\n\n", res.Deadline.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total tasks proposed: %d\n", res.TotalTasks)
	fmt.Fprintf(&b, "Teams involved: %d\n\n", res.TeamsInvolved)

	b.WriteString("Task assignments by team (sorted by priority):\n\n")
	for _, a := range res.Assignments {
		fmt.Fprintf(&b, "%s\n", a.TeamName)
		fmt.Fprintf(&b, "  tasks: %d | est. hours: %.1f | avg priority: %.2f\n\n",
			a.TaskCount, a.TotalEstimatedHours, a.AverageImportance)

		for i, t := range a.Tasks {
			fmt.Fprintf(&b, "  %d. [%s] priority %d (%s)\n", i+1, t.ID, t.Importance, priorityLabel(t.Importance))
			fmt.Fprintf(&b, "     %s\n", t.Description)
			fmt.Fprintf(&b, "     assigned: %s | est: %.1fh | due: %s\n",
				t.AssignedTo, t.EstimatedHours, t.TentativeDeadline.Format("2006-01-02 15:04"))
			if len(t.Dependencies) > 0 {
				fmt.Fprintf(&b, "     depends on: %s\n", strings.Join(t.Dependencies, ", "))
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "Graph: %d nodes (1 incident + %d tasks), %d edges\n",
		len(res.Graph.Nodes), len(res.Graph.Nodes)-1, len(res.Graph.Edges))
	b.WriteString(rule)
	return b.String()
}

// priorityLabel buckets an importance value for display.
func priorityLabel(importance int) string {
	switch {
	case importance >= 8:
		return "HIGH"
	case importance >= 5:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
