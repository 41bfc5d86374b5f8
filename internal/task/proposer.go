package task

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/simonbystrom/warroom/internal/relevance"
	"github.com/simonbystrom/warroom/internal/team"
)

// Proposer generates a team's remediation tasks for an incident from the
// rule table, optionally transformed by an Enhancer.
type Proposer struct {
	profile  *team.Profile
	enhancer Enhancer
}

// NewProposer creates a Proposer for one team. A nil enhancer disables
// enhancement.
func NewProposer(p *team.Profile, e Enhancer) *Proposer {
	return &Proposer{profile: p, enhancer: e}
}

// Propose returns the team's task batch for an incident. Every team
// produces at least one task: a minimal monitoring task when the incident
// is irrelevant to its expertise.
func (pr *Proposer) Propose(incident string, deadline time.Time) []Task {
	score := relevance.ScoreIncident(pr.profile.Name, pr.profile.Expertise, incident)
	slog.Debug("incident relevance", "team", pr.profile.Name, "score", score)

	if score == 0 {
		return []Task{pr.monitorTask(deadline)}
	}

	baseImportance := ClampImportance(score / 5)
	tasks := pr.ruleTasks(incident, deadline, baseImportance)

	if len(tasks) == 0 {
		tasks = []Task{pr.investigateTask(deadline, baseImportance)}
	}

	tasks = pr.enhance(incident, tasks)
	pr.backfill(tasks, deadline)
	return validateDependencies(pr.profile.Name, tasks)
}

// ruleTasks walks the rule table and emits tasks for every block whose
// expertise area and incident triggers both match.
func (pr *Proposer) ruleTasks(incident string, deadline time.Time, baseImportance int) []Task {
	incidentLower := strings.ToLower(incident)
	var tasks []Task

	for _, block := range ruleBlocks {
		if !pr.hasAnyArea(block.areas) || !matchesAny(incidentLower, block.triggers) {
			continue
		}

		ids := make([]string, len(block.tasks))
		for i, tmpl := range block.tasks {
			ids[i] = pr.taskID(block.category, i+1)
			deps := make([]string, 0, len(tmpl.dependsOn))
			for _, di := range tmpl.dependsOn {
				deps = append(deps, ids[di])
			}
			tasks = append(tasks, Task{
				ID:                ids[i],
				Description:       tmpl.description,
				Importance:        ClampImportance(baseImportance + tmpl.offset),
				EstimatedHours:    tmpl.hours,
				TentativeDeadline: deadline.Add(-time.Duration(tmpl.leadHours) * time.Hour),
				AssignedTo:        pr.assignee(tmpl.assignee),
				Dependencies:      deps,
			})
		}
	}

	return tasks
}

func (pr *Proposer) monitorTask(deadline time.Time) Task {
	return Task{
		ID:                pr.taskID("SUPPORT", 1),
		Description:       fmt.Sprintf("Monitor %s systems for any related issues", pr.profile.Name),
		Importance:        1,
		EstimatedHours:    2,
		TentativeDeadline: deadline.Add(-4 * time.Hour),
		AssignedTo:        pr.profile.Lead,
	}
}

func (pr *Proposer) investigateTask(deadline time.Time, importance int) Task {
	return Task{
		ID:                pr.taskID("INVESTIGATE", 1),
		Description:       fmt.Sprintf("Investigate incident impact on %s systems", pr.profile.Name),
		Importance:        importance,
		EstimatedHours:    3,
		TentativeDeadline: deadline.Add(-6 * time.Hour),
		AssignedTo:        pr.profile.Lead,
	}
}

// enhance runs the optional enhancement hook. The hook is advisory: any
// failure keeps the rule-based batch unchanged.
func (pr *Proposer) enhance(incident string, tasks []Task) []Task {
	if pr.enhancer == nil {
		return tasks
	}
	enhanced, err := pr.enhancer.Enhance(pr.profile.Name, pr.profile.Expertise, incident, tasks)
	if err != nil {
		slog.Warn("task enhancement failed, using rule-based tasks", "team", pr.profile.Name, "error", err)
		return tasks
	}
	if len(enhanced) == 0 {
		return tasks
	}
	return enhanced
}

// backfill fills deadlines and assignees the enhancement step may have
// left open, using the same rotation and offset logic as rule generation.
func (pr *Proposer) backfill(tasks []Task, deadline time.Time) {
	n := len(tasks)
	for i := range tasks {
		if tasks[i].TentativeDeadline.IsZero() {
			hoursBefore := (n - i) * 2
			if hoursBefore < 2 {
				hoursBefore = 2
			}
			tasks[i].TentativeDeadline = deadline.Add(-time.Duration(hoursBefore) * time.Hour)
		}
		if tasks[i].AssignedTo == "" || tasks[i].AssignedTo == "TBD" {
			if len(pr.profile.Members) == 0 {
				tasks[i].AssignedTo = pr.profile.Lead
			} else {
				tasks[i].AssignedTo = pr.profile.Members[i%len(pr.profile.Members)]
			}
		}
		tasks[i].Importance = ClampImportance(tasks[i].Importance)
	}
}

// validateDependencies drops any dependency that does not reference an
// earlier task in the same batch. Enhancement may reorder or remove
// tasks; dangling references would otherwise break the DAG invariant.
func validateDependencies(teamName string, tasks []Task) []Task {
	seen := make(map[string]bool, len(tasks))
	for i := range tasks {
		kept := tasks[i].Dependencies[:0]
		for _, dep := range tasks[i].Dependencies {
			if seen[dep] {
				kept = append(kept, dep)
			} else {
				slog.Warn("dropping dangling task dependency", "team", teamName, "task", tasks[i].ID, "dependency", dep)
			}
		}
		tasks[i].Dependencies = kept
		seen[tasks[i].ID] = true
	}
	return tasks
}

func (pr *Proposer) taskID(category string, seq int) string {
	return fmt.Sprintf("%s_%s_%02d", strings.ReplaceAll(pr.profile.Name, " ", "_"), category, seq)
}

// assignee resolves a rotation index to a member name, falling back to
// the team lead when the index is out of range.
func (pr *Proposer) assignee(idx int) string {
	if idx >= 0 && idx < len(pr.profile.Members) {
		return pr.profile.Members[idx]
	}
	return pr.profile.Lead
}

func (pr *Proposer) hasAnyArea(areas []string) bool {
	for _, a := range areas {
		if pr.profile.HasExpertise(a) {
			return true
		}
	}
	return false
}

func matchesAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
