package task

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/simonbystrom/warroom/internal/team"
)

var incidentDeadline = time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)

func securityProfile() *team.Profile {
	return &team.Profile{
		Name:      "Platform Security",
		Lead:      "Dana",
		Members:   []string{"Ali", "Bo"},
		Expertise: []string{"security"},
	}
}

// fakeEnhancer returns a fixed batch or error, recording the invocation.
type fakeEnhancer struct {
	tasks  []Task
	err    error
	called bool
}

func (f *fakeEnhancer) Enhance(teamName string, expertise []string, incident string, tasks []Task) ([]Task, error) {
	f.called = true
	return f.tasks, f.err
}

func TestPropose_ZeroRelevanceMonitorTask(t *testing.T) {
	p := NewProposer(&team.Profile{
		Name: "Web", Lead: "Kim", Members: []string{"Lee"},
		Expertise: []string{"frontend"},
	}, nil)

	tasks := p.Propose("database corruption detected", incidentDeadline)
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want exactly one monitoring task", len(tasks))
	}
	mt := tasks[0]
	if mt.ID != "Web_SUPPORT_01" {
		t.Errorf("id = %s, want Web_SUPPORT_01", mt.ID)
	}
	if !strings.HasPrefix(mt.Description, "Monitor") {
		t.Errorf("description = %q, want monitoring task", mt.Description)
	}
	if mt.Importance != 1 {
		t.Errorf("importance = %d, want 1", mt.Importance)
	}
	if mt.AssignedTo != "Kim" {
		t.Errorf("assigned to %s, want the lead", mt.AssignedTo)
	}
	if want := incidentDeadline.Add(-4 * time.Hour); !mt.TentativeDeadline.Equal(want) {
		t.Errorf("deadline = %v, want %v", mt.TentativeDeadline, want)
	}
}

func TestPropose_SecurityIncident(t *testing.T) {
	p := NewProposer(securityProfile(), nil)

	// Area word (+10) plus the security rule (+20) gives base importance 6.
	tasks := p.Propose("security breach in the auth service", incidentDeadline)
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(tasks))
	}

	if tasks[0].ID != "Platform_Security_SEC_01" {
		t.Errorf("id = %s, want Platform_Security_SEC_01", tasks[0].ID)
	}
	if tasks[0].Importance != 9 || tasks[1].Importance != 8 || tasks[2].Importance != 10 {
		t.Errorf("importances = %d,%d,%d; want 9,8,10",
			tasks[0].Importance, tasks[1].Importance, tasks[2].Importance)
	}
	if tasks[0].AssignedTo != "Ali" || tasks[1].AssignedTo != "Bo" || tasks[2].AssignedTo != "Dana" {
		t.Errorf("assignees = %s,%s,%s; want rotation then lead",
			tasks[0].AssignedTo, tasks[1].AssignedTo, tasks[2].AssignedTo)
	}

	// Log review and patches both depend on the audit.
	for _, i := range []int{1, 2} {
		if len(tasks[i].Dependencies) != 1 || tasks[i].Dependencies[0] != "Platform_Security_SEC_01" {
			t.Errorf("task %d dependencies = %v, want the audit task", i, tasks[i].Dependencies)
		}
	}

	for _, task := range tasks {
		if task.TentativeDeadline.After(incidentDeadline) {
			t.Errorf("task %s deadline %v past the incident deadline", task.ID, task.TentativeDeadline)
		}
	}
	if want := incidentDeadline.Add(-8 * time.Hour); !tasks[0].TentativeDeadline.Equal(want) {
		t.Errorf("audit deadline = %v, want %v", tasks[0].TentativeDeadline, want)
	}
}

func TestPropose_MultipleBlocksFire(t *testing.T) {
	p := NewProposer(&team.Profile{
		Name: "Core", Lead: "Sam", Members: []string{"Uma", "Vik"},
		Expertise: []string{"security", "backend"},
	}, nil)

	tasks := p.Propose("security breach caused an outage", incidentDeadline)
	if len(tasks) != 6 {
		t.Fatalf("got %d tasks, want SEC and INFRA blocks (6 tasks)", len(tasks))
	}
	if tasks[3].ID != "Core_INFRA_01" {
		t.Errorf("id = %s, want INFRA block after SEC", tasks[3].ID)
	}
	// Restart depends on the health check from its own block.
	if len(tasks[4].Dependencies) != 1 || tasks[4].Dependencies[0] != "Core_INFRA_01" {
		t.Errorf("dependencies = %v, want Core_INFRA_01", tasks[4].Dependencies)
	}
}

func TestPropose_InvestigateFallback(t *testing.T) {
	p := NewProposer(&team.Profile{
		Name: "Obs", Lead: "Pat",
		Expertise: []string{"monitoring"},
	}, nil)

	// Relevant (area word matches) but no rule block covers monitoring.
	tasks := p.Propose("monitoring gap during rollout", incidentDeadline)
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want the investigation fallback", len(tasks))
	}
	if tasks[0].ID != "Obs_INVESTIGATE_01" {
		t.Errorf("id = %s, want Obs_INVESTIGATE_01", tasks[0].ID)
	}
	if tasks[0].Importance != 2 {
		t.Errorf("importance = %d, want base importance 2", tasks[0].Importance)
	}
	if tasks[0].AssignedTo != "Pat" {
		t.Errorf("assigned to %s, want the lead", tasks[0].AssignedTo)
	}
}

func TestPropose_EnhancerReplacesBatch(t *testing.T) {
	fe := &fakeEnhancer{tasks: []Task{
		{ID: "X_01", Description: "rewritten", Importance: 7, EstimatedHours: 1,
			TentativeDeadline: incidentDeadline.Add(-time.Hour), AssignedTo: "Ali"},
	}}
	p := NewProposer(securityProfile(), fe)

	tasks := p.Propose("security breach", incidentDeadline)
	if !fe.called {
		t.Fatal("enhancer not invoked")
	}
	if len(tasks) != 1 || tasks[0].Description != "rewritten" {
		t.Fatalf("tasks = %+v, want the enhanced batch", tasks)
	}
}

func TestPropose_EnhancerErrorKeepsRuleTasks(t *testing.T) {
	fe := &fakeEnhancer{err: errors.New("boom")}
	p := NewProposer(securityProfile(), fe)

	tasks := p.Propose("security breach", incidentDeadline)
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want the rule-based batch kept on error", len(tasks))
	}
}

func TestPropose_EnhancerEmptyKeepsRuleTasks(t *testing.T) {
	fe := &fakeEnhancer{tasks: []Task{}}
	p := NewProposer(securityProfile(), fe)

	tasks := p.Propose("security breach", incidentDeadline)
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want the rule-based batch kept on empty output", len(tasks))
	}
}

func TestPropose_BackfillDeadlinesAndRotation(t *testing.T) {
	fe := &fakeEnhancer{tasks: []Task{
		{ID: "A_01", Description: "a", Importance: 5, AssignedTo: "TBD"},
		{ID: "A_02", Description: "b", Importance: 5},
		{ID: "A_03", Description: "c", Importance: 42, AssignedTo: "TBD"},
	}}
	p := NewProposer(securityProfile(), fe)

	tasks := p.Propose("security breach", incidentDeadline)
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(tasks))
	}

	// Earlier tasks get earlier backfilled deadlines.
	wants := []time.Time{
		incidentDeadline.Add(-6 * time.Hour),
		incidentDeadline.Add(-4 * time.Hour),
		incidentDeadline.Add(-2 * time.Hour),
	}
	for i, want := range wants {
		if !tasks[i].TentativeDeadline.Equal(want) {
			t.Errorf("task %d deadline = %v, want %v", i, tasks[i].TentativeDeadline, want)
		}
	}

	if tasks[0].AssignedTo != "Ali" || tasks[1].AssignedTo != "Bo" || tasks[2].AssignedTo != "Ali" {
		t.Errorf("assignees = %s,%s,%s; want member rotation",
			tasks[0].AssignedTo, tasks[1].AssignedTo, tasks[2].AssignedTo)
	}

	if tasks[2].Importance != 10 {
		t.Errorf("importance = %d, want clamped to 10", tasks[2].Importance)
	}
}

func TestPropose_BackfillNoMembersUsesLead(t *testing.T) {
	fe := &fakeEnhancer{tasks: []Task{
		{ID: "A_01", Description: "a", Importance: 5, AssignedTo: "TBD"},
	}}
	p := NewProposer(&team.Profile{
		Name: "Solo", Lead: "Rae", Expertise: []string{"security"},
	}, fe)

	tasks := p.Propose("security breach", incidentDeadline)
	if tasks[0].AssignedTo != "Rae" {
		t.Errorf("assigned to %s, want the lead when no members exist", tasks[0].AssignedTo)
	}
}

func TestPropose_DanglingDependencyDropped(t *testing.T) {
	fe := &fakeEnhancer{tasks: []Task{
		{ID: "A_01", Description: "a", Importance: 5, AssignedTo: "Ali",
			Dependencies: []string{"GHOST_99"}},
		{ID: "A_02", Description: "b", Importance: 5, AssignedTo: "Bo",
			Dependencies: []string{"A_01", "A_03"}},
	}}
	p := NewProposer(securityProfile(), fe)

	tasks := p.Propose("security breach", incidentDeadline)
	if len(tasks[0].Dependencies) != 0 {
		t.Errorf("dependencies = %v, want unknown reference dropped", tasks[0].Dependencies)
	}
	// A_01 is an earlier task and survives; A_03 is a forward reference.
	if len(tasks[1].Dependencies) != 1 || tasks[1].Dependencies[0] != "A_01" {
		t.Errorf("dependencies = %v, want only A_01", tasks[1].Dependencies)
	}
}

func TestClampImportance(t *testing.T) {
	cases := []struct{ in, want int }{
		{-3, 1}, {0, 1}, {1, 1}, {5, 5}, {10, 10}, {11, 10},
	}
	for _, tc := range cases {
		if got := ClampImportance(tc.in); got != tc.want {
			t.Errorf("ClampImportance(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
