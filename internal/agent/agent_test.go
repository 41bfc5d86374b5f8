package agent

import (
	"testing"
	"time"

	"github.com/simonbystrom/warroom/internal/query"
	"github.com/simonbystrom/warroom/internal/team"
)

const raw = `Team Name: Payments
Team Lead: Iris
Members: Jo, Kai

=== Meeting Notes ===
  - 2024-02-14: PAY-9 settlement backlog review

=== Open Issues ===
  - PAY-9: Settlement jobs backing up
`

func TestAgent_Identity(t *testing.T) {
	a := New(team.NewProfile("payments.txt", raw), nil)

	id := a.Identity()
	if id.TeamName != "Payments" || id.TeamLead != "Iris" {
		t.Errorf("identity = %+v, want profile fields", id)
	}
	if id.MemberCount != 2 {
		t.Errorf("member count = %d, want 2", id.MemberCount)
	}
	if len(id.Capabilities) == 0 {
		t.Error("capabilities empty")
	}
	if id.Path != "payments.txt" {
		t.Errorf("path = %q, want source path", id.Path)
	}
}

func TestAgent_AnswerUsesOwnDocument(t *testing.T) {
	a := New(team.NewProfile("payments.txt", raw), nil)

	res := a.Answer("issues about settlement")
	if res.TeamName != "Payments" {
		t.Errorf("team = %s, want Payments", res.TeamName)
	}
	if res.Type != query.TypeIssues || len(res.Issues) != 1 {
		t.Fatalf("result = %+v, want the one settlement issue", res)
	}
}

func TestAgent_ProposeTasksNeverEmpty(t *testing.T) {
	a := New(team.NewProfile("payments.txt", raw), nil)

	tasks := a.ProposeTasks("totally unrelated incident", time.Now().Add(8*time.Hour))
	if len(tasks) == 0 {
		t.Fatal("every team must propose at least one task")
	}
}

func TestRegistry_LookupAndOrder(t *testing.T) {
	p1 := team.NewProfile("a.txt", "Team Name: Alpha")
	p2 := team.NewProfile("b.txt", "Team Name: Beta")
	r := NewRegistry([]*team.Profile{p1, p2}, nil)

	if r.Len() != 2 {
		t.Fatalf("len = %d, want 2", r.Len())
	}
	if r.All()[0].Profile().Name != "Alpha" {
		t.Errorf("first agent = %s, want load order", r.All()[0].Profile().Name)
	}
	a, ok := r.Get("Beta")
	if !ok || a.Profile().Name != "Beta" {
		t.Errorf("Get(Beta) = %v, %v", a, ok)
	}
	if _, ok := r.Get("Gamma"); ok {
		t.Error("Get(Gamma) should miss")
	}
}
