// Package agent wraps one team's profile with the components that answer
// queries and propose incident tasks for it. Agents are synchronous
// logical components: they hold no goroutines and no mutable state.
package agent

import (
	"time"

	"github.com/simonbystrom/warroom/internal/query"
	"github.com/simonbystrom/warroom/internal/task"
	"github.com/simonbystrom/warroom/internal/team"
)

// Agent is one team knowledge agent.
type Agent struct {
	profile  *team.Profile
	engine   *query.Engine
	proposer *task.Proposer
}

// New creates an agent for a loaded profile. A nil enhancer disables
// task enhancement.
func New(p *team.Profile, enhancer task.Enhancer) *Agent {
	return &Agent{
		profile:  p,
		engine:   query.NewEngine(p.Name, p.RawText),
		proposer: task.NewProposer(p, enhancer),
	}
}

// Profile returns the agent's immutable team profile.
func (a *Agent) Profile() *team.Profile {
	return a.profile
}

// Identity summarizes what the agent can answer about, used by the
// coordinator to select agents.
type Identity struct {
	TeamName     string
	TeamLead     string
	MemberCount  int
	Capabilities []string
	Expertise    []string
	Path         string
}

// Identity returns the agent's identity and capability tags.
func (a *Agent) Identity() Identity {
	return Identity{
		TeamName:     a.profile.Name,
		TeamLead:     a.profile.Lead,
		MemberCount:  len(a.profile.Members),
		Capabilities: a.profile.Capabilities,
		Expertise:    a.profile.Expertise,
		Path:         a.profile.Path,
	}
}

// Answer runs a typed query against the team's document.
func (a *Agent) Answer(q string) query.Result {
	return a.engine.Answer(q)
}

// ProposeTasks generates the team's remediation tasks for an incident.
func (a *Agent) ProposeTasks(incident string, deadline time.Time) []task.Task {
	return a.proposer.Propose(incident, deadline)
}
