package agent

import (
	"github.com/simonbystrom/warroom/internal/task"
	"github.com/simonbystrom/warroom/internal/team"
)

// Registry is the process-wide set of loaded agents. It is built once at
// start-up and read-only afterwards, so lookups need no locking.
type Registry struct {
	agents []*Agent
	byName map[string]*Agent
}

// NewRegistry builds agents for the given profiles, in load order.
func NewRegistry(profiles []*team.Profile, enhancer task.Enhancer) *Registry {
	r := &Registry{
		agents: make([]*Agent, 0, len(profiles)),
		byName: make(map[string]*Agent, len(profiles)),
	}
	for _, p := range profiles {
		a := New(p, enhancer)
		r.agents = append(r.agents, a)
		r.byName[p.Name] = a
	}
	return r
}

// All returns the agents in load order.
func (r *Registry) All() []*Agent {
	return r.agents
}

// Get looks an agent up by team name.
func (r *Registry) Get(teamName string) (*Agent, bool) {
	a, ok := r.byName[teamName]
	return a, ok
}

// Len returns the number of loaded agents.
func (r *Registry) Len() int {
	return len(r.agents)
}
