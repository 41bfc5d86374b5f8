// Package coordinator orchestrates the team knowledge agents: it selects
// which agents a query should reach, aggregates their answers, and turns
// incidents into a prioritized cross-team task plan.
package coordinator

import (
	"log/slog"
	"sort"

	"github.com/simonbystrom/warroom/internal/agent"
	"github.com/simonbystrom/warroom/internal/query"
	"github.com/simonbystrom/warroom/internal/relevance"
)

// Coordinator owns the immutable registry of loaded agents. One
// coordination pass runs to completion, synchronously, one agent at a
// time.
type Coordinator struct {
	registry *agent.Registry
}

// New creates a Coordinator over a loaded registry.
func New(registry *agent.Registry) *Coordinator {
	return &Coordinator{registry: registry}
}

// Registry exposes the loaded agents, for listing surfaces.
func (c *Coordinator) Registry() *agent.Registry {
	return c.registry
}

type scoredAgent struct {
	agent *agent.Agent
	Selection
}

// selectAgents scores every agent against the query and returns those
// with a positive score, highest first. When nothing scores, every agent
// is included at a uniform floor score so a query never returns
// empty-handed.
func (c *Coordinator) selectAgents(q string) []scoredAgent {
	sig := query.Interpret(q)

	var selected []scoredAgent
	for _, a := range c.registry.All() {
		p := a.Profile()
		s := relevance.ScoreQuery(p.Name, p.Capabilities, sig)
		if s.Value > 0 {
			selected = append(selected, scoredAgent{
				agent:     a,
				Selection: Selection{TeamName: p.Name, Score: s.Value, Matched: s.Matched},
			})
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Score > selected[j].Score
	})

	if len(selected) == 0 {
		for _, a := range c.registry.All() {
			selected = append(selected, scoredAgent{
				agent:     a,
				Selection: Selection{TeamName: a.Profile().Name, Score: 1},
			})
		}
	}

	return selected
}

// Ask processes one query: select agents, query each through its section
// engine, and aggregate the per-team results.
func (c *Coordinator) Ask(q string) Response {
	selected := c.selectAgents(q)
	slog.Info("processing query", "query", q, "available", c.registry.Len(), "selected", len(selected))

	resp := Response{Query: q, AgentsQueried: len(selected)}
	for _, sa := range selected {
		resp.Selections = append(resp.Selections, sa.Selection)
		resp.Results = append(resp.Results, sa.agent.Answer(q))
	}

	resp.Summary = aggregate(resp.Results)
	return resp
}

// aggregate rolls per-team results into one summary, dispatched on the
// shared query type of the first result.
func aggregate(results []query.Result) Summary {
	if len(results) == 0 {
		return Summary{Type: query.TypeGeneral, ByTeam: map[string]query.Result{}}
	}

	switch results[0].Type {
	case query.TypeCount:
		return aggregateCounts(results)
	case query.TypeMeetings:
		return aggregateMeetings(results)
	case query.TypeIssues:
		return aggregateIssues(results)
	default:
		byTeam := make(map[string]query.Result, len(results))
		for _, r := range results {
			byTeam[r.TeamName] = r
		}
		return Summary{Type: query.TypeGeneral, ByTeam: byTeam}
	}
}

func aggregateCounts(results []query.Result) Summary {
	s := Summary{Type: query.TypeCount, TotalCounts: make(map[string]int)}
	for _, r := range results {
		for term, n := range r.Counts {
			s.TotalCounts[term] += n
		}
		if r.TotalMentions > 0 {
			s.TeamsWithMentions++
		}
	}
	return s
}

func aggregateMeetings(results []query.Result) Summary {
	s := Summary{Type: query.TypeMeetings}
	for _, r := range results {
		s.TotalMeetings += len(r.Meetings)
		for _, m := range r.Meetings {
			s.AllMeetings = append(s.AllMeetings, TeamMeeting{Meeting: m, Team: r.TeamName})
		}
	}
	// ISO dates sort lexically; newest first.
	sort.SliceStable(s.AllMeetings, func(i, j int) bool {
		return s.AllMeetings[i].Date > s.AllMeetings[j].Date
	})
	return s
}

func aggregateIssues(results []query.Result) Summary {
	s := Summary{Type: query.TypeIssues}
	for _, r := range results {
		s.TotalIssues += len(r.Issues)
		for _, is := range r.Issues {
			s.AllIssues = append(s.AllIssues, TeamIssue{Issue: is, Team: r.TeamName})
		}
	}
	sort.SliceStable(s.AllIssues, func(i, j int) bool {
		return s.AllIssues[i].Relevance > s.AllIssues[j].Relevance
	})
	return s
}
