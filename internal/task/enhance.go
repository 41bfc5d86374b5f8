package task

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"
)

// Enhancer may rewrite or extend a proposed task batch. Implementations
// are advisory: callers always fall back to the unmodified rule-based
// batch when Enhance fails or returns nothing.
type Enhancer interface {
	Enhance(teamName string, expertise []string, incident string, tasks []Task) ([]Task, error)
}

// wireTask is the JSON shape exchanged with external enhancers. A null
// deadline or "TBD" assignee is backfilled by the proposer afterwards.
type wireTask struct {
	ID                string     `json:"task_id"`
	Description       string     `json:"description"`
	Importance        int        `json:"importance"`
	EstimatedHours    float64    `json:"estimated_hours"`
	TentativeDeadline *time.Time `json:"tentative_deadline"`
	AssignedTo        string     `json:"assigned_to"`
	Dependencies      []string   `json:"dependencies"`
}

type enhanceRequest struct {
	TeamName  string     `json:"team_name"`
	Expertise []string   `json:"expertise"`
	Incident  string     `json:"incident"`
	Tasks     []wireTask `json:"tasks"`
}

func toWire(tasks []Task) []wireTask {
	out := make([]wireTask, len(tasks))
	for i, t := range tasks {
		w := wireTask{
			ID:             t.ID,
			Description:    t.Description,
			Importance:     t.Importance,
			EstimatedHours: t.EstimatedHours,
			AssignedTo:     t.AssignedTo,
			Dependencies:   t.Dependencies,
		}
		if !t.TentativeDeadline.IsZero() {
			d := t.TentativeDeadline
			w.TentativeDeadline = &d
		}
		out[i] = w
	}
	return out
}

func fromWire(wire []wireTask) []Task {
	out := make([]Task, len(wire))
	for i, w := range wire {
		t := Task{
			ID:             w.ID,
			Description:    w.Description,
			Importance:     w.Importance,
			EstimatedHours: w.EstimatedHours,
			AssignedTo:     w.AssignedTo,
			Dependencies:   w.Dependencies,
		}
		if w.TentativeDeadline != nil {
			t.TentativeDeadline = *w.TentativeDeadline
		}
		out[i] = t
	}
	return out
}

// CommandEnhancer shells out to a configured command, writing the
// proposal as JSON on stdin and reading the transformed task list from
// stdout. It is the external AI-enhancement boundary.
type CommandEnhancer struct {
	command string
	args    []string
}

// NewCommandEnhancer creates an enhancer that runs the given command.
func NewCommandEnhancer(command string, args ...string) *CommandEnhancer {
	return &CommandEnhancer{command: command, args: args}
}

func (c *CommandEnhancer) Enhance(teamName string, expertise []string, incident string, tasks []Task) ([]Task, error) {
	req := enhanceRequest{
		TeamName:  teamName,
		Expertise: expertise,
		Incident:  incident,
		Tasks:     toWire(tasks),
	}
	input, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal enhancement request: %w", err)
	}

	cmd := exec.Command(c.command, c.args...)
	cmd.Stdin = bytes.NewReader(input)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("run enhancer %s: %w", c.command, err)
	}

	var wire []wireTask
	if err := json.Unmarshal(out, &wire); err != nil {
		return nil, fmt.Errorf("parse enhancer output: %w", err)
	}
	return fromWire(wire), nil
}
