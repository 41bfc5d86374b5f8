package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/simonbystrom/warroom/internal/coordinator"
)

type mode int

const (
	modeAssignments mode = iota
	modeQuery
)

// Model is the incident dashboard: a team assignment table with a task
// detail pane, plus an ad-hoc query prompt against the same agents.
type Model struct {
	styles Styles
	coord  *coordinator.Coordinator
	result coordinator.IncidentResult

	table table.Model
	input textinput.Model

	activeMode mode
	answer     string
	errText    string
	width      int
	height     int
}

// New creates the dashboard for one incident result.
func New(styles Styles, coord *coordinator.Coordinator, result coordinator.IncidentResult) Model {
	columns := []table.Column{
		{Title: "Team", Width: 24},
		{Title: "Tasks", Width: 6},
		{Title: "Hours", Width: 7},
		{Title: "Avg Priority", Width: 12},
	}

	rows := make([]table.Row, 0, len(result.Assignments))
	for _, a := range result.Assignments {
		rows = append(rows, table.Row{
			a.TeamName,
			fmt.Sprintf("%d", a.TaskCount),
			fmt.Sprintf("%.1f", a.TotalEstimatedHours),
			fmt.Sprintf("%.2f", a.AverageImportance),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)
	ts := table.DefaultStyles()
	ts.Header = styles.Header
	ts.Selected = styles.Selected
	t.SetStyles(ts)

	input := textinput.New()
	input.Placeholder = "ask the teams something..."
	input.CharLimit = 200

	return Model{
		styles: styles,
		coord:  coord,
		result: result,
		table:  t,
		input:  input,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.activeMode == modeQuery {
			return m.updateQuery(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "/":
			m.activeMode = modeQuery
			m.answer = ""
			m.errText = ""
			m.input.SetValue("")
			return m, m.input.Focus()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateQuery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.activeMode = modeAssignments
		m.input.Blur()
		return m, nil
	case "enter":
		q := strings.TrimSpace(m.input.Value())
		if q == "" {
			m.errText = "type a question first"
			return m, nil
		}
		m.errText = ""
		m.answer = coordinator.FormatResponse(m.coord.Ask(q))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("WARROOM incident response"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Incident: %s\n", m.result.Incident))
	b.WriteString(fmt.Sprintf("Deadline: %s   Tasks: %d   Teams: %d\n\n",
		m.result.Deadline.Format("2006-01-02 15:04"), m.result.TotalTasks, m.result.TeamsInvolved))

	if m.activeMode == modeQuery {
		b.WriteString(m.styles.Header.Render("Query"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		if m.errText != "" {
			b.WriteString(m.styles.Error.Render(m.errText))
			b.WriteString("\n\n")
		}
		if m.answer != "" {
			b.WriteString(m.answer)
			b.WriteString("\n")
		}
		b.WriteString(m.styles.Help.Render("enter: ask • esc: back • ctrl+c: quit"))
		return m.styles.Border.Render(b.String())
	}

	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewSelectedTeam())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑/↓: select team • /: query • q: quit"))

	return m.styles.Border.Render(b.String())
}

// viewSelectedTeam renders the task detail for the highlighted team.
func (m Model) viewSelectedTeam() string {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.result.Assignments) {
		return ""
	}
	a := m.result.Assignments[cursor]

	var b strings.Builder
	b.WriteString(m.styles.Team.Render(a.TeamName))
	b.WriteString("\n")
	for _, t := range a.Tasks {
		style := m.styles.PriorityLow
		switch {
		case t.Importance >= 8:
			style = m.styles.PriorityHigh
		case t.Importance >= 5:
			style = m.styles.PriorityMed
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", style.Render(fmt.Sprintf("[%d]", t.Importance)), t.Description))
		b.WriteString(fmt.Sprintf("      %s · %.1fh · due %s\n",
			t.AssignedTo, t.EstimatedHours, t.TentativeDeadline.Format("01-02 15:04")))
		if len(t.Dependencies) > 0 {
			b.WriteString(m.styles.Help.Render(fmt.Sprintf("      depends on: %s", strings.Join(t.Dependencies, ", "))))
			b.WriteString("\n")
		}
	}
	return b.String()
}
