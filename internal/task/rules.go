package task

// template describes one rule-generated task. Keeping the rule set as
// data makes each block independently testable.
type template struct {
	description string
	// offset is added to the team's base importance, clamped to 10.
	offset int
	hours  float64
	// leadHours is how many hours before the incident deadline the task
	// must complete. Larger means earlier.
	leadHours int
	// assignee is an index into the team's member rotation; leadAssignee
	// assigns the team lead. Out-of-range indexes fall back to the lead.
	assignee int
	// dependsOn lists indexes of earlier templates in the same block.
	dependsOn []int
}

const leadAssignee = -1

// ruleBlock groups the tasks one expertise area contributes. A block
// fires only when the team has one of its areas and the incident text
// contains one of its triggers.
type ruleBlock struct {
	category string
	areas    []string
	triggers []string
	tasks    []template
}

// ruleBlocks is the full rule table, evaluated in order.
var ruleBlocks = []ruleBlock{
	{
		category: "SEC",
		areas:    []string{"security"},
		triggers: []string{"security", "breach", "vulnerability"},
		tasks: []template{
			{
				description: "Conduct immediate security audit of affected systems",
				offset:      3, hours: 4, leadHours: 8, assignee: 0,
			},
			{
				description: "Review access logs for suspicious activity",
				offset:      2, hours: 3, leadHours: 6, assignee: 1,
				dependsOn: []int{0},
			},
			{
				description: "Implement security patches and hotfixes",
				offset:      4, hours: 6, leadHours: 2, assignee: leadAssignee,
				dependsOn: []int{0},
			},
		},
	},
	{
		category: "INFRA",
		areas:    []string{"infrastructure", "backend"},
		triggers: []string{"outage", "down", "unavailable"},
		tasks: []template{
			{
				description: "Check server health and resource utilization",
				offset:      4, hours: 2, leadHours: 10, assignee: 0,
			},
			{
				description: "Restart affected services and verify connectivity",
				offset:      5, hours: 3, leadHours: 6, assignee: leadAssignee,
				dependsOn: []int{0},
			},
			{
				description: "Scale up resources if needed",
				offset:      3, hours: 4, leadHours: 4, assignee: 1,
				dependsOn: []int{0},
			},
		},
	},
	{
		category: "FRONT",
		areas:    []string{"frontend"},
		triggers: []string{"ui", "frontend", "user"},
		tasks: []template{
			{
				description: "Display user-facing incident notification",
				offset:      2, hours: 2, leadHours: 8, assignee: 0,
			},
			{
				description: "Implement graceful degradation for affected features",
				offset:      3, hours: 5, leadHours: 4, assignee: leadAssignee,
			},
		},
	},
	{
		category: "DB",
		areas:    []string{"database"},
		triggers: []string{"database", "data", "slow"},
		tasks: []template{
			{
				description: "Analyze database query performance",
				offset:      3, hours: 3, leadHours: 8, assignee: 0,
			},
			{
				description: "Optimize slow queries and add indexes",
				offset:      4, hours: 5, leadHours: 3, assignee: leadAssignee,
				dependsOn: []int{0},
			},
		},
	},
}
