package query

// Type classifies a query into one of four answer strategies.
type Type string

const (
	TypeCount    Type = "count"
	TypeMeetings Type = "meetings"
	TypeIssues   Type = "issues"
	TypeGeneral  Type = "general"
)

// Meeting is one dated entry matched from a team document.
type Meeting struct {
	Date      string
	Info      string
	Relevance int
}

// Issue is one tracker entry matched from a team document.
type Issue struct {
	ID        string
	Info      string
	Relevance int
}

// Section is a blank-line-delimited chunk of a document matched by a
// general search.
type Section struct {
	Content   string
	Relevance int
}

// Result is the uniform answer envelope every query type produces, so the
// coordinator can aggregate without knowing which engine method ran.
// Only the fields for the given Type are populated.
type Result struct {
	TeamName string
	Type     Type

	// count
	Counts        map[string]int
	TotalMentions int

	// meetings
	Meetings []Meeting

	// issues
	Issues []Issue

	// general
	Sections     []Section
	TotalMatches int
}
