package query

import (
	"regexp"
	"strings"
)

// Signals are the keyword and entity hints extracted from one free-text
// query. They are recomputed per query and never cached.
type Signals struct {
	// Terms is the de-duplicated union of all-caps tokens, identifier
	// tokens, and matched domain terms, in first-seen order.
	Terms []string
	// Query is the original query text.
	Query string
}

var (
	capsTokenRe = regexp.MustCompile(`\b([A-Z][A-Z]+)\b`)
	idTokenRe   = regexp.MustCompile(`\b([A-Z]+-\d+)\b`)
)

// domainTerms is the fixed vocabulary matched as substrings of the
// lower-cased query.
var domainTerms = []string{
	"meeting", "issue", "ticket", "jira", "confluence", "slack",
	"frontend", "backend", "infrastructure", "security", "team",
}

// Interpret extracts Signals from a query string.
func Interpret(q string) Signals {
	var terms []string
	seen := make(map[string]bool)
	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			terms = append(terms, t)
		}
	}

	for _, m := range capsTokenRe.FindAllStringSubmatch(q, -1) {
		add(m[1])
	}
	for _, m := range idTokenRe.FindAllStringSubmatch(q, -1) {
		add(m[1])
	}

	lower := strings.ToLower(q)
	for _, term := range domainTerms {
		if strings.Contains(lower, term) {
			add(term)
		}
	}

	return Signals{Terms: terms, Query: q}
}

// Classify picks the answer strategy for a query. First match wins, in
// priority order count > meetings > issues > general.
func Classify(q string) Type {
	lower := strings.ToLower(q)
	switch {
	case strings.Contains(lower, "how many times") || strings.Contains(lower, "count"):
		return TypeCount
	case strings.Contains(lower, "meeting"):
		return TypeMeetings
	case strings.Contains(lower, "issue") || strings.Contains(lower, "ticket") ||
		strings.Contains(lower, "jira") || strings.Contains(lower, "confluence") ||
		strings.Contains(lower, "slack"):
		return TypeIssues
	default:
		return TypeGeneral
	}
}

var wordRe = regexp.MustCompile(`\b\w+\b`)

// words tokenizes text into lower-cased word tokens.
func words(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}
