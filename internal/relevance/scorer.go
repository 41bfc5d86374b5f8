// Package relevance scores team profiles against queries and incidents.
// The two scoring functions answer different questions (query-to-capability
// vs. incident-to-expertise) and are deliberately kept separate.
package relevance

import (
	"strings"

	"github.com/simonbystrom/warroom/internal/query"
)

// Score is one team's relevance to a query. Higher is more relevant;
// zero means no signal matched.
type Score struct {
	Value int
	// Matched lists the capabilities that contributed, in encounter
	// order, for explainability.
	Matched []string
}

// generalTerms mark a query as deliberately broad; such queries include
// every team at a floor score.
var generalTerms = []string{"all", "every", "total", "overall"}

// ScoreQuery rates how relevant a profile's capability set is to the
// interpreted query. Pure function: identical inputs always produce
// identical output.
func ScoreQuery(teamName string, capabilities []string, sig query.Signals) Score {
	var s Score
	queryLower := strings.ToLower(sig.Query)

	for _, capability := range capabilities {
		capLower := strings.ToLower(capability)
		for _, term := range sig.Terms {
			termLower := strings.ToLower(term)
			if strings.Contains(capLower, termLower) || strings.Contains(termLower, capLower) {
				s.Value += 10
				s.Matched = append(s.Matched, capability)
				break
			}
		}
	}

	if teamName != "" && strings.Contains(queryLower, strings.ToLower(teamName)) {
		s.Value += 20
		s.Matched = append(s.Matched, "team:"+teamName)
	}

	for _, term := range generalTerms {
		if strings.Contains(queryLower, term) {
			s.Value++
			break
		}
	}

	return s
}

// hasArea reports whether area is in the expertise list.
func hasArea(expertise []string, area string) bool {
	for _, e := range expertise {
		if e == area {
			return true
		}
	}
	return false
}

// containsAny reports whether any needle is a substring of text.
func containsAny(text string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

// ScoreIncident rates how relevant an incident is to a team's expertise.
// Used only by the task proposal path.
func ScoreIncident(teamName string, expertise []string, incident string) int {
	lower := strings.ToLower(incident)
	score := 0

	if teamName != "" && strings.Contains(lower, strings.ToLower(teamName)) {
		score += 20
	}

	for _, area := range expertise {
		if strings.Contains(lower, area) {
			score += 10
		}
	}

	if containsAny(lower, "outage", "down") &&
		(hasArea(expertise, "infrastructure") || hasArea(expertise, "backend")) {
		score += 15
	}
	if containsAny(lower, "security", "breach") && hasArea(expertise, "security") {
		score += 20
	}
	if containsAny(lower, "performance", "slow") &&
		(hasArea(expertise, "performance") || hasArea(expertise, "database")) {
		score += 15
	}

	return score
}
