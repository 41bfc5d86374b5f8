package team

import (
	"regexp"
	"strings"
)

// topicRes match issue-tracker IDs and a small set of domain words.
// Matches are uppercased into topic:<X> tags.
var topicRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b([A-Z]+-\d+)\b`),
	regexp.MustCompile(`(?i)\b(TSUNAMI)\b`),
	regexp.MustCompile(`(?i)\b(frontend|backend|infrastructure|security)\b`),
}

// sourceSystems are the external systems recognized as data sources.
var sourceSystems = []string{"jira", "confluence", "slack"}

// Capabilities derives the tag set the coordinator uses to route queries.
// Tags come only from the team name and the raw text, de-duplicated in
// first-seen order.
func Capabilities(name, raw string) []string {
	var caps []string
	seen := make(map[string]bool)
	add := func(c string) {
		if !seen[c] {
			seen[c] = true
			caps = append(caps, c)
		}
	}

	if name != "" {
		add("team:" + name)
	}

	for _, re := range topicRes {
		for _, m := range re.FindAllStringSubmatch(raw, -1) {
			add("topic:" + strings.ToUpper(m[1]))
		}
	}

	lower := strings.ToLower(raw)
	for _, sys := range sourceSystems {
		if strings.Contains(lower, sys) {
			add("source:" + sys)
		}
	}

	if strings.Contains(lower, "meeting") {
		add("has:meetings")
	}

	return caps
}

// expertiseKeywords maps each expertise area to the keywords that imply it.
// An area is included iff at least one keyword appears anywhere in the
// lower-cased document.
var expertiseKeywords = []struct {
	area     string
	keywords []string
}{
	{"security", []string{"security", "vulnerability", "authentication", "encryption"}},
	{"frontend", []string{"frontend", "ui", "ux", "dashboard", "mobile", "responsive"}},
	{"backend", []string{"backend", "api", "database", "server", "infrastructure"}},
	{"infrastructure", []string{"infrastructure", "deployment", "scaling", "monitoring", "uptime"}},
	{"database", []string{"database", "migration", "sql", "cache", "redis"}},
	{"performance", []string{"performance", "optimization", "scaling", "rate limiting"}},
	{"monitoring", []string{"monitoring", "alerts", "logging", "metrics"}},
}

// ExpertiseAreas classifies a document into expertise areas. Used by the
// incident path; query routing uses Capabilities instead.
func ExpertiseAreas(raw string) []string {
	lower := strings.ToLower(raw)
	var areas []string
	for _, ek := range expertiseKeywords {
		for _, kw := range ek.keywords {
			if strings.Contains(lower, kw) {
				areas = append(areas, ek.area)
				break
			}
		}
	}
	return areas
}
