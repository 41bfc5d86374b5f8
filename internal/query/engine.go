package query

import (
	"regexp"
	"sort"
	"strings"
)

// Engine answers typed queries against one team's raw document text.
// It holds no mutable state; every answer is a fresh scan.
type Engine struct {
	teamName string
	raw      string
}

// NewEngine creates an Engine for one team document.
func NewEngine(teamName, raw string) *Engine {
	return &Engine{teamName: teamName, raw: raw}
}

// Answer classifies the query and runs the matching strategy.
func (e *Engine) Answer(q string) Result {
	switch Classify(q) {
	case TypeCount:
		return e.countOccurrences(q)
	case TypeMeetings:
		return e.findMeetings(q)
	case TypeIssues:
		return e.findIssues(q)
	default:
		return e.generalSearch(q)
	}
}

var countTermRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)how many times\W*(\w+)`),
	regexp.MustCompile(`(?i)count\W*(\w+)`),
	regexp.MustCompile(`(?i)occurrences of (\w+)`),
}

func (e *Engine) countOccurrences(q string) Result {
	var terms []string
	seen := make(map[string]bool)
	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			terms = append(terms, t)
		}
	}

	for _, re := range countTermRes {
		for _, m := range re.FindAllStringSubmatch(q, -1) {
			add(m[1])
		}
	}
	for _, m := range capsTokenRe.FindAllStringSubmatch(q, -1) {
		add(m[1])
	}

	counts := make(map[string]int, len(terms))
	total := 0
	for _, term := range terms {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		n := len(re.FindAllStringIndex(e.raw, -1))
		counts[term] = n
		total += n
	}

	return Result{
		TeamName:      e.teamName,
		Type:          TypeCount,
		Counts:        counts,
		TotalMentions: total,
	}
}

var (
	meetingStartRe = regexp.MustCompile(`^\s*- (\d{4}-\d{2}-\d{2}):\s*(.*)$`)
	issueStartRe   = regexp.MustCompile(`^\s*- ([A-Z]+-\d+):\s*(.*)$`)
	sectionBreakRe = regexp.MustCompile(`^===`)
)

// entry is a bullet entry plus the free text that follows it.
type entry struct {
	key  string // date or issue ID
	info string
}

// scanEntries collects entries opened by startRe. An entry always ends
// at the next entry or a section break. With flushOnBlank an entry also
// ends at the first blank line; without it, a single blank line is part
// of the entry text and only a double blank line ends it, so issue
// descriptions can span paragraphs.
func scanEntries(raw string, startRe *regexp.Regexp, flushOnBlank bool) []entry {
	var entries []entry
	var cur *entry
	pendingBlank := false

	flush := func() {
		if cur != nil {
			cur.info = strings.TrimSpace(cur.info)
			entries = append(entries, *cur)
			cur = nil
		}
		pendingBlank = false
	}

	for _, line := range strings.Split(raw, "\n") {
		if m := startRe.FindStringSubmatch(line); m != nil {
			flush()
			cur = &entry{key: m[1], info: m[2]}
			continue
		}
		if cur == nil {
			continue
		}
		if sectionBreakRe.MatchString(line) {
			flush()
			continue
		}
		if strings.TrimSpace(line) == "" {
			if flushOnBlank || pendingBlank {
				flush()
			} else {
				pendingBlank = true
			}
			continue
		}
		if pendingBlank {
			cur.info += "\n"
			pendingBlank = false
		}
		cur.info += "\n" + line
	}
	flush()

	return entries
}

// entryRelevance counts how many query words appear in the entry text.
func entryRelevance(queryWords []string, info string) int {
	lower := strings.ToLower(info)
	n := 0
	for _, w := range queryWords {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}

func (e *Engine) findMeetings(q string) Result {
	queryWords := words(q)
	wantAll := strings.Contains(strings.ToLower(q), "all")

	var meetings []Meeting
	for _, en := range scanEntries(e.raw, meetingStartRe, true) {
		rel := entryRelevance(queryWords, en.info)
		if rel > 0 || wantAll {
			meetings = append(meetings, Meeting{Date: en.key, Info: en.info, Relevance: rel})
		}
	}

	return Result{TeamName: e.teamName, Type: TypeMeetings, Meetings: meetings}
}

func (e *Engine) findIssues(q string) Result {
	queryWords := words(q)
	wantAll := strings.Contains(strings.ToLower(q), "all")

	var issues []Issue
	for _, en := range scanEntries(e.raw, issueStartRe, false) {
		rel := entryRelevance(queryWords, en.info)
		if rel > 0 || wantAll {
			issues = append(issues, Issue{ID: en.key, Info: en.info, Relevance: rel})
		}
	}

	return Result{TeamName: e.teamName, Type: TypeIssues, Issues: issues}
}

const maxGeneralSections = 5

func (e *Engine) generalSearch(q string) Result {
	queryWords := words(q)

	var matched []Section
	for _, section := range strings.Split(e.raw, "\n\n") {
		rel := entryRelevance(queryWords, section)
		if rel > 0 {
			matched = append(matched, Section{Content: strings.TrimSpace(section), Relevance: rel})
		}
	}

	// Stable sort keeps original document order among equally relevant
	// sections.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Relevance > matched[j].Relevance
	})

	total := len(matched)
	if len(matched) > maxGeneralSections {
		matched = matched[:maxGeneralSections]
	}

	return Result{
		TeamName:     e.teamName,
		Type:         TypeGeneral,
		Sections:     matched,
		TotalMatches: total,
	}
}
