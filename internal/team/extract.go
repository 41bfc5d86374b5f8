package team

import (
	"regexp"
	"strings"
)

var (
	nameRe    = regexp.MustCompile(`Team Name:\s*(.+)`)
	leadRe    = regexp.MustCompile(`Team Lead:\s*(.+)`)
	membersRe = regexp.MustCompile(`Members:\s*(.+)`)
)

// Extract parses the recognized header lines out of a raw team document.
// Extraction is best-effort: a missing or malformed field yields its zero
// value and the document remains usable for generic search.
func Extract(raw string) (name, lead string, members []string) {
	if m := nameRe.FindStringSubmatch(raw); m != nil {
		name = strings.TrimSpace(m[1])
	}
	if m := leadRe.FindStringSubmatch(raw); m != nil {
		lead = strings.TrimSpace(m[1])
	}
	if m := membersRe.FindStringSubmatch(raw); m != nil {
		for _, part := range strings.Split(m[1], ",") {
			if p := strings.TrimSpace(part); p != "" {
				members = append(members, p)
			}
		}
	}
	return name, lead, members
}

// NewProfile builds an immutable Profile from a raw document.
func NewProfile(path, raw string) *Profile {
	name, lead, members := Extract(raw)
	return &Profile{
		Name:         name,
		Lead:         lead,
		Members:      members,
		RawText:      raw,
		Capabilities: Capabilities(name, raw),
		Expertise:    ExpertiseAreas(raw),
		Path:         path,
	}
}
