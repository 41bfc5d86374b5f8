package team

// Profile is the identity and knowledge base for one team. It is built
// once at load time and never mutated afterwards: every answer the
// system gives derives from re-scanning RawText.
type Profile struct {
	// Name is the team's display name, unique within a run.
	Name string
	// Lead is the team lead's name, empty if the document omits it.
	Lead string
	// Members lists team members in assignment rotation order.
	Members []string
	// RawText is the immutable source-of-truth document.
	RawText string
	// Capabilities are tags derived solely from RawText and Name
	// (team:<name>, topic:<X>, source:<X>, has:meetings).
	Capabilities []string
	// Expertise lists the expertise areas detected in RawText.
	Expertise []string
	// Path is the source document path, for diagnostics.
	Path string
}

// HasExpertise reports whether the team has the given expertise area.
func (p *Profile) HasExpertise(area string) bool {
	for _, e := range p.Expertise {
		if e == area {
			return true
		}
	}
	return false
}
