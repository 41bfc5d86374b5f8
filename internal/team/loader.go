package team

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
)

// ErrNoTeams is returned when the team directory exists but no document
// could be loaded.
var ErrNoTeams = fmt.Errorf("no team documents loaded")

// LoadDir reads every document in dir whose filename matches pattern and
// builds a Profile from each. A missing directory aborts the load; an
// unreadable file skips only that team and is logged. Profiles are
// returned in filename order so runs are reproducible.
func LoadDir(dir, pattern string) ([]*Profile, error) {
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile document pattern %q: %w", pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read team directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !matcher.Match(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var profiles []*Profile
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("skipping unreadable team document", "path", path, "error", err)
			continue
		}
		p := NewProfile(path, string(data))
		profiles = append(profiles, p)
		slog.Info("loaded team profile", "team", p.Name, "capabilities", len(p.Capabilities), "expertise", p.Expertise)
	}

	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: %s (pattern %q)", ErrNoTeams, dir, pattern)
	}
	return profiles, nil
}
