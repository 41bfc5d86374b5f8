package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Teams configures where team documents are loaded from.
type Teams struct {
	// Dir is the directory holding one document per team.
	Dir string `toml:"dir"`
	// Pattern is the glob filenames must match to be loaded.
	Pattern string `toml:"pattern"`
}

// Enhance configures the optional external task-enhancement hook.
type Enhance struct {
	Enabled bool   `toml:"enabled"`
	Command string `toml:"command"`
}

// Colors holds color values for the dashboard styles.
// Values can be xterm-256 codes (0-255) or hex colors (#rrggbb).
type Colors struct {
	Title        string `toml:"title"`
	Header       string `toml:"header"`
	SelectedBG   string `toml:"selected_bg"`
	SelectedFG   string `toml:"selected_fg"`
	PriorityHigh string `toml:"priority_high"`
	PriorityMed  string `toml:"priority_med"`
	PriorityLow  string `toml:"priority_low"`
	Border       string `toml:"border"`
	Help         string `toml:"help"`
	Error        string `toml:"error"`
	Team         string `toml:"team"`
}

// Config is the top-level configuration.
type Config struct {
	Teams   Teams   `toml:"teams"`
	Enhance Enhance `toml:"enhance"`
	Colors  Colors  `toml:"colors"`
}

// Default returns a Config populated with the hardcoded defaults.
func Default() Config {
	return Config{
		Teams: Teams{
			Dir:     "team_info",
			Pattern: "*.txt",
		},
		Enhance: Enhance{
			Enabled: false,
		},
		Colors: Colors{
			Title:        "#cba6f7", // Mauve
			Header:       "#89b4fa", // Blue
			SelectedBG:   "#313244", // Surface 0
			SelectedFG:   "#cdd6f4", // Text
			PriorityHigh: "#f38ba8", // Red
			PriorityMed:  "#f9e2af", // Yellow
			PriorityLow:  "#a6e3a1", // Green
			Border:       "#585b70", // Surface 2
			Help:         "#7f849c", // Overlay 1
			Error:        "#f38ba8", // Red
			Team:         "#74c7ec", // Sapphire
		},
	}
}

// Path returns the config file path, respecting XDG_CONFIG_HOME.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "warroom", "warroom.conf")
}

// Load reads the config file at path and returns a Config. Omitted
// fields keep their default values. If the file does not exist, defaults
// are returned with no error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

const defaultFileContent = `# Warroom configuration
# Uncomment and modify values to customize. All values are optional.
# Colors can be hex (#rrggbb) or xterm-256 codes (0-255).
# Defaults use the Catppuccin Mocha palette.

[teams]
# dir     = "team_info"  # directory of team documents
# pattern = "*.txt"      # filename glob for documents to load

[enhance]
# enabled = false  # run an external command to enhance proposed tasks
# command = ""     # command receiving the proposal as JSON on stdin

[colors]
# title         = "#cba6f7"  # Mauve
# header        = "#89b4fa"  # Blue
# selected_bg   = "#313244"  # Surface 0
# selected_fg   = "#cdd6f4"  # Text
# priority_high = "#f38ba8"  # Red
# priority_med  = "#f9e2af"  # Yellow
# priority_low  = "#a6e3a1"  # Green
# border        = "#585b70"  # Surface 2
# help          = "#7f849c"  # Overlay 1
# error         = "#f38ba8"  # Red
# team          = "#74c7ec"  # Sapphire
`

// WriteDefault writes the default config file with all values commented
// out. It no-ops if the file already exists. Parent directories are
// created as needed.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // file already exists
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(defaultFileContent), 0o644)
}
