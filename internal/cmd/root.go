// Package cmd defines the warroom command tree.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonbystrom/warroom/internal/agent"
	"github.com/simonbystrom/warroom/internal/config"
	"github.com/simonbystrom/warroom/internal/coordinator"
	"github.com/simonbystrom/warroom/internal/task"
	"github.com/simonbystrom/warroom/internal/team"
)

var (
	flagConfig  string
	flagTeams   string
	flagPattern string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "warroom",
	Short: "Coordinate team knowledge agents and incident response",
	Long: `Warroom loads one knowledge agent per team document, routes free-text
queries to the most relevant agents, and turns incident descriptions into
prioritized, dependency-linked task assignments across every team.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (defaults to XDG config dir)")
	rootCmd.PersistentFlags().StringVar(&flagTeams, "teams", "", "team document directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagPattern, "pattern", "", "team document filename glob (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file, applying flag overrides.
func loadConfig() (config.Config, error) {
	path := flagConfig
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if flagTeams != "" {
		cfg.Teams.Dir = flagTeams
	}
	if flagPattern != "" {
		cfg.Teams.Pattern = flagPattern
	}
	return cfg, nil
}

// buildCoordinator loads all team profiles and wires the coordinator.
func buildCoordinator(cfg config.Config) (*coordinator.Coordinator, error) {
	profiles, err := team.LoadDir(cfg.Teams.Dir, cfg.Teams.Pattern)
	if err != nil {
		return nil, err
	}

	var enhancer task.Enhancer
	if cfg.Enhance.Enabled && cfg.Enhance.Command != "" {
		enhancer = task.NewCommandEnhancer(cfg.Enhance.Command)
	}

	return coordinator.New(agent.NewRegistry(profiles, enhancer)), nil
}
