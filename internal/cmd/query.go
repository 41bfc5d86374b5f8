package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonbystrom/warroom/internal/coordinator"
)

var queryCmd = &cobra.Command{
	Use:   "query <question>",
	Short: "Ask a question across all team agents",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	coord, err := buildCoordinator(cfg)
	if err != nil {
		return err
	}

	resp := coord.Ask(strings.Join(args, " "))

	fmt.Printf("Analyzed %d agents, selected %d:\n", coord.Registry().Len(), resp.AgentsQueried)
	for i, sel := range resp.Selections {
		fmt.Printf("  %d. %s (score: %d)\n", i+1, sel.TeamName, sel.Score)
		if len(sel.Matched) > 0 {
			fmt.Printf("     matching capabilities: %s\n", strings.Join(sel.Matched, ", "))
		}
	}
	fmt.Println()
	fmt.Println(coordinator.FormatResponse(resp))
	return nil
}
