package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List loaded team agents and their capabilities",
	RunE:  runAgents,
}

func init() {
	rootCmd.AddCommand(agentsCmd)
}

func runAgents(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	coord, err := buildCoordinator(cfg)
	if err != nil {
		return err
	}

	for i, a := range coord.Registry().All() {
		id := a.Identity()
		fmt.Printf("%d. %s\n", i+1, id.TeamName)
		fmt.Printf("   lead: %s\n", id.TeamLead)
		fmt.Printf("   members: %d\n", id.MemberCount)
		fmt.Printf("   capabilities: %s\n", strings.Join(id.Capabilities, ", "))
		fmt.Printf("   expertise: %s\n\n", strings.Join(id.Expertise, ", "))
	}
	return nil
}
