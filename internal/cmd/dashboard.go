package cmd

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/simonbystrom/warroom/internal/ui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard <description>",
	Short: "Coordinate an incident and review the assignments interactively",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDashboard,
}

func init() {
	dashboardCmd.Flags().StringVar(&flagTitle, "title", "", "incident title")
	dashboardCmd.Flags().StringVar(&flagSeverity, "severity", "", "incident severity (low/medium/high/critical)")
	dashboardCmd.Flags().StringVar(&flagServices, "services", "", "affected services")
	dashboardCmd.Flags().StringVar(&flagImpact, "impact", "", "customer impact")
	dashboardCmd.Flags().StringVar(&flagActions, "actions", "", "initial actions already taken")
	dashboardCmd.Flags().IntVar(&flagDeadlineHours, "deadline-hours", 12, "hours until the resolution deadline")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	coord, result, err := coordinateIncident(strings.Join(args, " "))
	if err != nil {
		return err
	}

	model := ui.New(ui.NewStyles(cfg.Colors), coord, result)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
