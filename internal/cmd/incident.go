package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/simonbystrom/warroom/internal/coordinator"
)

var (
	flagTitle         string
	flagSeverity      string
	flagServices      string
	flagImpact        string
	flagActions       string
	flagDeadlineHours int
)

var incidentCmd = &cobra.Command{
	Use:   "incident <description>",
	Short: "Coordinate an incident response across all teams",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIncident,
}

func init() {
	incidentCmd.Flags().StringVar(&flagTitle, "title", "", "incident title")
	incidentCmd.Flags().StringVar(&flagSeverity, "severity", "", "incident severity (low/medium/high/critical)")
	incidentCmd.Flags().StringVar(&flagServices, "services", "", "affected services")
	incidentCmd.Flags().StringVar(&flagImpact, "impact", "", "customer impact")
	incidentCmd.Flags().StringVar(&flagActions, "actions", "", "initial actions already taken")
	incidentCmd.Flags().IntVar(&flagDeadlineHours, "deadline-hours", 12, "hours until the resolution deadline")
	rootCmd.AddCommand(incidentCmd)
}

func runIncident(cmd *cobra.Command, args []string) error {
	_, result, err := coordinateIncident(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Println(coordinator.FormatIncidentResult(result))
	return nil
}

// coordinateIncident composes the report into one description string and
// runs the incident coordination pass. Shared with the dashboard command.
func coordinateIncident(description string) (*coordinator.Coordinator, coordinator.IncidentResult, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, coordinator.IncidentResult{}, err
	}
	coord, err := buildCoordinator(cfg)
	if err != nil {
		return nil, coordinator.IncidentResult{}, err
	}

	report := coordinator.IncidentReport{
		Title:            flagTitle,
		Description:      description,
		Severity:         flagSeverity,
		AffectedServices: flagServices,
		Impact:           flagImpact,
		InitialActions:   flagActions,
	}
	deadline := time.Now().Add(time.Duration(flagDeadlineHours) * time.Hour)

	return coord, coord.HandleIncident(report.Describe(), deadline), nil
}
