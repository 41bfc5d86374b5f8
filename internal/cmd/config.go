package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonbystrom/warroom/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the warroom configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := flagConfig
	if path == "" {
		path = config.Path()
	}
	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Printf("Config file at %s\n", path)
	return nil
}
