package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tower-climber/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default tuning file",
	Long: `Print the built-in tuning YAML. Save it as ~/.tower/configs/tower.yaml or
./configs/tower.yaml and edit the values you want to change; missing keys keep
their defaults.

Examples:
  tower config > ~/.tower/configs/tower.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		//nolint:errcheck // stdout
		os.Stdout.Write(config.DefaultTowerYAML())
	},
}
