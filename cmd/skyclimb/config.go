package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyclimb/internal/config"
)

var flagConfigFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after --config and --difficulty are applied.
The output is a complete file that can be edited and passed back with
--config.

Examples:
  skyclimb config show
  skyclimb config show --format toml > climb.toml
  skyclimb config show --difficulty hard`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return config.Encode(os.Stdout, cfg, config.Format(flagConfigFormat))
	},
}

func init() {
	configShowCmd.Flags().StringVar(&flagConfigFormat, "format", string(config.FormatYAML), "Output format: yaml or toml")
	configCmd.AddCommand(configShowCmd)
}
