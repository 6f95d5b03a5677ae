package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cryptsteps/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings as YAML",
	Long: `Resolve settings the way play does and print them.

Search order: --config, ~/.cryptsteps/config.yaml, ./configs/cryptsteps.yaml,
then the built-in defaults. CRYPTSTEPS_* environment variables and
--difficulty are applied on top.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	data, err := config.Marshal(settings)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
