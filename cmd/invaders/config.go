package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Load the game configuration the same way the game does and print it as
YAML. The configuration is validated; an invalid file is reported as an error.

Search order:
  --config <path>
  ~/.invaders/configs/invaders.yaml
  ./configs/invaders.yaml
  built-in defaults

Examples:
  invaders config
  invaders config --config ./my-invaders.yaml > custom.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	// A fixed field size is checked now; a zero size follows the terminal
	if cfg.Field.Width > 0 || cfg.Field.Height > 0 {
		if err := cfg.Resolve(fieldSize()).ValidateField(); err != nil {
			return err
		}
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
