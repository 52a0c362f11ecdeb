// invaders is a terminal alien invasion shooter.
//
// Usage:
//
//	invaders                 - Play (starts at the Play button)
//	invaders config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--config <path>      - Custom game config YAML
//	--log-file <path>    - Write logs to a file (default: no logs)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--release <dur>      - How long a movement key counts as held (default: 550ms)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagRelease  time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - defend the bottom of your terminal",
	Long: `Invaders is a terminal shooter. A fleet of aliens sweeps across the
screen and drops a row every time it touches a side. Shoot them all before
they reach your ship or the ground.

Controls:
  Left/A, Right/D  - Move
  Space            - Fire
  Enter/Click      - Play
  Q/Ctrl+C         - Quit

Examples:
  invaders
  invaders --fps 30
  invaders --config ./my-invaders.yaml
  invaders --log-file /tmp/invaders.log --log-level debug
  invaders config`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().DurationVar(&flagRelease, "release", tui.DefaultRelease, "How long a movement key counts as held after its last repeat")

	rootCmd.AddCommand(configCmd)
}
