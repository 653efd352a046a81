// arcade runs short timed pointer microgames in the terminal or in a window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play one game round after round
//	arcade gauntlet          - Play every game with rising speed and limited lives
//	arcade menu              - Start menu to pick games interactively
//	arcade window <game>     - Play in a desktop window ("gauntlet" for all games)
//	arcade config <name>     - Print the effective YAML config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file (default: discarded)
//	--metrics <path>      - Export round metrics as JSON to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/microarcade/internal/games/dodge"
	_ "github.com/vovakirdan/microarcade/internal/games/forest"
	_ "github.com/vovakirdan/microarcade/internal/games/solar"
	_ "github.com/vovakirdan/microarcade/internal/games/water"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
	flagMetrics  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Micro Arcade - five-second pointer games",
	Long: `Micro Arcade is a collection of tiny timed games played with the mouse.
Each round lasts a few seconds: dodge the hazards, catch the water,
replant the forest or clean the solar panels.

Available commands:
  list      - Show all available games
  play      - Play a specific game
  gauntlet  - Play every game back to back
  menu      - Interactive game picker menu
  window    - Play in a desktop window
  config    - Print the effective configuration

Examples:
  arcade list
  arcade play dodge --tier hard
  arcade gauntlet --seed 42
  arcade window forest
  arcade config water`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagMetrics, "metrics", "", "Export round metrics (OpenTelemetry JSON) to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(gauntletCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
