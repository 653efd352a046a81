package main

import (
	"github.com/spf13/cobra"
)

var windowCmd = &cobra.Command{
	Use:   "window <game|gauntlet>",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play a single game, or the whole gauntlet.
The 800x600 play area scales with the window and keeps its aspect ratio.

Controls:
  Mouse        - Move the pointer, click to act
  Enter/Space  - Start the next round
  P            - Pause
  R            - Play again after the run ends
  Esc/Q        - Quit

Examples:
  arcade window dodge
  arcade window water --tier easy --scale 1.5
  arcade window gauntlet`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game or gauntlet config YAML")
	windowCmd.Flags().StringVar(&flagTier, "tier", "normal", "Difficulty tier for a single game: easy, normal, hard")
	windowCmd.Flags().IntVar(&flagLives, "lives", 3, "Lives before the run ends (single game)")
	windowCmd.Flags().IntVar(&flagRounds, "rounds", 10, "Rounds to play (single game, 0 = until lives run out)")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to 800x600")
}

func runWindow(cmd *cobra.Command, args []string) error {
	flagWindow = true
	if args[0] == "gauntlet" {
		return runGauntlet(cmd, nil)
	}
	return runPlay(cmd, args)
}
