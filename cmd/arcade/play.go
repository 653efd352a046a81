package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/microarcade/internal/core"
	"github.com/vovakirdan/microarcade/internal/registry"
)

var (
	flagConfig string
	flagTier   string
	flagLives  int
	flagRounds int
	flagWindow bool
	flagScale  float64
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Play the specified game round after round at a fixed tier.
Each lost round costs a life.

Controls:
  Mouse      - Move the pointer, click to act
  Enter      - Start the next round
  P          - Pause
  Esc        - End the run and show results
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Tiers:
  easy, normal, hard

Examples:
  arcade play dodge
  arcade play water --tier hard
  arcade play forest --lives 1 --rounds 5
  arcade play solar --config ./my-solar.yaml
  arcade play dodge --window`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagTier, "tier", "normal", "Difficulty tier: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLives, "lives", 3, "Lives before the run ends")
	playCmd.Flags().IntVar(&flagRounds, "rounds", 10, "Rounds to play (0 = until lives run out)")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to 800x600 (with --window)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	closeMetrics, err := newTelemetry()
	if err != nil {
		return err
	}
	defer closeMetrics()

	if err := configureGames(gameID, flagConfig); err != nil {
		return err
	}

	tier := core.ParseTier(flagTier)
	s := session{
		title:    gameID,
		gauntlet: singleGame(gameID, tier, flagLives, flagRounds),
		runtime:  runtimeConfig(),
		logger:   logger,
	}
	logger.Info("play", "game", gameID, "tier", tier, "seed", s.runtime.Seed)

	if flagWindow {
		g, err := s.runWindow(flagScale)
		printSummary(os.Stdout, g)
		return err
	}
	g, err := s.runTerminal()
	printSummary(os.Stdout, g)
	return err
}
