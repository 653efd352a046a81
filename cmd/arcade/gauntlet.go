package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/microarcade/internal/config"
)

var gauntletCmd = &cobra.Command{
	Use:   "gauntlet",
	Short: "Play every game back to back",
	Long: `Play a gauntlet: games come in shuffled order, the tier rises from
easy to hard as rounds go by and every round speeds up a little.
The run ends when the lives are gone or the last round is played.

The schedule, speed ramp and lives come from the gauntlet config
(see 'arcade config gauntlet').

Examples:
  arcade gauntlet
  arcade gauntlet --seed 7
  arcade gauntlet --config ./long-gauntlet.yaml
  arcade gauntlet --window`,
	Args: cobra.NoArgs,
	RunE: runGauntlet,
}

func init() {
	gauntletCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gauntlet config YAML")
	gauntletCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	gauntletCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to 800x600 (with --window)")
}

func runGauntlet(_ *cobra.Command, _ []string) error {
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

	if err := configureGames("", ""); err != nil {
		return err
	}
	gcfg, err := config.LoadGauntlet(flagConfig)
	if err != nil {
		return err
	}

	s := session{
		title:    "gauntlet",
		gauntlet: gcfg,
		runtime:  runtimeConfig(),
		logger:   logger,
	}
	logger.Info("gauntlet", "rounds", gcfg.Rounds, "lives", gcfg.Lives, "seed", s.runtime.Seed)

	if flagWindow {
		g, err := s.runWindow(flagScale)
		printSummary(os.Stdout, g)
		return err
	}
	g, err := s.runTerminal()
	printSummary(os.Stdout, g)
	return err
}
