package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/microarcade/internal/config"
	"github.com/vovakirdan/microarcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to pick a game, left/right to pick the tier and
Enter to play. After a run ends you return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change tier
  Enter/Space     - Play
  Q/Esc           - Quit

Examples:
  arcade menu
  arcade menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		s := session{runtime: cfg, logger: logger}
		if menuResult.Item.Gauntlet() {
			gcfg, err := config.LoadGauntlet("")
			if err != nil {
				return err
			}
			s.title = "gauntlet"
			s.gauntlet = gcfg
		} else {
			s.title = menuResult.Item.GameID
			s.gauntlet = singleGame(menuResult.Item.GameID, menuResult.Tier, 3, 10)
		}

		if _, err := s.runTerminal(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Fresh seed for each run unless --seed pinned it
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
	}
}
