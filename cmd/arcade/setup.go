package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/microarcade/internal/config"
	"github.com/vovakirdan/microarcade/internal/core"
	"github.com/vovakirdan/microarcade/internal/games/dodge"
	"github.com/vovakirdan/microarcade/internal/games/forest"
	"github.com/vovakirdan/microarcade/internal/games/solar"
	"github.com/vovakirdan/microarcade/internal/games/water"
	"github.com/vovakirdan/microarcade/internal/match"
	"github.com/vovakirdan/microarcade/internal/platform/desktop"
	"github.com/vovakirdan/microarcade/internal/platform/tui"
	"github.com/vovakirdan/microarcade/internal/telemetry"
)

// newLogger builds the process logger. Without --log-file logs are discarded,
// since the full-screen UI owns the terminal.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closer := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	return logger, closer, nil
}

// newTelemetry installs a metrics exporter writing to --metrics. Without the flag
// round metrics go to the no-op global provider.
func newTelemetry() (func(), error) {
	if flagMetrics == "" {
		return func() {}, nil
	}

	f, err := os.OpenFile(flagMetrics, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open metrics file: %w", err)
	}

	p, err := telemetry.New(telemetry.Config{ServiceName: "arcade", Writer: f})
	if err != nil {
		f.Close()
		return nil, err
	}
	p.Install()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.Shutdown(ctx); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		f.Close()
	}, nil
}

// configureGames loads every game config and hands it to the game package.
// customPath applies only to the game named by customFor.
func configureGames(customFor, customPath string) error {
	pathFor := func(id string) string {
		if id == customFor {
			return customPath
		}
		return ""
	}

	dodgeCfg, err := config.LoadDodge(pathFor("dodge"))
	if err != nil {
		return err
	}
	dodge.Configure(dodgeCfg)

	waterCfg, err := config.LoadWater(pathFor("water"))
	if err != nil {
		return err
	}
	water.Configure(waterCfg)

	forestCfg, err := config.LoadForest(pathFor("forest"))
	if err != nil {
		return err
	}
	forest.Configure(forestCfg)

	solarCfg, err := config.LoadSolar(pathFor("solar"))
	if err != nil {
		return err
	}
	solar.Configure(solarCfg)

	return nil
}

// runtimeConfig returns the host config for the current terminal and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// singleGame returns a gauntlet config that repeats one game at a fixed tier.
func singleGame(gameID string, tier core.Tier, lives, rounds int) config.GauntletConfig {
	return config.GauntletConfig{
		Lives:    lives,
		Rounds:   rounds,
		Playlist: []string{gameID},
		Schedule: []config.ScheduleStep{{FromRound: 0, Tier: string(tier)}},
	}
}

// session bundles what every host needs to run a gauntlet.
type session struct {
	title    string
	gauntlet config.GauntletConfig
	runtime  core.RuntimeConfig
	logger   *log.Logger
}

func (s session) matchOptions() (match.Options, error) {
	rec, err := match.NewRecorder()
	if err != nil {
		return match.Options{}, err
	}
	return match.Options{Seed: s.runtime.Seed, Logger: s.logger, Recorder: rec}, nil
}

// runTerminal plays the session with the Bubble Tea host.
func (s session) runTerminal() (*match.Gauntlet, error) {
	opts, err := s.matchOptions()
	if err != nil {
		return nil, err
	}
	return tui.Run(tui.Options{
		Config:   s.runtime,
		Gauntlet: s.gauntlet,
		Match:    opts,
		Title:    strings.ToUpper(s.title),
	})
}

// runWindow plays the session with the Ebitengine host.
func (s session) runWindow(scale float64) (*match.Gauntlet, error) {
	opts, err := s.matchOptions()
	if err != nil {
		return nil, err
	}
	return desktop.Run(desktop.Options{
		Config:   s.runtime,
		Gauntlet: s.gauntlet,
		Match:    opts,
		Title:    "Micro Arcade - " + s.title,
		Scale:    scale,
	})
}

// printSummary writes the round history after the UI has closed.
func printSummary(w io.Writer, g *match.Gauntlet) {
	if g == nil || len(g.History()) == 0 {
		return
	}
	fmt.Fprintf(w, "Rounds %d, won %d, lives left %d\n", g.Round(), g.Wins(), g.Lives())
	for _, r := range g.History() {
		fmt.Fprintf(w, "  %s\n", r)
	}
}
