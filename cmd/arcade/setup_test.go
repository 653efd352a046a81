package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"

	"github.com/vovakirdan/microarcade/internal/core"
)

func TestSingleGame(t *testing.T) {
	cfg := singleGame("water", core.TierHard, 2, 5)

	if len(cfg.Playlist) != 1 || cfg.Playlist[0] != "water" {
		t.Errorf("Playlist = %v, expected [water]", cfg.Playlist)
	}
	if cfg.Lives != 2 || cfg.Rounds != 5 {
		t.Errorf("Lives = %d, Rounds = %d; expected 2, 5", cfg.Lives, cfg.Rounds)
	}
	for _, round := range []int{0, 4, 9} {
		if got := cfg.TierFor(round); got != core.TierHard {
			t.Errorf("TierFor(%d) = %v, expected HARD", round, got)
		}
	}
	if cfg.Speed.Enabled {
		t.Error("single game runs should not ramp speed")
	}
}

func TestConfigureGamesCustomPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := configureGames("", ""); err != nil {
		t.Fatalf("configureGames() with defaults error = %v", err)
	}
	if err := configureGames("dodge", "/nonexistent/dodge.yaml"); err == nil {
		t.Error("configureGames() with a missing custom file should fail")
	}
}

func TestNewTelemetryWritesMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.json")
	flagMetrics = path
	defer func() { flagMetrics = "" }()

	closeMetrics, err := newTelemetry()
	if err != nil {
		t.Fatalf("newTelemetry() error = %v", err)
	}
	counter, err := otel.Meter("arcade-test").Int64Counter("match.rounds.started")
	if err != nil {
		t.Fatal(err)
	}
	counter.Add(context.Background(), 1)
	closeMetrics()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "match.rounds.started") {
		t.Errorf("metrics file missing counter:\n%s", data)
	}
}

func TestNewTelemetryDisabled(t *testing.T) {
	flagMetrics = ""
	closeMetrics, err := newTelemetry()
	if err != nil {
		t.Fatalf("newTelemetry() error = %v", err)
	}
	closeMetrics()
}
