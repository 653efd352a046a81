package dodge

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/microarcade/internal/core"
	"github.com/vovakirdan/microarcade/internal/registry"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	g := New(core.NewCanvas(800, 600), 42)
	g.Init(1.0, core.Difficulty{})
	return g
}

func TestGameID(t *testing.T) {
	g := New(core.NewCanvas(800, 600), 1)
	if g.ID() != "dodge" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "dodge")
	}
	if !g.WinOnTimeout() {
		t.Error("WinOnTimeout() = false, expected true")
	}
	if !registry.Exists("dodge") {
		t.Error("dodge should be registered")
	}
}

func TestInitCentersShip(t *testing.T) {
	g := newGame(t)

	if g.ship != (core.Vec{X: 400, Y: 300}) {
		t.Errorf("ship = %v, expected (400, 300)", g.ship)
	}
	if len(g.hazards) != 0 {
		t.Errorf("len(hazards) = %d, expected 0", len(g.hazards))
	}
}

func TestTierDurations(t *testing.T) {
	g := New(core.NewCanvas(800, 600), 1)

	tests := []struct {
		tier     string
		expected time.Duration
	}{
		{"EASY", 5 * time.Second},
		{"NORMAL", 6 * time.Second},
		{"HARD", 7 * time.Second},
		{"", 6 * time.Second},
	}
	for _, tc := range tests {
		g.Init(1, core.Difficulty{Tier: core.Tier(tc.tier)})
		if g.Duration() != tc.expected {
			t.Errorf("tier %q Duration() = %v, expected %v", tc.tier, g.Duration(), tc.expected)
		}
	}
}

func TestHazardAtShipLoses(t *testing.T) {
	g := newGame(t)
	g.hazards = append(g.hazards, Hazard{Pos: g.ship, Radius: 20, Speed: 10})

	if got := g.Update(16.67); got != core.OutcomeLose {
		t.Errorf("Update() = %v, expected LOSE", got)
	}
}

func TestUpdateAfterLoseIsLatched(t *testing.T) {
	g := newGame(t)
	g.hazards = append(g.hazards, Hazard{Pos: g.ship, Radius: 20})
	g.Update(16)

	before := len(g.hazards)
	g.hazards = nil // hazard gone, still lost
	if got := g.Update(16); got != core.OutcomeLose {
		t.Errorf("Update after LOSE = %v, expected LOSE", got)
	}
	if before == 0 {
		t.Error("colliding hazard should remain rendered")
	}
}

func TestZeroDtIsNoOp(t *testing.T) {
	g := newGame(t)

	for i := 0; i < 50; i++ {
		if got := g.Update(0); got != core.OutcomeContinue {
			t.Fatalf("Update(0) = %v, expected CONTINUE", got)
		}
	}
	if g.spawned != 0 || len(g.hazards) != 0 || g.dodged != 0 {
		t.Errorf("Update(0) changed state: spawned=%d hazards=%d dodged=%d", g.spawned, len(g.hazards), g.dodged)
	}

	if got := g.Update(math.NaN()); got != core.OutcomeContinue || g.spawned != 0 {
		t.Error("Update(NaN) should be a no-op")
	}
}

func TestFirstUpdateSpawns(t *testing.T) {
	g := newGame(t)
	g.MovePointer(core.Vec{X: 20, Y: 580})

	g.Update(1)
	if g.spawned != 1 || len(g.hazards) != 1 {
		t.Fatalf("after first update spawned=%d hazards=%d, expected 1", g.spawned, len(g.hazards))
	}

	h := g.hazards[0]
	if h.Pos.X < h.Radius || h.Pos.X > 800-h.Radius {
		t.Errorf("hazard x = %v outside [r, w-r] for r=%v", h.Pos.X, h.Radius)
	}
	if h.Radius < 20 || h.Radius >= 40 {
		t.Errorf("hazard radius = %v, expected [20, 40)", h.Radius)
	}
}

func TestExpiredHazardRemovedSameFrame(t *testing.T) {
	g := newGame(t)
	g.MovePointer(core.Vec{X: 20, Y: 20})
	g.Update(1) // consume the initial spawn
	g.hazards = []Hazard{{Pos: core.Vec{X: 700, Y: 615}, Radius: 20, Speed: 10}}

	g.Update(16.67)

	for _, h := range g.hazards {
		if h.Pos.Y > 600+h.Radius {
			t.Errorf("hazard at y=%v still active after expiring", h.Pos.Y)
		}
	}
	if g.dodged != 1 {
		t.Errorf("dodged = %d, expected 1", g.dodged)
	}
}

func TestShipClampedToSurface(t *testing.T) {
	g := newGame(t)
	g.MovePointer(core.Vec{X: -100, Y: 900})

	g.followPointer()
	if g.ship != (core.Vec{X: 20, Y: 580}) {
		t.Errorf("ship = %v, expected clamped (20, 580)", g.ship)
	}
}

func TestInitIdempotent(t *testing.T) {
	g := newGame(t)
	g.MovePointer(core.Vec{X: 10, Y: 10})
	for i := 0; i < 20; i++ {
		g.Update(16)
	}

	g.Init(1.5, core.Difficulty{Tier: core.TierHard})
	once := snapshot(g)
	g.Init(1.5, core.Difficulty{Tier: core.TierHard})
	twice := snapshot(g)

	if once != twice {
		t.Errorf("Init twice = %+v, expected %+v", twice, once)
	}
}

type state struct {
	ship            core.Vec
	hazards         int
	spawned, dodged int
	remaining       float64
	duration        time.Duration
}

func snapshot(g *Game) state {
	return state{g.ship, len(g.hazards), g.spawned, g.dodged, g.spawner.Remaining(), g.duration}
}

func TestCountersMonotonic(t *testing.T) {
	g := newGame(t)
	g.MovePointer(core.Vec{X: 20, Y: 20})

	prevSpawned, prevDodged := 0, 0
	for i := 0; i < 300; i++ {
		if g.Update(16.67) != core.OutcomeContinue {
			break
		}
		if g.spawned < prevSpawned || g.dodged < prevDodged {
			t.Fatalf("counters decreased at step %d", i)
		}
		prevSpawned, prevDodged = g.spawned, g.dodged
	}
}

func TestHazardMotionFrameRateIndependent(t *testing.T) {
	run := func(steps int) float64 {
		g := newGame(t)
		g.ship = core.Vec{X: 20, Y: 580}
		g.hazards = []Hazard{{Pos: core.Vec{X: 700, Y: -50}, Radius: 20, Speed: 10}}
		dt := 1000.0 / float64(steps)
		for i := 0; i < steps; i++ {
			g.moveHazards(dt)
		}
		return g.hazards[0].Pos.Y
	}

	coarse, fine := run(10), run(100)
	if math.Abs(coarse-fine) > 1e-9 {
		t.Errorf("hazard y after 1s: 10 steps = %v, 100 steps = %v", coarse, fine)
	}
}

func TestCollisionOutcomeFrameRateIndependent(t *testing.T) {
	run := func(steps int) core.Outcome {
		g := newGame(t)
		g.ship = core.Vec{X: 400, Y: 300}
		g.hazards = []Hazard{{Pos: core.Vec{X: 400, Y: 0}, Radius: 20, Speed: 10}}
		dt := 1000.0 / float64(steps)
		for i := 0; i < steps; i++ {
			if g.moveHazards(dt) {
				return core.OutcomeLose
			}
		}
		return core.OutcomeContinue
	}

	if coarse, fine := run(10), run(100); coarse != fine || coarse != core.OutcomeLose {
		t.Errorf("outcome: 10 steps = %v, 100 steps = %v, expected LOSE for both", coarse, fine)
	}
}

// withoutSpawns stops the spawner so only hand-placed hazards move.
func withoutSpawns(g *Game) {
	g.spawner = core.NewSpawnTimer(1e12, 1)
	g.spawner.Tick(1)
}

func TestCoarseStepsCannotSkipShip(t *testing.T) {
	tests := []struct {
		name     string
		start    core.Vec
		expected core.Outcome
	}{
		{"hazard on the ship's column", core.Vec{X: 400, Y: 130}, core.OutcomeLose},
		{"hazard grazing the ship", core.Vec{X: 435, Y: 130}, core.OutcomeLose},
		{"hazard clear of the ship", core.Vec{X: 700, Y: 130}, core.OutcomeContinue},
	}

	run := func(start core.Vec, steps int) core.Outcome {
		g := newGame(t)
		withoutSpawns(g)
		g.hazards = []Hazard{{Pos: start, Radius: 20, Speed: 20}}
		dt := 1000.0 / float64(steps)
		out := core.OutcomeContinue
		for i := 0; i < steps && out == core.OutcomeContinue; i++ {
			out = g.Update(dt)
		}
		return out
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, steps := range []int{4, 10, 100} {
				if got := run(tc.start, steps); got != tc.expected {
					t.Errorf("%d steps over 1s: Update() = %v, expected %v", steps, got, tc.expected)
				}
			}
		})
	}
}

func TestSpeedMultiplierScalesSpawnInterval(t *testing.T) {
	g := New(core.NewCanvas(800, 600), 1)
	g.Init(2, core.Difficulty{})
	if g.spawner.Interval() != 100 {
		t.Errorf("Interval() = %v, expected 100", g.spawner.Interval())
	}

	g.Init(-1, core.Difficulty{})
	if g.Speed() != core.MinSpeedMultiplier {
		t.Errorf("Speed() = %v, expected clamped minimum", g.Speed())
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := newGame(t)
	g.Update(16)
	before := snapshot(g)

	scr := core.NewScreen(80, 30)
	p := core.NewScreenPainter(scr, core.NewRect(0, 0, 80, 30), 800, 600)
	g.Render(p)
	g.Render(p)

	if snapshot(g) != before {
		t.Error("Render changed simulation state")
	}
	if scr.GetCell(40, 15).Color != shipColor {
		t.Errorf("center cell color = %v, expected ship color", scr.GetCell(40, 15).Color)
	}
}
