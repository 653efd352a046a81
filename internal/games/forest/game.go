// Package forest implements a planting microgame.
// Bare spots are scattered over the surface; pressing inside a spot plants a tree there.
// The round is won when every spot is planted.
package forest

import (
	"time"

	"github.com/vovakirdan/microarcade/internal/config"
	"github.com/vovakirdan/microarcade/internal/core"
	"github.com/vovakirdan/microarcade/internal/microgame"
	"github.com/vovakirdan/microarcade/internal/registry"
)

// Palette
var (
	soilColor    = core.RGB(0x8b, 0x45, 0x13)
	holeColor    = core.RGB(0x5d, 0x40, 0x37)
	trunkColor   = core.RGB(0x4e, 0x34, 0x2e)
	leafColor    = core.ColorGreen
	outlineColor = core.ColorYellow
)

var gameConfig = config.DefaultForestConfig()

// Configure replaces the configuration for games created afterwards.
func Configure(cfg config.ForestConfig) {
	gameConfig = cfg
}

// Spot is a place where a tree can be planted.
type Spot struct {
	Pos     core.Vec
	Radius  float64
	Planted bool
	Growth  float64 // 0 when planted, grows to 1
}

// Game implements the forest microgame.
type Game struct {
	microgame.Base

	cfg      config.ForestConfig
	spots    []Spot
	planted  int
	duration time.Duration
}

// New creates a new forest game drawing on surface.
func New(surface core.Surface, seed int64) *Game {
	g := &Game{
		Base: microgame.NewBase(surface, seed),
		cfg:  gameConfig,
	}
	g.OnPress(g.plant)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "forest"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Forest"
}

// Instruction returns the prompt shown at round start.
func (g *Game) Instruction() string {
	return "REFOREST!"
}

// WinOnTimeout reports that running out of time loses the round.
func (g *Game) WinOnTimeout() bool {
	return false
}

// Duration returns the round length for the current tier.
func (g *Game) Duration() time.Duration {
	return g.duration
}

// Init starts a new round and scatters the spots.
func (g *Game) Init(speedMultiplier float64, diff core.Difficulty) {
	g.Begin(speedMultiplier, diff)

	row := g.cfg.Tiers.Lookup(g.Tier())
	g.duration = row.Duration()
	g.planted = 0

	s := g.cfg.Spots
	w, h := g.Surface().Width(), g.Surface().Height()
	g.spots = make([]Spot, row.Count)
	for i := range g.spots {
		g.spots[i] = Spot{
			Pos: core.Vec{
				X: g.Uniform(s.Margin, w-s.Margin),
				Y: g.Uniform(s.Margin, h-s.Margin),
			},
			Radius: s.Radius,
		}
	}
}

// plant marks every unplanted spot containing p as planted.
// Presses after the round has ended are ignored.
func (g *Game) plant(p core.Vec) {
	if g.Outcome().Terminal() {
		return
	}
	for i := range g.spots {
		s := &g.spots[i]
		if !s.Planted && core.Dist(p, s.Pos) < s.Radius {
			s.Planted = true
			g.planted++
		}
	}
}

// Update advances the round by dt milliseconds.
func (g *Game) Update(dt float64) core.Outcome {
	return g.Step(dt, g.advance)
}

func (g *Game) advance(dt float64) core.Outcome {
	g.grow(dt)

	if g.planted >= len(g.spots) {
		return core.OutcomeWin
	}
	return core.OutcomeContinue
}

// grow advances every planted tree toward full size.
func (g *Game) grow(dt float64) {
	step := g.cfg.Spots.GrowthRate * dt / g.cfg.ReferenceFrameMS
	for i := range g.spots {
		s := &g.spots[i]
		if s.Planted && s.Growth < 1 {
			s.Growth = min(1, s.Growth+step)
		}
	}
}

// Score returns spots planted and the total number of spots.
func (g *Game) Score() (int, int) {
	return g.planted, len(g.spots)
}

// Render draws the current game state.
func (g *Game) Render(dst core.Painter) {
	dst.Clear(soilColor)

	for _, s := range g.spots {
		dst.FillCircle(s.Pos.X, s.Pos.Y, s.Radius, holeColor)

		if !s.Planted {
			dst.StrokeCircle(s.Pos.X, s.Pos.Y, s.Radius, 2, outlineColor)
			continue
		}

		k := s.Growth
		x, y := s.Pos.X, s.Pos.Y
		dst.FillRect(x-5*k, y-40*k, 10*k, 40*k, trunkColor)
		dst.FillPath([]core.Vec{
			{X: x, Y: y - 80*k},
			{X: x - 30*k, Y: y - 20*k},
			{X: x + 30*k, Y: y - 20*k},
		}, leafColor)
	}
}

func init() {
	registry.Register("forest", func(surface core.Surface, seed int64) registry.Microgame {
		return New(surface, seed)
	})
}
