// Package solar implements a cleaning microgame.
// Dirt patches cover a solar panel; holding the pointer over a patch wipes it away.
// The round is won once most of the patches are fully clean.
package solar

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/microarcade/internal/config"
	"github.com/vovakirdan/microarcade/internal/core"
	"github.com/vovakirdan/microarcade/internal/microgame"
	"github.com/vovakirdan/microarcade/internal/registry"
)

// Palette
var (
	panelColor = core.RGB(0x22, 0x22, 0x22)
	gridColor  = core.RGB(0x44, 0x44, 0x44)
	dirtColor  = core.RGB(0x8b, 0x45, 0x13)
	wiperColor = core.ColorWhite.WithAlpha(0.5)
)

const (
	gridSpacing = 100
	wobble      = 5 // max extra radius when drawing dust
)

var gameConfig = config.DefaultSolarConfig()

// Configure replaces the configuration for games created afterwards.
func Configure(cfg config.SolarConfig) {
	gameConfig = cfg
}

// Dirt is a patch on the panel. Opacity falls from 1 to 0 while it is wiped.
type Dirt struct {
	Pos     core.Vec
	Radius  float64
	Opacity float64
}

// Clean reports whether the patch has been wiped away.
func (d Dirt) Clean() bool {
	return d.Opacity <= 0
}

// Game implements the solar microgame.
type Game struct {
	microgame.Base

	cfg      config.SolarConfig
	dirt     []Dirt
	cleaned  int
	total    int
	duration time.Duration

	// Render-only randomness for the dust wobble
	jitter *rand.Rand
}

// New creates a new solar game drawing on surface.
func New(surface core.Surface, seed int64) *Game {
	return &Game{
		Base:   microgame.NewBase(surface, seed),
		cfg:    gameConfig,
		jitter: rand.New(rand.NewSource(seed ^ 0x5eed)),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "solar"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Solar"
}

// Instruction returns the prompt shown at round start.
func (g *Game) Instruction() string {
	return "CLEAN!"
}

// WinOnTimeout reports that running out of time loses the round.
func (g *Game) WinOnTimeout() bool {
	return false
}

// Duration returns the round length for the current tier.
func (g *Game) Duration() time.Duration {
	return g.duration
}

// Init starts a new round and scatters the dirt.
// The pointer is left where it is; the player keeps the wiper between rounds.
func (g *Game) Init(speedMultiplier float64, diff core.Difficulty) {
	g.Begin(speedMultiplier, diff)

	row := g.cfg.Tiers.Lookup(g.Tier())
	g.duration = row.Duration()
	g.cleaned = 0

	d := g.cfg.Dirt
	w, h := g.Surface().Width(), g.Surface().Height()
	g.dirt = make([]Dirt, row.Count)
	for i := range g.dirt {
		g.dirt[i] = Dirt{
			Pos: core.Vec{
				X: g.Uniform(d.Margin, w-d.Margin),
				Y: g.Uniform(d.Margin, h-d.Margin),
			},
			Radius:  g.Uniform(d.MinRadius, d.MaxRadius),
			Opacity: 1,
		}
	}
	g.total = len(g.dirt)
}

// Update advances the round by dt milliseconds.
func (g *Game) Update(dt float64) core.Outcome {
	return g.Step(dt, g.advance)
}

func (g *Game) advance(dt float64) core.Outcome {
	g.wipe(dt)

	if float64(g.cleaned) >= float64(g.total)*g.cfg.WinRatio {
		return core.OutcomeWin
	}
	return core.OutcomeContinue
}

// wipe reduces the opacity of every dirty patch within reach of the pointer.
// A patch reaching zero is counted as cleaned exactly once.
func (g *Game) wipe(dt float64) {
	p := g.Pointer()
	step := g.cfg.Dirt.CleanRate * dt / g.cfg.ReferenceFrameMS

	for i := range g.dirt {
		d := &g.dirt[i]
		if d.Clean() || core.Dist(p, d.Pos) >= g.cfg.WiperRadius {
			continue
		}
		d.Opacity -= step
		if d.Opacity <= 0 {
			d.Opacity = 0
			g.cleaned++
		}
	}
}

// Score returns patches cleaned and the total number of patches.
func (g *Game) Score() (int, int) {
	return g.cleaned, g.total
}

// Render draws the current game state.
func (g *Game) Render(dst core.Painter) {
	w, h := g.Surface().Width(), g.Surface().Height()
	dst.Clear(panelColor)

	for x := 0.0; x < w; x += gridSpacing {
		dst.StrokeLine(x, 0, x, h, 5, gridColor)
	}
	for y := 0.0; y < h; y += gridSpacing {
		dst.StrokeLine(0, y, w, y, 5, gridColor)
	}

	for _, d := range g.dirt {
		if d.Clean() {
			continue
		}
		r := d.Radius + g.jitter.Float64()*wobble
		dst.FillCircle(d.Pos.X, d.Pos.Y, r, dirtColor.WithAlpha(d.Opacity))
	}

	p := g.Pointer()
	dst.FillCircle(p.X, p.Y, g.cfg.WiperRadius, wiperColor)
}

func init() {
	registry.Register("solar", func(surface core.Surface, seed int64) registry.Microgame {
		return New(surface, seed)
	})
}
