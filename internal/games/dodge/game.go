// Package dodge implements a survival microgame.
// The player steers a ship with the pointer while hazards rain down from the top;
// touching one loses the round, lasting until the timer runs out wins it.
package dodge

import (
	"time"

	"github.com/vovakirdan/microarcade/internal/config"
	"github.com/vovakirdan/microarcade/internal/core"
	"github.com/vovakirdan/microarcade/internal/microgame"
	"github.com/vovakirdan/microarcade/internal/registry"
)

// Palette
var (
	backgroundColor = core.RGB(0x0a, 0x0a, 0x2a)
	shipColor       = core.ColorCyan
	glowColor       = core.ColorCyan.WithAlpha(0.5)
	hazardColor     = core.ColorRed
)

// gameConfig is used by every new instance. Set via Configure.
var gameConfig = config.DefaultDodgeConfig()

// Configure replaces the configuration for games created afterwards.
func Configure(cfg config.DodgeConfig) {
	gameConfig = cfg
}

// Game implements the dodge microgame.
type Game struct {
	microgame.Base

	cfg      config.DodgeConfig
	ship     core.Vec // ship center
	hazards  []Hazard
	spawner  core.SpawnTimer
	duration time.Duration
	spawned  int // hazards spawned this round
	dodged   int // hazards that fell past the bottom edge
}

// New creates a new dodge game drawing on surface.
func New(surface core.Surface, seed int64) *Game {
	return &Game{
		Base: microgame.NewBase(surface, seed),
		cfg:  gameConfig,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge"
}

// Instruction returns the prompt shown at round start.
func (g *Game) Instruction() string {
	return "DODGE!"
}

// WinOnTimeout reports that surviving the round is a win.
func (g *Game) WinOnTimeout() bool {
	return true
}

// Duration returns the round length for the current tier.
func (g *Game) Duration() time.Duration {
	return g.duration
}

// Init starts a new round.
func (g *Game) Init(speedMultiplier float64, diff core.Difficulty) {
	g.Begin(speedMultiplier, diff)

	g.duration = g.cfg.Tiers.Lookup(g.Tier()).Duration()
	g.hazards = nil
	g.spawner = core.NewSpawnTimer(g.cfg.Hazards.SpawnIntervalMS, g.Speed())
	g.spawned = 0
	g.dodged = 0

	g.ship = g.Center()
	g.MovePointer(g.ship)
}

// Update advances the round by dt milliseconds.
func (g *Game) Update(dt float64) core.Outcome {
	return g.Step(dt, g.advance)
}

func (g *Game) advance(dt float64) core.Outcome {
	g.followPointer()

	if g.spawner.Tick(dt) {
		g.spawnHazard()
	}

	if g.moveHazards(dt) {
		return core.OutcomeLose
	}
	return core.OutcomeContinue
}

// followPointer moves the ship to the pointer, keeping it fully on the surface.
func (g *Game) followPointer() {
	half := g.cfg.Ship.Size / 2
	p := g.Pointer()
	g.ship = core.Vec{
		X: core.ClampF(p.X, half, g.Surface().Width()-half),
		Y: core.ClampF(p.Y, half, g.Surface().Height()-half),
	}
}

// Score returns hazards dodged so far. Dodge has no target.
func (g *Game) Score() (int, int) {
	return g.dodged, 0
}

// Render draws the current game state.
func (g *Game) Render(dst core.Painter) {
	dst.Clear(backgroundColor)

	size := g.cfg.Ship.Size
	x, y := g.ship.X-size/2, g.ship.Y-size/2
	dst.FillRect(x, y, size, size, shipColor)
	dst.StrokeRect(x, y, size, size, 10, glowColor)

	for _, h := range g.hazards {
		dst.FillCircle(h.Pos.X, h.Pos.Y, h.Radius, hazardColor)
	}
}

func init() {
	registry.Register("dodge", func(surface core.Surface, seed int64) registry.Microgame {
		return New(surface, seed)
	})
}
