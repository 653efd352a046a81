// Package water implements a catching microgame.
// The player slides a bucket along the bottom of the surface to collect falling drops;
// the round is won once enough drops have been caught.
package water

import (
	"fmt"
	"time"

	"github.com/vovakirdan/microarcade/internal/config"
	"github.com/vovakirdan/microarcade/internal/core"
	"github.com/vovakirdan/microarcade/internal/microgame"
	"github.com/vovakirdan/microarcade/internal/registry"
)

// Palette
var (
	backgroundColor = core.RGB(0x1a, 0x1a, 0x2e)
	bucketColor     = core.ColorGray
	waterColor      = core.ColorSky
	hudColor        = core.ColorWhite
)

var gameConfig = config.DefaultWaterConfig()

// Configure replaces the configuration for games created afterwards.
func Configure(cfg config.WaterConfig) {
	gameConfig = cfg
}

// Game implements the water microgame.
type Game struct {
	microgame.Base

	cfg      config.WaterConfig
	bucket   core.Box // top-left anchored
	drops    []Drop
	spawner  core.SpawnTimer
	duration time.Duration
	target   int
	caught   int
	missed   int
}

// New creates a new water game drawing on surface.
func New(surface core.Surface, seed int64) *Game {
	return &Game{
		Base: microgame.NewBase(surface, seed),
		cfg:  gameConfig,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "water"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Water"
}

// Instruction returns the prompt shown at round start.
func (g *Game) Instruction() string {
	return "CATCH THE WATER!"
}

// WinOnTimeout reports that running out of time loses the round.
func (g *Game) WinOnTimeout() bool {
	return false
}

// Duration returns the round length for the current tier.
func (g *Game) Duration() time.Duration {
	return g.duration
}

// Init starts a new round.
func (g *Game) Init(speedMultiplier float64, diff core.Difficulty) {
	g.Begin(speedMultiplier, diff)

	row := g.cfg.Tiers.Lookup(g.Tier())
	g.duration = row.Duration()
	g.target = row.Count
	g.caught = 0
	g.missed = 0
	g.drops = nil
	g.spawner = core.NewSpawnTimer(g.cfg.Drops.SpawnIntervalMS, g.Speed())

	b := g.cfg.Bucket
	center := g.Center()
	g.bucket = core.Box{
		X: center.X - b.Width/2,
		Y: g.Surface().Height() - b.BottomOffset,
		W: b.Width,
		H: b.Height,
	}
	g.MovePointer(center)
}

// Update advances the round by dt milliseconds.
func (g *Game) Update(dt float64) core.Outcome {
	return g.Step(dt, g.advance)
}

func (g *Game) advance(dt float64) core.Outcome {
	g.followPointer()

	if g.spawner.Tick(dt) {
		g.spawnDrop()
	}
	g.moveDrops(dt)

	if g.caught >= g.target {
		return core.OutcomeWin
	}
	return core.OutcomeContinue
}

// followPointer slides the bucket to the pointer's x, keeping it on the surface.
// The bucket never moves vertically.
func (g *Game) followPointer() {
	half := g.bucket.W / 2
	cx := core.ClampF(g.Pointer().X, half, g.Surface().Width()-half)
	g.bucket.X = cx - half
}

// Score returns drops caught and the number needed to win.
func (g *Game) Score() (int, int) {
	return g.caught, g.target
}

// Render draws the current game state.
func (g *Game) Render(dst core.Painter) {
	dst.Clear(backgroundColor)

	b := g.bucket
	dst.FillRect(b.X, b.Y, b.W, b.H, bucketColor)

	// Water level follows progress toward the target
	if g.target > 0 && g.caught > 0 {
		fill := core.ClampF(float64(g.caught)/float64(g.target), 0, 1)
		h := b.H * fill
		dst.FillRect(b.X, b.Bottom()-h, b.W, h, waterColor)
	}

	for _, d := range g.drops {
		dst.FillCircle(d.Pos.X, d.Pos.Y, d.Radius, waterColor)
		dst.StrokeLine(d.Pos.X, d.Pos.Y-d.Radius, d.Pos.X, d.Pos.Y-d.Radius*2, 1, waterColor)
	}

	dst.Text(20, 20, fmt.Sprintf("Drops: %d / %d", g.caught, g.target), hudColor)
}

func init() {
	registry.Register("water", func(surface core.Surface, seed int64) registry.Microgame {
		return New(surface, seed)
	})
}
