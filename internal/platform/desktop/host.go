// Package desktop is the Ebitengine host: a window with a real mouse pointer.
// The games draw onto a fixed-size offscreen image which is scaled and
// letterboxed into the window.
package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/microarcade/internal/config"
	"github.com/vovakirdan/microarcade/internal/core"
	"github.com/vovakirdan/microarcade/internal/input"
	"github.com/vovakirdan/microarcade/internal/match"
)

var letterbox = color.NRGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}

// Options configures the desktop host.
type Options struct {
	Config   core.RuntimeConfig
	Gauntlet config.GauntletConfig
	Match    match.Options
	Title    string  // Window title
	Scale    float64 // Initial window size relative to the surface
}

// Host implements ebiten.Game over a match session.
type Host struct {
	opts     Options
	session  *match.Session
	hub      *input.Hub
	canvas   *core.Canvas
	surface  *ebiten.Image
	painter  *imagePainter
	pointer  pointerState
	replay   input.Replay
	logger   *log.Logger
	restarts int64
}

var _ ebiten.Game = (*Host)(nil)

// NewHost creates the host and its first gauntlet.
func NewHost(opts Options) (*Host, error) {
	cfg := opts.Config
	if cfg.SurfaceW <= 0 || cfg.SurfaceH <= 0 {
		cfg.SurfaceW, cfg.SurfaceH = 800, 600
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	opts.Config = cfg
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Match.Logger == nil {
		opts.Match.Logger = log.New(io.Discard)
	}

	surface := ebiten.NewImage(int(cfg.SurfaceW), int(cfg.SurfaceH))
	h := &Host{
		opts:    opts,
		hub:     input.NewHub(),
		canvas:  core.NewCanvas(cfg.SurfaceW, cfg.SurfaceH),
		surface: surface,
		painter: newImagePainter(surface),
		logger:  opts.Match.Logger,
	}
	if err := h.reset(); err != nil {
		return nil, err
	}
	return h, nil
}

// reset replaces the session with a fresh gauntlet.
func (h *Host) reset() error {
	opts := h.opts.Match
	opts.Seed += h.restarts
	g, err := match.NewGauntlet(h.opts.Gauntlet, h.canvas, h.hub, opts)
	if err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	h.session = match.NewSession(g)
	return nil
}

// Update handles keys and the mouse, then advances the session by one tick.
func (h *Host) Update() error {
	over := h.session.Phase() == match.PhaseOver

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		h.session.Abort()
		return ebiten.Termination

	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		h.session.TogglePause()

	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if over {
			return ebiten.Termination
		}
		h.session.Start()

	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if over {
			h.restarts++
			if err := h.reset(); err != nil {
				return err
			}
		}
	}

	x, y := ebiten.CursorPosition()
	events := h.pointer.poll(x, y,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	)
	h.dispatch(events)
	h.syncPointer()

	h.session.Tick(1000 / float64(ebiten.TPS()))
	h.syncPointer()
	return nil
}

// dispatch routes pointer events: a press on the ready screen starts the round,
// events during play go to the game.
func (h *Host) dispatch(events []input.Event) {
	for _, ev := range events {
		h.replay.Observe(ev)
		switch h.session.Phase() {
		case match.PhaseReady:
			if ev.Kind == input.EventPress {
				h.session.Start()
			}
		case match.PhasePlaying:
			if !h.session.Paused() {
				h.hub.Publish(ev)
			}
		}
	}
}

// syncPointer gives a round that has just started the cursor position,
// since the cursor only produces events when it moves.
func (h *Host) syncPointer() {
	if h.session.Phase() != match.PhasePlaying {
		return
	}
	if r := h.session.Gauntlet().Current(); r != nil {
		h.replay.Sync(string(r.ID()), h.hub)
	}
}

// Draw renders the surface and composites it into the letterboxed display rect.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(letterbox)

	h.surface.Clear()
	if h.session.Phase() == match.PhaseOver {
		h.drawResults()
	} else {
		h.session.Gauntlet().Render(h.painter)
		h.drawHUD()
	}

	d := h.canvas.DisplayRect()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(d.W/h.canvas.Width(), d.H/h.canvas.Height())
	op.GeoM.Translate(d.X, d.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(h.surface, op)
}

// drawHUD prints the status line and the phase banner onto the surface.
func (h *Host) drawHUD() {
	g := h.session.Gauntlet()
	status := fmt.Sprintf("Round %d  Lives %d  Wins %d", g.Round(), g.Lives(), g.Wins())
	if r := g.Current(); r != nil && h.session.Phase() != match.PhaseReady {
		status += fmt.Sprintf("  %s  %.1fs", r.Game().Title(), r.Remaining().Seconds())
	}
	if h.session.Paused() {
		status += "  PAUSED"
	}
	ebitenutil.DebugPrintAt(h.surface, status, 8, int(h.canvas.Height())-20)

	text, _ := h.session.Banner()
	if h.session.Phase() == match.PhaseReady {
		text = fmt.Sprintf("ROUND %d - click or press enter", g.Round()+1)
	}
	if text != "" {
		x := (int(h.canvas.Width()) - len(text)*debugGlyphW) / 2
		ebitenutil.DebugPrintAt(h.surface, text, x, int(h.canvas.Height())/2)
	}
}

// drawResults lists the finished rounds.
func (h *Host) drawResults() {
	g := h.session.Gauntlet()
	y := 40
	ebitenutil.DebugPrintAt(h.surface, "GAME OVER", 40, y)
	y += 20
	ebitenutil.DebugPrintAt(h.surface, fmt.Sprintf("Rounds %d  Won %d  Lives left %d", g.Round(), g.Wins(), g.Lives()), 40, y)
	y += 30
	for _, r := range g.History() {
		ebitenutil.DebugPrintAt(h.surface, r.String(), 40, y)
		y += 16
	}
	ebitenutil.DebugPrintAt(h.surface, "enter/q quit  r play again", 40, int(h.canvas.Height())-30)
}

// Layout fits the surface into the window, preserving its aspect ratio.
// Cursor positions are reported in the same outside coordinates.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.canvas.Fit(0, 0, float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Gauntlet returns the gauntlet driven by the host.
func (h *Host) Gauntlet() *match.Gauntlet {
	return h.session.Gauntlet()
}

// debugGlyphW is the advance of ebitenutil's debug font.
const debugGlyphW = 6

// Run opens the window and blocks until it is closed. It returns the final gauntlet.
func Run(opts Options) (*match.Gauntlet, error) {
	h, err := NewHost(opts)
	if err != nil {
		return nil, err
	}

	cfg := h.opts.Config
	title := opts.Title
	if title == "" {
		title = "Micro Arcade"
	}
	ebiten.SetWindowSize(int(cfg.SurfaceW*h.opts.Scale), int(cfg.SurfaceH*h.opts.Scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return h.Gauntlet(), fmt.Errorf("desktop: %w", err)
	}
	return h.Gauntlet(), nil
}
