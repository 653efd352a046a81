package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/microarcade/internal/config"
	"github.com/vovakirdan/microarcade/internal/core"
	"github.com/vovakirdan/microarcade/internal/input"
	"github.com/vovakirdan/microarcade/internal/match"
)

const (
	hudRows  = 1 // status line above the surface
	helpRows = 1 // key help below it
)

var (
	hudColor   = core.RGB(0xee, 0xee, 0xee)
	introColor = core.RGB(0xff, 0xd7, 0x00)
	winColor   = core.RGB(0x5f, 0xff, 0x87)
	loseColor  = core.RGB(0xff, 0x5f, 0x5f)
)

// Options configures the terminal host.
type Options struct {
	Config   core.RuntimeConfig
	Gauntlet config.GauntletConfig
	Match    match.Options
	Title    string // Label for the ready screen, e.g. "GAUNTLET"
}

// Model is the Bubble Tea model for running a gauntlet of microgames.
type Model struct {
	opts      Options
	session   *match.Session
	hub       *input.Hub
	replay    input.Replay
	canvas    *core.Canvas
	screen    *core.Screen
	keyMapper *KeyMapper
	help      help.Model
	results   *ResultsModel
	logger    *log.Logger

	config     core.RuntimeConfig
	inputFrame core.InputFrame
	lastTick   time.Time
	restarts   int64
	quitting   bool
}

// NewModel creates the terminal host and its first gauntlet.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg.SurfaceW <= 0 || cfg.SurfaceH <= 0 {
		cfg.SurfaceW, cfg.SurfaceH = 800, 600
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Match.Logger == nil {
		opts.Match.Logger = log.New(io.Discard)
	}

	m := Model{
		opts:       opts,
		hub:        input.NewHub(),
		canvas:     core.NewCanvas(cfg.SurfaceW, cfg.SurfaceH),
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpRows, 1)),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		logger:     opts.Match.Logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	m.canvas.SetDisplayRect(displayRect(cfg.ScreenW, cfg.ScreenH))

	session, err := m.newSession()
	if err != nil {
		return Model{}, err
	}
	m.session = session
	return m, nil
}

// newSession builds a gauntlet bound to the model's hub and canvas.
func (m *Model) newSession() (*match.Session, error) {
	opts := m.opts.Match
	opts.Seed += m.restarts
	g, err := match.NewGauntlet(m.opts.Gauntlet, m.canvas, m.hub, opts)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	return match.NewSession(g), nil
}

// surfaceRegion returns the cells the surface is drawn into for a terminal of w×h.
func surfaceRegion(w, h int) core.Rect {
	return core.NewRect(0, hudRows, core.Max(w, 1), core.Max(h-hudRows-helpRows, 1))
}

// displayRect returns the surface placement in client (cell) coordinates.
func displayRect(w, h int) core.Box {
	r := surfaceRegion(w, h)
	return core.Box{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Keys only drive the host; games are pointer-only.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.session.Abort()
		m.quitting = true
		return m, tea.Quit
	}
	defer m.inputFrame.Clear()

	over := m.session.Phase() == match.PhaseOver
	switch {
	case over && m.results != nil && (m.inputFrame.Has(core.ActionUp) || m.inputFrame.Has(core.ActionDown)):
		var cmd tea.Cmd
		*m.results, cmd = m.results.Update(msg)
		return m, cmd

	case m.inputFrame.Has(core.ActionPause):
		m.session.TogglePause()

	case m.inputFrame.Has(core.ActionConfirm):
		if over {
			m.quitting = true
			return m, tea.Quit
		}
		m.session.Start()

	case m.inputFrame.Has(core.ActionRestart):
		if over {
			return m.restart(), nil
		}

	case m.inputFrame.Has(core.ActionBack):
		if over {
			m.quitting = true
			return m, tea.Quit
		}
		m.session.Abort()
	}

	m.syncPointer()
	return m.syncResults(), nil
}

// handleMouse forwards pointer events to the active round.
// On the ready screen a click starts the round instead.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev, ok := mouseEvent(msg)
	if !ok {
		return m, nil
	}
	m.replay.Observe(ev)

	switch m.session.Phase() {
	case match.PhaseReady:
		if ev.Kind == input.EventPress {
			m.session.Start()
		}
	case match.PhasePlaying:
		if !m.session.Paused() {
			m.hub.Publish(ev)
		}
	}
	m.syncPointer()
	return m.syncResults(), nil
}

// handleResize processes window resize events.
// Games keep their state; only the display rect used for mouse mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpRows, 1))
	m.canvas.SetDisplayRect(displayRect(msg.Width, msg.Height))
	m.help.Width = msg.Width

	if m.results != nil {
		*m.results, _ = m.results.Update(msg)
	}
	return m, nil
}

// handleTick advances the session by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	if !m.quitting {
		m.session.Tick(dt)
		m.syncPointer()
	}
	return m.syncResults(), tickCmd(m.config.TickRate)
}

// syncPointer gives a round that has just started the last mouse position,
// since the terminal reports nothing while the mouse is still.
func (m *Model) syncPointer() {
	if m.session.Phase() != match.PhasePlaying {
		return
	}
	if r := m.session.Gauntlet().Current(); r != nil {
		m.replay.Sync(string(r.ID()), m.hub)
	}
}

// syncResults builds the results table once the gauntlet is over.
func (m Model) syncResults() Model {
	if m.session.Phase() != match.PhaseOver || m.results != nil {
		return m
	}
	g := m.session.Gauntlet()
	results := NewResultsModel(g.History(), g.Wins(), g.Lives(), m.config.ScreenW, m.config.ScreenH)
	m.results = &results
	return m
}

// restart replaces the finished gauntlet with a fresh one.
func (m Model) restart() Model {
	m.restarts++
	session, err := m.newSession()
	if err != nil {
		m.logger.Error("restart failed", "error", err)
		return m
	}
	m.session = session
	m.results = nil
	return m
}

// hudLine formats the status line shown above the surface.
func (m Model) hudLine() string {
	g := m.session.Gauntlet()
	parts := []string{fmt.Sprintf("Round %d", g.Round())}
	if rounds := m.opts.Gauntlet.Rounds; rounds > 0 {
		parts[0] = fmt.Sprintf("Round %d/%d", g.Round(), rounds)
	}
	if r := g.Current(); r != nil && m.session.Phase() != match.PhaseReady {
		game := r.Game()
		parts = append(parts, fmt.Sprintf("%s: %s", game.Title(), game.Instruction()))
		parts = append(parts, fmt.Sprintf("%.1fs", r.Remaining().Seconds()))
		if score, target := r.Score(); target > 0 {
			parts = append(parts, fmt.Sprintf("%d/%d", score, target))
		}
	}
	parts = append(parts, "Lives "+strings.Repeat("♥", core.Max(g.Lives(), 0)))
	if m.session.Paused() {
		parts = append(parts, "PAUSED")
	}
	return " " + strings.Join(parts, "  |  ")
}

// overlay returns the centered banner for the current phase, if any.
func (m Model) overlay() (string, core.Color) {
	if m.session.Phase() == match.PhaseReady {
		title := m.opts.Title
		if title == "" {
			title = "ROUND"
		}
		return fmt.Sprintf("%s %d - click or press enter", title, m.session.Gauntlet().Round()+1), introColor
	}

	text, out := m.session.Banner()
	switch out {
	case core.OutcomeWin:
		return text, winColor
	case core.OutcomeLose:
		return text, loseColor
	}
	return text, introColor
}

// draw renders the surface, HUD and banner into the screen buffer.
func (m *Model) draw() {
	m.screen.Clear()
	region := surfaceRegion(m.screen.Width(), m.screen.Height()+helpRows)
	painter := core.NewScreenPainter(m.screen, region, m.canvas.Width(), m.canvas.Height())
	m.session.Gauntlet().Render(painter)

	m.screen.DrawText(0, 0, m.hudLine(), hudColor)
	if text, c := m.overlay(); text != "" {
		m.drawBanner(region, " "+text+" ", c)
	}
}

// drawBanner frames text in a box centered on region, blanking the surface behind it.
func (m *Model) drawBanner(region core.Rect, text string, c core.Color) {
	w := len([]rune(text)) + 2
	box := core.NewRect((m.screen.Width()-w)/2, region.Y+region.H/2-1, w, 3)
	m.screen.DrawRect(box, ' ', c)
	m.screen.DrawBox(box, c)
	m.screen.DrawText(box.X+1, box.Y+1, text, c)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	name := "arcade"
	if r := m.session.Gauntlet().Current(); r != nil {
		name = r.Game().ID()
	}

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", name, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.results != nil {
		return m.results.View() + "\n\n" + helpStyle.Render(" enter/q quit  •  r play again")
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Gauntlet returns the gauntlet driven by the model.
func (m Model) Gauntlet() *match.Gauntlet {
	return m.session.Gauntlet()
}

// Run starts the Bubble Tea program and returns the final gauntlet.
func Run(opts Options) (*match.Gauntlet, error) {
	model, err := NewModel(opts)
	if err != nil {
		return nil, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer tracking without a held button
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Gauntlet(), nil
	}
	return model.Gauntlet(), nil
}
