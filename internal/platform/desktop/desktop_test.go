package desktop

import (
	"image/color"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/microarcade/internal/config"
	"github.com/vovakirdan/microarcade/internal/core"
	"github.com/vovakirdan/microarcade/internal/input"
	"github.com/vovakirdan/microarcade/internal/match"
	"github.com/vovakirdan/microarcade/internal/microgame"
	"github.com/vovakirdan/microarcade/internal/registry"
)

// stubGame survives until the timer runs out and only tracks the pointer.
type stubGame struct {
	microgame.Base
}

var lastStub *stubGame

func (g *stubGame) ID() string                        { return "desktop-stub" }
func (g *stubGame) Title() string                     { return "Stub" }
func (g *stubGame) Instruction() string               { return "HOLD!" }
func (g *stubGame) WinOnTimeout() bool                { return true }
func (g *stubGame) Duration() time.Duration           { return 100 * time.Millisecond }
func (g *stubGame) Render(core.Painter)               {}
func (g *stubGame) Init(s float64, d core.Difficulty) { g.Begin(s, d) }

func (g *stubGame) Update(dt float64) core.Outcome {
	return g.Step(dt, func(float64) core.Outcome { return core.OutcomeContinue })
}

func init() {
	registry.Register("desktop-stub", func(s core.Surface, seed int64) registry.Microgame {
		lastStub = &stubGame{Base: microgame.NewBase(s, seed)}
		return lastStub
	})
}

func TestPointerStatePoll(t *testing.T) {
	var p pointerState

	events := p.poll(10, 20, false, false)
	if len(events) != 1 || events[0].Kind != input.EventMove {
		t.Fatalf("first poll = %+v, expected one move", events)
	}

	if events := p.poll(10, 20, false, false); len(events) != 0 {
		t.Errorf("poll without change = %+v, expected none", events)
	}

	events = p.poll(12, 20, true, false)
	if len(events) != 2 || events[0].Kind != input.EventMove || events[1].Kind != input.EventPress {
		t.Fatalf("poll = %+v, expected move then press", events)
	}
	if events[1].ClientX != 12 || events[1].ClientY != 20 {
		t.Errorf("press at (%v, %v), expected (12, 20)", events[1].ClientX, events[1].ClientY)
	}

	events = p.poll(12, 20, false, true)
	if len(events) != 1 || events[0].Kind != input.EventRelease {
		t.Errorf("poll = %+v, expected release", events)
	}
}

func TestFanIndices(t *testing.T) {
	tests := []struct {
		n        int
		expected []uint16
	}{
		{2, nil},
		{3, []uint16{0, 1, 2}},
		{5, []uint16{0, 1, 2, 0, 2, 3, 0, 3, 4}},
	}

	for _, tc := range tests {
		if got := fanIndices(nil, tc.n); !slices.Equal(got, tc.expected) {
			t.Errorf("fanIndices(%d) = %v, expected %v", tc.n, got, tc.expected)
		}
	}
}

func TestNRGBA(t *testing.T) {
	c := core.RGB(0x12, 0x34, 0x56).WithAlpha(0.5)
	if got := nrgba(c); got != (color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x80}) {
		t.Errorf("nrgba() = %+v", got)
	}
}

// Window cursor positions go through the letterboxed display rect.
func TestLetterboxMapping(t *testing.T) {
	canvas := core.NewCanvas(800, 600)
	canvas.Fit(0, 0, 1000, 600)

	if d := canvas.DisplayRect(); d != (core.Box{X: 100, Y: 0, W: 800, H: 600}) {
		t.Fatalf("DisplayRect() = %+v, expected pillarboxed 800x600 at x=100", d)
	}

	var p pointerState
	ev := p.poll(500, 300, false, false)[0]
	if got := input.ToSurface(canvas, ev.ClientX, ev.ClientY); got != (core.Vec{X: 400, Y: 300}) {
		t.Errorf("ToSurface() = %+v, expected the surface center", got)
	}
}

func TestHostReplaysCursorToNextRound(t *testing.T) {
	canvas := core.NewCanvas(800, 600)
	canvas.Fit(0, 0, 1000, 600)
	hub := input.NewHub()

	cfg := config.GauntletConfig{Lives: 1, Rounds: 2, Playlist: []string{"desktop-stub"}}
	g, err := match.NewGauntlet(cfg, canvas, hub, match.Options{})
	if err != nil {
		t.Fatalf("NewGauntlet() error = %v", err)
	}
	h := &Host{session: match.NewSession(g), hub: hub, canvas: canvas}

	// Click to start, then hold the cursor still
	h.dispatch(h.pointer.poll(500, 300, true, false))
	h.syncPointer()
	first := lastStub
	if h.session.Phase() != match.PhasePlaying {
		t.Fatalf("phase = %v, expected playing", h.session.Phase())
	}

	h.session.Tick(100)
	h.session.Tick(match.DefaultResultHoldMS)
	h.dispatch(h.pointer.poll(500, 300, false, false))
	h.syncPointer()

	if lastStub == first || h.Gauntlet().Round() != 2 {
		t.Fatalf("round = %d, expected the second round to have started", h.Gauntlet().Round())
	}
	if got := lastStub.Pointer(); got != (core.Vec{X: 400, Y: 300}) {
		t.Errorf("second round pointer = %+v, expected the held cursor at (400, 300)", got)
	}
}
