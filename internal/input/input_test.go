package input

import (
	"testing"

	"github.com/vovakirdan/microarcade/internal/core"
)

func TestToSurfaceScalesDisplayedSize(t *testing.T) {
	c := core.NewCanvas(800, 600)

	tests := []struct {
		name     string
		display  core.Box
		clientX  float64
		clientY  float64
		expected core.Vec
	}{
		{"identity", core.Box{W: 800, H: 600}, 400, 300, core.Vec{X: 400, Y: 300}},
		{"half size", core.Box{W: 400, H: 300}, 200, 150, core.Vec{X: 400, Y: 300}},
		{"offset", core.Box{X: 100, Y: 50, W: 800, H: 600}, 100, 50, core.Vec{X: 0, Y: 0}},
		{"terminal cells", core.Box{X: 0, Y: 1, W: 80, H: 30}, 40, 16, core.Vec{X: 400, Y: 300}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c.SetDisplayRect(tc.display)
			if got := ToSurface(c, tc.clientX, tc.clientY); got != tc.expected {
				t.Errorf("ToSurface(%v, %v) = %v, expected %v", tc.clientX, tc.clientY, got, tc.expected)
			}
		})
	}
}

func TestToSurfaceDegenerateDisplay(t *testing.T) {
	c := core.NewCanvas(800, 600)
	c.SetDisplayRect(core.Box{})

	if got := ToSurface(c, 10, 20); got != (core.Vec{X: 10, Y: 20}) {
		t.Errorf("ToSurface with empty display = %v, expected passthrough", got)
	}
}

func TestPointerSingleWritePath(t *testing.T) {
	var p Pointer
	p.MoveTo(core.Vec{X: 1, Y: 2})
	p.MoveTo(core.Vec{X: 3, Y: 4})

	if got := p.Position(); got != (core.Vec{X: 3, Y: 4}) {
		t.Errorf("Position() = %v, expected last written (3, 4)", got)
	}
}

func TestHubSubscribeUnsubscribe(t *testing.T) {
	h := NewHub()
	var a, b int

	unsubA := h.Subscribe(func(Event) { a++ })
	h.Subscribe(func(Event) { b++ })

	h.Publish(Event{Kind: EventMove})
	unsubA()
	unsubA() // second call is a no-op
	h.Publish(Event{Kind: EventPress})

	if a != 1 {
		t.Errorf("listener A received %d events, expected 1", a)
	}
	if b != 2 {
		t.Errorf("listener B received %d events, expected 2", b)
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", h.Len())
	}
}

func TestHubUnsubscribeDuringPublish(t *testing.T) {
	h := NewHub()
	calls := 0
	var unsub func()
	unsub = h.Subscribe(func(Event) {
		calls++
		unsub()
	})

	h.Publish(Event{})
	h.Publish(Event{})

	if calls != 1 {
		t.Errorf("self-removing listener called %d times, expected 1", calls)
	}
}

func TestEventKindString(t *testing.T) {
	if EventPress.String() != "Press" || EventMove.String() != "Move" || EventRelease.String() != "Release" {
		t.Error("EventKind.String() returned an unexpected name")
	}
}

func TestReplaySyncsEachRoundOnce(t *testing.T) {
	h := NewHub()
	var got []Event
	h.Subscribe(func(e Event) { got = append(got, e) })

	var r Replay
	if r.Sync("round-1", h) {
		t.Error("Sync() before any event should publish nothing")
	}

	r.Observe(Event{Kind: EventPress, ClientX: 12, ClientY: 34})
	if r.Sync("round-1", h) {
		t.Error("Sync() for an already synced round should publish nothing")
	}
	if !r.Sync("round-2", h) {
		t.Fatal("Sync() for a new round should publish the last position")
	}
	if r.Sync("round-2", h) {
		t.Error("Sync() twice for one round should publish once")
	}

	expected := []Event{{Kind: EventMove, ClientX: 12, ClientY: 34}}
	if len(got) != 1 || got[0] != expected[0] {
		t.Errorf("published %+v, expected %+v", got, expected)
	}
}
