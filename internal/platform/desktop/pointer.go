package desktop

import "github.com/vovakirdan/microarcade/internal/input"

// pointerState turns polled mouse state into pointer events.
// Ebitengine reports the cursor every tick; a move is emitted only when it changes.
type pointerState struct {
	x, y  int
	known bool
	buf   []input.Event
}

// poll returns the events for this tick in client coordinates: a move first,
// then press or release at the current position.
func (p *pointerState) poll(x, y int, pressed, released bool) []input.Event {
	p.buf = p.buf[:0]
	cx, cy := float64(x), float64(y)

	if !p.known || x != p.x || y != p.y {
		p.x, p.y, p.known = x, y, true
		p.buf = append(p.buf, input.Event{Kind: input.EventMove, ClientX: cx, ClientY: cy})
	}
	if pressed {
		p.buf = append(p.buf, input.Event{Kind: input.EventPress, ClientX: cx, ClientY: cy})
	}
	if released {
		p.buf = append(p.buf, input.Event{Kind: input.EventRelease, ClientX: cx, ClientY: cy})
	}
	return p.buf
}
