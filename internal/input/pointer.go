// Package input translates raw pointer events from a host into surface coordinates
// and delivers them to the microgame that owns the current round.
//
// Everything here runs on the host's single UI goroutine: events and frames are
// strictly serialized, so no type in this package synchronizes.
package input

import "github.com/vovakirdan/microarcade/internal/core"

// EventKind is the type of pointer event.
type EventKind uint8

const (
	EventMove EventKind = iota
	EventPress
	EventRelease
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "Move"
	case EventPress:
		return "Press"
	case EventRelease:
		return "Release"
	default:
		return "Unknown"
	}
}

// Event is a raw pointer event in client coordinates (window pixels or terminal cells).
type Event struct {
	Kind    EventKind
	ClientX float64
	ClientY float64
}

// ToSurface converts client coordinates into the surface's coordinate space,
// scaling by the ratio of the surface's logical size to its displayed size.
func ToSurface(s core.Surface, clientX, clientY float64) core.Vec {
	d := s.DisplayRect()
	sx, sy := 1.0, 1.0
	if d.W > 0 {
		sx = s.Width() / d.W
	}
	if d.H > 0 {
		sy = s.Height() / d.H
	}
	return core.Vec{
		X: (clientX - d.X) * sx,
		Y: (clientY - d.Y) * sy,
	}
}

// Pointer is the last known pointer position in surface coordinates.
// It has a single write path (MoveTo) and a single accessor (Position); the event
// callback writes it and the simulation step reads it once per frame.
type Pointer struct {
	pos core.Vec
}

// MoveTo overwrites the stored position.
func (p *Pointer) MoveTo(v core.Vec) {
	p.pos = v
}

// Position returns the last stored position.
func (p *Pointer) Position() core.Vec {
	return p.pos
}
