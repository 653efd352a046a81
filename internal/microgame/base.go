// Package microgame holds the state every microgame shares: the surface it draws on,
// the pointer it reads, the round latch and the per-round random source.
// Games embed Base and supply their own Init, Update and Render.
package microgame

import (
	"math/rand"

	"github.com/vovakirdan/microarcade/internal/core"
	"github.com/vovakirdan/microarcade/internal/input"
)

// PressHandler is called for a pointer press, already mapped to surface coordinates.
type PressHandler func(p core.Vec)

// Base implements the parts of registry.Microgame that do not depend on the game:
// Attach, Detach and the outcome latch around Update.
type Base struct {
	surface core.Surface
	pointer input.Pointer
	seed    int64
	rng     *rand.Rand

	speed float64
	tier  core.Tier
	round core.Round

	onPress     PressHandler
	unsubscribe func()
}

// NewBase creates a Base drawing on surface. The pointer starts at the surface origin
// until the first move event arrives.
func NewBase(surface core.Surface, seed int64) Base {
	return Base{
		surface: surface,
		seed:    seed,
		rng:     rand.New(rand.NewSource(seed)),
		speed:   1,
		tier:    core.TierNormal,
	}
}

// Begin starts a new round: it normalizes the speed multiplier and tier,
// clears the outcome latch and reseeds the random source so Init is repeatable.
func (b *Base) Begin(speedMultiplier float64, diff core.Difficulty) {
	b.speed = core.NormalizeSpeed(speedMultiplier)
	b.tier = diff.Normalized()
	b.round.Reset()
	b.rng = rand.New(rand.NewSource(b.seed))
}

// Step runs advance for a valid dt and latches the result.
// After a terminal outcome, and for dt <= 0 or non-finite dt, advance is not called.
func (b *Base) Step(dtMS float64, advance func(dt float64) core.Outcome) core.Outcome {
	if b.round.Done() || !core.ValidStep(dtMS) {
		return b.round.Outcome()
	}
	return b.round.Settle(advance(dtMS))
}

// OnPress installs the handler for discrete press actions.
func (b *Base) OnPress(h PressHandler) {
	b.onPress = h
}

// Attach subscribes to hub. Move and press events update the pointer; presses
// are then forwarded to the press handler. Attaching again replaces the old subscription.
func (b *Base) Attach(hub *input.Hub) {
	b.Detach()
	b.unsubscribe = hub.Subscribe(b.handle)
}

// Detach removes the subscription made by Attach. Safe to call when not attached.
func (b *Base) Detach() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}

// Attached reports whether the game currently receives pointer events.
func (b *Base) Attached() bool {
	return b.unsubscribe != nil
}

func (b *Base) handle(e input.Event) {
	p := input.ToSurface(b.surface, e.ClientX, e.ClientY)
	switch e.Kind {
	case input.EventMove:
		b.pointer.MoveTo(p)
	case input.EventPress:
		b.pointer.MoveTo(p)
		if b.onPress != nil {
			b.onPress(p)
		}
	}
}

// Surface returns the drawing surface.
func (b *Base) Surface() core.Surface { return b.surface }

// Pointer returns the last pointer position in surface coordinates.
func (b *Base) Pointer() core.Vec { return b.pointer.Position() }

// MovePointer overwrites the pointer position. Hosts without a hub and tests use it.
func (b *Base) MovePointer(p core.Vec) { b.pointer.MoveTo(p) }

// Rand returns the round's random source.
func (b *Base) Rand() *rand.Rand { return b.rng }

// Speed returns the normalized speed multiplier of the current round.
func (b *Base) Speed() float64 { return b.speed }

// Tier returns the normalized tier of the current round.
func (b *Base) Tier() core.Tier { return b.tier }

// Outcome returns the latched outcome of the current round.
func (b *Base) Outcome() core.Outcome { return b.round.Outcome() }

// Center returns the center of the surface.
func (b *Base) Center() core.Vec {
	return core.Vec{X: b.surface.Width() / 2, Y: b.surface.Height() / 2}
}

// Uniform returns a value in [lo, hi) from the round's random source.
func (b *Base) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + b.rng.Float64()*(hi-lo)
}
