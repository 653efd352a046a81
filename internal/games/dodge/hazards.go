package dodge

import "github.com/vovakirdan/microarcade/internal/core"

// Hazard is a falling circle that ends the round on contact.
type Hazard struct {
	Pos    core.Vec
	Radius float64
	Speed  float64 // surface units per reference frame
}

// spawnHazard adds one hazard above the surface at a random column.
func (g *Game) spawnHazard() {
	h := g.cfg.Hazards
	r := g.Uniform(h.MinRadius, h.MaxRadius)
	g.hazards = append(g.hazards, Hazard{
		Pos: core.Vec{
			X: g.Uniform(r, g.Surface().Width()-r),
			Y: h.SpawnY,
		},
		Radius: r,
		Speed:  g.Uniform(h.MinSpeed, h.MaxSpeed) * g.Speed(),
	})
	g.spawned++
}

// moveHazards advances every hazard, drops the ones below the bottom edge and
// reports whether any of them touches the ship. Contact is tested along the whole
// path covered this step, so a long step cannot carry a hazard through the ship.
// Once a hit is found the remaining hazards stay where they are.
func (g *Game) moveHazards(dt float64) bool {
	scale := dt / g.cfg.ReferenceFrameMS
	limit := g.Surface().Height()
	reach := g.cfg.Ship.Size / 2

	hit := false
	n := 0
	for _, h := range g.hazards {
		if !hit {
			from := h.Pos
			h.Pos.Y += h.Speed * scale

			switch {
			case core.SegmentDist(from, h.Pos, g.ship) < reach+h.Radius:
				hit = true
			case h.Pos.Y > limit+h.Radius:
				g.dodged++
				continue
			}
		}
		g.hazards[n] = h
		n++
	}
	g.hazards = g.hazards[:n]

	return hit
}
