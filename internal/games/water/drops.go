package water

import "github.com/vovakirdan/microarcade/internal/core"

// Drop is a falling water drop.
type Drop struct {
	Pos    core.Vec
	Radius float64
	Speed  float64 // surface units per reference frame
}

func (g *Game) spawnDrop() {
	d := g.cfg.Drops
	g.drops = append(g.drops, Drop{
		Pos: core.Vec{
			X: g.Uniform(d.Margin, g.Surface().Width()-d.Margin),
			Y: d.SpawnY,
		},
		Radius: d.Radius,
		Speed:  g.Uniform(d.MinSpeed, d.MaxSpeed) * g.Speed(),
	})
}

// moveDrops advances every drop. A drop whose center passes through the bucket
// (edges included) during the step is caught; one that falls past the bottom
// edge is missed. Both leave the active set immediately.
func (g *Game) moveDrops(dt float64) {
	scale := dt / g.cfg.ReferenceFrameMS
	limit := g.Surface().Height()

	n := 0
	for _, d := range g.drops {
		fromY := d.Pos.Y
		d.Pos.Y += d.Speed * scale

		if g.catches(fromY, d.Pos) {
			g.caught++
			continue
		}
		if d.Pos.Y > limit {
			g.missed++
			continue
		}
		g.drops[n] = d
		n++
	}
	g.drops = g.drops[:n]
}

// catches reports whether a drop falling from fromY to p crossed the bucket.
func (g *Game) catches(fromY float64, p core.Vec) bool {
	b := g.bucket
	return p.X >= b.X && p.X <= b.Right() && fromY <= b.Bottom() && p.Y >= b.Y
}
