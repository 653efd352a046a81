package core

import "math"

// FillGlyph is the rune used for filled areas on a terminal Screen.
const FillGlyph = '█'

// ScreenPainter rasterizes Painter calls from surface coordinates onto a
// rectangular region of a Screen. A cell is covered when its center is inside
// the shape; translucent colors are blended over the cell's current color.
type ScreenPainter struct {
	dst    *Screen
	region Rect
	sw, sh float64 // Surface size mapped onto region
}

var _ Painter = (*ScreenPainter)(nil)

// NewScreenPainter creates a painter mapping a surfaceW×surfaceH surface onto region.
func NewScreenPainter(dst *Screen, region Rect, surfaceW, surfaceH float64) *ScreenPainter {
	return &ScreenPainter{dst: dst, region: region, sw: surfaceW, sh: surfaceH}
}

// cellSize returns the size of one cell in surface units.
func (p *ScreenPainter) cellSize() (float64, float64) {
	return p.sw / float64(p.region.W), p.sh / float64(p.region.H)
}

// center returns the surface coordinates of the center of cell (cx, cy).
func (p *ScreenPainter) center(cx, cy int) Vec {
	cw, ch := p.cellSize()
	return Vec{
		X: (float64(cx-p.region.X) + 0.5) * cw,
		Y: (float64(cy-p.region.Y) + 0.5) * ch,
	}
}

// cellAt returns the cell containing surface point (x, y).
func (p *ScreenPainter) cellAt(x, y float64) (int, int) {
	cw, ch := p.cellSize()
	return p.region.X + int(math.Floor(x/cw)), p.region.Y + int(math.Floor(y/ch))
}

// tolerance is the minimum half-width of a stroke so that thin lines still cover cells.
func (p *ScreenPainter) tolerance(width float64) float64 {
	cw, ch := p.cellSize()
	return math.Max(width/2, math.Max(cw, ch)/2)
}

// plot blends c into one cell using the given glyph.
func (p *ScreenPainter) plot(cx, cy int, c Color, glyph rune) {
	if !p.region.Contains(cx, cy) {
		return
	}
	under := p.dst.GetCell(cx, cy).Color
	p.dst.SetCell(cx, cy, Cell{Rune: glyph, Color: c.Over(under)})
}

// cover plots every cell of the region whose center lies within [min, max] and satisfies inside.
func (p *ScreenPainter) cover(minX, minY, maxX, maxY float64, c Color, inside func(Vec) bool) {
	if c.A == 0 || p.region.W <= 0 || p.region.H <= 0 {
		return
	}
	x0, y0 := p.cellAt(minX, minY)
	x1, y1 := p.cellAt(maxX, maxY)
	x0, x1 = Max(x0, p.region.X), Min(x1, p.region.Right()-1)
	y0, y1 = Max(y0, p.region.Y), Min(y1, p.region.Bottom()-1)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if inside(p.center(cx, cy)) {
				p.plot(cx, cy, c, FillGlyph)
			}
		}
	}
}

// Clear fills the whole region with c.
func (p *ScreenPainter) Clear(c Color) {
	for cy := p.region.Y; cy < p.region.Bottom(); cy++ {
		for cx := p.region.X; cx < p.region.Right(); cx++ {
			p.dst.SetCell(cx, cy, Cell{Rune: FillGlyph, Color: c.Over(ColorBlack)})
		}
	}
}

// FillRect fills an axis-aligned rectangle.
func (p *ScreenPainter) FillRect(x, y, w, h float64, c Color) {
	b := Box{X: x, Y: y, W: w, H: h}
	p.cover(x, y, x+w, y+h, c, b.Contains)
}

// StrokeRect outlines a rectangle.
func (p *ScreenPainter) StrokeRect(x, y, w, h, width float64, c Color) {
	p.StrokeLine(x, y, x+w, y, width, c)
	p.StrokeLine(x+w, y, x+w, y+h, width, c)
	p.StrokeLine(x+w, y+h, x, y+h, width, c)
	p.StrokeLine(x, y+h, x, y, width, c)
}

// FillCircle fills a disc.
func (p *ScreenPainter) FillCircle(cx, cy, r float64, c Color) {
	o := Vec{X: cx, Y: cy}
	p.cover(cx-r, cy-r, cx+r, cy+r, c, func(v Vec) bool {
		return Dist(v, o) <= r
	})
}

// StrokeCircle outlines a circle.
func (p *ScreenPainter) StrokeCircle(cx, cy, r, width float64, c Color) {
	o := Vec{X: cx, Y: cy}
	tol := p.tolerance(width)
	p.cover(cx-r-tol, cy-r-tol, cx+r+tol, cy+r+tol, c, func(v Vec) bool {
		return math.Abs(Dist(v, o)-r) <= tol
	})
}

// FillPath fills a closed polygon using the even-odd rule.
func (p *ScreenPainter) FillPath(pts []Vec, c Color) {
	if len(pts) < 3 {
		return
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, v := range pts[1:] {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}
	p.cover(minX, minY, maxX, maxY, c, func(v Vec) bool {
		return insidePolygon(pts, v)
	})
}

// StrokeLine draws a line segment.
func (p *ScreenPainter) StrokeLine(x1, y1, x2, y2, width float64, c Color) {
	a, b := Vec{X: x1, Y: y1}, Vec{X: x2, Y: y2}
	tol := p.tolerance(width)
	p.cover(math.Min(x1, x2)-tol, math.Min(y1, y2)-tol, math.Max(x1, x2)+tol, math.Max(y1, y2)+tol, c,
		func(v Vec) bool {
			return SegmentDist(a, b, v) <= tol
		})
}

// Text writes s starting at the cell containing (x, y). Text is not blended.
func (p *ScreenPainter) Text(x, y float64, s string, c Color) {
	cx, cy := p.cellAt(x, y)
	for _, r := range s {
		if p.region.Contains(cx, cy) {
			p.dst.SetCell(cx, cy, Cell{Rune: r, Color: c.Over(ColorBlack)})
		}
		cx++
	}
}

// insidePolygon is the even-odd ray casting test.
func insidePolygon(pts []Vec, v Vec) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > v.Y) != (b.Y > v.Y) {
			x := a.X + (v.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if v.X < x {
				in = !in
			}
		}
		j = i
	}
	return in
}
