package desktop

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/microarcade/internal/core"
)

// imagePainter draws Painter calls onto an ebiten image.
// Surface units map 1:1 to image pixels; scaling happens when the image is
// composited into the window.
type imagePainter struct {
	dst   *ebiten.Image
	white *ebiten.Image // 1x1 source for DrawTriangles

	vertices []ebiten.Vertex
	indices  []uint16
}

var _ core.Painter = (*imagePainter)(nil)

func newImagePainter(dst *ebiten.Image) *imagePainter {
	base := ebiten.NewImage(3, 3)
	base.Fill(color.White)
	return &imagePainter{
		dst:   dst,
		white: base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// nrgba converts a straight-alpha core color.
func nrgba(c core.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (p *imagePainter) Clear(c core.Color) {
	p.dst.Fill(nrgba(c.Over(core.ColorBlack)))
}

func (p *imagePainter) FillRect(x, y, w, h float64, c core.Color) {
	vector.DrawFilledRect(p.dst, float32(x), float32(y), float32(w), float32(h), nrgba(c), true)
}

func (p *imagePainter) StrokeRect(x, y, w, h, width float64, c core.Color) {
	vector.StrokeRect(p.dst, float32(x), float32(y), float32(w), float32(h), float32(width), nrgba(c), true)
}

func (p *imagePainter) FillCircle(cx, cy, r float64, c core.Color) {
	vector.DrawFilledCircle(p.dst, float32(cx), float32(cy), float32(r), nrgba(c), true)
}

func (p *imagePainter) StrokeCircle(cx, cy, r, width float64, c core.Color) {
	vector.StrokeCircle(p.dst, float32(cx), float32(cy), float32(r), float32(width), nrgba(c), true)
}

func (p *imagePainter) StrokeLine(x1, y1, x2, y2, width float64, c core.Color) {
	vector.StrokeLine(p.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), nrgba(c), true)
}

// FillPath fills the polygon as a triangle fan with the even-odd rule,
// which also covers concave outlines.
func (p *imagePainter) FillPath(pts []core.Vec, c core.Color) {
	if len(pts) < 3 {
		return
	}

	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	p.vertices = p.vertices[:0]
	for _, v := range pts {
		p.vertices = append(p.vertices, ebiten.Vertex{
			DstX: float32(v.X), DstY: float32(v.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	p.indices = fanIndices(p.indices[:0], len(pts))

	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.FillRuleEvenOdd
	op.AntiAlias = true
	p.dst.DrawTriangles(p.vertices, p.indices, p.white, op)
}

// Text uses the built-in debug font, which is always white.
func (p *imagePainter) Text(x, y float64, s string, _ core.Color) {
	ebitenutil.DebugPrintAt(p.dst, s, int(x), int(y))
}

// fanIndices appends the triangle fan indices for an n-gon anchored at vertex 0.
func fanIndices(dst []uint16, n int) []uint16 {
	for i := 1; i+1 < n; i++ {
		dst = append(dst, 0, uint16(i), uint16(i+1))
	}
	return dst
}
