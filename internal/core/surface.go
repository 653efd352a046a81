package core

// Surface is the logical 2D drawing area a microgame simulates and renders on.
// Width and Height are the internal resolution; DisplayRect is where the surface
// currently appears in client (window or terminal) coordinates, which may differ
// in size from the internal resolution.
type Surface interface {
	Width() float64
	Height() float64
	DisplayRect() Box
}

// Painter is the drawing context passed to Render. Coordinates are surface units.
type Painter interface {
	Clear(c Color)
	FillRect(x, y, w, h float64, c Color)
	StrokeRect(x, y, w, h, width float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	StrokeCircle(cx, cy, r, width float64, c Color)
	// FillPath fills the closed polygon moveTo(pts[0]), lineTo(pts[1:]...).
	FillPath(pts []Vec, c Color)
	StrokeLine(x1, y1, x2, y2, width float64, c Color)
	Text(x, y float64, s string, c Color)
}

// Canvas is a Surface with a mutable display placement.
// Hosts own it and update the display rect on resize.
type Canvas struct {
	w, h    float64
	display Box
}

// NewCanvas creates a canvas whose display rect initially matches its resolution.
func NewCanvas(w, h float64) *Canvas {
	return &Canvas{w: w, h: h, display: Box{W: w, H: h}}
}

// Width returns the logical width.
func (c *Canvas) Width() float64 { return c.w }

// Height returns the logical height.
func (c *Canvas) Height() float64 { return c.h }

// DisplayRect returns the on-screen placement.
func (c *Canvas) DisplayRect() Box { return c.display }

// SetDisplayRect updates where the canvas appears on screen.
func (c *Canvas) SetDisplayRect(b Box) {
	c.display = b
}

// Fit places the canvas centered in an outer area of the given size, preserving aspect ratio.
// Returns the resulting display rect.
func (c *Canvas) Fit(outerX, outerY, outerW, outerH float64) Box {
	scale := outerW / c.w
	if s := outerH / c.h; s < scale {
		scale = s
	}
	w, h := c.w*scale, c.h*scale
	c.display = Box{X: outerX + (outerW-w)/2, Y: outerY + (outerH-h)/2, W: w, H: h}
	return c.display
}
