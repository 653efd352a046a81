package core

import "fmt"

// Color is a straight-alpha RGBA color used by Painter implementations.
// Terminal backends blend it over the cell underneath; image backends pass it through.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Predefined colors shared by the games and the HUD.
var (
	ColorBlack  = RGB(0x00, 0x00, 0x00)
	ColorWhite  = RGB(0xff, 0xff, 0xff)
	ColorGray   = RGB(0xaa, 0xaa, 0xaa)
	ColorRed    = RGB(0xff, 0x00, 0x00)
	ColorGreen  = RGB(0x2e, 0x7d, 0x32)
	ColorCyan   = RGB(0x00, 0xff, 0xff)
	ColorSky    = RGB(0x00, 0xbf, 0xff)
	ColorYellow = RGB(0xff, 0xff, 0x00)
)

// WithAlpha returns c with its alpha replaced by a (0.0 to 1.0).
func (c Color) WithAlpha(a float64) Color {
	c.A = uint8(ClampF(a, 0, 1)*255 + 0.5)
	return c
}

// Opaque reports whether the color fully covers what is underneath.
func (c Color) Opaque() bool {
	return c.A == 0xff
}

// Over composites c on top of dst and returns an opaque result.
func (c Color) Over(dst Color) Color {
	if c.Opaque() {
		return c
	}
	a := float64(c.A) / 255
	mix := func(src, d uint8) uint8 {
		return uint8(float64(src)*a + float64(d)*(1-a) + 0.5)
	}
	return Color{R: mix(c.R, dst.R), G: mix(c.G, dst.G), B: mix(c.B, dst.B), A: 0xff}
}

// Hex returns the color as a "#rrggbb" string, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
