package core

import "testing"

// newTestPainter maps an 800x600 surface onto an 80x30 region starting at row 1,
// so one cell is 10x20 surface units.
func newTestPainter() (*Screen, *ScreenPainter) {
	s := NewScreen(80, 31)
	return s, NewScreenPainter(s, NewRect(0, 1, 80, 30), 800, 600)
}

func TestScreenPainterFillRect(t *testing.T) {
	s, p := newTestPainter()
	p.FillRect(0, 0, 100, 100, ColorRed)

	// Cell centers at x=5..95 and y=10..90 are covered: columns 0-9, rows 1-5
	if got := s.GetCell(0, 1); got.Rune != FillGlyph || got.Color != ColorRed {
		t.Errorf("top-left cell = %+v, expected red fill", got)
	}
	if got := s.GetCell(9, 5); got.Color != ColorRed {
		t.Errorf("cell (9, 5) = %+v, expected red fill", got)
	}
	if got := s.GetCell(10, 1); got != blankCell {
		t.Errorf("cell (10, 1) should be untouched, got %+v", got)
	}
	if got := s.GetCell(0, 6); got != blankCell {
		t.Errorf("cell (0, 6) should be untouched, got %+v", got)
	}
	if got := s.GetCell(0, 0); got != blankCell {
		t.Errorf("row above the region should be untouched, got %+v", got)
	}
}

func TestScreenPainterFillCircle(t *testing.T) {
	s, p := newTestPainter()
	p.FillCircle(400, 300, 50, ColorCyan)

	if got := s.GetCell(40, 16); got.Color != ColorCyan {
		t.Errorf("cell at circle center = %+v, expected cyan", got)
	}
	if got := s.GetCell(50, 16); got != blankCell {
		t.Errorf("cell outside the circle should be untouched, got %+v", got)
	}
}

func TestScreenPainterBlendsTranslucentColors(t *testing.T) {
	s, p := newTestPainter()
	p.Clear(ColorBlack)
	p.FillRect(0, 0, 800, 600, ColorWhite.WithAlpha(0.5))

	got := s.GetCell(10, 10).Color
	if got.R != 128 || got.G != 128 || got.B != 128 || got.A != 0xff {
		t.Errorf("blended color = %+v, expected opaque mid gray", got)
	}
}

func TestScreenPainterFillPathTriangle(t *testing.T) {
	s, p := newTestPainter()
	p.FillPath([]Vec{{400, 0}, {200, 600}, {600, 600}}, ColorGreen)

	if got := s.GetCell(40, 28); got.Color != ColorGreen {
		t.Errorf("cell near the triangle base = %+v, expected green", got)
	}
	if got := s.GetCell(5, 28); got != blankCell {
		t.Errorf("cell left of the triangle should be untouched, got %+v", got)
	}
	if got := s.GetCell(70, 2); got != blankCell {
		t.Errorf("cell right of the apex should be untouched, got %+v", got)
	}
}

func TestScreenPainterStrokeLine(t *testing.T) {
	s, p := newTestPainter()
	p.StrokeLine(0, 310, 800, 310, 1, ColorYellow)

	for x := 0; x < 80; x++ {
		if got := s.GetCell(x, 16); got.Color != ColorYellow {
			t.Fatalf("cell (%d, 16) = %+v, expected yellow line", x, got)
		}
	}
	if got := s.GetCell(10, 10); got != blankCell {
		t.Errorf("cell away from the line should be untouched, got %+v", got)
	}
}

func TestScreenPainterText(t *testing.T) {
	s, p := newTestPainter()
	p.Text(0, 0, "Hi", ColorWhite)

	if s.Get(0, 1) != 'H' || s.Get(1, 1) != 'i' {
		t.Errorf("Text should start at the region origin, row = %q", s.Row(1))
	}

	// Text past the right edge is clipped
	p.Text(790, 0, "XYZ", ColorWhite)
	if s.Get(79, 1) != 'X' {
		t.Errorf("expected 'X' at the last column, got %q", s.Get(79, 1))
	}
}
