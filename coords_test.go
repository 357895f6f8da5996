package purfectedit

import "testing"

func TestSurfaceLocal(t *testing.T) {
	s := Surface{X: 100, Y: 50, W: 200, H: 100}

	x, y, ok := s.Local(10, 10)
	if !ok || x != 10 || y != 10 {
		t.Fatalf("Local(10,10): got (%v,%v,%v), want (10,10,true)", x, y, ok)
	}
	if _, _, ok := s.Local(0, 50); ok {
		t.Fatalf("left edge counted as a hit")
	}
	if _, _, ok := s.Local(100, 100); ok {
		t.Fatalf("bottom edge counted as a hit")
	}
	if _, _, ok := s.Local(300, 50); ok {
		t.Fatalf("point right of the surface counted as a hit")
	}
}

// fixedLayout installs a hand-built layout so geometry tests do not depend
// on real font metrics. The buffer is marked shaped, so passes that would
// reshape become no-ops.
func fixedLayout(e *Editor, line int, rows ...LayoutLine) {
	e.buffer.lines[line].layout = rows
	e.buffer.shaped = true
}

func TestOffsetsCenter(t *testing.T) {
	e := NewEditor(NewMetrics(16, 20))
	e.buffer.SetSize(200, 100)
	fixedLayout(e, 0, LayoutLine{
		Glyphs: []LayoutGlyph{{Start: 0, End: 1, Rune: 'x', X: 0, W: 50}},
		W:      50,
	})

	ox, oy, err := e.Offsets(nil)
	if err != nil {
		t.Fatalf("Offsets: %v", err)
	}
	if ox != 75 || oy != 40 {
		t.Fatalf("center offsets: got (%d,%d), want (75,40)", ox, oy)
	}
}

func TestOffsetsCenterClampsWideLine(t *testing.T) {
	e := NewEditor(NewMetrics(16, 20))
	e.buffer.SetSize(200, 100)
	fixedLayout(e, 0, LayoutLine{
		Glyphs: []LayoutGlyph{{Start: 0, End: 1, Rune: 'x', X: 0, W: 500}},
		W:      500,
	})

	ox, _, err := e.Offsets(nil)
	if err != nil {
		t.Fatalf("Offsets: %v", err)
	}
	if ox != 0 {
		t.Fatalf("x offset for overwide line: got %d, want 0", ox)
	}
}

func TestOffsetsTopLeft(t *testing.T) {
	e := NewEditor(NewMetrics(16, 20))
	e.SetAlign(AlignTopLeft)
	e.buffer.SetSize(200, 100)

	ox, oy, err := e.Offsets(nil)
	if err != nil {
		t.Fatalf("Offsets: %v", err)
	}
	if ox != 0 || oy != 0 {
		t.Fatalf("top-left offsets: got (%d,%d), want (0,0)", ox, oy)
	}
}
