package purfectedit

// Alignment controls where the text block sits within the rendered surface
// and the matching offset applied during hit-testing.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignTopLeft
)

// Surface places an editor within the host window: X and Y are the center
// of the surface in window coordinates (y down), W and H its logical size.
type Surface struct {
	X float64
	Y float64
	W float64
	H float64
}

// Local converts a window-space pointer position into surface-local
// coordinates. Positions outside the surface's bounding rectangle are a
// miss, not clamped.
func (s Surface) Local(px, py float64) (x, y float64, ok bool) {
	xMin := s.X - s.W/2
	yMin := s.Y - s.H/2
	if px <= xMin || px >= xMin+s.W || py <= yMin || py >= yMin+s.H {
		return 0, 0, false
	}
	return px - xMin, py - yMin, true
}

// Offsets returns the pixel offset applied to the text block for the
// editor's alignment mode, shaping the buffer first if needed.
//
// For Center, the vertical offset centers the visible text height
// (line height times the smaller of visible and total line count) and the
// horizontal offset centers on the widest shaped row, clamped to the
// surface width. TopLeft is always (0, 0).
func (e *Editor) Offsets(fs *FontSystem) (offsetX, offsetY int, err error) {
	if e.align == AlignTopLeft {
		return 0, 0, nil
	}
	if err := e.buffer.ShapeAsNeeded(fs); err != nil {
		return 0, 0, err
	}
	return e.xOffset(), e.yOffset(), nil
}

func (e *Editor) yOffset() int {
	lines := e.buffer.Lines()
	visible := e.buffer.VisibleLines()
	if visible < lines {
		lines = visible
	}
	textHeight := e.buffer.Metrics().LineHeight * float64(lines)
	_, height := e.buffer.Size()
	return int((height - textHeight) / 2)
}

func (e *Editor) xOffset() int {
	width, _ := e.buffer.Size()
	maxWidth := int(e.buffer.MaxLineWidth())
	if maxWidth > int(width) {
		maxWidth = int(width)
	}
	return int((width - float64(maxWidth)) / 2)
}
