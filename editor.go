package purfectedit

import "math"

// Editor owns exactly one Buffer, one Cursor, an optional Selection and an
// alignment mode. One Editor exists per displayable text surface.
type Editor struct {
	buffer    *Buffer
	cursor    Cursor
	selection *Cursor

	align   Alignment
	surface Surface

	// Unscaled geometry, kept so a scale-factor change can recompute the
	// device-pixel metrics and size from scratch.
	baseMetrics Metrics
	baseWidth   float64
	baseHeight  float64

	// Drawing colors used by the rasterizer. Background is not painted
	// into the pixel buffer; frontends composite the (partially
	// transparent) output over it.
	TextColor      Color
	SelectionColor Color
	CaretColor     Color
	Background     Color
}

// NewEditor creates an editor with an empty buffer.
func NewEditor(metrics Metrics) *Editor {
	return &Editor{
		buffer:         NewBuffer(metrics),
		baseMetrics:    metrics,
		TextColor:      DefaultTextColor,
		SelectionColor: DefaultSelectionColor,
		CaretColor:     DefaultCaretColor,
		Background:     DefaultBackgroundColor,
	}
}

// Buffer returns the editor's buffer.
func (e *Editor) Buffer() *Buffer {
	return e.buffer
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() Cursor {
	return e.cursor
}

// SetCursor moves the cursor, clamping it to a valid buffer position.
func (e *Editor) SetCursor(c Cursor) {
	if c.Line < 0 {
		c.Line = 0
	}
	if c.Line >= e.buffer.Lines() {
		c.Line = e.buffer.Lines() - 1
	}
	text := e.buffer.Line(c.Line).Text()
	if c.Index < 0 {
		c.Index = 0
	}
	if c.Index > len(text) {
		c.Index = len(text)
	}
	c.Index = graphemeFloor(text, c.Index)
	e.cursor = c
	e.buffer.SetRedraw(true)
}

// Align returns the alignment mode.
func (e *Editor) Align() Alignment {
	return e.align
}

// SetAlign sets the alignment mode and forces a redraw.
func (e *Editor) SetAlign(a Alignment) {
	e.align = a
	e.buffer.SetRedraw(true)
}

// Surface returns the editor's surface placement.
func (e *Editor) Surface() Surface {
	return e.surface
}

// SetSurface updates the editor's surface placement in window coordinates.
func (e *Editor) SetSurface(s Surface) {
	e.surface = s
}

// Text returns the buffer content as a newline-joined string.
func (e *Editor) Text() string {
	return e.buffer.Text()
}

// SetText replaces the buffer content and moves the cursor to the start.
func (e *Editor) SetText(text string) {
	e.buffer.SetText(text)
	e.cursor = Cursor{}
	e.selection = nil
}

// applyScale recomputes device-pixel metrics and size from the unscaled
// base geometry and forces a redraw.
func (e *Editor) applyScale(factor float64) {
	e.buffer.SetMetrics(e.baseMetrics.Scale(factor))
	e.buffer.SetSize(e.baseWidth*factor, e.baseHeight*factor)
	e.buffer.SetRedraw(true)
}

// --- Cursor Motion ---

// MoveLeft moves the cursor one grapheme cluster left, crossing to the end
// of the previous line at a line start. The selection is left untouched.
func (e *Editor) MoveLeft() {
	if e.cursor.Index > 0 {
		text := e.buffer.Line(e.cursor.Line).Text()
		e.cursor.Index = prevGraphemeBoundary(text, e.cursor.Index)
	} else if e.cursor.Line > 0 {
		e.cursor.Line--
		e.cursor.Index = len(e.buffer.Line(e.cursor.Line).Text())
	}
	e.cursor.Affinity = AffinityBefore
	e.buffer.SetRedraw(true)
}

// MoveRight moves the cursor one grapheme cluster right, crossing to the
// start of the next line at a line end.
func (e *Editor) MoveRight() {
	text := e.buffer.Line(e.cursor.Line).Text()
	if e.cursor.Index < len(text) {
		e.cursor.Index = nextGraphemeBoundary(text, e.cursor.Index)
	} else if e.cursor.Line < e.buffer.Lines()-1 {
		e.cursor.Line++
		e.cursor.Index = 0
	}
	e.cursor.Affinity = AffinityBefore
	e.buffer.SetRedraw(true)
}

// MoveUp moves the cursor one visual row up, keeping its horizontal pixel
// position. On the first row it is a no-op.
func (e *Editor) MoveUp(fs *FontSystem) error {
	return e.moveVertical(fs, -1)
}

// MoveDown moves the cursor one visual row down, keeping its horizontal
// pixel position. On the last row it is a no-op.
func (e *Editor) MoveDown(fs *FontSystem) error {
	return e.moveVertical(fs, 1)
}

func (e *Editor) moveVertical(fs *FontSystem, dir int) error {
	x, _, runIdx, err := e.cursorVisual(fs)
	if err != nil {
		return err
	}
	runs := e.buffer.VisualRuns()
	target := runIdx + dir
	if target < 0 || target >= len(runs) {
		return nil
	}
	e.cursor = e.hitRun(runs, target, x)
	e.buffer.SetRedraw(true)
	return nil
}

// MoveBufferEnd moves the cursor past the last character of the buffer.
func (e *Editor) MoveBufferEnd() {
	e.cursor.Line = e.buffer.Lines() - 1
	e.cursor.Index = len(e.buffer.Line(e.cursor.Line).Text())
	e.cursor.Affinity = AffinityBefore
	e.buffer.SetRedraw(true)
}

// MoveWordNext moves the cursor to the start of the next word, crossing to
// the next line when no word follows on the current one.
func (e *Editor) MoveWordNext() {
	text := e.buffer.Line(e.cursor.Line).Text()
	if e.cursor.Index >= len(text) {
		if e.cursor.Line < e.buffer.Lines()-1 {
			e.cursor.Line++
			e.cursor.Index = 0
		}
	} else {
		e.cursor.Index = nextWordStart(text, e.cursor.Index)
	}
	e.cursor.Affinity = AffinityBefore
	e.buffer.SetRedraw(true)
}

// MoveWordPrev moves the cursor to the start of the previous word, crossing
// to the end of the previous line at a line start.
func (e *Editor) MoveWordPrev() {
	if e.cursor.Index == 0 {
		if e.cursor.Line > 0 {
			e.cursor.Line--
			e.cursor.Index = len(e.buffer.Line(e.cursor.Line).Text())
		}
	} else {
		text := e.buffer.Line(e.cursor.Line).Text()
		e.cursor.Index = prevWordStart(text, e.cursor.Index)
	}
	e.cursor.Affinity = AffinityBefore
	e.buffer.SetRedraw(true)
}

// --- Pointer Actions ---

// Click places the cursor at a buffer-local pixel position and collapses
// any selection.
func (e *Editor) Click(fs *FontSystem, x, y float64) error {
	cur, err := e.Hit(fs, x, y)
	if err != nil {
		return err
	}
	e.cursor = cur
	e.selection = nil
	e.buffer.SetRedraw(true)
	return nil
}

// Drag extends the selection to a buffer-local pixel position. The first
// drag of a gesture anchors the selection at the current cursor.
func (e *Editor) Drag(fs *FontSystem, x, y float64) error {
	cur, err := e.Hit(fs, x, y)
	if err != nil {
		return err
	}
	if e.selection == nil {
		anchor := e.cursor
		e.selection = &anchor
	}
	e.cursor = cur
	e.buffer.SetRedraw(true)
	return nil
}

// Escape collapses the current interaction: the selection is cleared and
// the cursor stays where it is.
func (e *Editor) Escape() {
	e.selection = nil
	e.buffer.SetRedraw(true)
}

// --- Hit Testing ---

// Hit maps a buffer-local pixel position to the nearest cursor position.
// Vertical positions outside the text clamp to the first/last row; there is
// no notion of a miss at this level (surface-bound rejection happens in the
// coordinate mapper).
func (e *Editor) Hit(fs *FontSystem, x, y float64) (Cursor, error) {
	if err := e.buffer.ShapeAsNeeded(fs); err != nil {
		return Cursor{}, err
	}
	runs := e.buffer.VisualRuns()
	lh := e.buffer.Metrics().LineHeight
	runIdx := 0
	if lh > 0 {
		runIdx = int(math.Floor(y / lh))
	}
	if runIdx < 0 {
		runIdx = 0
	}
	if runIdx >= len(runs) {
		runIdx = len(runs) - 1
	}
	return e.hitRun(runs, runIdx, x), nil
}

// hitRun resolves a horizontal pixel position within one visual run.
func (e *Editor) hitRun(runs []VisualRun, runIdx int, x float64) Cursor {
	run := runs[runIdx]
	text := e.buffer.Line(run.Line).Text()

	for _, g := range run.Glyphs {
		if x < g.X+g.W/2 {
			return Cursor{Line: run.Line, Index: graphemeFloor(text, g.Start), Affinity: AffinityBefore}
		}
	}

	// Past the last glyph: cursor at the row end. At a soft-wrap boundary
	// the position belongs to the end of this row, not the start of the
	// next, so it carries After affinity.
	affinity := AffinityBefore
	if runIdx+1 < len(runs) && runs[runIdx+1].Line == run.Line {
		affinity = AffinityAfter
	}
	return Cursor{Line: run.Line, Index: run.End(), Affinity: affinity}
}

// cursorVisual returns the cursor's pixel position (x and row top) within
// the buffer along with the index of its visual run.
func (e *Editor) cursorVisual(fs *FontSystem) (x, top float64, runIdx int, err error) {
	if err := e.buffer.ShapeAsNeeded(fs); err != nil {
		return 0, 0, 0, err
	}
	runs := e.buffer.VisualRuns()
	runIdx = 0
	for i, run := range runs {
		if run.Line != e.cursor.Line {
			continue
		}
		runIdx = i
		if e.cursor.Index < run.End() {
			break
		}
		if e.cursor.Index == run.End() {
			// Wrap boundary: After stays on this row, Before moves on
			// when another row of the same line follows.
			if e.cursor.Affinity == AffinityAfter {
				break
			}
			if i+1 < len(runs) && runs[i+1].Line == run.Line {
				continue
			}
			break
		}
	}
	run := runs[runIdx]
	x = run.W
	for _, g := range run.Glyphs {
		if g.Start >= e.cursor.Index {
			x = g.X
			break
		}
	}
	if e.cursor.Index <= run.Start() && len(run.Glyphs) > 0 {
		x = run.Glyphs[0].X
	}
	return x, run.Top, runIdx, nil
}
