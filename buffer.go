package purfectedit

import "strings"

// Buffer owns the lines of text belonging to one Editor, the font metrics
// used to shape them, the pixel size of the rendered surface, and the
// redraw flag gating the rasterization pass.
//
// Invariants: the buffer always holds at least one line (possibly empty),
// and lines are only reordered by newline insertion or deletion.
type Buffer struct {
	lines   []*Line
	metrics Metrics

	// Pixel size of the rendered surface in device pixels.
	width  float64
	height float64

	redraw bool
	shaped bool // true when every line's layout cache is current
}

// NewBuffer creates a buffer holding a single empty line.
func NewBuffer(metrics Metrics) *Buffer {
	return &Buffer{
		lines:   []*Line{NewLine("")},
		metrics: metrics,
		redraw:  true,
	}
}

// SetText replaces the buffer content. The text is split on newlines; an
// empty string yields one empty line.
func (b *Buffer) SetText(text string) {
	parts := strings.Split(text, "\n")
	lines := make([]*Line, len(parts))
	for i, part := range parts {
		lines[i] = NewLine(part)
	}
	b.lines = lines
	b.invalidate()
}

// Text returns the buffer content as a newline-joined string of all lines.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		sb.WriteString(line.Text())
		if i < len(b.lines)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Lines returns the number of lines. Always at least 1.
func (b *Buffer) Lines() int {
	return len(b.lines)
}

// Line returns the line at the given index, or nil when out of range.
func (b *Buffer) Line(i int) *Line {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return b.lines[i]
}

// SetSize updates the rendered pixel size. Changing the size invalidates
// the shaped layout (the wrap width changed) and forces a redraw; setting
// the same size is a no-op.
func (b *Buffer) SetSize(width, height float64) {
	if width == b.width && height == b.height {
		return
	}
	b.width = width
	b.height = height
	b.invalidate()
}

// Size returns the rendered pixel size.
func (b *Buffer) Size() (width, height float64) {
	return b.width, b.height
}

// SetMetrics updates the font metrics, invalidating the shaped layout and
// forcing a redraw.
func (b *Buffer) SetMetrics(m Metrics) {
	if m == b.metrics {
		return
	}
	b.metrics = m
	b.invalidate()
}

// Metrics returns the current font metrics.
func (b *Buffer) Metrics() Metrics {
	return b.metrics
}

// SetRedraw sets or clears the redraw flag.
func (b *Buffer) SetRedraw(redraw bool) {
	b.redraw = redraw
}

// Redraw reports whether a rasterization pass is pending.
func (b *Buffer) Redraw() bool {
	return b.redraw
}

// VisibleLines reports how many rows fit in the current pixel height given
// the line height.
func (b *Buffer) VisibleLines() int {
	if b.metrics.LineHeight <= 0 {
		return 0
	}
	return int(b.height / b.metrics.LineHeight)
}

// ShapeAsNeeded recomputes the layout cache of every stale line. It is the
// sole incremental-computation point: when nothing changed since the last
// call it does nothing, and it never touches the redraw flag.
func (b *Buffer) ShapeAsNeeded(fs *FontSystem) error {
	if b.shaped {
		return nil
	}
	for _, line := range b.lines {
		if line.layout != nil {
			continue
		}
		layout, err := shapeLine(fs, line.text, b.metrics, b.width)
		if err != nil {
			return err
		}
		line.layout = layout
	}
	b.shaped = true
	return nil
}

// MaxLineWidth returns the widest shaped row in pixels. Requires a prior
// ShapeAsNeeded pass; stale lines contribute nothing.
func (b *Buffer) MaxLineWidth() float64 {
	max := 0.0
	for _, line := range b.lines {
		for _, row := range line.layout {
			if row.W > max {
				max = row.W
			}
		}
	}
	return max
}

// VisualRun is one shaped row positioned within the buffer: the line it
// belongs to, the row index within that line's wrap, and the row's top edge
// in buffer pixels.
type VisualRun struct {
	Line int
	Row  int
	Top  float64
	LayoutLine
}

// VisualRuns flattens the shaped layout into top-to-bottom rows. Requires a
// prior ShapeAsNeeded pass.
func (b *Buffer) VisualRuns() []VisualRun {
	runs := make([]VisualRun, 0, len(b.lines))
	top := 0.0
	for li, line := range b.lines {
		for ri, row := range line.layout {
			runs = append(runs, VisualRun{Line: li, Row: ri, Top: top, LayoutLine: row})
			top += b.metrics.LineHeight
		}
	}
	return runs
}

// invalidate marks all layout stale and requests a redraw. Every content or
// geometry mutation funnels through here.
func (b *Buffer) invalidate() {
	for _, line := range b.lines {
		line.resetLayout()
	}
	b.shaped = false
	b.redraw = true
}

// contentChanged marks the layout stale after a single-line text edit.
// Line.SetText already dropped that line's cache; the buffer-level flag
// makes the next ShapeAsNeeded pass pick it up.
func (b *Buffer) contentChanged() {
	b.shaped = false
	b.redraw = true
}

// insertLine inserts a line at index i.
func (b *Buffer) insertLine(i int, line *Line) {
	b.lines = append(b.lines, nil)
	copy(b.lines[i+1:], b.lines[i:])
	b.lines[i] = line
	b.contentChanged()
}

// removeLine deletes the line at index i. The last remaining line is never
// removed; it is cleared instead.
func (b *Buffer) removeLine(i int) {
	if len(b.lines) == 1 {
		b.lines[0].SetText("")
		b.contentChanged()
		return
	}
	copy(b.lines[i:], b.lines[i+1:])
	b.lines = b.lines[:len(b.lines)-1]
	b.contentChanged()
}
