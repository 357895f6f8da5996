package purfectedit

// LayoutGlyph is one positioned glyph within a layout row. Start and End
// are the byte range of the source text the glyph covers; X and W are its
// horizontal position and advance in device pixels within the row.
type LayoutGlyph struct {
	Start int
	End   int
	Rune  rune
	X     float64
	W     float64
}

// LayoutLine is one visual row of a shaped line. A buffer line wraps into
// one or more layout lines when the buffer width is set.
type LayoutLine struct {
	Glyphs []LayoutGlyph
	W      float64
}

// Start returns the byte index of the first glyph in the row.
func (ll LayoutLine) Start() int {
	if len(ll.Glyphs) == 0 {
		return 0
	}
	return ll.Glyphs[0].Start
}

// End returns the byte index one past the last glyph in the row.
func (ll LayoutLine) End() int {
	if len(ll.Glyphs) == 0 {
		return 0
	}
	return ll.Glyphs[len(ll.Glyphs)-1].End
}

// Line is one line of buffer text together with its shaped layout cache.
// The layout is nil until the next ShapeAsNeeded pass recomputes it.
type Line struct {
	text   string
	layout []LayoutLine
}

// NewLine creates a line with unshaped text.
func NewLine(text string) *Line {
	return &Line{text: text}
}

// Text returns the line's text.
func (l *Line) Text() string {
	return l.text
}

// SetText replaces the line's text and drops the stale layout.
func (l *Line) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.layout = nil
}

// Layout returns the shaped layout rows, or nil when the line is stale.
func (l *Line) Layout() []LayoutLine {
	return l.layout
}

// resetLayout drops the cached layout without touching the text. Used when
// metrics or wrap width change.
func (l *Line) resetLayout() {
	l.layout = nil
}
