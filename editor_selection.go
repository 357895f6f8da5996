package purfectedit

import "strings"

// --- Selection ---

// Selection returns the selection anchor (the end of the highlighted range
// opposite the cursor) and whether a selection is active.
func (e *Editor) Selection() (Cursor, bool) {
	if e.selection == nil {
		return Cursor{}, false
	}
	return *e.selection, true
}

// SetSelection places the selection anchor.
func (e *Editor) SetSelection(c Cursor) {
	anchor := c
	e.selection = &anchor
	e.buffer.SetRedraw(true)
}

// ClearSelection removes any active selection.
func (e *Editor) ClearSelection() {
	if e.selection == nil {
		return
	}
	e.selection = nil
	e.buffer.SetRedraw(true)
}

// HasSelection reports whether a selection is active.
func (e *Editor) HasSelection() bool {
	return e.selection != nil
}

// SelectionBounds returns the normalized selection range (start before
// end) and whether a selection is active.
func (e *Editor) SelectionBounds() (start, end Cursor, ok bool) {
	if e.selection == nil {
		return Cursor{}, Cursor{}, false
	}
	a, b := *e.selection, e.cursor
	if b.IsBefore(a) {
		a, b = b, a
	}
	return a, b, true
}

// SelectAll moves the cursor to the end of the buffer and anchors the
// selection at the very start, selecting the entire content.
func (e *Editor) SelectAll() {
	e.MoveBufferEnd()
	e.SetSelection(Cursor{Line: 0, Index: 0, Affinity: AffinityBefore})
}

// SelectedText returns the text inside the current selection, with
// newlines between spanned lines.
func (e *Editor) SelectedText() string {
	start, end, ok := e.SelectionBounds()
	if !ok {
		return ""
	}
	if start.Line == end.Line {
		return e.buffer.Line(start.Line).Text()[start.Index:end.Index]
	}
	var sb strings.Builder
	sb.WriteString(e.buffer.Line(start.Line).Text()[start.Index:])
	for i := start.Line + 1; i < end.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(e.buffer.Line(i).Text())
	}
	sb.WriteByte('\n')
	sb.WriteString(e.buffer.Line(end.Line).Text()[:end.Index])
	return sb.String()
}
