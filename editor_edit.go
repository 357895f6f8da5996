package purfectedit

// --- Buffer Mutation ---

// InsertChar inserts one character at the cursor, replacing the selection
// if one is active. A newline splits the current line.
func (e *Editor) InsertChar(r rune) {
	if e.selection != nil {
		e.deleteSelection()
	}
	if r == '\n' {
		e.insertNewline()
		return
	}
	line := e.buffer.Line(e.cursor.Line)
	text := line.Text()
	inserted := string(r)
	line.SetText(text[:e.cursor.Index] + inserted + text[e.cursor.Index:])
	e.cursor.Index += len(inserted)
	e.cursor.Affinity = AffinityBefore
	e.buffer.contentChanged()
}

// InsertString inserts a string at the cursor character by character, so
// embedded newlines split lines the same way typed input would.
func (e *Editor) InsertString(s string) {
	for _, r := range s {
		e.InsertChar(r)
	}
}

// insertNewline splits the current line at the cursor.
func (e *Editor) insertNewline() {
	line := e.buffer.Line(e.cursor.Line)
	text := line.Text()
	tail := text[e.cursor.Index:]
	line.SetText(text[:e.cursor.Index])
	e.buffer.insertLine(e.cursor.Line+1, NewLine(tail))
	e.cursor.Line++
	e.cursor.Index = 0
	e.cursor.Affinity = AffinityBefore
}

// Backspace deletes the grapheme cluster before the cursor, or joins the
// current line onto the previous one at a line start. With an active
// selection it deletes the selection instead.
func (e *Editor) Backspace() {
	if e.selection != nil {
		e.deleteSelection()
		return
	}
	if e.cursor.Index > 0 {
		line := e.buffer.Line(e.cursor.Line)
		text := line.Text()
		j := prevGraphemeBoundary(text, e.cursor.Index)
		line.SetText(text[:j] + text[e.cursor.Index:])
		e.cursor.Index = j
		e.buffer.contentChanged()
	} else if e.cursor.Line > 0 {
		e.joinWithPrevious()
	}
	e.cursor.Affinity = AffinityBefore
}

// DeleteForward deletes the grapheme cluster after the cursor, or joins the
// next line onto the current one at a line end. With an active selection it
// deletes the selection instead.
func (e *Editor) DeleteForward() {
	if e.selection != nil {
		e.deleteSelection()
		return
	}
	line := e.buffer.Line(e.cursor.Line)
	text := line.Text()
	if e.cursor.Index < len(text) {
		j := nextGraphemeBoundary(text, e.cursor.Index)
		line.SetText(text[:e.cursor.Index] + text[j:])
		e.buffer.contentChanged()
	} else if e.cursor.Line < e.buffer.Lines()-1 {
		next := e.buffer.Line(e.cursor.Line + 1)
		line.SetText(text + next.Text())
		e.buffer.removeLine(e.cursor.Line + 1)
	}
	e.cursor.Affinity = AffinityBefore
}

// joinWithPrevious merges the cursor's line into the previous line and
// leaves the cursor at the join point.
func (e *Editor) joinWithPrevious() {
	prev := e.buffer.Line(e.cursor.Line - 1)
	cur := e.buffer.Line(e.cursor.Line)
	joinAt := len(prev.Text())
	prev.SetText(prev.Text() + cur.Text())
	e.buffer.removeLine(e.cursor.Line)
	e.cursor.Line--
	e.cursor.Index = joinAt
}

// deleteSelection removes the selected range and collapses the cursor to
// its start.
func (e *Editor) deleteSelection() {
	start, end, ok := e.SelectionBounds()
	if !ok {
		return
	}
	e.selection = nil
	if start == end {
		e.cursor = start
		return
	}

	if start.Line == end.Line {
		line := e.buffer.Line(start.Line)
		text := line.Text()
		line.SetText(text[:start.Index] + text[end.Index:])
		e.cursor = start
		e.buffer.contentChanged()
		return
	}

	first := e.buffer.Line(start.Line)
	last := e.buffer.Line(end.Line)
	first.SetText(first.Text()[:start.Index] + last.Text()[end.Index:])
	for i := end.Line; i > start.Line; i-- {
		e.buffer.removeLine(i)
	}
	e.cursor = start
}
