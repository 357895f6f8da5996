package purfectedit

import "testing"

func newTestEditor() *Editor {
	return NewEditor(NewMetrics(16, 20))
}

func TestInsertStringSplitsLines(t *testing.T) {
	e := newTestEditor()
	e.InsertString("hi\nthere")

	if got, want := e.Text(), "hi\nthere"; got != want {
		t.Fatalf("Text: got %q, want %q", got, want)
	}
	if got, want := e.Cursor(), (Cursor{Line: 1, Index: 5}); got != want {
		t.Fatalf("cursor: got %+v, want %+v", got, want)
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	e := newTestEditor()
	e.SetText("ab\ncd")
	e.SetCursor(Cursor{Line: 1, Index: 0})

	e.Backspace()

	if got, want := e.Text(), "abcd"; got != want {
		t.Fatalf("Text: got %q, want %q", got, want)
	}
	if got, want := e.Cursor(), (Cursor{Line: 0, Index: 2}); got != want {
		t.Fatalf("cursor: got %+v, want %+v", got, want)
	}
}

func TestBackspaceRemovesWholeCluster(t *testing.T) {
	e := newTestEditor()
	e.SetText("ae\u0301b") // a, e + combining accent, b
	e.SetCursor(Cursor{Line: 0, Index: 4})

	e.Backspace()

	if got, want := e.Text(), "ab"; got != want {
		t.Fatalf("Text: got %q, want %q", got, want)
	}
	if got, want := e.Cursor().Index, 1; got != want {
		t.Fatalf("cursor index: got %d, want %d", got, want)
	}
}

func TestDeleteForwardJoinsLines(t *testing.T) {
	e := newTestEditor()
	e.SetText("ab\ncd")
	e.SetCursor(Cursor{Line: 0, Index: 2})

	e.DeleteForward()

	if got, want := e.Text(), "abcd"; got != want {
		t.Fatalf("Text: got %q, want %q", got, want)
	}
	if got, want := e.Cursor(), (Cursor{Line: 0, Index: 2}); got != want {
		t.Fatalf("cursor: got %+v, want %+v", got, want)
	}
}

func TestSelectAll(t *testing.T) {
	e := newTestEditor()
	e.SetText("ab\ncd")

	e.SelectAll()

	if !e.HasSelection() {
		t.Fatalf("no selection after SelectAll")
	}
	if got, want := e.SelectedText(), "ab\ncd"; got != want {
		t.Fatalf("SelectedText: got %q, want %q", got, want)
	}
	if got, want := e.Cursor(), (Cursor{Line: 1, Index: 2}); got != want {
		t.Fatalf("cursor: got %+v, want %+v", got, want)
	}
}

func TestInsertReplacesSelection(t *testing.T) {
	e := newTestEditor()
	e.SetText("ab\ncd")
	e.SelectAll()

	e.InsertChar('x')

	if got, want := e.Text(), "x"; got != want {
		t.Fatalf("Text: got %q, want %q", got, want)
	}
	if e.HasSelection() {
		t.Fatalf("selection survived the replacing insert")
	}
}

func TestBackspaceDeletesSelection(t *testing.T) {
	e := newTestEditor()
	e.SetText("hello world")
	e.SetCursor(Cursor{Line: 0, Index: 5})
	e.SetSelection(Cursor{Line: 0, Index: 0})

	e.Backspace()

	if got, want := e.Text(), " world"; got != want {
		t.Fatalf("Text: got %q, want %q", got, want)
	}
	if got, want := e.Cursor().Index, 0; got != want {
		t.Fatalf("cursor index: got %d, want %d", got, want)
	}
}

func TestEscapeClearsSelection(t *testing.T) {
	e := newTestEditor()
	e.SetText("hello")
	e.SelectAll()
	before := e.Cursor()

	e.Escape()

	if e.HasSelection() {
		t.Fatalf("selection survived Escape")
	}
	if got := e.Cursor(); got != before {
		t.Fatalf("Escape moved the cursor: got %+v, want %+v", got, before)
	}
}

func TestMoveAcrossLines(t *testing.T) {
	e := newTestEditor()
	e.SetText("ab\ncd")
	e.SetCursor(Cursor{Line: 1, Index: 0})

	e.MoveLeft()
	if got, want := e.Cursor(), (Cursor{Line: 0, Index: 2}); got != want {
		t.Fatalf("MoveLeft across lines: got %+v, want %+v", got, want)
	}

	e.MoveRight()
	if got, want := e.Cursor(), (Cursor{Line: 1, Index: 0}); got != want {
		t.Fatalf("MoveRight across lines: got %+v, want %+v", got, want)
	}
}

func TestWordMotion(t *testing.T) {
	e := newTestEditor()
	e.SetText("hello world")
	e.SetCursor(Cursor{Line: 0, Index: 0})

	e.MoveWordNext()
	if got, want := e.Cursor().Index, 6; got != want {
		t.Fatalf("MoveWordNext: got %d, want %d", got, want)
	}

	e.MoveWordPrev()
	if got, want := e.Cursor().Index, 0; got != want {
		t.Fatalf("MoveWordPrev: got %d, want %d", got, want)
	}
}

func TestWordMotionCrossesLines(t *testing.T) {
	e := newTestEditor()
	e.SetText("ab\ncd")
	e.SetCursor(Cursor{Line: 0, Index: 2})

	e.MoveWordNext()
	if got, want := e.Cursor(), (Cursor{Line: 1, Index: 0}); got != want {
		t.Fatalf("MoveWordNext at line end: got %+v, want %+v", got, want)
	}

	e.MoveWordPrev()
	if got, want := e.Cursor(), (Cursor{Line: 0, Index: 2}); got != want {
		t.Fatalf("MoveWordPrev at line start: got %+v, want %+v", got, want)
	}
}

func TestSetCursorClamps(t *testing.T) {
	e := newTestEditor()
	e.SetText("hi")

	e.SetCursor(Cursor{Line: 9, Index: 99})
	if got, want := e.Cursor(), (Cursor{Line: 0, Index: 2}); got != want {
		t.Fatalf("overshoot clamp: got %+v, want %+v", got, want)
	}

	e.SetCursor(Cursor{Line: -1, Index: -5})
	if got, want := e.Cursor(), (Cursor{Line: 0, Index: 0}); got != want {
		t.Fatalf("undershoot clamp: got %+v, want %+v", got, want)
	}
}

// twoGlyphRow builds a row of two 10px glyphs covering bytes [start,start+2).
func twoGlyphRow(text string, start int) LayoutLine {
	rs := []rune(text[start : start+2])
	return LayoutLine{
		Glyphs: []LayoutGlyph{
			{Start: start, End: start + 1, Rune: rs[0], X: 0, W: 10},
			{Start: start + 1, End: start + 2, Rune: rs[1], X: 10, W: 10},
		},
		W: 20,
	}
}

func TestHitResolvesToNearestBoundary(t *testing.T) {
	e := newTestEditor()
	e.SetText("ab")
	fixedLayout(e, 0, twoGlyphRow("ab", 0))

	cur, err := e.Hit(nil, 4, 5)
	if err != nil {
		t.Fatalf("Hit: %v", err)
	}
	if got, want := cur, (Cursor{Line: 0, Index: 0}); got != want {
		t.Fatalf("hit left half: got %+v, want %+v", got, want)
	}

	cur, _ = e.Hit(nil, 6, 5)
	if got, want := cur, (Cursor{Line: 0, Index: 1}); got != want {
		t.Fatalf("hit right half: got %+v, want %+v", got, want)
	}

	cur, _ = e.Hit(nil, 25, 5)
	if got, want := cur, (Cursor{Line: 0, Index: 2, Affinity: AffinityBefore}); got != want {
		t.Fatalf("hit past row end: got %+v, want %+v", got, want)
	}
}

func TestHitWrapBoundaryAffinity(t *testing.T) {
	e := newTestEditor()
	e.SetText("abcd")
	fixedLayout(e, 0, twoGlyphRow("abcd", 0), twoGlyphRow("abcd", 2))

	// Past the end of the first wrapped row: the position belongs to that
	// row, so it carries After affinity.
	cur, err := e.Hit(nil, 25, 5)
	if err != nil {
		t.Fatalf("Hit: %v", err)
	}
	if got, want := cur, (Cursor{Line: 0, Index: 2, Affinity: AffinityAfter}); got != want {
		t.Fatalf("wrap-end hit: got %+v, want %+v", got, want)
	}

	// Start of the second row: same byte index, Before affinity.
	cur, _ = e.Hit(nil, 2, 25)
	if got, want := cur, (Cursor{Line: 0, Index: 2, Affinity: AffinityBefore}); got != want {
		t.Fatalf("wrap-start hit: got %+v, want %+v", got, want)
	}
}

func TestMoveUpDownKeepsColumn(t *testing.T) {
	e := newTestEditor()
	e.SetText("ab\ncd")
	fixedLayout(e, 0, twoGlyphRow("ab", 0))
	fixedLayout(e, 1, twoGlyphRow("cd", 0))
	e.cursor = Cursor{Line: 1, Index: 1}

	if err := e.MoveUp(nil); err != nil {
		t.Fatalf("MoveUp: %v", err)
	}
	if got, want := e.Cursor(), (Cursor{Line: 0, Index: 1}); got != want {
		t.Fatalf("MoveUp: got %+v, want %+v", got, want)
	}

	// Already on the first row: no-op.
	if err := e.MoveUp(nil); err != nil {
		t.Fatalf("MoveUp (top): %v", err)
	}
	if got, want := e.Cursor(), (Cursor{Line: 0, Index: 1}); got != want {
		t.Fatalf("MoveUp at top moved: got %+v", got)
	}

	if err := e.MoveDown(nil); err != nil {
		t.Fatalf("MoveDown: %v", err)
	}
	if got, want := e.Cursor(), (Cursor{Line: 1, Index: 1}); got != want {
		t.Fatalf("MoveDown: got %+v, want %+v", got, want)
	}
}

func TestClickAndDrag(t *testing.T) {
	e := newTestEditor()
	e.SetText("ab")
	fixedLayout(e, 0, twoGlyphRow("ab", 0))
	e.cursor = Cursor{Line: 0, Index: 2}

	if err := e.Click(nil, 1, 5); err != nil {
		t.Fatalf("Click: %v", err)
	}
	if got, want := e.Cursor().Index, 0; got != want {
		t.Fatalf("click cursor: got %d, want %d", got, want)
	}
	if e.HasSelection() {
		t.Fatalf("click left a selection")
	}

	if err := e.Drag(nil, 25, 5); err != nil {
		t.Fatalf("Drag: %v", err)
	}
	anchor, ok := e.Selection()
	if !ok {
		t.Fatalf("drag did not anchor a selection")
	}
	if got, want := anchor.Index, 0; got != want {
		t.Fatalf("anchor: got %d, want %d", got, want)
	}
	if got, want := e.SelectedText(), "ab"; got != want {
		t.Fatalf("SelectedText: got %q, want %q", got, want)
	}
}
