package purfectedit

import "testing"

func TestGraphemeBoundaries(t *testing.T) {
	// "e" followed by a combining acute accent is one cluster of 3 bytes.
	s := "aéb" // boundaries at 0, 1, 4, 5

	if got, want := prevGraphemeBoundary(s, 4), 1; got != want {
		t.Fatalf("prevGraphemeBoundary(4): got %d, want %d", got, want)
	}
	if got, want := prevGraphemeBoundary(s, 1), 0; got != want {
		t.Fatalf("prevGraphemeBoundary(1): got %d, want %d", got, want)
	}
	if got, want := nextGraphemeBoundary(s, 1), 4; got != want {
		t.Fatalf("nextGraphemeBoundary(1): got %d, want %d", got, want)
	}
	if got, want := nextGraphemeBoundary(s, 5), 5; got != want {
		t.Fatalf("nextGraphemeBoundary(5): got %d, want %d", got, want)
	}
	// Indices inside the cluster snap down to its start.
	if got, want := graphemeFloor(s, 2), 1; got != want {
		t.Fatalf("graphemeFloor(2): got %d, want %d", got, want)
	}
	if got, want := graphemeFloor(s, 3), 1; got != want {
		t.Fatalf("graphemeFloor(3): got %d, want %d", got, want)
	}
	if got, want := graphemeFloor(s, 4), 4; got != want {
		t.Fatalf("graphemeFloor(4): got %d, want %d", got, want)
	}
}

func TestWordBoundaries(t *testing.T) {
	s := "hello world"

	if got, want := nextWordStart(s, 0), 6; got != want {
		t.Fatalf("nextWordStart(0): got %d, want %d", got, want)
	}
	if got, want := nextWordStart(s, 6), len(s); got != want {
		t.Fatalf("nextWordStart(6): got %d, want %d", got, want)
	}
	if got, want := prevWordStart(s, len(s)), 6; got != want {
		t.Fatalf("prevWordStart(end): got %d, want %d", got, want)
	}
	if got, want := prevWordStart(s, 6), 0; got != want {
		t.Fatalf("prevWordStart(6): got %d, want %d", got, want)
	}
	if got, want := prevWordStart(s, 0), 0; got != want {
		t.Fatalf("prevWordStart(0): got %d, want %d", got, want)
	}
}

func TestCursorIsBefore(t *testing.T) {
	a := Cursor{Line: 0, Index: 5}
	b := Cursor{Line: 1, Index: 0}
	c := Cursor{Line: 1, Index: 3}

	if !a.IsBefore(b) || b.IsBefore(a) {
		t.Fatalf("line ordering broken")
	}
	if !b.IsBefore(c) || c.IsBefore(b) {
		t.Fatalf("index ordering broken")
	}
	if c.IsBefore(c) {
		t.Fatalf("cursor compares before itself")
	}
}
