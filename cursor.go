package purfectedit

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Affinity disambiguates a cursor position sitting exactly on a soft-wrap
// boundary: Before attaches it to the start of the next visual row, After
// to the end of the prior one.
type Affinity uint8

const (
	AffinityBefore Affinity = iota
	AffinityAfter
)

// Cursor addresses a position within a buffer: a line index, a byte index
// within that line's text, and the wrap affinity.
type Cursor struct {
	Line     int
	Index    int
	Affinity Affinity
}

// IsBefore reports whether c addresses an earlier buffer position than o.
func (c Cursor) IsBefore(o Cursor) bool {
	if c.Line != o.Line {
		return c.Line < o.Line
	}
	return c.Index < o.Index
}

// --- Grapheme and word boundary helpers ---

// prevGraphemeBoundary returns the grapheme cluster boundary immediately
// before idx, or 0 when idx is at or before the first boundary.
func prevGraphemeBoundary(s string, idx int) int {
	prev := 0
	pos := 0
	state := -1
	rest := s
	for len(rest) > 0 && pos < idx {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		prev = pos
		pos += len(cluster)
	}
	return prev
}

// nextGraphemeBoundary returns the grapheme cluster boundary immediately
// after idx, or len(s) when idx is at or past the last boundary.
func nextGraphemeBoundary(s string, idx int) int {
	pos := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
		if pos > idx {
			return pos
		}
	}
	return len(s)
}

// graphemeFloor snaps idx down to the nearest grapheme cluster boundary.
func graphemeFloor(s string, idx int) int {
	if idx <= 0 {
		return 0
	}
	if idx >= len(s) {
		return len(s)
	}
	pos := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		next := pos + len(cluster)
		if next > idx {
			return pos
		}
		pos = next
	}
	return pos
}

// nextWordStart returns the byte index of the start of the next word after
// idx, skipping whitespace, or len(s) when there is none.
func nextWordStart(s string, idx int) int {
	pos := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if pos > idx && strings.TrimSpace(word) != "" {
			return pos
		}
		pos += len(word)
	}
	return len(s)
}

// prevWordStart returns the byte index of the start of the word preceding
// idx, or 0 when there is none.
func prevWordStart(s string, idx int) int {
	best := 0
	pos := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if pos < idx && strings.TrimSpace(word) != "" {
			best = pos
		}
		pos += len(word)
	}
	return best
}
