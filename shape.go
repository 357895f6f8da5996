package purfectedit

import (
	"unicode/utf8"

	"golang.org/x/image/math/fixed"
)

// shapeLine turns one line of text into positioned glyph rows, wrapping
// greedily at the given width. A width of zero or less disables wrapping.
// The result always contains at least one (possibly empty) row so empty
// lines still occupy vertical space.
func shapeLine(fs *FontSystem, text string, m Metrics, width float64) ([]LayoutLine, error) {
	face, err := fs.Face(m.FontSize)
	if err != nil {
		return nil, err
	}

	rows := make([]LayoutLine, 0, 1)
	cur := LayoutLine{}
	penX := 0.0

	for i, r := range text {
		advance, ok := face.GlyphAdvance(r)
		if !ok {
			// Unknown rune: shape as the replacement character so the
			// cluster still has a position and width.
			advance, ok = face.GlyphAdvance(utf8.RuneError)
			if !ok {
				advance = fixed.I(int(m.FontSize / 2))
			}
		}
		w := float64(advance) / 64.0

		if width > 0 && penX+w > width && len(cur.Glyphs) > 0 {
			cur.W = penX
			rows = append(rows, cur)
			cur = LayoutLine{}
			penX = 0
		}

		cur.Glyphs = append(cur.Glyphs, LayoutGlyph{
			Start: i,
			End:   i + utf8.RuneLen(r),
			Rune:  r,
			X:     penX,
			W:     w,
		})
		penX += w
	}

	cur.W = penX
	rows = append(rows, cur)
	return rows, nil
}
