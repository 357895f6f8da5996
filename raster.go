package purfectedit

// Rasterize renders an editor into a freshly allocated pixel buffer and
// clears the buffer's redraw flag. The caller is expected to gate on
// Buffer.Redraw; rasterizing an up-to-date editor just repaints it.
//
// The pixel size is the buffer size clamped to at least 1x1; the clamped
// size is written back to the buffer before shaping so the layout and the
// pixels always agree. Selection rectangles are painted first, then the
// caret, then the glyph coverage masks, all through the approximate blend
// operator in DrawPixel.
func Rasterize(fs *FontSystem, cache *RasterCache, e *Editor) (*Pixmap, error) {
	if fs == nil || cache == nil {
		return nil, ErrNotInitialized
	}

	w, h := e.buffer.Size()
	pw := int(w)
	if pw < 1 {
		pw = 1
	}
	ph := int(h)
	if ph < 1 {
		ph = 1
	}
	e.buffer.SetSize(float64(pw), float64(ph))
	if err := e.buffer.ShapeAsNeeded(fs); err != nil {
		return nil, err
	}

	offsetX, offsetY, err := e.Offsets(fs)
	if err != nil {
		return nil, err
	}

	pix := NewPixmap(pw, ph)
	m := e.buffer.Metrics()
	lh := int(m.LineHeight)
	runs := e.buffer.VisualRuns()

	e.drawSelection(pix, runs, lh, offsetX, offsetY)

	if cx, ctop, _, err := e.cursorVisual(fs); err == nil {
		pix.FillRect(int(cx)+offsetX, int(ctop)+offsetY, 1, lh, e.CaretColor)
	}

	ascent, err := fs.Ascent(m.FontSize)
	if err != nil {
		return nil, err
	}
	srcAlpha := e.TextColor.A()
	for _, run := range runs {
		baseY := int(run.Top + ascent)
		for _, g := range run.Glyphs {
			mask, ok := cache.Glyph(fs, g.Rune, m.FontSize)
			if !ok {
				continue
			}
			gx := int(g.X) + mask.Left + offsetX
			gy := baseY + mask.Top + offsetY
			for row := 0; row < mask.Height; row++ {
				for col := 0; col < mask.Width; col++ {
					cov := mask.Cov[row*mask.Width+col]
					if cov == 0 {
						continue
					}
					a := cov
					if srcAlpha != 0xFF {
						a = uint8(uint32(cov) * uint32(srcAlpha) / 255)
					}
					pix.DrawPixel(gx+col, gy+row, e.TextColor.WithAlpha(a))
				}
			}
		}
	}

	e.buffer.SetRedraw(false)
	return pix, nil
}

// drawSelection paints the highlighted range row by row.
func (e *Editor) drawSelection(pix *Pixmap, runs []VisualRun, lh, offsetX, offsetY int) {
	start, end, ok := e.SelectionBounds()
	if !ok || start == end {
		return
	}
	for _, run := range runs {
		if run.Line < start.Line || run.Line > end.Line {
			continue
		}
		x0 := 0.0
		x1 := run.W
		if run.Line == start.Line {
			if start.Index >= run.End() && !(start.Index == run.End() && len(run.Glyphs) == 0) {
				continue
			}
			if start.Index > run.Start() {
				x0 = glyphX(run, start.Index)
			}
		}
		if run.Line == end.Line {
			if end.Index <= run.Start() {
				continue
			}
			if end.Index < run.End() {
				x1 = glyphX(run, end.Index)
			}
		}
		if x1 <= x0 {
			continue
		}
		pix.FillRect(int(x0)+offsetX, int(run.Top)+offsetY, int(x1-x0+0.5), lh, e.SelectionColor)
	}
}

// glyphX returns the x position of the glyph starting at the given byte
// index within a run, or the run's trailing edge when the index is past
// every glyph.
func glyphX(run VisualRun, index int) float64 {
	for _, g := range run.Glyphs {
		if g.Start >= index {
			return g.X
		}
	}
	return run.W
}
