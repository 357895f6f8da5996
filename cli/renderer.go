package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/phroun/purfectedit"
)

// Renderer draws engine pixel buffers into the host terminal. Each text
// cell shows two pixel rows through the upper-half-block character, with
// the foreground color carrying the upper pixel and the background color
// the lower one. Only cells that changed since the previous frame are
// rewritten.
type Renderer struct {
	lastCells [][]cellColors

	// Output buffer for batching writes.
	output strings.Builder
}

// cellColors is the rendered state of one cell for diff comparison.
type cellColors struct {
	upper uint32 // packed 0xRRGGBB
	lower uint32
}

// NewRenderer creates a renderer with no previous frame.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Invalidate drops the previous frame so the next Draw repaints everything.
func (r *Renderer) Invalidate() {
	r.lastCells = nil
}

// Draw renders a pixel buffer at the top-left of the host terminal,
// compositing it over the given background color.
func (r *Renderer) Draw(pix *purfectedit.Pixmap, bg purfectedit.Color) {
	rows := (pix.Height + 1) / 2
	cols := pix.Width

	full := r.lastCells == nil || len(r.lastCells) != rows ||
		(rows > 0 && len(r.lastCells[0]) != cols)
	if full {
		r.lastCells = make([][]cellColors, rows)
		for y := range r.lastCells {
			r.lastCells[y] = make([]cellColors, cols)
		}
	}

	r.output.Reset()
	r.output.WriteString("\033[?25l") // keep host cursor hidden

	var curFg, curBg uint32
	attrsSet := false

	for y := 0; y < rows; y++ {
		prev := -2 // x of the previously written cell in this row
		for x := 0; x < cols; x++ {
			cell := cellColors{
				upper: compositeOver(pix.At(x, y*2), bg),
				lower: compositeOver(pix.At(x, y*2+1), bg),
			}
			if !full && r.lastCells[y][x] == cell {
				continue
			}
			r.lastCells[y][x] = cell

			// Reposition unless continuing a run of changed cells.
			if prev != x-1 {
				fmt.Fprintf(&r.output, "\033[%d;%dH", y+1, x+1)
			}
			prev = x

			if !attrsSet || cell.upper != curFg {
				writeSGR(&r.output, 38, cell.upper)
				curFg = cell.upper
			}
			if !attrsSet || cell.lower != curBg {
				writeSGR(&r.output, 48, cell.lower)
				curBg = cell.lower
			}
			attrsSet = true
			r.output.WriteRune('▀')
		}
	}

	if r.output.Len() > len("\033[?25l") {
		os.Stdout.WriteString(r.output.String())
	}
}

// writeSGR emits a truecolor SGR sequence; base is 38 for foreground, 48
// for background.
func writeSGR(sb *strings.Builder, base int, rgb uint32) {
	fmt.Fprintf(sb, "\033[%d;2;%d;%d;%dm", base, (rgb>>16)&0xFF, (rgb>>8)&0xFF, rgb&0xFF)
}

// compositeOver blends one engine pixel over an opaque background color and
// returns packed 0xRRGGBB. This is plain alpha blending for display only;
// the engine's own compositor already ran when the pixel was produced.
func compositeOver(c, bg purfectedit.Color) uint32 {
	a := uint32(c.A())
	switch a {
	case 0:
		return uint32(bg.R())<<16 | uint32(bg.G())<<8 | uint32(bg.B())
	case 255:
		return uint32(c.R())<<16 | uint32(c.G())<<8 | uint32(c.B())
	}
	na := 255 - a
	rr := (uint32(c.R())*a + uint32(bg.R())*na) / 255
	gg := (uint32(c.G())*a + uint32(bg.G())*na) / 255
	bb := (uint32(c.B())*a + uint32(bg.B())*na) / 255
	return rr<<16 | gg<<8 | bb
}
