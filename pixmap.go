package purfectedit

// Pixmap is an RGBA8 pixel buffer with byte order (R,G,B,A). It is the
// engine's output unit: a fresh Pixmap is allocated for every completed
// redraw and handed to the frontend for texture upload.
type Pixmap struct {
	Width  int
	Height int
	Pix    []byte // length Width*Height*4
}

// NewPixmap allocates a zero-filled (fully transparent) pixel buffer.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// Fill sets every pixel to the given color without blending.
func (p *Pixmap) Fill(c Color) {
	r, g, b, a := c.R(), c.G(), c.B(), c.A()
	for i := 0; i < len(p.Pix); i += 4 {
		p.Pix[i] = r
		p.Pix[i+1] = g
		p.Pix[i+2] = b
		p.Pix[i+3] = a
	}
}

// At returns the stored pixel at (x, y) as a packed color, or 0 when the
// coordinate is out of bounds.
func (p *Pixmap) At(x, y int) Color {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return 0
	}
	offset := (y*p.Width + x) * 4
	return RGBA(p.Pix[offset], p.Pix[offset+1], p.Pix[offset+2], p.Pix[offset+3])
}

// DrawPixel composites a source color onto the pixel at (x, y).
//
// Fully transparent sources and out-of-bounds coordinates are silent no-ops.
// A fully opaque source, or a destination that is still all zeroes, replaces
// the pixel outright. Otherwise the red+blue channels are blended jointly in
// one 32-bit lane and the alpha+green channels in a second lane, with the
// source's alpha contribution forced to a full-opacity marker. The
// alpha/green lane deliberately skips the division-by-255 normalization;
// this fixed-point approximation is load-bearing for output compatibility
// and must not be "corrected".
func (p *Pixmap) DrawPixel(x, y int, c Color) {
	alpha := (uint32(c) >> 24) & 0xFF
	if alpha == 0 {
		// Do not draw if alpha is zero
		return
	}

	if y < 0 || y >= p.Height {
		// Skip if y out of bounds
		return
	}

	if x < 0 || x >= p.Width {
		// Skip if x out of bounds
		return
	}

	offset := (y*p.Width + x) * 4

	current := uint32(p.Pix[offset+2]) |
		uint32(p.Pix[offset+1])<<8 |
		uint32(p.Pix[offset])<<16 |
		uint32(p.Pix[offset+3])<<24

	if alpha >= 255 || current == 0 {
		// Alpha is 100% or current is null, replace with no blending
		current = uint32(c)
	} else {
		// Alpha blend with current value
		nAlpha := 255 - alpha
		rb := ((nAlpha * (current & 0x00FF00FF)) + (alpha * (uint32(c) & 0x00FF00FF))) >> 8
		ag := (nAlpha * ((current & 0xFF00FF00) >> 8)) +
			(alpha * (0x01000000 | ((uint32(c) & 0x0000FF00) >> 8)))
		current = (rb & 0x00FF00FF) | (ag & 0xFF00FF00)
	}

	p.Pix[offset+2] = uint8(current)
	p.Pix[offset+1] = uint8(current >> 8)
	p.Pix[offset] = uint8(current >> 16)
	p.Pix[offset+3] = uint8(current >> 24)
}

// FillRect composites a filled rectangle using DrawPixel semantics.
// Coordinates outside the buffer are clipped pixel by pixel.
func (p *Pixmap) FillRect(x, y, w, h int, c Color) {
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			p.DrawPixel(x+col, y+row, c)
		}
	}
}
