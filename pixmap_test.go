package purfectedit

import (
	"bytes"
	"testing"
)

func TestDrawPixelAlphaZeroIsNoop(t *testing.T) {
	p := NewPixmap(4, 4)
	p.Fill(RGBA(10, 20, 30, 40))
	before := append([]byte(nil), p.Pix...)

	p.DrawPixel(2, 2, RGBA(255, 255, 255, 0))

	if !bytes.Equal(p.Pix, before) {
		t.Fatalf("alpha-0 source modified the pixel buffer")
	}
}

func TestDrawPixelOpaqueReplaces(t *testing.T) {
	p := NewPixmap(2, 2)
	p.Fill(RGBA(1, 2, 3, 4))

	p.DrawPixel(1, 0, RGBA(100, 150, 200, 255))

	offset := (0*2 + 1) * 4
	got := [4]byte{p.Pix[offset], p.Pix[offset+1], p.Pix[offset+2], p.Pix[offset+3]}
	want := [4]byte{100, 150, 200, 255}
	if got != want {
		t.Fatalf("opaque replace: got %v, want %v", got, want)
	}
}

func TestDrawPixelEmptyDestinationReplaces(t *testing.T) {
	p := NewPixmap(2, 2)

	// Destination is all zeroes, so even a translucent source replaces it.
	p.DrawPixel(0, 1, RGBA(100, 150, 200, 128))

	offset := (1*2 + 0) * 4
	got := [4]byte{p.Pix[offset], p.Pix[offset+1], p.Pix[offset+2], p.Pix[offset+3]}
	want := [4]byte{100, 150, 200, 128}
	if got != want {
		t.Fatalf("empty-destination replace: got %v, want %v", got, want)
	}
}

func TestDrawPixelOutOfBoundsIsNoop(t *testing.T) {
	p := NewPixmap(3, 3)
	p.Fill(RGBA(9, 9, 9, 9))
	before := append([]byte(nil), p.Pix...)

	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}, {-100, -100}} {
		p.DrawPixel(pt[0], pt[1], RGB(255, 0, 0))
	}

	if !bytes.Equal(p.Pix, before) {
		t.Fatalf("out-of-bounds composite wrote into the pixel buffer")
	}
}

// TestDrawPixelApproximateBlend locks down the fixed-point blend bytes,
// including the alpha/green lane that skips the division-by-255
// normalization. These values must not drift.
func TestDrawPixelApproximateBlend(t *testing.T) {
	p := NewPixmap(1, 1)
	p.Pix[0], p.Pix[1], p.Pix[2], p.Pix[3] = 10, 20, 30, 40

	p.DrawPixel(0, 0, RGBA(100, 150, 200, 128))

	got := [4]byte{p.Pix[0], p.Pix[1], p.Pix[2], p.Pix[3]}
	want := [4]byte{54, 84, 114, 147}
	if got != want {
		t.Fatalf("approximate blend: got %v, want %v", got, want)
	}
}

func TestPixmapAt(t *testing.T) {
	p := NewPixmap(2, 1)
	p.DrawPixel(1, 0, RGBA(1, 2, 3, 255))

	if got, want := p.At(1, 0), RGBA(1, 2, 3, 255); got != want {
		t.Fatalf("At(1,0): got %08x, want %08x", uint32(got), uint32(want))
	}
	if got := p.At(5, 5); got != 0 {
		t.Fatalf("At out of bounds: got %08x, want 0", uint32(got))
	}
}

func TestColorAccessors(t *testing.T) {
	c := RGBA(0x11, 0x22, 0x33, 0x44)
	if c.R() != 0x11 || c.G() != 0x22 || c.B() != 0x33 || c.A() != 0x44 {
		t.Fatalf("channel accessors: got (%d,%d,%d,%d)", c.R(), c.G(), c.B(), c.A())
	}
	if got, want := uint32(c), uint32(0x44112233); got != want {
		t.Fatalf("packed layout: got %08x, want %08x", got, want)
	}
	if got := c.WithAlpha(0xFF); got.A() != 0xFF || got.R() != 0x11 {
		t.Fatalf("WithAlpha: got %08x", uint32(got))
	}
}
