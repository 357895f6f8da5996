package purfectedit

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// GlyphMask is a rasterized glyph coverage mask. Left and Top position the
// mask relative to the glyph's pen origin on the baseline (Top is negative
// for the part of the glyph above the baseline).
type GlyphMask struct {
	Left    int
	Top     int
	Width   int
	Height  int
	Cov     []byte // coverage alpha, Width*Height bytes
	Advance float64
}

type rasterKey struct {
	r    rune
	size float64
}

// RasterCache memoizes glyph coverage masks per rune and font size. Like
// the FontSystem it is a process-wide resource borrowed exclusively by one
// pass at a time; it carries no locks.
type RasterCache struct {
	masks map[rasterKey]*GlyphMask
}

// NewRasterCache creates an empty glyph raster cache.
func NewRasterCache() *RasterCache {
	return &RasterCache{masks: make(map[rasterKey]*GlyphMask)}
}

// Glyph returns the coverage mask for a rune at the given font size,
// rasterizing and caching it on first use. The second return value is false
// when the font has no glyph for the rune; that miss is cached too.
func (rc *RasterCache) Glyph(fs *FontSystem, r rune, size float64) (*GlyphMask, bool) {
	key := rasterKey{r: r, size: size}
	if mask, ok := rc.masks[key]; ok {
		return mask, mask != nil
	}

	face, err := fs.Face(size)
	if err != nil {
		return nil, false
	}

	// Rasterize at the origin; the caller offsets by the integer pen
	// position. Subpixel placement is intentionally not cached.
	dr, maskImg, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		rc.masks[key] = nil
		return nil, false
	}

	w := dr.Dx()
	h := dr.Dy()
	mask := &GlyphMask{
		Left:    dr.Min.X,
		Top:     dr.Min.Y,
		Width:   w,
		Height:  h,
		Cov:     make([]byte, w*h),
		Advance: float64(advance) / 64.0,
	}

	if alpha, isAlpha := maskImg.(*image.Alpha); isAlpha {
		for row := 0; row < h; row++ {
			for col := 0; col < w; col++ {
				mask.Cov[row*w+col] = alpha.AlphaAt(maskp.X+col, maskp.Y+row).A
			}
		}
	} else {
		for row := 0; row < h; row++ {
			for col := 0; col < w; col++ {
				_, _, _, a := maskImg.At(maskp.X+col, maskp.Y+row).RGBA()
				mask.Cov[row*w+col] = uint8(a >> 8)
			}
		}
	}

	rc.masks[key] = mask
	return mask, true
}

// Len reports how many entries (including cached misses) the cache holds.
func (rc *RasterCache) Len() int {
	return len(rc.masks)
}
