// Package purfectedit provides the core text-editing engine shared between
// display frontends (CLI, custom texture pipelines, etc.).
//
// This package contains:
//   - Packed color type used by the compositor
//   - Text buffer with a lazily shaped glyph layout
//   - Editor with cursor, selection and edit actions
//   - Frame-driven engine that rasterizes editors into RGBA pixel buffers
//
// Frontend packages (purfectedit/cli) provide interactive adapters that feed
// input batches to the engine and display the pixel output.
package purfectedit

// Color is a packed 32-bit color with byte layout (alpha, red, green, blue)
// from most- to least-significant byte. The compositor's blend arithmetic
// depends on this exact layout.
type Color uint32

// RGB creates a fully opaque packed color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBA creates a packed color with an explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha returns the color with its alpha component replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Default drawing colors. Text defaults to black on editors with a white
// background fill, matching the engine's stock appearance.
var (
	DefaultTextColor       = RGB(0, 0, 0)
	DefaultBackgroundColor = RGB(255, 255, 255)
	DefaultSelectionColor  = RGBA(51, 51, 51, 0x33)
	DefaultCaretColor      = RGB(0, 0, 0)
)
