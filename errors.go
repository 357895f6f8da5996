package purfectedit

import "errors"

// ErrNotInitialized is returned when a pass runs before the font system and
// glyph raster cache exist. This is a startup/configuration error, not a
// runtime-recoverable condition.
var ErrNotInitialized = errors.New("purfectedit: font system not initialized")
