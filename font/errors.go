package font

import "errors"

// Sentinel errors for font construction.
var (
	// ErrFontMetrics is returned for a cell height or baseline that
	// cannot describe a usable font.
	ErrFontMetrics = errors.New("font: invalid font metrics")

	// ErrGlyphPlane is returned when a glyph's bit plane is shorter
	// than its dimensions require.
	ErrGlyphPlane = errors.New("font: glyph plane too short")

	// ErrRuneRange is returned for an empty or inverted rune range.
	ErrRuneRange = errors.New("font: invalid rune range")
)
