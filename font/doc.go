// Package font supplies glyph sources for watchgl text drawing.
//
// Glyphs are packed 1-bit planes: row-major, least significant bit
// leftmost, each row padded to a byte boundary. All glyphs of a font
// share one cell height; widths vary per glyph.
//
// Two sources are provided. Fallback is a built-in placeholder face
// that renders every printable ASCII character as a 16x16 cell marked
// with edge bars, enough to lay out text before a real font is wired
// in. FromFace rasterizes any golang.org/x/image/font.Face into the
// same packed form:
//
//	face, err := font.FromFace(basicfont.Face7x13)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g.SetFontSource(face)
//	g.DrawString(watchgl.White, "12:45", 8, 20)
package font
