package watchgl

// FontSource supplies packed 1-bit glyph planes, row-major and padded
// to byte boundaries per row, the layout MonoStream decodes. Width 0
// means the source has no glyph for the character; the text renderer
// skips it without advancing.
type FontSource interface {
	// Glyph returns the bit plane for ch and its dimensions in pixels.
	Glyph(ch rune) (bits []byte, width, height int)

	// Height returns the nominal line height in pixels.
	Height() int

	// Baseline returns the baseline offset from the glyph top in pixels.
	Baseline() int

	// MaxWidth returns the widest glyph's width in pixels.
	MaxWidth() int
}

// Alignment positions a string relative to its anchor x.
type Alignment uint8

const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
)

// String returns a string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "Center"
	case AlignLeft:
		return "Left"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// glyphSeed primes a glyph renderer's decoder before the first glyph.
var glyphSeed = []byte{0}

// glyphRenderer owns the one MonoStream a context decodes glyphs
// through, re-pointed at each glyph's bit plane in turn. The palette
// carries the text colors: entry 0 background, entry 1 foreground, the
// foreground cached to skip redundant palette encodes.
type glyphRenderer struct {
	font   FontSource
	stream *MonoStream
	fg     Color
}

func newGlyphRenderer(font FontSource, format ColorFormat) *glyphRenderer {
	s, _ := NewMonoStream(format, glyphSeed, 1, 1)
	return &glyphRenderer{font: font, stream: s, fg: DefaultTextColor}
}

func (r *glyphRenderer) setBG(c Color) {
	r.stream.SetColor(0, c)
}

func (r *glyphRenderer) setFG(c Color) {
	if r.fg == c {
		return
	}
	r.stream.SetColor(1, c)
	r.fg = c
}

// glyph points the decoder at ch's bit plane. A missing glyph or one
// whose plane does not match its dimensions returns a nil stream.
func (r *glyphRenderer) glyph(ch rune) (*MonoStream, int) {
	bits, w, h := r.font.Glyph(ch)
	if w <= 0 || h <= 0 {
		return nil, 0
	}
	if err := r.stream.Retarget(bits, w, h); err != nil {
		Logger().Warn("watchgl: glyph plane rejected", "char", string(ch), "err", err)
		return nil, 0
	}
	return r.stream, w
}

// SetFontSource replaces the glyph source used by the text operations.
// Pass nil to disable text drawing.
func (g *Graphics) SetFontSource(f FontSource) {
	if f == nil {
		g.text = nil
		return
	}
	g.text = newGlyphRenderer(f, g.spec.Format)
	g.text.setBG(g.textBG)
}

// FontSource returns the active glyph source, nil if none is set.
func (g *Graphics) FontSource() FontSource {
	if g.text == nil {
		return nil
	}
	return g.text.font
}

// DrawString draws s with its top-left corner at (x, y) in window
// coordinates, glyph backgrounds painted in the current text background
// color. Glyphs outside the window are clipped or skipped; without a
// font source the call draws nothing.
func (g *Graphics) DrawString(color Color, s string, x, y int) {
	if g.text == nil {
		return
	}
	g.text.setFG(color)

	winW := g.win.width
	winH := g.win.height
	if y >= winH || x >= winW {
		return
	}
	if y+g.text.font.Height() <= 0 {
		return
	}

	for _, ch := range s {
		gs, w := g.text.glyph(ch)
		if gs == nil {
			continue
		}
		if x+w <= 0 {
			x += w
			continue
		}
		if x >= winW {
			break
		}
		g.Blit(gs, x, y)
		x += w
	}
}

// StringBounds measures s: the summed glyph widths and the tallest
// glyph height, at least the font's line height.
func (g *Graphics) StringBounds(s string) (width, height int) {
	if g.text == nil {
		return 0, 0
	}
	height = g.text.font.Height()
	for _, ch := range s {
		_, w, h := g.text.font.Glyph(ch)
		if w <= 0 {
			continue
		}
		width += w
		if h > height {
			height = h
		}
	}
	return width, height
}

// DrawStringAligned draws s anchored at x according to align: centered
// on it, ending at it, or starting at it.
func (g *Graphics) DrawStringAligned(color Color, s string, x, y int, align Alignment) {
	switch align {
	case AlignCenter:
		w, _ := g.StringBounds(s)
		g.DrawString(color, s, x-w/2, y)
	case AlignRight:
		w, _ := g.StringBounds(s)
		g.DrawString(color, s, x-w, y)
	default:
		g.DrawString(color, s, x, y)
	}
}
