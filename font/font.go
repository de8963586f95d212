package font

import "fmt"

// Bitmap is a packed 1-bit font: a fixed cell height shared by every
// glyph, per-glyph widths, rows padded to byte boundaries. It
// satisfies watchgl.FontSource.
type Bitmap struct {
	height   int
	baseline int
	maxWidth int
	glyphs   map[rune]glyph
}

type glyph struct {
	bits  []byte
	width int
}

// NewBitmap returns an empty font with the given cell height and
// baseline offset from the glyph top. Glyphs are added with SetGlyph.
func NewBitmap(height, baseline int) (*Bitmap, error) {
	if height <= 0 {
		return nil, fmt.Errorf("%w: cell height %d", ErrFontMetrics, height)
	}
	if baseline < 0 || baseline > height {
		return nil, fmt.Errorf("%w: baseline %d outside cell of height %d", ErrFontMetrics, baseline, height)
	}
	return &Bitmap{
		height:   height,
		baseline: baseline,
		glyphs:   make(map[rune]glyph),
	}, nil
}

// SetGlyph stores the packed plane for ch. The plane must carry height
// rows of (width+7)/8 bytes. Storing a rune twice replaces its glyph.
func (f *Bitmap) SetGlyph(ch rune, bits []byte, width int) error {
	if width <= 0 {
		return fmt.Errorf("%w: glyph width %d", ErrFontMetrics, width)
	}
	if need := (width + 7) / 8 * f.height; len(bits) < need {
		return fmt.Errorf("%w: %d bytes for a %dx%d glyph", ErrGlyphPlane, len(bits), width, f.height)
	}
	f.glyphs[ch] = glyph{bits: bits, width: width}
	if width > f.maxWidth {
		f.maxWidth = width
	}
	return nil
}

// Glyph returns the bit plane for ch and its dimensions in pixels.
// Width 0 reports a character the font does not carry.
func (f *Bitmap) Glyph(ch rune) ([]byte, int, int) {
	g, ok := f.glyphs[ch]
	if !ok {
		return nil, 0, 0
	}
	return g.bits, g.width, f.height
}

// Height returns the cell height in pixels.
func (f *Bitmap) Height() int { return f.height }

// Baseline returns the baseline offset from the glyph top in pixels.
func (f *Bitmap) Baseline() int { return f.baseline }

// MaxWidth returns the widest stored glyph's width in pixels.
func (f *Bitmap) MaxWidth() int { return f.maxWidth }

// Len returns the number of stored glyphs.
func (f *Bitmap) Len() int { return len(f.glyphs) }
