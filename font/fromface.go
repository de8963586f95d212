package font

import (
	"fmt"
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DefaultCoverage is the glyph mask alpha at which a pixel turns on.
const DefaultCoverage uint8 = 0x80

// FaceOption adjusts how FromFace rasterizes a face.
type FaceOption func(*faceConfig)

type faceConfig struct {
	lo, hi   rune
	coverage uint8
}

// WithRuneRange sets the inclusive range of characters to rasterize.
// The default covers printable ASCII, space through tilde.
func WithRuneRange(lo, hi rune) FaceOption {
	return func(cfg *faceConfig) {
		cfg.lo, cfg.hi = lo, hi
	}
}

// WithCoverage sets the minimum mask alpha at which a pixel turns on.
// Lower values thicken antialiased glyphs, higher values thin them.
func WithCoverage(alpha uint8) FaceOption {
	return func(cfg *faceConfig) {
		cfg.coverage = alpha
	}
}

// FromFace rasterizes face into a packed Bitmap font. Each character
// is drawn into a cell of its advance width and the face's full line
// height, then thresholded at the configured coverage. Characters the
// face cannot map are left out of the font.
//
// Uses golang.org/x/image/font for rasterization.
func FromFace(face xfont.Face, opts ...FaceOption) (*Bitmap, error) {
	if face == nil {
		return nil, fmt.Errorf("%w: nil face", ErrFontMetrics)
	}

	cfg := faceConfig{lo: ' ', hi: '~', coverage: DefaultCoverage}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.lo > cfg.hi {
		return nil, fmt.Errorf("%w: %q..%q", ErrRuneRange, cfg.lo, cfg.hi)
	}

	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	baseline := metrics.Ascent.Ceil()
	f, err := NewBitmap(height, baseline)
	if err != nil {
		return nil, err
	}

	for ch := cfg.lo; ch <= cfg.hi; ch++ {
		advance, ok := face.GlyphAdvance(ch)
		if !ok {
			continue
		}
		width := advance.Ceil()
		if width <= 0 {
			continue
		}

		// Draw the glyph into its cell, origin on the baseline.
		// Ink outside the cell is clipped by the mask bounds.
		mask := image.NewAlpha(image.Rect(0, 0, width, height))
		drawer := &xfont.Drawer{
			Dst:  mask,
			Src:  image.White,
			Face: face,
			Dot:  fixed.P(0, baseline),
		}
		drawer.DrawString(string(ch))

		stride := (width + 7) / 8
		bits := make([]byte, stride*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if mask.AlphaAt(x, y).A >= cfg.coverage {
					bits[y*stride+x/8] |= 1 << (x % 8)
				}
			}
		}
		if err := f.SetGlyph(ch, bits, width); err != nil {
			return nil, err
		}
	}
	return f, nil
}
