package font

import (
	"errors"
	"image"
	"image/color"
	"testing"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var _ xfont.Face = gradientFace{}

// gradientFace maps the single rune 'x' to a 2x2 glyph whose diagonal
// is opaque and whose off-diagonal is quarter coverage, for exercising
// the rasterizer threshold.
type gradientFace struct{}

func (gradientFace) Close() error { return nil }

func (gradientFace) Metrics() xfont.Metrics {
	return xfont.Metrics{Height: fixed.I(2), Ascent: fixed.I(2)}
}

func (gradientFace) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (gradientFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	if r != 'x' {
		return 0, false
	}
	return fixed.I(2), true
}

func (gradientFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	if r != 'x' {
		return fixed.Rectangle26_6{}, 0, false
	}
	return fixed.R(0, -2, 2, 0), fixed.I(2), true
}

func (gradientFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	if r != 'x' {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	mask := image.NewAlpha(image.Rect(0, 0, 2, 2))
	mask.SetAlpha(0, 0, color.Alpha{A: 0xff})
	mask.SetAlpha(1, 0, color.Alpha{A: 0x40})
	mask.SetAlpha(0, 1, color.Alpha{A: 0x40})
	mask.SetAlpha(1, 1, color.Alpha{A: 0xff})
	x, y := dot.X.Floor(), dot.Y.Floor()
	return image.Rect(x, y-2, x+2, y), mask, image.Point{}, fixed.I(2), true
}

func TestFromFaceBasicfont(t *testing.T) {
	f, err := FromFace(basicfont.Face7x13)
	if err != nil {
		t.Fatalf("FromFace() error: %v", err)
	}

	if got := f.Height(); got != 13 {
		t.Errorf("Height() = %d, want 13", got)
	}
	if got := f.Baseline(); got != 11 {
		t.Errorf("Baseline() = %d, want 11", got)
	}
	if got := f.MaxWidth(); got != 7 {
		t.Errorf("MaxWidth() = %d, want 7", got)
	}
	if got := f.Len(); got != 95 {
		t.Errorf("Len() = %d, want 95", got)
	}

	bits, w, h := f.Glyph('A')
	if w != 7 || h != 13 || len(bits) != 13 {
		t.Fatalf("Glyph('A') = %d bytes, %dx%d, want 13 bytes, 7x13", len(bits), w, h)
	}
	ink := false
	for _, b := range bits {
		if b != 0 {
			ink = true
			break
		}
	}
	if !ink {
		t.Error("Glyph('A') rasterized blank")
	}

	bits, _, _ = f.Glyph(' ')
	for i, b := range bits {
		if b != 0 {
			t.Errorf("Glyph(' ') row %d = %#02x, want blank", i, b)
		}
	}

	if bits, w, _ := f.Glyph('é'); bits != nil || w != 0 {
		t.Errorf("Glyph('é') = %v, width %d, want unmapped", bits, w)
	}
}

func TestFromFaceCoverage(t *testing.T) {
	tests := []struct {
		name string
		opts []FaceOption
		want []byte
	}{
		{"default keeps opaque diagonal", nil, []byte{0x01, 0x02}},
		{"lowered keeps all ink", []FaceOption{WithCoverage(0x40)}, []byte{0x03, 0x03}},
		{"raised keeps only full alpha", []FaceOption{WithCoverage(0xff)}, []byte{0x01, 0x02}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := FromFace(gradientFace{}, tt.opts...)
			if err != nil {
				t.Fatalf("FromFace() error: %v", err)
			}
			if got := f.Height(); got != 2 {
				t.Fatalf("Height() = %d, want 2", got)
			}
			if got := f.Len(); got != 1 {
				t.Fatalf("Len() = %d, want 1", got)
			}

			bits, w, h := f.Glyph('x')
			if w != 2 || h != 2 {
				t.Fatalf("Glyph('x') dimensions = %dx%d, want 2x2", w, h)
			}
			for i := range tt.want {
				if bits[i] != tt.want[i] {
					t.Errorf("row %d = %#02x, want %#02x", i, bits[i], tt.want[i])
				}
			}
		})
	}
}

func TestFromFaceRuneRange(t *testing.T) {
	f, err := FromFace(basicfont.Face7x13, WithRuneRange('0', '9'))
	if err != nil {
		t.Fatalf("FromFace() error: %v", err)
	}
	if got := f.Len(); got != 10 {
		t.Errorf("Len() = %d, want 10", got)
	}
	if _, w, _ := f.Glyph('5'); w != 7 {
		t.Errorf("Glyph('5') width = %d, want 7", w)
	}
	if _, w, _ := f.Glyph('A'); w != 0 {
		t.Errorf("Glyph('A') width = %d, want 0 outside range", w)
	}
}

func TestFromFaceRejects(t *testing.T) {
	if _, err := FromFace(nil); !errors.Is(err, ErrFontMetrics) {
		t.Errorf("FromFace(nil) error = %v, want ErrFontMetrics", err)
	}
	if _, err := FromFace(basicfont.Face7x13, WithRuneRange('z', 'a')); !errors.Is(err, ErrRuneRange) {
		t.Errorf("inverted range error = %v, want ErrRuneRange", err)
	}
}
