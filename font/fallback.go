package font

import "github.com/gogpu/watchgl"

// fallbackPlane is the one 16x16 plane every printable character
// shares: a bar down the left edge and one down the right, marking the
// cell a real glyph would fill.
var fallbackPlane = []byte{
	0x01, 0x80, 0x01, 0x80, 0x01, 0x80, 0x01, 0x80,
	0x01, 0x80, 0x01, 0x80, 0x01, 0x80, 0x01, 0x80,
	0x01, 0x80, 0x01, 0x80, 0x01, 0x80, 0x01, 0x80,
	0x01, 0x80, 0x01, 0x80, 0x01, 0x80, 0x01, 0x80,
}

type fallbackFace struct{}

// Fallback returns the built-in placeholder face: a 16 px cell for
// every ASCII character from space through tilde, nothing elsewhere.
// It keeps text layout working before a real font is loaded.
func Fallback() watchgl.FontSource {
	return fallbackFace{}
}

func (fallbackFace) Glyph(ch rune) ([]byte, int, int) {
	if ch < ' ' || ch > '~' {
		return nil, 0, 0
	}
	return fallbackPlane, 16, 16
}

func (fallbackFace) Height() int { return 16 }

func (fallbackFace) Baseline() int { return 16 }

func (fallbackFace) MaxWidth() int { return 16 }
