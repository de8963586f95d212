package watchgl

import "fmt"

// monoPalette is the palette size of a MonoStream: one background and
// one foreground entry.
const monoPalette = 2

// MonoStream decodes a packed 1-bit-per-pixel plane into display pixels
// through a two-color palette. Bits are consumed LSB-first within each
// byte; rows start on a byte boundary, so a row occupies
// ceil(width/8) bytes regardless of width.
//
// The palette entries are stored pre-encoded for the display's wire
// format, which keeps the per-pixel loop to a mask, a lookup and two
// byte stores. Entry 0 renders a cleared bit (background), entry 1 a
// set bit (foreground).
type MonoStream struct {
	format  ColorFormat
	palette [monoPalette]uint16
	bits    []byte

	width  int
	height int
	total  int

	remaining int
	cbyte     int
	index     int
	remInByte int
	remInLine int
}

// NewMonoStream creates a decoder for a 1-bit plane of the given
// dimensions, producing pixels in the given wire format. The palette
// starts as black background, DefaultTextColor foreground.
func NewMonoStream(format ColorFormat, bits []byte, width, height int) (*MonoStream, error) {
	s := &MonoStream{format: format}
	s.palette[0] = format.Encode(Black)
	s.palette[1] = format.Encode(DefaultTextColor)
	if err := s.Retarget(bits, width, height); err != nil {
		return nil, err
	}
	return s, nil
}

// Retarget re-points the decoder at a new bit plane and rewinds. The
// palette is kept. This is how one decoder serves many glyphs or frames
// without allocating.
func (s *MonoStream) Retarget(bits []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: mono image %dx%d", ErrStreamBounds, width, height)
	}
	if need := (width + 7) / 8 * height; len(bits) < need {
		return fmt.Errorf("%w: bit plane %d bytes, need %d", ErrStreamBounds, len(bits), need)
	}
	s.bits = bits
	s.width = width
	s.height = height
	s.total = width * height
	s.Reset()
	return nil
}

// SetColor assigns palette entry n. Entry 0 is the background color,
// entry 1 the foreground. An index outside the palette panics.
func (s *MonoStream) SetColor(n int, c Color) {
	if n < 0 || n >= monoPalette {
		panic(fmt.Sprintf("watchgl: palette index %d out of range", n))
	}
	s.palette[n] = s.format.Encode(c)
}

// Format returns the wire format the stream encodes into.
func (s *MonoStream) Format() ColorFormat { return s.format }

// Width returns the width of the view in pixels.
func (s *MonoStream) Width() int { return s.width }

// Height returns the height of the view in pixels.
func (s *MonoStream) Height() int { return s.height }

// Remaining returns the number of pixels not yet consumed.
func (s *MonoStream) Remaining() int { return s.remaining }

// Reset rewinds the stream to the first pixel of the plane.
func (s *MonoStream) Reset() {
	s.remaining = s.total
	s.cbyte = int(s.bits[0])
	s.index = 0
	s.remInLine = s.width
	s.remInByte = 8
	if s.remInLine < 8 {
		s.remInByte = s.remInLine
	}
}

// advance moves the bit cursor past one pixel. The caller has already
// decremented remaining; crossing into the next byte only happens while
// pixels remain, so the cursor never reads past the plane.
func (s *MonoStream) advance() bool {
	s.cbyte >>= 1
	s.remInByte--
	s.remInLine--
	if s.remaining <= 0 {
		return false
	}
	if s.remInByte == 0 {
		s.remInByte = 8
		if s.remInLine == 0 {
			s.remInLine = s.width
		}
		if s.remInLine < 8 {
			s.remInByte = s.remInLine
		}
		s.index++
		s.cbyte = int(s.bits[s.index])
	}
	return true
}

// Skip advances the cursor by n pixels without producing output.
func (s *MonoStream) Skip(n int) {
	if n > s.remaining {
		n = s.remaining
	}
	if n <= 0 {
		return
	}
	for ; n > 0; n-- {
		s.remaining--
		if !s.advance() {
			break
		}
	}
}

// Read decodes up to n pixels into dst at pixel offset off, two bytes
// per pixel, low byte first.
func (s *MonoStream) Read(dst []byte, n, off int) int {
	if n > s.remaining {
		n = s.remaining
	}
	if n <= 0 {
		return 0
	}
	off <<= 1
	for i := n; i > 0; i-- {
		color := s.palette[s.cbyte&1]
		dst[off] = byte(color)
		dst[off+1] = byte(color >> 8)
		off += 2
		s.remaining--
		if !s.advance() {
			break
		}
	}
	return n
}

func (s *MonoStream) String() string {
	return fmt.Sprintf("MonoStream(%dx%d, %d remaining)", s.width, s.height, s.remaining)
}
