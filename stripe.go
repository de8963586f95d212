package watchgl

import "fmt"

// Stripe exposes a source stream one fixed-height horizontal band at a
// time. The view is the current band; Reset does not rewind but
// advances to the next band, rewinding the source and restarting at
// band zero once the source is exhausted. The final band is shorter
// when the source height is not a multiple of the band height.
//
// Stripes feed scroll engines and memory-constrained blits that want a
// tall image in pieces rather than all at once.
type Stripe struct {
	src       PixelStream
	lines     int
	bandY     int
	height    int
	remaining int
}

// NewStripe creates a stripe view over src with bands of the given
// height in lines. The view starts at band zero. The source must be
// positioned at its start.
func NewStripe(src PixelStream, lines int) (*Stripe, error) {
	if lines <= 0 {
		return nil, fmt.Errorf("%w: stripe height %d", ErrStreamBounds, lines)
	}
	s := &Stripe{src: src, lines: lines}
	s.setBand()
	return s, nil
}

// setBand sizes the view for the band starting at bandY.
func (s *Stripe) setBand() {
	s.height = s.lines
	if max := s.src.Height() - s.bandY; s.height > max {
		s.height = max
	}
	s.remaining = s.height * s.src.Width()
	if r := s.src.Remaining(); s.remaining > r {
		s.remaining = r
	}
}

// Width returns the width of the view in pixels.
func (s *Stripe) Width() int { return s.src.Width() }

// Height returns the height of the current band in pixels.
func (s *Stripe) Height() int { return s.height }

// Band returns the index of the current band.
func (s *Stripe) Band() int { return s.bandY / s.lines }

// Remaining returns the number of pixels of the current band not yet
// consumed.
func (s *Stripe) Remaining() int { return s.remaining }

// Skip advances the cursor by n pixels within the current band.
func (s *Stripe) Skip(n int) {
	if n > s.remaining {
		n = s.remaining
	}
	if n <= 0 {
		return
	}
	s.src.Skip(n)
	s.remaining -= n
}

// Read decodes up to n pixels of the current band into dst at pixel
// offset off.
func (s *Stripe) Read(dst []byte, n, off int) int {
	if n > s.remaining {
		n = s.remaining
	}
	if n <= 0 {
		return 0
	}
	r := s.src.Read(dst, n, off)
	s.remaining -= r
	return r
}

// Reset advances to the next band, discarding whatever is left of the
// current one. After the last band it rewinds the source and restarts
// at band zero.
func (s *Stripe) Reset() {
	if s.remaining > 0 {
		s.src.Skip(s.remaining)
		s.remaining = 0
	}
	s.bandY += s.height
	if s.bandY >= s.src.Height() {
		s.src.Reset()
		s.bandY = 0
	}
	s.setBand()
}

func (s *Stripe) String() string {
	return fmt.Sprintf("Stripe(band=%d, lines=%d, %s)", s.Band(), s.lines, s.src)
}
