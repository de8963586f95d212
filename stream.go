package watchgl

import "fmt"

// PixelStream is a forward-only cursor over encoded pixel data, read in
// row-major order. Streams decode to the display's wire format (two
// bytes per pixel), so a blit is a bounded copy from stream to sink.
//
// The contract every implementation and decorator honors:
//
//   - Width and Height describe the current view, which decorators may
//     shrink. The view is fixed between Resets.
//   - Skip and Read move the cursor forward only. Both clamp to the
//     pixels remaining: reading past the end returns short, it does not
//     fail. A short read means the stream is exhausted.
//   - Remaining never exceeds what the underlying source can still
//     supply.
//   - Reset rewinds to the start of the view. Decorators reset their
//     source and re-apply their own offsets.
//
// Streams are single-owner: exactly one consumer advances a stream at a
// time, and a consumer that takes a stream mid-frame (a blit taking a
// glyph stream, a crop wrapping an image) either consumes it fully or
// resets it before handing it back.
type PixelStream interface {
	// Width returns the width of the view in pixels.
	Width() int

	// Height returns the height of the view in pixels.
	Height() int

	// Remaining returns the number of pixels not yet consumed.
	Remaining() int

	// Skip advances the cursor by n pixels without producing output.
	// Skipping past the end clamps to the end.
	Skip(n int)

	// Read decodes up to n pixels into dst starting at pixel offset
	// off (byte offset 2*off), two bytes per pixel, and returns the
	// number of pixels produced. A return smaller than n means the
	// stream is exhausted.
	Read(dst []byte, n, off int) int

	// Reset rewinds the stream to the start of its view.
	Reset()

	// String describes the stream and its position, for diagnostics.
	String() string
}

// NullStream is a PixelStream that produces no bytes: reads advance the
// cursor and report progress but leave dst untouched. It stands in
// wherever a stream slot must be occupied before a real source is
// available, and it measures consumption in tests.
type NullStream struct {
	width     int
	height    int
	remaining int
}

// NewNullStream creates a NullStream with the given view dimensions.
// Non-positive dimensions yield an empty, permanently exhausted stream.
func NewNullStream(width, height int) *NullStream {
	s := &NullStream{}
	s.Retarget(width, height)
	return s
}

// Retarget resizes the view and rewinds.
func (s *NullStream) Retarget(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.width = width
	s.height = height
	s.remaining = width * height
}

// Width returns the width of the view in pixels.
func (s *NullStream) Width() int { return s.width }

// Height returns the height of the view in pixels.
func (s *NullStream) Height() int { return s.height }

// Remaining returns the number of pixels not yet consumed.
func (s *NullStream) Remaining() int { return s.remaining }

// Skip advances the cursor by n pixels.
func (s *NullStream) Skip(n int) {
	if n > s.remaining {
		n = s.remaining
	}
	if n > 0 {
		s.remaining -= n
	}
}

// Read consumes up to n pixels without writing to dst.
func (s *NullStream) Read(dst []byte, n, off int) int {
	if n > s.remaining {
		n = s.remaining
	}
	if n < 0 {
		n = 0
	}
	s.remaining -= n
	return n
}

// Reset rewinds the stream to the start of its view.
func (s *NullStream) Reset() {
	s.remaining = s.width * s.height
}

func (s *NullStream) String() string {
	return fmt.Sprintf("NullStream(%dx%d, %d remaining)", s.width, s.height, s.remaining)
}
