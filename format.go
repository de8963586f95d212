package watchgl

// ColorFormat identifies the wire encoding a display expects for each
// pixel. All current formats are 16 bits per pixel; what differs is the
// byte order the panel's controller wants on the serial bus.
type ColorFormat uint8

const (
	// RGB565 is 16-bit RGB565, low byte first.
	RGB565 ColorFormat = iota

	// RGB565Swapped is 16-bit RGB565 with the two bytes exchanged.
	// Some controllers consume the high byte first; pre-swapping at
	// encode time keeps the blit path a plain copy.
	RGB565Swapped

	// colorFormatCount is the number of formats (for internal use).
	colorFormatCount
)

// BytesPerPixel returns the number of bytes each pixel occupies on the wire.
func (f ColorFormat) BytesPerPixel() int {
	return 2
}

// IsValid returns true if the format is a valid known format.
func (f ColorFormat) IsValid() bool {
	return f < colorFormatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f ColorFormat) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// Encode returns the 16-bit wire value for c in this format.
func (f ColorFormat) Encode(c Color) uint16 {
	v := uint16(c)
	if f == RGB565Swapped {
		v = v>>8 | v<<8
	}
	return v
}

// Decode converts a 16-bit wire value in this format back to a Color.
func (f ColorFormat) Decode(v uint16) Color {
	if f == RGB565Swapped {
		v = v>>8 | v<<8
	}
	return Color(v)
}

// PutPixel writes the wire bytes for c at dst[0:2], low byte first.
func (f ColorFormat) PutPixel(dst []byte, c Color) {
	v := f.Encode(c)
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
}

// Pixel reads the wire bytes at src[0:2] back into a Color.
func (f ColorFormat) Pixel(src []byte) Color {
	return f.Decode(uint16(src[0]) | uint16(src[1])<<8)
}

// String returns a string representation of the format.
func (f ColorFormat) String() string {
	switch f {
	case RGB565:
		return "RGB565"
	case RGB565Swapped:
		return "RGB565Swapped"
	default:
		return "Unknown"
	}
}
