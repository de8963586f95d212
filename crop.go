package watchgl

import "fmt"

// VerticalCrop narrows a source stream to the rows [skip, skip+height).
// Construction consumes the skipped rows from the source immediately, so
// the source must be positioned at its start (or the caller accepts the
// crop applying from wherever the source currently is).
//
// A VerticalCrop is reusable: Retarget points it at a new source without
// allocating, which is how the drawing context clips blits per call.
type VerticalCrop struct {
	src        PixelStream
	width      int
	height     int
	skipLines  int
	skipPixels int
	total      int
	remaining  int
}

// NewVerticalCrop creates a crop of src keeping height rows starting at
// row skip. A negative skip is treated as zero; a height extending past
// the source is truncated to fit, possibly to an empty view.
func NewVerticalCrop(src PixelStream, skip, height int) *VerticalCrop {
	c := &VerticalCrop{}
	c.Retarget(src, skip, height)
	return c
}

// Retarget re-points the crop at src with a new row range, consuming the
// skipped rows. Any previous source is abandoned as-is.
func (c *VerticalCrop) Retarget(src PixelStream, skip, height int) {
	if skip < 0 {
		skip = 0
	}
	if max := src.Height() - skip; height > max {
		height = max
	}
	if height < 0 {
		height = 0
	}
	c.src = src
	c.width = src.Width()
	c.height = height
	c.skipLines = skip
	c.skipPixels = skip * c.width
	c.total = height * c.width
	c.prime()
}

// prime consumes the leading skip and establishes the view's remaining
// count, bounded by what the source can actually supply.
func (c *VerticalCrop) prime() {
	c.src.Skip(c.skipPixels)
	c.remaining = c.total
	if r := c.src.Remaining(); c.remaining > r {
		c.remaining = r
	}
}

// Width returns the width of the view in pixels.
func (c *VerticalCrop) Width() int { return c.width }

// Height returns the height of the view in pixels.
func (c *VerticalCrop) Height() int { return c.height }

// Remaining returns the number of pixels not yet consumed.
func (c *VerticalCrop) Remaining() int { return c.remaining }

// Skip advances the cursor by n pixels.
func (c *VerticalCrop) Skip(n int) {
	if n > c.remaining {
		n = c.remaining
	}
	if n <= 0 {
		return
	}
	c.src.Skip(n)
	c.remaining -= n
}

// Read decodes up to n pixels into dst at pixel offset off.
func (c *VerticalCrop) Read(dst []byte, n, off int) int {
	if n > c.remaining {
		n = c.remaining
	}
	if n <= 0 {
		return 0
	}
	r := c.src.Read(dst, n, off)
	c.remaining -= r
	return r
}

// Reset rewinds the source and re-applies the leading skip.
func (c *VerticalCrop) Reset() {
	c.src.Reset()
	c.prime()
}

func (c *VerticalCrop) String() string {
	return fmt.Sprintf("VerticalCrop(skip=%d, height=%d, %s)", c.skipLines, c.height, c.src)
}

// HorizontalCrop narrows a source stream to the columns
// [skip, skip+width) of every row. Unlike the vertical crop it cannot
// consume its cut pixels up front: every row boundary costs an inter-row
// skip of (sourceWidth - width) source pixels, applied as Skip and Read
// walk across rows.
type HorizontalCrop struct {
	src       PixelStream
	width     int
	height    int
	skipStart int
	interSkip int
	total     int
	remaining int
	remInLine int
}

// NewHorizontalCrop creates a crop of src keeping width columns starting
// at column skip. A negative skip is treated as zero; a width extending
// past the source is truncated to fit, possibly to an empty view.
func NewHorizontalCrop(src PixelStream, skip, width int) *HorizontalCrop {
	c := &HorizontalCrop{}
	c.Retarget(src, skip, width)
	return c
}

// Retarget re-points the crop at src with a new column range, consuming
// the first row's leading skip. Any previous source is abandoned as-is.
func (c *HorizontalCrop) Retarget(src PixelStream, skip, width int) {
	if skip < 0 {
		skip = 0
	}
	if max := src.Width() - skip; width > max {
		width = max
	}
	if width < 0 {
		width = 0
	}
	c.src = src
	c.width = width
	c.height = src.Height()
	c.skipStart = skip
	c.interSkip = src.Width() - width
	c.total = width * c.height
	c.prime()
}

// prime consumes the first row's leading skip and establishes the view's
// remaining count, bounded by what the source can supply through the
// crop's row walk.
func (c *HorizontalCrop) prime() {
	c.src.Skip(c.skipStart)
	c.remaining = c.total
	c.remInLine = c.width
	if m := c.maxSupply(); c.remaining > m {
		c.remaining = m
	}
}

// maxSupply computes how many cropped pixels the source's remaining
// supply can still yield, accounting for the inter-row skips.
func (c *HorizontalCrop) maxSupply() int {
	if c.width <= 0 {
		return 0
	}
	avail := c.src.Remaining()
	srcWidth := c.width + c.interSkip
	full := (avail + c.interSkip) / srcWidth
	partial := avail - full*srcWidth
	if partial < 0 {
		partial = 0
	}
	if partial > c.width {
		partial = c.width
	}
	return full*c.width + partial
}

// Width returns the width of the view in pixels.
func (c *HorizontalCrop) Width() int { return c.width }

// Height returns the height of the view in pixels.
func (c *HorizontalCrop) Height() int { return c.height }

// Remaining returns the number of pixels not yet consumed.
func (c *HorizontalCrop) Remaining() int { return c.remaining }

// Skip advances the cursor by n pixels, crossing row boundaries as
// needed. The source skips are accumulated and issued as one call.
func (c *HorizontalCrop) Skip(n int) {
	if n > c.remaining {
		n = c.remaining
	}
	if n <= 0 {
		return
	}
	total := 0
	for n > 0 {
		if n >= c.remInLine {
			total += c.remInLine + c.interSkip
			n -= c.remInLine
			c.remaining -= c.remInLine
			c.remInLine = c.width
		} else {
			total += n
			c.remInLine -= n
			c.remaining -= n
			n = 0
		}
	}
	c.src.Skip(total)
}

// Read decodes up to n pixels into dst at pixel offset off, skipping the
// cut columns whenever the walk crosses a row boundary.
func (c *HorizontalCrop) Read(dst []byte, n, off int) int {
	if n > c.remaining {
		n = c.remaining
	}
	if n <= 0 {
		return 0
	}
	read := 0
	for n > 0 {
		if n >= c.remInLine {
			r := c.src.Read(dst, c.remInLine, off+read)
			read += r
			n -= c.remInLine
			c.src.Skip(c.interSkip)
			c.remaining -= c.remInLine
			c.remInLine = c.width
		} else {
			r := c.src.Read(dst, n, off+read)
			read += r
			c.remInLine -= n
			c.remaining -= n
			n = 0
		}
	}
	return read
}

// Reset rewinds the source and re-applies the first row's leading skip.
func (c *HorizontalCrop) Reset() {
	c.src.Reset()
	c.prime()
}

func (c *HorizontalCrop) String() string {
	return fmt.Sprintf("HorizontalCrop(skip=%d, width=%d, %s)", c.skipStart, c.width, c.src)
}
