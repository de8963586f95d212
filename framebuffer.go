package watchgl

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Framebuffer is the reference Display: an in-memory panel storing
// pixels exactly as they would arrive on the wire, two bytes each in
// the spec's format. It backs the sim display, golden-image tests and
// any headless rendering.
//
// Unlike a real panel it is also an image.Image, so rendered frames
// feed straight into the standard image pipeline.
type Framebuffer struct {
	spec *DisplaySpec
	data []byte
	row  []byte
}

// NewFramebuffer creates a framebuffer for the given panel spec,
// initially all zero bytes (black in both supported formats).
func NewFramebuffer(spec *DisplaySpec) *Framebuffer {
	return &Framebuffer{
		spec: spec,
		data: make([]byte, spec.Format.RowBytes(spec.Width)*spec.Height),
		row:  make([]byte, spec.Format.RowBytes(spec.Width)),
	}
}

// Spec describes the panel this display drives.
func (fb *Framebuffer) Spec() *DisplaySpec { return fb.spec }

// Data returns the raw wire-format pixel data.
func (fb *Framebuffer) Data() []byte { return fb.data }

// Pixel returns the color stored at (x, y), black outside the panel.
func (fb *Framebuffer) Pixel(x, y int) Color {
	if x < 0 || x >= fb.spec.Width || y < 0 || y >= fb.spec.Height {
		return Black
	}
	i := (y*fb.spec.Width + x) * 2
	return fb.spec.Format.Pixel(fb.data[i:])
}

// Clear fills the entire panel with c.
func (fb *Framebuffer) Clear(c Color) {
	fb.FillRect(c, 0, 0, fb.spec.Width, fb.spec.Height)
}

// FillRect fills a rectangle with c. Geometry reaching outside the
// panel is clipped; the engine never sends any, but the sink stays
// memory-safe for direct callers.
func (fb *Framebuffer) FillRect(c Color, x, y, width, height int) {
	if x < 0 {
		width += x
		x = 0
	}
	if y < 0 {
		height += y
		y = 0
	}
	if max := fb.spec.Width - x; width > max {
		width = max
	}
	if max := fb.spec.Height - y; height > max {
		height = max
	}
	if width <= 0 || height <= 0 {
		return
	}
	var px [2]byte
	fb.spec.Format.PutPixel(px[:], c)
	for row := y; row < y+height; row++ {
		i := (row*fb.spec.Width + x) * 2
		for col := 0; col < width; col++ {
			fb.data[i] = px[0]
			fb.data[i+1] = px[1]
			i += 2
		}
	}
}

// FillRectSeq applies a sequence of rectangles, each delta relative to
// the running origin starting at (x, y).
func (fb *Framebuffer) FillRectSeq(c Color, x, y int, deltas []RectDelta) {
	for _, d := range deltas {
		x += int(d.DX)
		y += int(d.DY)
		fb.FillRect(c, x, y, int(d.W), int(d.H))
	}
}

// BlitStream copies the stream's view to (x, y), consuming it fully.
// Rows are decoded through a reusable row buffer; the visible part of
// each row lands in the panel, rows outside are decoded and discarded.
func (fb *Framebuffer) BlitStream(src PixelStream, x, y int) {
	width := src.Width()
	height := src.Height()
	if width <= 0 || height <= 0 {
		return
	}
	if need := width * 2; len(fb.row) < need {
		fb.row = make([]byte, need)
	}

	srcX := 0
	dstX := x
	cols := width
	if dstX < 0 {
		srcX = -dstX
		cols -= srcX
		dstX = 0
	}
	if max := fb.spec.Width - dstX; cols > max {
		cols = max
	}

	for row := 0; row < height; row++ {
		n := src.Read(fb.row, width, 0)
		dstY := y + row
		if cols > 0 && dstY >= 0 && dstY < fb.spec.Height {
			vis := cols
			if vis > n-srcX {
				vis = n - srcX
			}
			if vis > 0 {
				i := (dstY*fb.spec.Width + dstX) * 2
				copy(fb.data[i:i+vis*2], fb.row[srcX*2:])
			}
		}
		if n < width {
			return
		}
	}
}

// VScroll shifts the visible content: positive pixels move the visible
// window down, so content appears to move up, wrapping at the panel
// edge the way panel scroll hardware wraps its display RAM.
func (fb *Framebuffer) VScroll(pixels int) {
	h := fb.spec.Height
	if h == 0 {
		return
	}
	pixels %= h
	if pixels < 0 {
		pixels += h
	}
	if pixels == 0 {
		return
	}
	rowBytes := fb.spec.Format.RowBytes(fb.spec.Width)
	next := make([]byte, len(fb.data))
	for y := 0; y < h; y++ {
		srcY := (y + pixels) % h
		copy(next[y*rowBytes:(y+1)*rowBytes], fb.data[srcY*rowBytes:(srcY+1)*rowBytes])
	}
	fb.data = next
}

// ToImage converts the framebuffer to an image.NRGBA.
func (fb *Framebuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.spec.Width, fb.spec.Height))
	for y := 0; y < fb.spec.Height; y++ {
		for x := 0; x < fb.spec.Width; x++ {
			r, g, b := fb.Pixel(x, y).RGBA8()
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 255
		}
	}
	return img
}

// SavePNG saves the framebuffer to a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, fb.ToImage())
}

// At implements the image.Image interface.
func (fb *Framebuffer) At(x, y int) color.Color {
	return fb.Pixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.spec.Width, fb.spec.Height)
}

// ColorModel implements the image.Image interface.
func (fb *Framebuffer) ColorModel() color.Model {
	return color.NRGBAModel
}
