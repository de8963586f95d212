// Package monoimg prepares 1-bit image assets for watchgl. Images use
// the packed layout MonoStream decodes: row-major, least significant
// bit leftmost, each row padded to a byte boundary. FromImage converts
// arbitrary images by thresholding or dithering, Encode and Decode
// move assets through a compact compressed container, and Stream hands
// an image to the drawing pipeline.
package monoimg

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/watchgl"
)

// Sentinel errors for image conversion and the asset container.
var (
	// ErrImageBounds is returned for dimensions no 1-bit asset can have.
	ErrImageBounds = errors.New("monoimg: invalid image bounds")

	// ErrContainer is returned for data that is not a valid asset
	// container.
	ErrContainer = errors.New("monoimg: invalid container")
)

// maxSide bounds asset dimensions to what the container header can
// carry.
const maxSide = 0xffff

// Image is a 1-bit raster. The zero value is not usable; construct
// with New, FromImage or Decode.
type Image struct {
	width  int
	height int
	stride int
	bits   []byte
}

// New returns a cleared width by height image.
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 || width > maxSide || height > maxSide {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageBounds, width, height)
	}
	stride := (width + 7) / 8
	return &Image{
		width:  width,
		height: height,
		stride: stride,
		bits:   make([]byte, stride*height),
	}, nil
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.height }

// Bits returns the packed bit plane. The slice is the image's backing
// store, not a copy.
func (m *Image) Bits() []byte { return m.bits }

// Set turns the pixel at (x, y) on or off. Out of bounds is a no-op.
func (m *Image) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	i := y*m.stride + x/8
	bit := byte(1) << (x % 8)
	if on {
		m.bits[i] |= bit
	} else {
		m.bits[i] &^= bit
	}
}

// At reports whether the pixel at (x, y) is on. Out of bounds reads
// off.
func (m *Image) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.bits[y*m.stride+x/8]&(1<<(x%8)) != 0
}

// Stream returns a fresh decoder over the image's bit plane, ready for
// Graphics.Blit. The stream shares the image's backing store.
func (m *Image) Stream(format watchgl.ColorFormat) (*watchgl.MonoStream, error) {
	return watchgl.NewMonoStream(format, m.bits, m.width, m.height)
}

// DefaultThreshold is the gray level at which FromImage turns a pixel
// on.
const DefaultThreshold uint8 = 0x80

// Option adjusts how FromImage converts a source image.
type Option func(*config)

type config struct {
	threshold uint8
	dither    bool
	fit       bool
	fitW      int
	fitH      int
	scaler    xdraw.Scaler
}

// WithThreshold sets the gray level at or above which a pixel turns
// on.
func WithThreshold(level uint8) Option {
	return func(cfg *config) {
		cfg.threshold = level
	}
}

// WithDither converts through Floyd-Steinberg error diffusion instead
// of a fixed threshold. Mid-tones come out as pixel patterns that read
// as gray from a distance.
func WithDither() Option {
	return func(cfg *config) {
		cfg.dither = true
	}
}

// WithFit scales the source to the largest size that fits within
// width by height, keeping its proportions.
func WithFit(width, height int) Option {
	return func(cfg *config) {
		cfg.fit = true
		cfg.fitW, cfg.fitH = width, height
	}
}

// WithScaler sets the interpolator WithFit scales through. The default
// is CatmullRom.
func WithScaler(s xdraw.Scaler) Option {
	return func(cfg *config) {
		cfg.scaler = s
	}
}

// FromImage converts src to a 1-bit image. Pixels at or above the
// threshold gray level turn on; WithDither trades the hard cutoff for
// error diffusion.
func FromImage(src image.Image, opts ...Option) (*Image, error) {
	cfg := config{threshold: DefaultThreshold, scaler: xdraw.CatmullRom}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.fit {
		if cfg.fitW <= 0 || cfg.fitH <= 0 {
			return nil, fmt.Errorf("%w: fit box %dx%d", ErrImageBounds, cfg.fitW, cfg.fitH)
		}
		src = fitScale(src, cfg)
	}

	b := src.Bounds()
	m, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	if cfg.dither {
		pal := color.Palette{color.Black, color.White}
		dst := image.NewPaletted(image.Rect(0, 0, m.width, m.height), pal)
		draw.FloydSteinberg.Draw(dst, dst.Bounds(), src, b.Min)
		for y := 0; y < m.height; y++ {
			for x := 0; x < m.width; x++ {
				m.Set(x, y, dst.ColorIndexAt(x, y) == 1)
			}
		}
		return m, nil
	}

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			g := color.GrayModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			m.Set(x, y, g.Y >= cfg.threshold)
		}
	}
	return m, nil
}

// fitScale resizes src to the largest size inside the fit box that
// keeps the source proportions.
func fitScale(src image.Image, cfg config) image.Image {
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	if sw <= 0 || sh <= 0 {
		return src
	}

	w := cfg.fitW
	h := sh * w / sw
	if h > cfg.fitH {
		h = cfg.fitH
		w = sw * h / sh
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == sw && h == sh {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	cfg.scaler.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst
}
