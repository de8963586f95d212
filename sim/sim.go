// Package sim drives a terminal as a watchgl panel through tcell.
// Drawing lands in an in-memory framebuffer; Flush presents it as
// half-block cells, two pixels per cell, centered in the terminal.
// Useful for developing watch faces without hardware on the desk.
package sim

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/watchgl"
)

// ErrSimDisplay is returned for a display that cannot be constructed.
var ErrSimDisplay = errors.New("sim: invalid display configuration")

// halfBlock paints the upper pixel of a cell with the foreground color
// and leaves the lower pixel to the cell background.
const halfBlock = '▀'

// Display implements watchgl.Display over a terminal. The framebuffer
// holds pixel truth; the terminal view is derived from it on Flush, so
// a resize never loses content.
type Display struct {
	fb        *watchgl.Framebuffer
	screen    tcell.Screen
	ownScreen bool
}

// Open opens a display over the controlling terminal. Close restores
// the terminal.
func Open(spec *watchgl.DisplaySpec) (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	d, err := New(spec, screen)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	d.ownScreen = true
	return d, nil
}

// New presents over a screen the caller has already initialized and
// keeps owning, such as a tcell.SimulationScreen in tests.
func New(spec *watchgl.DisplaySpec, screen tcell.Screen) (*Display, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: nil spec", ErrSimDisplay)
	}
	if screen == nil {
		return nil, fmt.Errorf("%w: nil screen", ErrSimDisplay)
	}
	return &Display{
		fb:     watchgl.NewFramebuffer(spec),
		screen: screen,
	}, nil
}

// Spec describes the simulated panel.
func (d *Display) Spec() *watchgl.DisplaySpec { return d.fb.Spec() }

// Framebuffer returns the pixel store behind the terminal view.
func (d *Display) Framebuffer() *watchgl.Framebuffer { return d.fb }

// Screen returns the underlying tcell screen, for event polling.
func (d *Display) Screen() tcell.Screen { return d.screen }

// FillRect fills a width x height rectangle at (x, y) with c.
func (d *Display) FillRect(c watchgl.Color, x, y, width, height int) {
	d.fb.FillRect(c, x, y, width, height)
}

// FillRectSeq fills a sequence of rectangles with c, each delta
// relative to the running origin starting at (x, y).
func (d *Display) FillRectSeq(c watchgl.Color, x, y int, deltas []watchgl.RectDelta) {
	d.fb.FillRectSeq(c, x, y, deltas)
}

// BlitStream copies the stream's view to (x, y), row-major.
func (d *Display) BlitStream(src watchgl.PixelStream, x, y int) {
	d.fb.BlitStream(src, x, y)
}

// VScroll shifts the visible window vertically by pixels.
func (d *Display) VScroll(pixels int) {
	d.fb.VScroll(pixels)
}

// origin returns the cell of the panel's top left corner, recomputed
// from the terminal size so the panel stays centered.
func (d *Display) origin() (int, int) {
	tw, th := d.screen.Size()
	spec := d.fb.Spec()
	ox := (tw - spec.Width) / 2
	oy := (th - (spec.Height+1)/2) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}
	return ox, oy
}

// Flush repaints the terminal from the framebuffer and shows it.
func (d *Display) Flush() {
	d.screen.Clear()
	spec := d.fb.Spec()
	ox, oy := d.origin()
	for y := 0; y < spec.Height; y += 2 {
		for x := 0; x < spec.Width; x++ {
			upper := cellColor(d.fb.Pixel(x, y))
			lower := cellColor(watchgl.Black)
			if y+1 < spec.Height {
				lower = cellColor(d.fb.Pixel(x, y+1))
			}
			style := tcell.StyleDefault.Foreground(upper).Background(lower)
			d.screen.SetContent(ox+x, oy+y/2, halfBlock, nil, style)
		}
	}
	d.screen.Show()
}

// Sync forces a full terminal repaint. Call it on resize events.
func (d *Display) Sync() {
	d.Flush()
	d.screen.Sync()
}

// Close restores the terminal if the display opened it. Displays built
// over a caller's screen leave the screen to the caller.
func (d *Display) Close() {
	if d.ownScreen {
		d.screen.Fini()
	}
}

func cellColor(c watchgl.Color) tcell.Color {
	r, g, b := c.RGBA8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
