package watchgl

// DefaultBackground is the background color a fresh graphics context
// assumes until a screen establishes its own.
const DefaultBackground = Color(0)

// window is the active drawing region: a device-coordinate origin, a
// size, and a vertical scroll shift applied to every y passed in.
// Horizontal shifting is not supported by the scroll hardware, so the
// window carries no x shift.
type window struct {
	x      int
	y      int
	width  int
	height int
	shiftY int
}

// Graphics is the drawing context: it clips every fill, blit, line and
// text call against the active window and forwards the survivors to the
// display sink as absolute device coordinates.
//
// The context owns preallocated scratch state (two crop decorators for
// clipped blits, the line-coalescing batch, one glyph decoder), so a
// single Graphics supports one drawing pass at a time. See the package
// documentation for the concurrency model.
type Graphics struct {
	display Display
	spec    *DisplaySpec

	win window

	bgColor Color

	// Text state. The glyph decoder's background palette entry tracks
	// the screen background lazily: a component switch re-syncs it
	// only when SetTextBGColor diverged or the background changed.
	text           *glyphRenderer
	textBG         Color
	textBGModified bool

	// Blit scratch: reused crop decorators, re-pointed per call.
	cropV *VerticalCrop
	cropH *HorizontalCrop

	// Line scratch: the coalescing batch, flushed as one sequence
	// fill. seqX/seqY anchor the batch, prevX/prevY track the last
	// rectangle's origin for delta encoding.
	seq          [lineBatchCap]RectDelta
	seqN         int
	seqX, seqY   int
	prevX, prevY int
}

// GraphicsOption configures a Graphics during creation.
type GraphicsOption func(*graphicsConfig)

// graphicsConfig holds optional configuration for Graphics creation.
type graphicsConfig struct {
	font FontSource
}

// WithFontSource sets the glyph source used by the text operations.
// Without one, text calls draw nothing.
func WithFontSource(f FontSource) GraphicsOption {
	return func(c *graphicsConfig) {
		c.font = f
	}
}

// NewGraphics creates a drawing context over the given display. The
// window starts covering the whole display with no scroll shift.
func NewGraphics(display Display, opts ...GraphicsOption) *Graphics {
	var cfg graphicsConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	spec := display.Spec()
	g := &Graphics{
		display:        display,
		spec:           spec,
		bgColor:        DefaultBackground,
		textBG:         DefaultBackground,
		textBGModified: true,
		cropV:          NewVerticalCrop(NewNullStream(1, 1), 0, 1),
		cropH:          NewHorizontalCrop(NewNullStream(1, 1), 0, 1),
	}
	g.win = window{width: spec.Width, height: spec.Height}
	if cfg.font != nil {
		g.SetFontSource(cfg.font)
	}
	return g
}

// Display returns the sink the context draws into.
func (g *Graphics) Display() Display { return g.display }

// Spec returns the display spec of the sink.
func (g *Graphics) Spec() *DisplaySpec { return g.spec }

// Width returns the width of the active window.
func (g *Graphics) Width() int { return g.win.width }

// Height returns the height of the active window.
func (g *Graphics) Height() int { return g.win.height }

// Background returns the background color of the current screen.
func (g *Graphics) Background() Color { return g.bgColor }

// beginScreen establishes a screen's context: its background color and
// a window covering the whole display.
func (g *Graphics) beginScreen(s *Screen) {
	g.bgColor = s.bg
	g.SetWindow(0, 0, g.spec.Width, g.spec.Height, 0)
}

// setComponentWindow points the window at a component's region.
func (g *Graphics) setComponentWindow(c *Component) {
	g.SetWindow(c.x, c.y, c.width, c.height, 0)
}

// SetWindow sets the active drawing window: origin and size in device
// coordinates, plus a vertical shift added to every drawn y. Draw
// callbacks normally never call this, the screen does; it is exported
// for rendering outside the component system.
func (g *Graphics) SetWindow(x, y, width, height, shiftY int) {
	g.win = window{x: x, y: y, width: width, height: height, shiftY: shiftY}
	if g.textBG != g.bgColor || g.textBGModified {
		g.textBG = g.bgColor
		g.textBGModified = false
		if g.text != nil {
			g.text.setBG(g.bgColor)
		}
	}
}

// SetTextBGColor overrides the background the text renderer paints
// behind glyphs. The override lasts until the window switches to the
// next component, which resets it to the screen background.
func (g *Graphics) SetTextBGColor(c Color) {
	if g.textBG == c {
		return
	}
	g.textBG = c
	g.textBGModified = true
	if g.text != nil {
		g.text.setBG(c)
	}
}

// Fill fills a rectangle in window coordinates, clipped to the window.
// A rectangle clipped to nothing is dropped silently.
func (g *Graphics) Fill(color Color, x, y, width, height int) {
	y += g.win.shiftY
	if y < 0 {
		height += y
		y = 0
	}
	if x < 0 {
		width += x
		x = 0
	}
	if max := g.win.width - x; width > max {
		width = max
	}
	if max := g.win.height - y; height > max {
		height = max
	}
	if width <= 0 || height <= 0 {
		return
	}
	g.display.FillRect(color, g.win.x+x, g.win.y+y, width, height)
}

// Blit copies a stream's view to (x, y) in window coordinates. A view
// reaching past the window is narrowed with the context's reusable crop
// decorators before it is forwarded, and a view clipped to nothing is
// dropped with the stream untouched. The stream is fully consumed (and
// reset, if it was cropped) by the time Blit returns.
func (g *Graphics) Blit(src PixelStream, x, y int) {
	y += g.win.shiftY
	width := src.Width()
	height := src.Height()

	skipLines := 0
	if y < 0 {
		skipLines = -y
	}
	reduceLines := skipLines
	if over := y + height - g.win.height; over > 0 {
		reduceLines += over
	}

	skipCols := 0
	if x < 0 {
		skipCols = -x
	}
	reduceCols := skipCols
	if over := x + width - g.win.width; over > 0 {
		reduceCols += over
	}

	if reduceLines == 0 && reduceCols == 0 {
		g.display.BlitStream(src, g.win.x+x, g.win.y+y)
		return
	}
	if height-reduceLines <= 0 || width-reduceCols <= 0 {
		return
	}

	cropped := src
	if reduceLines > 0 {
		height -= reduceLines
		g.cropV.Retarget(cropped, skipLines, height)
		cropped = g.cropV
		y += skipLines
	}
	if reduceCols > 0 {
		width -= reduceCols
		g.cropH.Retarget(cropped, skipCols, width)
		cropped = g.cropH
		x += skipCols
	}
	g.display.BlitStream(cropped, g.win.x+x, g.win.y+y)
	cropped.Reset()
}

// VScroll shifts the display's visible window vertically: positive
// moves it down, negative up. Directions the spec does not permit are
// dropped with a warning.
func (g *Graphics) VScroll(pixels int) {
	if pixels == 0 {
		return
	}
	d := DirectionUp
	if pixels > 0 {
		d = DirectionDown
	}
	if !g.spec.CanScroll(d) {
		Logger().Warn("watchgl: scroll direction not permitted", "direction", d.String())
		return
	}
	g.display.VScroll(pixels)
}
