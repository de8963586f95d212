package watchgl

import "fmt"

// Tile geometry. Screens track damage per 16x16 tile, and the tracking
// bitfields fix the tile grid at 16 tiles per dimension.
const (
	// TileSize is the width and height of one damage-tracking tile.
	TileSize = 16

	tileShift      = 4
	maxTilesPerDim = 16

	// MaxScreenWidth is the widest display the engine can describe.
	MaxScreenWidth = TileSize * maxTilesPerDim

	// MaxScreenHeight is the tallest display the engine can describe.
	MaxScreenHeight = TileSize * maxTilesPerDim

	// MaxComponents is the most components a single screen can hold.
	MaxComponents = 127
)

// Vertical scroll geometry. The scroll engine moves the panel's visible
// window in whole stripes; an area smaller than two stripes leaves no
// room to scroll into.
const (
	// VScrollStripeSize is the height in pixels of one scroll stripe.
	VScrollStripeSize = TileSize * 2

	minVScrollArea = VScrollStripeSize * 2
)

// Direction identifies a scroll direction.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// RectDelta is one rectangle of a sequence fill, positioned relative to
// the running origin of the sequence. Applying a delta moves the origin
// by (DX, DY) and fills a W x H rectangle there.
type RectDelta struct {
	DX, DY int16
	W, H   uint16
}

// Display is the sink the engine draws into: a panel driver, the
// in-memory Framebuffer, or the sim terminal display. Coordinates
// arriving here are absolute device coordinates; the engine has already
// clipped them, so implementations may treat them as trusted.
//
// BlitStream must fully consume the stream it is handed (reading
// Height rows of Width pixels) so that decorators stacked on the stream
// end in a defined state.
type Display interface {
	// Spec describes the panel this display drives.
	Spec() *DisplaySpec

	// FillRect fills a width x height rectangle at (x, y) with c.
	FillRect(c Color, x, y, width, height int)

	// FillRectSeq fills a sequence of rectangles with c, each delta
	// relative to the running origin starting at (x, y).
	FillRectSeq(c Color, x, y int, deltas []RectDelta)

	// BlitStream copies the stream's view to (x, y), row-major.
	BlitStream(src PixelStream, x, y int)

	// VScroll shifts the visible window vertically by pixels.
	VScroll(pixels int)
}

// DisplaySpec describes a panel: its dimensions, wire format and
// scrolling capability. Specs are immutable after construction and
// shared by everything driving the same panel.
type DisplaySpec struct {
	// Width and Height are the panel dimensions in pixels.
	Width  int
	Height int

	// Format is the wire encoding the panel expects.
	Format ColorFormat

	// MaxDimension and MinDimension are the larger and smaller of the
	// two panel dimensions.
	MaxDimension int
	MinDimension int

	// TiledWidth and TiledHeight are the panel dimensions in tiles,
	// rounded down.
	TiledWidth  int
	TiledHeight int

	// VScrollStripe is the height of the vertical scroll area.
	VScrollStripe int

	scrollDirs uint8
}

// SpecOption configures a DisplaySpec during creation.
type SpecOption func(*specConfig)

// specConfig holds optional configuration for DisplaySpec creation.
type specConfig struct {
	scrollDirs    []Direction
	vscrollStripe int
	hscrollStripe int
}

// defaultSpecConfig returns the default spec options: vertical
// scrolling both ways over the minimum scroll area.
func defaultSpecConfig() specConfig {
	return specConfig{
		scrollDirs:    []Direction{DirectionUp, DirectionDown},
		vscrollStripe: minVScrollArea,
	}
}

// WithScrollDirections replaces the set of permitted scroll directions.
// Pass none to describe a panel that does not scroll.
func WithScrollDirections(dirs ...Direction) SpecOption {
	return func(c *specConfig) {
		c.scrollDirs = dirs
	}
}

// WithVScrollStripe sets the height in pixels of the vertical scroll
// area.
func WithVScrollStripe(px int) SpecOption {
	return func(c *specConfig) {
		c.vscrollStripe = px
	}
}

// WithHScrollStripe sets the width of the horizontal scroll area.
// Horizontal scrolling is not supported, so any non-zero value makes
// NewDisplaySpec fail; the option exists so callers porting panel
// configs keep an explicit record of the unsupported axis.
func WithHScrollStripe(px int) SpecOption {
	return func(c *specConfig) {
		c.hscrollStripe = px
	}
}

// NewDisplaySpec describes a panel of the given dimensions and wire
// format. The returned spec is validated: dimensions beyond the tile
// grid, unsupported scroll directions or a scroll area too small to
// scroll all fail with ErrDisplaySpec.
func NewDisplaySpec(width, height int, format ColorFormat, opts ...SpecOption) (*DisplaySpec, error) {
	cfg := defaultSpecConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrDisplaySpec, width, height)
	}
	if width > MaxScreenWidth {
		return nil, fmt.Errorf("%w: width %d exceeds %d", ErrDisplaySpec, width, MaxScreenWidth)
	}
	if height > MaxScreenHeight {
		return nil, fmt.Errorf("%w: height %d exceeds %d", ErrDisplaySpec, height, MaxScreenHeight)
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: unknown color format %d", ErrDisplaySpec, format)
	}
	if cfg.vscrollStripe < 0 {
		return nil, fmt.Errorf("%w: negative vscroll stripe %d", ErrDisplaySpec, cfg.vscrollStripe)
	}
	if cfg.hscrollStripe != 0 {
		return nil, fmt.Errorf("%w: horizontal scrolling not supported", ErrDisplaySpec)
	}

	var dirs uint8
	for _, d := range cfg.scrollDirs {
		if d != DirectionUp && d != DirectionDown {
			return nil, fmt.Errorf("%w: unsupported scroll direction %s", ErrDisplaySpec, d)
		}
		dirs |= 1 << d
	}
	if dirs != 0 && cfg.vscrollStripe < minVScrollArea {
		return nil, fmt.Errorf("%w: vscroll area %d smaller than %d", ErrDisplaySpec, cfg.vscrollStripe, minVScrollArea)
	}

	s := &DisplaySpec{
		Width:         width,
		Height:        height,
		Format:        format,
		MaxDimension:  width,
		MinDimension:  height,
		TiledWidth:    width >> tileShift,
		TiledHeight:   height >> tileShift,
		VScrollStripe: cfg.vscrollStripe,
		scrollDirs:    dirs,
	}
	if height > width {
		s.MaxDimension = height
		s.MinDimension = width
	}
	return s, nil
}

// CanScroll reports whether the panel permits scrolling in direction d.
func (s *DisplaySpec) CanScroll(d Direction) bool {
	return d < 8 && s.scrollDirs&(1<<d) != 0
}

// ScrollDirections returns the permitted scroll directions.
func (s *DisplaySpec) ScrollDirections() []Direction {
	var dirs []Direction
	for d := DirectionUp; d <= DirectionRight; d++ {
		if s.CanScroll(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func (s *DisplaySpec) String() string {
	return fmt.Sprintf("DisplaySpec(%dx%d, %s)", s.Width, s.Height, s.Format)
}
