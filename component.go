package watchgl

import (
	"fmt"
	"reflect"
)

// DrawFunc renders a component into the graphics context. The context's
// window is already set to the component's region, so the callback
// draws in component-local coordinates starting at (0, 0).
type DrawFunc func(c *Component, g *Graphics)

// Component is a tile-aligned rectangle of the screen with its own draw
// callback, variable store and dirty flag. Components are the unit of
// damage: changing a variable marks the component dirty, and the next
// lazy draw repaints exactly the dirty ones.
//
// A component belongs to at most one Screen at a time; attaching it to
// a new screen moves it.
type Component struct {
	x      int
	y      int
	width  int
	height int

	draw  DrawFunc
	state map[string]any
	dirty bool

	screen *Screen
	id     int
}

// NewComponent creates a component covering the given region. Position
// and size must be multiples of TileSize, the position non-negative and
// the size positive.
func NewComponent(x, y, width, height int, draw DrawFunc) (*Component, error) {
	if x < 0 || x%TileSize != 0 ||
		y < 0 || y%TileSize != 0 ||
		width <= 0 || width%TileSize != 0 ||
		height <= 0 || height%TileSize != 0 {
		return nil, fmt.Errorf("%w: %d,%d %dx%d", ErrComponentBounds, x, y, width, height)
	}
	return &Component{
		x:      x,
		y:      y,
		width:  width,
		height: height,
		draw:   draw,
		state:  map[string]any{},
		dirty:  true,
	}, nil
}

// Bounds returns the component's region in screen coordinates.
func (c *Component) Bounds() (x, y, width, height int) {
	return c.x, c.y, c.width, c.height
}

// Dirty reports whether the component needs redrawing.
func (c *Component) Dirty() bool { return c.dirty }

// ID returns the id assigned by the owning screen, 0 if unattached.
func (c *Component) ID() int { return c.id }

// markDirty sets the dirty flag and tells the owning screen, if any.
// Already-dirty components stay silent: the screen heard about them the
// first time.
func (c *Component) markDirty() {
	if c.dirty {
		return
	}
	c.dirty = true
	if c.screen != nil {
		c.screen.NotifyComponentUpdate(c.id)
	}
}

// Invalidate forces a redraw of the component on the next draw pass.
func (c *Component) Invalidate() {
	c.markDirty()
}

// Var returns the stored value for k, nil if absent.
func (c *Component) Var(k string) any {
	return c.state[k]
}

// Vars returns the component's variable store. The map is live; callers
// mutating it directly bypass dirty tracking.
func (c *Component) Vars() map[string]any {
	return c.state
}

// SetVar stores v under k. Storing a value equal to the present one is
// a no-op; otherwise the component is marked dirty.
func (c *Component) SetVar(k string, v any) {
	if old, ok := c.state[k]; ok && reflect.DeepEqual(old, v) {
		return
	}
	c.state[k] = v
	c.markDirty()
}

// SetVarQuiet stores v under k without touching the dirty flag, for
// bookkeeping that must never force a redraw.
func (c *Component) SetVarQuiet(k string, v any) {
	c.state[k] = v
}

// InitVars replaces the whole variable store and marks the component
// dirty.
func (c *Component) InitVars(state map[string]any) {
	if state == nil {
		state = map[string]any{}
	}
	c.state = state
	c.markDirty()
}
