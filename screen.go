package watchgl

import "fmt"

// dirtyBlocks is the number of 16-bit words addressing component ids.
// Block w covers ids [w*16, w*16+15]; with id 0 reserved this holds
// exactly MaxComponents ids. One extra summary word marks which blocks
// hold pending bits, so a sweep touches only populated blocks.
const dirtyBlocks = 8

// Screen is an ordered set of components covering disjoint tiles of the
// display, plus the dirty bitfield driving incremental redraws. The
// component list is immutable after construction; only dirty state
// changes afterwards.
type Screen struct {
	bg         Color
	spec       *DisplaySpec
	components []*Component

	// rowMap holds, per tile row, the ids of components occupying it.
	rowMap [][]uint8

	// update[0] is the summary word: bit w+1 set means block w has
	// pending bits. update[1..] are the per-block words.
	update [1 + dirtyBlocks]uint16
}

// NewScreen builds a screen over the given components, assigning ids in
// list order starting at 1. Construction validates that every component
// lies within the display's tile grid and that no two components claim
// the same tile. Components are attached to the screen and marked
// dirty, so the first draw paints all of them.
func NewScreen(bg Color, spec *DisplaySpec, components ...*Component) (*Screen, error) {
	if len(components) > MaxComponents {
		return nil, fmt.Errorf("%w: %d components, limit %d", ErrScreenLayout, len(components), MaxComponents)
	}

	tiledWidth := spec.TiledWidth
	tiledHeight := spec.TiledHeight

	var occupied [maxTilesPerDim]uint16
	rowMap := make([][]uint8, tiledHeight)

	for i, c := range components {
		id := i + 1
		cy0 := c.y >> tileShift
		cy1 := cy0 + c.height>>tileShift
		cx0 := c.x >> tileShift
		cx1 := cx0 + c.width>>tileShift

		if cy1 > tiledHeight || cx1 > tiledWidth {
			return nil, fmt.Errorf("%w: component %d at %d,%d %dx%d outside %dx%d tiles",
				ErrScreenLayout, id, c.x, c.y, c.width, c.height, tiledWidth, tiledHeight)
		}

		for cy := cy0; cy < cy1; cy++ {
			for cx := cx0; cx < cx1; cx++ {
				if occupied[cy]&(1<<cx) != 0 {
					return nil, fmt.Errorf("%w: component %d at tile %d,%d", ErrComponentOverlap, id, cx, cy)
				}
				occupied[cy] |= 1 << cx
			}
			rowMap[cy] = append(rowMap[cy], uint8(id))
		}
	}

	s := &Screen{
		bg:         bg,
		spec:       spec,
		components: components,
		rowMap:     rowMap,
	}
	for i, c := range components {
		c.screen = s
		c.id = i + 1
		c.dirty = true
		s.NotifyComponentUpdate(c.id)
	}

	Logger().Debug("watchgl: screen built",
		"components", len(components),
		"tiles", fmt.Sprintf("%dx%d", tiledWidth, tiledHeight))
	return s, nil
}

// Background returns the screen's background color.
func (s *Screen) Background() Color { return s.bg }

// Spec returns the display spec the screen was laid out for.
func (s *Screen) Spec() *DisplaySpec { return s.spec }

// Components returns the screen's components in id order. The slice is
// live; callers must not modify it.
func (s *Screen) Components() []*Component { return s.components }

// Pending reports whether any component is waiting to be redrawn.
func (s *Screen) Pending() bool { return s.update[0] != 0 }

// NotifyComponentUpdate records that the component with the given id
// needs redrawing. Ids outside the screen are ignored.
func (s *Screen) NotifyComponentUpdate(id int) {
	if id < 1 || id > len(s.components) {
		return
	}
	block := id >> 4
	s.update[0] |= 1 << (block + 1)
	s.update[block+1] |= 1 << (id & 0xf)
}

// DrawLazy redraws only the components whose dirty bits are set, in
// ascending id order, clearing each bit as it goes. A screen with no
// pending updates performs no work at all.
func (s *Screen) DrawLazy(g *Graphics) {
	if s.update[0] == 0 {
		return
	}
	g.beginScreen(s)
	for block := 0; block < dirtyBlocks; block++ {
		if s.update[0]&(1<<(block+1)) == 0 {
			continue
		}
		word := s.update[block+1]
		s.update[block+1] = 0
		for bit := 0; word != 0; bit++ {
			if word&(1<<bit) == 0 {
				continue
			}
			word &^= 1 << bit
			id := block<<4 | bit
			if id < 1 || id > len(s.components) {
				continue
			}
			c := s.components[id-1]
			g.setComponentWindow(c)
			if c.draw != nil {
				c.draw(c, g)
			}
			c.dirty = false
		}
	}
	s.update[0] = 0
}

// DrawFull unconditionally redraws every component in id order and
// clears all dirty state. Used for full repaints, typically after the
// screen becomes visible.
func (s *Screen) DrawFull(g *Graphics) {
	for i := range s.update {
		s.update[i] = 0
	}
	g.beginScreen(s)
	for _, c := range s.components {
		g.setComponentWindow(c)
		if c.draw != nil {
			c.draw(c, g)
		}
		c.dirty = false
	}
}

// ComponentsInRows returns the components intersecting the tile rows
// [y0, y1), in ascending id order without duplicates. Scroll engines
// use this to find what a stripe of the screen touches.
func (s *Screen) ComponentsInRows(y0, y1 int) []*Component {
	if y0 < 0 {
		y0 = 0
	}
	if y1 > len(s.rowMap) {
		y1 = len(s.rowMap)
	}
	var seen [dirtyBlocks]uint16
	for y := y0; y < y1; y++ {
		for _, id := range s.rowMap[y] {
			seen[id>>4] |= 1 << (id & 0xf)
		}
	}
	var out []*Component
	for block := 0; block < dirtyBlocks; block++ {
		word := seen[block]
		for bit := 0; word != 0; bit++ {
			if word&(1<<bit) == 0 {
				continue
			}
			word &^= 1 << bit
			id := block<<4 | bit
			out = append(out, s.components[id-1])
		}
	}
	return out
}
