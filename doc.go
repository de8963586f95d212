// Package watchgl provides an incremental 2D rendering engine for small
// tile-aligned displays.
//
// # Overview
//
// watchgl targets wearable-class panels driven over slow serial buses,
// where redrawing the full frame every tick is too expensive. Instead of
// a framebuffer-first design, the engine tracks which screen components
// are dirty and re-renders only those, emitting a small number of fill
// and blit commands to the display sink.
//
// # Quick Start
//
//	import "github.com/gogpu/watchgl"
//
//	// Describe the panel (240x240, RGB565 wire format).
//	spec, _ := watchgl.NewDisplaySpec(240, 240, watchgl.RGB565)
//
//	// Any Display implementation works as the sink; the in-memory
//	// Framebuffer is the reference one.
//	fb := watchgl.NewFramebuffer(spec)
//	g := watchgl.NewGraphics(fb)
//
//	// Components own tile-aligned regions and draw on demand.
//	face, _ := watchgl.NewComponent(0, 0, 240, 240, drawFace)
//	scr, _ := watchgl.NewScreen(watchgl.Black, spec, face)
//
//	scr.DrawLazy(g) // renders only dirty components
//
// # Architecture
//
// The library is organized into:
//   - Pixel sources: PixelStream, MonoStream, VerticalCrop, HorizontalCrop, Stripe
//   - Damage tracking: Component, Screen
//   - Drawing: Graphics (window-clipped fills, blits, lines, text)
//   - Sinks: the Display interface, with Framebuffer as reference
//
// Sub-packages supply collaborators: font (glyph sources), monoimg
// (1-bit image container), sim (terminal display for development).
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Screens are tiled on a 16 pixel grid; components are tile-aligned
//
// # Concurrency
//
// A Graphics context and the Screen drawn through it are confined to one
// goroutine. Marking components dirty via SetVar is cheap and may race
// only with other markers, not with drawing.
package watchgl

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
