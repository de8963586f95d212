package watchgl

import "errors"

// Configuration and construction errors. Drawing itself never fails:
// off-window geometry is clipped or dropped, and exhausted streams read
// short. Errors are reserved for building blocks that would otherwise
// produce an unusable engine.
var (
	// ErrDisplaySpec indicates an invalid display description
	// (dimensions out of range, unsupported scroll configuration).
	ErrDisplaySpec = errors.New("watchgl: invalid display spec")

	// ErrComponentBounds indicates a component region that is not
	// tile-aligned or has non-positive dimensions.
	ErrComponentBounds = errors.New("watchgl: component region not tile-aligned")

	// ErrComponentOverlap indicates two components claiming the same tile.
	ErrComponentOverlap = errors.New("watchgl: component tiles overlap")

	// ErrScreenLayout indicates a screen that cannot hold its components
	// (too many, or a component outside the tiled area).
	ErrScreenLayout = errors.New("watchgl: invalid screen layout")

	// ErrStreamBounds indicates stream construction with non-positive
	// dimensions or a bit plane shorter than the dimensions require.
	ErrStreamBounds = errors.New("watchgl: invalid stream bounds")
)
