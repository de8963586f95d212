package watchgl

import "math"

const (
	// lineBatchCap is the capacity of the context's coalescing batch.
	// A full batch flushes mid-line and the line continues into a
	// fresh one.
	lineBatchCap = 32

	// maxLineRun caps how far a single coalesced run may grow, keeping
	// every batched rectangle's extent encodable in one byte on the
	// wire.
	maxLineRun = 255
)

// DrawLine draws a line of the given thickness between two points in
// window coordinates, as a minimal sequence of rectangle fills.
//
// Zero-length, horizontal and vertical lines emit exactly one clipped
// fill. Everything else walks an integer Bresenham stepper, clips the
// thickness square at each visited point against the window, coalesces
// colinear contiguous squares into runs, and flushes the runs as one
// delta-encoded batch to the sink's sequence-fill primitive.
func (g *Graphics) DrawLine(color Color, thickness, x0, y0, x1, y1 int) {
	// Center the stroke on the given endpoints.
	ltoff := (thickness - 1) / 2
	x0 -= ltoff
	y0 -= ltoff
	x1 -= ltoff
	y1 -= ltoff

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	dy = -dy

	switch {
	case dx == 0 && dy == 0:
		g.Fill(color, x0, y0, thickness, thickness)
		return
	case dy == 0:
		if x0 > x1 {
			x0 = x1
		}
		g.Fill(color, x0, y0, dx+thickness, thickness)
		return
	case dx == 0:
		if y0 > y1 {
			y0 = y1
		}
		g.Fill(color, x0, y0, thickness, -dy+thickness)
		return
	}

	// Fill applies the window's vertical shift itself; on the stepped
	// path it must happen up front, once.
	y0 += g.win.shiftY
	y1 += g.win.shiftY

	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	dx2 := dx * 2
	dy2 := dy * 2
	errAcc := dx2 + dy2

	winW := g.win.width
	winH := g.win.height

	var runX, runY, runW, runH int
	active := false

	for {
		// Clip the thickness square at the current point.
		rx, ry := x0, y0
		rw, rh := thickness, thickness
		if rx < 0 {
			rw += rx
			rx = 0
		}
		if ry < 0 {
			rh += ry
			ry = 0
		}
		if max := winW - rx; rw > max {
			rw = max
		}
		if max := winH - ry; rh > max {
			rh = max
		}

		if rw <= 0 || rh <= 0 {
			if active {
				g.pushRun(color, runX, runY, runW, runH)
				active = false
			}
		} else if !active {
			runX, runY, runW, runH = rx, ry, rw, rh
			active = true
		} else if nx, ny, nw, nh, ok := mergeRun(runX, runY, runW, runH, rx, ry, rw, rh); ok {
			runX, runY, runW, runH = nx, ny, nw, nh
		} else {
			g.pushRun(color, runX, runY, runW, runH)
			runX, runY, runW, runH = rx, ry, rw, rh
		}

		ec := 0
		if errAcc >= dy {
			if x0 == x1 {
				break
			}
			ec += dy2
			x0 += sx
		}
		if errAcc <= dx {
			if y0 == y1 {
				break
			}
			ec += dx2
			y0 += sy
		}
		errAcc += ec
	}
	if active {
		g.pushRun(color, runX, runY, runW, runH)
	}
	g.flushRuns(color)
}

// mergeRun coalesces a clipped square into the current run when the two
// are colinear and overlap or touch: same row with equal height, or
// same column with equal width, or the same origin. The merged run is
// the union span; a union growing past maxLineRun refuses the merge.
// Squares from consecutive Bresenham steps are adjacent by
// construction, so contiguity needs no check.
func mergeRun(runX, runY, runW, runH, rx, ry, rw, rh int) (int, int, int, int, bool) {
	if rx == runX && ry == runY {
		if rw < runW {
			rw = runW
		}
		if rh < runH {
			rh = runH
		}
		return runX, runY, rw, rh, true
	}
	if ry == runY && rh == runH {
		left, right := runX, runX+runW
		if rx < left {
			left = rx
		}
		if r := rx + rw; r > right {
			right = r
		}
		if right-left <= maxLineRun {
			return left, runY, right - left, runH, true
		}
		return 0, 0, 0, 0, false
	}
	if rx == runX && rw == runW {
		top, bottom := runY, runY+runH
		if ry < top {
			top = ry
		}
		if b := ry + rh; b > bottom {
			bottom = b
		}
		if bottom-top <= maxLineRun {
			return runX, top, runW, bottom - top, true
		}
	}
	return 0, 0, 0, 0, false
}

// pushRun appends a finished run to the sequence batch, flushing first
// if the batch is full. Coordinates are window-relative; the delta
// encoding is unaffected by the window translation applied at flush.
func (g *Graphics) pushRun(color Color, x, y, w, h int) {
	if g.seqN == lineBatchCap {
		g.flushRuns(color)
	}
	if g.seqN == 0 {
		g.seqX = x
		g.seqY = y
		g.seq[0] = RectDelta{W: uint16(w), H: uint16(h)}
	} else {
		g.seq[g.seqN] = RectDelta{
			DX: int16(x - g.prevX),
			DY: int16(y - g.prevY),
			W:  uint16(w),
			H:  uint16(h),
		}
	}
	g.prevX = x
	g.prevY = y
	g.seqN++
}

// flushRuns sends the pending batch to the sink as one sequence fill.
func (g *Graphics) flushRuns(color Color) {
	if g.seqN == 0 {
		return
	}
	g.display.FillRectSeq(color, g.win.x+g.seqX, g.win.y+g.seqY, g.seq[:g.seqN])
	g.seqN = 0
}

// DrawLinePolar draws a line along the ray at angle theta (degrees,
// clockwise from straight up) between radii r0 and r1 from the center
// (x, y). Watch hands and dial ticks are polar lines.
func (g *Graphics) DrawLinePolar(color Color, x, y, theta, r0, r1, thickness int) {
	rad := float64(theta) * (math.Pi / 180)
	xd := math.Sin(rad)
	yd := math.Cos(rad)
	x0 := x + int(xd*float64(r0))
	y0 := y - int(yd*float64(r0))
	x1 := x + int(xd*float64(r1))
	y1 := y - int(yd*float64(r1))
	g.DrawLine(color, thickness, x0, y0, x1, y1)
}
