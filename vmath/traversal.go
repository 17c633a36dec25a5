package vmath

import (
	"math"
)

// Traverse visits every grid cell crossed by the segment (x1, y1) -> (x2, y2)
// Supercover DDA over cell coordinates: cell (i, j) spans [i, i+1) x [j, j+1)
// Terminates at the target cell; visit returning false stops early
func Traverse(x1, y1, x2, y2 float64, visit func(x, y int) bool) {
	if !finite(x1, y1, x2, y2) {
		return
	}
	ix, iy := int(math.Floor(x1)), int(math.Floor(y1))
	targetX, targetY := int(math.Floor(x2)), int(math.Floor(y2))

	if !visit(ix, iy) {
		return
	}
	if ix == targetX && iy == targetY {
		return
	}

	dx := x2 - x1
	dy := y2 - y1

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	tMaxX, tDeltaX := math.Inf(1), math.Inf(1)
	if dx > 0 {
		tDeltaX = 1 / dx
		if stepX > 0 {
			tMaxX = (float64(ix+1) - x1) * tDeltaX
		} else {
			tMaxX = (x1 - float64(ix)) * tDeltaX
		}
	}
	tMaxY, tDeltaY := math.Inf(1), math.Inf(1)
	if dy > 0 {
		tDeltaY = 1 / dy
		if stepY > 0 {
			tMaxY = (float64(iy+1) - y1) * tDeltaY
		} else {
			tMaxY = (y1 - float64(iy)) * tDeltaY
		}
	}

	for ix != targetX || iy != targetY {
		switch {
		case tMaxX < tMaxY:
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			} else {
				iy += stepY
				tMaxY += tDeltaY
			}
		case tMaxX > tMaxY:
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			} else {
				ix += stepX
				tMaxX += tDeltaX
			}
		default:
			// Corner crossing
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			}
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			}
		}

		if !visit(ix, iy) {
			return
		}
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
