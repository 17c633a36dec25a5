package render

import (
	"math"

	"github.com/lixenwraith/alongpath/vmath"
)

// Plane selects the two world axes shown on screen
type Plane int

const (
	PlaneXZ Plane = iota // Top-down: +X right, +Z down
	PlaneXY              // Front: +X right, +Y up
)

// Projection maps world positions onto a 2D surface
type Projection struct {
	Plane  Plane
	Scale  float64 // Surface units per world unit, horizontal
	Aspect float64 // Vertical/horizontal unit ratio, 0.5 for terminal cells
	OffX   float64
	OffY   float64
}

// Bounds returns the axis-aligned box of pts; ok is false when pts is empty
func Bounds(pts []vmath.Vec3) (lo, hi vmath.Vec3, ok bool) {
	for _, p := range pts {
		if !vmath.IsFinite(p) {
			continue
		}
		if !ok {
			lo, hi, ok = p, p, true
			continue
		}
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], p[k])
			hi[k] = math.Max(hi[k], p[k])
		}
	}
	return lo, hi, ok
}

// Fit builds a projection that shows the box [lo, hi] inside a width x height
// surface with margin units free on every side, centered
func Fit(lo, hi vmath.Vec3, width, height int, margin int, plane Plane, aspect float64) Projection {
	if aspect <= 0 {
		aspect = 1
	}
	p := Projection{Plane: plane, Aspect: aspect}

	u0, v0 := p.axes(lo)
	u1, v1 := p.axes(hi)
	if u0 > u1 {
		u0, u1 = u1, u0
	}
	if v0 > v1 {
		v0, v1 = v1, v0
	}

	availW := float64(width - 1 - 2*margin)
	availH := float64(height - 1 - 2*margin)
	if availW < 1 {
		availW = 1
	}
	if availH < 1 {
		availH = 1
	}

	spanU := u1 - u0
	spanV := v1 - v0
	scale := math.Inf(1)
	if spanU > vmath.Epsilon {
		scale = availW / spanU
	}
	if spanV > vmath.Epsilon {
		scale = math.Min(scale, availH/(spanV*aspect))
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}
	p.Scale = scale

	// Center the box
	p.OffX = float64(width-1)/2 - (u0+u1)/2*scale
	p.OffY = float64(height-1)/2 - (v0+v1)/2*scale*aspect
	return p
}

// axes returns world coordinates along the screen axes, v grows downward
func (p Projection) axes(v vmath.Vec3) (float64, float64) {
	if p.Plane == PlaneXY {
		return v.X(), -v.Y()
	}
	return v.X(), v.Z()
}

// ProjectF maps a world position to continuous surface coordinates
func (p Projection) ProjectF(v vmath.Vec3) (float64, float64) {
	u, w := p.axes(v)
	return u*p.Scale + p.OffX, w*p.Scale*p.Aspect + p.OffY
}

// Project maps a world position to the nearest cell
func (p Projection) Project(v vmath.Vec3) (int, int) {
	x, y := p.ProjectF(v)
	return int(math.Round(x)), int(math.Round(y))
}
