// Package curve evaluates parametric 3D curves built from control points and
// provides progress-based sampling and closest-point search over them
package curve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/alongpath/vmath"
)

var (
	// ErrCurveNotReady is returned when sampling a curve with fewer than 2 points
	ErrCurveNotReady = errors.New("curve not ready: at least 2 control points required")
	// ErrUnknownFamily is returned for unrecognized curve family names
	ErrUnknownFamily = errors.New("unknown curve family")
)

// Family selects the interpolation scheme
type Family int

const (
	FamilyCatmullRom Family = iota
	FamilySpline
	FamilyCubicBezier
	FamilyQuadraticBezier
	FamilyLine
)

var familyNames = [...]string{
	FamilyCatmullRom:      "CatmullRom",
	FamilySpline:          "Spline",
	FamilyCubicBezier:     "CubicBezier",
	FamilyQuadraticBezier: "QuadraticBezier",
	FamilyLine:            "Line",
}

func (f Family) String() string {
	if f >= 0 && int(f) < len(familyNames) {
		return familyNames[f]
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// ParseFamily resolves a family name, case-insensitive
// Empty name selects CatmullRom
func ParseFamily(name string) (Family, error) {
	if name == "" {
		return FamilyCatmullRom, nil
	}
	for i, n := range familyNames {
		if strings.EqualFold(n, name) {
			return Family(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// Curve is the abstraction consumed by samplers and followers
// t is the raw curve parameter, u is normalized arc length; both in [0,1]
type Curve interface {
	Family() Family
	Points() []vmath.Vec3
	Closed() bool
	Ready() bool
	Length() float64

	Point(t float64) vmath.Vec3
	Tangent(t float64) vmath.Vec3
	PointAt(u float64) vmath.Vec3
	TangentAt(u float64) vmath.Vec3

	// End is the exact resting position at progress 1
	End() vmath.Vec3
}

// Path is an immutable curve through control points
// Rebuilding a curve means constructing a new Path
type Path struct {
	family Family
	points []vmath.Vec3
	closed bool
	eval   func(t float64) vmath.Vec3
	arc    arcTable
}

// New builds a path of the given family
// Fewer than 2 points yields a path that reports Ready() == false
func New(family Family, points []vmath.Vec3, closed bool) (*Path, error) {
	switch family {
	case FamilyCatmullRom:
		return NewCatmullRom(points, closed, Centripetal), nil
	case FamilySpline:
		return NewCatmullRom(points, closed, Uniform), nil
	case FamilyCubicBezier, FamilyQuadraticBezier, FamilyLine:
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFamily, family)
	}

	p := newPath(family, points, closed)
	if len(p.points) >= 2 {
		switch family {
		case FamilyCubicBezier:
			p.eval = cubicBezier(p.points)
		case FamilyQuadraticBezier:
			p.eval = quadraticBezier(p.points)
		case FamilyLine:
			p.eval = polyline(p.points, closed)
		}
		p.arc = buildArcTable(p.eval)
	}
	return p, nil
}

// NewCatmullRom builds a Catmull-Rom path with the given parameterization
func NewCatmullRom(points []vmath.Vec3, closed bool, kind CatmullRomKind) *Path {
	family := FamilyCatmullRom
	if kind == Uniform {
		family = FamilySpline
	}
	p := newPath(family, points, closed)
	if len(p.points) >= 2 {
		p.eval = catmullRom(p.points, closed, kind)
		p.arc = buildArcTable(p.eval)
	}
	return p
}

func newPath(family Family, points []vmath.Vec3, closed bool) *Path {
	pts := make([]vmath.Vec3, len(points))
	copy(pts, points)
	return &Path{family: family, points: pts, closed: closed}
}

func (p *Path) Family() Family { return p.family }
func (p *Path) Closed() bool   { return p.closed }

// Points returns a copy of the control points
func (p *Path) Points() []vmath.Vec3 {
	pts := make([]vmath.Vec3, len(p.points))
	copy(pts, p.points)
	return pts
}

// Ready reports whether the path can be sampled, nil-safe
func (p *Path) Ready() bool {
	return p != nil && len(p.points) >= 2 && p.eval != nil
}

// Length returns the approximate arc length, 0 when not ready
func (p *Path) Length() float64 {
	if !p.Ready() {
		return 0
	}
	return p.arc.total()
}

// Point evaluates the raw parameterization
func (p *Path) Point(t float64) vmath.Vec3 {
	if !p.Ready() {
		return vmath.Vec3{}
	}
	return p.eval(vmath.Clamp01(t))
}

// Tangent returns the unit direction at parameter t
func (p *Path) Tangent(t float64) vmath.Vec3 {
	if !p.Ready() {
		return vmath.Vec3{}
	}
	t = vmath.Clamp01(t)
	if p.family == FamilyLine {
		return polylineTangent(p.points, p.closed, t)
	}
	return finiteTangent(p.eval, t)
}

// PointAt evaluates at normalized arc length u
func (p *Path) PointAt(u float64) vmath.Vec3 {
	if !p.Ready() {
		return vmath.Vec3{}
	}
	return p.Point(p.arc.uToT(vmath.Clamp01(u)))
}

// TangentAt returns the unit direction at normalized arc length u
func (p *Path) TangentAt(u float64) vmath.Vec3 {
	if !p.Ready() {
		return vmath.Vec3{}
	}
	return p.Tangent(p.arc.uToT(vmath.Clamp01(u)))
}

// End returns the control point the path rests on at progress 1
func (p *Path) End() vmath.Vec3 {
	if !p.Ready() {
		return vmath.Vec3{}
	}
	if p.closed && closable(p.family) {
		return p.points[0]
	}
	switch p.family {
	case FamilyCubicBezier:
		return p.points[min(len(p.points), 4)-1]
	case FamilyQuadraticBezier:
		return p.points[min(len(p.points), 3)-1]
	}
	return p.points[len(p.points)-1]
}

// closable reports whether the family honors the closed flag
func closable(f Family) bool {
	return f == FamilyCatmullRom || f == FamilySpline || f == FamilyLine
}
