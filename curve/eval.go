package curve

import (
	"math"

	"github.com/lixenwraith/alongpath/parameter"
	"github.com/lixenwraith/alongpath/vmath"
)

// CatmullRomKind selects the knot parameterization
type CatmullRomKind int

const (
	Centripetal CatmullRomKind = iota // alpha 0.5
	Chordal                           // alpha 1
	Uniform                           // fixed tension
)

// catmullRom returns an evaluator over all control points
// Open curves extrapolate a virtual point before the first and after the last
func catmullRom(points []vmath.Vec3, closed bool, kind CatmullRomKind) func(float64) vmath.Vec3 {
	l := len(points)
	return func(t float64) vmath.Vec3 {
		segs := l - 1
		if closed {
			segs = l
		}
		p := float64(segs) * t
		idx := int(math.Floor(p))
		weight := p - float64(idx)

		if !closed && weight == 0 && idx == l-1 {
			idx = l - 2
			weight = 1
		}

		var p0, p3 vmath.Vec3
		if closed || idx > 0 {
			p0 = points[wrap(idx-1, l)]
		} else {
			p0 = points[0].Sub(points[1]).Add(points[0])
		}
		p1 := points[wrap(idx, l)]
		p2 := points[wrap(idx+1, l)]
		if closed || idx+2 < l {
			p3 = points[wrap(idx+2, l)]
		} else {
			p3 = points[l-1].Sub(points[l-2]).Add(points[l-1])
		}

		if kind == Uniform {
			m1 := p2.Sub(p0).Mul(parameter.CatmullRomTension)
			m2 := p3.Sub(p1).Mul(parameter.CatmullRomTension)
			return hermite(p1, p2, m1, m2, weight)
		}

		pow := 0.25
		if kind == Chordal {
			pow = 0.5
		}
		dt0 := math.Pow(vmath.DistanceSq(p0, p1), pow)
		dt1 := math.Pow(vmath.DistanceSq(p1, p2), pow)
		dt2 := math.Pow(vmath.DistanceSq(p2, p3), pow)

		// Coincident points would divide by zero
		if dt1 < 1e-4 {
			dt1 = 1
		}
		if dt0 < 1e-4 {
			dt0 = dt1
		}
		if dt2 < 1e-4 {
			dt2 = dt1
		}

		m1 := p1.Sub(p0).Mul(1 / dt0).Sub(p2.Sub(p0).Mul(1 / (dt0 + dt1))).Add(p2.Sub(p1).Mul(1 / dt1)).Mul(dt1)
		m2 := p2.Sub(p1).Mul(1 / dt1).Sub(p3.Sub(p1).Mul(1 / (dt1 + dt2))).Add(p3.Sub(p2).Mul(1 / dt2)).Mul(dt1)
		return hermite(p1, p2, m1, m2, weight)
	}
}

// hermite evaluates the cubic with endpoints p1,p2 and tangents m1,m2
func hermite(p1, p2, m1, m2 vmath.Vec3, t float64) vmath.Vec3 {
	c2 := p1.Mul(-3).Add(p2.Mul(3)).Sub(m1.Mul(2)).Sub(m2)
	c3 := p1.Mul(2).Sub(p2.Mul(2)).Add(m1).Add(m2)
	t2 := t * t
	return p1.Add(m1.Mul(t)).Add(c2.Mul(t2)).Add(c3.Mul(t2 * t))
}

// quadraticBezier uses the first 3 points; 2 points get a midpoint control
func quadraticBezier(points []vmath.Vec3) func(float64) vmath.Vec3 {
	p0 := points[0]
	var p1, p2 vmath.Vec3
	if len(points) >= 3 {
		p1, p2 = points[1], points[2]
	} else {
		p2 = points[1]
		p1 = vmath.Lerp(p0, p2, 0.5)
	}
	return func(t float64) vmath.Vec3 {
		k := 1 - t
		return p0.Mul(k * k).Add(p1.Mul(2 * k * t)).Add(p2.Mul(t * t))
	}
}

// cubicBezier uses the first 4 points; fewer are degree-elevated
func cubicBezier(points []vmath.Vec3) func(float64) vmath.Vec3 {
	var p0, p1, p2, p3 vmath.Vec3
	switch {
	case len(points) >= 4:
		p0, p1, p2, p3 = points[0], points[1], points[2], points[3]
	case len(points) == 3:
		p0, p3 = points[0], points[2]
		p1 = vmath.Lerp(p0, points[1], 2.0/3.0)
		p2 = vmath.Lerp(p3, points[1], 2.0/3.0)
	default:
		p0, p3 = points[0], points[1]
		p1 = vmath.Lerp(p0, p3, 1.0/3.0)
		p2 = vmath.Lerp(p0, p3, 2.0/3.0)
	}
	return func(t float64) vmath.Vec3 {
		k := 1 - t
		return p0.Mul(k * k * k).
			Add(p1.Mul(3 * k * k * t)).
			Add(p2.Mul(3 * k * t * t)).
			Add(p3.Mul(t * t * t))
	}
}

// polyline connects the points with straight segments of equal parameter span
func polyline(points []vmath.Vec3, closed bool) func(float64) vmath.Vec3 {
	return func(t float64) vmath.Vec3 {
		i, w := polylineSegment(len(points), closed, t)
		return vmath.Lerp(points[i], points[wrap(i+1, len(points))], w)
	}
}

func polylineTangent(points []vmath.Vec3, closed bool, t float64) vmath.Vec3 {
	i, _ := polylineSegment(len(points), closed, t)
	return vmath.SafeNormalize(points[wrap(i+1, len(points))].Sub(points[i]))
}

// polylineSegment maps t to a segment index and local weight
func polylineSegment(n int, closed bool, t float64) (int, float64) {
	segs := n - 1
	if closed {
		segs = n
	}
	p := float64(segs) * t
	i := int(math.Floor(p))
	if i >= segs {
		return segs - 1, 1
	}
	return i, p - float64(i)
}

// finiteTangent approximates the derivative direction by central difference
func finiteTangent(eval func(float64) vmath.Vec3, t float64) vmath.Vec3 {
	t1 := t - parameter.TangentDelta
	t2 := t + parameter.TangentDelta
	if t1 < 0 {
		t1 = 0
	}
	if t2 > 1 {
		t2 = 1
	}
	return vmath.SafeNormalize(eval(t2).Sub(eval(t1)))
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
