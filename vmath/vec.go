package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the float64 3D vector used throughout path evaluation
type Vec3 = mgl64.Vec3

// Quat is a rotation quaternion
type Quat = mgl64.Quat

// Reference axes
var (
	Up    = Vec3{0, 1, 0}
	ZAxis = Vec3{0, 0, 1}
)

// Epsilon is the tolerance for float comparisons on curve data
const Epsilon = 1e-9

// Distance returns the Euclidean distance between a and b
func Distance(a, b Vec3) float64 {
	return b.Sub(a).Len()
}

// DistanceSq returns the squared distance, no sqrt
func DistanceSq(a, b Vec3) float64 {
	d := b.Sub(a)
	return d.Dot(d)
}

// Lerp interpolates a toward b by t
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// SafeNormalize returns the unit vector, zero for zero-length input
// mgl64 Normalize divides by length and yields NaN on zero vectors
func SafeNormalize(v Vec3) Vec3 {
	l := v.Len()
	if l < Epsilon {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

// IsFinite reports whether every component is a real number
func IsFinite(v Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Clamp01 clamps f into [0,1], NaN maps to 0
func Clamp01(f float64) float64 {
	if f != f || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// FromSlice builds a Vec3 from a 3-element slice
// Returns false when the slice has the wrong length
func FromSlice(s []float64) (Vec3, bool) {
	if len(s) != 3 {
		return Vec3{}, false
	}
	return Vec3{s[0], s[1], s[2]}, true
}
