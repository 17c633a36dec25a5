package vmath

import "github.com/go-gl/mathgl/mgl64"

// NormalFromTangent derives a deterministic normal for a unit tangent
// Rotation taking +Z onto the tangent, applied to +Y
// Zero tangents fall back to Up
func NormalFromTangent(tangent Vec3) Vec3 {
	t := SafeNormalize(tangent)
	if t == (Vec3{}) {
		return Up
	}
	q := mgl64.QuatBetweenVectors(ZAxis, t)
	return q.Rotate(Up)
}

// OrientZToTangent returns the rotation taking +Z onto the tangent
// Used for placing clones along a curve
func OrientZToTangent(tangent Vec3) Quat {
	t := SafeNormalize(tangent)
	if t == (Vec3{}) {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatBetweenVectors(ZAxis, t)
}

// OrientUpToTangent returns the rotation taking +Y onto the tangent
// axis = up x tangent, angle = acos(up . tangent); parallel and antiparallel
// tangents are resolved by QuatBetweenVectors instead of a zero axis
func OrientUpToTangent(tangent Vec3) Quat {
	t := SafeNormalize(tangent)
	if t == (Vec3{}) {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatBetweenVectors(Up, t)
}
