package vmath

import (
	"math"
	"testing"
)

func TestNormalFromTangent_ReferenceAxes(t *testing.T) {
	cases := []struct {
		name    string
		tangent Vec3
		want    Vec3
	}{
		{"along z", Vec3{0, 0, 1}, Vec3{0, 1, 0}},
		{"along x", Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"along y", Vec3{0, 1, 0}, Vec3{0, 0, -1}},
		{"zero", Vec3{}, Up},
	}
	for _, c := range cases {
		got := NormalFromTangent(c.tangent)
		if !got.ApproxEqualThreshold(c.want, 1e-6) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
}

func TestNormalFromTangent_Perpendicular(t *testing.T) {
	tangents := []Vec3{
		{1, 1, 0},
		{0.3, -0.2, 0.9},
		{-1, 0.5, 0.5},
		{0, -1, 0.01},
	}
	for _, tan := range tangents {
		n := NormalFromTangent(tan)
		u := SafeNormalize(tan)
		if d := math.Abs(n.Dot(u)); d > 1e-6 {
			t.Errorf("Normal %v not perpendicular to %v (dot=%f)", n, u, d)
		}
		if math.Abs(n.Len()-1) > 1e-6 {
			t.Errorf("Normal %v not unit length", n)
		}
	}
}

func TestOrientUpToTangent_RotatesUp(t *testing.T) {
	tangents := []Vec3{
		{1, 0, 0},
		{0, 0, -1},
		{0, 1, 0},
		{0, -1, 0},
		{2, 2, 1},
	}
	for _, tan := range tangents {
		q := OrientUpToTangent(tan)
		got := q.Rotate(Up)
		want := SafeNormalize(tan)
		if !got.ApproxEqualThreshold(want, 1e-6) {
			t.Errorf("Tangent %v: expected up rotated to %v, got %v", tan, want, got)
		}
	}
}

func TestOrientZToTangent_RotatesZ(t *testing.T) {
	tan := Vec3{0, 0.6, 0.8}
	got := OrientZToTangent(tan).Rotate(ZAxis)
	if !got.ApproxEqualThreshold(tan, 1e-6) {
		t.Errorf("Expected %v, got %v", tan, got)
	}
}
