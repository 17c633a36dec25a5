package curve

import (
	"testing"

	"github.com/lixenwraith/alongpath/parameter"
	"github.com/lixenwraith/alongpath/vmath"
)

func TestSpaced_Line(t *testing.T) {
	p := mustNew(t, FamilyLine, segment(), false)
	got := Spaced(p, 2.5)
	if len(got) != 5 {
		t.Fatalf("Expected 5 placements, got %d", len(got))
	}
	for i, pl := range got {
		want := vmath.Vec3{2.5 * float64(i), 0, 0}
		if !pl.Position.ApproxEqualThreshold(want, 1e-6) {
			t.Errorf("Placement %d: expected %v, got %v", i, want, pl.Position)
		}
		if dir := pl.Orientation.Rotate(vmath.ZAxis); !dir.ApproxEqualThreshold(vmath.Vec3{1, 0, 0}, 1e-6) {
			t.Errorf("Placement %d: expected +Z rotated to +X, got %v", i, dir)
		}
	}
}

func TestSpaced_InvalidInput(t *testing.T) {
	p := mustNew(t, FamilyLine, segment(), false)
	if Spaced(p, 0) != nil {
		t.Error("Expected nil for zero spacing")
	}
	if Spaced(p, -1) != nil {
		t.Error("Expected nil for negative spacing")
	}
	if Spaced(mustNew(t, FamilyLine, nil, false), 1) != nil {
		t.Error("Expected nil for unready curve")
	}
}

func TestSpaced_TinySpacingIsBounded(t *testing.T) {
	p := mustNew(t, FamilyLine, segment(), false)
	got := Spaced(p, 1e-13)
	if len(got) != parameter.MaxClonePlacements {
		t.Fatalf("Expected %d placements, got %d", parameter.MaxClonePlacements, len(got))
	}
	if !got[0].Position.ApproxEqualThreshold(vmath.Vec3{}, tol) {
		t.Errorf("Expected first placement at start, got %v", got[0].Position)
	}
}

func TestPolyline_SampleCount(t *testing.T) {
	p := mustNew(t, FamilyCatmullRom, segment(), false)
	got := Polyline(p, 10)
	if len(got) != 21 {
		t.Fatalf("Expected 21 samples, got %d", len(got))
	}
	if !got[0].ApproxEqualThreshold(vmath.Vec3{0, 0, 0}, tol) {
		t.Errorf("Expected first sample at start, got %v", got[0])
	}
	if !got[20].ApproxEqualThreshold(vmath.Vec3{10, 0, 0}, 1e-6) {
		t.Errorf("Expected last sample at end, got %v", got[20])
	}
}
