package curve

import (
	"github.com/lixenwraith/alongpath/parameter"
	"github.com/lixenwraith/alongpath/vmath"
)

// Placement is a position and orientation on a curve
type Placement struct {
	Position    vmath.Vec3
	Orientation vmath.Quat // +Z rotated onto the tangent
	Progress    float64    // Normalized arc length
}

// Spaced returns placements every spacing units of arc length from the start
// Non-positive spacing or an unready curve yields nil
// At most parameter.MaxClonePlacements are returned
func Spaced(c Curve, spacing float64) []Placement {
	if c == nil || !c.Ready() || !(spacing > 0) {
		return nil
	}

	length := c.Length()
	if length < vmath.Epsilon {
		start := c.Point(0)
		return []Placement{{Position: start, Orientation: vmath.OrientZToTangent(vmath.Vec3{})}}
	}

	// Slack keeps a placement on the end when the table sum rounds short
	reach := length * (1 + 1e-9)
	limit := parameter.MaxClonePlacements
	if n := reach/spacing + 1; n < float64(limit) {
		limit = int(n)
	}
	out := make([]Placement, 0, limit)
	for i := 0; i < limit; i++ {
		d := float64(i) * spacing
		if d > reach {
			break
		}
		u := vmath.Clamp01(d / length)
		out = append(out, Placement{
			Position:    c.PointAt(u),
			Orientation: vmath.OrientZToTangent(c.TangentAt(u)),
			Progress:    u,
		})
	}
	return out
}

// Polyline samples the raw parameterization for drawing
// Produces len(points)*samplesPerPoint segments
func Polyline(c Curve, samplesPerPoint int) []vmath.Vec3 {
	if c == nil || !c.Ready() || samplesPerPoint < 1 {
		return nil
	}
	n := len(c.Points()) * samplesPerPoint
	out := make([]vmath.Vec3, n+1)
	for i := 0; i <= n; i++ {
		out[i] = c.Point(float64(i) / float64(n))
	}
	return out
}
