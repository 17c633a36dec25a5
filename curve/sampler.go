package curve

import (
	"math"

	"github.com/lixenwraith/alongpath/parameter"
	"github.com/lixenwraith/alongpath/vmath"
)

// Sampler maps progress values onto a curve
// Stateless apart from the curve reference; safe for concurrent reads
type Sampler struct {
	c Curve
}

func NewSampler(c Curve) *Sampler {
	return &Sampler{c: c}
}

// Curve returns the sampled curve, may be nil
func (s *Sampler) Curve() Curve {
	if s == nil {
		return nil
	}
	return s.c
}

// Ready reports whether sampling calls will succeed
func (s *Sampler) Ready() bool {
	return s != nil && s.c != nil && s.c.Ready()
}

// PointAt returns the position at progress on the raw parameterization
func (s *Sampler) PointAt(progress float64) (vmath.Vec3, error) {
	if !s.Ready() {
		return vmath.Vec3{}, ErrCurveNotReady
	}
	return s.c.Point(progress), nil
}

// TangentAt returns the unit tangent at progress on the raw parameterization
func (s *Sampler) TangentAt(progress float64) (vmath.Vec3, error) {
	if !s.Ready() {
		return vmath.Vec3{}, ErrCurveNotReady
	}
	return s.c.Tangent(progress), nil
}

// PointAtLength returns the position at normalized arc length
func (s *Sampler) PointAtLength(progress float64) (vmath.Vec3, error) {
	if !s.Ready() {
		return vmath.Vec3{}, ErrCurveNotReady
	}
	return s.c.PointAt(progress), nil
}

// TangentAtLength returns the unit tangent at normalized arc length
func (s *Sampler) TangentAtLength(progress float64) (vmath.Vec3, error) {
	if !s.Ready() {
		return vmath.Vec3{}, ErrCurveNotReady
	}
	return s.c.TangentAt(progress), nil
}

// Closest is the result of a closest-point search
type Closest struct {
	Progress float64 // Raw parameter, or normalized arc length with WithArcLength
	Location vmath.Vec3
	Distance float64
	Tangent  vmath.Vec3
	Normal   vmath.Vec3
}

type searchConfig struct {
	resolution float64
	seed       float64
	step       float64
	arcLength  bool
}

// SearchOption tunes ClosestPoint
type SearchOption func(*searchConfig)

// WithResolution stops the search once the step falls below r
func WithResolution(r float64) SearchOption {
	return func(c *searchConfig) { c.resolution = r }
}

// WithSeed sets the starting progress
func WithSeed(seed float64) SearchOption {
	return func(c *searchConfig) { c.seed = seed }
}

// WithInitialStep sets the first bisection step
func WithInitialStep(step float64) SearchOption {
	return func(c *searchConfig) { c.step = step }
}

// WithArcLength searches and reports normalized arc length, matching
// PointAtLength instead of PointAt
func WithArcLength() SearchOption {
	return func(c *searchConfig) { c.arcLength = true }
}

// ClosestPoint finds the point on the curve nearest to q by iterative bisection
// Each step tests seed ± step/2, keeps the nearer candidate (ties keep the
// lower one) and halves the step until it drops below the resolution
// Default resolution is 0.1 / length
// Progress is on the same parameterization as PointAt unless WithArcLength is given
func (s *Sampler) ClosestPoint(q vmath.Vec3, opts ...SearchOption) (Closest, error) {
	if !s.Ready() {
		return Closest{}, ErrCurveNotReady
	}
	c := s.c

	cfg := searchConfig{
		seed: parameter.DefaultSearchSeed,
		step: parameter.DefaultSearchStep,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	res := cfg.resolution
	if !(res > 0) || math.IsInf(res, 0) {
		res = DefaultResolution(c.Length())
	}
	step := cfg.step
	if !(step > 0) || math.IsInf(step, 0) {
		step = parameter.DefaultSearchStep
	}
	seed := vmath.Clamp01(cfg.seed)

	maxSteps := searchSteps(step, res)

	point, tangentOf := c.Point, c.Tangent
	if cfg.arcLength {
		point, tangentOf = c.PointAt, c.TangentAt
	}

	best := seed
	bestPt := point(best)
	bestDist := vmath.Distance(bestPt, q)
	for i := 0; i < maxSteps; i++ {
		half := step / 2
		aT := vmath.Clamp01(seed + half)
		bT := vmath.Clamp01(seed - half)
		a := point(aT)
		b := point(bT)
		aDist := vmath.Distance(a, q)
		bDist := vmath.Distance(b, q)

		if aDist < bDist {
			best, bestPt, bestDist = aT, a, aDist
		} else {
			best, bestPt, bestDist = bT, b, bDist
		}

		step = half
		seed = best
		if step < res {
			break
		}
	}

	tangent := tangentOf(best)
	return Closest{
		Progress: best,
		Location: bestPt,
		Distance: bestDist,
		Tangent:  tangent,
		Normal:   vmath.NormalFromTangent(tangent),
	}, nil
}

// DefaultResolution is the search resolution for a curve of the given length
func DefaultResolution(length float64) float64 {
	if !(length > 0) || math.IsInf(length, 0) {
		return parameter.MinSearchResolution
	}
	return parameter.SearchResolutionFactor / length
}

// searchSteps bounds the iteration count for a step/resolution pair
func searchSteps(step, res float64) int {
	n := int(math.Ceil(math.Log2(step/res))) + 1
	if n < 1 {
		return 1
	}
	if n > parameter.ClosestPointMaxSteps {
		return parameter.ClosestPointMaxSteps
	}
	return n
}
