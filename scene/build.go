package scene

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/lixenwraith/alongpath/curve"
	"github.com/lixenwraith/alongpath/event"
	"github.com/lixenwraith/alongpath/follower"
	"github.com/lixenwraith/alongpath/parameter"
	"github.com/lixenwraith/alongpath/timeline"
	"github.com/lixenwraith/alongpath/trigger"
	"github.com/lixenwraith/alongpath/vmath"
)

// Scene is the runtime form of a Document
type Scene struct {
	Curves    map[string]*curve.Path
	Order     []string // Curve names in document order
	Followers []*follower.Follower
	Triggers  []trigger.Trigger
	Clones    []CloneSet
}

// CloneSet is the placement list of one clones entry
type CloneSet struct {
	Curve      string
	Placements []curve.Placement
}

// BuildOptions wires runtime collaborators into built followers
type BuildOptions struct {
	Logger *log.Logger
	Queue  *event.EventQueue
}

// Follower returns the follower with name, or nil
func (s *Scene) Follower(name string) *follower.Follower {
	for _, f := range s.Followers {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// Tick advances every follower by dt
func (s *Scene) Tick(dt time.Duration) []follower.Frame {
	frames := make([]follower.Frame, len(s.Followers))
	for i, f := range s.Followers {
		frames[i] = f.Tick(dt)
	}
	return frames
}

// Reset restarts every follower
func (s *Scene) Reset() {
	for _, f := range s.Followers {
		f.Reset()
	}
}

// Validate reports every structural problem in the document
func (d *Document) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidScene}, args...)...))
	}

	curves := make(map[string]bool, len(d.Curves))
	for i, c := range d.Curves {
		if c.Name == "" {
			add("curve %d has no name", i)
		} else if curves[c.Name] {
			add("duplicate curve %q", c.Name)
		}
		curves[c.Name] = true

		if _, err := curve.ParseFamily(c.Type); err != nil {
			errs = append(errs, fmt.Errorf("%w: curve %q: %w", ErrInvalidScene, c.Name, err))
		}
		for j, p := range c.Points {
			if _, err := toVec(p); err != nil {
				add("curve %q point %d: %v", c.Name, j, err)
			}
		}
	}

	labels := make(map[string]bool, len(d.Triggers))
	for i, t := range d.Triggers {
		if t.Label == "" {
			add("trigger %d has no label", i)
		} else if labels[t.Label] {
			add("duplicate trigger %q", t.Label)
		}
		labels[t.Label] = true
		if _, err := toVec(t.Position); err != nil {
			add("trigger %q position: %v", t.Label, err)
		}
	}

	names := make(map[string]bool, len(d.Followers))
	for i, f := range d.Followers {
		if f.Name == "" {
			add("follower %d has no name", i)
		} else if names[f.Name] {
			add("duplicate follower %q", f.Name)
		}
		names[f.Name] = true
		if !curves[f.Curve] {
			add("follower %q references unknown curve %q", f.Name, f.Curve)
		}
		for _, l := range f.Triggers {
			if !labels[l] {
				add("follower %q references unknown trigger %q", f.Name, l)
			}
		}
		if f.Delay < 0 || math.IsNaN(f.Delay) || math.IsInf(f.Delay, 0) {
			add("follower %q has invalid delay %v", f.Name, f.Delay)
		}
		if f.Dur != nil && (math.IsNaN(*f.Dur) || math.IsInf(*f.Dur, 0)) {
			add("follower %q has invalid dur %v", f.Name, *f.Dur)
		}
	}

	for _, c := range d.Clones {
		if !curves[c.Curve] {
			add("clones reference unknown curve %q", c.Curve)
		}
		if !(c.Spacing > 0) {
			add("clones on %q need positive spacing, got %v", c.Curve, c.Spacing)
		}
	}

	return errors.Join(errs...)
}

// Build validates the document and constructs curves, followers and clones
// Recoverable oddities are logged as warnings instead of failing the build
func Build(d *Document, opts BuildOptions) (*Scene, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Scene{Curves: make(map[string]*curve.Path, len(d.Curves))}
	for _, cc := range d.Curves {
		p, err := buildCurve(cc)
		if err != nil {
			return nil, err
		}
		if !p.Ready() {
			logger.Printf("[scene] curve %q has %d points, followers will wait", cc.Name, len(cc.Points))
		}
		if cc.Closed && (p.Family() == curve.FamilyCubicBezier || p.Family() == curve.FamilyQuadraticBezier) {
			logger.Printf("[scene] curve %q: closed ignored for %v", cc.Name, p.Family())
		}
		s.Curves[cc.Name] = p
		s.Order = append(s.Order, cc.Name)
	}

	byLabel := make(map[string]TriggerConfig, len(d.Triggers))
	for _, tc := range d.Triggers {
		pos, _ := toVec(tc.Position)
		s.Triggers = append(s.Triggers, trigger.Trigger{Label: tc.Label, Position: pos, Radius: tc.Radius})
		byLabel[tc.Label] = tc
	}

	for _, fc := range d.Followers {
		p := s.Curves[fc.Curve]
		cfg := follower.Config{
			Name:          fc.Name,
			Timeline:      timelineConfig(fc),
			Rotate:        fc.Rotate,
			ConstantSpeed: fc.ConstantSpeed,
		}
		if err := cfg.Timeline.Validate(); err != nil {
			logger.Printf("[scene] follower %q: %v", fc.Name, err)
		}

		for _, l := range fc.Triggers {
			tc := byLabel[l]
			pos, _ := toVec(tc.Position)
			radius := tc.Radius
			if radius <= 0 {
				radius = fc.TriggerRadius
			}
			cfg.Triggers = append(cfg.Triggers, trigger.Trigger{Label: l, Position: pos, Radius: radius})
		}
		if fc.PointsAsTriggers {
			cfg.Triggers = append(cfg.Triggers, trigger.FromPoints(p.Points(), fc.TriggerRadius)...)
		}

		fopts := []follower.Option{follower.WithLogger(logger)}
		if opts.Queue != nil {
			fopts = append(fopts, follower.WithQueue(opts.Queue))
		}
		s.Followers = append(s.Followers, follower.New(cfg, p, fopts...))
	}

	for _, cc := range d.Clones {
		if p := s.Curves[cc.Curve]; p.Ready() && p.Length()/cc.Spacing+1 > parameter.MaxClonePlacements {
			return nil, fmt.Errorf("%w: clones on %q: spacing %v yields more than %d placements over length %v",
				ErrInvalidScene, cc.Curve, cc.Spacing, parameter.MaxClonePlacements, p.Length())
		}
		s.Clones = append(s.Clones, CloneSet{
			Curve:      cc.Curve,
			Placements: curve.Spaced(s.Curves[cc.Curve], cc.Spacing),
		})
	}

	return s, nil
}

func buildCurve(cc CurveConfig) (*curve.Path, error) {
	family, err := curve.ParseFamily(cc.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: curve %q: %w", ErrInvalidScene, cc.Name, err)
	}
	pts := make([]vmath.Vec3, 0, len(cc.Points))
	for _, raw := range cc.Points {
		v, err := toVec(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: curve %q: %v", ErrInvalidScene, cc.Name, err)
		}
		pts = append(pts, v)
	}
	return curve.New(family, pts, cc.Closed)
}

func timelineConfig(fc FollowerConfig) timeline.Config {
	dur := parameter.DefaultDuration
	if fc.Dur != nil {
		dur = millis(*fc.Dur)
	}
	delay := parameter.DefaultDelay
	if fc.Delay > 0 {
		delay = millis(fc.Delay)
	}
	return timeline.Config{
		Duration:   dur,
		Delay:      delay,
		Loop:       fc.Loop,
		Reversible: fc.Reversible,
	}
}

func millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

func toVec(raw []float64) (vmath.Vec3, error) {
	v, ok := vmath.FromSlice(raw)
	if !ok {
		return vmath.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(raw))
	}
	if !vmath.IsFinite(v) {
		return vmath.Vec3{}, fmt.Errorf("non-finite component in %v", raw)
	}
	return v, nil
}
