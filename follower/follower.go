// Package follower drives one entity along a curve: it owns a timeline and a
// trigger detector and turns each tick into a transform plus notifications
package follower

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/alongpath/curve"
	"github.com/lixenwraith/alongpath/event"
	"github.com/lixenwraith/alongpath/timeline"
	"github.com/lixenwraith/alongpath/trigger"
	"github.com/lixenwraith/alongpath/vmath"
)

// ErrTickFault reports a frame abandoned after a panic or a non-finite sample
var ErrTickFault = errors.New("tick fault")

// Config describes one follower
type Config struct {
	Name          string
	Timeline      timeline.Config
	Rotate        bool // Orient +Y along the tangent
	ConstantSpeed bool // Sample by arc length instead of raw parameter
	Triggers      []trigger.Trigger
}

// Frame is the outcome of one Tick
type Frame struct {
	Number         int64
	Progress       float64
	Phase          timeline.Phase
	Reversing      bool
	Position       vmath.Vec3
	Orientation    vmath.Quat
	HasOrientation bool
	Events         []event.PathEvent
	Skipped        bool  // Transform not updated this frame
	Err            error // Why the frame was skipped
}

// Snapshot is the persistent playback state of a follower
type Snapshot struct {
	Timeline      timeline.Snapshot
	ActiveTrigger string
	Frame         int64
}

// Follower moves along a curve one tick at a time
// Tick, Reset and Restore must be called from a single goroutine; SetCurve may
// be called from any goroutine
type Follower struct {
	cfg      Config
	sampler  atomic.Pointer[curve.Sampler]
	tl       *timeline.Timeline
	detector *trigger.Detector
	queue    *event.EventQueue
	logger   *log.Logger

	frame   int64
	last    Frame
	unready bool // Not-ready state already logged
	reset   atomic.Bool
}

// Option configures a Follower
type Option func(*Follower)

// WithQueue forwards every emitted event to q
func WithQueue(q *event.EventQueue) Option {
	return func(f *Follower) { f.queue = q }
}

// WithLogger replaces log.Default()
func WithLogger(l *log.Logger) Option {
	return func(f *Follower) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a follower on c; a nil or unready curve is accepted and skips
// frames until SetCurve provides a usable one
func New(cfg Config, c curve.Curve, opts ...Option) *Follower {
	f := &Follower{
		cfg:      cfg,
		tl:       timeline.New(cfg.Timeline),
		detector: trigger.NewDetector(),
		logger:   log.Default(),
		last:     Frame{Orientation: vmath.Quat{W: 1}},
	}
	for _, opt := range opts {
		opt(f)
	}
	f.sampler.Store(curve.NewSampler(c))

	if err := cfg.Timeline.Validate(); err != nil {
		f.logger.Printf("[follower] %s: %v", cfg.Name, err)
	}
	return f
}

func (f *Follower) Name() string     { return f.cfg.Name }
func (f *Follower) Config() Config   { return f.cfg }
func (f *Follower) LastFrame() Frame { return f.last }

// Curve returns the current curve, may be nil
func (f *Follower) Curve() curve.Curve {
	return f.sampler.Load().Curve()
}

// Sampler returns the current sampler snapshot
func (f *Follower) Sampler() *curve.Sampler {
	return f.sampler.Load()
}

// ActiveTrigger returns the trigger currently touched, if any
func (f *Follower) ActiveTrigger() (trigger.Trigger, bool) {
	return f.detector.Active()
}

// SetCurve swaps the curve and restarts playback on the next tick
func (f *Follower) SetCurve(c curve.Curve) {
	f.sampler.Store(curve.NewSampler(c))
	f.reset.Store(true)
}

// Reset restarts playback without emitting events
func (f *Follower) Reset() {
	f.reset.Store(false)
	f.tl.Reset()
	f.detector.Reset()
	f.last = Frame{Number: f.frame, Orientation: vmath.Quat{W: 1}}
}

// Snapshot captures playback state for persistence
func (f *Follower) Snapshot() Snapshot {
	s := Snapshot{Timeline: f.tl.Snapshot(), Frame: f.frame}
	if t, ok := f.detector.Active(); ok {
		s.ActiveTrigger = t.Label
	}
	return s
}

// Restore resumes from a snapshot without emitting events
// An Ended snapshot rests the follower on the curve end
func (f *Follower) Restore(s Snapshot) {
	f.reset.Store(false)
	f.tl.Restore(s.Timeline)
	f.detector.Restore(s.ActiveTrigger, f.cfg.Triggers)
	if s.Frame > 0 {
		f.frame = s.Frame
	}

	f.last = Frame{Number: f.frame, Phase: f.tl.Phase(), Orientation: vmath.Quat{W: 1}}
	sm := f.sampler.Load()
	if f.tl.Phase() != timeline.PhaseEnded || !sm.Ready() {
		return
	}
	c := sm.Curve()
	f.last.Progress = 1
	f.last.Reversing = f.tl.Reversing()
	f.last.Position = c.End()
	if f.cfg.Rotate {
		f.last.Orientation = vmath.OrientUpToTangent(f.tangent(c, 1))
		f.last.HasOrientation = true
	}
}

// Tick advances playback by dt and returns the resulting frame
// Faults never escape: they roll the timeline back and skip the frame
func (f *Follower) Tick(dt time.Duration) (fr Frame) {
	if f.reset.Load() {
		f.Reset()
	}
	f.frame++

	s := f.sampler.Load()
	if !s.Ready() {
		if !f.unready {
			f.unready = true
			f.logger.Printf("[follower] %s: curve not ready, frames skipped", f.cfg.Name)
		}
		return f.skip(curve.ErrCurveNotReady)
	}
	if f.unready {
		f.unready = false
		f.logger.Printf("[follower] %s: curve ready, resuming", f.cfg.Name)
	}

	if f.tl.Phase() == timeline.PhaseEnded {
		fr = f.last
		fr.Number = f.frame
		fr.Events = nil
		fr.Skipped = false
		fr.Err = nil
		return fr
	}

	snap := f.tl.Snapshot()
	defer func() {
		if r := recover(); r != nil {
			f.tl.Restore(snap)
			f.logger.Printf("[follower] %s: frame %d recovered: %v", f.cfg.Name, f.frame, r)
			fr = f.skip(fmt.Errorf("%w: %v", ErrTickFault, r))
		}
	}()

	step := f.tl.Advance(dt)
	c := s.Curve()

	var pos, tan vmath.Vec3
	if step.Phase == timeline.PhaseEnded {
		pos = c.End()
	} else if f.cfg.ConstantSpeed {
		pos = c.PointAt(step.Progress)
	} else {
		pos = c.Point(step.Progress)
	}
	if f.cfg.Rotate {
		tan = f.tangent(c, step.Progress)
	}

	if !vmath.IsFinite(pos) || !vmath.IsFinite(tan) {
		f.tl.Restore(snap)
		f.logger.Printf("[follower] %s: frame %d non-finite sample at progress %v", f.cfg.Name, f.frame, step.Progress)
		return f.skip(fmt.Errorf("%w: non-finite sample at progress %v", ErrTickFault, step.Progress))
	}

	fr = Frame{
		Number:      f.frame,
		Progress:    step.Progress,
		Phase:       step.Phase,
		Reversing:   step.Reversing,
		Position:    pos,
		Orientation: f.last.Orientation,
	}
	if f.cfg.Rotate {
		fr.Orientation = vmath.OrientUpToTangent(tan)
		fr.HasOrientation = true
	}

	for _, note := range step.Notes {
		var payload any
		if note == event.EventCycleEnded {
			payload = &event.CyclePayload{Cycle: f.tl.Cycles(), Reversing: step.Reversing}
		}
		fr.Events = append(fr.Events, f.stamp(note, payload))
	}

	if step.Phase != timeline.PhaseDelaying {
		for _, tr := range f.detector.Update(pos, f.cfg.Triggers) {
			payload := &event.TriggerPayload{Label: tr.Trigger.Label, Position: tr.Trigger.Position}
			fr.Events = append(fr.Events, f.stamp(tr.Type, payload))
		}
	}

	if f.queue != nil {
		for _, ev := range fr.Events {
			f.queue.Push(ev)
		}
	}

	f.last = fr
	return fr
}

// tangent samples c on the parameterization the follower moves along
func (f *Follower) tangent(c curve.Curve, progress float64) vmath.Vec3 {
	if f.cfg.ConstantSpeed {
		return c.TangentAt(progress)
	}
	return c.Tangent(progress)
}

func (f *Follower) stamp(t event.EventType, payload any) event.PathEvent {
	return event.PathEvent{Type: t, Source: f.cfg.Name, Payload: payload, Frame: f.frame}
}

// skip repeats the last transform, flagged with err
func (f *Follower) skip(err error) Frame {
	fr := f.last
	fr.Number = f.frame
	fr.Events = nil
	fr.Skipped = true
	fr.Err = err
	return fr
}
