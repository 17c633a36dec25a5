// Package trigger detects which labeled point a moving position is touching
package trigger

import (
	"strconv"

	"github.com/lixenwraith/alongpath/event"
	"github.com/lixenwraith/alongpath/parameter"
	"github.com/lixenwraith/alongpath/vmath"
)

// Trigger is a labeled proximity point
// Radius <= 0 falls back to parameter.DefaultTriggerRadius
type Trigger struct {
	Label    string
	Position vmath.Vec3
	Radius   float64
}

// EffectiveRadius returns the radius used for matching
func (t Trigger) EffectiveRadius() float64 {
	if t.Radius > 0 {
		return t.Radius
	}
	return parameter.DefaultTriggerRadius
}

// Contains reports whether pos lies within the trigger radius, boundary inclusive
func (t Trigger) Contains(pos vmath.Vec3) bool {
	r := t.EffectiveRadius()
	return vmath.DistanceSq(pos, t.Position) <= r*r
}

// Transition is a single activation change
type Transition struct {
	Type    event.EventType // EventTriggerActivated or EventTriggerDeactivated
	Trigger Trigger
}

// Detector tracks the single active trigger of one follower
// Not safe for concurrent use
type Detector struct {
	active *Trigger
}

func NewDetector() *Detector {
	return &Detector{}
}

// Active returns the active trigger, if any
func (d *Detector) Active() (Trigger, bool) {
	if d.active == nil {
		return Trigger{}, false
	}
	return *d.active, true
}

// Update re-evaluates proximity at pos
// The first trigger in order that contains pos becomes active
// Returns Deactivated(old) before Activated(new) when the active trigger changes
func (d *Detector) Update(pos vmath.Vec3, triggers []Trigger) []Transition {
	var next *Trigger
	for i := range triggers {
		if triggers[i].Contains(pos) {
			t := triggers[i]
			next = &t
			break
		}
	}

	if sameTrigger(d.active, next) {
		// Keep the latest definition of the same label
		if next != nil {
			d.active = next
		}
		return nil
	}

	var out []Transition
	if d.active != nil {
		out = append(out, Transition{Type: event.EventTriggerDeactivated, Trigger: *d.active})
	}
	if next != nil {
		out = append(out, Transition{Type: event.EventTriggerActivated, Trigger: *next})
	}
	d.active = next
	return out
}

// Reset clears the active trigger without emitting transitions
func (d *Detector) Reset() {
	d.active = nil
}

// Restore marks the trigger with label active without emitting transitions
// Unknown labels clear the active trigger
func (d *Detector) Restore(label string, triggers []Trigger) {
	d.active = nil
	if label == "" {
		return
	}
	for i := range triggers {
		if triggers[i].Label == label {
			t := triggers[i]
			d.active = &t
			return
		}
	}
}

func sameTrigger(a, b *Trigger) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Label == b.Label
}

// FromPoints turns control points into triggers labeled by index
// Used when a follower treats its own curve points as triggers
func FromPoints(points []vmath.Vec3, radius float64) []Trigger {
	out := make([]Trigger, len(points))
	for i, p := range points {
		out[i] = Trigger{Label: pointLabel(i), Position: p, Radius: radius}
	}
	return out
}

func pointLabel(i int) string {
	return "point-" + strconv.Itoa(i)
}
