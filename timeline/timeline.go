// Package timeline converts accumulated tick time into path progress
package timeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/alongpath/event"
)

// ErrInvalidConfiguration reports a non-positive duration
// Advance tolerates it by completing immediately; Validate surfaces it to loaders
var ErrInvalidConfiguration = errors.New("invalid timeline configuration")

// Phase is the lifecycle state of a timeline
type Phase int

const (
	PhaseIdle     Phase = iota // No Advance since construction or Reset
	PhaseDelaying              // Waiting out the pre-roll
	PhaseMoving                // Travelling a leg
	PhaseEnded                 // Terminal until Reset
)

var phaseNames = [...]string{"Idle", "Delaying", "Moving", "Ended"}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// ParsePhase resolves a phase name produced by String
func ParsePhase(name string) (Phase, bool) {
	for i, n := range phaseNames {
		if n == name {
			return Phase(i), true
		}
	}
	return PhaseIdle, false
}

// Config holds playback settings
// Loop and Reversible are mutually exclusive; Reversible wins when both are set
type Config struct {
	Duration   time.Duration
	Delay      time.Duration
	Loop       bool
	Reversible bool
}

// Validate reports configuration a loader should warn about
func (c Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration %v must be positive", ErrInvalidConfiguration, c.Duration)
	}
	if c.Loop && c.Reversible {
		return fmt.Errorf("%w: loop and reversible are exclusive, reversible applies", ErrInvalidConfiguration)
	}
	return nil
}

// Step is the result of one Advance
type Step struct {
	Progress  float64 // Reported progress in [0,1]
	Phase     Phase
	Reversing bool // Direction of the leg that follows
	Notes     []event.EventType
}

// Snapshot is a value copy of the mutable timeline state
type Snapshot struct {
	Elapsed   time.Duration
	Phase     Phase
	Reversing bool
	Started   bool
	Cycles    int
}

// Timeline is a single-owner playback clock
type Timeline struct {
	cfg       Config
	elapsed   time.Duration
	phase     Phase
	reversing bool
	started   bool // MovementStarted already emitted
	cycles    int
}

func New(cfg Config) *Timeline {
	return &Timeline{cfg: cfg}
}

func (tl *Timeline) Config() Config         { return tl.cfg }
func (tl *Timeline) Phase() Phase           { return tl.phase }
func (tl *Timeline) Elapsed() time.Duration { return tl.elapsed }
func (tl *Timeline) Reversing() bool        { return tl.reversing }
func (tl *Timeline) Cycles() int            { return tl.cycles }

// Advance accumulates dt and reports progress for this frame
// Negative dt is treated as zero
func (tl *Timeline) Advance(dt time.Duration) Step {
	if tl.phase == PhaseEnded {
		return Step{Progress: 1, Phase: PhaseEnded}
	}
	if dt < 0 {
		dt = 0
	}
	tl.elapsed += dt

	offset := tl.elapsed - tl.cfg.Delay
	if offset < 0 {
		tl.phase = PhaseDelaying
		return Step{Progress: tl.report(0), Phase: tl.phase, Reversing: tl.reversing}
	}

	var notes []event.EventType
	if !tl.started {
		tl.started = true
		notes = append(notes, event.EventMovementStarted)
	}
	tl.phase = PhaseMoving

	raw := tl.raw(offset)
	if raw < 1 {
		return Step{Progress: tl.report(raw), Phase: tl.phase, Reversing: tl.reversing, Notes: notes}
	}

	// End of a leg
	switch {
	case tl.cfg.Reversible:
		progress := tl.report(1)
		tl.reversing = !tl.reversing
		tl.elapsed = tl.cfg.Delay
		tl.cycles++
		notes = append(notes, event.EventCycleEnded)
		return Step{Progress: progress, Phase: tl.phase, Reversing: tl.reversing, Notes: notes}

	case tl.cfg.Loop:
		tl.elapsed = tl.cfg.Delay
		tl.cycles++
		notes = append(notes, event.EventCycleEnded)
		return Step{Progress: 1, Phase: tl.phase, Notes: notes}

	default:
		tl.phase = PhaseEnded
		tl.cycles++
		notes = append(notes, event.EventMovementEnded)
		return Step{Progress: 1, Phase: tl.phase, Notes: notes}
	}
}

// raw maps the post-delay offset to forward progress
// Non-positive durations complete immediately without dividing
func (tl *Timeline) raw(offset time.Duration) float64 {
	if tl.cfg.Duration <= 0 || offset >= tl.cfg.Duration {
		return 1
	}
	return float64(offset) / float64(tl.cfg.Duration)
}

// report applies the current direction
func (tl *Timeline) report(raw float64) float64 {
	if tl.reversing {
		return 1 - raw
	}
	return raw
}

// Reset returns the timeline to Idle; idempotent
func (tl *Timeline) Reset() {
	tl.elapsed = 0
	tl.phase = PhaseIdle
	tl.reversing = false
	tl.started = false
	tl.cycles = 0
}

// Snapshot captures the mutable state
func (tl *Timeline) Snapshot() Snapshot {
	return Snapshot{
		Elapsed:   tl.elapsed,
		Phase:     tl.phase,
		Reversing: tl.reversing,
		Started:   tl.started,
		Cycles:    tl.cycles,
	}
}

// Restore overwrites the mutable state from a snapshot
func (tl *Timeline) Restore(s Snapshot) {
	if s.Elapsed < 0 {
		s.Elapsed = 0
	}
	if s.Phase < PhaseIdle || s.Phase > PhaseEnded {
		s.Phase = PhaseIdle
	}
	tl.elapsed = s.Elapsed
	tl.phase = s.Phase
	tl.reversing = s.Reversing
	tl.started = s.Started
	tl.cycles = s.Cycles
}
