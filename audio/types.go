package audio

import "github.com/lixenwraith/alongpath/event"

// SoundType identifies a generated cue
type SoundType int

const (
	SoundStart SoundType = iota // Movement started
	SoundEnd                    // Movement ended
	SoundCycle                  // Loop wrap or direction flip
	SoundEnter                  // Trigger activated
	SoundLeave                  // Trigger deactivated
	soundTypeCount
)

var soundNames = [...]string{"start", "end", "cycle", "enter", "leave"}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// SoundFor maps a path event to its cue
func SoundFor(t event.EventType) (SoundType, bool) {
	switch t {
	case event.EventMovementStarted:
		return SoundStart, true
	case event.EventMovementEnded:
		return SoundEnd, true
	case event.EventCycleEnded:
		return SoundCycle, true
	case event.EventTriggerActivated:
		return SoundEnter, true
	case event.EventTriggerDeactivated:
		return SoundLeave, true
	}
	return 0, false
}
