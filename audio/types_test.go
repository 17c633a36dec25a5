package audio

import (
	"testing"

	"github.com/lixenwraith/alongpath/event"
)

func TestSoundFor_EveryEventHasCue(t *testing.T) {
	events := []event.EventType{
		event.EventMovementStarted,
		event.EventMovementEnded,
		event.EventCycleEnded,
		event.EventTriggerActivated,
		event.EventTriggerDeactivated,
	}
	seen := make(map[SoundType]bool)
	for _, et := range events {
		st, ok := SoundFor(et)
		if !ok {
			t.Errorf("Expected cue for %v", et)
			continue
		}
		if seen[st] {
			t.Errorf("Cue %v mapped twice", st)
		}
		seen[st] = true
	}
	if _, ok := SoundFor(event.EventNone); ok {
		t.Error("Expected no cue for EventNone")
	}
}

func TestSoundType_String(t *testing.T) {
	if SoundEnter.String() != "enter" {
		t.Errorf("Expected enter, got %s", SoundEnter.String())
	}
	if SoundType(42).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", SoundType(42).String())
	}
}
