package event

// EventType represents the type of path event
type EventType int

const (
	// EventNone is the zero value, never emitted
	EventNone EventType = iota

	// EventMovementStarted marks the first frame of motion after the delay
	// Trigger: Timeline entering Moving | Payload: nil
	EventMovementStarted

	// EventMovementEnded marks the end of a non-looping, non-reversing path
	// Trigger: Timeline entering Ended | Payload: nil
	EventMovementEnded

	// EventCycleEnded marks the end of one leg in loop or reversible mode
	// Trigger: Timeline wrap or direction flip | Payload: *CyclePayload
	EventCycleEnded

	// EventTriggerActivated fires when the follower enters a trigger radius
	// Trigger: Detector | Payload: *TriggerPayload
	EventTriggerActivated

	// EventTriggerDeactivated fires when the active trigger is left or replaced
	// Trigger: Detector | Payload: *TriggerPayload
	EventTriggerDeactivated
)

var eventNames = map[EventType]string{
	EventNone:               "None",
	EventMovementStarted:    "MovementStarted",
	EventMovementEnded:      "MovementEnded",
	EventCycleEnded:         "CycleEnded",
	EventTriggerActivated:   "TriggerActivated",
	EventTriggerDeactivated: "TriggerDeactivated",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// PathEvent is a notification produced by a follower tick
type PathEvent struct {
	Type    EventType
	Source  string // Follower name
	Payload any
	Frame   int64
}
