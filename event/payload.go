package event

import "github.com/lixenwraith/alongpath/vmath"

// TriggerPayload identifies the trigger involved in a transition
type TriggerPayload struct {
	Label    string
	Position vmath.Vec3
}

// CyclePayload describes a completed leg
type CyclePayload struct {
	Cycle     int  // Completed legs since reset, 1-based
	Reversing bool // Direction of the next leg
}
