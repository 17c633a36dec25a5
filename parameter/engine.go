package parameter

import "time"

// Loop timing
const (
	// FrameUpdateInterval is the sandbox tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single tick after stalls (window drag, debugger)
	MaxFrameDelta = 250 * time.Millisecond
)

// Event queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Session storage
const (
	// SessionAppName names the gdata storage directory
	SessionAppName = "alongpath"

	// SessionObject is the gdata object holding playback snapshots
	SessionObject = "playback"
)
