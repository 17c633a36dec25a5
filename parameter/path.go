package parameter

import "time"

// Playback defaults
const (
	// DefaultDuration is the travel time of one leg when a scene omits dur
	DefaultDuration = 1000 * time.Millisecond

	// DefaultDelay is the pre-roll before the first leg starts
	DefaultDelay = 0 * time.Millisecond

	// DefaultTriggerRadius matches a trigger only when nearly touching it
	DefaultTriggerRadius = 0.01
)

// Curve evaluation
const (
	// ArcLengthDivisions is the sample count of the arc-length lookup table
	ArcLengthDivisions = 200

	// TangentDelta is the parameter step for finite-difference tangents
	TangentDelta = 1e-4

	// CatmullRomTension is used by the uniform (Spline) family
	CatmullRomTension = 0.5

	// DrawSamplesPerPoint is the polyline density per control point
	DrawSamplesPerPoint = 10

	// MaxClonePlacements bounds the placements generated for one clone set
	MaxClonePlacements = 10000
)

// Closest-point search
const (
	// SearchResolutionFactor is divided by curve length for the default resolution
	SearchResolutionFactor = 0.1

	// MinSearchResolution applies when the curve has no length
	MinSearchResolution = 1e-3

	// DefaultSearchSeed is the starting progress of the bisection
	DefaultSearchSeed = 0.5

	// DefaultSearchStep is the initial bisection step
	DefaultSearchStep = 0.5

	// ClosestPointMaxSteps caps bisection iterations regardless of resolution
	ClosestPointMaxSteps = 64
)
