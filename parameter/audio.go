package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultMasterVolume applies when no environment override is set
	AudioDefaultMasterVolume = 0.5
)

// Movement started: rising two-note chime
const (
	StartSoundNote1Duration = 60 * time.Millisecond
	StartSoundNote2Duration = 180 * time.Millisecond
	StartSoundAttack        = 5 * time.Millisecond
	StartSoundNote1Release  = 30 * time.Millisecond
	StartSoundNote2Release  = 140 * time.Millisecond
)

// Movement ended: low falling tone
const (
	EndSoundDuration = 400 * time.Millisecond
	EndSoundAttack   = 10 * time.Millisecond
	EndSoundRelease  = 300 * time.Millisecond
)

// Cycle ended: short tick
const (
	CycleSoundDuration = 40 * time.Millisecond
	CycleSoundAttack   = 2 * time.Millisecond
	CycleSoundRelease  = 20 * time.Millisecond
)

// Trigger entered: bell
const (
	EnterSoundDuration           = 600 * time.Millisecond
	EnterSoundAttack             = 5 * time.Millisecond
	EnterSoundFundamentalRelease = 550 * time.Millisecond
	EnterSoundOvertoneRelease    = 200 * time.Millisecond
)

// Trigger left: noise whoosh
const (
	LeaveSoundDuration = 250 * time.Millisecond
	LeaveSoundAttack   = 120 * time.Millisecond
	LeaveSoundRelease  = 120 * time.Millisecond
)

// MinSoundGap suppresses repeats of the same cue closer than this
const MinSoundGap = 50 * time.Millisecond
