package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/alongpath/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	sweep    float64 // Hz per second, negative falls
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, 0, duration, wave, rate)
}

// NewSweep creates an oscillator whose frequency changes linearly by sweep Hz/s
func NewSweep(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		if freq < 0 {
			freq = 0
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so zero volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateStartSound generates a rising two-note chime
func CreateStartSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// A5 then E6
	n1 := NewOscillator(880.0, parameter.StartSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.StartSoundNote1Duration, parameter.StartSoundAttack, parameter.StartSoundNote1Release, rate)

	n2 := NewOscillator(1318.51, parameter.StartSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.StartSoundNote2Duration, parameter.StartSoundAttack, parameter.StartSoundNote2Release, rate)

	vol := cfg.EffectVolumes[SoundStart] * cfg.MasterVolume
	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol*0.5)
}

// CreateEndSound generates a falling low tone
func CreateEndSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(440.0, -500.0, parameter.EndSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.EndSoundDuration, parameter.EndSoundAttack, parameter.EndSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundEnd] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateCycleSound generates a short tick
func CreateCycleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(1200.0, parameter.CycleSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.CycleSoundDuration, parameter.CycleSoundAttack, parameter.CycleSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundCycle] * cfg.MasterVolume
	return newVolume(shaped, vol*0.5)
}

// CreateEnterSound generates a bell for trigger activation
func CreateEnterSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewOscillator(880.0, parameter.EnterSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.EnterSoundDuration, parameter.EnterSoundAttack, parameter.EnterSoundFundamentalRelease, rate)

	// Octave up
	over := NewOscillator(1760.0, parameter.EnterSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.EnterSoundDuration, parameter.EnterSoundAttack, parameter.EnterSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	vol := cfg.EffectVolumes[SoundEnter] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateLeaveSound generates a noise whoosh for trigger deactivation
func CreateLeaveSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.LeaveSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.LeaveSoundDuration, parameter.LeaveSoundAttack, parameter.LeaveSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundLeave] * cfg.MasterVolume
	return newVolume(shaped, vol*0.6)
}

// GetSoundEffect returns the streamer for st, nil for unknown types
func GetSoundEffect(st SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case SoundStart:
		return CreateStartSound(cfg)
	case SoundEnd:
		return CreateEndSound(cfg)
	case SoundCycle:
		return CreateCycleSound(cfg)
	case SoundEnter:
		return CreateEnterSound(cfg)
	case SoundLeave:
		return CreateLeaveSound(cfg)
	default:
		return nil
	}
}
