package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/alongpath/parameter"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "ALONGPATH_AUDIO_ENABLED"
	EnvMasterVolume = "ALONGPATH_MASTER_VOLUME"
	EnvSFXVolumes   = "ALONGPATH_SFX_VOLUMES"
	EnvSampleRate   = "ALONGPATH_SAMPLE_RATE"
)

// AudioConfig holds cue playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioDefaultMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundStart: 0.6,
			SoundEnd:   0.8,
			SoundCycle: 0.4,
			SoundEnter: 1.0,
			SoundLeave: 0.5,
		},
		SampleRate: parameter.AudioSampleRate,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	// Effect volumes as JSON keyed by sound name
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampVolume(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// SaveAudioConfig writes cfg back into the process environment
func SaveAudioConfig(cfg *AudioConfig) error {
	if err := os.Setenv(EnvAudioEnabled, strconv.FormatBool(cfg.Enabled)); err != nil {
		return err
	}
	if err := os.Setenv(EnvMasterVolume, strconv.Itoa(int(cfg.MasterVolume*100+0.5))); err != nil {
		return err
	}

	volumes := make(map[string]float64, len(cfg.EffectVolumes))
	for st, v := range cfg.EffectVolumes {
		volumes[st.String()] = v
	}
	data, err := json.Marshal(volumes)
	if err != nil {
		return err
	}
	if err := os.Setenv(EnvSFXVolumes, string(data)); err != nil {
		return err
	}
	return os.Setenv(EnvSampleRate, strconv.Itoa(cfg.SampleRate))
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
