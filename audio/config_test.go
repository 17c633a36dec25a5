package audio

import (
	"testing"
)

func clearAudioEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAudioEnabled, EnvMasterVolume, EnvSFXVolumes, EnvSampleRate} {
		t.Setenv(k, "")
	}
}

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for %v to be set", st)
		}
	}
}

// TestLoadAudioConfigDefaults verifies loading with no env vars
func TestLoadAudioConfigDefaults(t *testing.T) {
	clearAudioEnv(t)

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults %+v, got %+v", def, cfg)
	}
}

func TestLoadAudioConfigEnabled(t *testing.T) {
	testCases := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"maybe", true}, // Unparseable keeps default
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			clearAudioEnv(t)
			t.Setenv(EnvAudioEnabled, tc.value)
			if cfg := LoadAudioConfig(); cfg.Enabled != tc.expected {
				t.Errorf("Expected Enabled=%v for value %s, got %v", tc.expected, tc.value, cfg.Enabled)
			}
		})
	}
}

func TestLoadAudioConfigMasterVolume(t *testing.T) {
	testCases := []struct {
		value    string
		expected float64
	}{
		{"0", 0.0},
		{"50", 0.5},
		{"75", 0.75},
		{"100", 1.0},
		{"-50", 0.0},
		{"150", 1.0},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			clearAudioEnv(t)
			t.Setenv(EnvMasterVolume, tc.value)
			if cfg := LoadAudioConfig(); cfg.MasterVolume != tc.expected {
				t.Errorf("Expected MasterVolume=%f for value %s, got %f", tc.expected, tc.value, cfg.MasterVolume)
			}
		})
	}
}

func TestLoadAudioConfigSampleRate(t *testing.T) {
	def := DefaultAudioConfig().SampleRate
	testCases := []struct {
		value    string
		expected int
	}{
		{"22050", 22050},
		{"48000", 48000},
		{"invalid", def},
		{"-1000", def},
		{"0", def},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			clearAudioEnv(t)
			t.Setenv(EnvSampleRate, tc.value)
			if cfg := LoadAudioConfig(); cfg.SampleRate != tc.expected {
				t.Errorf("Expected SampleRate=%d for value %s, got %d", tc.expected, tc.value, cfg.SampleRate)
			}
		})
	}
}

func TestLoadAudioConfigEffectVolumes(t *testing.T) {
	clearAudioEnv(t)
	t.Setenv(EnvSFXVolumes, `{"start": 0.9, "enter": 0.2, "leave": 3}`)

	cfg := LoadAudioConfig()
	expected := map[SoundType]float64{
		SoundStart: 0.9,
		SoundEnter: 0.2,
		SoundLeave: 1.0, // Clamped
		SoundEnd:   DefaultAudioConfig().EffectVolumes[SoundEnd],
	}
	for st, want := range expected {
		if got := cfg.EffectVolumes[st]; got != want {
			t.Errorf("Expected volume %f for %v, got %f", want, st, got)
		}
	}
}

func TestLoadAudioConfigEffectVolumesInvalid(t *testing.T) {
	clearAudioEnv(t)
	t.Setenv(EnvSFXVolumes, "invalid json")

	cfg := LoadAudioConfig()
	for st, want := range DefaultAudioConfig().EffectVolumes {
		if got := cfg.EffectVolumes[st]; got != want {
			t.Errorf("Expected default volume %f for %v, got %f", want, st, got)
		}
	}
}

func TestSaveAudioConfigRoundTrip(t *testing.T) {
	clearAudioEnv(t)

	cfg := &AudioConfig{
		Enabled:      false,
		MasterVolume: 0.75,
		EffectVolumes: map[SoundType]float64{
			SoundStart: 0.1,
			SoundEnd:   0.2,
			SoundCycle: 0.3,
			SoundEnter: 0.4,
			SoundLeave: 0.5,
		},
		SampleRate: 48000,
	}
	if err := SaveAudioConfig(cfg); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	got := LoadAudioConfig()
	if got.Enabled != cfg.Enabled || got.MasterVolume != cfg.MasterVolume || got.SampleRate != cfg.SampleRate {
		t.Errorf("Expected %+v, got %+v", cfg, got)
	}
	for st, want := range cfg.EffectVolumes {
		if got.EffectVolumes[st] != want {
			t.Errorf("Expected volume %f for %v, got %f", want, st, got.EffectVolumes[st])
		}
	}
}
