package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/alongpath/event"
	"github.com/lixenwraith/alongpath/parameter"
)

// SoundManager plays event cues through the beep speaker
// Every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	lastPlayed  [soundTypeCount]time.Time
	initialized bool
	now         func() time.Time
}

// NewSoundManager creates a sound manager; nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker; disabled configs succeed without output
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues the cue for st, reporting whether it was accepted
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.accept(st) {
		return false
	}
	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return false
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// HandleEvents plays the cue of every event that has one
func (sm *SoundManager) HandleEvents(events []event.PathEvent) int {
	played := 0
	for _, ev := range events {
		if st, ok := SoundFor(ev.Type); ok && sm.Play(st) {
			played++
		}
	}
	return played
}

// Drain consumes q and plays the resulting cues
func (sm *SoundManager) Drain(q *event.EventQueue) int {
	if q == nil {
		return 0
	}
	return sm.HandleEvents(q.Consume())
}

// accept applies the enabled flag and the per-cue gap; caller holds mu
func (sm *SoundManager) accept(st SoundType) bool {
	if !sm.initialized || st < 0 || st >= soundTypeCount {
		return false
	}
	now := sm.now()
	if now.Sub(sm.lastPlayed[st]) < parameter.MinSoundGap {
		return false
	}
	sm.lastPlayed[st] = now
	return true
}
