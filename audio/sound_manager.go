package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/robot-soccer/constant"
	"github.com/lixenwraith/robot-soccer/engine"
)

// SoundManager plays outcome cues through a single speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager; nothing plays until Initialize succeeds
func NewSoundManager() *SoundManager {
	return &SoundManager{
		rate:  beep.SampleRate(constant.AudioSampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker, failing on hosts without an audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constant.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// PlayOutcome queues the cue for o; the returned channel closes when playback ends
// It closes immediately if audio is unavailable or o has no cue
func (sm *SoundManager) PlayOutcome(o engine.Outcome) <-chan struct{} {
	done := make(chan struct{})

	sm.mu.Lock()
	defer sm.mu.Unlock()

	s := OutcomeStreamer(sm.rate, o)
	if !sm.initialized || s == nil {
		close(done)
		return done
	}

	// Mixer is streamed from the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(beep.Seq(s, beep.Callback(func() { close(done) })))
	speaker.Unlock()

	return done
}
