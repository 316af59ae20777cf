package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays the game's effects through the default audio device.
// An uninitialized manager is silent, so the game runs without a device.
type SoundManager struct {
	log         logrus.FieldLogger
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a silent manager; call Initialize to open the device
func NewSoundManager(log logrus.FieldLogger) *SoundManager {
	return &SoundManager{
		log:   log,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.WithField("sample_rate", int(sampleRate)).Info("audio initialized")
	return nil
}

// Enabled reports whether effects are audible
func (sm *SoundManager) Enabled() bool {
	return sm.initialized
}

// Play queues e on the mixer
func (sm *SoundManager) Play(e Effect) {
	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(NewEffect(e, sampleRate))
	speaker.Unlock()
	sm.log.WithFields(logrus.Fields{
		"effect":   int(e),
		"duration": EffectDuration(e),
	}).Trace("effect queued")
}

// Close stops every sound and releases the device
func (sm *SoundManager) Close() {
	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
