package ui

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays the game's effects. Every method is safe to call when
// audio could not be initialized; it simply stays silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing
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

// PlayChomp is the short blip of an eaten apple
func (sm *SoundManager) PlayChomp() {
	sm.play(tone(880, 60*time.Millisecond))
}

// PlayBite is the low buzz of a lost game
func (sm *SoundManager) PlayBite() {
	sm.play(tone(110, 400*time.Millisecond))
}

// PlayWin is a rising arpeggio
func (sm *SoundManager) PlayWin() {
	sm.play(beep.Seq(
		tone(523, 120*time.Millisecond),
		tone(659, 120*time.Millisecond),
		tone(784, 120*time.Millisecond),
		tone(1047, 300*time.Millisecond),
	))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// tone returns a sine wave of freq Hz lasting d, or silence if the
// frequency cannot be generated at the sample rate.
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), sine)
}
