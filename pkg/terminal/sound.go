package terminal

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate     = beep.SampleRate(44100)
	hitToneFreq    = 880.0
	hitToneLength  = 50 * time.Millisecond
	launchToneFreq = 330.0
	launchLength   = 40 * time.Millisecond
)

// Sound plays the game's feedback tones
type Sound interface {
	PlayHit()
	PlayLaunch()
	Close()
}

// SpeakerSound plays tones on the default audio device
type SpeakerSound struct {
	mu          sync.Mutex
	initialized bool
}

// NewSpeakerSound opens the audio device. Callers treat an error as
// non-fatal and fall back to NoSound.
func NewSpeakerSound() (*SpeakerSound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &SpeakerSound{initialized: true}, nil
}

func (s *SpeakerSound) PlayHit() {
	s.play(hitToneFreq, hitToneLength)
}

func (s *SpeakerSound) PlayLaunch() {
	s.play(launchToneFreq, launchLength)
}

func (s *SpeakerSound) play(freq float64, length time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}

	tone, err := newTone(freq, length)
	if err != nil {
		log.Printf("sound: %v", err)
		return
	}
	speaker.Play(tone)
}

func (s *SpeakerSound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		speaker.Close()
		s.initialized = false
	}
}

// newTone is a short, quieted sine tone
func newTone(freq float64, length time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(length), sine),
		Base:     2,
		Volume:   -2,
	}, nil
}

// NoSound is used when no audio device is available
type NoSound struct{}

func (NoSound) PlayHit()    {}
func (NoSound) PlayLaunch() {}
func (NoSound) Close()      {}
