// Package chime plays a short tone when the countdown expires.
package chime

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	noteDuration = 120 * time.Millisecond
	noteGap      = 40 * time.Millisecond
)

var notes = []float64{880, 660, 440}

// Chime plays the expiry tone. Without an audio device it stays silent.
type Chime struct {
	mu    sync.Mutex
	ready bool
}

// New creates a silent chime. Call Init to attach the speaker.
func New() *Chime {
	return &Chime{}
}

// Init opens the audio device.
func (chime *Chime) Init() error {
	chime.mu.Lock()
	defer chime.mu.Unlock()
	if chime.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	chime.ready = true
	return nil
}

// Play starts the tone without waiting for it to finish.
func (chime *Chime) Play() {
	chime.mu.Lock()
	ready := chime.ready
	chime.mu.Unlock()
	if !ready {
		return
	}
	tone, err := Tone()
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Close releases the audio device.
func (chime *Chime) Close() {
	chime.mu.Lock()
	defer chime.mu.Unlock()
	if !chime.ready {
		return
	}
	speaker.Close()
	chime.ready = false
}

// Tone returns the descending three-note expiry tone.
func Tone() (beep.Streamer, error) {
	streamers := make([]beep.Streamer, 0, len(notes)*2)
	for i, freq := range notes {
		sine, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			streamers = append(streamers, beep.Silence(sampleRate.N(noteGap)))
		}
		streamers = append(streamers, beep.Take(sampleRate.N(noteDuration), sine))
	}
	return beep.Seq(streamers...), nil
}
