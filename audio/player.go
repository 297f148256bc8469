package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player mixes cues onto the speaker. All methods are safe without a working
// audio device: Initialize reports the failure and playback becomes a no-op
type Player struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      [cueCount]int
}

// NewPlayer creates a player; nil cfg selects DefaultConfig
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Calling it again is a no-op
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences pending cues. The speaker stays open; beep offers no
// way to reopen it
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// SetMuted toggles playback
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports whether playback is muted
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Play queues cue. It returns false when nothing was queued
func (p *Player) Play(cue Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return false
	}

	s, err := CueStreamer(cue, p.cfg)
	if err != nil {
		log.Printf("audio: %v", err)
		return false
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played[cue]++
	return true
}

// Played returns how many times cue was queued
func (p *Player) Played(cue Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cue < 0 || cue >= cueCount {
		return 0
	}
	return p.played[cue]
}
