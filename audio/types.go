// Package audio plays short synthesized cues for the layout viewers.
package audio

import (
	"errors"
	"time"
)

// Cue identifies a sound
type Cue int

const (
	CueGenerated Cue = iota // layout regenerated
	CueRoute                // route shown
	CueError                // generation failed
	cueCount
)

var cueNames = [cueCount]string{"generated", "route", "error"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Cue timings
const (
	GeneratedNoteDuration = 70 * time.Millisecond
	GeneratedAttack       = 5 * time.Millisecond
	GeneratedRelease      = 40 * time.Millisecond

	RouteDuration         = 180 * time.Millisecond
	RouteAttack           = 2 * time.Millisecond
	RouteFundamentalDecay = 160 * time.Millisecond
	RouteOvertoneDecay    = 90 * time.Millisecond

	ErrorDuration = 150 * time.Millisecond
	ErrorAttack   = 10 * time.Millisecond
	ErrorRelease  = 60 * time.Millisecond
)

// Config holds playback settings
type Config struct {
	SampleRate   int
	MasterVolume float64
	CueVolumes   [cueCount]float64
}

// DefaultConfig returns the stock settings
func DefaultConfig() *Config {
	return &Config{
		SampleRate:   44100,
		MasterVolume: 0.5,
		CueVolumes:   [cueCount]float64{0.6, 0.5, 0.4},
	}
}

// Sentinel errors
var (
	ErrUnknownCue = errors.New("unknown cue")
)
