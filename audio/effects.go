package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/shipyard/rng"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rng.Rand
}

// NewOscillator creates a wave streamer. Noise is seeded so cues sound the
// same on every run
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rng.New(uint32(freq)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.RandFloat(-1, 1)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero or less is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func note(freq float64, duration, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// createGeneratedSound is a rising three-note arpeggio (C6 E6 G6)
func createGeneratedSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(
		note(1046.50, GeneratedNoteDuration, GeneratedAttack, GeneratedRelease, WaveSquare, rate),
		note(1318.51, GeneratedNoteDuration, GeneratedAttack, GeneratedRelease, WaveSquare, rate),
		note(1567.98, GeneratedNoteDuration, GeneratedAttack, GeneratedRelease, WaveSquare, rate),
	)
	return newVolume(seq, cfg.CueVolumes[CueGenerated]*cfg.MasterVolume)
}

// createRouteSound is a bell: A5 with an octave overtone
func createRouteSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	mixed := beep.Mix(
		newVolume(note(880, RouteDuration, RouteAttack, RouteFundamentalDecay, WaveSine, rate), 0.7),
		newVolume(note(1760, RouteDuration, RouteAttack, RouteOvertoneDecay, WaveSine, rate), 0.3),
	)
	return newVolume(mixed, cfg.CueVolumes[CueRoute]*cfg.MasterVolume)
}

// createErrorSound is a low saw buzz
func createErrorSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	buzz := note(100, ErrorDuration, ErrorAttack, ErrorRelease, WaveSaw, rate)
	return newVolume(buzz, cfg.CueVolumes[CueError]*cfg.MasterVolume)
}

// CueStreamer builds a fresh streamer for cue
func CueStreamer(cue Cue, cfg *Config) (beep.Streamer, error) {
	switch cue {
	case CueGenerated:
		return createGeneratedSound(cfg), nil
	case CueRoute:
		return createRouteSound(cfg), nil
	case CueError:
		return createErrorSound(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCue, int(cue))
	}
}
