// Package rng provides the seeded pseudo-random source shared by the generator
// and catalog. Output is Mulberry32 and must stay bit-identical across platforms:
// the same seed always yields the same sequence.
package rng

import "math"

const (
	increment = 0x6d2b79f5
	scale     = 1 << 32
)

// Rand is a Mulberry32 generator. State is a single uint32.
// Not safe for concurrent use; each owner keeps its own instance
type Rand struct {
	state uint32
}

// New creates a generator from seed
func New(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Float returns a float in [0, 1) and advances the state
func (r *Rand) Float() float64 {
	r.state += increment
	s := r.state
	t := (s ^ (s >> 15)) * (1 | s)
	t = (t + (t^(t>>7))*(61|t)) ^ t
	return float64(t^(t>>14)) / scale
}

// RandInt returns an integer in [min, max], both inclusive
func (r *Rand) RandInt(min, max int) int {
	return int(math.Floor(r.Float()*float64(max-min+1))) + min
}

// RandRange returns an integer in [min, max)
func (r *Rand) RandRange(min, max int) int {
	return int(math.Floor(r.Float()*float64(max-min))) + min
}

// RandFloat returns a float in [min, max)
func (r *Rand) RandFloat(min, max float64) float64 {
	return r.Float()*(max-min) + min
}

// Chance returns true with probability p
func (r *Rand) Chance(p float64) bool {
	return r.Float() < p
}

// Seed returns the current state. Feeding it to SetSeed or New resumes the sequence
func (r *Rand) Seed() uint32 {
	return r.state
}

// SetSeed replaces the state
func (r *Rand) SetSeed(seed uint32) {
	r.state = seed
}

// Pick returns a uniformly chosen element of s. Panics on an empty slice
func Pick[T any](r *Rand, s []T) T {
	return s[r.RandRange(0, len(s))]
}

// Shuffle permutes s in place (Fisher-Yates from the tail) and returns it
func Shuffle[T any](r *Rand, s []T) []T {
	for i := len(s) - 1; i > 0; i-- {
		j := r.RandRange(0, i+1)
		s[i], s[j] = s[j], s[i]
	}
	return s
}
