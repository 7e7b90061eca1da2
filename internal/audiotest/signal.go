// Package audiotest provides deterministic signal generators shared by
// package tests. Generators are pure functions of their arguments so tests
// stay reproducible across runs and platforms.
package audiotest

import "math"

// Sine returns n samples of a sine wave at the given frequency, amplitude,
// and sample rate, starting at phase zero.
func Sine(freq, amplitude, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
	}

	return out
}

// Silence returns n zero samples.
func Silence(n int) []float64 {
	return make([]float64, n)
}

// Noise returns n samples of pseudo-random noise in [-amplitude, amplitude]
// from a fixed-seed linear congruential generator.
func Noise(amplitude float64, n int) []float64 {
	out := make([]float64, n)

	state := uint64(0x9e3779b97f4a7c15)
	for i := range out {
		state = state*6364136223846793005 + 1442695040888963407
		u := float64(state>>11) / float64(1<<53)
		out[i] = amplitude * (2*u - 1)
	}

	return out
}

// Mix sums any number of equal-length signals sample by sample. Shorter
// signals pad with zeros.
func Mix(signals ...[]float64) []float64 {
	n := 0
	for _, s := range signals {
		if len(s) > n {
			n = len(s)
		}
	}

	out := make([]float64, n)
	for _, s := range signals {
		for i, x := range s {
			out[i] += x
		}
	}

	return out
}
