// Package testutil provides deterministic signals and tolerance helpers for tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicSine generates a sine wave with the given frequency in cycles per sample.
func DeterministicSine(freq, amplitude, phase float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freq
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phase)
	}
	return out
}

// Triaxial generates three coupled components of the given length. The
// vertical component is an AR(1) process and both horizontal components
// respond to it with a one-sample delay plus independent noise, so all
// covariance sequences are non-trivial.
func Triaxial(seed int64, length int) (x1, x2, v []float64) {
	e := DeterministicNoise(seed, 1, length)
	n1 := DeterministicNoise(seed+1, 0.5, length)
	n2 := DeterministicNoise(seed+2, 0.5, length)

	v = make([]float64, length)
	x1 = make([]float64, length)
	x2 = make([]float64, length)
	for t := 0; t < length; t++ {
		v[t] = e[t]
		if t > 0 {
			v[t] += 0.6 * v[t-1]
			x1[t] = 0.8*v[t-1] + n1[t]
			x2[t] = -0.4*v[t-1] + 0.3*x1[t-1] + n2[t]
		} else {
			x1[t] = n1[t]
			x2[t] = n2[t]
		}
	}
	return x1, x2, v
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
