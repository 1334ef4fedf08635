package nn

import (
	"math"
	"math/rand"
)

// Initializer supplies initial parameter values, one call per parameter.
//
// Randomness is injected through the Initializer, so a seeded source makes
// model construction reproducible.
type Initializer func() float64

// Uniform draws values from U(lo, hi) using rng.
//
// rng is not safe for concurrent use; give each goroutine its own.
func Uniform(rng *rand.Rand, lo, hi float64) Initializer {
	return func() float64 {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		return lo + rng.Float64()*(hi-lo)
	}
}

// Xavier (Glorot) initialization.
//
// Draws from U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))),
// which keeps the variance of activations roughly constant across layers.
func Xavier(rng *rand.Rand, fanIn, fanOut int) Initializer {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return Uniform(rng, -bound, bound)
}

// Constant returns v for every parameter.
func Constant(v float64) Initializer {
	return func() float64 {
		return v
	}
}

// Sequence returns the given values in order and panics when exhausted.
// Useful for building modules with exact, known weights.
func Sequence(values ...float64) Initializer {
	i := 0
	return func() float64 {
		if i >= len(values) {
			panic("nn: Sequence initializer exhausted")
		}
		v := values[i]
		i++
		return v
	}
}
