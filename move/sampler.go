package move

import (
	"math"
	"math/rand"
)

// Sampler draws a scalar from a configured distribution using the given
// random source. It is the capability boundary towards distribution
// libraries: adapt any of them by wrapping their sampling call.
type Sampler func(rng *rand.Rand) float64

// Uniform returns a Sampler drawing uniformly from [a, b).
func Uniform(a, b float64) Sampler {
	return func(rng *rand.Rand) float64 {
		return a + rng.Float64()*(b-a)
	}
}

// UniformCircle returns a Sampler drawing uniformly from the full circle
// [0, 2π). The default polar angle distribution.
func UniformCircle() Sampler {
	return Uniform(0, 2*math.Pi)
}

// Arccos returns a Sampler drawing arccos-transformed uniforms over [0, π]:
// acos(u) with u uniform in [-1, 1). Combined with a uniform polar draw it
// yields spherically uniform directions in 3D. The default azimuthal angle
// distribution.
func Arccos() Sampler {
	return func(rng *rand.Rand) float64 {
		return math.Acos(-1 + 2*rng.Float64())
	}
}

// Constant returns a Sampler that always yields v. Useful for tests and
// fixed-turn walkers.
func Constant(v float64) Sampler {
	return func(*rand.Rand) float64 { return v }
}
