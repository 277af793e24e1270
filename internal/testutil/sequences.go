package testutil

import "math/rand"

// RandomInts generates a deterministic signed integer sequence with values
// in [-max, max].
func RandomInts(seed int64, length int, max int64) []int64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int64, length)
	for i := range out {
		out[i] = rng.Int63n(2*max+1) - max
	}
	return out
}

// RandomUints generates a deterministic sequence with values in [0, max).
func RandomUints(seed int64, length int, max uint64) []uint64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]uint64, length)
	for i := range out {
		out[i] = rng.Uint64() % max
	}
	return out
}

// RandomFloats generates deterministic white noise in [-amplitude, amplitude].
func RandomFloats(seed int64, length int, amplitude float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, length)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// RandomComplex generates deterministic complex noise with both parts in
// [-amplitude, amplitude].
func RandomComplex(seed int64, length int, amplitude float64) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex128, length)
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}

// ToComplex lifts an integer sequence into the complex plane.
func ToComplex(s []int64) []complex128 {
	out := make([]complex128, len(s))
	for i, v := range s {
		out[i] = complex(float64(v), 0)
	}
	return out
}

// ToFloats converts an integer sequence to float64.
func ToFloats(s []int64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}
