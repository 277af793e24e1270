package ntt

import (
	"errors"
	"math/big"
)

// Errors returned by plan construction and transforms.
var (
	ErrNotPowerOfTwo   = errors.New("ntt: transform length must be zero, one, or a power of two")
	ErrNotPrime        = errors.New("ntt: modulus must be prime")
	ErrModulusTooLarge = errors.New("ntt: modulus must fit in 63 bits")
	ErrNoRootOfUnity   = errors.New("ntt: transform length does not divide modulus-1")
	ErrLengthMismatch  = errors.New("ntt: sequence length does not match plan size")
)

// Plan holds the precomputed tables for number-theoretic transforms of a
// fixed length under a fixed prime modulus.
type Plan struct {
	n    int
	p    uint64
	w    []uint64 // forward twiddles, w[k] = root^k for k < n/2
	winv []uint64 // inverse twiddles
	ninv uint64   // n^-1 mod p
	rev  []int    // bit-reversal permutation
}

// NewPlan creates a transform plan for sequences of length n under the
// given prime modulus. n must be zero, one, or a power of two, and the
// modulus must admit an n-th root of unity, i.e. n must divide prime-1.
// The root is derived from a primitive root of the field, so plan
// construction is where an unsuitable modulus is detected.
func NewPlan(n int, prime uint64) (*Plan, error) {
	if n < 0 || n&(n-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}
	if prime >= 1<<63 {
		return nil, ErrModulusTooLarge
	}
	if prime < 2 || !new(big.Int).SetUint64(prime).ProbablyPrime(0) {
		return nil, ErrNotPrime
	}

	plan := &Plan{n: n, p: prime}
	if n <= 1 {
		return plan, nil
	}
	if (prime-1)%uint64(n) != 0 {
		return nil, ErrNoRootOfUnity
	}

	root := expMod(primitiveRoot(prime), (prime-1)/uint64(n), prime)
	rootInv := expMod(root, prime-2, prime)

	half := n / 2
	plan.w = make([]uint64, half)
	plan.winv = make([]uint64, half)
	plan.w[0], plan.winv[0] = 1, 1
	for k := 1; k < half; k++ {
		plan.w[k] = mulMod(plan.w[k-1], root, prime)
		plan.winv[k] = mulMod(plan.winv[k-1], rootInv, prime)
	}
	plan.ninv = expMod(uint64(n), prime-2, prime)
	plan.rev = bitReversal(n)

	return plan, nil
}

// Size returns the transform length.
func (pl *Plan) Size() int {
	return pl.n
}

// Modulus returns the prime modulus.
func (pl *Plan) Modulus() uint64 {
	return pl.p
}

// Forward computes the number-theoretic transform of src into dst.
// Both slices must have the plan's length; dst may alias src.
// Input values are reduced modulo the plan's modulus first.
func (pl *Plan) Forward(dst, src []uint64) error {
	return pl.transform(dst, src, pl.w, false)
}

// Inverse computes the inverse transform of src into dst, scaling by
// n^-1 so that Inverse(Forward(s)) == s mod p, exactly.
func (pl *Plan) Inverse(dst, src []uint64) error {
	return pl.transform(dst, src, pl.winv, true)
}

// MulCoeffs computes the pointwise product dst[i] = a[i]*b[i] mod p,
// reducing every product immediately.
func (pl *Plan) MulCoeffs(dst, a, b []uint64) error {
	if len(dst) != pl.n || len(a) != pl.n || len(b) != pl.n {
		return ErrLengthMismatch
	}
	for i := range dst {
		dst[i] = mulMod(a[i]%pl.p, b[i]%pl.p, pl.p)
	}
	return nil
}

// transform runs the iterative decimation-in-time butterflies after a
// bit-reversal permutation.
func (pl *Plan) transform(dst, src, twiddle []uint64, scale bool) error {
	if len(src) != pl.n || len(dst) != pl.n {
		return ErrLengthMismatch
	}
	for i, v := range src {
		dst[i] = v % pl.p
	}

	n := pl.n
	if n <= 1 {
		return nil
	}

	for i, j := range pl.rev {
		if i < j {
			dst[i], dst[j] = dst[j], dst[i]
		}
	}

	for m := 2; m <= n; m <<= 1 {
		half := m >> 1
		step := n / m
		for k := 0; k < n; k += m {
			for j := 0; j < half; j++ {
				u := dst[k+j]
				t := mulMod(twiddle[j*step], dst[k+j+half], pl.p)
				dst[k+j] = addMod(u, t, pl.p)
				dst[k+j+half] = subMod(u, t, pl.p)
			}
		}
	}

	if scale {
		for i := range dst {
			dst[i] = mulMod(dst[i], pl.ninv, pl.p)
		}
	}

	return nil
}
