package conv

import (
	"errors"
	"math"
)

// Errors returned by convolution functions.
var (
	ErrNegativeCycle  = errors.New("conv: cycle length must be non-negative")
	ErrAmbiguousMode  = errors.New("conv: both precision and prime supplied, pick one numeric domain")
	ErrMissingModulus = errors.New("conv: prime modulus required for NTT")
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// Options selects the convolution strategy for Convolution.
// The zero value requests plain linear convolution in the complex domain.
type Options struct {
	// Precision is the number of decimal digits carried inside the complex
	// transform. Zero picks the engine default (complex128 arithmetic).
	Precision int

	// Prime selects modular convolution under this modulus. Zero leaves the
	// complex engine in charge.
	Prime uint64

	// Cycle folds the linear result into a circular convolution of this
	// length. Zero returns the full linear convolution.
	Cycle int

	// NTT requires the modular engine. Prime must be set as well; the flag
	// exists so callers cannot silently fall back to the complex engine.
	NTT bool
}

// Convolution convolves two integer sequences using the strategy described
// by opts. Exactly one engine runs per call: the modular engine when Prime
// is set, the complex engine otherwise. With a modulus, input values are
// reduced into [0, Prime) first and the cyclic fold stays inside the field;
// without one, integer coefficients are recovered by rounding.
func Convolution(a, b []int64, opts Options) ([]int64, error) {
	if opts.Cycle < 0 {
		return nil, ErrNegativeCycle
	}
	if opts.Precision > 0 && opts.Prime != 0 {
		return nil, ErrAmbiguousMode
	}

	if opts.Prime != 0 {
		ls, err := ConvolutionNTT(reduceSigned(a, opts.Prime), reduceSigned(b, opts.Prime), opts.Prime)
		if err != nil {
			return nil, err
		}
		if opts.Cycle > 0 {
			ls = wrapMod(ls, opts.Cycle, opts.Prime)
		}
		return fromUnsigned(ls), nil
	}

	if opts.NTT {
		return nil, ErrMissingModulus
	}

	ls, err := ConvolutionFFT(toComplex(a), toComplex(b), opts.Precision)
	if err != nil {
		return nil, err
	}
	if opts.Cycle > 0 {
		ls = wrap(ls, opts.Cycle)
	}
	return roundReal(ls), nil
}

// wrap folds a linear convolution into a circular result of length c:
// out[i] is the sum of seq[j] over all j ≡ i (mod c). Positions past the
// end of seq contribute nothing, so c larger than len(seq) simply
// zero-extends.
func wrap(seq []complex128, c int) []complex128 {
	out := make([]complex128, c)
	for j, v := range seq {
		out[j%c] += v
	}
	return out
}

// wrapMod is wrap over a prime field: every partial sum is reduced so
// intermediate values stay inside [0, p).
func wrapMod(seq []uint64, c int, p uint64) []uint64 {
	out := make([]uint64, c)
	for j, v := range seq {
		i := j % c
		out[i] = (out[i] + v%p) % p
	}
	return out
}

func toComplex(s []int64) []complex128 {
	out := make([]complex128, len(s))
	for i, v := range s {
		out[i] = complex(float64(v), 0)
	}
	return out
}

func roundReal(s []complex128) []int64 {
	out := make([]int64, len(s))
	for i, v := range s {
		out[i] = int64(math.Round(real(v)))
	}
	return out
}

// reduceSigned maps signed values into [0, p).
func reduceSigned(s []int64, p uint64) []uint64 {
	m := int64(p)
	out := make([]uint64, len(s))
	for i, v := range s {
		r := v % m
		if r < 0 {
			r += m
		}
		out[i] = uint64(r)
	}
	return out
}

func fromUnsigned(s []uint64) []int64 {
	out := make([]int64, len(s))
	for i, v := range s {
		out[i] = int64(v)
	}
	return out
}
