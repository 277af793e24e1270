package conv

import (
	"fmt"

	"github.com/cwbudde/algo-convolution/ntt"
)

// ConvolutionNTT performs linear convolution of a and b over the prime
// field GF(prime): the same pad/transform/multiply/invert shape as
// ConvolutionFFT, with every pointwise product reduced modulo prime
// immediately. Every output coefficient lies in [0, prime).
//
// prime must admit a root of unity whose order is the padded power-of-two
// length, i.e. the length must divide prime-1. That precondition is
// checked by the transform plan, not here; its failure propagates
// unchanged.
func ConvolutionNTT(a, b []uint64, prime uint64) ([]uint64, error) {
	if prime == 0 {
		return nil, ErrMissingModulus
	}

	m := len(a) + len(b) - 1
	if m <= 0 {
		return nil, nil
	}
	n := transformLength(m)

	plan, err := ntt.NewPlan(n, prime)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create NTT plan: %w", err)
	}

	fa := pad(a, n)
	fb := pad(b, n)

	if err := plan.Forward(fa, fa); err != nil {
		return nil, fmt.Errorf("conv: forward NTT failed: %w", err)
	}
	if err := plan.Forward(fb, fb); err != nil {
		return nil, fmt.Errorf("conv: forward NTT failed: %w", err)
	}
	if err := plan.MulCoeffs(fa, fa, fb); err != nil {
		return nil, fmt.Errorf("conv: spectrum product failed: %w", err)
	}
	if err := plan.Inverse(fa, fa); err != nil {
		return nil, fmt.Errorf("conv: inverse NTT failed: %w", err)
	}

	return fa[:m], nil
}
