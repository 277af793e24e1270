package conv

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-convolution/internal/bigfft"
)

// ConvolutionFFT performs linear convolution of a and b in the complex
// domain: both sequences are zero-padded to the transform length, the
// spectra are multiplied pointwise, and the inverse transform is truncated
// to len(a)+len(b)-1 coefficients.
//
// precision is the number of decimal digits carried inside the transform.
// Zero selects complex128 arithmetic; a positive value routes through an
// arbitrary-precision transform and rounds back on return, which keeps
// integer-valued convolutions exact well past the float64 mantissa.
func ConvolutionFFT(a, b []complex128, precision int) ([]complex128, error) {
	m := len(a) + len(b) - 1
	if m <= 0 {
		return nil, nil
	}
	n := transformLength(m)

	if precision > 0 {
		return convolveFFTBig(a, b, n, m, precision)
	}
	if n == 1 {
		fa := pad(a, 1)
		fb := pad(b, 1)
		return []complex128{fa[0] * fb[0]}, nil
	}

	fa := pad(a, n)
	fb := pad(b, n)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}
	if err := plan.Forward(fa, fa); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(fb, fb); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range fa {
		fa[i] *= fb[i]
	}

	if err := plan.Inverse(fa, fa); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	return fa[:m], nil
}

// convolveFFTBig runs the same pad/transform/multiply/invert shape through
// the arbitrary-precision transform.
func convolveFFTBig(a, b []complex128, n, m, digits int) ([]complex128, error) {
	prec := bitsForDigits(digits)

	tr, err := bigfft.NewTransform(n, prec)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT transform: %w", err)
	}

	fa := bigfft.FromComplex128(a, n, prec)
	fb := bigfft.FromComplex128(b, n, prec)

	if err := tr.Forward(fa); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := tr.Forward(fb); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := tr.MulCoeffs(fa, fa, fb); err != nil {
		return nil, fmt.Errorf("conv: spectrum product failed: %w", err)
	}
	if err := tr.Inverse(fa); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	return bigfft.ToComplex128(fa[:m]), nil
}

// bitsForDigits converts decimal digits to bits of mantissa, with headroom
// for rounding inside the transform.
func bitsForDigits(digits int) uint {
	return uint(math.Ceil(float64(digits)*math.Log2(10))) + 32
}
