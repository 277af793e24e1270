// Package bigfft implements a radix-2 complex Fourier transform over
// arbitrary-precision values, for callers that need more decimal digits
// than complex128 arithmetic carries. Values are lattigo bignum.Complex
// numbers; twiddle factors are derived from bignum.Pi at the working
// precision.
package bigfft

import (
	"errors"
	"math/big"
	"math/bits"

	"github.com/tuneinsight/lattigo/v5/utils/bignum"
)

// Errors returned by transform construction and execution.
var (
	ErrNotPowerOfTwo  = errors.New("bigfft: transform length must be zero, one, or a power of two")
	ErrLengthMismatch = errors.New("bigfft: sequence length does not match transform size")
)

// Transform performs forward and inverse DFTs of a fixed power-of-two
// length at a fixed bit precision.
type Transform struct {
	n    int
	prec uint
	w    []*bignum.Complex // w[k] = e^(2πik/n) for k < n/2
	winv []*bignum.Complex // conjugate twiddles
	ninv *big.Float
	rev  []int
	mul  *bignum.ComplexMultiplier
}

// NewTransform creates a transform for sequences of length n carrying
// prec bits of mantissa.
func NewTransform(n int, prec uint) (*Transform, error) {
	if n < 0 || n&(n-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}

	t := &Transform{n: n, prec: prec, mul: bignum.NewComplexMultiplier()}
	if n <= 1 {
		return t, nil
	}

	// Primitive root e^(2πi/n); higher powers follow by multiplication.
	theta := bignum.Pi(prec)
	theta.Mul(theta, bignum.NewFloat(2, prec))
	theta.Quo(theta, bignum.NewFloat(n, prec))
	root := &bignum.Complex{bignum.Cos(theta), bignum.Sin(theta)}

	half := n / 2
	t.w = make([]*bignum.Complex, half)
	t.winv = make([]*bignum.Complex, half)
	t.w[0] = bignum.ToComplex(1.0, prec)
	for k := 1; k < half; k++ {
		wk := bignum.NewComplex().SetPrec(prec)
		t.mul.Mul(t.w[k-1], root, wk)
		t.w[k] = wk
	}
	for k, wk := range t.w {
		t.winv[k] = &bignum.Complex{
			new(big.Float).Copy(wk[0]),
			new(big.Float).Neg(wk[1]),
		}
	}

	t.ninv = new(big.Float).SetPrec(prec).Quo(bignum.NewFloat(1, prec), bignum.NewFloat(n, prec))
	t.rev = bitReversal(n)

	return t, nil
}

// Size returns the transform length.
func (t *Transform) Size() int {
	return t.n
}

// Forward computes the in-place DFT of v.
func (t *Transform) Forward(v []*bignum.Complex) error {
	return t.transform(v, t.w, false)
}

// Inverse computes the in-place inverse DFT of v, scaling by 1/n so the
// pair round-trips up to the working precision.
func (t *Transform) Inverse(v []*bignum.Complex) error {
	return t.transform(v, t.winv, true)
}

// MulCoeffs computes the pointwise product dst[i] = a[i]*b[i]. dst may
// alias either operand.
func (t *Transform) MulCoeffs(dst, a, b []*bignum.Complex) error {
	if len(dst) != t.n || len(a) != t.n || len(b) != t.n {
		return ErrLengthMismatch
	}
	for i := range dst {
		t.mul.Mul(a[i], b[i], dst[i])
	}
	return nil
}

func (t *Transform) transform(v, twiddle []*bignum.Complex, scale bool) error {
	if len(v) != t.n {
		return ErrLengthMismatch
	}

	n := t.n
	if n <= 1 {
		return nil
	}

	for i, j := range t.rev {
		if i < j {
			v[i], v[j] = v[j], v[i]
		}
	}

	tmp := bignum.NewComplex().SetPrec(t.prec)
	for m := 2; m <= n; m <<= 1 {
		half := m >> 1
		step := n / m
		for k := 0; k < n; k += m {
			for j := 0; j < half; j++ {
				lo, hi := k+j, k+j+half
				t.mul.Mul(v[hi], twiddle[j*step], tmp)
				v[hi].Sub(v[lo], tmp)
				v[lo].Add(v[lo], tmp)
			}
		}
	}

	if scale {
		for _, c := range v {
			c[0].Mul(c[0], t.ninv)
			c[1].Mul(c[1], t.ninv)
		}
	}

	return nil
}

// FromComplex128 lifts s into n big-complex values at the given precision,
// zero-padding on the right. The input slice is never aliased.
func FromComplex128(s []complex128, n int, prec uint) []*bignum.Complex {
	out := make([]*bignum.Complex, n)
	for i := range out {
		if i < len(s) {
			out[i] = bignum.ToComplex(s[i], prec)
		} else {
			out[i] = bignum.NewComplex().SetPrec(prec)
		}
	}
	return out
}

// ToComplex128 rounds v back to complex128.
func ToComplex128(v []*bignum.Complex) []complex128 {
	out := make([]complex128, len(v))
	for i, c := range v {
		out[i] = c.Complex128()
	}
	return out
}

func bitReversal(n int) []int {
	logn := bits.Len(uint(n)) - 1
	rev := make([]int, n)
	for i := 1; i < n; i++ {
		rev[i] = rev[i>>1]>>1 | (i&1)<<(logn-1)
	}
	return rev
}
