// Package conv provides exact discrete convolution of finite sequences.
//
// The package offers two transform-based convolution engines plus a cyclic
// folding step that can be layered on either:
//
//   - Complex-domain convolution via FFT, optionally carried at an elevated
//     decimal precision inside the transform
//   - Modular convolution via a number-theoretic transform (NTT) over a
//     prime field, with every coefficient reduced into [0, prime)
//   - Cyclic convolution, obtained by folding the linear result at a fixed
//     period
//
// # Usage
//
// The typed engines convolve in their native domains:
//
//	result, err := conv.ConvolutionFFT(a, b, 0)       // []complex128
//	result, err := conv.ConvolutionNTT(a, b, prime)   // []uint64
//
// Convolution is the single integer-sequence entry point; Options picks
// exactly one engine per call:
//
//	result, err := conv.Convolution(a, b, conv.Options{Cycle: 3})
//	result, err := conv.Convolution(a, b, conv.Options{Prime: 19*1<<10 + 1})
//
// # Engine Selection
//
// Setting Prime selects the modular engine; setting Precision selects the
// complex engine with that many decimal digits inside the transform.
// Supplying both is an error, since the two numeric domains are mutually
// exclusive. All calls are pure: no state survives a call and the input
// slices are never mutated.
package conv
