// Package ntt implements the number-theoretic transform over a prime field.
//
// The transform is the modular analogue of the discrete Fourier transform:
// instead of a complex exponential it uses an n-th principal root of unity
// modulo a prime p, which exists exactly when n divides p-1. Primes of the
// form k*2^s + 1 admit roots for every power-of-two order up to 2^s.
//
// A Plan precomputes the root of unity, twiddle tables, and the bit-reversal
// permutation for a fixed length and modulus:
//
//	plan, err := ntt.NewPlan(1024, 19*1<<10+1)
//	plan.Forward(dst, src)
//	plan.Inverse(dst, dst)
//
// Forward and Inverse are exact inverses of each other modulo p, with no
// precision loss, since all arithmetic happens inside the field.
package ntt
