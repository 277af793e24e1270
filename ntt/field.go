package ntt

import "math/bits"

// addMod returns (a + b) mod p for a, b < p.
func addMod(a, b, p uint64) uint64 {
	s := a + b
	if s >= p {
		s -= p
	}
	return s
}

// subMod returns (a - b) mod p for a, b < p.
func subMod(a, b, p uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + p - b
}

// mulMod returns (a * b) mod p for a, b < p via the full 128-bit product.
// The high word of the product is below p whenever both operands are, so
// the division never traps.
func mulMod(a, b, p uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, r := bits.Div64(hi, lo, p)
	return r
}

// expMod returns base^exp mod p by square and multiply.
func expMod(base, exp, p uint64) uint64 {
	result := 1 % p
	base %= p
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, p)
		}
		base = mulMod(base, base, p)
		exp >>= 1
	}
	return result
}

// primeFactors returns the distinct prime factors of x in ascending order.
func primeFactors(x uint64) []uint64 {
	var factors []uint64
	for q := uint64(2); q*q <= x; q++ {
		if x%q == 0 {
			factors = append(factors, q)
			for x%q == 0 {
				x /= q
			}
		}
	}
	if x > 1 {
		factors = append(factors, x)
	}
	return factors
}

// primitiveRoot returns a generator of the multiplicative group mod p,
// for prime p. A candidate g generates the group iff g^((p-1)/q) != 1
// for every prime factor q of p-1.
func primitiveRoot(p uint64) uint64 {
	factors := primeFactors(p - 1)
	for g := uint64(2); g < p; g++ {
		ok := true
		for _, q := range factors {
			if expMod(g, (p-1)/q, p) == 1 {
				ok = false
				break
			}
		}
		if ok {
			return g
		}
	}
	return 1
}

// bitReversal returns the bit-reversal permutation for a power-of-two n.
func bitReversal(n int) []int {
	logn := bits.Len(uint(n)) - 1
	rev := make([]int, n)
	for i := 1; i < n; i++ {
		rev[i] = rev[i>>1]>>1 | (i&1)<<(logn-1)
	}
	return rev
}
