package ntt

import (
	"errors"
	"math/rand"
	"testing"
)

const fermatLike = 19*1<<10 + 1 // 19457, supports orders up to 2^10

func TestPlanRoundTrip(t *testing.T) {
	primes := []uint64{fermatLike, 7681, 12289, 97}

	for _, p := range primes {
		for _, n := range []int{1, 2, 4, 8, 16, 32} {
			if n > 1 && (p-1)%uint64(n) != 0 {
				continue
			}

			plan, err := NewPlan(n, p)
			if err != nil {
				t.Fatalf("NewPlan(%d, %d): %v", n, p, err)
			}

			rng := rand.New(rand.NewSource(int64(n)))
			src := make([]uint64, n)
			for i := range src {
				src[i] = rng.Uint64() % p
			}

			buf := make([]uint64, n)
			if err := plan.Forward(buf, src); err != nil {
				t.Fatalf("Forward: %v", err)
			}
			if err := plan.Inverse(buf, buf); err != nil {
				t.Fatalf("Inverse: %v", err)
			}

			for i := range src {
				if buf[i] != src[i] {
					t.Fatalf("p=%d n=%d: round trip mismatch at %d: got %d, want %d", p, n, i, buf[i], src[i])
				}
			}
		}
	}
}

func TestForwardDCBin(t *testing.T) {
	// The first output bin of the transform is the plain sum of the inputs.
	plan, err := NewPlan(8, fermatLike)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}

	src := []uint64{1, 2, 3, 4, 5, 6, 7, 8}
	dst := make([]uint64, 8)
	if err := plan.Forward(dst, src); err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if dst[0] != 36 {
		t.Errorf("dst[0] = %d, want 36", dst[0])
	}
}

func TestForwardReducesInput(t *testing.T) {
	plan, err := NewPlan(2, 97)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}

	dst := make([]uint64, 2)
	if err := plan.Forward(dst, []uint64{98, 1}); err != nil {
		t.Fatalf("Forward: %v", err)
	}
	// 98 ≡ 1 (mod 97), so the transform of [98, 1] equals that of [1, 1].
	if dst[0] != 2 || dst[1] != 0 {
		t.Errorf("Forward([98,1]) = %v, want [2 0]", dst)
	}
}

func TestNewPlanErrors(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		prime uint64
		want  error
	}{
		{"not a power of two", 3, fermatLike, ErrNotPowerOfTwo},
		{"negative length", -1, fermatLike, ErrNotPowerOfTwo},
		{"composite modulus", 8, 15, ErrNotPrime},
		{"zero modulus", 8, 0, ErrNotPrime},
		{"no root of unity", 4, 7, ErrNoRootOfUnity},
		{"modulus too large", 8, 1 << 63, ErrModulusTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlan(tt.n, tt.prime)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewPlan(%d, %d) = %v, want %v", tt.n, tt.prime, err, tt.want)
			}
		})
	}
}

func TestLengthMismatch(t *testing.T) {
	plan, err := NewPlan(4, fermatLike)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}

	if err := plan.Forward(make([]uint64, 4), make([]uint64, 3)); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Forward with short src = %v, want ErrLengthMismatch", err)
	}
	if err := plan.MulCoeffs(make([]uint64, 3), make([]uint64, 4), make([]uint64, 4)); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("MulCoeffs with short dst = %v, want ErrLengthMismatch", err)
	}
}

func TestTrivialPlans(t *testing.T) {
	for _, n := range []int{0, 1} {
		plan, err := NewPlan(n, fermatLike)
		if err != nil {
			t.Fatalf("NewPlan(%d): %v", n, err)
		}
		src := make([]uint64, n)
		if n == 1 {
			src[0] = 42
		}
		dst := make([]uint64, n)
		if err := plan.Forward(dst, src); err != nil {
			t.Fatalf("Forward: %v", err)
		}
		if n == 1 && dst[0] != 42 {
			t.Errorf("length-1 transform = %d, want 42", dst[0])
		}
	}
}
