package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-vecmath"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireComplexNearlyEqual fails t if got and want differ in length or if
// the magnitude of any element difference exceeds eps.
func RequireComplexNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i, d := range MagnitudeDiff(got, want) {
		if d > eps {
			t.Fatalf("index %d: got %v, want %v (|diff| %v > eps %v)", i, got[i], want[i], d, eps)
		}
	}
}

// MagnitudeDiff returns the per-element magnitude of got-want.
// Slices must have equal length.
func MagnitudeDiff(got, want []complex128) []float64 {
	re := make([]float64, len(got))
	im := make([]float64, len(got))
	for i := range got {
		d := got[i] - want[i]
		re[i] = real(d)
		im[i] = imag(d)
	}
	mag := make([]float64, len(got))
	vecmath.Magnitude(mag, re, im)
	return mag
}

// RequireUintSliceEqual fails t on the first differing element.
func RequireUintSliceEqual(t *testing.T, got, want []uint64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

// RequireIntSliceEqual fails t on the first differing element.
func RequireIntSliceEqual(t *testing.T, got, want []int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}
