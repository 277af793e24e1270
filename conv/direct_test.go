package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-convolution/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "moving sum",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{0, 0, 1},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 1e-10)
		})
	}
}

func TestDirectErrors(t *testing.T) {
	if _, err := Direct([]float64{}, []float64{1, 2}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := Direct([]float64{1, 2}, []float64{}); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestDirectCircular(t *testing.T) {
	a := []float64{1, 2, 3, 4}

	// Circular convolution with an impulse at 0 returns the input.
	result, err := DirectCircular(a, []float64{1, 0, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, result, a, 1e-10)

	// An impulse at 1 rotates it.
	result, err = DirectCircular(a, []float64{0, 1, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, result, []float64{4, 1, 2, 3}, 1e-10)
}

func TestDirectCircularErrors(t *testing.T) {
	if _, err := DirectCircular([]float64{1, 2}, []float64{1, 2, 3}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
	if _, err := DirectCircular(nil, nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}
