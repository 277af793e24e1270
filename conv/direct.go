package conv

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
//
// This is the O(N*M) reference algorithm; the transform engines are
// preferred for anything but short sequences.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated
// destination. dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	for i := range dst {
		dst[i] = 0
	}
	for i := range a {
		for j := range b {
			dst[i+j] += a[i] * b[j]
		}
	}
}

// DirectCircular performs circular convolution of a and b by modular index
// arithmetic. Both inputs must have the same length N, and the result has
// length N.
func DirectCircular(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	result := make([]float64, len(a))
	DirectCircularTo(result, a, b)
	return result, nil
}

// DirectCircularTo performs circular convolution to a pre-allocated
// destination.
func DirectCircularTo(dst, a, b []float64) {
	n := len(a)
	for i := range dst {
		dst[i] = 0
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst[(i+j)%n] += a[i] * b[j]
		}
	}
}
