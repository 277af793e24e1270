package conv

// transformLength returns the smallest power of two that can hold a linear
// convolution of length m.
func transformLength(m int) int {
	n := 1
	for n < m {
		n *= 2
	}
	return n
}

// pad copies s into a freshly allocated buffer of length n, leaving the
// tail at the additive identity. The caller's slice is never aliased.
func pad[T any](s []T, n int) []T {
	out := make([]T, n)
	copy(out, s)
	return out
}
