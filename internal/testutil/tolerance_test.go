package testutil

import "testing"

func TestMagnitudeDiff(t *testing.T) {
	got := []complex128{1 + 1i, 2}
	want := []complex128{1 + 1i, 2 + 1i}

	d := MagnitudeDiff(got, want)
	if d[0] != 0 {
		t.Errorf("d[0] = %v, want 0", d[0])
	}
	if d[1] != 1 {
		t.Errorf("d[1] = %v, want 1", d[1])
	}
}

func TestRandomIntsDeterministic(t *testing.T) {
	a := RandomInts(7, 16, 100)
	b := RandomInts(7, 16, 100)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sequences diverge at %d", i)
		}
		if a[i] < -100 || a[i] > 100 {
			t.Fatalf("value %d out of range", a[i])
		}
	}
}
