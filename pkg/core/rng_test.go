package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.IntRange(1, 100) != b.IntRange(1, 100) {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
}

func TestRNGIntRangeBounds(t *testing.T) {
	r := NewRNG(7)
	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		v := r.IntRange(1, 100)
		if v < 1 || v > 100 {
			t.Fatalf("IntRange(1,100) = %d out of range", v)
		}
		seen[v] = true
	}
	if !seen[1] || !seen[100] {
		t.Fatal("expected both endpoints to be drawn")
	}
	if r.IntRange(5, 5) != 5 || r.IntRange(9, 3) != 9 {
		t.Fatal("degenerate ranges should return lo")
	}
}
