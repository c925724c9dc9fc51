package core

import (
	"slices"
	"testing"
)

func TestGridBounds(t *testing.T) {
	g := NewGrid(3, 2)
	if len(g.Cells()) != 6 {
		t.Fatalf("len(cells) = %d, want 6", len(g.Cells()))
	}
	g.Set(2, 1, 1)
	g.Set(3, 0, 1)
	g.Set(-1, 0, 1)
	if g.At(2, 1) != 1 {
		t.Fatal("expected (2,1) to be set")
	}
	if g.Count() != 1 {
		t.Fatalf("out-of-range writes must be ignored, count = %d", g.Count())
	}
	if g.At(0, 2) != 0 || g.At(-1, -1) != 0 {
		t.Fatal("out-of-range reads must return 0")
	}
	if g.Index(2, 1) != 5 {
		t.Fatalf("Index(2,1) = %d, want 5", g.Index(2, 1))
	}
}

func TestGridCopyAndClone(t *testing.T) {
	src := NewGrid(2, 2)
	src.Set(0, 1, 1)
	dst := NewGrid(2, 2)
	dst.CopyFrom(src)
	if !dst.Equal(src) {
		t.Fatal("CopyFrom did not copy contents")
	}

	src.Set(1, 1, 1)
	if dst.Equal(src) {
		t.Fatal("CopyFrom must not alias storage")
	}

	clone := src.Clone()
	src.Clear()
	if clone.Count() != 2 {
		t.Fatalf("clone changed after Clear, count = %d", clone.Count())
	}
	if !slices.Equal(src.Cells(), []uint8{0, 0, 0, 0}) {
		t.Fatal("Clear left live cells")
	}
}

func TestGridCopyFromShapeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on shape mismatch")
		}
	}()
	NewGrid(2, 2).CopyFrom(NewGrid(2, 3))
}

func TestGridEqualShape(t *testing.T) {
	if NewGrid(2, 3).Equal(NewGrid(3, 2)) {
		t.Fatal("grids with different shapes must not compare equal")
	}
}

func TestNewGridOverflow(t *testing.T) {
	g := NewGrid(1<<62, 4)
	if g.W != 0 || g.H != 0 || len(g.Cells()) != 0 {
		t.Fatalf("overflowing dimensions gave a %dx%d grid", g.W, g.H)
	}
}
