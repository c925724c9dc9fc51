package life

import (
	"slices"
	"testing"
)

func TestStabilizeStillLife(t *testing.T) {
	b := mustBoard(t, 4, 4, [2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})
	res := Stabilize(b, 10)
	want := Result{Outcome: Stable, Generations: 1, Period: 1, FirstSeen: 0}
	if res != want {
		t.Fatalf("Stabilize(block) = %+v, want %+v", res, want)
	}
	if !res.Reached() {
		t.Fatal("a still life should be reported as reached")
	}
}

func TestStabilizeDiesOut(t *testing.T) {
	b := mustBoard(t, 4, 4, [2]int{2, 2})
	res := Stabilize(b, 10)
	want := Result{Outcome: Stable, Generations: 2, Period: 1, FirstSeen: 1}
	if res != want {
		t.Fatalf("Stabilize(single cell) = %+v, want %+v", res, want)
	}
	if b.Population() != 0 || b.Generation() != 2 {
		t.Fatalf("board left at generation %d with %d live cells", b.Generation(), b.Population())
	}
}

func TestStabilizeOscillator(t *testing.T) {
	b := mustBoard(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	res := Stabilize(b, 10)
	want := Result{Outcome: Cyclic, Generations: 2, Period: 2, FirstSeen: 0}
	if res != want {
		t.Fatalf("Stabilize(blinker) = %+v, want %+v", res, want)
	}
	if !res.Reached() {
		t.Fatal("an oscillator should be reported as reached")
	}
}

func TestStabilizeExhausted(t *testing.T) {
	// A glider needs many generations to reach the corner of a 20x20 board.
	b := mustBoard(t, 20, 20, [2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
	res := Stabilize(b, 3)
	if res.Outcome != Exhausted || res.Generations != 3 || res.Reached() {
		t.Fatalf("Stabilize(glider, 3) = %+v, want exhausted after 3", res)
	}
	if b.Generation() != 3 {
		t.Fatalf("generation = %d, want 3", b.Generation())
	}
}

func TestStabilizeZeroAttempts(t *testing.T) {
	b := mustBoard(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	before := append([]uint8(nil), b.Cells()...)
	for _, attempts := range []int{0, -1} {
		res := Stabilize(b, attempts)
		if res != (Result{Outcome: Exhausted}) {
			t.Fatalf("Stabilize(%d) = %+v, want exhausted with no steps", attempts, res)
		}
	}
	if !slices.Equal(before, b.Cells()) || b.Generation() != 0 {
		t.Fatal("zero attempts must not touch the board")
	}
}

func TestTrackerLatches(t *testing.T) {
	b := mustBoard(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	tr := NewTracker(b)
	if tr.Observe(Step(b)) != Running {
		t.Fatal("first blinker step should not repeat")
	}
	if tr.Observe(Step(b)) != Cyclic {
		t.Fatal("second blinker step should close the cycle")
	}
	Step(b)
	if tr.Observe(b) != Cyclic || tr.Result().Generations != 2 {
		t.Fatalf("tracker did not latch: %+v", tr.Result())
	}
}

func TestOutcomeText(t *testing.T) {
	for o, want := range map[Outcome]string{Running: "running", Stable: "stable", Cyclic: "cyclic", Exhausted: "exhausted", Outcome(9): "unknown"} {
		text, _ := o.MarshalText()
		if string(text) != want {
			t.Fatalf("Outcome(%d) = %q, want %q", int(o), text, want)
		}
	}
}

func TestOutcomeUnmarshal(t *testing.T) {
	var o Outcome
	if err := o.UnmarshalText([]byte("cyclic")); err != nil || o != Cyclic {
		t.Fatalf("UnmarshalText(cyclic) = %v, %v", o, err)
	}
	if err := o.UnmarshalText([]byte("settled")); err == nil {
		t.Fatal("expected error for an unknown outcome")
	}
}
