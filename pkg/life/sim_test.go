package life

import (
	"slices"
	"testing"

	"golboard/pkg/core"
)

func TestRegisteredSim(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life sim not registered")
	}
	sim := factory(map[string]string{"w": "24", "h": "12", "seed": "5"})
	if sim.Name() != "life" {
		t.Fatalf("Name() = %q", sim.Name())
	}
	if size := sim.Size(); size.W != 24 || size.H != 12 {
		t.Fatalf("Size() = %+v, want 24x12", size)
	}
}

func TestFromMapIgnoresInvalid(t *testing.T) {
	c := FromMap(map[string]string{"w": "-4", "h": "abc", "seed": "x"})
	if c != DefaultConfig() {
		t.Fatalf("FromMap with invalid values = %+v, want defaults", c)
	}
}

func TestSimResetDeterministic(t *testing.T) {
	sim := NewSim(Config{Width: 20, Height: 20, Seed: 9})
	initial := append([]uint8(nil), sim.Cells()...)
	for i := 0; i < 5; i++ {
		sim.Step()
	}
	sim.Reset(0)
	if !slices.Equal(initial, sim.Cells()) {
		t.Fatal("Reset(0) should reuse the configured seed")
	}
	if sim.Board().Generation() != 0 || sim.Status().Generations != 0 {
		t.Fatal("Reset must restart the generation count and the tracker")
	}
}

func TestSimParametersTrackStatus(t *testing.T) {
	sim := NewSim(Config{Width: 4, Height: 4, Seed: 1})
	sim.Board().Load([][]uint8{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	})
	sim.tracker = NewTracker(sim.Board())
	sim.Step()

	params := sim.Parameters()
	status, ok := params.Lookup("status")
	if !ok || status.Value != "stable" {
		t.Fatalf("status parameter = %+v, want stable", status)
	}
	if p, _ := params.Lookup("population"); p.Value != "4" {
		t.Fatalf("population = %q, want 4", p.Value)
	}
	if p, _ := params.Lookup("period"); p.Value != "1" {
		t.Fatalf("period = %q, want 1", p.Value)
	}
	if _, ok := params.Lookup("missing"); ok {
		t.Fatal("Lookup should miss unknown keys")
	}
}
