package core

import (
	"slices"
	"testing"
)

type nopSim struct{}

func (nopSim) Name() string { return "nop" }
func (nopSim) Size() Size { return Size{W: 1, H: 1} }
func (nopSim) Reset(int64) {}
func (nopSim) Step() {}
func (nopSim) Cells() []uint8 { return []uint8{0} }

func TestRegister(t *testing.T) {
	Register("", func(map[string]string) Sim { return nopSim{} })
	Register("nil-factory", nil)
	Register("zz-nop", func(map[string]string) Sim { return nopSim{} })
	t.Cleanup(func() { delete(sims, "zz-nop") })

	if _, ok := Sims()[""]; ok {
		t.Fatal("empty names must be rejected")
	}
	if _, ok := Sims()["nil-factory"]; ok {
		t.Fatal("nil factories must be rejected")
	}
	if !slices.Contains(SimNames(), "zz-nop") {
		t.Fatalf("SimNames() = %v, missing zz-nop", SimNames())
	}
	if !slices.IsSorted(SimNames()) {
		t.Fatal("SimNames must be sorted")
	}
}
