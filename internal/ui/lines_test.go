package ui

import (
	"slices"
	"testing"

	"golboard/pkg/core"
)

func TestPanelLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Board", Params: []core.Parameter{{Key: "w", Label: "Width", Value: "16"}}},
		{Name: "Run", Params: []core.Parameter{{Key: "status", Label: "Status", Value: "stable"}}},
	}}
	got := panelLines("life board", snap)
	want := []string{"life board", "", "Board", "  Width: 16", "", "Run", "  Status: stable"}
	if !slices.Equal(got, want) {
		t.Fatalf("panelLines = %q, want %q", got, want)
	}

	empty := panelLines("x", core.ParameterSnapshot{})
	if !slices.Equal(empty, []string{"x", "", "No parameters"}) {
		t.Fatalf("panelLines(empty) = %q", empty)
	}
	if panelTitle(nil) != "Board" {
		t.Fatal("nil sim should get the fallback title")
	}
}
