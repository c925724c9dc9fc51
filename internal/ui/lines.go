// Package ui draws the side panel and overlays of the viewer.
package ui

import (
	"fmt"

	"golboard/pkg/core"
)

// panelLines lays out a parameter snapshot as text lines: a title, then each
// group heading followed by "label: value" rows, groups separated by a blank.
func panelLines(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title}
	if len(snap.Groups) == 0 {
		return append(lines, "", "No parameters")
	}
	for _, g := range snap.Groups {
		lines = append(lines, "", g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

func panelTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Board"
	}
	return fmt.Sprintf("%s board", sim.Name())
}
