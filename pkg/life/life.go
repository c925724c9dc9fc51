// Package life implements Conway's Game of Life on a bounded board. Cells
// beyond the edges do not exist: they are neither wrapped nor counted.
package life

import "golboard/pkg/core"

// Seeding draws a value in [1, SeedDrawMax] per cell; draws below
// SeedThreshold leave the cell dead, so roughly 31% of cells start alive.
const (
	SeedDrawMax   = 100
	SeedThreshold = 70
)

// Seed clears both buffers and randomizes the current generation.
func Seed(b *Board, rng *core.RNG) {
	b.cur.Clear()
	b.nxt.Clear()
	cells := b.cur.Cells()
	for i := range cells {
		if rng.IntRange(1, SeedDrawMax) < SeedThreshold {
			cells[i] = Dead
			continue
		}
		cells[i] = Alive
	}
	b.gen = 0
}

// Neighbors counts the live cells among the up-to-eight cells surrounding
// (x, y) in the current generation.
func Neighbors(b *Board, x, y int) int {
	w, h := b.Width(), b.Height()
	cells := b.cur.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if (dx == 0 && dy == 0) || nx < 0 || nx >= w {
				continue
			}
			n += int(cells[ny*w+nx])
		}
	}
	return n
}

// nextState applies the B3/S23 rule to a single cell.
func nextState(cell uint8, neighbors int) uint8 {
	switch {
	case cell == Alive && neighbors < 2:
		return Dead
	case cell == Alive && neighbors > 3:
		return Dead
	case cell == Dead && neighbors == 3:
		return Alive
	}
	return cell
}

// Step advances the board by one generation and returns it.
func Step(b *Board) *Board {
	w, h := b.Width(), b.Height()
	cur, nxt := b.cur.Cells(), b.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = nextState(cur[idx], Neighbors(b, x, y))
		}
	}
	b.cur.CopyFrom(b.nxt)
	b.gen++
	return b
}

// Advance steps the board the given number of generations and returns a
// snapshot taken after each one. Non-positive counts leave the board untouched
// and return an empty trajectory.
func Advance(b *Board, generations int) []Snapshot {
	if generations <= 0 {
		return []Snapshot{}
	}
	out := make([]Snapshot, 0, generations)
	for i := 0; i < generations; i++ {
		Step(b)
		out = append(out, b.Snapshot())
	}
	return out
}
