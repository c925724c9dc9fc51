package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestCellPaletteFill(t *testing.T) {
	cells := []uint8{1, 0, 1}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 250, G: 240, B: 230, A: 255}
	off := color.RGBA{R: 10, G: 20, B: 30, A: 255}

	newCellPalette(on, off).fill(buf, cells)

	want := []byte{
		250, 240, 230, 255,
		10, 20, 30, 255,
		250, 240, 230, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestRGBA8(t *testing.T) {
	if got := rgba8(color.White); got != [4]byte{255, 255, 255, 255} {
		t.Fatalf("rgba8(white) = %v", got)
	}
	if got := rgba8(color.Transparent); got != [4]byte{} {
		t.Fatalf("rgba8(transparent) = %v", got)
	}
}
