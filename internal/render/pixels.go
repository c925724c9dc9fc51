// Package render turns board cells into pixels.
package render

import "image/color"

// cellPalette holds the 8-bit RGBA bytes used for live and dead cells.
type cellPalette struct {
	on, off [4]byte
}

func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func newCellPalette(on, off color.Color) cellPalette {
	return cellPalette{on: rgba8(on), off: rgba8(off)}
}

// fill writes one RGBA pixel per cell into buf, which must hold 4*len(cells)
// bytes.
func (p cellPalette) fill(buf []byte, cells []uint8) {
	for i, c := range cells {
		px := p.off
		if c != 0 {
			px = p.on
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
