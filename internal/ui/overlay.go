//go:build ebiten

package ui

import (
	"image/color"

	"golboard/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// minGridScale is the smallest cell size in pixels that gets grid lines.
const minGridScale = 4

// Overlay draws cell grid lines over the board, toggled with G.
type Overlay struct {
	size  core.Size
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(size core.Size, scale int) *Overlay {
	o := &Overlay{size: size, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.scale < minGridScale {
		return
	}
	w := float64(o.size.W * o.scale)
	h := float64(o.size.H * o.scale)
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(color.RGBA{R: 48, G: 48, B: 56, A: 255})
	for x := 0; x <= o.size.W; x++ {
		op.GeoM.Reset()
		op.GeoM.Scale(1, h)
		op.GeoM.Translate(float64(x*o.scale), 0)
		screen.DrawImage(o.pixel, op)
	}
	for y := 0; y <= o.size.H; y++ {
		op.GeoM.Reset()
		op.GeoM.Scale(w, 1)
		op.GeoM.Translate(0, float64(y*o.scale))
		screen.DrawImage(o.pixel, op)
	}
}
