//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the loop banner and the cell under the cursor on top of the
// board.
type Overlay struct {
	sim        core.Sim
	scale      int
	showCursor bool
	pixel      *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showCursor: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the cursor highlight with the C key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showCursor = !o.showCursor
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}

	if o.showCursor {
		mx, my := ebiten.CursorPosition()
		cx, cy := mx/scale, my/scale
		if mx >= 0 && my >= 0 && cx < size.W && cy < size.H {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(float64(scale), float64(scale))
			op.GeoM.Translate(float64(cx*scale), float64(cy*scale))
			op.ColorScale.ScaleWithColor(color.RGBA{R: 64, G: 164, B: 223, A: 96})
			screen.DrawImage(o.pixel, op)
		}
	}

	banner := LoopBanner(o.sim)
	if banner == "" {
		return
	}
	face := basicfont.Face7x13
	barH := 20
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size.W*scale), float64(barH))
	op.ColorScale.ScaleWithColor(color.RGBA{A: 200})
	screen.DrawImage(o.pixel, op)
	text.Draw(screen, banner, face, 6, 14, color.RGBA{R: 255, G: 176, B: 32, A: 255})
}
