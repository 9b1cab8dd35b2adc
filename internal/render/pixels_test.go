package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillBoardRGBA(t *testing.T) {
	p := Palette{
		Alive:  color.RGBA{R: 10, G: 20, B: 30, A: 255},
		Dead:   color.RGBA{A: 255},
		Looped: color.RGBA{R: 200, A: 255},
	}
	cells := []uint8{0, 1}
	buf := make([]byte, 4*len(cells))

	fillBoardRGBA(buf, cells, p, false)
	assert.Equal(t, []byte{0, 0, 0, 255, 10, 20, 30, 255}, buf)

	fillBoardRGBA(buf, cells, p, true)
	assert.Equal(t, []byte{0, 0, 0, 255, 200, 0, 0, 255}, buf)
}

func TestFillBoardRGBAWithoutLoopedColour(t *testing.T) {
	p := DefaultPalette()
	p.Looped = nil
	buf := make([]byte, 4)

	fillBoardRGBA(buf, []uint8{1}, p, true)
	assert.Equal(t, []byte{255, 255, 255, 255}, buf)
}
