package render

import "image/color"

// Palette selects the colours used to paint a binary board.
type Palette struct {
	Alive  color.Color
	Dead   color.Color
	Looped color.Color // live cells once the board has stopped
}

// DefaultPalette returns white-on-black with amber for a looped board.
func DefaultPalette() Palette {
	return Palette{
		Alive:  color.White,
		Dead:   color.Black,
		Looped: color.RGBA{R: 255, G: 176, B: 32, A: 255},
	}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillBoardRGBA paints cells with p, switching live cells to the looped
// colour when halted is set.
func fillBoardRGBA(buf []byte, cells []uint8, p Palette, halted bool) {
	on := p.Alive
	if halted && p.Looped != nil {
		on = p.Looped
	}
	fillBinaryRGBA(buf, cells, on, p.Dead)
}
