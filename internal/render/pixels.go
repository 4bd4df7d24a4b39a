package render

import (
	"image/color"

	"lifegrid/pkg/life"
)

// fillBinaryRGBA converts the packed cells of v into RGBA pixels in buf, one
// pixel per cell in row-major order. buf must hold 4*width*height bytes.
func fillBinaryRGBA(buf []byte, v life.View, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	w, h := v.Size()
	cells := int(w) * int(h)
	for i := 0; i < cells; i++ {
		base := i * 4
		if v.Alive(i) {
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
