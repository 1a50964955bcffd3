package raster

import "image/color"

// Pixel is a packed 32-bit colour: alpha in bits 24-31, red 16-23, green 8-15
// and blue 0-7. A zero alpha means the pixel is empty.
type Pixel uint32

// Transparent is the empty pixel.
const Transparent Pixel = 0

// ARGB packs the four channels into a Pixel.
func ARGB(a, r, g, b uint8) Pixel {
	return Pixel(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Opaque returns a fully opaque pixel for the given channels.
func Opaque(r, g, b uint8) Pixel {
	return ARGB(0xff, r, g, b)
}

func (p Pixel) A() uint8 { return uint8(p >> 24) }
func (p Pixel) R() uint8 { return uint8(p >> 16) }
func (p Pixel) G() uint8 { return uint8(p >> 8) }
func (p Pixel) B() uint8 { return uint8(p) }

// IsEmpty reports whether the pixel has zero alpha.
func (p Pixel) IsEmpty() bool {
	return p.A() == 0
}

// NRGBA returns the pixel as a non-premultiplied colour.
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R(), G: p.G(), B: p.B(), A: p.A()}
}

// RGBA implements color.Color.
func (p Pixel) RGBA() (uint32, uint32, uint32, uint32) {
	return p.NRGBA().RGBA()
}

// PixelModel converts any colour to a Pixel.
var PixelModel = color.ModelFunc(pixelConvert)

func pixelConvert(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return Transparent
	}
	return ARGB(n.A, n.R, n.G, n.B)
}

// FromColor converts c to a Pixel.
func FromColor(c color.Color) Pixel {
	return pixelConvert(c).(Pixel)
}
