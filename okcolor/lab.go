// based on:
// https://bottosson.github.io/posts/oklab/

package okcolor

import (
	"image/color"
	"math"
)

type Lab struct {
	L     float64 // perceived lightness
	A     float64 // how green/red the color is
	B     float64 // how blue/yellow the color is
	Alpha uint8   // alpha, kept apart from the perceptual channels
}

// LinearRGB holds linear light channels in [0, 1].
type LinearRGB struct {
	R float64
	G float64
	B float64
}

var srgbToLinear [256]float64

func init() {
	for i := range srgbToLinear {
		srgbToLinear[i] = toLinear(float64(i) / 255)
	}
}

// FromNRGBA converts an 8-bit straight alpha colour to Lab.
func FromNRGBA(c color.NRGBA) Lab {
	lin := LinearRGB{R: srgbToLinear[c.R], G: srgbToLinear[c.G], B: srgbToLinear[c.B]}
	lc := lin.Lab()
	lc.Alpha = c.A
	return lc
}

// Lab converts linear RGB to OKLab.
func (c LinearRGB) Lab() Lab {
	var l, m, s float64
	l = math.Cbrt(0.4122214708*c.R + 0.5363325363*c.G + 0.0514459929*c.B)
	m = math.Cbrt(0.2119034982*c.R + 0.6806995451*c.G + 0.1073969566*c.B)
	s = math.Cbrt(0.0883024619*c.R + 0.2817188376*c.G + 0.6299787005*c.B)

	return Lab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// Distance2 is the squared euclidean distance of the perceptual channels.
func (lc Lab) Distance2(o Lab) float64 {
	dL := lc.L - o.L
	da := lc.A - o.A
	db := lc.B - o.B
	return dL*dL + da*da + db*db
}

func toLinear(x float64) float64 {
	if x >= 0.04045 {
		return math.Pow((x+0.055)/(1+0.055), 2.4)
	}
	return x / 12.92
}
