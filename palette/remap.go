package palette

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"pixelkit/okcolor"
	"pixelkit/raster"
)

// Matcher finds the nearest palette entry in OKLab.
type Matcher struct {
	pal Palette
	lab []okcolor.Lab
}

// NewMatcher prepares pal for repeated lookups.
func NewMatcher(pal Palette) *Matcher {
	m := &Matcher{pal: pal, lab: make([]okcolor.Lab, len(pal))}
	for i, c := range pal {
		m.lab[i] = okcolor.FromNRGBA(c.NRGBA())
	}
	return m
}

// Index returns the index of the entry closest to c, ignoring alpha.
func (m *Matcher) Index(c raster.Pixel) int {
	lc := okcolor.FromNRGBA(c.NRGBA())
	ret, best := 0, -1.0
	for i, v := range m.lab {
		d := lc.Distance2(v)
		if best < 0 || d < best {
			if d == 0 {
				return i
			}
			ret, best = i, d
		}
	}
	return ret
}

// Convert returns the palette colour closest to c with c's alpha. Empty
// pixels stay empty.
func (m *Matcher) Convert(c raster.Pixel) raster.Pixel {
	if c.IsEmpty() || len(m.pal) == 0 {
		return c
	}
	p := m.pal[m.Index(c)]
	return raster.ARGB(c.A(), p.R(), p.G(), p.B())
}

// Remap returns a copy of src with every pixel replaced by its nearest
// palette colour.
func Remap(src *raster.Buffer, pal Palette) *raster.Buffer {
	out := src.Clone()
	if len(pal) == 0 {
		return out
	}
	m := NewMatcher(pal)
	cache := make(map[raster.Pixel]raster.Pixel)
	for i, c := range out.Pix {
		v, ok := cache[c]
		if !ok {
			v = m.Convert(c)
			cache[c] = v
		}
		out.Pix[i] = v
	}
	return out
}

// Dither maps src onto pal with Floyd-Steinberg error diffusion. Alpha is
// kept from src, and empty pixels stay empty.
func Dither(src *raster.Buffer, pal Palette) *raster.Buffer {
	if len(pal) == 0 {
		return src.Clone()
	}
	cp := make(color.Palette, len(pal))
	for i, c := range pal {
		cp[i] = c.NRGBA()
	}

	opaque := src.Clone()
	for i, c := range opaque.Pix {
		opaque.Pix[i] = raster.ARGB(0xff, c.R(), c.G(), c.B())
	}

	r := src.Bounds()
	dest := image.NewPaletted(r, cp)
	draw.FloydSteinberg.Draw(dest, r, opaque.NRGBA(), image.Point{})

	out := raster.New(src.Width(), src.Height())
	for i, c := range src.Pix {
		if c.IsEmpty() {
			continue
		}
		p := pal[dest.Pix[i]]
		out.Pix[i] = raster.ARGB(c.A(), p.R(), p.G(), p.B())
	}
	return out
}
