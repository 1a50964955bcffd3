package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Buffer is a fixed size grid of pixels stored row-major, the pixel at (x, y)
// lives at Pix[y*Width()+x]. A Buffer never changes size; resizing produces a
// new one.
type Buffer struct {
	width  int
	height int
	Pix    []Pixel
}

var _ draw.Image = &Buffer{}

// New creates a transparent buffer of the given size. Negative sizes are
// treated as zero.
func New(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	return &Buffer{
		width:  width,
		height: height,
		Pix:    make([]Pixel, width*height),
	}
}

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.height }

// Len returns width*height.
func (b *Buffer) Len() int { return len(b.Pix) }

// In reports whether (x, y) lies inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Index returns the linear index of (x, y). The caller must bounds-check.
func (b *Buffer) Index(x, y int) int {
	return y*b.width + x
}

// Point returns the coordinates of a linear index.
func (b *Buffer) Point(i int) (x, y int) {
	return i % b.width, i / b.width
}

// Get returns the pixel at (x, y), or Transparent outside the buffer.
func (b *Buffer) Get(x, y int) Pixel {
	if !b.In(x, y) {
		return Transparent
	}
	return b.Pix[y*b.width+x]
}

// SetPixel writes p at (x, y). Writes outside the buffer are ignored.
func (b *Buffer) SetPixel(x, y int, p Pixel) {
	if !b.In(x, y) {
		return
	}
	b.Pix[y*b.width+x] = p
}

// Clone returns an independent copy.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{width: b.width, height: b.height, Pix: make([]Pixel, len(b.Pix))}
	copy(c.Pix, b.Pix)
	return c
}

// Fill sets every pixel to p.
func (b *Buffer) Fill(p Pixel) {
	for i := range b.Pix {
		b.Pix[i] = p
	}
}

// Equal reports whether both buffers have the same size and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i, p := range b.Pix {
		if o.Pix[i] != p {
			return false
		}
	}
	return true
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model { return PixelModel }

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

// At implements image.Image.
func (b *Buffer) At(x, y int) color.Color { return b.Get(x, y) }

// Set implements draw.Image.
func (b *Buffer) Set(x, y int, c color.Color) { b.SetPixel(x, y, FromColor(c)) }

// ContentBounds returns the tightest rectangle holding every non-empty pixel.
// ok is false when the buffer has no opaque pixel at all.
func (b *Buffer) ContentBounds() (r image.Rectangle, ok bool) {
	minX, minY, maxX, maxY := b.width, b.height, -1, -1
	for y := range b.height {
		row := b.Pix[y*b.width : (y+1)*b.width]
		for x, p := range row {
			if p.IsEmpty() {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// Blit copies the whole of src into b with its top-left corner at (dx, dy),
// clipped to b. Empty source pixels are copied as well.
func (b *Buffer) Blit(src *Buffer, dx, dy int) {
	for sy := range src.height {
		y := sy + dy
		if y < 0 || y >= b.height {
			continue
		}
		for sx := range src.width {
			x := sx + dx
			if x < 0 || x >= b.width {
				continue
			}
			b.Pix[y*b.width+x] = src.Pix[sy*src.width+sx]
		}
	}
}

// SubBuffer copies the rectangle r of b into a new buffer. Parts of r outside
// b are transparent.
func (b *Buffer) SubBuffer(r image.Rectangle) *Buffer {
	out := New(r.Dx(), r.Dy())
	out.Blit(b, -r.Min.X, -r.Min.Y)
	return out
}

// FromImage converts any image into a Buffer with its origin at the image's
// top-left corner.
func FromImage(img image.Image) *Buffer {
	r := img.Bounds()
	if src, ok := img.(*Buffer); ok {
		return src.Clone()
	}
	out := New(r.Dx(), r.Dy())
	if n, ok := img.(*image.NRGBA); ok {
		for y := range out.height {
			for x := range out.width {
				o := n.PixOffset(r.Min.X+x, r.Min.Y+y)
				p := ARGB(n.Pix[o+3], n.Pix[o], n.Pix[o+1], n.Pix[o+2])
				if p.IsEmpty() {
					p = Transparent
				}
				out.Pix[y*out.width+x] = p
			}
		}
		return out
	}
	for y := range out.height {
		for x := range out.width {
			out.Pix[y*out.width+x] = FromColor(img.At(r.Min.X+x, r.Min.Y+y))
		}
	}
	return out
}

// NRGBA returns a copy of b as an *image.NRGBA, the form image encoders
// handle fastest.
func (b *Buffer) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(b.Bounds())
	for i, p := range b.Pix {
		o := i * 4
		out.Pix[o] = p.R()
		out.Pix[o+1] = p.G()
		out.Pix[o+2] = p.B()
		out.Pix[o+3] = p.A()
	}
	return out
}
