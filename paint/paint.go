// Package paint implements the stateless pixel operations of the editor.
// Every operation leaves its input untouched and returns a new buffer, so a
// frame held by the renderer or the undo history never changes underneath it.
package paint

import (
	"image"

	"pixelkit/raster"
	"pixelkit/selection"
)

// Stamp writes c into the (2r+1)×(2r+1) square centred on (x, y), clipped to
// the buffer. A zero alpha colour erases.
func Stamp(src *raster.Buffer, x, y, r int, c raster.Pixel) *raster.Buffer {
	out := src.Clone()
	stamp(out, x, y, r, c)
	return out
}

// Line stamps along the Bresenham line from (x0, y0) to (x1, y1), so fast
// pointer samples still produce a connected stroke.
func Line(src *raster.Buffer, x0, y0, x1, y1, r int, c raster.Pixel) *raster.Buffer {
	out := src.Clone()
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		stamp(out, x0, y0, r, c)
		if x0 == x1 && y0 == y1 {
			return out
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func stamp(b *raster.Buffer, x, y, r int, c raster.Pixel) {
	r = max(r, 0)
	for py := y - r; py <= y+r; py++ {
		for px := x - r; px <= x+r; px++ {
			b.SetPixel(px, py, c)
		}
	}
}

// FloodFill replaces the 4-connected region of pixels equal to the colour at
// (x, y) with c. ok is false, and src is returned unchanged, when the start
// point is outside the buffer or already holds c.
func FloodFill(src *raster.Buffer, x, y int, c raster.Pixel) (out *raster.Buffer, ok bool) {
	if !src.In(x, y) {
		return src, false
	}
	old := src.Get(x, y)
	if old == c {
		return src, false
	}
	out = src.Clone()
	w, h := out.Width(), out.Height()
	stack := []int{out.Index(x, y)}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// converted pixels no longer match old, so they are never revisited
		if out.Pix[i] != old {
			continue
		}
		out.Pix[i] = c
		px, py := i%w, i/w
		if px > 0 {
			stack = append(stack, i-1)
		}
		if px < w-1 {
			stack = append(stack, i+1)
		}
		if py > 0 {
			stack = append(stack, i-w)
		}
		if py < h-1 {
			stack = append(stack, i+w)
		}
	}
	return out, true
}

// Clipboard holds the bounding box of a copied selection. Unselected pixels
// inside the box are transparent.
type Clipboard struct {
	*raster.Buffer
}

// Copy lifts the pixels of src selected by m. It returns nil for an empty
// mask.
func Copy(src *raster.Buffer, m *selection.Mask) *Clipboard {
	if m.Empty() {
		return nil
	}
	box := m.Bounds()
	buf := raster.New(box.Dx(), box.Dy())
	for _, i := range m.Indices() {
		x, y := src.Point(i)
		buf.SetPixel(x-box.Min.X, y-box.Min.Y, src.Pix[i])
	}
	return &Clipboard{Buffer: buf}
}

// Paste overlays the non-empty clipboard pixels onto src with the
// clipboard's top-left corner at at. It returns the new buffer and the mask
// of written pixels, which is nil when nothing landed on the canvas.
func Paste(src *raster.Buffer, cb *Clipboard, at image.Point) (*raster.Buffer, *selection.Mask) {
	out := src.Clone()
	m := selection.NewMask(out.Width(), out.Height())
	if cb == nil {
		return out, nil
	}
	for cy := range cb.Height() {
		for cx := range cb.Width() {
			p := cb.Get(cx, cy)
			x, y := at.X+cx, at.Y+cy
			if p.IsEmpty() || !out.In(x, y) {
				continue
			}
			i := out.Index(x, y)
			out.Pix[i] = p
			m.Add(i)
		}
	}
	return out, m.Done()
}

// Erase clears every pixel selected by m.
func Erase(src *raster.Buffer, m *selection.Mask) *raster.Buffer {
	out := src.Clone()
	for _, i := range m.Indices() {
		if i < out.Len() {
			out.Pix[i] = raster.Transparent
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
