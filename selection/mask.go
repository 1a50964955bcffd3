// Package selection computes and holds pixel selections.
package selection

import "image"

// Mask is a set of linear pixel indices (y*width+x) over a canvas of a fixed
// size. Functions producing masks return nil instead of an empty mask.
type Mask struct {
	width  int
	height int
	bits   []bool
	n      int
}

// NewMask returns an empty mask for a width×height canvas. It is meant for
// building; hand it out through Done.
func NewMask(width, height int) *Mask {
	return &Mask{width: width, height: height, bits: make([]bool, width*height)}
}

// FromIndices builds a mask from linear indices, ignoring any that fall
// outside the canvas. It returns nil when nothing is selected.
func FromIndices(width, height int, indices []int) *Mask {
	m := NewMask(width, height)
	for _, i := range indices {
		m.Add(i)
	}
	return m.Done()
}

// Rect selects the part of r that lies inside the canvas.
func Rect(width, height int, r image.Rectangle) *Mask {
	r = r.Canon().Intersect(image.Rect(0, 0, width, height))
	m := NewMask(width, height)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.Add(y*width + x)
		}
	}
	return m.Done()
}

// Add selects index i. Out of range indices are ignored.
func (m *Mask) Add(i int) {
	if i < 0 || i >= len(m.bits) || m.bits[i] {
		return
	}
	m.bits[i] = true
	m.n++
}

// Done returns m, or nil if nothing was added.
func (m *Mask) Done() *Mask {
	if m == nil || m.n == 0 {
		return nil
	}
	return m
}

func (m *Mask) Width() int  { return m.width }
func (m *Mask) Height() int { return m.height }

// Len returns the number of selected pixels. A nil mask has none.
func (m *Mask) Len() int {
	if m == nil {
		return 0
	}
	return m.n
}

// Empty reports whether m selects nothing.
func (m *Mask) Empty() bool { return m.Len() == 0 }

// Has reports whether linear index i is selected.
func (m *Mask) Has(i int) bool {
	if m == nil || i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// Contains reports whether (x, y) is selected.
func (m *Mask) Contains(x, y int) bool {
	if m == nil || x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.bits[y*m.width+x]
}

// Indices returns the selected indices in ascending order.
func (m *Mask) Indices() []int {
	if m == nil {
		return nil
	}
	out := make([]int, 0, m.n)
	for i, ok := range m.bits {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// Bounds returns the smallest rectangle containing every selected pixel.
func (m *Mask) Bounds() image.Rectangle {
	if m.Empty() {
		return image.Rectangle{}
	}
	minX, minY, maxX, maxY := m.width, m.height, -1, -1
	for i, ok := range m.bits {
		if !ok {
			continue
		}
		x, y := i%m.width, i/m.width
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}
