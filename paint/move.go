package paint

import (
	"image"

	"pixelkit/raster"
	"pixelkit/selection"
)

// Move is a lifted selection being dragged around. Base is the frame with the
// selected pixels cleared, Floating maps each original index to its pixel.
// The frame itself is only replaced by Commit.
type Move struct {
	Base     *raster.Buffer
	Floating map[int]raster.Pixel
	start    image.Point
	offset   image.Point
}

// Lift starts a move of the pixels of src selected by m, grabbed at start. It
// returns nil when m is empty.
func Lift(src *raster.Buffer, m *selection.Mask, start image.Point) *Move {
	if m.Empty() {
		return nil
	}
	mv := &Move{
		Base:     src.Clone(),
		Floating: make(map[int]raster.Pixel, m.Len()),
		start:    start,
	}
	for _, i := range m.Indices() {
		if i >= src.Len() {
			continue
		}
		mv.Floating[i] = src.Pix[i]
		mv.Base.Pix[i] = raster.Transparent
	}
	return mv
}

// Update sets the displacement to p minus the grab point.
func (mv *Move) Update(p image.Point) {
	mv.offset = p.Sub(mv.start)
}

// Offset returns the current displacement.
func (mv *Move) Offset() image.Point { return mv.offset }

// Preview composes the floating pixels over the base at the current offset,
// for display while the gesture runs.
func (mv *Move) Preview() *raster.Buffer {
	out, _ := mv.place()
	return out
}

// Commit writes the floating pixels at their displaced positions. Pixels
// moved off the canvas are dropped. It returns the new frame and the mask of
// the positions written, nil if everything left the canvas.
func (mv *Move) Commit() (*raster.Buffer, *selection.Mask) {
	return mv.place()
}

func (mv *Move) place() (*raster.Buffer, *selection.Mask) {
	out := mv.Base.Clone()
	m := selection.NewMask(out.Width(), out.Height())
	for i, p := range mv.Floating {
		x, y := out.Point(i)
		x, y = x+mv.offset.X, y+mv.offset.Y
		if !out.In(x, y) {
			continue
		}
		j := out.Index(x, y)
		out.Pix[j] = p
		m.Add(j)
	}
	return out, m.Done()
}
