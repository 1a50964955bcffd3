// Package canvas reflows frames to new extents: resizing, autocropping,
// centring content and rescaling imported images.
package canvas

import (
	"image"

	"pixelkit/raster"
)

// Size bounds applied by ClampSize.
const (
	MinSize = 8
	MaxSize = 512
)

// ClampSize clamps v into [lo, hi].
func ClampSize(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// Resize returns src reflowed onto a transparent width×height buffer with the
// old content centred. The offset per axis is floor((new-old)/2) and may be
// negative, cropping the overflow on both sides.
func Resize(src *raster.Buffer, width, height int) *raster.Buffer {
	out := raster.New(width, height)
	out.Blit(src, floorHalf(width-src.Width()), floorHalf(height-src.Height()))
	return out
}

// ResizeAll applies Resize to every frame.
func ResizeAll(frames []*raster.Buffer, width, height int) []*raster.Buffer {
	out := make([]*raster.Buffer, len(frames))
	for i, f := range frames {
		out[i] = Resize(f, width, height)
	}
	return out
}

// PlaceCentered centres img on a transparent width×height canvas, clipping
// whatever does not fit.
func PlaceCentered(img *raster.Buffer, width, height int) *raster.Buffer {
	return Resize(img, width, height)
}

// CenterContent translates the opaque content of src to the middle of its
// own extent. A buffer without content is returned as a plain copy.
func CenterContent(src *raster.Buffer) *raster.Buffer {
	box, ok := src.ContentBounds()
	if !ok {
		return src.Clone()
	}
	dx := floorHalf(src.Width()-box.Dx()) - box.Min.X
	dy := floorHalf(src.Height()-box.Dy()) - box.Min.Y
	out := raster.New(src.Width(), src.Height())
	out.Blit(src.SubBuffer(box), box.Min.X+dx, box.Min.Y+dy)
	return out
}

// ContentBounds returns the union of the opaque bounds of every frame.
func ContentBounds(frames []*raster.Buffer) (image.Rectangle, bool) {
	var box image.Rectangle
	found := false
	for _, f := range frames {
		r, ok := f.ContentBounds()
		if !ok {
			continue
		}
		if !found {
			box, found = r, true
			continue
		}
		box = box.Union(r)
	}
	return box, found
}

// Autocrop cuts every frame to the shared opaque bounds of all frames grown by
// padding, clamped to the original extent. With center set each frame's own
// content is then centred inside the new extent. ok is false when no frame
// holds an opaque pixel.
func Autocrop(frames []*raster.Buffer, padding int, center bool) (out []*raster.Buffer, box image.Rectangle, ok bool) {
	if len(frames) == 0 {
		return nil, image.Rectangle{}, false
	}
	box, ok = ContentBounds(frames)
	if !ok {
		return nil, image.Rectangle{}, false
	}
	padding = max(padding, 0)
	box = image.Rect(box.Min.X-padding, box.Min.Y-padding, box.Max.X+padding, box.Max.Y+padding).
		Intersect(frames[0].Bounds())

	out = make([]*raster.Buffer, len(frames))
	for i, f := range frames {
		out[i] = f.SubBuffer(box)
		if center {
			out[i] = CenterContent(out[i])
		}
	}
	return out, box, true
}

// floorHalf is floor(v/2), also for negative v.
func floorHalf(v int) int {
	if v < 0 {
		return -((-v + 1) / 2)
	}
	return v / 2
}
