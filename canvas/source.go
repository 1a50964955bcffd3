package canvas

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"pixelkit/raster"
)

// Source is an imported image used only as a cropping source. It keeps its
// own viewport and selection rectangle, unrelated to frame coordinates.
type Source struct {
	Image *raster.Buffer
	// Zoom and Pan describe how the source is displayed: a view point v maps
	// to source pixel floor((v - Pan) / Zoom).
	Zoom float64
	Pan  image.Point

	rect image.Rectangle
}

// NewSource wraps img with an identity viewport and no selection.
func NewSource(img *raster.Buffer) *Source {
	return &Source{Image: img, Zoom: 1}
}

// Clone copies the viewport and selection. The image is shared; it is never
// written after import.
func (s *Source) Clone() *Source {
	c := *s
	return &c
}

// ToSource converts a view point into source pixel coordinates.
func (s *Source) ToSource(v image.Point) image.Point {
	z := s.Zoom
	if z <= 0 {
		z = 1
	}
	return image.Pt(
		int(math.Floor(float64(v.X-s.Pan.X)/z)),
		int(math.Floor(float64(v.Y-s.Pan.Y)/z)),
	)
}

// Select sets the crop rectangle, normalised and clipped to the source.
func (s *Source) Select(r image.Rectangle) {
	s.rect = r.Canon().Intersect(s.Image.Bounds())
}

// SelectPoints sets the crop rectangle spanned by two source points, both
// inclusive.
func (s *Source) SelectPoints(a, b image.Point) {
	r := image.Rect(a.X, a.Y, b.X, b.Y).Canon()
	r.Max = r.Max.Add(image.Pt(1, 1))
	s.Select(r)
}

// Selection returns the crop rectangle; it is empty when nothing is selected.
func (s *Source) Selection() image.Rectangle { return s.rect }

// CropTo stretches or shrinks the selected rectangle to exactly width×height
// with nearest neighbour sampling. It returns nil when nothing is selected.
func (s *Source) CropTo(width, height int) *raster.Buffer {
	if s.rect.Empty() {
		return nil
	}
	return ScaleNearest(s.Image, s.rect, width, height)
}

// ScaleNearest resamples the rectangle r of src to width×height without
// smoothing.
func ScaleNearest(src *raster.Buffer, r image.Rectangle, width, height int) *raster.Buffer {
	if width <= 0 || height <= 0 {
		return raster.New(0, 0)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src.NRGBA(), r, draw.Src, nil)
	return raster.FromImage(dst)
}

// Fit scales src by nearest neighbour so it fits inside width×height while
// keeping its aspect ratio. Images already fitting are returned as is.
func Fit(src *raster.Buffer, width, height int) *raster.Buffer {
	sw, sh := src.Width(), src.Height()
	if sw <= width && sh <= height || sw == 0 || sh == 0 {
		return src
	}
	scale := min(float64(width)/float64(sw), float64(height)/float64(sh))
	w := max(1, int(math.Round(float64(sw)*scale)))
	h := max(1, int(math.Round(float64(sh)*scale)))
	return ScaleNearest(src, src.Bounds(), w, h)
}
