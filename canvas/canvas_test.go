package canvas

import (
	"image"
	"testing"

	"pixelkit/raster"
)

var (
	red  = raster.Opaque(255, 0, 0)
	blue = raster.Opaque(0, 0, 255)
)

func TestFloorHalf(t *testing.T) {
	for _, tc := range []struct{ in, want int }{{0, 0}, {4, 2}, {5, 2}, {-1, -1}, {-4, -2}, {-5, -3}} {
		if got := floorHalf(tc.in); got != tc.want {
			t.Errorf("floorHalf(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestResizeCentres(t *testing.T) {
	src := raster.New(4, 4)
	src.SetPixel(0, 0, red)
	out := Resize(src, 8, 6)
	if out.Width() != 8 || out.Height() != 6 {
		t.Fatalf("size %dx%d", out.Width(), out.Height())
	}
	if out.Get(2, 1) != red {
		t.Fatal("content not offset by floor((new-old)/2)")
	}
	small := Resize(src, 3, 3)
	// offset floor(-1/2) = -1 crops the first row and column
	if small.Get(0, 0) != raster.Transparent {
		t.Fatal("shrinking did not crop the top-left pixel")
	}
}

func TestResizeRoundTrip(t *testing.T) {
	src := raster.New(8, 8)
	for i := range src.Pix {
		src.Pix[i] = raster.Opaque(uint8(i), uint8(i*3), 7)
	}
	for _, size := range []image.Point{{8, 8}, {12, 10}, {16, 64}} {
		back := Resize(Resize(src, size.X, size.Y), 8, 8)
		if !back.Equal(src) {
			t.Errorf("round trip through %v lost content", size)
		}
	}
}

func TestAutocropSinglePixel(t *testing.T) {
	f := raster.New(32, 32)
	f.SetPixel(5, 5, red)
	out, box, ok := Autocrop([]*raster.Buffer{f}, 0, false)
	if !ok {
		t.Fatal("autocrop found no content")
	}
	if box != image.Rect(5, 5, 6, 6) || out[0].Width() != 1 || out[0].Height() != 1 {
		t.Fatalf("box %v, result %dx%d", box, out[0].Width(), out[0].Height())
	}
	if out[0].Get(0, 0) != red {
		t.Fatal("cropped pixel lost")
	}
}

func TestAutocropSharedBoxAndPadding(t *testing.T) {
	a := raster.New(16, 16)
	a.SetPixel(2, 3, red)
	b := raster.New(16, 16)
	b.SetPixel(10, 12, blue)
	out, box, ok := Autocrop([]*raster.Buffer{a, b}, 3, false)
	if !ok {
		t.Fatal("no content")
	}
	// union (2,3)-(11,13) grown by 3 and clamped to the canvas
	if box != image.Rect(0, 0, 14, 16) {
		t.Fatalf("box = %v", box)
	}
	for i, f := range out {
		if f.Width() != 14 || f.Height() != 16 {
			t.Fatalf("frame %d is %dx%d", i, f.Width(), f.Height())
		}
	}
	if out[0].Get(2, 3) != red || out[1].Get(10, 12) != blue {
		t.Fatal("content moved by a crop with origin (0,0)")
	}
}

func TestAutocropCenterPerFrame(t *testing.T) {
	a := raster.New(16, 16)
	a.SetPixel(0, 0, red)
	a.SetPixel(8, 0, red)
	b := raster.New(16, 16)
	b.SetPixel(0, 0, blue)
	out, _, _ := Autocrop([]*raster.Buffer{a, b}, 0, true)
	if out[0].Width() != 9 || out[0].Height() != 1 {
		t.Fatalf("size %dx%d", out[0].Width(), out[0].Height())
	}
	if out[0].Get(0, 0) != red || out[0].Get(8, 0) != red {
		t.Fatal("frame filling the box should not move")
	}
	if out[1].Get(4, 0) != blue || out[1].Get(0, 0) != raster.Transparent {
		t.Fatal("frame content not centred independently")
	}
}

func TestAutocropEmpty(t *testing.T) {
	if _, _, ok := Autocrop([]*raster.Buffer{raster.New(4, 4)}, 1, true); ok {
		t.Fatal("autocrop of empty frames succeeded")
	}
}

func TestCenterContent(t *testing.T) {
	src := raster.New(10, 10)
	src.SetPixel(0, 0, red)
	src.SetPixel(1, 1, red)
	out := CenterContent(src)
	if out.Width() != 10 || out.Get(4, 4) != red || out.Get(5, 5) != red {
		t.Fatal("content not centred")
	}
	if out.Get(0, 0) != raster.Transparent {
		t.Fatal("old position not cleared")
	}
}

func TestSourceCropTo(t *testing.T) {
	img := raster.New(10, 10)
	img.SetPixel(4, 4, red)
	img.SetPixel(5, 4, blue)
	img.SetPixel(4, 5, blue)
	img.SetPixel(5, 5, red)
	s := NewSource(img)
	if s.CropTo(4, 4) != nil {
		t.Fatal("crop without selection returned a buffer")
	}
	s.SelectPoints(image.Pt(5, 5), image.Pt(4, 4))
	if s.Selection() != image.Rect(4, 4, 6, 6) {
		t.Fatalf("selection = %v", s.Selection())
	}
	out := s.CropTo(4, 4)
	want := [4][4]raster.Pixel{
		{red, red, blue, blue},
		{red, red, blue, blue},
		{blue, blue, red, red},
		{blue, blue, red, red},
	}
	for y := range 4 {
		for x := range 4 {
			if got := out.Get(x, y); got != want[y][x] {
				t.Fatalf("(%d,%d) = %#x, want %#x", x, y, uint32(got), uint32(want[y][x]))
			}
		}
	}
}

func TestSourceViewMapping(t *testing.T) {
	s := NewSource(raster.New(100, 100))
	s.Zoom = 4
	s.Pan = image.Pt(10, -6)
	if got := s.ToSource(image.Pt(19, 2)); got != image.Pt(2, 2) {
		t.Fatalf("ToSource = %v", got)
	}
	if got := s.ToSource(image.Pt(9, 0)); got != image.Pt(-1, 1) {
		t.Fatalf("ToSource = %v", got)
	}
}

func TestFitKeepsAspect(t *testing.T) {
	out := Fit(raster.New(64, 32), 16, 16)
	if out.Width() != 16 || out.Height() != 8 {
		t.Fatalf("Fit = %dx%d, want 16x8", out.Width(), out.Height())
	}
	small := raster.New(4, 4)
	if Fit(small, 16, 16) != small {
		t.Fatal("fitting image was rescaled")
	}
}
