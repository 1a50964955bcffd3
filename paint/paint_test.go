package paint

import (
	"image"
	"testing"

	"pixelkit/raster"
	"pixelkit/selection"
)

var (
	red   = raster.Opaque(255, 0, 0)
	green = raster.Opaque(0, 255, 0)
	blue  = raster.Opaque(0, 0, 255)
)

func changed(a, b *raster.Buffer) int {
	n := 0
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			n++
		}
	}
	return n
}

func TestStampRadius(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		radius int
		want   int
	}{
		{"radius 0", 3, 3, 0, 1},
		{"radius 1 interior", 3, 3, 1, 9},
		{"radius 1 corner", 0, 0, 1, 4},
		{"radius 2 edge", 0, 4, 2, 15},
		{"outside", -5, -5, 1, 0},
	}
	for _, tc := range tests {
		src := raster.New(8, 8)
		out := Stamp(src, tc.x, tc.y, tc.radius, red)
		if got := changed(src, out); got != tc.want {
			t.Errorf("%s: changed %d pixels, want %d", tc.name, got, tc.want)
		}
		if changed(src, raster.New(8, 8)) != 0 {
			t.Fatalf("%s: Stamp mutated its input", tc.name)
		}
	}
}

func TestStampErase(t *testing.T) {
	src := raster.New(3, 3)
	src.Fill(red)
	out := Stamp(src, 1, 1, 0, raster.Transparent)
	if out.Get(1, 1) != raster.Transparent || out.Get(0, 0) != red {
		t.Fatal("erase stamp wrote the wrong pixels")
	}
}

func TestLineConnected(t *testing.T) {
	out := Line(raster.New(10, 10), 0, 0, 9, 3, 0, red)
	for x := range 10 {
		found := false
		for y := range 10 {
			if out.Get(x, y) == red {
				found = true
			}
		}
		if !found {
			t.Fatalf("column %d has no stroke pixel", x)
		}
	}
}

func TestFloodFillRegion(t *testing.T) {
	// a vertical wall of blue at x=2 splits the canvas
	src := raster.New(5, 3)
	for y := range 3 {
		src.SetPixel(2, y, blue)
	}
	src.SetPixel(4, 0, green)

	out, ok := FloodFill(src, 0, 0, green)
	if !ok {
		t.Fatal("fill reported no-op")
	}
	for y := range 3 {
		for x := range 2 {
			if out.Get(x, y) != green {
				t.Fatalf("(%d,%d) not filled", x, y)
			}
		}
		if out.Get(2, y) != blue {
			t.Fatalf("wall pixel (2,%d) overwritten", y)
		}
		if out.Get(3, y) != raster.Transparent {
			t.Fatalf("fill leaked past the wall at (3,%d)", y)
		}
	}
	if src.Get(0, 0) != raster.Transparent {
		t.Fatal("FloodFill mutated its input")
	}
}

func TestFloodFillNoOps(t *testing.T) {
	src := raster.New(4, 4)
	src.Fill(green)
	if out, ok := FloodFill(src, 1, 1, green); ok || out != src {
		t.Fatal("filling with the existing colour was not a no-op")
	}
	if _, ok := FloodFill(src, 4, 0, red); ok {
		t.Fatal("out of bounds fill was not a no-op")
	}
	// idempotent: a second identical fill changes nothing
	once, _ := FloodFill(src, 0, 0, red)
	twice, ok := FloodFill(once, 0, 0, red)
	if ok || !twice.Equal(once) {
		t.Fatal("second fill changed the buffer")
	}
}

func TestFloodFillDiagonalNotConnected(t *testing.T) {
	src := raster.New(2, 2)
	src.SetPixel(1, 0, blue)
	src.SetPixel(0, 1, blue)
	out, _ := FloodFill(src, 0, 0, red)
	if out.Get(1, 1) != raster.Transparent {
		t.Fatal("fill crossed a diagonal gap")
	}
}

func TestCopyPasteRoundTrip(t *testing.T) {
	src := raster.New(8, 8)
	src.SetPixel(2, 2, red)
	src.SetPixel(4, 3, green)
	src.SetPixel(3, 2, blue) // inside the box but not selected
	m := selection.FromIndices(8, 8, []int{src.Index(2, 2), src.Index(4, 3)})

	cb := Copy(src, m)
	if cb.Width() != 3 || cb.Height() != 2 {
		t.Fatalf("clipboard %dx%d, want 3x2", cb.Width(), cb.Height())
	}
	if cb.Get(1, 0) != raster.Transparent {
		t.Fatal("unselected pixel copied")
	}

	dst := raster.New(8, 8)
	dst.SetPixel(3, 2, green)
	out, pm := Paste(dst, cb, image.Pt(2, 2))
	if out.Get(2, 2) != red || out.Get(4, 3) != green {
		t.Fatal("selected pixels not reproduced")
	}
	if out.Get(3, 2) != green {
		t.Fatal("paste overwrote a pixel outside the copied mask")
	}
	if pm.Len() != 2 || !pm.Contains(2, 2) || !pm.Contains(4, 3) {
		t.Fatalf("paste mask = %v", pm.Indices())
	}
}

func TestCopyEmptyMask(t *testing.T) {
	if Copy(raster.New(2, 2), nil) != nil {
		t.Fatal("copy of nil mask returned a clipboard")
	}
}

func TestPasteClipped(t *testing.T) {
	cb := &Clipboard{Buffer: raster.New(3, 3)}
	cb.Fill(red)
	out, m := Paste(raster.New(4, 4), cb, image.Pt(2, 2))
	if m.Len() != 4 || out.Get(3, 3) != red {
		t.Fatalf("clipped paste wrote %d pixels", m.Len())
	}
	if _, m := Paste(raster.New(4, 4), cb, image.Pt(10, 10)); m != nil {
		t.Fatal("paste fully off canvas produced a mask")
	}
}

func TestEraseKeepsUnselected(t *testing.T) {
	src := raster.New(3, 1)
	src.Fill(red)
	out := Erase(src, selection.FromIndices(3, 1, []int{1}))
	if out.Get(0, 0) != red || out.Get(1, 0) != raster.Transparent || out.Get(2, 0) != red {
		t.Fatal("erase touched the wrong pixels")
	}
}

func TestMoveIsTranslation(t *testing.T) {
	src := raster.New(6, 6)
	src.Fill(blue)
	src.SetPixel(1, 1, red)
	src.SetPixel(2, 1, green)
	src.SetPixel(5, 5, red)
	m := selection.FromIndices(6, 6, []int{src.Index(1, 1), src.Index(2, 1), src.Index(5, 5)})

	mv := Lift(src, m, image.Pt(3, 3))
	mv.Update(image.Pt(5, 4))
	if mv.Offset() != image.Pt(2, 1) {
		t.Fatalf("offset = %v", mv.Offset())
	}
	out, nm := mv.Commit()

	for y := range 6 {
		for x := range 6 {
			want := blue
			switch {
			case x == 3 && y == 2:
				want = red
			case x == 4 && y == 2:
				want = green
			case m.Contains(x, y):
				want = raster.Transparent
			}
			if got := out.Get(x, y); got != want {
				t.Fatalf("(%d,%d) = %#x, want %#x", x, y, uint32(got), uint32(want))
			}
		}
	}
	// (5,5) moved to (7,6) and was dropped
	if nm.Len() != 2 || !nm.Contains(3, 2) || !nm.Contains(4, 2) {
		t.Fatalf("moved mask = %v", nm.Indices())
	}
	if src.Get(1, 1) != red {
		t.Fatal("Lift mutated the frame")
	}
}

func TestLiftEmptyMask(t *testing.T) {
	if Lift(raster.New(2, 2), nil, image.Point{}) != nil {
		t.Fatal("Lift of empty mask started a move")
	}
}
