package selection

import (
	"image"
	"testing"
)

func TestLassoSquare(t *testing.T) {
	var l Lasso
	l.Start(image.Pt(0, 0))
	l.Push(image.Pt(4, 0))
	l.Push(image.Pt(4, 4))
	l.Push(image.Pt(0, 4))
	if !l.Selecting() {
		t.Fatal("lasso not selecting after Start")
	}
	m := l.Finish(8, 8)
	if m.Len() != 16 {
		t.Fatalf("selected %d pixels, want 16", m.Len())
	}
	if got := m.Bounds(); got != image.Rect(0, 0, 4, 4) {
		t.Errorf("Bounds = %v", got)
	}
	if !m.Contains(3, 3) || m.Contains(4, 4) {
		t.Error("half-open edge convention violated")
	}
	if l.Selecting() {
		t.Error("lasso still selecting after Finish")
	}
}

func TestLassoDegenerate(t *testing.T) {
	tests := []struct {
		name string
		pts  []image.Point
	}{
		{"single point", []image.Point{{1, 1}}},
		{"two points", []image.Point{{1, 1}, {5, 5}}},
		{"collinear", []image.Point{{0, 0}, {2, 0}, {4, 0}}},
	}
	for _, tc := range tests {
		var l Lasso
		l.Start(tc.pts[0])
		for _, p := range tc.pts[1:] {
			l.Push(p)
		}
		if m := l.Finish(8, 8); m != nil {
			t.Errorf("%s: got mask of %d pixels, want nil", tc.name, m.Len())
		}
	}
}

func TestPushWithoutStartIgnored(t *testing.T) {
	var l Lasso
	l.Push(image.Pt(1, 1))
	if len(l.Path()) != 0 {
		t.Fatal("Push recorded a vertex without Start")
	}
}

func TestTriangle(t *testing.T) {
	pts := []image.Point{{0, 0}, {6, 0}, {0, 6}}
	m := Polygon(10, 10, pts)
	for y := range 10 {
		for x := range 10 {
			want := PointInPolygon(x, y, pts)
			if m.Contains(x, y) != want {
				t.Fatalf("(%d,%d) contained=%v want %v", x, y, m.Contains(x, y), want)
			}
		}
	}
	if !m.Contains(0, 0) || m.Contains(5, 5) {
		t.Error("unexpected triangle membership")
	}
}

func TestRectClipped(t *testing.T) {
	m := Rect(4, 4, image.Rect(2, 2, 10, 10))
	if m.Len() != 4 {
		t.Fatalf("Len = %d, want 4", m.Len())
	}
	if Rect(4, 4, image.Rect(5, 5, 6, 6)) != nil {
		t.Fatal("rectangle outside the canvas produced a mask")
	}
}

func TestFromIndices(t *testing.T) {
	m := FromIndices(3, 3, []int{8, 0, 0, -1, 9})
	got := m.Indices()
	if len(got) != 2 || got[0] != 0 || got[1] != 8 {
		t.Fatalf("Indices = %v, want [0 8]", got)
	}
	if FromIndices(3, 3, nil) != nil {
		t.Fatal("empty index list produced a mask")
	}
}
