package selection

import "image"

// Lasso collects the vertices of a freehand selection polygon.
type Lasso struct {
	points    []image.Point
	selecting bool
}

// Start discards any previous path and records the first vertex.
func (l *Lasso) Start(p image.Point) {
	l.points = append(l.points[:0], p)
	l.selecting = true
}

// Push appends a vertex. It is ignored unless a lasso is in progress.
func (l *Lasso) Push(p image.Point) {
	if !l.selecting {
		return
	}
	l.points = append(l.points, p)
}

// Selecting reports whether a lasso gesture is in progress.
func (l *Lasso) Selecting() bool { return l.selecting }

// Path returns a copy of the vertices recorded so far.
func (l *Lasso) Path() []image.Point {
	return append([]image.Point(nil), l.points...)
}

// Finish ends the gesture and rasterises the polygon over a width×height
// canvas. Fewer than three vertices, or a polygon covering no pixel centre,
// yield nil.
func (l *Lasso) Finish(width, height int) *Mask {
	pts := l.points
	l.Reset()
	if len(pts) < 3 {
		return nil
	}
	return Polygon(width, height, pts)
}

// Reset abandons the gesture.
func (l *Lasso) Reset() {
	l.points = nil
	l.selecting = false
}

// Polygon selects every pixel (x, y) of the canvas for which PointInPolygon
// holds. The scan is limited to the polygon's bounding box.
func Polygon(width, height int, pts []image.Point) *Mask {
	if len(pts) < 3 {
		return nil
	}
	var box image.Rectangle
	for i, p := range pts {
		r := image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}
		if i == 0 {
			box = r
			continue
		}
		box = box.Union(r)
	}
	box = box.Intersect(image.Rect(0, 0, width, height))

	m := NewMask(width, height)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if PointInPolygon(x, y, pts) {
				m.Add(y*width + x)
			}
		}
	}
	return m.Done()
}

// PointInPolygon is the even-odd ray casting test. An edge counts when it
// straddles the horizontal line through y (one end strictly above, the other
// not), so horizontal edges never count and shared vertices count once.
func PointInPolygon(x, y int, pts []image.Point) bool {
	inside := false
	fx, fy := float64(x), float64(y)
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		xi, yi := float64(pts[i].X), float64(pts[i].Y)
		xj, yj := float64(pts[j].X), float64(pts[j].Y)
		if (yi > fy) != (yj > fy) && fx < (xj-xi)*(fy-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}
