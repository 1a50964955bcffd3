// Package frames holds the ordered animation frames of a sprite.
package frames

import "pixelkit/raster"

// Set is an ordered, never empty sequence of equally sized buffers plus the
// index of the frame being edited.
//
// Frames are replaced, never mutated in place, so a buffer handed out by
// Active or At stays valid for its holder after later edits.
type Set struct {
	frames []*raster.Buffer
	active int
	width  int
	height int
}

// New returns a set holding a single transparent frame.
func New(width, height int) *Set {
	return &Set{
		frames: []*raster.Buffer{raster.New(width, height)},
		width:  width,
		height: height,
	}
}

// FromBuffers builds a set from existing buffers. The first buffer decides the
// size; it returns nil if bufs is empty or the sizes differ.
func FromBuffers(bufs []*raster.Buffer, active int) *Set {
	if len(bufs) == 0 {
		return nil
	}
	w, h := bufs[0].Width(), bufs[0].Height()
	for _, b := range bufs {
		if b.Width() != w || b.Height() != h {
			return nil
		}
	}
	s := &Set{frames: append([]*raster.Buffer(nil), bufs...), width: w, height: h}
	s.active = clamp(active, 0, len(bufs)-1)
	return s
}

func (s *Set) Width() int  { return s.width }
func (s *Set) Height() int { return s.height }
func (s *Set) Len() int    { return len(s.frames) }

// ActiveIndex returns the index of the frame being edited.
func (s *Set) ActiveIndex() int { return s.active }

// Active returns the frame being edited.
func (s *Set) Active() *raster.Buffer { return s.frames[s.active] }

// At returns frame i or nil when out of range.
func (s *Set) At(i int) *raster.Buffer {
	if i < 0 || i >= len(s.frames) {
		return nil
	}
	return s.frames[i]
}

// Frames returns a copy of the frame slice. The buffers are shared.
func (s *Set) Frames() []*raster.Buffer {
	return append([]*raster.Buffer(nil), s.frames...)
}

// Add appends a transparent frame and makes it active.
func (s *Set) Add() {
	s.frames = append(s.frames, raster.New(s.width, s.height))
	s.active = len(s.frames) - 1
}

// Append appends buf, which must match the set size, and makes it active.
func (s *Set) Append(buf *raster.Buffer) bool {
	if buf.Width() != s.width || buf.Height() != s.height {
		return false
	}
	s.frames = append(s.frames, buf)
	s.active = len(s.frames) - 1
	return true
}

// Duplicate appends a copy of the active frame and makes it active.
func (s *Set) Duplicate() {
	s.frames = append(s.frames, s.Active().Clone())
	s.active = len(s.frames) - 1
}

// Delete removes the active frame. It refuses when only one frame is left.
func (s *Set) Delete() bool {
	if len(s.frames) <= 1 {
		return false
	}
	s.frames = append(s.frames[:s.active:s.active], s.frames[s.active+1:]...)
	s.active = max(0, s.active-1)
	return true
}

// Select makes frame i active, clamping i into range.
func (s *Set) Select(i int) {
	s.active = clamp(i, 0, len(s.frames)-1)
}

// Move reorders the frame at from to position to and keeps it active.
func (s *Set) Move(from, to int) bool {
	n := len(s.frames)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return false
	}
	f := s.frames[from]
	rest := append(s.frames[:from:from], s.frames[from+1:]...)
	s.frames = append(rest[:to:to], append([]*raster.Buffer{f}, rest[to:]...)...)
	s.active = to
	return true
}

// ReplaceActive swaps the active frame for buf. buf must match the set size.
func (s *Set) ReplaceActive(buf *raster.Buffer) bool {
	if buf.Width() != s.width || buf.Height() != s.height {
		return false
	}
	s.frames[s.active] = buf
	return true
}

// ReplaceAll swaps every frame at once, typically after a resize. All buffers
// must share one size, which becomes the set size.
func (s *Set) ReplaceAll(bufs []*raster.Buffer) bool {
	n := FromBuffers(bufs, s.active)
	if n == nil {
		return false
	}
	*s = *n
	return true
}

// Clone returns a deep copy of every frame and the active index.
func (s *Set) Clone() *Set {
	c := &Set{
		frames: make([]*raster.Buffer, len(s.frames)),
		active: s.active,
		width:  s.width,
		height: s.height,
	}
	for i, f := range s.frames {
		c.frames[i] = f.Clone()
	}
	return c
}

// Equal reports whether both sets hold identical frames and active index.
func (s *Set) Equal(o *Set) bool {
	if s.active != o.active || len(s.frames) != len(o.frames) {
		return false
	}
	for i, f := range s.frames {
		if !f.Equal(o.frames[i]) {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
