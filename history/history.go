// Package history keeps bounded undo snapshots of a frame set.
package history

import "pixelkit/frames"

// DefaultDepth is the number of snapshots kept when none is configured.
const DefaultDepth = 50

// Stack is a bounded ring of deep frame set copies. Pushing past the depth
// evicts the oldest entry; Pop returns the newest. There is no redo.
type Stack struct {
	ring  []*frames.Set
	start int
	n     int
}

// New creates a stack holding at most depth snapshots.
func New(depth int) *Stack {
	if depth < 1 {
		depth = DefaultDepth
	}
	return &Stack{ring: make([]*frames.Set, depth)}
}

// Depth returns the capacity.
func (s *Stack) Depth() int { return len(s.ring) }

// Len returns the number of stored snapshots.
func (s *Stack) Len() int { return s.n }

// Push stores a deep copy of set.
func (s *Stack) Push(set *frames.Set) {
	snap := set.Clone()
	if s.n == len(s.ring) {
		s.ring[s.start] = snap
		s.start = (s.start + 1) % len(s.ring)
		return
	}
	s.ring[(s.start+s.n)%len(s.ring)] = snap
	s.n++
}

// Pop removes and returns the newest snapshot, or nil when empty.
func (s *Stack) Pop() *frames.Set {
	if s.n == 0 {
		return nil
	}
	i := (s.start + s.n - 1) % len(s.ring)
	snap := s.ring[i]
	s.ring[i] = nil
	s.n--
	return snap
}

// Clear drops every snapshot.
func (s *Stack) Clear() {
	clear(s.ring)
	s.start, s.n = 0, 0
}
