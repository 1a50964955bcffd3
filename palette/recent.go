package palette

import "pixelkit/raster"

// RecentCapacity is the number of colours a Recent list remembers.
const RecentCapacity = 20

// Recent is a most-recently-used colour list without duplicates.
type Recent struct {
	colors Palette
}

// Add moves c to the front, inserting it if new and dropping the oldest
// colour beyond RecentCapacity.
func (r *Recent) Add(c raster.Pixel) {
	for i, v := range r.colors {
		if v == c {
			copy(r.colors[1:i+1], r.colors[:i])
			r.colors[0] = c
			return
		}
	}
	if len(r.colors) < RecentCapacity {
		r.colors = append(r.colors, 0)
	}
	copy(r.colors[1:], r.colors[:len(r.colors)-1])
	r.colors[0] = c
}

// Colors returns the list, most recent first.
func (r *Recent) Colors() Palette {
	return append(Palette(nil), r.colors...)
}
