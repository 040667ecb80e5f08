package engine

import "sort"

// Frame is one rendered DMX snapshot: universe number to channel number
// (1..512) to value. Only universes with patched fixtures appear; within
// a universe, channels a fixture occupies are always present, including
// zeros, so a frame fully describes every patched channel.
type Frame map[int]map[int]byte

// set stores one channel value, creating the universe map on first use.
func (f Frame) set(universe, channel int, value byte) {
	u, ok := f[universe]
	if !ok {
		u = make(map[int]byte)
		f[universe] = u
	}
	u[channel] = value
}

// Universes returns the frame's universe numbers in ascending order.
func (f Frame) Universes() []int {
	out := make([]int, 0, len(f))
	for u := range f {
		out = append(out, u)
	}
	sort.Ints(out)
	return out
}

// Flatten packs a universe into a contiguous slice from channel 1 through
// the highest occupied channel. Gaps between fixtures read as zero.
func (f Frame) Flatten(universe int) []byte {
	channels := f[universe]
	if len(channels) == 0 {
		return nil
	}

	max := 0
	for ch := range channels {
		if ch > max {
			max = ch
		}
	}

	out := make([]byte, max)
	for ch, v := range channels {
		out[ch-1] = v
	}
	return out
}
