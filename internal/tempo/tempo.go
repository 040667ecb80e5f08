// Package tempo converts between wall-clock seconds and fractional beats
// across a sequence of tempo changes.
//
// A Map is a strictly-increasing sequence of (beat, bpm) breakpoints with
// the first entry pinned at beat 0. Time and Beat are monotone, mutually
// inverse, piecewise-linear functions: within a segment one beat lasts
// 60/bpm seconds. Cumulative segment times are computed once per SetTempo
// call, so lookups are cheap in the render path.
package tempo

import (
	"errors"
	"fmt"
)

// ErrNonIncreasingBeat is returned when SetTempo is called with a beat at
// or before the latest stored breakpoint. Tempo history is append-only;
// rewriting the past would break the cached time offsets.
var ErrNonIncreasingBeat = errors.New("tempo: non-increasing beat")

// secondsPerMinute converts bpm to seconds per beat.
const secondsPerMinute = 60.0

// breakpoint is one tempo change, with its cached start time in seconds.
type breakpoint struct {
	beat    float64
	bpm     float64
	seconds float64 // cumulative seconds at this breakpoint
}

// Map converts between seconds and beats.
type Map struct {
	changes []breakpoint
}

// NewMap creates a tempo map with a single breakpoint at beat 0.
func NewMap(bpm float64) *Map {
	return &Map{
		changes: []breakpoint{{beat: 0, bpm: bpm, seconds: 0}},
	}
}

// SetTempo appends a tempo change at the given beat.
//
// Beat 0 replaces the initial breakpoint's bpm; any other beat must be
// strictly after the latest stored breakpoint, else ErrNonIncreasingBeat.
func (m *Map) SetTempo(beat, bpm float64) error {
	if beat == 0 {
		m.changes[0].bpm = bpm
		m.recompute()
		return nil
	}

	last := m.changes[len(m.changes)-1]
	if beat <= last.beat {
		return fmt.Errorf("%w: beat %v is not after %v", ErrNonIncreasingBeat, beat, last.beat)
	}

	seconds := last.seconds + (beat-last.beat)*secondsPerMinute/last.bpm
	m.changes = append(m.changes, breakpoint{beat: beat, bpm: bpm, seconds: seconds})
	return nil
}

// recompute refreshes the cached cumulative seconds after a bpm rewrite at
// beat 0.
func (m *Map) recompute() {
	for i := 1; i < len(m.changes); i++ {
		prev := m.changes[i-1]
		m.changes[i].seconds = prev.seconds + (m.changes[i].beat-prev.beat)*secondsPerMinute/prev.bpm
	}
}

// Time converts a beat position to seconds.
func (m *Map) Time(beat float64) float64 {
	if beat <= 0 {
		return 0
	}

	bp := m.changes[0]
	for _, c := range m.changes[1:] {
		if beat <= c.beat {
			break
		}
		bp = c
	}
	return bp.seconds + (beat-bp.beat)*secondsPerMinute/bp.bpm
}

// Beat converts elapsed seconds to a beat position.
func (m *Map) Beat(seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}

	bp := m.changes[0]
	for _, c := range m.changes[1:] {
		if seconds <= c.seconds {
			break
		}
		bp = c
	}
	return bp.beat + (seconds-bp.seconds)*bp.bpm/secondsPerMinute
}

// BPMAt returns the tempo in effect at the given beat.
func (m *Map) BPMAt(beat float64) float64 {
	bp := m.changes[0]
	for _, c := range m.changes[1:] {
		if beat < c.beat {
			break
		}
		bp = c
	}
	return bp.bpm
}
