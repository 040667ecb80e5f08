package clip

import (
	"github.com/lumenforge/luxd/internal/fixture"
	"github.com/lumenforge/luxd/internal/tempo"
)

// entry schedules one child clip at an offset in seconds.
type entry struct {
	start float64
	child Clip
}

// Timeline is a container clip scheduling children at second offsets.
// Children may overlap; their contributions are emitted in add order, so
// later-added clips blend on top of earlier ones.
type Timeline struct {
	entries []entry
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Add schedules a child clip at the given start offset. Chainable.
func (tl *Timeline) Add(start float64, child Clip) *Timeline {
	tl.entries = append(tl.entries, entry{start: start, child: child})
	return tl
}

// Duration implements Clip: the end of the latest-ending child, or 0 for an
// empty timeline. A single infinite child makes the timeline infinite.
func (tl *Timeline) Duration() float64 {
	var max float64
	for _, e := range tl.entries {
		if end := e.start + e.child.Duration(); end > max {
			max = end
		}
	}
	return max
}

// Render implements Clip: each child active at t contributes at its local
// time, in add order. Nested timelines recurse naturally.
func (tl *Timeline) Render(t float64, rig *fixture.Rig) []Contribution {
	var out []Contribution
	for _, e := range tl.entries {
		local := t - e.start
		if !active(local, e.child.Duration()) {
			continue
		}
		out = append(out, e.child.Render(local, rig)...)
	}
	return out
}

// BPMTimeline schedules children at beat positions, resolved to seconds
// through a tempo map at render time. It is otherwise a Timeline.
type BPMTimeline struct {
	tempo   *tempo.Map
	entries []entry // start holds the beat position
}

// NewBPMTimeline creates an empty beat-indexed timeline over the tempo map.
func NewBPMTimeline(m *tempo.Map) *BPMTimeline {
	return &BPMTimeline{tempo: m}
}

// Add schedules a child clip at the given beat. Chainable.
func (tl *BPMTimeline) Add(beat float64, child Clip) *BPMTimeline {
	tl.entries = append(tl.entries, entry{start: beat, child: child})
	return tl
}

// Tempo returns the timeline's tempo map, for mid-show tempo changes.
func (tl *BPMTimeline) Tempo() *tempo.Map {
	return tl.tempo
}

// Duration implements Clip, in seconds.
func (tl *BPMTimeline) Duration() float64 {
	var max float64
	for _, e := range tl.entries {
		if end := tl.tempo.Time(e.start) + e.child.Duration(); end > max {
			max = end
		}
	}
	return max
}

// Render implements Clip. t is in seconds; each child's start beat is
// converted through the tempo map before the usual activity window check.
func (tl *BPMTimeline) Render(t float64, rig *fixture.Rig) []Contribution {
	var out []Contribution
	for _, e := range tl.entries {
		local := t - tl.tempo.Time(e.start)
		if !active(local, e.child.Duration()) {
			continue
		}
		out = append(out, e.child.Render(local, rig)...)
	}
	return out
}
